package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/yoshisuproject/mbgplug/internal/errors"
)

// EnvPrefix prefixes every environment variable the CLI reads, e.g. MBGPLUG_VERBOSE
const EnvPrefix = "MBGPLUG"

const (
	KeyConfig  = "config"
	KeyVerbose = "verbose"
	KeyQuiet   = "quiet"
	KeyDryRun  = "dry-run"
	KeyOutput  = "output"
	KeyEnvFile = "env-file"
)

// DefaultConfigPath is used when neither the flag nor the environment names a document
const DefaultConfigPath = "mbgplug.yaml"

// Settings holds the CLI run options. The generator document itself is read
// separately so plugin property keys keep their case.
type Settings struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
	DryRun     bool
	// Output overrides every targetProject directory when set
	Output  string
	EnvFile string
}

// NewViper returns a viper instance reading MBGPLUG_ environment variables
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyConfig, DefaultConfigPath)
	v.SetDefault(KeyEnvFile, ".env")
	return v
}

// BindFlags binds the persistent CLI flags to v
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyConfig, KeyVerbose, KeyQuiet, KeyDryRun, KeyOutput, KeyEnvFile} {
		flag := flags.Lookup(key)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(errors.ConfigurationErrorCode, err, "failed to bind flag '%s'", key)
		}
	}
	return nil
}

// LoadSettings reads the bound values out of v
func LoadSettings(v *viper.Viper) Settings {
	return Settings{
		ConfigPath: v.GetString(KeyConfig),
		Verbose:    v.GetBool(KeyVerbose),
		Quiet:      v.GetBool(KeyQuiet),
		DryRun:     v.GetBool(KeyDryRun),
		Output:     v.GetString(KeyOutput),
		EnvFile:    v.GetString(KeyEnvFile),
	}
}

// LoadEnvFile loads variables from path into the process environment.
// A missing file is not an error; existing variables are not overridden.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.WrapFileSystemError("stat", path, err)
	}
	if !info.Mode().IsRegular() {
		return errors.Newf(errors.ConfigurationErrorCode, "env file '%s' is not a regular file", path).
			WithContext("path", path)
	}
	if err := godotenv.Load(path); err != nil {
		return errors.WrapConfigurationError(path, "load", err)
	}
	return nil
}
