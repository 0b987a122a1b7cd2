package main

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yoshisuproject/mbgplug/internal/cli"
	"github.com/yoshisuproject/mbgplug/internal/config"
	"github.com/yoshisuproject/mbgplug/internal/plugins"
	"github.com/yoshisuproject/mbgplug/internal/utils"
)

func main() {
	os.Exit(run(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code
func run(args []string, fs afero.Fs, stdout, stderr io.Writer) int {
	a := newApp(fs, stdout, stderr)
	cmd := a.rootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		a.reporter().ReportError(err)
		return 1
	}
	return 0
}

// app carries the state shared by every command of one invocation
type app struct {
	v        *viper.Viper
	fs       afero.Fs
	stdout   io.Writer
	stderr   io.Writer
	registry *plugins.Registry
	settings config.Settings
}

func newApp(fs afero.Fs, stdout, stderr io.Writer) *app {
	return &app{
		v:        config.NewViper(),
		fs:       fs,
		stdout:   stdout,
		stderr:   stderr,
		registry: plugins.NewRegistry(),
	}
}

func (a *app) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mbgplug",
		Short:         "Table-driven Java model and mapper generator with plugins",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadSettings(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP(config.KeyConfig, "c", config.DefaultConfigPath, "Generator configuration document (.yaml, .yml or .toml)")
	flags.BoolP(config.KeyVerbose, "v", false, "Enable verbose output and detailed error reporting")
	flags.BoolP(config.KeyQuiet, "q", false, "Only show errors and final results")
	flags.Bool(config.KeyDryRun, false, "Render everything in memory without writing files")
	flags.StringP(config.KeyOutput, "o", "", "Directory replacing every targetProject")
	flags.String(config.KeyEnvFile, ".env", "Environment file loaded before reading MBGPLUG_ variables")

	cmd.AddCommand(a.generateCommand())
	cmd.AddCommand(a.validateCommand())
	cmd.AddCommand(a.pluginsCommand())
	return cmd
}

// loadSettings binds the flags, loads the env file and resolves the final settings.
// Environment variables are read lazily, so values from the env file are visible.
func (a *app) loadSettings(cmd *cobra.Command) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	if err := config.LoadEnvFile(a.v.GetString(config.KeyEnvFile)); err != nil {
		return err
	}
	a.settings = config.LoadSettings(a.v)
	return nil
}

func (a *app) diagnostics() *utils.DiagnosticSystem {
	level := utils.DiagnosticInfo
	switch {
	case a.settings.Quiet:
		level = utils.DiagnosticError
	case a.settings.Verbose:
		level = utils.DiagnosticVerbose
	}
	return a.diagnosticsAt(level)
}

func (a *app) diagnosticsAt(level utils.DiagnosticLevel) *utils.DiagnosticSystem {
	return utils.NewDiagnosticSystemWithWriters(level, a.stdout, a.stderr)
}

func (a *app) reporter() *cli.DiagnosticReporter {
	return cli.NewDiagnosticReporterWithWriters(a.settings.Verbose, a.stdout, a.stderr)
}

func (a *app) loadDocument() (*config.Document, error) {
	return config.LoadDocument(a.fs, a.settings.ConfigPath)
}
