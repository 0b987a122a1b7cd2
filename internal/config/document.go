package config

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/yoshisuproject/mbgplug/internal/errors"
)

// Format identifies the encoding of a generator configuration document
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the document format from the file extension.
// Anything that is not .toml is read as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Document is the generator configuration: one context describing the target
// runtime, the plugins to run and the tables to generate for
type Document struct {
	Context ContextConfig `yaml:"context" toml:"context" validate:"required"`
}

// ContextConfig groups everything a single generation run needs
type ContextConfig struct {
	ID               string                 `yaml:"id" toml:"id"`
	TargetRuntime    string                 `yaml:"targetRuntime" toml:"targetRuntime" validate:"omitempty,oneof=MyBatis3 MyBatis3Simple MyBatis3DynamicSql"`
	DefaultModelType string                 `yaml:"defaultModelType" toml:"defaultModelType" validate:"omitempty,oneof=conditional flat hierarchical"`
	CommentGenerator CommentGeneratorConfig `yaml:"commentGenerator" toml:"commentGenerator"`
	Plugins          []PluginConfig         `yaml:"plugins" toml:"plugins" validate:"dive"`
	Connection       *ConnectionConfig      `yaml:"jdbcConnection" toml:"jdbcConnection"`
	ModelGenerator   TargetConfig           `yaml:"javaModelGenerator" toml:"javaModelGenerator" validate:"required"`
	ClientGenerator  TargetConfig           `yaml:"javaClientGenerator" toml:"javaClientGenerator" validate:"required"`
	Tables           []TableConfig          `yaml:"tables" toml:"tables" validate:"required,min=1,dive"`
}

// CommentGeneratorConfig carries the comment generator properties
type CommentGeneratorConfig struct {
	Properties map[string]interface{} `yaml:"properties" toml:"properties"`
}

// PluginConfig names a plugin type and its properties
type PluginConfig struct {
	Type       string                 `yaml:"type" toml:"type" validate:"required"`
	Properties map[string]interface{} `yaml:"properties" toml:"properties"`
}

// ConnectionConfig points at a database to introspect. Only SQLite is supported.
type ConnectionConfig struct {
	Driver string `yaml:"driver" toml:"driver" validate:"omitempty,oneof=sqlite"`
	DSN    string `yaml:"dsn" toml:"dsn" validate:"required"`
}

// TargetConfig is a Java package and the directory it is written under
type TargetConfig struct {
	TargetPackage string `yaml:"targetPackage" toml:"targetPackage" validate:"required"`
	TargetProject string `yaml:"targetProject" toml:"targetProject" validate:"required"`
}

// TableConfig selects a table and, when no connection is configured, declares its columns
type TableConfig struct {
	Catalog          string         `yaml:"catalog" toml:"catalog"`
	Schema           string         `yaml:"schema" toml:"schema"`
	TableName        string         `yaml:"tableName" toml:"tableName" validate:"required"`
	DomainObjectName string         `yaml:"domainObjectName" toml:"domainObjectName"`
	ModelType        string         `yaml:"modelType" toml:"modelType" validate:"omitempty,oneof=conditional flat hierarchical"`
	Remarks          string         `yaml:"remarks" toml:"remarks"`
	IgnoredColumns   []string       `yaml:"ignoredColumns" toml:"ignoredColumns"`
	ColumnOverrides  []ColumnConfig `yaml:"columnOverrides" toml:"columnOverrides" validate:"dive"`
	Columns          []ColumnConfig `yaml:"columns" toml:"columns" validate:"dive"`
}

// ColumnConfig declares or overrides a single column
type ColumnConfig struct {
	Name       string `yaml:"name" toml:"name" validate:"required"`
	JDBCType   string `yaml:"jdbcType" toml:"jdbcType"`
	JavaType   string `yaml:"javaType" toml:"javaType"`
	Property   string `yaml:"property" toml:"property"`
	Nullable   bool   `yaml:"nullable" toml:"nullable"`
	PrimaryKey bool   `yaml:"primaryKey" toml:"primaryKey"`
	Remarks    string `yaml:"remarks" toml:"remarks"`
}

// PluginProperties returns the normalised property bag of the plugin
func (p PluginConfig) PluginProperties() Properties {
	return PropertiesFromMap(p.Properties)
}

// GeneratorProperties returns the normalised comment generator property bag
func (c CommentGeneratorConfig) GeneratorProperties() Properties {
	return PropertiesFromMap(c.Properties)
}

// IsIgnored reports whether the column is excluded from generation
func (t TableConfig) IsIgnored(column string) bool {
	for _, ignored := range t.IgnoredColumns {
		if strings.EqualFold(ignored, column) {
			return true
		}
	}
	return false
}

// Override returns the override declared for column, if any
func (t TableConfig) Override(column string) (ColumnConfig, bool) {
	for _, o := range t.ColumnOverrides {
		if strings.EqualFold(o.Name, column) {
			return o, true
		}
	}
	return ColumnConfig{}, false
}

var documentValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the document structure
func (d *Document) Validate() error {
	if err := documentValidator.Struct(d); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return newValidationError(verrs)
		}
		return errors.Wrap(errors.ValidationErrorCode, "invalid configuration", err)
	}
	if d.Context.Connection == nil {
		for _, table := range d.Context.Tables {
			if len(table.Columns) == 0 {
				return errors.Newf(errors.ValidationErrorCode, "table '%s' declares no columns", table.TableName).
					WithContext("table", table.TableName).
					WithSuggestions(
						"Declare the table columns under 'columns'",
						"Or configure a jdbcConnection to introspect them",
					)
			}
		}
	}
	return nil
}

// newValidationError reports every failing field; each one is a BaseError in the cause
func newValidationError(verrs validator.ValidationErrors) *errors.BaseError {
	var fieldErrs errors.MultipleErrors
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Namespace())
		fieldErrs.Add(errors.Newf(errors.ValidationErrorCode, "%s fails rule '%s'", fe.Namespace(), fieldRule(fe)).
			WithContext("field", fe.Namespace()).
			WithContext("value", fe.Value()))
	}
	return errors.Newf(errors.ValidationErrorCode, "invalid configuration: %d field(s) failed validation", len(fields)).
		WithCause(fieldErrs.ErrorOrNil()).
		WithContext("fields", strings.Join(fields, ", ")).
		WithSuggestion("Check the field names and allowed values in the configuration file")
}

func fieldRule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

// ParseDocument decodes and validates a document
func ParseDocument(data []byte, format Format) (*Document, error) {
	doc := &Document{}
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), doc); err != nil {
			return nil, errors.Wrap(errors.ConfigurationErrorCode, "failed to decode TOML configuration", err)
		}
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(doc); err != nil {
			return nil, errors.Wrap(errors.ConfigurationErrorCode, "failed to decode YAML configuration", err)
		}
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadDocument reads the document at path from fs
func LoadDocument(fs afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.WrapConfigurationError(path, "read", err)
	}
	doc, err := ParseDocument(data, FormatFromPath(path))
	if err != nil {
		if base, ok := errors.AsBaseError(err); ok {
			return nil, base.WithContext("config_path", path)
		}
		return nil, errors.WrapConfigurationError(path, "parse", err)
	}
	return doc, nil
}
