package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoshisuproject/mbgplug/internal/errors"
)

const sampleYAML = `
context:
  id: users
  targetRuntime: MyBatis3
  defaultModelType: conditional
  commentGenerator:
    properties:
      suppressDate: true
  plugins:
    - type: OptionalPlugin
      properties:
        optionalMethodPrefix: findOptional
    - type: ToStringWithoutSerialVersionUidPlugin
      properties:
        openSign: "["
        useToStringFromRoot: true
  javaModelGenerator:
    targetPackage: com.example.model
    targetProject: out/java
  javaClientGenerator:
    targetPackage: com.example.mapper
    targetProject: out/java
  tables:
    - tableName: user_account
      ignoredColumns: [legacy_flag]
      columns:
        - name: id
          jdbcType: BIGINT
          primaryKey: true
        - name: user_name
          jdbcType: VARCHAR
`

const sampleTOML = `
[context]
id = "users"
targetRuntime = "MyBatis3DynamicSql"

[[context.plugins]]
type = "tostring"
[context.plugins.properties]
sign = "BRACE"

[context.javaModelGenerator]
targetPackage = "com.example.model"
targetProject = "out"

[context.javaClientGenerator]
targetPackage = "com.example.mapper"
targetProject = "out"

[[context.tables]]
tableName = "orders"
[[context.tables.columns]]
name = "id"
jdbcType = "INTEGER"
primaryKey = true
`

func TestParseDocument_YAML(t *testing.T) {
	doc, err := ParseDocument([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	ctx := doc.Context
	assert.Equal(t, "users", ctx.ID)
	require.Len(t, ctx.Plugins, 2)
	assert.Equal(t, Properties{"optionalMethodPrefix": "findOptional"}, ctx.Plugins[0].PluginProperties())
	assert.Equal(t, Properties{"openSign": "[", "useToStringFromRoot": "true"}, ctx.Plugins[1].PluginProperties())
	assert.Equal(t, Properties{"suppressDate": "true"}, ctx.CommentGenerator.GeneratorProperties())

	require.Len(t, ctx.Tables, 1)
	table := ctx.Tables[0]
	assert.True(t, table.IsIgnored("LEGACY_FLAG"))
	assert.False(t, table.IsIgnored("id"))
	assert.Len(t, table.Columns, 2)
	assert.True(t, table.Columns[0].PrimaryKey)
}

func TestParseDocument_TOML(t *testing.T) {
	doc, err := ParseDocument([]byte(sampleTOML), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "MyBatis3DynamicSql", doc.Context.TargetRuntime)
	require.Len(t, doc.Context.Plugins, 1)
	assert.Equal(t, Properties{"sign": "BRACE"}, doc.Context.Plugins[0].PluginProperties())
	assert.Equal(t, "orders", doc.Context.Tables[0].TableName)
}

func TestParseDocument_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.ErrorCode
	}{
		{"malformed yaml", "context: [", errors.ConfigurationErrorCode},
		{"unknown field", "context:\n  bogus: 1\n", errors.ConfigurationErrorCode},
		{"missing tables", `
context:
  javaModelGenerator: {targetPackage: a, targetProject: b}
  javaClientGenerator: {targetPackage: a, targetProject: b}
`, errors.ValidationErrorCode},
		{"bad runtime", `
context:
  targetRuntime: Ibatis2
  javaModelGenerator: {targetPackage: a, targetProject: b}
  javaClientGenerator: {targetPackage: a, targetProject: b}
  tables:
    - tableName: t
      columns: [{name: id}]
`, errors.ValidationErrorCode},
		{"no columns without connection", `
context:
  javaModelGenerator: {targetPackage: a, targetProject: b}
  javaClientGenerator: {targetPackage: a, targetProject: b}
  tables:
    - tableName: t
`, errors.ValidationErrorCode},
		{"plugin without type", `
context:
  plugins:
    - properties: {a: b}
  javaModelGenerator: {targetPackage: a, targetProject: b}
  javaClientGenerator: {targetPackage: a, targetProject: b}
  tables:
    - tableName: t
      columns: [{name: id}]
`, errors.ValidationErrorCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.data), FormatYAML)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestParseDocument_ReportsEveryFailingField(t *testing.T) {
	data := `
context:
  targetRuntime: Ibatis2
  javaModelGenerator: {targetPackage: a, targetProject: b}
  javaClientGenerator: {targetPackage: a, targetProject: b}
`
	_, err := ParseDocument([]byte(data), FormatYAML)
	require.Error(t, err)

	base, ok := errors.AsBaseError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ValidationErrorCode, base.ErrorCode())
	assert.Equal(t, "invalid configuration: 2 field(s) failed validation", base.Message)
	assert.Equal(t, "Document.Context.TargetRuntime, Document.Context.Tables", base.Context()["fields"])

	var fieldErrs *errors.MultipleErrors
	require.True(t, stderrors.As(err, &fieldErrs))
	require.Len(t, fieldErrs.Errors, 2)

	runtime, ok := errors.AsBaseError(fieldErrs.Errors[0])
	require.True(t, ok)
	assert.Equal(t, "Document.Context.TargetRuntime fails rule 'oneof=MyBatis3 MyBatis3Simple MyBatis3DynamicSql'", runtime.Message)
	assert.Equal(t, "Ibatis2", runtime.Context()["value"])

	assert.EqualError(t, fieldErrs.Errors[1], "Document.Context.Tables fails rule 'required'")
}

func TestParseDocument_UndeclaredColumnsSuggestions(t *testing.T) {
	data := `
context:
  javaModelGenerator: {targetPackage: a, targetProject: b}
  javaClientGenerator: {targetPackage: a, targetProject: b}
  tables:
    - tableName: t
`
	_, err := ParseDocument([]byte(data), FormatYAML)
	base, ok := errors.AsBaseError(err)
	require.True(t, ok)
	assert.Equal(t, "t", base.Context()["table"])
	assert.Equal(t, []string{
		"Declare the table columns under 'columns'",
		"Or configure a jdbcConnection to introspect them",
	}, base.Suggestions())
}

func TestParseDocument_ConnectionAllowsUndeclaredColumns(t *testing.T) {
	data := `
context:
  jdbcConnection:
    driver: sqlite
    dsn: file:test.db
  javaModelGenerator: {targetPackage: a, targetProject: b}
  javaClientGenerator: {targetPackage: a, targetProject: b}
  tables:
    - tableName: t
`
	doc, err := ParseDocument([]byte(data), FormatYAML)
	require.NoError(t, err)
	require.NotNil(t, doc.Context.Connection)
	assert.Equal(t, "file:test.db", doc.Context.Connection.DSN)
}

func TestLoadDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "gen/mbgplug.toml", []byte(sampleTOML), 0o644))

	doc, err := LoadDocument(fs, "gen/mbgplug.toml")
	require.NoError(t, err)
	assert.Equal(t, "users", doc.Context.ID)

	_, err = LoadDocument(fs, "gen/missing.yaml")
	require.Error(t, err)
	base, ok := errors.AsBaseError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ConfigurationErrorCode, base.ErrorCode())
	assert.Equal(t, "gen/missing.yaml", base.Context()["config_path"])
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatFromPath("a/b.TOML"))
	assert.Equal(t, FormatYAML, FormatFromPath("a/b.yml"))
	assert.Equal(t, FormatYAML, FormatFromPath("noext"))
}

func TestSettings_FlagsAndEnv(t *testing.T) {
	t.Setenv("MBGPLUG_DRY_RUN", "true")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(KeyConfig, "", "")
	flags.Bool(KeyVerbose, false, "")
	flags.Bool(KeyQuiet, false, "")
	flags.Bool(KeyDryRun, false, "")
	flags.String(KeyOutput, "", "")
	require.NoError(t, flags.Parse([]string{"--config", "custom.toml", "--verbose"}))

	v := NewViper()
	require.NoError(t, BindFlags(v, flags))
	settings := LoadSettings(v)

	assert.Equal(t, "custom.toml", settings.ConfigPath)
	assert.True(t, settings.Verbose)
	assert.False(t, settings.Quiet)
	assert.True(t, settings.DryRun)
	assert.Equal(t, ".env", settings.EnvFile)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("MBGPLUG_TEST_ENV_VALUE=loaded\n"), 0o600))
	t.Setenv("MBGPLUG_TEST_ENV_VALUE", "")
	require.NoError(t, os.Unsetenv("MBGPLUG_TEST_ENV_VALUE"))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "loaded", os.Getenv("MBGPLUG_TEST_ENV_VALUE"))

	assert.NoError(t, LoadEnvFile(filepath.Join(dir, "absent.env")))
	assert.NoError(t, LoadEnvFile(""))
	assert.Error(t, LoadEnvFile(dir))
}
