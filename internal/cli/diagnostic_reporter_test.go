package cli

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yoshisuproject/mbgplug/internal/errors"
	"github.com/yoshisuproject/mbgplug/internal/generator"
)

func TestDiagnosticReporter_ReportWarning(t *testing.T) {
	var out, errOut bytes.Buffer
	reporter := NewDiagnosticReporterWithWriters(false, &out, &errOut)

	reporter.ReportWarning("This is a test warning")

	assert.Contains(t, errOut.String(), "! ")
	assert.Contains(t, errOut.String(), "This is a test warning\n")
	assert.Empty(t, out.String())
}

func TestDiagnosticReporter_ReportBaseError(t *testing.T) {
	var out, errOut bytes.Buffer
	reporter := NewDiagnosticReporterWithWriters(false, &out, &errOut)

	err := errors.Newf(errors.IntrospectionErrorCode, "table '%s' was not found", "orders").
		WithContext("table", "orders").
		WithContext("dsn", "file:shop.db").
		WithSuggestion("Check the tableName and the jdbcConnection dsn")
	reporter.ReportError(fmt.Errorf("run failed: %w", err))

	output := errOut.String()
	assert.Contains(t, output, "Type: Introspection Error\n")
	assert.Contains(t, output, "Message: table 'orders' was not found\n")
	assert.Contains(t, output, "Context:\n   DSN: file:shop.db\n   Table: orders\n")
	assert.Contains(t, output, "Suggestions:\n   1. Check the tableName and the jdbcConnection dsn\n")
	assert.NotContains(t, output, "Error Chain")
}

func TestDiagnosticReporter_VerboseShowsCauseChain(t *testing.T) {
	var out, errOut bytes.Buffer
	reporter := NewDiagnosticReporterWithWriters(true, &out, &errOut)

	cause := fmt.Errorf("open: %w", stderrors.New("permission denied"))
	reporter.ReportError(errors.WrapFileSystemError("write", "out/A.java", cause))

	output := errOut.String()
	assert.Contains(t, output, "Type: File System Error\n")
	assert.Contains(t, output, "Underlying cause: open: permission denied\n")
	assert.Contains(t, output, "Error Chain:\n  1. open: permission denied\n  2. permission denied\n")
}

func TestDiagnosticReporter_PlainError(t *testing.T) {
	var out, errOut bytes.Buffer
	reporter := NewDiagnosticReporterWithWriters(false, &out, &errOut)

	reporter.ReportError(stderrors.New("boom"))

	assert.Contains(t, errOut.String(), "Message: boom\n")
	assert.NotContains(t, errOut.String(), "Type:")
}

func TestDiagnosticReporter_PluginHelp(t *testing.T) {
	var out, errOut bytes.Buffer
	reporter := NewDiagnosticReporterWithWriters(false, &out, &errOut)

	reporter.ReportError(errors.NewUnknownPluginError("nope", []string{"OptionalPlugin"}))

	assert.Contains(t, errOut.String(), "Type: Plugin Error\n")
	assert.Contains(t, errOut.String(), "mbgplug plugins")
}

func TestDiagnosticReporter_ReportSuccess(t *testing.T) {
	var out, errOut bytes.Buffer
	reporter := NewDiagnosticReporterWithWriters(false, &out, &errOut)

	reporter.ReportSuccess(&generator.Summary{
		TablesProcessed: 1,
		GeneratedFiles:  []string{"out/A.java"},
		DisabledPlugins: []string{"ToStringWithoutSerialVersionUidPlugin"},
		DryRun:          true,
	})

	output := out.String()
	assert.Contains(t, output, "Processed 1 tables\n")
	assert.Contains(t, output, "Disabled plugins: ToStringWithoutSerialVersionUidPlugin\n")
	assert.Contains(t, output, "  - out/A.java\n")
	assert.Contains(t, output, "Dry run")
	assert.Empty(t, errOut.String())
}

func TestFormatContextKey(t *testing.T) {
	assert.Equal(t, "Config Path", formatContextKey("config_path"))
	assert.Equal(t, "DSN", formatContextKey("dsn"))
	assert.Equal(t, "Table", formatContextKey("table"))
}
