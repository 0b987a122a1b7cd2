package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/yoshisuproject/mbgplug/internal/errors"
	"github.com/yoshisuproject/mbgplug/internal/generator"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
	errOut  io.Writer
}

// NewDiagnosticReporterWithWriters creates a reporter with explicit writers
func NewDiagnosticReporterWithWriters(verbose bool, out, errOut io.Writer) *DiagnosticReporter {
	return &DiagnosticReporter{verbose: verbose, out: out, errOut: errOut}
}

// ReportWarning prints a single warning line
func (r *DiagnosticReporter) ReportWarning(message string) {
	color.New(color.FgYellow, color.Bold).Fprint(r.errOut, "! ")
	fmt.Fprintf(r.errOut, "%s\n", message)
}

// ReportError prints err with its code, context and suggestions when it carries them
func (r *DiagnosticReporter) ReportError(err error) {
	fmt.Fprintf(r.errOut, "\nERROR: Code Generation Failed\n")
	fmt.Fprintf(r.errOut, "=============================\n\n")

	if baseErr, ok := errors.AsBaseError(err); ok {
		r.reportBaseError(baseErr)
	} else {
		fmt.Fprintf(r.errOut, "Message: %s\n\n", err.Error())
	}

	fmt.Fprintf(r.errOut, "\n")
}

func (r *DiagnosticReporter) reportBaseError(baseErr *errors.BaseError) {
	r.printErrorHeader(baseErr.Code)

	fmt.Fprintf(r.errOut, "Message: %s\n\n", baseErr.Message)

	if r.verbose && baseErr.Cause != nil {
		fmt.Fprintf(r.errOut, "Underlying cause: %s\n\n", baseErr.Cause.Error())
	}

	if keys := baseErr.ContextKeys(); len(keys) > 0 {
		fmt.Fprintf(r.errOut, "Context:\n")
		for _, key := range keys {
			fmt.Fprintf(r.errOut, "   %s: %v\n", formatContextKey(key), baseErr.ContextData[key])
		}
		fmt.Fprintf(r.errOut, "\n")
	}

	if suggestions := baseErr.Suggestions(); len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}

	r.printAdditionalHelp(baseErr.Code)

	if r.verbose && baseErr.Cause != nil {
		r.printErrorChain(baseErr.Cause)
	}
}

func (r *DiagnosticReporter) printErrorHeader(code errors.ErrorCode) {
	var title string
	switch code {
	case errors.ConfigurationErrorCode:
		title = "Configuration Error"
	case errors.ValidationErrorCode:
		title = "Validation Error"
	case errors.PluginErrorCode:
		title = "Plugin Error"
	case errors.IntrospectionErrorCode:
		title = "Introspection Error"
	case errors.GenerationErrorCode:
		title = "Code Generation Error"
	case errors.TemplateErrorCode:
		title = "Template Error"
	case errors.FileSystemErrorCode:
		title = "File System Error"
	default:
		title = "Unknown Error"
	}

	fmt.Fprintf(r.errOut, "Type: %s\n", title)
	fmt.Fprintf(r.errOut, "%s\n\n", strings.Repeat("-", len(title)+6))
}

// formatContextKey converts snake_case keys to Title Case
func formatContextKey(key string) string {
	if key == "dsn" {
		return "DSN"
	}
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.errOut, "Suggestions:\n")
	for i, suggestion := range suggestions {
		lines := strings.Split(suggestion, "\n")
		fmt.Fprintf(r.errOut, "   %d. %s\n", i+1, lines[0])
		for _, line := range lines[1:] {
			if strings.TrimSpace(line) != "" {
				fmt.Fprintf(r.errOut, "      %s\n", line)
			}
		}
	}
	fmt.Fprintf(r.errOut, "\n")
}

func (r *DiagnosticReporter) printAdditionalHelp(code errors.ErrorCode) {
	switch code {
	case errors.ConfigurationErrorCode, errors.ValidationErrorCode:
		fmt.Fprintf(r.errOut, "Configuration Help:\n")
		fmt.Fprintf(r.errOut, "  - The document needs a context with javaModelGenerator, javaClientGenerator and tables\n")
		fmt.Fprintf(r.errOut, "  - Without jdbcConnection every table must declare its columns\n")
		fmt.Fprintf(r.errOut, "  - Run 'mbgplug validate' to check a document without generating\n\n")

	case errors.PluginErrorCode:
		fmt.Fprintf(r.errOut, "Plugin Help:\n")
		fmt.Fprintf(r.errOut, "  - Run 'mbgplug plugins' to list the registered plugin types\n\n")
	}

	fmt.Fprintf(r.errOut, "For more help:\n")
	fmt.Fprintf(r.errOut, "  - Run with --verbose for more detailed output\n")
}

func (r *DiagnosticReporter) printErrorChain(err error) {
	fmt.Fprintf(r.errOut, "\nError Chain:\n")
	level := 1
	for err != nil {
		fmt.Fprintf(r.errOut, "  %d. %s\n", level, err.Error())
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = unwrapper.Unwrap()
		level++
	}
}

// ReportSuccess prints the outcome of a generation run
func (r *DiagnosticReporter) ReportSuccess(summary *generator.Summary) {
	fmt.Fprintf(r.out, "\nCode Generation Completed Successfully!\n")
	fmt.Fprintf(r.out, "=======================================\n\n")

	fmt.Fprintf(r.out, "Processed %d tables\n", summary.TablesProcessed)
	if len(summary.DisabledPlugins) > 0 {
		fmt.Fprintf(r.out, "Disabled plugins: %s\n", strings.Join(summary.DisabledPlugins, ", "))
	}

	if len(summary.GeneratedFiles) > 0 {
		fmt.Fprintf(r.out, "\nGenerated files:\n")
		for _, file := range summary.GeneratedFiles {
			fmt.Fprintf(r.out, "  - %s\n", file)
		}
	}

	if summary.DryRun {
		fmt.Fprintf(r.out, "\nDry run: nothing was written to disk\n")
	}
}
