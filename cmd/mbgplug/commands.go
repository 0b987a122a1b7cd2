package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yoshisuproject/mbgplug/internal/generator"
	"github.com/yoshisuproject/mbgplug/internal/utils"
)

func (a *app) generateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate model classes and mapper interfaces for the configured tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			diagnostics := a.diagnostics()
			diagnostics.Section("mbgplug Code Generator")

			doc, err := a.loadDocument()
			if err != nil {
				return err
			}
			diagnostics.Verbose("Loaded configuration %s", a.settings.ConfigPath)

			opts := generator.Options{
				Document:    doc,
				DryRun:      a.settings.DryRun,
				OutputDir:   a.settings.Output,
				Registry:    a.registry,
				Diagnostics: diagnostics,
			}
			if !a.settings.DryRun {
				opts.Fs = a.fs
			}

			summary, err := generator.New(opts).Generate(cmd.Context())
			if err != nil {
				return err
			}

			diagnostics.Summary("Generation Complete!", summary.Stats())
			if a.settings.Verbose && len(summary.GeneratedFiles) > 0 {
				diagnostics.Subsection("Generated Files")
				for _, file := range summary.GeneratedFiles {
					diagnostics.List("%s", file)
				}
			}
			diagnostics.Success("Generated %d file(s)", len(summary.GeneratedFiles))
			return nil
		},
	}
}

func (a *app) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration document and plugin properties without generating",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			diagnostics := a.diagnostics()

			doc, err := a.loadDocument()
			if err != nil {
				return err
			}

			// plugin warnings are reported once below, not by the generator
			validation, err := generator.New(generator.Options{
				Document:    doc,
				DryRun:      true,
				Registry:    a.registry,
				Diagnostics: a.diagnosticsAt(utils.DiagnosticError),
			}).Validate()
			if err != nil {
				return err
			}

			if !a.settings.Quiet {
				reporter := a.reporter()
				for _, warning := range validation.Warnings {
					reporter.ReportWarning(warning)
				}
				for _, name := range validation.DisabledPlugins {
					reporter.ReportWarning(fmt.Sprintf("Plugin %s fails validation and is disabled", name))
				}
			}

			diagnostics.Success("Configuration %s is valid: %d table(s), %d active plugin(s), %d warning(s)",
				a.settings.ConfigPath, len(doc.Context.Tables), validation.Plugins.Len(), len(validation.Warnings))
			return nil
		},
	}
}

func (a *app) pluginsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List the registered plugin types",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			diagnostics := a.diagnostics()
			diagnostics.Subsection(fmt.Sprintf("Registered plugins (%d)", a.registry.Len()))
			for _, name := range a.registry.Names() {
				diagnostics.List("%s", name)
			}
			return nil
		},
	}
}
