package generator

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/yoshisuproject/mbgplug/internal/comments"
	"github.com/yoshisuproject/mbgplug/internal/config"
	"github.com/yoshisuproject/mbgplug/internal/errors"
	"github.com/yoshisuproject/mbgplug/internal/introspect"
	"github.com/yoshisuproject/mbgplug/internal/models"
	"github.com/yoshisuproject/mbgplug/internal/plugins"
	"github.com/yoshisuproject/mbgplug/internal/templates"
	"github.com/yoshisuproject/mbgplug/internal/utils"
)

// Options configures a Generator. Only Document is required.
type Options struct {
	Document *config.Document

	// Fs receives the generated files. Defaults to the OS filesystem, or an
	// in-memory filesystem when DryRun is set.
	Fs     afero.Fs
	DryRun bool

	// OutputDir replaces the targetProject of both model and client generators
	OutputDir string

	Registry         *plugins.Registry
	Source           TableSource
	Renderer         SourceRenderer
	CommentGenerator comments.CommentGenerator
	Diagnostics      *utils.DiagnosticSystem
}

// Generator runs one configuration context end to end
type Generator struct {
	doc         *config.Document
	fs          afero.Fs
	dryRun      bool
	outputDir   string
	registry    *plugins.Registry
	source      TableSource
	renderer    SourceRenderer
	comments    comments.CommentGenerator
	diagnostics *utils.DiagnosticSystem
	now         func() time.Time
}

// GeneratedFile is one rendered source file
type GeneratedFile struct {
	Path    string
	Content string
}

// New creates a generator, filling unset options with defaults
func New(opts Options) *Generator {
	g := &Generator{
		doc:         opts.Document,
		fs:          opts.Fs,
		dryRun:      opts.DryRun,
		outputDir:   opts.OutputDir,
		registry:    opts.Registry,
		source:      opts.Source,
		renderer:    opts.Renderer,
		comments:    opts.CommentGenerator,
		diagnostics: opts.Diagnostics,
		now:         time.Now,
	}
	if g.fs == nil {
		if g.dryRun {
			g.fs = afero.NewMemMapFs()
		} else {
			g.fs = afero.NewOsFs()
		}
	}
	if g.registry == nil {
		g.registry = plugins.NewRegistry()
	}
	if g.renderer == nil {
		g.renderer = templates.NewRenderer()
	}
	if g.comments == nil {
		g.comments = comments.NewDefaultCommentGenerator()
	}
	if g.diagnostics == nil {
		g.diagnostics = utils.NewDiagnosticSystemWithWriters(utils.DiagnosticSilent, io.Discard, io.Discard)
	}
	return g
}

// Fs returns the filesystem the generator writes to
func (g *Generator) Fs() afero.Fs {
	return g.fs
}

// Validation is the outcome of resolving the context and validating its plugins
type Validation struct {
	Options         introspect.Options
	Plugins         *plugins.Aggregator
	Warnings        []string
	DisabledPlugins []string
}

// Validate resolves the context options, instantiates the configured plugins and
// validates them. Plugins that fail validation are dropped from the aggregator.
func (g *Generator) Validate() (*Validation, error) {
	if g.doc == nil {
		return nil, errors.New(errors.ConfigurationErrorCode, "no configuration document").
			WithSuggestion("Load a configuration file before generating")
	}
	contextCfg := g.doc.Context

	opts, err := introspect.OptionsFromContext(contextCfg)
	if err != nil {
		return nil, err
	}

	g.comments.AddConfigurationProperties(contextCfg.CommentGenerator.GeneratorProperties())

	aggregator, err := g.loadPlugins(contextCfg)
	if err != nil {
		return nil, err
	}

	var warnings config.Warnings
	disabled := aggregator.Validate(&warnings)
	g.diagnostics.Warnings(warnings)
	for _, name := range disabled {
		g.diagnostics.Warn("Plugin %s is disabled for this run", name)
	}
	g.diagnostics.Debug("%d plugin(s) active", aggregator.Len())

	return &Validation{
		Options:         opts,
		Plugins:         aggregator,
		Warnings:        warnings,
		DisabledPlugins: disabled,
	}, nil
}

// Generate introspects every configured table, builds and offers its descriptors to
// the plugins, renders the survivors and writes them out
func (g *Generator) Generate(ctx context.Context) (*Summary, error) {
	start := g.now()

	validation, err := g.Validate()
	if err != nil {
		return nil, err
	}
	contextCfg := g.doc.Context
	summary := &Summary{
		RunID:           uuid.NewString(),
		DryRun:          g.dryRun,
		Warnings:        validation.Warnings,
		DisabledPlugins: validation.DisabledPlugins,
	}
	g.diagnostics.Verbose("Run %s started for context '%s'", summary.RunID, contextCfg.ID)
	aggregator := validation.Plugins
	opts := validation.Options

	source, closeSource, err := g.tableSource(ctx, contextCfg, opts)
	if err != nil {
		return nil, err
	}
	defer closeSource()

	for _, tableCfg := range contextCfg.Tables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		table, err := source.Introspect(ctx, tableCfg)
		if err != nil {
			return nil, err
		}
		g.diagnostics.Info("Generating %s", table.Table)

		files, err := g.GenerateTable(table, aggregator, contextCfg)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if err := g.writeFile(f); err != nil {
				return nil, err
			}
			g.diagnostics.Verbose("Wrote %s", f.Path)
			summary.GeneratedFiles = append(summary.GeneratedFiles, f.Path)
		}
		summary.TablesProcessed++
	}

	summary.Elapsed = g.now().Sub(start)
	return summary, nil
}

// GenerateTable builds, offers and renders the descriptors of one table without writing them
func (g *Generator) GenerateTable(table *models.IntrospectedTable, aggregator *plugins.Aggregator, contextCfg config.ContextConfig) ([]GeneratedFile, error) {
	var files []GeneratedFile

	model := &modelBuilder{table: table, plugins: aggregator, comments: g.comments}
	for _, class := range model.build() {
		content, err := g.renderer.RenderClass(class)
		if err != nil {
			return nil, err
		}
		files = append(files, GeneratedFile{
			Path:    g.sourcePath(contextCfg.ModelGenerator, class.Type),
			Content: content,
		})
	}

	client := &clientBuilder{table: table, plugins: aggregator, comments: g.comments}
	if iface := client.build(); iface != nil {
		content, err := g.renderer.RenderInterface(iface)
		if err != nil {
			return nil, err
		}
		files = append(files, GeneratedFile{
			Path:    g.sourcePath(contextCfg.ClientGenerator, iface.Type),
			Content: content,
		})
	}
	return files, nil
}

// loadPlugins instantiates the configured plugins in declaration order
func (g *Generator) loadPlugins(contextCfg config.ContextConfig) (*plugins.Aggregator, error) {
	pluginCtx := &plugins.Context{ID: contextCfg.ID, CommentGenerator: g.comments}
	aggregator := plugins.NewAggregator()
	for _, pc := range contextCfg.Plugins {
		p, err := g.registry.New(pc.Type)
		if err != nil {
			return nil, err
		}
		p.SetContext(pluginCtx)
		p.SetProperties(pc.PluginProperties())
		aggregator.Add(p)
		g.diagnostics.Debug("Loaded plugin %s", p.Name())
	}
	return aggregator, nil
}

// tableSource picks the configured source: an explicit one, the SQLite connection,
// or the declared columns
func (g *Generator) tableSource(ctx context.Context, contextCfg config.ContextConfig, opts introspect.Options) (TableSource, func(), error) {
	if g.source != nil {
		return g.source, func() {}, nil
	}
	if contextCfg.Connection == nil {
		return introspect.NewDeclaredIntrospector(opts), func() {}, nil
	}

	db, err := introspect.OpenSQLite(ctx, contextCfg.Connection.DSN, opts)
	if err != nil {
		return nil, nil, err
	}
	return db, func() {
		if err := db.Close(); err != nil {
			g.diagnostics.Warn("Failed to close database: %v", err)
		}
	}, nil
}

// sourcePath is <targetProject>/<package path>/<Name>.java
func (g *Generator) sourcePath(target config.TargetConfig, t models.TypeReference) string {
	project := target.TargetProject
	if g.outputDir != "" {
		project = g.outputDir
	}
	pkgPath := filepath.FromSlash(strings.ReplaceAll(t.PackageName(), ".", "/"))
	return filepath.Join(project, pkgPath, t.BaseShortName()+".java")
}

func (g *Generator) writeFile(f GeneratedFile) error {
	if err := g.fs.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return errors.WrapFileSystemError("mkdir", filepath.Dir(f.Path), err)
	}
	if err := afero.WriteFile(g.fs, f.Path, []byte(f.Content), 0o644); err != nil {
		return errors.WrapFileSystemError("write", f.Path, err)
	}
	return nil
}
