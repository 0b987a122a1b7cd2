package templates

import (
	"bytes"
	"text/template"

	"github.com/yoshisuproject/mbgplug/internal/errors"
)

const (
	ClassTemplate     = "class"
	InterfaceTemplate = "interface"
)

// compilationUnitTemplate lays out a Java source file. Members are pre-rendered
// blocks of lines separated by one empty line.
const compilationUnitTemplate = `{{range .FileComments}}{{.}}
{{end}}{{if .Package}}package {{.Package}};

{{end}}{{if .Imports}}{{range .Imports}}{{.}}
{{end}}
{{end}}{{range .JavaDoc}}{{.}}
{{end}}{{range .Annotations}}{{.}}
{{end}}{{.Declaration}} {
{{range $i, $member := .Members}}{{if $i}}
{{end}}{{range $member}}{{.}}
{{end}}{{end}}}
`

// TemplateRegistry holds the parsed source templates by name
type TemplateRegistry struct {
	templates map[string]*template.Template
}

// NewTemplateRegistry parses the built-in templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{templates: make(map[string]*template.Template)}
	registry.mustRegister(ClassTemplate, compilationUnitTemplate)
	registry.mustRegister(InterfaceTemplate, compilationUnitTemplate)
	return registry
}

func (tr *TemplateRegistry) mustRegister(name, text string) {
	tr.templates[name] = template.Must(template.New(name).Parse(text))
}

// Register parses text and stores it under name, replacing any previous template
func (tr *TemplateRegistry) Register(name, text string) error {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return errors.WrapTemplateError(name, "parse", err)
	}
	tr.templates[name] = tmpl
	return nil
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (*template.Template, bool) {
	tmpl, exists := tr.templates[name]
	return tmpl, exists
}

// Execute renders the named template with data
func (tr *TemplateRegistry) Execute(name string, data interface{}) (string, error) {
	tmpl, exists := tr.Get(name)
	if !exists {
		return "", errors.Newf(errors.TemplateErrorCode, "template '%s' is not registered", name).
			WithContext("template", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.WrapTemplateError(name, "execute", err)
	}
	return buf.String(), nil
}
