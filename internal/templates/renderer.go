package templates

import (
	"strings"

	"github.com/yoshisuproject/mbgplug/internal/models"
	"github.com/yoshisuproject/mbgplug/internal/utils"
)

const indentUnit = "    "

// compilationUnit is the data handed to the source templates
type compilationUnit struct {
	FileComments []string
	Package      string
	Imports      []string
	JavaDoc      []string
	Annotations  []string
	Declaration  string
	Members      [][]string
}

// Renderer turns structural descriptors into Java source text
type Renderer struct {
	registry *TemplateRegistry
}

// NewRenderer creates a renderer over the built-in templates
func NewRenderer() *Renderer {
	return NewRendererWithRegistry(NewTemplateRegistry())
}

// NewRendererWithRegistry creates a renderer over a custom template registry
func NewRendererWithRegistry(registry *TemplateRegistry) *Renderer {
	return &Renderer{registry: registry}
}

// RenderInterface renders a mapper interface. Abstract methods are emitted without bodies.
func (r *Renderer) RenderInterface(iface *models.Interface) (string, error) {
	pkg := iface.Type.PackageName()
	imports := NewImportManager(pkg)
	imports.AddTypes(iface.ImportedTypes)
	for _, t := range iface.SuperInterfaces {
		imports.AddType(t)
	}

	members := make([][]string, 0, len(iface.Methods))
	for _, m := range iface.Methods {
		imports.AddMethod(m)
		members = append(members, methodLines(m, true))
	}

	decl := iface.Visibility.Keyword() + "interface " + iface.Type.ShortName()
	if len(iface.SuperInterfaces) > 0 {
		decl += " extends " + joinShortNames(iface.SuperInterfaces)
	}

	return r.render(InterfaceTemplate, compilationUnit{
		FileComments: iface.FileCommentLines,
		Package:      pkg,
		Imports:      imports.GenerateImports(),
		JavaDoc:      iface.JavaDocLines,
		Annotations:  iface.Annotations,
		Declaration:  decl,
		Members:      members,
	})
}

// RenderClass renders a model class: fields first, then methods
func (r *Renderer) RenderClass(class *models.TopLevelClass) (string, error) {
	pkg := class.Type.PackageName()
	imports := NewImportManager(pkg)
	imports.AddTypes(class.ImportedTypes)
	if class.SuperClass != nil {
		imports.AddType(*class.SuperClass)
	}
	for _, t := range class.SuperInterfaces {
		imports.AddType(t)
	}

	members := make([][]string, 0, len(class.Fields)+len(class.Methods))
	for _, f := range class.Fields {
		imports.AddType(f.Type)
		members = append(members, fieldLines(f))
	}
	for _, m := range class.Methods {
		imports.AddMethod(m)
		members = append(members, methodLines(m, false))
	}

	decl := class.Visibility.Keyword()
	if class.Abstract {
		decl += "abstract "
	}
	decl += "class " + class.Type.ShortName()
	if class.SuperClass != nil {
		decl += " extends " + class.SuperClass.ShortName()
	}
	if len(class.SuperInterfaces) > 0 {
		decl += " implements " + joinShortNames(class.SuperInterfaces)
	}

	return r.render(ClassTemplate, compilationUnit{
		FileComments: class.FileCommentLines,
		Package:      pkg,
		Imports:      imports.GenerateImports(),
		JavaDoc:      class.JavaDocLines,
		Annotations:  class.Annotations,
		Declaration:  decl,
		Members:      members,
	})
}

func (r *Renderer) render(name string, unit compilationUnit) (string, error) {
	out, err := r.registry.Execute(name, unit)
	if err != nil {
		return "", err
	}
	sep := utils.LineSeparator()
	if sep == "\n" {
		return out, nil
	}
	return strings.ReplaceAll(out, "\n", sep), nil
}

func fieldLines(f *models.Field) []string {
	lines := indentAll(f.JavaDocLines)
	lines = append(lines, indentAll(f.Annotations)...)

	var sb strings.Builder
	sb.WriteString(indentUnit)
	sb.WriteString(f.Visibility.Keyword())
	if f.Static {
		sb.WriteString("static ")
	}
	if f.Final {
		sb.WriteString("final ")
	}
	sb.WriteString(f.Type.ShortName())
	sb.WriteString(" ")
	sb.WriteString(f.Name)
	if f.InitializationString != "" {
		sb.WriteString(" = ")
		sb.WriteString(f.InitializationString)
	}
	sb.WriteString(";")
	return append(lines, sb.String())
}

func methodLines(m *models.Method, inInterface bool) []string {
	lines := indentAll(m.JavaDocLines)
	lines = append(lines, indentAll(m.Annotations)...)

	signature := indentUnit + methodSignature(m, inInterface)
	if inInterface && !m.Default && !m.Static {
		return append(lines, signature+";")
	}
	if m.Abstract {
		return append(lines, signature+";")
	}

	lines = append(lines, signature+" {")
	lines = append(lines, indentBody(m.BodyLines, 2)...)
	return append(lines, indentUnit+"}")
}

func methodSignature(m *models.Method, inInterface bool) string {
	var sb strings.Builder
	if inInterface {
		if m.Default {
			sb.WriteString("default ")
		}
	} else {
		sb.WriteString(m.Visibility.Keyword())
		if m.Abstract {
			sb.WriteString("abstract ")
		}
	}
	if m.Static {
		sb.WriteString("static ")
	}
	if m.Final && !inInterface {
		sb.WriteString("final ")
	}

	if !m.Constructor {
		if m.ReturnType != nil {
			sb.WriteString(m.ReturnType.ShortName())
		} else {
			sb.WriteString("void")
		}
		sb.WriteString(" ")
	}
	sb.WriteString(m.Name)
	sb.WriteString("(")
	for i, p := range m.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		for _, a := range p.Annotations {
			sb.WriteString(a)
			sb.WriteString(" ")
		}
		sb.WriteString(p.Type.ShortName())
		sb.WriteString(" ")
		sb.WriteString(p.Name)
	}
	sb.WriteString(")")
	return sb.String()
}

// indentBody indents body lines starting at depth, one level deeper after each
// line ending with "{" and one level shallower for lines starting with "}"
func indentBody(body []string, depth int) []string {
	out := make([]string, 0, len(body))
	for _, line := range body {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "}") && depth > 0 {
			depth--
		}
		if trimmed == "" {
			out = append(out, "")
		} else {
			out = append(out, strings.Repeat(indentUnit, depth)+trimmed)
		}
		if strings.HasSuffix(trimmed, "{") {
			depth++
		}
	}
	return out
}

func indentAll(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, indentUnit+l)
	}
	return out
}

func joinShortNames(types []models.TypeReference) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.ShortName()
	}
	return strings.Join(names, ", ")
}
