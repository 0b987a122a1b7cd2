package templates

import (
	"sort"
	"strings"

	"github.com/yoshisuproject/mbgplug/internal/models"
)

// ImportManager collects the imports of one compilation unit and renders them
// as sorted import statements
type ImportManager struct {
	packageName string
	imports     map[string]bool
}

// NewImportManager creates an import manager for a unit in packageName
func NewImportManager(packageName string) *ImportManager {
	return &ImportManager{
		packageName: packageName,
		imports:     make(map[string]bool),
	}
}

// AddType records the imports needed to reference t, including its type arguments.
// java.lang, primitives and types of the unit's own package are skipped.
func (im *ImportManager) AddType(t models.TypeReference) {
	for _, name := range t.ImportList() {
		if packageOf(name) == im.packageName {
			continue
		}
		im.imports[name] = true
	}
}

// AddTypes records every member of set
func (im *ImportManager) AddTypes(set *models.ImportSet) {
	if set == nil {
		return
	}
	for _, t := range set.Types() {
		im.AddType(t)
	}
}

// AddMethod records the return and parameter types of m
func (im *ImportManager) AddMethod(m *models.Method) {
	if m.ReturnType != nil {
		im.AddType(*m.ReturnType)
	}
	for _, p := range m.Parameters {
		im.AddType(p.Type)
	}
}

// Len returns the number of distinct imports
func (im *ImportManager) Len() int {
	return len(im.imports)
}

// GenerateImports returns the import statements. Third-party imports come first,
// then java and javax imports, each group sorted and separated by an empty line.
func (im *ImportManager) GenerateImports() []string {
	var other, jdk []string
	for name := range im.imports {
		stmt := "import " + name + ";"
		if strings.HasPrefix(name, "java.") || strings.HasPrefix(name, "javax.") {
			jdk = append(jdk, stmt)
		} else {
			other = append(other, stmt)
		}
	}
	sort.Strings(other)
	sort.Strings(jdk)

	if len(other) > 0 && len(jdk) > 0 {
		other = append(other, "")
	}
	return append(other, jdk...)
}

func packageOf(qualified string) string {
	if idx := strings.LastIndex(qualified, "."); idx >= 0 {
		return qualified[:idx]
	}
	return ""
}
