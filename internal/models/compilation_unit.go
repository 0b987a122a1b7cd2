package models

// ImportSet is an insertion-ordered set of types keyed by fully qualified name
type ImportSet struct {
	order []TypeReference
	seen  map[string]bool
}

// NewImportSet creates an empty set
func NewImportSet() *ImportSet {
	return &ImportSet{seen: make(map[string]bool)}
}

// Add inserts t unless an equal type is already present
func (s *ImportSet) Add(t TypeReference) {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	key := t.FullyQualifiedName()
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.order = append(s.order, t)
}

// Contains reports whether an equal type is present
func (s *ImportSet) Contains(t TypeReference) bool {
	return s.seen[t.FullyQualifiedName()]
}

// Types returns the members in insertion order
func (s *ImportSet) Types() []TypeReference {
	return append([]TypeReference(nil), s.order...)
}

// Len returns the number of members
func (s *ImportSet) Len() int {
	return len(s.order)
}

// Interface is the structural descriptor of a generated Java interface (a mapper)
type Interface struct {
	Type             TypeReference
	Visibility       Visibility
	SuperInterfaces  []TypeReference
	Methods          []*Method
	ImportedTypes    *ImportSet
	JavaDocLines     []string
	Annotations      []string
	FileCommentLines []string
}

// NewInterface creates a public interface of the given type
func NewInterface(t TypeReference) *Interface {
	return &Interface{
		Type:          t,
		Visibility:    VisibilityPublic,
		ImportedTypes: NewImportSet(),
	}
}

// AddMethod appends m to the method list
func (i *Interface) AddMethod(m *Method) {
	i.Methods = append(i.Methods, m)
}

// AddImportedType records a type the interface source must import
func (i *Interface) AddImportedType(t TypeReference) {
	i.ImportedTypes.Add(t)
}

// MethodByName returns the first method with the given name
func (i *Interface) MethodByName(name string) (*Method, bool) {
	return findMethod(i.Methods, name)
}

// TopLevelClass is the structural descriptor of a generated Java class (a model)
type TopLevelClass struct {
	Type             TypeReference
	Visibility       Visibility
	SuperClass       *TypeReference
	SuperInterfaces  []TypeReference
	Fields           []*Field
	Methods          []*Method
	ImportedTypes    *ImportSet
	Abstract         bool
	JavaDocLines     []string
	Annotations      []string
	FileCommentLines []string
}

// NewTopLevelClass creates a public class of the given type
func NewTopLevelClass(t TypeReference) *TopLevelClass {
	return &TopLevelClass{
		Type:          t,
		Visibility:    VisibilityPublic,
		ImportedTypes: NewImportSet(),
	}
}

// SetSuperClass records the superclass and its import
func (c *TopLevelClass) SetSuperClass(t TypeReference) {
	c.SuperClass = &t
	c.ImportedTypes.Add(t)
}

// AddSuperInterface records an implemented interface; duplicates are ignored
func (c *TopLevelClass) AddSuperInterface(t TypeReference) {
	if c.ImplementsInterface(t) {
		return
	}
	c.SuperInterfaces = append(c.SuperInterfaces, t)
}

// ImplementsInterface reports whether the class declares t among its super interfaces
func (c *TopLevelClass) ImplementsInterface(t TypeReference) bool {
	for _, si := range c.SuperInterfaces {
		if si.Equal(t) {
			return true
		}
	}
	return false
}

// AddField appends f to the field list
func (c *TopLevelClass) AddField(f *Field) {
	c.Fields = append(c.Fields, f)
}

// AddMethod appends m to the method list
func (c *TopLevelClass) AddMethod(m *Method) {
	c.Methods = append(c.Methods, m)
}

// AddImportedType records a type the class source must import
func (c *TopLevelClass) AddImportedType(t TypeReference) {
	c.ImportedTypes.Add(t)
}

// MethodByName returns the first method with the given name
func (c *TopLevelClass) MethodByName(name string) (*Method, bool) {
	return findMethod(c.Methods, name)
}

func findMethod(methods []*Method, name string) (*Method, bool) {
	for _, m := range methods {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}
