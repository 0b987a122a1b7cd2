package models

// Parameter represents a single method parameter
type Parameter struct {
	Name        string        // parameter name
	Type        TypeReference // declared type
	Annotations []string      // e.g. @Param("id")
}

// Method represents a Java method or constructor declaration
type Method struct {
	Name         string
	ReturnType   *TypeReference // nil when the method declares no return type
	Visibility   Visibility
	Parameters   []Parameter
	BodyLines    []string
	Annotations  []string
	JavaDocLines []string
	Static       bool
	Final        bool
	Abstract     bool
	Default      bool
	Constructor  bool
}

// NewMethod creates an empty method with the given name
func NewMethod(name string) *Method {
	return &Method{Name: name}
}

// CloneMethod returns a deep copy of m. Mutating the copy never affects m.
func CloneMethod(m *Method) *Method {
	clone := *m
	if m.ReturnType != nil {
		rt := *m.ReturnType
		clone.ReturnType = &rt
	}
	clone.Parameters = make([]Parameter, len(m.Parameters))
	for i, p := range m.Parameters {
		p.Annotations = append([]string(nil), p.Annotations...)
		clone.Parameters[i] = p
	}
	clone.BodyLines = append([]string(nil), m.BodyLines...)
	clone.Annotations = append([]string(nil), m.Annotations...)
	clone.JavaDocLines = append([]string(nil), m.JavaDocLines...)
	return &clone
}

// SetReturnType sets the declared return type
func (m *Method) SetReturnType(t TypeReference) {
	m.ReturnType = &t
}

// AddParameter appends a parameter
func (m *Method) AddParameter(p Parameter) {
	m.Parameters = append(m.Parameters, p)
}

// AddBodyLine appends a line to the method body
func (m *Method) AddBodyLine(line string) {
	m.BodyLines = append(m.BodyLines, line)
}

// AddBodyLines appends several lines to the method body
func (m *Method) AddBodyLines(lines ...string) {
	m.BodyLines = append(m.BodyLines, lines...)
}

// AddAnnotation appends an annotation such as @Override
func (m *Method) AddAnnotation(annotation string) {
	m.Annotations = append(m.Annotations, annotation)
}

// AddJavaDocLine appends a documentation line
func (m *Method) AddJavaDocLine(line string) {
	m.JavaDocLines = append(m.JavaDocLines, line)
}

// Field represents a Java field declaration
type Field struct {
	Name                 string
	Type                 TypeReference
	Visibility           Visibility
	Static               bool
	Final                bool
	InitializationString string
	JavaDocLines         []string
	Annotations          []string
}

// NewField creates a package-private field
func NewField(name string, t TypeReference) *Field {
	return &Field{Name: name, Type: t}
}

// AddJavaDocLine appends a documentation line
func (f *Field) AddJavaDocLine(line string) {
	f.JavaDocLines = append(f.JavaDocLines, line)
}
