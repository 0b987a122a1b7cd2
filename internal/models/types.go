package models

import "strings"

// primitiveNames lists the Java primitive type keywords
var primitiveNames = map[string]bool{
	"boolean": true,
	"byte":    true,
	"char":    true,
	"double":  true,
	"float":   true,
	"int":     true,
	"long":    true,
	"short":   true,
	"void":    true,
}

// Well-known type references used by the generator and the plugins
var (
	StringType       = NewTypeReference("java.lang.String")
	ObjectType       = NewTypeReference("java.lang.Object")
	IntType          = Primitive("int")
	LongType         = Primitive("long")
	BooleanPrimitive = Primitive("boolean")
	ListType         = NewTypeReference("java.util.List")
	OptionalType     = NewTypeReference("java.util.Optional")
	SerializableType = NewTypeReference("java.io.Serializable")
)

// WildcardBound describes the bound of a wildcard type argument
type WildcardBound int

const (
	WildcardUnbounded WildcardBound = iota
	WildcardExtends
	WildcardSuper
)

// TypeReference is an immutable, fully qualified Java type name. It may be a generic
// instantiation (List<User>), a primitive, an array or a wildcard type argument.
type TypeReference struct {
	pkg       string
	base      string
	args      []TypeReference
	primitive bool
	dims      int
	wildcard  bool
	bound     WildcardBound
}

// IsPrimitiveName reports whether name is a Java primitive keyword
func IsPrimitiveName(name string) bool {
	return primitiveNames[name]
}

// NewTypeReference builds a type from a non-generic name such as "java.util.Date",
// "long" or "byte[]". Generic text is handled by the typeparser package.
func NewTypeReference(name string) TypeReference {
	name = strings.TrimSpace(name)
	dims := 0
	for strings.HasSuffix(name, "[]") {
		dims++
		name = strings.TrimSpace(strings.TrimSuffix(name, "[]"))
	}

	if IsPrimitiveName(name) {
		return TypeReference{base: name, primitive: true, dims: dims}
	}

	pkg, base := "", name
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		pkg, base = name[:idx], name[idx+1:]
	}
	return TypeReference{pkg: pkg, base: base, dims: dims}
}

// NewQualifiedType builds a type from its parts
func NewQualifiedType(pkg, base string, args []TypeReference, dims int) TypeReference {
	t := TypeReference{pkg: pkg, base: base, dims: dims}
	if pkg == "" && IsPrimitiveName(base) {
		t.primitive = true
	}
	if len(args) > 0 {
		t.args = append([]TypeReference(nil), args...)
	}
	return t
}

// Primitive returns the primitive type with the given keyword
func Primitive(name string) TypeReference {
	return TypeReference{base: name, primitive: true}
}

// Wildcard returns a wildcard type argument, optionally bounded
func Wildcard(bound WildcardBound, boundType *TypeReference) TypeReference {
	t := TypeReference{base: "?", wildcard: true, bound: bound}
	if bound != WildcardUnbounded && boundType != nil {
		t.args = []TypeReference{*boundType}
	}
	return t
}

// Generic returns an instantiation of t's base type with the given type arguments
func (t TypeReference) Generic(args ...TypeReference) TypeReference {
	out := t
	out.args = append([]TypeReference(nil), args...)
	return out
}

// ArrayOf returns t with additional array dimensions
func (t TypeReference) ArrayOf(dims int) TypeReference {
	out := t
	out.args = append([]TypeReference(nil), t.args...)
	out.dims += dims
	return out
}

// PackageName returns the package part, empty for primitives and default-package types
func (t TypeReference) PackageName() string {
	return t.pkg
}

// BaseShortName returns the simple name without type arguments or array suffix
func (t TypeReference) BaseShortName() string {
	return t.base
}

// BaseQualifiedName returns the qualified name without type arguments or array suffix
func (t TypeReference) BaseQualifiedName() string {
	if t.pkg == "" {
		return t.base
	}
	return t.pkg + "." + t.base
}

// TypeArguments returns a copy of the generic type arguments
func (t TypeReference) TypeArguments() []TypeReference {
	return append([]TypeReference(nil), t.args...)
}

// FullyQualifiedName renders the type with qualified names throughout,
// e.g. java.util.Optional<com.example.User>
func (t TypeReference) FullyQualifiedName() string {
	return t.render(TypeReference.BaseQualifiedName, TypeReference.FullyQualifiedName)
}

// ShortName renders the type with simple names throughout, e.g. Optional<User>
func (t TypeReference) ShortName() string {
	return t.render(TypeReference.BaseShortName, TypeReference.ShortName)
}

func (t TypeReference) render(base, arg func(TypeReference) string) string {
	var sb strings.Builder
	if t.wildcard {
		sb.WriteString("?")
		if len(t.args) == 1 {
			switch t.bound {
			case WildcardExtends:
				sb.WriteString(" extends ")
			case WildcardSuper:
				sb.WriteString(" super ")
			}
			sb.WriteString(arg(t.args[0]))
		}
		return sb.String()
	}

	sb.WriteString(base(t))
	if len(t.args) > 0 {
		sb.WriteString("<")
		for i, a := range t.args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(arg(a))
		}
		sb.WriteString(">")
	}
	for i := 0; i < t.dims; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

// IsPrimitive reports whether t is a primitive (not an array of primitives)
func (t TypeReference) IsPrimitive() bool {
	return t.primitive && t.dims == 0
}

// IsArray reports whether t has array dimensions
func (t TypeReference) IsArray() bool {
	return t.dims > 0
}

// IsWildcard reports whether t is a wildcard type argument
func (t TypeReference) IsWildcard() bool {
	return t.wildcard
}

// IsExplicitlyImported reports whether a compilation unit must import t's base type
func (t TypeReference) IsExplicitlyImported() bool {
	return !t.primitive && !t.wildcard && t.pkg != "" && t.pkg != "java.lang"
}

// ImportList returns the qualified names that must be imported to use t,
// including those of its type arguments
func (t TypeReference) ImportList() []string {
	var out []string
	if t.IsExplicitlyImported() {
		out = append(out, t.BaseQualifiedName())
	}
	for _, a := range t.args {
		out = append(out, a.ImportList()...)
	}
	return out
}

// Equal reports whether both references denote the same type
func (t TypeReference) Equal(other TypeReference) bool {
	return t.FullyQualifiedName() == other.FullyQualifiedName()
}

// String implements fmt.Stringer
func (t TypeReference) String() string {
	return t.FullyQualifiedName()
}

// Visibility is a Java access modifier
type Visibility int

const (
	VisibilityPackage Visibility = iota
	VisibilityPublic
	VisibilityProtected
	VisibilityPrivate
)

// Keyword returns the source keyword followed by a space, or "" for package-private
func (v Visibility) Keyword() string {
	switch v {
	case VisibilityPublic:
		return "public "
	case VisibilityProtected:
		return "protected "
	case VisibilityPrivate:
		return "private "
	default:
		return ""
	}
}

// String returns the string representation of the visibility
func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityProtected:
		return "protected"
	case VisibilityPrivate:
		return "private"
	default:
		return "package"
	}
}
