package introspect

import (
	"strings"

	"github.com/yoshisuproject/mbgplug/internal/models"
)

var (
	bigDecimalType = models.NewTypeReference("java.math.BigDecimal")
	dateType       = models.NewTypeReference("java.util.Date")
	byteArrayType  = models.NewTypeReference("byte[]")
)

// JavaTypeResolver maps JDBC type names to Java types
type JavaTypeResolver struct {
	mappings map[string]models.TypeReference
}

// NewJavaTypeResolver creates a resolver with the standard JDBC mappings
func NewJavaTypeResolver() *JavaTypeResolver {
	boxed := func(name string) models.TypeReference { return models.NewTypeReference("java.lang." + name) }
	return &JavaTypeResolver{mappings: map[string]models.TypeReference{
		"BIGINT":        boxed("Long"),
		"INTEGER":       boxed("Integer"),
		"SMALLINT":      boxed("Short"),
		"TINYINT":       boxed("Byte"),
		"BIT":           boxed("Boolean"),
		"BOOLEAN":       boxed("Boolean"),
		"DOUBLE":        boxed("Double"),
		"FLOAT":         boxed("Double"),
		"REAL":          boxed("Float"),
		"DECIMAL":       bigDecimalType,
		"NUMERIC":       bigDecimalType,
		"CHAR":          models.StringType,
		"VARCHAR":       models.StringType,
		"LONGVARCHAR":   models.StringType,
		"NCHAR":         models.StringType,
		"NVARCHAR":      models.StringType,
		"LONGNVARCHAR":  models.StringType,
		"CLOB":          models.StringType,
		"NCLOB":         models.StringType,
		"DATE":          dateType,
		"TIME":          dateType,
		"TIMESTAMP":     dateType,
		"BLOB":          byteArrayType,
		"BINARY":        byteArrayType,
		"VARBINARY":     byteArrayType,
		"LONGVARBINARY": byteArrayType,
	}}
}

// Resolve returns the Java type for jdbcType, falling back to java.lang.Object
func (r *JavaTypeResolver) Resolve(jdbcType string) models.TypeReference {
	if t, ok := r.mappings[strings.ToUpper(jdbcType)]; ok {
		return t
	}
	return models.ObjectType
}

// Override maps jdbcType to t for this resolver
func (r *JavaTypeResolver) Override(jdbcType string, t models.TypeReference) {
	r.mappings[strings.ToUpper(jdbcType)] = t
}

// SQLiteJDBCType maps a declared SQLite column type to a JDBC type name. Well-known
// names map directly; anything else follows SQLite's type affinity rules.
func SQLiteJDBCType(declared string) string {
	decl := strings.ToUpper(strings.TrimSpace(declared))
	if idx := strings.IndexByte(decl, '('); idx >= 0 {
		decl = strings.TrimSpace(decl[:idx])
	}

	switch decl {
	case "BIGINT", "SMALLINT", "TINYINT", "BOOLEAN", "BIT", "DATE", "TIME", "TIMESTAMP",
		"DECIMAL", "NUMERIC", "DOUBLE", "FLOAT", "REAL", "CHAR", "NCHAR", "NVARCHAR",
		"VARCHAR", "CLOB", "BLOB", "BINARY", "VARBINARY":
		return decl
	case "DATETIME":
		return "TIMESTAMP"
	case "TEXT":
		return "VARCHAR"
	case "":
		return "BLOB"
	}

	switch {
	case strings.Contains(decl, "INT"):
		return "INTEGER"
	case strings.Contains(decl, "CHAR"), strings.Contains(decl, "CLOB"), strings.Contains(decl, "TEXT"):
		return "VARCHAR"
	case strings.Contains(decl, "BLOB"):
		return "BLOB"
	case strings.Contains(decl, "REAL"), strings.Contains(decl, "FLOA"), strings.Contains(decl, "DOUB"):
		return "DOUBLE"
	default:
		return "NUMERIC"
	}
}

// CamelCase converts a database identifier such as user_name into a Java name.
// Separators (_ - @ $ # space / &) are dropped and the following letter is upper
// cased; everything else is lower cased. upperFirst selects UserName over userName.
func CamelCase(name string, upperFirst bool) string {
	var sb strings.Builder
	nextUpper := false
	for _, c := range name {
		switch c {
		case '_', '-', '@', '$', '#', ' ', '/', '&':
			if sb.Len() > 0 {
				nextUpper = true
			}
			continue
		}
		if nextUpper {
			sb.WriteString(strings.ToUpper(string(c)))
			nextUpper = false
		} else {
			sb.WriteString(strings.ToLower(string(c)))
		}
	}

	out := sb.String()
	if upperFirst && out != "" {
		out = strings.ToUpper(out[:1]) + out[1:]
	}
	return out
}
