package plugins

import (
	"github.com/yoshisuproject/mbgplug/internal/config"
	"github.com/yoshisuproject/mbgplug/internal/models"
)

const (
	PropUseToStringFromRoot = "useToStringFromRoot"
	PropSign                = "sign"
	PropOpenSign            = "openSign"

	serialVersionUIDName = "serialVersionUID"
)

// toStringSettings is resolved once in Validate and shared by every event
type toStringSettings struct {
	sign         Sign
	includeSuper bool
}

// ToStringWithoutSerialVersionUidPlugin adds a toString method to model classes that
// lists every field except the serialVersionUID marker of Serializable classes
type ToStringWithoutSerialVersionUidPlugin struct {
	Adapter
	settings toStringSettings
}

// NewToStringPlugin creates the plugin with the default settings
func NewToStringPlugin() *ToStringWithoutSerialVersionUidPlugin {
	return &ToStringWithoutSerialVersionUidPlugin{settings: toStringSettings{sign: DefaultSign}}
}

func (p *ToStringWithoutSerialVersionUidPlugin) Name() string {
	return "ToStringWithoutSerialVersionUidPlugin"
}

func (p *ToStringWithoutSerialVersionUidPlugin) signOption() config.EnumOption[Sign] {
	return config.EnumOption[Sign]{
		Owner:       p.Name(),
		Noun:        "sign",
		SymbolKey:   PropSign,
		LiteralKey:  PropOpenSign,
		FromSymbol:  SignFromSymbol,
		FromLiteral: SignFromLiteral,
		Symbols:     SignSymbols(),
		Literals:    SignLiterals(),
		Default:     DefaultSign,
		Name:        Sign.String,
	}
}

// Validate resolves the bracket style and the super class flag. A missing or
// invalid bracket style falls back to PAREN with a warning; the plugin stays valid.
func (p *ToStringWithoutSerialVersionUidPlugin) Validate(warnings *config.Warnings) bool {
	p.settings = toStringSettings{
		sign:         p.signOption().Resolve(p.Properties, warnings),
		includeSuper: config.IsTrue(p.Properties[PropUseToStringFromRoot]),
	}
	return true
}

// Sign returns the resolved bracket style
func (p *ToStringWithoutSerialVersionUidPlugin) Sign() Sign {
	return p.settings.sign
}

func (p *ToStringWithoutSerialVersionUidPlugin) ModelBaseRecordClassGenerated(class *models.TopLevelClass, table *models.IntrospectedTable) bool {
	p.addToString(class, table)
	return true
}

func (p *ToStringWithoutSerialVersionUidPlugin) ModelRecordWithBLOBsClassGenerated(class *models.TopLevelClass, table *models.IntrospectedTable) bool {
	p.addToString(class, table)
	return true
}

func (p *ToStringWithoutSerialVersionUidPlugin) ModelPrimaryKeyClassGenerated(class *models.TopLevelClass, table *models.IntrospectedTable) bool {
	p.addToString(class, table)
	return true
}

func (p *ToStringWithoutSerialVersionUidPlugin) addToString(class *models.TopLevelClass, table *models.IntrospectedTable) {
	method := models.NewMethod("toString")
	method.Visibility = models.VisibilityPublic
	method.SetReturnType(models.StringType)
	method.AddAnnotation("@Override")

	if table.TargetRuntime.PrefersAnnotations() {
		p.CommentGenerator().AddGeneralMethodAnnotation(method, table, class.ImportedTypes)
	} else {
		p.CommentGenerator().AddGeneralMethodComment(method, table)
	}

	method.AddBodyLines(toStringBody(class, p.settings)...)
	class.AddMethod(method)
}

// toStringBody assembles the method body in a single pass over the rendered fields
func toStringBody(class *models.TopLevelClass, settings toStringSettings) []string {
	lines := []string{
		"StringBuilder sb = new StringBuilder();",
		"sb.append(getClass().getSimpleName());",
		`sb.append("` + settings.sign.Open() + `");`,
	}

	serializable := class.ImplementsInterface(models.SerializableType)
	separator := ""
	for _, field := range class.Fields {
		if serializable && isSerialVersionUID(field) {
			continue
		}
		lines = append(lines, `sb.append("`+separator+field.Name+`=").append(`+field.Name+`);`)
		separator = ", "
	}

	lines = append(lines, `sb.append("`+settings.sign.Close()+`");`)
	if settings.includeSuper && class.SuperClass != nil {
		lines = append(lines,
			`sb.append(", from super class ");`,
			"sb.append(super.toString());",
		)
	}
	return append(lines, "return sb.toString();")
}

// isSerialVersionUID matches the full serialization marker signature,
// not just the name
func isSerialVersionUID(f *models.Field) bool {
	return f.Name == serialVersionUIDName &&
		f.Type.Equal(models.LongType) &&
		f.Visibility == models.VisibilityPrivate &&
		f.Static &&
		f.Final
}
