package plugins

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoshisuproject/mbgplug/internal/comments"
	"github.com/yoshisuproject/mbgplug/internal/config"
	"github.com/yoshisuproject/mbgplug/internal/models"
)

func newToString(t *testing.T, props config.Properties) (*ToStringWithoutSerialVersionUidPlugin, *comments.Recorder, config.Warnings) {
	t.Helper()
	recorder := &comments.Recorder{}
	p := NewToStringPlugin()
	p.SetContext(&Context{ID: "test", CommentGenerator: recorder})
	p.SetProperties(props)

	var warnings config.Warnings
	require.True(t, p.Validate(&warnings))
	return p, recorder, warnings
}

func serialVersionUID() *models.Field {
	f := models.NewField("serialVersionUID", models.LongType)
	f.Visibility = models.VisibilityPrivate
	f.Static = true
	f.Final = true
	f.InitializationString = "1L"
	return f
}

func userClass(serializable bool) *models.TopLevelClass {
	class := models.NewTopLevelClass(models.NewTypeReference("com.example.model.User"))
	if serializable {
		class.AddSuperInterface(models.SerializableType)
	}
	class.AddField(serialVersionUID())
	class.AddField(models.NewField("id", models.NewTypeReference("java.lang.Long")))
	class.AddField(models.NewField("name", models.StringType))
	return class
}

func TestToStringPlugin_Validate(t *testing.T) {
	tests := []struct {
		name         string
		props        config.Properties
		wantSign     Sign
		wantWarnings int
		mention      string
	}{
		{"neither property", config.Properties{}, SignParen, 1, "Used default PAREN sign"},
		{"valid openSign", config.Properties{PropOpenSign: "("}, SignParen, 0, ""},
		{"openSign bracket", config.Properties{PropOpenSign: "["}, SignBracket, 0, ""},
		{"openSign beats sign", config.Properties{PropOpenSign: "[", PropSign: "BRACE"}, SignBracket, 0, ""},
		{"invalid openSign", config.Properties{PropOpenSign: "$"}, SignParen, 1, "Used default PAREN sign"},
		{"valid sign", config.Properties{PropSign: "BRACKET"}, SignBracket, 0, ""},
		{"than sign", config.Properties{PropSign: "THAN_SIGN"}, SignThanSign, 0, ""},
		{"invalid sign", config.Properties{PropSign: "BOGUS"}, SignParen, 1, "BOGUS"},
		{"lower case sign is rejected", config.Properties{PropSign: "brace"}, SignParen, 1, "brace"},
		{"invalid openSign with valid sign", config.Properties{PropOpenSign: "$", PropSign: "BRACE"}, SignBrace, 1, "BRACE sign"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, warnings := newToString(t, tt.props)

			assert.Equal(t, tt.wantSign, p.Sign())
			require.Len(t, warnings, tt.wantWarnings)
			if tt.mention != "" {
				assert.Contains(t, warnings[0], tt.mention)
				assert.Contains(t, warnings[0], "ToStringWithoutSerialVersionUidPlugin")
			}
		})
	}
}

func TestToStringPlugin_DefaultBody(t *testing.T) {
	p, recorder, _ := newToString(t, config.Properties{})
	class := userClass(true)
	table := newTestTable(models.TargetRuntimeMyBatis3)

	assert.True(t, p.ModelBaseRecordClassGenerated(class, table))

	method, ok := class.MethodByName("toString")
	require.True(t, ok)
	assert.Equal(t, []string{
		"StringBuilder sb = new StringBuilder();",
		"sb.append(getClass().getSimpleName());",
		`sb.append("(");`,
		`sb.append("id=").append(id);`,
		`sb.append(", name=").append(name);`,
		`sb.append(")");`,
		"return sb.toString();",
	}, method.BodyLines)

	assert.Equal(t, models.VisibilityPublic, method.Visibility)
	assert.Empty(t, method.Parameters)
	assert.Equal(t, "java.lang.String", method.ReturnType.FullyQualifiedName())
	assert.Contains(t, method.Annotations, "@Override")

	require.Len(t, recorder.CallsOf("comment"), 1)
	assert.Empty(t, recorder.CallsOf("annotation"))
	assert.Len(t, class.Fields, 3)
}

func TestToStringPlugin_FieldFiltering(t *testing.T) {
	nearMiss := func(mutate func(f *models.Field)) *models.TopLevelClass {
		class := models.NewTopLevelClass(models.NewTypeReference("com.example.model.User"))
		class.AddSuperInterface(models.SerializableType)
		f := serialVersionUID()
		mutate(f)
		class.AddField(f)
		class.AddField(models.NewField("id", models.NewTypeReference("java.lang.Long")))
		return class
	}

	tests := []struct {
		name         string
		class        *models.TopLevelClass
		wantMarker   bool
		wantSegments int
	}{
		{"serializable class drops the marker", userClass(true), false, 2},
		{"class without Serializable keeps it", userClass(false), true, 3},
		{"boxed Long is not the marker", nearMiss(func(f *models.Field) { f.Type = models.NewTypeReference("java.lang.Long") }), true, 2},
		{"public field is not the marker", nearMiss(func(f *models.Field) { f.Visibility = models.VisibilityPublic }), true, 2},
		{"instance field is not the marker", nearMiss(func(f *models.Field) { f.Static = false }), true, 2},
		{"non-final field is not the marker", nearMiss(func(f *models.Field) { f.Final = false }), true, 2},
		{"other name is not the marker", nearMiss(func(f *models.Field) { f.Name = "serialVersionUid" }), false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, _ := newToString(t, config.Properties{PropSign: "PAREN"})
			p.ModelBaseRecordClassGenerated(tt.class, newTestTable(models.TargetRuntimeMyBatis3))

			method, ok := tt.class.MethodByName("toString")
			require.True(t, ok)
			body := strings.Join(method.BodyLines, "\n")

			assert.Equal(t, tt.wantMarker, strings.Contains(body, "serialVersionUID"))
			segments := 0
			for _, line := range method.BodyLines {
				if strings.Contains(line, "=\").append(") {
					segments++
				}
			}
			assert.Equal(t, tt.wantSegments, segments)
		})
	}
}

func TestToStringPlugin_Brackets(t *testing.T) {
	tests := []struct {
		props       config.Properties
		open, close string
	}{
		{config.Properties{PropOpenSign: "[", PropSign: "THAN_SIGN"}, "[", "]"},
		{config.Properties{PropSign: "BRACKET"}, "[", "]"},
		{config.Properties{PropSign: "BRACE"}, "{", "}"},
		{config.Properties{PropOpenSign: "<"}, "<", ">"},
		{config.Properties{}, "(", ")"},
	}

	for _, tt := range tests {
		p, _, _ := newToString(t, tt.props)
		class := userClass(true)
		p.ModelPrimaryKeyClassGenerated(class, newTestTable(models.TargetRuntimeMyBatis3))

		method, _ := class.MethodByName("toString")
		assert.Equal(t, `sb.append("`+tt.open+`");`, method.BodyLines[2])
		assert.Equal(t, `sb.append("`+tt.close+`");`, method.BodyLines[len(method.BodyLines)-2])
	}
}

func TestToStringPlugin_SuperClass(t *testing.T) {
	superLines := []string{`sb.append(", from super class ");`, "sb.append(super.toString());"}

	t.Run("enabled with super class", func(t *testing.T) {
		p, _, _ := newToString(t, config.Properties{PropUseToStringFromRoot: "TRUE"})
		class := userClass(true)
		class.SetSuperClass(models.NewTypeReference("com.example.model.UserKey"))
		p.ModelRecordWithBLOBsClassGenerated(class, newTestTable(models.TargetRuntimeMyBatis3))

		method, _ := class.MethodByName("toString")
		n := len(method.BodyLines)
		assert.Equal(t, superLines, method.BodyLines[n-3:n-1])
		assert.Equal(t, "return sb.toString();", method.BodyLines[n-1])
	})

	t.Run("enabled without super class", func(t *testing.T) {
		p, _, _ := newToString(t, config.Properties{PropUseToStringFromRoot: "true"})
		class := userClass(true)
		p.ModelRecordWithBLOBsClassGenerated(class, newTestTable(models.TargetRuntimeMyBatis3))

		method, _ := class.MethodByName("toString")
		assert.NotContains(t, method.BodyLines, superLines[0])
		assert.NotContains(t, method.BodyLines, superLines[1])
	})

	t.Run("disabled with super class", func(t *testing.T) {
		p, _, _ := newToString(t, config.Properties{PropUseToStringFromRoot: "yes"})
		class := userClass(true)
		class.SetSuperClass(models.NewTypeReference("com.example.model.UserKey"))
		p.ModelRecordWithBLOBsClassGenerated(class, newTestTable(models.TargetRuntimeMyBatis3))

		method, _ := class.MethodByName("toString")
		assert.NotContains(t, method.BodyLines, superLines[0])
	})
}

func TestToStringPlugin_AnnotationConvention(t *testing.T) {
	p, recorder, _ := newToString(t, config.Properties{PropSign: "PAREN"})
	class := userClass(true)

	p.ModelBaseRecordClassGenerated(class, newTestTable(models.TargetRuntimeMyBatis3DynamicSQL))

	assert.Len(t, recorder.CallsOf("annotation"), 1)
	assert.Empty(t, recorder.CallsOf("comment"))
}

func TestToStringPlugin_IndependentInvocations(t *testing.T) {
	p, _, _ := newToString(t, config.Properties{PropSign: "BRACE"})
	user := userClass(true)
	order := models.NewTopLevelClass(models.NewTypeReference("com.example.model.Order"))
	order.AddField(models.NewField("total", models.NewTypeReference("java.math.BigDecimal")))
	table := newTestTable(models.TargetRuntimeMyBatis3)

	p.ModelBaseRecordClassGenerated(user, table)
	p.ModelBaseRecordClassGenerated(order, table)

	userMethod, _ := user.MethodByName("toString")
	orderMethod, _ := order.MethodByName("toString")
	assert.Len(t, user.Methods, 1)
	assert.Len(t, order.Methods, 1)
	assert.Equal(t, `sb.append("total=").append(total);`, orderMethod.BodyLines[3])
	assert.NotContains(t, strings.Join(orderMethod.BodyLines, "\n"), "name=")
	assert.NotContains(t, strings.Join(userMethod.BodyLines, "\n"), "total=")
}

func TestToStringPlugin_EmptyClass(t *testing.T) {
	p, _, _ := newToString(t, config.Properties{PropSign: "PAREN"})
	class := models.NewTopLevelClass(models.NewTypeReference("com.example.model.Empty"))

	p.ModelBaseRecordClassGenerated(class, newTestTable(models.TargetRuntimeMyBatis3))

	method, _ := class.MethodByName("toString")
	assert.Equal(t, []string{
		"StringBuilder sb = new StringBuilder();",
		"sb.append(getClass().getSimpleName());",
		`sb.append("(");`,
		`sb.append(")");`,
		"return sb.toString();",
	}, method.BodyLines)
}

func TestSign(t *testing.T) {
	for _, symbol := range SignSymbols() {
		s, ok := SignFromSymbol(symbol)
		require.True(t, ok)
		assert.Equal(t, symbol, s.String())

		fromLiteral, ok := SignFromLiteral(s.Open())
		require.True(t, ok)
		assert.Equal(t, s, fromLiteral)
	}

	_, ok := SignFromLiteral(")")
	assert.False(t, ok)
	_, ok = SignFromSymbol("")
	assert.False(t, ok)
	assert.Equal(t, []string{"(", "[", "{", "<"}, SignLiterals())
	assert.Equal(t, "(", Sign(42).Open())
}
