package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoshisuproject/mbgplug/internal/errors"
	"github.com/yoshisuproject/mbgplug/internal/models"
	"github.com/yoshisuproject/mbgplug/internal/utils"
)

var (
	userType    = models.NewTypeReference("com.example.model.User")
	userKeyType = models.NewTypeReference("com.example.model.UserKey")
	exampleType = models.NewTypeReference("com.example.model.UserExample")
)

func TestImportManager(t *testing.T) {
	im := NewImportManager("com.example.mapper")
	im.AddType(models.OptionalType.Generic(userType))
	im.AddType(models.ListType.Generic(userType))
	im.AddType(models.StringType)
	im.AddType(models.LongType)
	im.AddType(models.NewTypeReference("com.example.mapper.Other"))
	im.AddType(models.NewTypeReference("org.apache.ibatis.annotations.Param"))

	assert.Equal(t, 4, im.Len())
	assert.Equal(t, []string{
		"import com.example.model.User;",
		"import org.apache.ibatis.annotations.Param;",
		"",
		"import java.util.List;",
		"import java.util.Optional;",
	}, im.GenerateImports())
}

func TestImportManager_OnlyJDK(t *testing.T) {
	im := NewImportManager("p")
	im.AddTypes(nil)
	set := models.NewImportSet()
	set.Add(models.SerializableType)
	im.AddTypes(set)

	assert.Equal(t, []string{"import java.io.Serializable;"}, im.GenerateImports())
}

func TestRenderInterface(t *testing.T) {
	iface := models.NewInterface(models.NewTypeReference("com.example.mapper.UserMapper"))

	insert := models.NewMethod("insert")
	insert.Visibility = models.VisibilityPublic
	insert.SetReturnType(models.IntType)
	insert.AddParameter(models.Parameter{Name: "row", Type: userType})
	iface.AddMethod(insert)

	sel := models.NewMethod("selectByExample")
	sel.Visibility = models.VisibilityPublic
	sel.SetReturnType(models.ListType.Generic(userType))
	sel.AddParameter(models.Parameter{Name: "example", Type: exampleType})
	sel.AddJavaDocLine("/**")
	sel.AddJavaDocLine(" * @mbg.generated")
	sel.AddJavaDocLine(" */")
	iface.AddMethod(sel)

	out, err := NewRenderer().RenderInterface(iface)
	require.NoError(t, err)

	want := strings.Join([]string{
		"package com.example.mapper;",
		"",
		"import com.example.model.User;",
		"import com.example.model.UserExample;",
		"",
		"import java.util.List;",
		"",
		"public interface UserMapper {",
		"    int insert(User row);",
		"",
		"    /**",
		"     * @mbg.generated",
		"     */",
		"    List<User> selectByExample(UserExample example);",
		"}",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestRenderInterface_DefaultMethodAndSuper(t *testing.T) {
	iface := models.NewInterface(models.NewTypeReference("a.B"))
	iface.SuperInterfaces = []models.TypeReference{models.NewTypeReference("c.Base")}

	m := models.NewMethod("name")
	m.Default = true
	m.SetReturnType(models.StringType)
	m.AddBodyLine(`return "b";`)
	iface.AddMethod(m)

	out, err := NewRenderer().RenderInterface(iface)
	require.NoError(t, err)
	assert.Contains(t, out, "import c.Base;")
	assert.Contains(t, out, "public interface B extends Base {")
	assert.Contains(t, out, "    default String name() {\n        return \"b\";\n    }\n")
}

func TestRenderClass(t *testing.T) {
	class := models.NewTopLevelClass(userType)
	class.SetSuperClass(userKeyType)
	class.AddSuperInterface(models.SerializableType)
	class.Annotations = []string{"@SuppressWarnings(\"all\")"}

	uid := models.NewField("serialVersionUID", models.LongType)
	uid.Visibility = models.VisibilityPrivate
	uid.Static = true
	uid.Final = true
	uid.InitializationString = "1L"
	class.AddField(uid)

	name := models.NewField("name", models.StringType)
	name.Visibility = models.VisibilityPrivate
	class.AddField(name)

	toString := models.NewMethod("toString")
	toString.Visibility = models.VisibilityPublic
	toString.SetReturnType(models.StringType)
	toString.AddAnnotation("@Override")
	toString.AddBodyLines(
		"StringBuilder sb = new StringBuilder();",
		"if (name != null) {",
		"sb.append(name);",
		"}",
		"return sb.toString();",
	)
	class.AddMethod(toString)

	out, err := NewRenderer().RenderClass(class)
	require.NoError(t, err)

	want := strings.Join([]string{
		"package com.example.model;",
		"",
		"import java.io.Serializable;",
		"",
		"@SuppressWarnings(\"all\")",
		"public class User extends UserKey implements Serializable {",
		"    private static final long serialVersionUID = 1L;",
		"",
		"    private String name;",
		"",
		"    @Override",
		"    public String toString() {",
		"        StringBuilder sb = new StringBuilder();",
		"        if (name != null) {",
		"            sb.append(name);",
		"        }",
		"        return sb.toString();",
		"    }",
		"}",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestRenderClass_ConstructorAndVoid(t *testing.T) {
	class := models.NewTopLevelClass(models.NewTypeReference("Plain"))
	class.FileCommentLines = []string{"// header"}

	ctor := models.NewMethod("Plain")
	ctor.Visibility = models.VisibilityPublic
	ctor.Constructor = true
	class.AddMethod(ctor)

	setter := models.NewMethod("setId")
	setter.Visibility = models.VisibilityPublic
	setter.AddParameter(models.Parameter{Name: "id", Type: models.LongType})
	setter.AddBodyLine("this.id = id;")
	class.AddMethod(setter)

	out, err := NewRenderer().RenderClass(class)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "// header\npublic class Plain {\n"))
	assert.Contains(t, out, "    public Plain() {\n    }\n")
	assert.Contains(t, out, "    public void setId(long id) {\n        this.id = id;\n    }\n")
}

func TestRender_UsesLineSeparator(t *testing.T) {
	previous := utils.LineSeparator()
	utils.SetLineSeparator("\r\n")
	t.Cleanup(func() { utils.SetLineSeparator(previous) })

	out, err := NewRenderer().RenderClass(models.NewTopLevelClass(models.NewTypeReference("p.Empty")))
	require.NoError(t, err)
	assert.Equal(t, "package p;\r\n\r\npublic class Empty {\r\n}\r\n", out)
}

func TestIndentBody(t *testing.T) {
	got := indentBody([]string{"if (a) {", "", "  b();", "} else {", "c();", "}"}, 0)
	assert.Equal(t, []string{"if (a) {", "", "    b();", "} else {", "    c();", "}"}, got)
}

func TestTemplateRegistry(t *testing.T) {
	registry := NewTemplateRegistry()

	_, ok := registry.Get(ClassTemplate)
	assert.True(t, ok)

	_, err := registry.Execute("missing", nil)
	assert.True(t, errors.HasCode(err, errors.TemplateErrorCode))

	err = registry.Register("broken", "{{.Unclosed")
	assert.True(t, errors.HasCode(err, errors.TemplateErrorCode))

	require.NoError(t, registry.Register("custom", "class {{.Declaration}}"))
	out, err := registry.Execute("custom", compilationUnit{Declaration: "X"})
	require.NoError(t, err)
	assert.Equal(t, "class X", out)

	_, err = registry.Execute("custom", 42)
	assert.True(t, errors.HasCode(err, errors.TemplateErrorCode))
}
