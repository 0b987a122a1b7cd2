package generator

import (
	"strings"

	"github.com/yoshisuproject/mbgplug/internal/comments"
	"github.com/yoshisuproject/mbgplug/internal/models"
	"github.com/yoshisuproject/mbgplug/internal/plugins"
)

// modelBuilder builds the model classes of one table and offers them to the plugins
type modelBuilder struct {
	table    *models.IntrospectedTable
	plugins  *plugins.Aggregator
	comments comments.CommentGenerator
}

// build returns the surviving model classes in key, base, BLOB order
func (b *modelBuilder) build() []*models.TopLevelClass {
	t := b.table
	var classes []*models.TopLevelClass
	var parent *models.TypeReference

	if t.GeneratesPrimaryKeyClass() {
		keyType := t.PrimaryKeyType()
		class := b.newClass(keyType, nil, t.PrimaryKeyColumns)
		if b.plugins.ModelPrimaryKeyClassGenerated(class, t) {
			classes = append(classes, class)
		}
		parent = &keyType
	}

	if t.GeneratesBaseRecordClass() {
		baseType := t.BaseRecordType()
		class := b.newClass(baseType, parent, baseRecordColumns(t))
		if b.plugins.ModelBaseRecordClassGenerated(class, t) {
			classes = append(classes, class)
		}
		parent = &baseType
	}

	if t.GeneratesRecordWithBLOBsClass() {
		class := b.newClass(t.RecordWithBLOBsType(), parent, t.BLOBColumns)
		if b.plugins.ModelRecordWithBLOBsClassGenerated(class, t) {
			classes = append(classes, class)
		}
	}
	return classes
}

// baseRecordColumns are the columns held by the base record class
func baseRecordColumns(t *models.IntrospectedTable) []models.Column {
	switch {
	case t.ModelType == models.ModelTypeFlat:
		return t.AllColumns()
	case t.GeneratesPrimaryKeyClass():
		return t.BaseColumns
	case t.GeneratesRecordWithBLOBsClass():
		return t.NonBLOBColumns()
	default:
		return t.AllColumns()
	}
}

func (b *modelBuilder) newClass(t models.TypeReference, superClass *models.TypeReference, columns []models.Column) *models.TopLevelClass {
	class := models.NewTopLevelClass(t)
	if superClass != nil {
		class.SetSuperClass(*superClass)
	}
	b.comments.AddJavaFileComment(&class.FileCommentLines)
	b.comments.AddModelClassComment(class, b.table)

	for _, column := range columns {
		field := models.NewField(column.JavaProperty, column.JavaType)
		field.Visibility = models.VisibilityPrivate
		b.comments.AddFieldComment(field, b.table, column)

		if !b.plugins.ModelFieldGenerated(field, class, column, b.table) {
			continue
		}
		class.AddField(field)
		class.AddImportedType(column.JavaType)
		class.AddMethod(b.getter(field))
		class.AddMethod(b.setter(field))
	}
	return class
}

func (b *modelBuilder) getter(field *models.Field) *models.Method {
	method := models.NewMethod("get" + upperFirst(field.Name))
	method.Visibility = models.VisibilityPublic
	method.SetReturnType(field.Type)
	method.AddBodyLine("return " + field.Name + ";")
	b.comments.AddGeneralMethodComment(method, b.table)
	return method
}

func (b *modelBuilder) setter(field *models.Field) *models.Method {
	method := models.NewMethod("set" + upperFirst(field.Name))
	method.Visibility = models.VisibilityPublic
	method.AddParameter(models.Parameter{Name: field.Name, Type: field.Type})
	method.AddBodyLine("this." + field.Name + " = " + field.Name + ";")
	b.comments.AddGeneralMethodComment(method, b.table)
	return method
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
