package generator

import (
	"fmt"

	"github.com/yoshisuproject/mbgplug/internal/comments"
	"github.com/yoshisuproject/mbgplug/internal/models"
	"github.com/yoshisuproject/mbgplug/internal/plugins"
)

// ParamAnnotationType is imported when a mapper method takes several key parameters
var ParamAnnotationType = models.NewTypeReference("org.apache.ibatis.annotations.Param")

type methodEvent func(method *models.Method, iface *models.Interface, table *models.IntrospectedTable) bool

// clientBuilder builds the mapper interface of one table
type clientBuilder struct {
	table    *models.IntrospectedTable
	plugins  *plugins.Aggregator
	comments comments.CommentGenerator
}

// build returns the mapper interface, or nil when a plugin vetoed it
func (b *clientBuilder) build() *models.Interface {
	t := b.table
	iface := models.NewInterface(t.MapperType())
	b.comments.AddJavaFileComment(&iface.FileCommentLines)

	if t.HasPrimaryKeyColumns() {
		b.offer(iface, b.deleteByPrimaryKey(iface), b.plugins.ClientDeleteByPrimaryKeyMethodGenerated)
	}
	b.offer(iface, b.insert(iface), b.plugins.ClientInsertMethodGenerated)

	if t.TargetRuntime.SupportsExampleMethods() {
		if t.HasBLOBColumns() {
			b.offer(iface, b.selectByExample(iface, "selectByExampleWithBLOBs", t.RichestRecordType()),
				b.plugins.ClientSelectByExampleWithBLOBsMethodGenerated)
		}
		b.offer(iface, b.selectByExample(iface, "selectByExample", listElementType(t)),
			b.plugins.ClientSelectByExampleWithoutBLOBsMethodGenerated)
	}

	if t.HasPrimaryKeyColumns() {
		b.offer(iface, b.selectByPrimaryKey(iface), b.plugins.ClientSelectByPrimaryKeyMethodGenerated)
	}

	if !b.plugins.ClientGenerated(iface, t) {
		return nil
	}
	return iface
}

// offer adds method to iface once the plugins accept it. Methods plugins add during
// the event precede it and are kept even when it is rejected.
func (b *clientBuilder) offer(iface *models.Interface, method *models.Method, event methodEvent) {
	if event(method, iface, b.table) {
		iface.AddMethod(method)
	}
}

// listElementType is the row type returned by selectByExample
func listElementType(t *models.IntrospectedTable) models.TypeReference {
	if t.GeneratesBaseRecordClass() {
		return t.BaseRecordType()
	}
	return t.PrimaryKeyType()
}

func (b *clientBuilder) newMethod(iface *models.Interface, name string) *models.Method {
	method := models.NewMethod(name)
	method.Visibility = models.VisibilityPublic
	if b.table.TargetRuntime.PrefersAnnotations() {
		b.comments.AddGeneralMethodAnnotation(method, b.table, iface.ImportedTypes)
	} else {
		b.comments.AddGeneralMethodComment(method, b.table)
	}
	return method
}

func (b *clientBuilder) deleteByPrimaryKey(iface *models.Interface) *models.Method {
	method := b.newMethod(iface, "deleteByPrimaryKey")
	method.SetReturnType(models.IntType)
	b.addKeyParameters(method, iface)
	return method
}

func (b *clientBuilder) insert(iface *models.Interface) *models.Method {
	record := b.table.RichestRecordType()
	method := b.newMethod(iface, "insert")
	method.SetReturnType(models.IntType)
	method.AddParameter(models.Parameter{Name: "row", Type: record})
	iface.AddImportedType(record)
	return method
}

func (b *clientBuilder) selectByExample(iface *models.Interface, name string, element models.TypeReference) *models.Method {
	example := b.table.ExampleType()
	method := b.newMethod(iface, name)
	method.SetReturnType(models.ListType.Generic(element))
	method.AddParameter(models.Parameter{Name: "example", Type: example})
	iface.AddImportedType(models.ListType)
	iface.AddImportedType(element)
	iface.AddImportedType(example)
	return method
}

func (b *clientBuilder) selectByPrimaryKey(iface *models.Interface) *models.Method {
	record := b.table.RichestRecordType()
	method := b.newMethod(iface, "selectByPrimaryKey")
	method.SetReturnType(record)
	iface.AddImportedType(record)
	b.addKeyParameters(method, iface)
	return method
}

// addKeyParameters takes the key class when one is generated, otherwise one
// parameter per key column, annotated with @Param when there are several
func (b *clientBuilder) addKeyParameters(method *models.Method, iface *models.Interface) {
	t := b.table
	if t.GeneratesPrimaryKeyClass() {
		keyType := t.PrimaryKeyType()
		method.AddParameter(models.Parameter{Name: "key", Type: keyType})
		iface.AddImportedType(keyType)
		return
	}

	annotate := len(t.PrimaryKeyColumns) > 1
	for _, c := range t.PrimaryKeyColumns {
		p := models.Parameter{Name: c.JavaProperty, Type: c.JavaType}
		if annotate {
			p.Annotations = []string{fmt.Sprintf("@Param(%q)", c.JavaProperty)}
			iface.AddImportedType(ParamAnnotationType)
		}
		method.AddParameter(p)
		iface.AddImportedType(c.JavaType)
	}
}
