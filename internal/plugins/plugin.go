package plugins

import (
	"github.com/yoshisuproject/mbgplug/internal/comments"
	"github.com/yoshisuproject/mbgplug/internal/config"
	"github.com/yoshisuproject/mbgplug/internal/models"
)

// Context is shared by every plugin of one generation run
type Context struct {
	ID               string
	CommentGenerator comments.CommentGenerator
}

// Plugin receives generation events. Every event returns true to let the generator
// keep the element and false to drop it; later plugins are not called after a false.
//
// The lifecycle is SetContext, SetProperties, Validate and then any number of events.
// A plugin whose Validate returns false receives no events.
type Plugin interface {
	Name() string
	SetContext(ctx *Context)
	SetProperties(props config.Properties)
	Validate(warnings *config.Warnings) bool

	ClientGenerated(iface *models.Interface, table *models.IntrospectedTable) bool
	ClientSelectByPrimaryKeyMethodGenerated(method *models.Method, iface *models.Interface, table *models.IntrospectedTable) bool
	ClientSelectByExampleWithBLOBsMethodGenerated(method *models.Method, iface *models.Interface, table *models.IntrospectedTable) bool
	ClientSelectByExampleWithoutBLOBsMethodGenerated(method *models.Method, iface *models.Interface, table *models.IntrospectedTable) bool
	ClientInsertMethodGenerated(method *models.Method, iface *models.Interface, table *models.IntrospectedTable) bool
	ClientDeleteByPrimaryKeyMethodGenerated(method *models.Method, iface *models.Interface, table *models.IntrospectedTable) bool

	ModelBaseRecordClassGenerated(class *models.TopLevelClass, table *models.IntrospectedTable) bool
	ModelRecordWithBLOBsClassGenerated(class *models.TopLevelClass, table *models.IntrospectedTable) bool
	ModelPrimaryKeyClassGenerated(class *models.TopLevelClass, table *models.IntrospectedTable) bool
	ModelFieldGenerated(field *models.Field, class *models.TopLevelClass, column models.Column, table *models.IntrospectedTable) bool
}

// Adapter implements every event as a no-op that returns true. Plugins embed it
// and override only the events they care about.
type Adapter struct {
	Context    *Context
	Properties config.Properties
}

func (a *Adapter) SetContext(ctx *Context) {
	a.Context = ctx
}

func (a *Adapter) SetProperties(props config.Properties) {
	a.Properties = props.Clone()
}

func (a *Adapter) Validate(*config.Warnings) bool {
	return true
}

// CommentGenerator returns the comment generator of the run
func (a *Adapter) CommentGenerator() comments.CommentGenerator {
	if a.Context == nil || a.Context.CommentGenerator == nil {
		return noopComments{}
	}
	return a.Context.CommentGenerator
}

func (a *Adapter) ClientGenerated(*models.Interface, *models.IntrospectedTable) bool {
	return true
}

func (a *Adapter) ClientSelectByPrimaryKeyMethodGenerated(*models.Method, *models.Interface, *models.IntrospectedTable) bool {
	return true
}

func (a *Adapter) ClientSelectByExampleWithBLOBsMethodGenerated(*models.Method, *models.Interface, *models.IntrospectedTable) bool {
	return true
}

func (a *Adapter) ClientSelectByExampleWithoutBLOBsMethodGenerated(*models.Method, *models.Interface, *models.IntrospectedTable) bool {
	return true
}

func (a *Adapter) ClientInsertMethodGenerated(*models.Method, *models.Interface, *models.IntrospectedTable) bool {
	return true
}

func (a *Adapter) ClientDeleteByPrimaryKeyMethodGenerated(*models.Method, *models.Interface, *models.IntrospectedTable) bool {
	return true
}

func (a *Adapter) ModelBaseRecordClassGenerated(*models.TopLevelClass, *models.IntrospectedTable) bool {
	return true
}

func (a *Adapter) ModelRecordWithBLOBsClassGenerated(*models.TopLevelClass, *models.IntrospectedTable) bool {
	return true
}

func (a *Adapter) ModelPrimaryKeyClassGenerated(*models.TopLevelClass, *models.IntrospectedTable) bool {
	return true
}

func (a *Adapter) ModelFieldGenerated(*models.Field, *models.TopLevelClass, models.Column, *models.IntrospectedTable) bool {
	return true
}

type noopComments struct{}

func (noopComments) AddConfigurationProperties(config.Properties) {}

func (noopComments) AddGeneralMethodComment(*models.Method, *models.IntrospectedTable) {}

func (noopComments) AddGeneralMethodAnnotation(*models.Method, *models.IntrospectedTable, *models.ImportSet) {}

func (noopComments) AddModelClassComment(*models.TopLevelClass, *models.IntrospectedTable) {}

func (noopComments) AddFieldComment(*models.Field, *models.IntrospectedTable, models.Column) {}

func (noopComments) AddJavaFileComment(*[]string) {}
