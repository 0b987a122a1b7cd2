package plugins

import (
	"strings"

	"github.com/yoshisuproject/mbgplug/internal/config"
	"github.com/yoshisuproject/mbgplug/internal/models"
)

const (
	// PropOptionalMethodPrefix names the prefix replacing "select" in derived method names
	PropOptionalMethodPrefix = "optionalMethodPrefix"

	DefaultOptionalMethodPrefix = "selectOptional"

	selectVerb = "select"
)

// OptionalPlugin adds a java.util.Optional returning sibling to the mapper's single-row
// select methods, e.g. selectOptionalByPrimaryKey next to selectByPrimaryKey
type OptionalPlugin struct {
	Adapter
	prefix string
}

// NewOptionalPlugin creates the plugin
func NewOptionalPlugin() *OptionalPlugin {
	return &OptionalPlugin{prefix: DefaultOptionalMethodPrefix}
}

func (p *OptionalPlugin) Name() string {
	return "OptionalPlugin"
}

// Validate reads the method prefix. It never warns.
func (p *OptionalPlugin) Validate(*config.Warnings) bool {
	p.prefix = config.ResolveStringOption(p.Properties, PropOptionalMethodPrefix, DefaultOptionalMethodPrefix)
	return true
}

// Prefix returns the resolved method prefix
func (p *OptionalPlugin) Prefix() string {
	return p.prefix
}

func (p *OptionalPlugin) ClientSelectByPrimaryKeyMethodGenerated(method *models.Method, iface *models.Interface, table *models.IntrospectedTable) bool {
	p.addOptionalMethod(method, iface, table)
	return true
}

func (p *OptionalPlugin) ClientSelectByExampleWithBLOBsMethodGenerated(method *models.Method, iface *models.Interface, table *models.IntrospectedTable) bool {
	if !returnsList(method, iface) {
		p.addOptionalMethod(method, iface, table)
	}
	return true
}

func (p *OptionalPlugin) ClientSelectByExampleWithoutBLOBsMethodGenerated(method *models.Method, iface *models.Interface, table *models.IntrospectedTable) bool {
	if !returnsList(method, iface) {
		p.addOptionalMethod(method, iface, table)
	}
	return true
}

func (p *OptionalPlugin) addOptionalMethod(method *models.Method, iface *models.Interface, table *models.IntrospectedTable) {
	wrapped := effectiveReturnType(method, iface)

	derived := models.CloneMethod(method)
	derived.Name = p.prefix + strings.TrimPrefix(method.Name, selectVerb)
	derived.SetReturnType(models.OptionalType.Generic(wrapped))
	// the comment generator documents the derived method from scratch
	derived.JavaDocLines = nil

	iface.AddMethod(derived)
	iface.AddImportedType(models.OptionalType)
	iface.AddImportedType(wrapped)

	p.CommentGenerator().AddGeneralMethodComment(derived, table)
}

// effectiveReturnType is the declared return type, or the interface type when absent
func effectiveReturnType(method *models.Method, iface *models.Interface) models.TypeReference {
	if method.ReturnType != nil {
		return *method.ReturnType
	}
	return iface.Type
}

// returnsList is a name check only; any type whose short name starts with List counts
func returnsList(method *models.Method, iface *models.Interface) bool {
	return strings.HasPrefix(effectiveReturnType(method, iface).ShortName(), "List")
}
