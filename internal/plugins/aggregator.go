package plugins

import (
	"github.com/yoshisuproject/mbgplug/internal/config"
	"github.com/yoshisuproject/mbgplug/internal/models"
)

// Aggregator fans each event out to its plugins in registration order and stops at
// the first plugin that returns false
type Aggregator struct {
	plugins []Plugin
}

// NewAggregator creates an aggregator over plugins
func NewAggregator(plugins ...Plugin) *Aggregator {
	return &Aggregator{plugins: append([]Plugin(nil), plugins...)}
}

// Add appends p
func (a *Aggregator) Add(p Plugin) {
	a.plugins = append(a.plugins, p)
}

// Plugins returns the active plugins in order
func (a *Aggregator) Plugins() []Plugin {
	return append([]Plugin(nil), a.plugins...)
}

// Len returns the number of active plugins
func (a *Aggregator) Len() int {
	return len(a.plugins)
}

// Validate validates every plugin, collecting all warnings, and keeps only the plugins
// that reported themselves valid. It returns the names of the plugins it dropped.
func (a *Aggregator) Validate(warnings *config.Warnings) []string {
	var dropped []string
	kept := a.plugins[:0]
	for _, p := range a.plugins {
		if p.Validate(warnings) {
			kept = append(kept, p)
			continue
		}
		dropped = append(dropped, p.Name())
	}
	a.plugins = kept
	return dropped
}

func (a *Aggregator) each(fn func(Plugin) bool) bool {
	for _, p := range a.plugins {
		if !fn(p) {
			return false
		}
	}
	return true
}

func (a *Aggregator) ClientGenerated(iface *models.Interface, table *models.IntrospectedTable) bool {
	return a.each(func(p Plugin) bool { return p.ClientGenerated(iface, table) })
}

func (a *Aggregator) ClientSelectByPrimaryKeyMethodGenerated(method *models.Method, iface *models.Interface, table *models.IntrospectedTable) bool {
	return a.each(func(p Plugin) bool { return p.ClientSelectByPrimaryKeyMethodGenerated(method, iface, table) })
}

func (a *Aggregator) ClientSelectByExampleWithBLOBsMethodGenerated(method *models.Method, iface *models.Interface, table *models.IntrospectedTable) bool {
	return a.each(func(p Plugin) bool { return p.ClientSelectByExampleWithBLOBsMethodGenerated(method, iface, table) })
}

func (a *Aggregator) ClientSelectByExampleWithoutBLOBsMethodGenerated(method *models.Method, iface *models.Interface, table *models.IntrospectedTable) bool {
	return a.each(func(p Plugin) bool { return p.ClientSelectByExampleWithoutBLOBsMethodGenerated(method, iface, table) })
}

func (a *Aggregator) ClientInsertMethodGenerated(method *models.Method, iface *models.Interface, table *models.IntrospectedTable) bool {
	return a.each(func(p Plugin) bool { return p.ClientInsertMethodGenerated(method, iface, table) })
}

func (a *Aggregator) ClientDeleteByPrimaryKeyMethodGenerated(method *models.Method, iface *models.Interface, table *models.IntrospectedTable) bool {
	return a.each(func(p Plugin) bool { return p.ClientDeleteByPrimaryKeyMethodGenerated(method, iface, table) })
}

func (a *Aggregator) ModelBaseRecordClassGenerated(class *models.TopLevelClass, table *models.IntrospectedTable) bool {
	return a.each(func(p Plugin) bool { return p.ModelBaseRecordClassGenerated(class, table) })
}

func (a *Aggregator) ModelRecordWithBLOBsClassGenerated(class *models.TopLevelClass, table *models.IntrospectedTable) bool {
	return a.each(func(p Plugin) bool { return p.ModelRecordWithBLOBsClassGenerated(class, table) })
}

func (a *Aggregator) ModelPrimaryKeyClassGenerated(class *models.TopLevelClass, table *models.IntrospectedTable) bool {
	return a.each(func(p Plugin) bool { return p.ModelPrimaryKeyClassGenerated(class, table) })
}

func (a *Aggregator) ModelFieldGenerated(field *models.Field, class *models.TopLevelClass, column models.Column, table *models.IntrospectedTable) bool {
	return a.each(func(p Plugin) bool { return p.ModelFieldGenerated(field, class, column, table) })
}
