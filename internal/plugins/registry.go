package plugins

import (
	"github.com/yoshisuproject/mbgplug/internal/errors"
	"github.com/yoshisuproject/mbgplug/internal/utils"
)

// Factory creates a fresh plugin instance
type Factory func() Plugin

// Registry maps plugin type names and their short aliases to factories
type Registry struct {
	factories *utils.Registry[string, Factory]
}

// NewRegistry creates a registry holding the built-in plugins
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	builtins := []struct {
		name    string
		alias   string
		factory Factory
	}{
		{"OptionalPlugin", "optional", func() Plugin { return NewOptionalPlugin() }},
		{"ToStringWithoutSerialVersionUidPlugin", "tostring", func() Plugin { return NewToStringPlugin() }},
		{"LineSeparatorPlugin", "lineseparator", func() Plugin { return NewLineSeparatorPlugin() }},
		{"SerializablePlugin", "serializable", func() Plugin { return NewSerializablePlugin() }},
	}
	for _, b := range builtins {
		// built-in names are unique and non-empty
		_ = r.Register(b.name, b.factory, b.alias)
	}
	return r
}

// NewEmptyRegistry creates a registry without any plugins
func NewEmptyRegistry() *Registry {
	factories := utils.NewRegistry[string, Factory]("plugin", "plugin type")
	factories.SetValidator(utils.ChainValidators(
		utils.NotEmptyKeyValidator[Factory]("plugin type"),
		utils.NoDuplicateValidator[string, Factory]("plugin type"),
	))
	return &Registry{factories: factories}
}

// Register adds a plugin type and its aliases
func (r *Registry) Register(name string, factory Factory, aliases ...string) error {
	if err := r.factories.Register(name, factory); err != nil {
		return errors.Wrap(errors.PluginErrorCode, "failed to register plugin", err).
			WithContext("plugin_type", name)
	}
	for _, alias := range aliases {
		if err := r.factories.Alias(alias, name); err != nil {
			return errors.Wrap(errors.PluginErrorCode, "failed to register plugin alias", err).
				WithContext("plugin_type", name).
				WithContext("alias", alias)
		}
	}
	return nil
}

// New instantiates the plugin registered under typeName or one of its aliases
func (r *Registry) New(typeName string) (Plugin, error) {
	factory, err := r.factories.GetOrError(typeName)
	if err != nil {
		return nil, errors.NewUnknownPluginError(typeName, r.Names()).WithCause(err)
	}
	return factory(), nil
}

// Len returns the number of registered plugin types, aliases excluded
func (r *Registry) Len() int {
	return r.factories.Size()
}

// Has reports whether typeName resolves to a plugin
func (r *Registry) Has(typeName string) bool {
	return r.factories.Has(typeName)
}

// Names returns the registered type names in ascending order
func (r *Registry) Names() []string {
	return utils.SortedKeys(r.factories)
}
