package errors

import "fmt"

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(path, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, path)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("config_path", path).
		WithContext("operation", operation)
}

// WrapIntrospectionError wraps errors raised while reading table metadata
func WrapIntrospectionError(table string, cause error) *BaseError {
	return Wrap(IntrospectionErrorCode, fmt.Sprintf("failed to introspect table '%s'", table), cause).
		WithContext("table", table)
}

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s template '%s'", operation, templateName)
	return Wrap(TemplateErrorCode, message, cause).
		WithContext("template", templateName)
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s file '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// NewUnknownPluginError reports a plugin type that is not registered
func NewUnknownPluginError(pluginType string, known []string) *BaseError {
	return Newf(PluginErrorCode, "unknown plugin type '%s'", pluginType).
		WithContext("plugin_type", pluginType).
		WithSuggestion(fmt.Sprintf("Use one of the registered plugin types: %v", known))
}
