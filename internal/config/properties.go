package config

import (
	"fmt"
	"sort"
	"strings"
)

// Properties is the flat, string-keyed option bag handed to each plugin.
// Keys are case-sensitive.
type Properties map[string]string

// GetProperty returns the value for key and whether it is present
func (p Properties) GetProperty(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// GetPropertyOr returns the value for key, or def when the key is absent.
// A present but empty value is returned as is.
func (p Properties) GetPropertyOr(key, def string) string {
	if v, ok := p.GetProperty(key); ok {
		return v
	}
	return def
}

// HasValue reports whether key is present with a non-empty value
func (p Properties) HasValue(key string) bool {
	return StringHasValue(p[key])
}

// Clone returns an independent copy
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Keys returns the property names in sorted order
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PropertiesFromMap normalises decoded configuration values (strings, booleans,
// numbers) into a Properties bag
func PropertiesFromMap(raw map[string]interface{}) Properties {
	out := make(Properties, len(raw))
	for k, v := range raw {
		switch value := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = value
		default:
			out[k] = fmt.Sprint(value)
		}
	}
	return out
}

// StringHasValue reports whether s is non-empty
func StringHasValue(s string) bool {
	return s != ""
}

// IsTrue reports whether s spells "true", ignoring case
func IsTrue(s string) bool {
	return strings.EqualFold(s, "true")
}

// Warnings collects non-fatal validation messages for the operator
type Warnings []string

// Add appends a warning
func (w *Warnings) Add(message string) {
	*w = append(*w, message)
}

// Addf appends a formatted warning
func (w *Warnings) Addf(format string, args ...interface{}) {
	w.Add(fmt.Sprintf(format, args...))
}

// Len returns the number of warnings
func (w Warnings) Len() int {
	return len(w)
}
