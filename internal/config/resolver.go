package config

import (
	"fmt"
	"strings"
)

// EnumOption describes a setting from a closed vocabulary that operators may spell
// two ways: as a symbolic name (e.g. sign=BRACKET) or as a literal value
// (e.g. openSign=[). The literal form wins when both are present and valid.
type EnumOption[T comparable] struct {
	Owner       string // plugin name used in warnings
	Noun        string // optional word appended to the default in warnings, e.g. "sign"
	SymbolKey   string
	LiteralKey  string
	FromSymbol  func(string) (T, bool)
	FromLiteral func(string) (T, bool)
	Symbols     []string // accepted symbolic values, listed in warnings
	Literals    []string // accepted literal values, listed in warnings
	Default     T
	Name        func(T) string
}

// Resolve picks the value from props. It never fails: a missing or invalid setting
// yields Default and exactly one warning naming the property, the rejected value
// where there is one, and the substituted default.
func (o EnumOption[T]) Resolve(props Properties, warnings *Warnings) T {
	literal, hasLiteral := o.lookup(props, o.LiteralKey)
	if hasLiteral && o.FromLiteral != nil {
		if v, ok := o.FromLiteral(literal); ok {
			return v
		}
	}

	symbol, hasSymbol := o.lookup(props, o.SymbolKey)
	if hasSymbol && o.FromSymbol != nil {
		if v, ok := o.FromSymbol(symbol); ok {
			if hasLiteral {
				warnings.Addf("Plugin %s does not support value %q for property %s (supported: %s). Used %s from property %s",
					o.Owner, literal, o.LiteralKey, o.listLiterals(), o.describe(v), o.SymbolKey)
			}
			return v
		}
	}

	switch {
	case hasLiteral && hasSymbol:
		warnings.Addf("Plugin %s does not support value %q for property %s (supported: %s) nor value %q for property %s (supported: %s). Used default %s",
			o.Owner, literal, o.LiteralKey, o.listLiterals(), symbol, o.SymbolKey, strings.Join(o.Symbols, ", "), o.describeDefault())
	case hasLiteral:
		warnings.Addf("Plugin %s does not support value %q for property %s (supported: %s). Used default %s",
			o.Owner, literal, o.LiteralKey, o.listLiterals(), o.describeDefault())
	case hasSymbol:
		warnings.Addf("Plugin %s does not support value %q for property %s (supported: %s). Used default %s",
			o.Owner, symbol, o.SymbolKey, strings.Join(o.Symbols, ", "), o.describeDefault())
	default:
		warnings.Addf("Plugin %s expects property %s or %s. Used default %s",
			o.Owner, o.LiteralKey, o.SymbolKey, o.describeDefault())
	}
	return o.Default
}

func (o EnumOption[T]) lookup(props Properties, key string) (string, bool) {
	if key == "" || !props.HasValue(key) {
		return "", false
	}
	return props[key], true
}

func (o EnumOption[T]) listLiterals() string {
	quoted := make([]string, len(o.Literals))
	for i, l := range o.Literals {
		quoted[i] = "`" + l + "`"
	}
	return strings.Join(quoted, ", ")
}

func (o EnumOption[T]) describe(v T) string {
	name := fmt.Sprint(v)
	if o.Name != nil {
		name = o.Name(v)
	}
	if o.Noun != "" {
		return name + " " + o.Noun
	}
	return name
}

func (o EnumOption[T]) describeDefault() string {
	return o.describe(o.Default)
}

// ResolveStringOption returns the raw value for key when present, else def.
// Absence is expected, so no warning is produced.
func ResolveStringOption(props Properties, key, def string) string {
	return props.GetPropertyOr(key, def)
}
