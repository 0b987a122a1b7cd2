package utils

import (
	"fmt"
	"sort"
	"sync"
)

// RegistryValidator is a function that validates a key-value pair before registration
type RegistryValidator[K comparable, V any] func(key K, value V, existing map[K]V) error

// Registry provides a generic, thread-safe registry with optional validation
// and alias support
type Registry[K comparable, V any] struct {
	mu            sync.RWMutex
	items         map[K]V
	aliases       map[K]K
	validator     RegistryValidator[K, V]
	registryName  string
	keyDescriptor string // e.g. "plugin type"
}

// NewRegistry creates a new registry. registryName and keyDesc are used in error messages.
func NewRegistry[K comparable, V any](registryName, keyDesc string) *Registry[K, V] {
	return &Registry[K, V]{
		items:         make(map[K]V),
		aliases:       make(map[K]K),
		registryName:  registryName,
		keyDescriptor: keyDesc,
	}
}

// SetValidator sets the validation function for this registry
func (r *Registry[K, V]) SetValidator(validator RegistryValidator[K, V]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validator = validator
}

// Register adds an item to the registry with validation
func (r *Registry[K, V]) Register(key K, value V) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.validator != nil {
		if err := r.validator(key, value, r.items); err != nil {
			return fmt.Errorf("%s registry: %w", r.registryName, err)
		}
	}

	r.items[key] = value
	return nil
}

// Alias makes alias resolve to the already registered key target
func (r *Registry[K, V]) Alias(alias, target K) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[target]; !exists {
		return fmt.Errorf("%s registry: cannot alias unknown %s '%v'", r.registryName, r.keyDescriptor, target)
	}
	if _, exists := r.items[alias]; exists {
		return fmt.Errorf("%s registry: alias '%v' shadows a registered %s", r.registryName, alias, r.keyDescriptor)
	}
	if existing, taken := r.aliases[alias]; taken && existing != target {
		return fmt.Errorf("%s registry: alias '%v' already points to '%v'", r.registryName, alias, existing)
	}
	r.aliases[alias] = target
	return nil
}

// Get retrieves an item by key or alias
func (r *Registry[K, V]) Get(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if target, ok := r.aliases[key]; ok {
		key = target
	}
	value, exists := r.items[key]
	return value, exists
}

// GetOrError retrieves an item or returns an error if not found
func (r *Registry[K, V]) GetOrError(key K) (V, error) {
	value, exists := r.Get(key)
	if !exists {
		var zero V
		return zero, fmt.Errorf("%s '%v' is not registered", r.keyDescriptor, key)
	}
	return value, nil
}

// Has checks if a key or alias exists in the registry
func (r *Registry[K, V]) Has(key K) bool {
	_, exists := r.Get(key)
	return exists
}

// List returns all registered keys (aliases excluded)
func (r *Registry[K, V]) List() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]K, 0, len(r.items))
	for key := range r.items {
		keys = append(keys, key)
	}
	return keys
}

// Size returns the number of items in the registry
func (r *Registry[K, V]) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// SortedKeys returns the string keys of a registry in ascending order
func SortedKeys[V any](r *Registry[string, V]) []string {
	keys := r.List()
	sort.Strings(keys)
	return keys
}

// NotEmptyKeyValidator validates that a string key is not empty
func NotEmptyKeyValidator[V any](keyDesc string) RegistryValidator[string, V] {
	return func(key string, value V, existing map[string]V) error {
		if key == "" {
			return fmt.Errorf("%s cannot be empty", keyDesc)
		}
		return nil
	}
}

// NoDuplicateValidator validates that a key doesn't already exist
func NoDuplicateValidator[K comparable, V any](keyDesc string) RegistryValidator[K, V] {
	return func(key K, value V, existing map[K]V) error {
		if _, exists := existing[key]; exists {
			return fmt.Errorf("%s '%v' is already registered", keyDesc, key)
		}
		return nil
	}
}

// ChainValidators combines multiple validators into one
func ChainValidators[K comparable, V any](validators ...RegistryValidator[K, V]) RegistryValidator[K, V] {
	return func(key K, value V, existing map[K]V) error {
		for _, validator := range validators {
			if validator != nil {
				if err := validator(key, value, existing); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
