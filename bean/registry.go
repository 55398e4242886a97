package bean

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Factory constructs a fresh, uninitialized bean.
type Factory func() Bean

// ErrFactoryPanic is returned if a factory panics while constructing a bean.
var ErrFactoryPanic = errors.New("bean: panic in factory")

// UnknownKindError is returned when no factory is registered for a kind.
type UnknownKindError struct{ Kind string }

// Error implements the error interface.
func (e UnknownKindError) Error() string {
	// Example: bean: unknown kind "stage"
	return "bean: unknown kind " + strconv.Quote(e.Kind)
}

// KindRegistry maps kind names used in declarative files to factories.
//
// It is filled once at startup and read-only afterwards; it is not safe for
// concurrent Provide calls.
type KindRegistry struct {
	factories map[string]Factory
}

// NewKindRegistry returns an empty registry.
func NewKindRegistry() *KindRegistry {
	return &KindRegistry{factories: map[string]Factory{}}
}

// Provide registers f under kind and returns the registry for chaining.
// A later Provide for the same kind replaces the earlier one.
func (r *KindRegistry) Provide(kind string, f Factory) *KindRegistry {
	r.factories[kind] = f
	return r
}

// ProvideNew registers a factory returning new(T) under kind.
func ProvideNew[T any, PT interface {
	*T
	Bean
}](r *KindRegistry, kind string) *KindRegistry {
	return r.Provide(kind, func() Bean { return PT(new(T)) })
}

// Resolve constructs a bean of the given kind. Panics raised by the factory
// are converted into errors wrapping ErrFactoryPanic.
func (r *KindRegistry) Resolve(kind string) (b Bean, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			b = nil
			err = fmt.Errorf("%w: kind %q: %v", ErrFactoryPanic, kind, rec)
		}
	}()

	f, ok := r.factories[kind]
	if !ok || f == nil {
		return nil, UnknownKindError{Kind: kind}
	}
	b = f()
	if isNil(b) {
		return nil, fmt.Errorf("%w: factory for kind %q returned nil", ErrNilBean, kind)
	}
	return b, nil
}

// Get returns the factory for kind if present.
func (r *KindRegistry) Get(kind string) (Factory, bool) {
	f, ok := r.factories[kind]
	return f, ok
}

// MustGet returns the factory for kind or panics.
func (r *KindRegistry) MustGet(kind string) Factory {
	f, ok := r.factories[kind]
	if !ok {
		panic(fmt.Errorf("bean: registry missing kind %q", kind))
	}
	return f
}

// Kinds returns the registered kinds in sorted order.
func (r *KindRegistry) Kinds() []string {
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
