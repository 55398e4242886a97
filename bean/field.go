package bean

import (
	"strconv"
	"strings"
)

// Modifier tags a configurable field.
type Modifier uint8

const (
	// SkipInit excludes a field from discovery: it is never read during a pass.
	SkipInit Modifier = 1 << iota

	// Optional marks a scalar field that may legitimately be empty.
	// It has no effect on collection fields.
	Optional
)

// Has reports whether all bits of flag are set.
func (m Modifier) Has(flag Modifier) bool { return m&flag == flag }

// String renders the modifiers as a comma separated list ("skip-init,optional").
func (m Modifier) String() string {
	var parts []string
	if m.Has(SkipInit) {
		parts = append(parts, "skip-init")
	}
	if m.Has(Optional) {
		parts = append(parts, "optional")
	}
	return strings.Join(parts, ",")
}

// Field describes one configurable field of a bean.
//
// Get reads the current value. For collection fields it returns []any holding
// the elements in order (nil for an empty collection). An error from Get means
// the bean declaration is broken and aborts the pass.
//
// Set is optional. Loaders use it to wire references into the bean.
type Field struct {
	Name       string
	Modifiers  Modifier
	Collection bool

	Get func() (any, error)
	Set func(any) error
}

// FieldOf declares a scalar field backed by *p.
//
// Typed nil values are reported as an untyped nil so that an empty pointer
// field never looks like a bean.
func FieldOf[T any](name string, p *T, mods ...Modifier) Field {
	return Field{
		Name:      name,
		Modifiers: combine(mods),
		Get: func() (any, error) {
			if p == nil {
				return nil, ErrUnboundField
			}
			v := any(*p)
			if isNil(v) {
				return nil, nil
			}
			return v, nil
		},
		Set: func(v any) error {
			if p == nil {
				return ErrUnboundField
			}
			if v == nil {
				var zero T
				*p = zero
				return nil
			}
			t, ok := v.(T)
			if !ok {
				return FieldTypeError{Field: name, Want: typeName[T](), Got: describe(v)}
			}
			*p = t
			return nil
		},
	}
}

// ListOf declares an ordered collection field backed by *p.
//
// Set accepts []any or []Bean and converts every element to T.
func ListOf[T any](name string, p *[]T, mods ...Modifier) Field {
	return Field{
		Name:       name,
		Modifiers:  combine(mods),
		Collection: true,
		Get: func() (any, error) {
			if p == nil {
				return nil, ErrUnboundField
			}
			if len(*p) == 0 {
				return nil, nil
			}
			out := make([]any, len(*p))
			for i, item := range *p {
				v := any(item)
				if isNil(v) {
					v = nil
				}
				out[i] = v
			}
			return out, nil
		},
		Set: func(v any) error {
			if p == nil {
				return ErrUnboundField
			}

			var items []any
			switch vs := v.(type) {
			case nil:
			case []any:
				items = vs
			case []Bean:
				items = make([]any, len(vs))
				for i, b := range vs {
					items[i] = b
				}
			default:
				return FieldTypeError{Field: name, Want: "[]" + typeName[T](), Got: describe(v)}
			}

			out := make([]T, 0, len(items))
			for i, item := range items {
				t, ok := item.(T)
				if !ok {
					return FieldTypeError{
						Field: name + "[" + strconv.Itoa(i) + "]",
						Want:  typeName[T](),
						Got:   describe(item),
					}
				}
				out = append(out, t)
			}
			*p = out
			return nil
		},
	}
}

// Lookup returns the field with the given name from a schema.
func Lookup(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func combine(mods []Modifier) Modifier {
	var m Modifier
	for _, mod := range mods {
		m |= mod
	}
	return m
}
