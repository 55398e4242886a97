package bean

import (
	"io"
	"log/slog"
	"reflect"
)

// Bean is the capability every node of a configuration graph implements.
//
// BeanName is used for diagnostics only (paths such as "root->child").
// ConfigurableFields returns the static schema of the bean; the slice is
// rebuilt on every call and must list fields in declaration order.
//
// Beans are compared by identity, so implementations must be pointers.
type Bean interface {
	BeanName() string
	ConfigurableFields() []Field
}

// Label is an embeddable display name for beans built from declarative files.
//
// It implements BeanName and SetBeanName; beanfile uses the latter to apply
// the name given in a bean definition.
type Label struct {
	name string
}

// BeanName implements Bean.
func (l *Label) BeanName() string { return l.name }

// SetBeanName sets the display name.
func (l *Label) SetBeanName(name string) { l.name = name }

// isNil reports whether v is nil or a typed nil stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// typeName returns the Go type name of T, including interface types.
func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// describe returns the dynamic type name of v.
func describe(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return discardLogger()
	}
	return logger
}
