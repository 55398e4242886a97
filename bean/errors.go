package bean

import (
	"errors"
	"strconv"
)

var (
	// ErrNilBean is returned when a nil bean is used as a root or node.
	ErrNilBean = errors.New("bean: nil bean")

	// ErrIncompatibleParameters is the cause of an InitializationError raised for
	// a capability-tagged bean whose required parameter type was not satisfied.
	ErrIncompatibleParameters = errors.New("bean: incompatible initialization parameters")

	// ErrNilElement is returned (wrapped in FieldAccessError) when a collection
	// field holds a nil element.
	ErrNilElement = errors.New("bean: nil element in collection")

	// ErrUnboundField is returned when a field descriptor has no storage or getter.
	ErrUnboundField = errors.New("bean: field not bound to storage")

	// ErrNotCollection is returned when a collection field's getter does not yield []any.
	ErrNotCollection = errors.New("bean: collection field did not yield []any")
)

// FieldAccessError reports that a configurable field could not be read.
//
// It signals a defect in the bean declaration and always aborts the pass.
type FieldAccessError struct {
	Bean  string
	Field string
	Err   error
}

// Error implements the error interface.
func (e FieldAccessError) Error() string {
	// Example: bean: cannot read field "stages" of "main": bean: nil element in collection
	return "bean: cannot read field " + strconv.Quote(e.Field) + " of " + strconv.Quote(e.Bean) + ": " + errString(e.Err)
}

// Unwrap returns the underlying cause.
func (e FieldAccessError) Unwrap() error { return e.Err }

// FieldTypeError is returned by Field.Set when a value has the wrong type.
type FieldTypeError struct {
	Field string
	Want  string
	Got   string
}

// Error implements the error interface.
func (e FieldTypeError) Error() string {
	// Example: bean: field "source" wants *pipeline.Reader, got *pipeline.Stage
	return "bean: field " + strconv.Quote(e.Field) + " wants " + e.Want + ", got " + e.Got
}

// NonPointerBeanError is returned when a bean is not a pointer and therefore has
// no identity to track in the visited set.
type NonPointerBeanError struct {
	Bean string
	Type string
}

// Error implements the error interface.
func (e NonPointerBeanError) Error() string {
	return "bean: " + strconv.Quote(e.Bean) + " has non-pointer type " + e.Type
}

// NotInitializedError is returned by CheckMisconfigured for a capability-tagged
// bean that is reachable but was never initialized.
type NotInitializedError struct {
	Path     string
	Required string
}

// Error implements the error interface.
func (e NotInitializedError) Error() string {
	// Example: bean: main->group->stage is not initialized (requires pipeline.ImageParams)
	return "bean: " + e.Path + " is not initialized (requires " + e.Required + ")"
}

// InitializationError is the error produced by a failed pass.
//
// Path is the root-to-node path of the failing bean and RootName the name of
// the bean the pass started from. Required and Supplied describe the parameter
// types involved. Cause is ErrIncompatibleParameters for a parameter mismatch,
// or the underlying failure (FieldAccessError, a hook error...) otherwise.
type InitializationError struct {
	Path     string
	RootName string
	Required string
	Supplied string
	Cause    error
}

// Error implements the error interface.
func (e InitializationError) Error() string {
	if errors.Is(e.Cause, ErrIncompatibleParameters) {
		// Example: bean: cannot initialize "main" at main->seg: requires pipeline.SegmentParams, supplied pipeline.ImageParams
		return "bean: cannot initialize " + strconv.Quote(e.RootName) + " at " + e.Path +
			": requires " + e.Required + ", supplied " + e.Supplied
	}
	return "bean: cannot initialize " + strconv.Quote(e.RootName) + " at " + e.Path + ": " + errString(e.Cause)
}

// Unwrap returns the cause.
func (e InitializationError) Unwrap() error { return e.Cause }

func errString(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
