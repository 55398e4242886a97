package bean

import "log/slog"

// Initializable is implemented by capability-tagged beans: beans that require
// initialization parameters of a given type.
//
// The interface can only be satisfied by embedding Init[P].
type Initializable interface {
	Bean

	// IsInitialized reports whether initialization ran. It never resets.
	IsInitialized() bool

	// RequiredParams describes the required parameter type.
	RequiredParams() string

	initialize(self Bean, params any, parent Bean, logger *slog.Logger) (bool, error)
}

// Init is embedded by beans that require parameters of type P.
//
//	type Stage struct {
//		bean.Init[ImageParams]
//		...
//	}
//
// The outer bean may define OnInit(P) error; it runs at the end of
// initialization and its error aborts the pass.
type Init[P any] struct {
	initialized bool
	params      P
	parent      Bean
	logger      *slog.Logger
}

// IsInitialized implements Initializable.
func (i *Init[P]) IsInitialized() bool { return i.initialized }

// RequiredParams implements Initializable.
func (i *Init[P]) RequiredParams() string { return typeName[P]() }

// Params returns the parameters the bean was initialized with.
func (i *Init[P]) Params() P { return i.params }

// Parent returns the bean this one was discovered from, nil for a root.
func (i *Init[P]) Parent() Bean { return i.parent }

// Logger returns the logger recorded at initialization (a discard logger before).
func (i *Init[P]) Logger() *slog.Logger { return orDiscard(i.logger) }

// initialize applies params when they are a P. It reports false, leaving the
// bean untouched, when they are not.
func (i *Init[P]) initialize(self Bean, params any, parent Bean, logger *slog.Logger) (bool, error) {
	p, ok := params.(P)
	if !ok {
		return false, nil
	}

	i.params = p
	i.parent = parent
	i.logger = logger

	if hook, ok := self.(interface{ OnInit(P) error }); ok {
		if err := hook.OnInit(p); err != nil {
			return true, err
		}
	}
	i.initialized = true
	return true, nil
}

// InitBean initializes a single bean without visiting its children.
//
// It is not guarded against repeated calls; a pass relies on the walker's
// visited set for that.
func InitBean(b Initializable, params any, logger *slog.Logger) error {
	if isNil(b) {
		return ErrNilBean
	}
	ok, err := b.initialize(b, params, nil, orDiscard(logger))
	if err == nil && ok {
		return nil
	}

	e := InitializationError{
		Path:     b.BeanName(),
		RootName: b.BeanName(),
		Required: b.RequiredParams(),
		Supplied: describe(params),
		Cause:    err,
	}
	if err == nil {
		e.Cause = ErrIncompatibleParameters
	}
	return e
}

// InitializeRecursive initializes root and every bean reachable from it.
//
// Unless WithDispatcher substitutes one, a TypeDispatcher bound to params and
// logger decides compatibility. The first failure aborts the pass and is
// returned as an InitializationError.
func InitializeRecursive(root Bean, params any, logger *slog.Logger, opts ...Option) error {
	cfg := newOptions(opts)
	logger = orDiscard(logger)

	d := cfg.dispatcher
	if d == nil {
		d = NewTypeDispatcher(params, logger, opts...)
	}

	w := &Walker{dispatcher: d, logger: logger, observer: cfg.observer}
	return w.Walk(root)
}
