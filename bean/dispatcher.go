package bean

import (
	"log/slog"
	"strings"
)

// Dispatcher decides whether a bean can be initialized with the parameters it
// is bound to, and initializes it when it can.
//
// Attempt reports true after initializing b, and false, without touching b,
// when the parameters are incompatible. A non-nil error means initialization
// was attempted and failed.
type Dispatcher interface {
	Attempt(b, parent Bean) (bool, error)

	// RequiredParameterDescription describes what b requires, for diagnostics.
	RequiredParameterDescription(b Bean) string

	// SuppliedDescription describes the bound parameters, for diagnostics.
	SuppliedDescription() string
}

type extractor struct {
	from string
	to   string
	fn   func(any) (any, bool)
}

// handler reports (matched bean type, matched params, error).
type handler struct {
	bean   string
	params string
	fn     func(b Bean, params any, parent Bean, logger *slog.Logger) (bool, bool, error)
}

// TypeDispatcher is the default Dispatcher.
//
// Initializable beans accept the first candidate parameter that is of their
// required type; candidates are the envelope followed by the values produced
// by WithExtractor options. Plain beans are initialized only by a matching
// Handle option.
type TypeDispatcher struct {
	params     any
	logger     *slog.Logger
	candidates []any
	extracted  []string
	handlers   []handler
}

// NewTypeDispatcher binds a dispatcher to params. Extractors run once, here.
func NewTypeDispatcher(params any, logger *slog.Logger, opts ...Option) *TypeDispatcher {
	cfg := newOptions(opts)

	d := &TypeDispatcher{
		params:     params,
		logger:     orDiscard(logger),
		candidates: []any{params},
		handlers:   cfg.handlers,
	}
	for _, ex := range cfg.extractors {
		v, ok := ex.fn(params)
		if !ok {
			continue
		}
		d.logger.Debug("Parameters extracted.", "from", ex.from, "to", ex.to)
		d.candidates = append(d.candidates, v)
		d.extracted = append(d.extracted, describe(v))
	}
	return d
}

// Attempt implements Dispatcher.
func (d *TypeDispatcher) Attempt(b, parent Bean) (bool, error) {
	if ib, ok := b.(Initializable); ok {
		for _, c := range d.candidates {
			ok, err := ib.initialize(b, c, parent, d.logger)
			if ok || err != nil {
				return ok, err
			}
		}
		return false, nil
	}

	for _, h := range d.handlers {
		for _, c := range d.candidates {
			matched, ok, err := h.fn(b, c, parent, d.logger)
			if !matched {
				break
			}
			if ok || err != nil {
				return ok, err
			}
		}
	}
	return false, nil
}

// RequiredParameterDescription implements Dispatcher.
func (d *TypeDispatcher) RequiredParameterDescription(b Bean) string {
	if ib, ok := b.(Initializable); ok {
		return ib.RequiredParams()
	}

	var wants []string
	for _, h := range d.handlers {
		if matched, _, _ := h.fn(b, nil, nil, d.logger); matched {
			wants = append(wants, h.params)
		}
	}
	if len(wants) == 0 {
		return "nothing"
	}
	return strings.Join(wants, " or ")
}

// SuppliedDescription implements Dispatcher.
func (d *TypeDispatcher) SuppliedDescription() string {
	s := describe(d.params)
	if len(d.extracted) > 0 {
		s += " (extracted " + strings.Join(d.extracted, ", ") + ")"
	}
	return s
}
