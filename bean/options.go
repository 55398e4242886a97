package bean

import "log/slog"

// Option configures InitializeRecursive, NewTypeDispatcher and NewWalker.
// Each consumer ignores the options that do not concern it.
type Option func(*options)

type options struct {
	dispatcher Dispatcher
	observer   Observer
	logger     *slog.Logger
	extractors []extractor
	handlers   []handler
}

func newOptions(opts []Option) *options {
	cfg := &options{observer: NoopObserver{}}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.observer == nil {
		cfg.observer = NoopObserver{}
	}
	return cfg
}

// WithDispatcher replaces the default TypeDispatcher used by InitializeRecursive.
func WithDispatcher(d Dispatcher) Option {
	return func(o *options) { o.dispatcher = d }
}

// WithObserver registers an Observer notified of every dispatch and pass.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithLogger sets the logger used by NewWalker.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithExtractor derives a second parameter value from the envelope.
//
// When the envelope is a From and fn reports ok, the returned To is offered to
// beans after the envelope itself. Extractors are tried in registration order.
func WithExtractor[From, To any](fn func(From) (To, bool)) Option {
	ex := extractor{
		from: typeName[From](),
		to:   typeName[To](),
		fn: func(v any) (any, bool) {
			from, ok := v.(From)
			if !ok {
				return nil, false
			}
			return fn(from)
		},
	}
	return func(o *options) { o.extractors = append(o.extractors, ex) }
}

// Handle initializes plain beans of type B, which do not embed Init, when a
// parameter of type P is available. A non-nil error from fn aborts the pass.
func Handle[B Bean, P any](fn func(b B, params P, parent Bean, logger *slog.Logger) error) Option {
	h := handler{
		bean:   typeName[B](),
		params: typeName[P](),
		fn: func(b Bean, params any, parent Bean, logger *slog.Logger) (bool, bool, error) {
			tb, ok := b.(B)
			if !ok {
				return false, false, nil
			}
			p, ok := params.(P)
			if !ok {
				return true, false, nil
			}
			return true, true, fn(tb, p, parent, logger)
		},
	}
	return func(o *options) { o.handlers = append(o.handlers, h) }
}
