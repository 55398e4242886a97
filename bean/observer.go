package bean

import "time"

// DispatchResult is the outcome of one dispatch.
type DispatchResult int

const (
	// Initialized means the bean was initialized and will be expanded.
	Initialized DispatchResult = iota
	// Incompatible means the parameters did not fit the bean.
	Incompatible
	// Failed means initialization was attempted and returned an error.
	Failed
)

// String implements fmt.Stringer.
func (r DispatchResult) String() string {
	switch r {
	case Initialized:
		return "initialized"
	case Incompatible:
		return "incompatible"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Observer is notified of walker progress. Implementations are called on the
// walking goroutine and should return quickly.
type Observer interface {
	Dispatched(n *Node, result DispatchResult)
	PassFinished(root Bean, err error, elapsed time.Duration)
}

// NoopObserver is used when no observer is configured.
type NoopObserver struct{}

func (NoopObserver) Dispatched(*Node, DispatchResult)         {}
func (NoopObserver) PassFinished(Bean, error, time.Duration) {}
