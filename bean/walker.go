package bean

import (
	"log/slog"
	"reflect"
	"time"
)

// Walker runs one initialization pass over a bean graph.
//
// The work list is a stack. Children are pushed in reverse declaration order,
// so beans are dispatched in pre-order, following field declaration order; when
// several beans would fail, the first one in that order is reported.
//
// A Walker keeps no state between passes and may be reused sequentially.
type Walker struct {
	dispatcher Dispatcher
	logger     *slog.Logger
	observer   Observer
}

// NewWalker returns a walker dispatching through d.
// It honours WithLogger and WithObserver.
func NewWalker(d Dispatcher, opts ...Option) *Walker {
	cfg := newOptions(opts)
	return &Walker{dispatcher: d, logger: orDiscard(cfg.logger), observer: cfg.observer}
}

// Walk initializes root and every reachable bean the dispatcher accepts.
//
// A capability-tagged bean the dispatcher rejects aborts the pass with an
// InitializationError wrapping ErrIncompatibleParameters. A plain bean it
// rejects is not an error, but its children are not visited.
func (w *Walker) Walk(root Bean) error {
	if isNil(root) {
		return ErrNilBean
	}

	start := time.Now()
	count, err := w.walk(NewNode(root, nil))
	elapsed := time.Since(start)
	w.observer.PassFinished(root, err, elapsed)

	if err != nil {
		w.logger.Debug("Initialization pass failed.", "root", root.BeanName(), "error", err)
		return err
	}
	w.logger.Info("Initialization pass finished.", "root", root.BeanName(), "initialized", count, "elapsed", elapsed)
	return nil
}

func (w *Walker) walk(rootNode *Node) (int, error) {
	work := []*Node{rootNode}
	visited := make(map[any]struct{})
	initialized := 0

	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]

		key, err := identity(n.Bean())
		if err != nil {
			return initialized, w.failure(rootNode, n, err)
		}
		if _, seen := visited[key]; seen {
			continue
		}
		visited[key] = struct{}{}

		ok, err := w.dispatcher.Attempt(n.Bean(), n.ParentBean())
		if err != nil {
			w.observer.Dispatched(n, Failed)
			return initialized, w.failure(rootNode, n, err)
		}
		if !ok {
			w.observer.Dispatched(n, Incompatible)
			if _, tagged := n.Bean().(Initializable); tagged {
				return initialized, w.failure(rootNode, n, ErrIncompatibleParameters)
			}
			w.logger.Debug("Bean not initialized, children skipped.", "path", n.PathFromRoot())
			continue
		}

		w.observer.Dispatched(n, Initialized)
		initialized++
		w.logger.Debug("Bean initialized.", "path", n.PathFromRoot())

		children, err := Children(n)
		if err != nil {
			return initialized, w.failure(rootNode, n, err)
		}
		work = pushReversed(work, children)
	}
	return initialized, nil
}

func (w *Walker) failure(rootNode, n *Node, cause error) error {
	return InitializationError{
		Path:     n.PathFromRoot(),
		RootName: rootNode.Bean().BeanName(),
		Required: w.dispatcher.RequiredParameterDescription(n.Bean()),
		Supplied: w.dispatcher.SuppliedDescription(),
		Cause:    cause,
	}
}

// identity returns the visited-set key of b: the pointer itself.
func identity(b Bean) (any, error) {
	if reflect.ValueOf(b).Kind() != reflect.Pointer {
		return nil, NonPointerBeanError{Bean: b.BeanName(), Type: describe(b)}
	}
	return b, nil
}
