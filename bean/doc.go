// Package bean initializes graphs of configuration objects ("beans").
//
// A bean is any pointer type implementing Bean: it has a display name and a
// statically declared schema of configurable fields (see Field, FieldOf and
// ListOf). Fields may reference other beans directly, optionally, or through
// ordered collections, which makes every root bean the entry point of a graph.
//
// InitializeRecursive performs one synchronous pass over such a graph:
//
//   - discovers every reachable child through the field schema,
//     honouring the SkipInit and Optional modifiers
//   - asks a Dispatcher whether the supplied parameters are compatible with
//     each bean, initializing it when they are
//   - expands only beans that were initialized
//   - fails with an InitializationError carrying the root-to-node path on the
//     first capability-tagged bean whose parameters cannot be satisfied
//
// Beans become capability-tagged ("initializable") by embedding Init[P], where
// P is the parameter type they require. Compatibility is a Go type assertion,
// so an interface P accepts every envelope implementing it.
//
// Each bean is dispatched at most once per pass: the walker keeps an
// identity-keyed visited set, which also makes cyclic and diamond-shaped
// graphs terminate.
//
// Import
//
//	"github.com/sghaida/beaninit/bean"
package bean
