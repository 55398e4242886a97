package bean

import "strconv"

// Children discovers the child beans of n through its field schema.
//
// Fields tagged SkipInit are never read. Collection fields yield every element
// implementing Bean, whatever their own modifiers; a nil element is reported
// as ErrNilElement. Scalar fields yield their value when it implements Bean;
// empty values and non-bean values contribute nothing.
//
// Children are returned in field declaration order, each parented at n.
// Any read failure is returned as a FieldAccessError.
func Children(n *Node) ([]*Node, error) {
	b := n.Bean()

	var children []*Node
	for _, f := range b.ConfigurableFields() {
		if f.Modifiers.Has(SkipInit) {
			continue
		}
		if f.Get == nil {
			return nil, FieldAccessError{Bean: b.BeanName(), Field: f.Name, Err: ErrUnboundField}
		}

		v, err := f.Get()
		if err != nil {
			return nil, FieldAccessError{Bean: b.BeanName(), Field: f.Name, Err: err}
		}

		if f.Collection {
			if v == nil {
				continue
			}
			items, ok := v.([]any)
			if !ok {
				return nil, FieldAccessError{Bean: b.BeanName(), Field: f.Name, Err: ErrNotCollection}
			}
			for i, item := range items {
				if isNil(item) {
					return nil, FieldAccessError{
						Bean:  b.BeanName(),
						Field: f.Name + "[" + strconv.Itoa(i) + "]",
						Err:   ErrNilElement,
					}
				}
				if child, ok := item.(Bean); ok {
					children = append(children, NewNode(child, n))
				}
			}
			continue
		}

		// An empty scalar, optional or not, never satisfies Bean.
		if isNil(v) {
			continue
		}
		if child, ok := v.(Bean); ok {
			children = append(children, NewNode(child, n))
		}
	}
	return children, nil
}

// Visit calls fn once for every bean reachable from root, in pre-order and
// field declaration order, regardless of initialization state.
//
// Shared beans are visited once, through the first path that reaches them.
// Visit stops at the first error returned by fn or by discovery.
func Visit(root Bean, fn func(n *Node) error) error {
	if isNil(root) {
		return ErrNilBean
	}

	work := []*Node{NewNode(root, nil)}
	visited := make(map[any]struct{})

	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]

		key, err := identity(n.Bean())
		if err != nil {
			return err
		}
		if _, seen := visited[key]; seen {
			continue
		}
		visited[key] = struct{}{}

		if err := fn(n); err != nil {
			return err
		}

		children, err := Children(n)
		if err != nil {
			return err
		}
		work = pushReversed(work, children)
	}
	return nil
}

// pushReversed pushes children so that popping yields declaration order.
func pushReversed(work, children []*Node) []*Node {
	for i := len(children) - 1; i >= 0; i-- {
		work = append(work, children[i])
	}
	return work
}
