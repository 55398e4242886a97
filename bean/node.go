package bean

import "strings"

// PathSeparator joins bean names in diagnostic paths.
const PathSeparator = "->"

// Node pairs a bean with the node it was discovered from.
//
// The parent link exists for diagnostics only. Nodes are created fresh for
// every discovery, so parent chains never form cycles even when the beans
// themselves reference each other cyclically.
type Node struct {
	bean   Bean
	parent *Node
}

// NewNode wraps b. parent is nil for the root.
//
// It panics with ErrNilBean if b is nil; discovery never produces such nodes.
func NewNode(b Bean, parent *Node) *Node {
	if isNil(b) {
		panic(ErrNilBean)
	}
	return &Node{bean: b, parent: parent}
}

// Bean returns the wrapped bean.
func (n *Node) Bean() Bean { return n.bean }

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// ParentBean returns the parent's bean, or nil for the root.
func (n *Node) ParentBean() Bean {
	if n.parent == nil {
		return nil
	}
	return n.parent.bean
}

// Depth is the number of parent links between n and the root.
func (n *Node) Depth() int {
	depth := 0
	for cur := n.parent; cur != nil; cur = cur.parent {
		depth++
	}
	return depth
}

// PathFromRoot joins the bean names from the root down to n, e.g. "R->C->D".
func (n *Node) PathFromRoot() string {
	names := make([]string, n.Depth()+1)
	i := len(names) - 1
	for cur := n; cur != nil; cur = cur.parent {
		names[i] = cur.bean.BeanName()
		i--
	}
	return strings.Join(names, PathSeparator)
}
