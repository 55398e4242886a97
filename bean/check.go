package bean

// CheckMisconfigured reports the first reachable capability-tagged bean that is
// not initialized, as a NotInitializedError.
//
// It follows every bean reference, including those below plain beans that a
// pass does not expand, so it exposes beans a pass left behind.
func CheckMisconfigured(root Bean) error {
	return Visit(root, func(n *Node) error {
		ib, ok := n.Bean().(Initializable)
		if !ok || ib.IsInitialized() {
			return nil
		}
		return NotInitializedError{Path: n.PathFromRoot(), Required: ib.RequiredParams()}
	})
}
