package grad

// TopologicalOrder returns every node reachable from root, children
// before parents, root last.
//
// The traversal is a depth-first post-order with a visited set keyed by
// node identity. The guard matters: a node shared by several parents
// (diamond dependency) must appear exactly once, or its gradient rule
// would run once per path during backward and multiply-count gradients
// downstream.
func TopologicalOrder[T Numeric](root *Node[T]) []*Node[T] {
	visited := make(map[*Node[T]]bool)
	order := make([]*Node[T], 0, 16)

	var visit func(*Node[T])
	visit = func(n *Node[T]) {
		if visited[n] {
			return
		}
		visited[n] = true
		for _, child := range n.children {
			visit(child)
		}
		order = append(order, n)
	}
	visit(root)

	return order
}
