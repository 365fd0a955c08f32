package grad

import "github.com/gomlx/exceptions"

// Backward accumulates d(root)/d(n) into every node n reachable from
// root.
//
// Algorithm:
//  1. Seed the root gradient with the multiplicative identity.
//  2. Order the graph topologically (children before parents).
//  3. Walk the order in reverse; a node's gradient is final when it is
//     reached, so its rule's contributions are added to each child.
//
// Gradients are additive: calling Backward again on the same root
// accumulates on top of the previous pass rather than replacing it.
// Callers that need fresh gradients between independent passes reset
// with ZeroGradients first.
func Backward[T Numeric](root *Node[T]) {
	root.grad += 1

	order := TopologicalOrder(root)
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		contribs := n.op.Backward(n)
		if len(contribs) != len(n.children) {
			exceptions.Panicf("grad: operation %q returned %d gradient contributions for %d children",
				n.op.Name(), len(contribs), len(n.children))
		}
		for j, child := range n.children {
			child.grad += contribs[j]
		}
	}
}

// ZeroGradients resets the gradient of every node reachable from root
// to the additive identity. Backward never resets on its own; this is
// the collaborator callers run between independent backward passes.
func ZeroGradients[T Numeric](root *Node[T]) {
	for _, n := range TopologicalOrder(root) {
		var zero T
		n.grad = zero
	}
}
