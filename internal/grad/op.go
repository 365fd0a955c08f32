package grad

// Operation is the local-gradient rule attached to a node.
//
// Backward receives the node the rule is attached to, after the node's
// own gradient has been fully accumulated, and returns one gradient
// contribution per child, in the same order as the node's children.
// Each contribution is d(root)/d(child) routed through this node, i.e.
// the node's accumulated gradient times the local partial derivative.
//
// Adding an operator means adding one Operation implementation plus a
// constructor that computes the forward value and attaches the operands
// as children in a fixed, documented order. Nothing else in the engine
// changes.
//
// Example for mulOp:
//
//	children: [a, b]
//	returns:  [grad * b.Value(), grad * a.Value()]
type Operation[T Numeric] interface {
	// Backward computes the gradient contributions for n's children.
	// len(result) must equal len(n.Children()).
	Backward(n *Node[T]) []T

	// Name identifies the operation in diagnostics.
	Name() string
}

// leafOp is the rule for lifted constants: no children, no
// contributions to propagate.
type leafOp[T Numeric] struct{}

func (leafOp[T]) Backward(*Node[T]) []T { return nil }

func (leafOp[T]) Name() string { return "leaf" }

// mulOp is the rule for binary multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so contribution to a = grad * b
//   - d(a*b)/db = a, so contribution to b = grad * a
type mulOp[T Numeric] struct{}

func (mulOp[T]) Backward(n *Node[T]) []T {
	a, b := n.children[0], n.children[1]
	return []T{n.grad * b.value, n.grad * a.value}
}

func (mulOp[T]) Name() string { return "mul" }
