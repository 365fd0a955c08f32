// Package grad implements reverse-mode automatic differentiation over
// scalar values of a generic numeric type.
//
// Each arithmetic operation eagerly computes its forward value and
// produces a Node recording its operands and local-gradient rule.
// Calling Backward on the final node walks the resulting dependency
// graph once in reverse topological order and accumulates
// d(root)/d(node) into every reachable node.
//
// Architecture:
//   - Node[T]: value + gradient accumulator + operand children + rule
//   - Operation interface: each op supplies per-child gradient contributions
//   - Deduplicating topological sort: shared subexpressions visited once
//   - Reverse-mode AD: single backward sweep applies the chain rule
//
// Usage:
//
//	a := grad.FromValue(2.0)
//	b := grad.FromValue(3.0)
//	c := a.Mul(b) // c.Value() == 6
//
//	grad.Backward(c)
//	fmt.Println(a.Grad()) // dc/da = b = 3
package grad

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Numeric is a constraint for the value types a graph can differentiate
// over. The type set guarantees everything the engine needs from T: the
// additive identity (zero value), the multiplicative identity (1),
// addition, and multiplication.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Node is a single value in the computation graph.
//
// A Node tracks the forward value of an expression, the gradient of the
// backward root with respect to it, the operand nodes that produced it,
// and the Operation encoding its local derivatives. Nodes are shared by
// pointer: a node may be the child of several parents (diamond-shaped
// graphs are legal), and all of them observe the same gradient
// accumulator.
//
// The value, children, and operation are fixed at construction. Only the
// gradient mutates afterwards, and only during Backward or
// ZeroGradients; the engine is single-threaded by contract, so no
// locking guards the accumulator.
type Node[T Numeric] struct {
	value    T            // Forward result, immutable after construction
	grad     T            // Accumulated d(root)/d(this), zero until backward
	children []*Node[T]   // Operands, in the order the Operation documents
	op       Operation[T] // Local-gradient rule
}

// FromValue lifts a raw value into a leaf node with zero gradient and no
// children. Every value entering a graph passes through here, either
// directly or via an operator's raw-value form such as MulValue.
func FromValue[T Numeric](v T) *Node[T] {
	return &Node[T]{
		value: v,
		op:    leafOp[T]{},
	}
}

// Value returns the forward value computed at construction.
func (n *Node[T]) Value() T {
	return n.value
}

// Grad returns the gradient accumulated so far for this node.
// Zero before any Backward call.
func (n *Node[T]) Grad() T {
	return n.grad
}

// Children returns the operand nodes that produced this node.
// Leaves return nil. Callers must not modify the returned slice.
func (n *Node[T]) Children() []*Node[T] {
	return n.children
}

// String implements fmt.Stringer for debugging.
func (n *Node[T]) String() string {
	return fmt.Sprintf("Node(op=%s, value=%v, grad=%v)", n.op.Name(), n.value, n.grad)
}

// Mul returns a new node for a * b, attaching a and b as children in
// that order. The operands stay reachable (and keep accumulating
// gradient) through the result's children list.
func (n *Node[T]) Mul(other *Node[T]) *Node[T] {
	return &Node[T]{
		value:    n.value * other.value,
		children: []*Node[T]{n, other},
		op:       mulOp[T]{},
	}
}

// MulValue multiplies by a raw value, lifting it into a tracked leaf
// first so the new operand participates in backward like any other node.
func (n *Node[T]) MulValue(v T) *Node[T] {
	return n.Mul(FromValue(v))
}
