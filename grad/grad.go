// Copyright 2025 mkgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grad provides the public API for reverse-mode automatic
// differentiation over scalar values of a generic numeric type.
//
// Expressions are built eagerly: every operation computes its forward
// value immediately and records its operands and local-gradient rule in
// a new Node. A single Backward call on the final node then populates
// the gradient of every value that fed into it.
//
// Example:
//
//	a := grad.FromValue(2.0)
//	b := grad.FromValue(3.0)
//	d := a.Mul(b).Mul(a) // d = (a*b)*a
//
//	grad.Backward(d)
//	fmt.Println(a.Grad()) // dd/da = 2*a*b = 12
//	fmt.Println(b.Grad()) // dd/db = a*a  = 4
package grad

import (
	"github.com/mkualquiera/mkgrad/internal/grad"
)

// Numeric is the constraint on differentiable value types.
// Any integer or floating-point type satisfies it.
type Numeric = grad.Numeric

// Node is a value in the computation graph, carrying its forward value
// and its accumulated gradient.
type Node[T Numeric] = grad.Node[T]

// Operation is the local-gradient rule attached to a node. Implementing
// it (plus a constructor that attaches operands as children in a fixed
// order) is all it takes to add a new operator.
type Operation[T Numeric] = grad.Operation[T]

// FromValue lifts a raw value into a leaf node.
//
// Example:
//
//	x := grad.FromValue(2.0)
//	y := x.MulValue(3.0) // y.Value() == 6
func FromValue[T Numeric](v T) *Node[T] {
	return grad.FromValue(v)
}

// Backward accumulates d(root)/d(n) into every node n reachable from
// root. Repeated calls accumulate; use ZeroGradients between
// independent passes.
func Backward[T Numeric](root *Node[T]) {
	grad.Backward(root)
}

// TopologicalOrder returns every node reachable from root exactly once,
// children before parents, root last.
func TopologicalOrder[T Numeric](root *Node[T]) []*Node[T] {
	return grad.TopologicalOrder(root)
}

// ZeroGradients resets the gradient of every node reachable from root.
func ZeroGradients[T Numeric](root *Node[T]) {
	grad.ZeroGradients(root)
}
