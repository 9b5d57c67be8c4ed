// Package scalar provides a minimal scalar element type and backends over it.
//
// It is the smallest possible demonstration of the Backend contract and the
// element type the engine's own tests are written against.
package scalar

import "github.com/flowgrad-ml/flowgrad/internal/autodiff"

// Scalar is a float64 that satisfies the autodiff element-type contract.
type Scalar float64

// ZeroLike returns 0.
func (Scalar) ZeroLike() Scalar { return 0 }

// OneLike returns 1.
func (Scalar) OneLike() Scalar { return 1 }

// Node is a graph node over Scalar values.
type Node = autodiff.Node[Scalar]

// Sum is a variadic scalar sum: one output holding the sum of all inputs.
type Sum struct{}

var _ autodiff.Backend[Scalar] = Sum{}

// Forward returns a single node holding the sum of the input values.
func (Sum) Forward(inputs []*Node) []*Node {
	var total Scalar
	for _, in := range inputs {
		total += in.Data
	}
	return []*Node{autodiff.NewNode(total)}
}

// Backward adds the output gradient into every differentiable input.
// d(a+b+...)/da = 1 for every input.
func (Sum) Backward(inputs []*Node, output *Node, _ int) {
	for _, in := range inputs {
		if in.RequiresGrad {
			in.Grad += output.Grad
		}
	}
}

// Mul is a two-input scalar product.
type Mul struct{}

var _ autodiff.Backend[Scalar] = Mul{}

// Forward returns a single node holding inputs[0] * inputs[1].
// Exactly two inputs are required.
func (Mul) Forward(inputs []*Node) []*Node {
	if len(inputs) != 2 {
		panic("scalar: Mul expects exactly 2 inputs")
	}
	return []*Node{autodiff.NewNode(inputs[0].Data * inputs[1].Data)}
}

// Backward distributes the output gradient using the product rule:
// d(a*b)/da = b and d(a*b)/db = a.
func (Mul) Backward(inputs []*Node, output *Node, _ int) {
	a, b := inputs[0], inputs[1]
	if a.RequiresGrad {
		a.Grad += b.Data * output.Grad
	}
	if b.RequiresGrad {
		b.Grad += a.Data * output.Grad
	}
}
