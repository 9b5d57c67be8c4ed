package tensor

import (
	"gonum.org/v1/gonum/floats"

	"github.com/flowgrad-ml/flowgrad/internal/autodiff"
)

// Node is a graph node over tensor values.
type Node = autodiff.Node[*Tensor]

// Compile-time check that *Tensor satisfies the element-type contract.
var _ autodiff.Value[*Tensor] = (*Tensor)(nil)

// Add is a variadic elementwise tensor sum backend. It demonstrates using
// Tensor as a node element type; shapes must match exactly (no broadcasting).
type Add struct{}

var _ autodiff.Backend[*Tensor] = Add{}

// Forward returns a single node holding the elementwise sum of the inputs.
// Panics if the inputs have mismatched sizes.
func (Add) Forward(inputs []*Node) []*Node {
	if len(inputs) == 0 {
		panic("tensor: Add expects at least 1 input")
	}
	total := inputs[0].Data.ZeroLike()
	for _, in := range inputs {
		if in.Data.Size() != total.Size() {
			panic("tensor: Add inputs must have equal sizes")
		}
		floats.Add(total.Data(), in.Data.Data())
	}
	return []*Node{autodiff.NewNode(total)}
}

// Backward adds the output gradient into every differentiable input's
// gradient, elementwise.
func (Add) Backward(inputs []*Node, output *Node, _ int) {
	for _, in := range inputs {
		if in.RequiresGrad {
			floats.Add(in.Grad.Data(), output.Grad.Data())
		}
	}
}
