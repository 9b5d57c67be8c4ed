// Package vector provides a dense 1-D element type and backends over it:
// a variadic sum, a multi-output split, and a parameterized elementwise power.
//
// Together they exercise the three shapes a backend can take — plain,
// multi-output, and parameterized — against container-like values.
package vector

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/flowgrad-ml/flowgrad/internal/autodiff"
)

// Vector is a []float64 that satisfies the autodiff element-type contract.
type Vector []float64

// ZeroLike returns a zero vector of the receiver's length.
func (v Vector) ZeroLike() Vector {
	return make(Vector, len(v))
}

// OneLike returns a vector of ones of the receiver's length.
func (v Vector) OneLike() Vector {
	out := make(Vector, len(v))
	for i := range out {
		out[i] = 1
	}
	return out
}

// Node is a graph node over Vector values.
type Node = autodiff.Node[Vector]

// Sum is a variadic elementwise vector sum: one output, every input must
// have the same length.
type Sum struct{}

var _ autodiff.Backend[Vector] = Sum{}

// Forward returns a single node holding the elementwise sum of the inputs.
// Panics if the inputs have mismatched lengths.
func (Sum) Forward(inputs []*Node) []*Node {
	if len(inputs) == 0 {
		panic("vector: Sum expects at least 1 input")
	}
	total := make(Vector, len(inputs[0].Data))
	for _, in := range inputs {
		if len(in.Data) != len(total) {
			panic("vector: Sum inputs must have equal lengths")
		}
		floats.Add(total, in.Data)
	}
	return []*Node{autodiff.NewNode(total)}
}

// Backward adds the output gradient into every differentiable input's
// gradient, elementwise.
func (Sum) Backward(inputs []*Node, output *Node, _ int) {
	for _, in := range inputs {
		if in.RequiresGrad {
			floats.Add(in.Grad, output.Grad)
		}
	}
}

// Split splits a single input of length n into n single-element outputs.
type Split struct{}

var _ autodiff.Backend[Vector] = Split{}

// Forward returns one single-element node per element of the input.
// Exactly one input is required.
func (Split) Forward(inputs []*Node) []*Node {
	if len(inputs) != 1 {
		panic("vector: Split expects exactly 1 input")
	}
	in := inputs[0]
	outputs := make([]*Node, len(in.Data))
	for i, x := range in.Data {
		outputs[i] = autodiff.NewNode(Vector{x})
	}
	return outputs
}

// Backward routes the output's gradient back into the input element the
// output was taken from. Each output contributes independently, so gradients
// from a Backward call on a single output leave the other elements untouched.
func (Split) Backward(inputs []*Node, output *Node, outputIndex int) {
	in := inputs[0]
	if in.RequiresGrad {
		in.Grad[outputIndex] += output.Grad[0]
	}
}

// Pow raises every element of its single input to a fixed exponent. The
// exponent is the module parameter, shared by forward and backward.
type Pow struct{}

var _ autodiff.ParametricBackend[Vector, float64] = Pow{}

// Forward returns a single node holding x^p elementwise.
// Exactly one input is required.
func (Pow) Forward(inputs []*Node, p float64) []*Node {
	if len(inputs) != 1 {
		panic("vector: Pow expects exactly 1 input")
	}
	in := inputs[0]
	out := make(Vector, len(in.Data))
	for i, x := range in.Data {
		out[i] = math.Pow(x, p)
	}
	return []*Node{autodiff.NewNode(out)}
}

// Backward accumulates the power rule gradient p * x^(p-1) * dL/dout.
func (Pow) Backward(inputs []*Node, output *Node, _ int, p float64) {
	in := inputs[0]
	if !in.RequiresGrad {
		return
	}
	for i, x := range in.Data {
		in.Grad[i] += p * math.Pow(x, p-1) * output.Grad[i]
	}
}
