package autodiff

import "slices"

// Backend defines one differentiable operation as a pair of pure functions.
//
// Forward receives the ordered input nodes and returns one or more freshly
// constructed output nodes carrying values only; it must not touch parents or
// gradients. All cardinality and shape validation is the backend's
// responsibility — the engine performs none.
//
// Backward receives the full original input list (including inputs that do
// not require gradients — it must check RequiresGrad per input before
// writing), the specific output node, and that output's index among the
// operation's outputs. It must accumulate into each differentiable input's
// Grad, never assign, because an input may receive contributions from several
// outputs or several downstream consumers.
type Backend[T Value[T]] interface {
	Forward(inputs []*Node[T]) []*Node[T]
	Backward(inputs []*Node[T], output *Node[T], outputIndex int)
}

// ParametricBackend is a Backend whose operation is configured by an
// immutable parameter value. The same parameter is passed to both the forward
// and the backward function.
type ParametricBackend[T Value[T], P any] interface {
	Forward(inputs []*Node[T], params P) []*Node[T]
	Backward(inputs []*Node[T], output *Node[T], outputIndex int, params P)
}

// Module adapts a Backend into the graph: it runs the backend's forward
// function eagerly and wires the resulting nodes (parents, gradient flags,
// deferred backward closures).
type Module[T Value[T]] struct {
	backend Backend[T]
}

// NewModule creates a Module around backend.
func NewModule[T Value[T]](backend Backend[T]) *Module[T] {
	return &Module[T]{backend: backend}
}

// Forward runs the backend on inputs and wires the outputs into the graph.
//
// Every output gets the same parent list (the inputs, in call order). An
// output requires gradients iff any input does; only then is a backward
// closure attached. Input nodes are never mutated.
func (m *Module[T]) Forward(inputs []*Node[T]) []*Node[T] {
	requiresGrad := anyRequiresGrad(inputs)
	outputs := m.backend.Forward(inputs)
	captured := slices.Clone(inputs)
	for i, out := range outputs {
		wire(out, captured, requiresGrad)
		if requiresGrad {
			out.backward = m.bind(captured, out, i)
		}
	}
	return outputs
}

func (m *Module[T]) bind(inputs []*Node[T], out *Node[T], outputIndex int) func() {
	return func() {
		m.backend.Backward(inputs, out, outputIndex)
	}
}

// ParametricModule is a Module for parameterized operations. The parameter is
// captured by value at construction and handed unchanged to every forward and
// backward call.
type ParametricModule[T Value[T], P any] struct {
	backend ParametricBackend[T, P]
	params  P
}

// NewParametricModule creates a ParametricModule around backend with the
// given parameter value.
func NewParametricModule[T Value[T], P any](backend ParametricBackend[T, P], params P) *ParametricModule[T, P] {
	return &ParametricModule[T, P]{backend: backend, params: params}
}

// Params returns the parameter value the module was constructed with.
func (m *ParametricModule[T, P]) Params() P {
	return m.params
}

// Forward runs the parameterized backend on inputs and wires the outputs into
// the graph. Wiring is identical to Module.Forward; the backward closures
// additionally capture a copy of the parameter value.
func (m *ParametricModule[T, P]) Forward(inputs []*Node[T]) []*Node[T] {
	requiresGrad := anyRequiresGrad(inputs)
	outputs := m.backend.Forward(inputs, m.params)
	captured := slices.Clone(inputs)
	for i, out := range outputs {
		wire(out, captured, requiresGrad)
		if requiresGrad {
			out.backward = m.bind(captured, out, i)
		}
	}
	return outputs
}

func (m *ParametricModule[T, P]) bind(inputs []*Node[T], out *Node[T], outputIndex int) func() {
	params := m.params
	return func() {
		m.backend.Backward(inputs, out, outputIndex, params)
	}
}

// wire attaches parents and the gradient flag to a freshly produced output
// node. The parents slice is shared between all outputs of one Forward call
// and their backward closures; it is a clone of the caller's slice, so later
// mutation of the caller's slice cannot corrupt the graph.
func wire[T Value[T]](out *Node[T], parents []*Node[T], requiresGrad bool) {
	out.parents = parents
	out.RequiresGrad = requiresGrad
	if requiresGrad {
		out.Grad = out.Data.ZeroLike()
	}
}

func anyRequiresGrad[T Value[T]](inputs []*Node[T]) bool {
	for _, in := range inputs {
		if in.RequiresGrad {
			return true
		}
	}
	return false
}
