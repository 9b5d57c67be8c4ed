// Package autodiff implements reverse-mode automatic differentiation over an
// explicit computation graph.
//
// Architecture:
//   - Node[T]: holds a value, its accumulated gradient, and references to the
//     nodes it was computed from
//   - Backend interface: each differentiable operation supplies a forward and
//     a backward function
//   - Module: wires a backend's outputs into the graph (parents, gradient
//     flags, deferred backward closures)
//   - Backward: topological sort over parent edges, then reverse replay
//
// Usage:
//
//	sum := autodiff.NewModule[scalar.Scalar](scalar.Sum{})
//	a := autodiff.NewNode(scalar.Scalar(3))
//	b := autodiff.NewNode(scalar.Scalar(4))
//	c := sum.Forward([]*autodiff.Node[scalar.Scalar]{a, b})[0]
//	c.Backward()
//	fmt.Println(a.Grad, b.Grad) // 1 1
package autodiff

// Value is the constraint on node element types.
//
// An element type must be able to produce its own additive and multiplicative
// identities, shaped like the receiver. For container-like types (vectors,
// tensors) "shaped like" means a fresh value of the same length or shape with
// every element set to 0 or 1, not a scalar constant.
type Value[T any] interface {
	// ZeroLike returns the additive identity with the receiver's shape.
	ZeroLike() T
	// OneLike returns the multiplicative identity with the receiver's shape.
	OneLike() T
}

// Node is a single computation in the graph.
//
// Data and Grad are exported because backends read input values and
// accumulate into input gradients directly. The graph structure (parents and
// the deferred backward closure) is wired exclusively by Module and never by
// backends or callers.
//
// Nodes are shared: the same node may be a parent of many downstream nodes
// (fan-out), so backward closures must always accumulate into Grad, never
// assign. The graph is acyclic by construction as long as nodes are produced
// through Module calls.
type Node[T Value[T]] struct {
	// Data is the computed value. It is set at construction and never
	// mutated by the engine afterwards.
	Data T

	// Grad accumulates gradient contributions during Backward. It is
	// initialized to the zero of Data's shape when RequiresGrad is true and
	// is otherwise left at the type's default. Backward never resets it, so
	// repeated calls keep accumulating unless the caller zeroes it.
	Grad T

	// RequiresGrad reports whether this node participates in
	// differentiation.
	RequiresGrad bool

	parents  []*Node[T]
	backward func()
}

// NewNode creates a differentiable leaf node holding data.
//
// The gradient is initialized to data.ZeroLike so that container-like element
// types start from a correctly shaped zero.
func NewNode[T Value[T]](data T) *Node[T] {
	return &Node[T]{
		Data:         data,
		Grad:         data.ZeroLike(),
		RequiresGrad: true,
	}
}

// NewConstant creates a leaf node that does not participate in
// differentiation. Its Grad is left at the element type's default and is
// never written by the engine.
func NewConstant[T Value[T]](data T) *Node[T] {
	return &Node[T]{Data: data}
}

// Parents returns the nodes this node was computed from. Leaves have none.
func (n *Node[T]) Parents() []*Node[T] {
	return n.parents
}

// HasBackward reports whether a deferred backward computation is attached.
// It is true exactly for differentiable nodes produced by a Module.
func (n *Node[T]) HasBackward() bool {
	return n.backward != nil
}
