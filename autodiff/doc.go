// Copyright 2025 The Flowgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff is the public API for reverse-mode automatic
// differentiation over a dynamic computation graph.
//
// # Overview
//
// Flowgrad builds an explicit graph over generic numeric-like values and
// computes gradients by replaying the graph backward:
//   - Node[T]: value, gradient, and graph wiring for one computation
//   - Backend[T] / ParametricBackend[T, P]: a pluggable operation as a pure
//     forward/backward pair
//   - Module[T] / ParametricModule[T, P]: adapters that run a backend and
//     wire its outputs into the graph
//
// # Basic Usage
//
//	import (
//	    "github.com/flowgrad-ml/flowgrad/autodiff"
//	    "github.com/flowgrad-ml/flowgrad/backend/scalar"
//	)
//
//	func main() {
//	    sum := autodiff.NewModule[scalar.Scalar](scalar.Sum{})
//	    a := autodiff.NewNode(scalar.Scalar(3))
//	    b := autodiff.NewNode(scalar.Scalar(4))
//	    c := sum.Forward([]*scalar.Node{a, b})[0]
//	    c.Backward()
//	    // a.Grad == 1, b.Grad == 1
//	}
//
// # Element Types
//
// Any type implementing Value — ZeroLike and OneLike returning
// shape-matched identities — can flow through the graph. The repository
// ships Scalar, Vector and *tensor.Tensor element types.
//
// # Writing Backends
//
// A backend validates its own inputs (the engine performs no validation),
// produces fresh value-only nodes in Forward, and accumulates — never
// assigns — into differentiable inputs' Grad in Backward. See the
// backend/scalar and backend/vector packages for reference implementations.
//
// # Gradient Semantics
//
// Backward seeds the called node's gradient with ones, walks parent edges in
// topological order and replays deferred backward computations in reverse.
// Gradients accumulate across calls; callers reset them explicitly when a
// fresh pass is needed. A node with RequiresGrad == false blocks traversal
// into its parents.
package autodiff
