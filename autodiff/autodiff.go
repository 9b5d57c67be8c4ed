// Copyright 2025 The Flowgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff

import (
	internalautodiff "github.com/flowgrad-ml/flowgrad/internal/autodiff"
)

// Value is the constraint on node element types: a type that can produce
// its own shape-matched additive and multiplicative identities.
type Value[T any] = internalautodiff.Value[T]

// Node is a single computation in the graph, holding a value, an accumulated
// gradient, and references to the nodes it was computed from.
type Node[T Value[T]] = internalautodiff.Node[T]

// Backend defines one differentiable operation as a pure forward/backward
// pair. See the internal package documentation for the full contract.
type Backend[T Value[T]] = internalautodiff.Backend[T]

// ParametricBackend is a Backend configured by an immutable parameter value
// passed identically to forward and backward.
type ParametricBackend[T Value[T], P any] = internalautodiff.ParametricBackend[T, P]

// Module adapts a Backend into the graph: it runs the forward function and
// wires parents, gradient flags and deferred backward closures.
type Module[T Value[T]] = internalautodiff.Module[T]

// ParametricModule is a Module for parameterized operations.
type ParametricModule[T Value[T], P any] = internalautodiff.ParametricModule[T, P]

// NewNode creates a differentiable leaf node holding data.
func NewNode[T Value[T]](data T) *Node[T] {
	return internalautodiff.NewNode(data)
}

// NewConstant creates a leaf node excluded from differentiation.
func NewConstant[T Value[T]](data T) *Node[T] {
	return internalautodiff.NewConstant(data)
}

// NewModule creates a Module around backend.
func NewModule[T Value[T]](backend Backend[T]) *Module[T] {
	return internalautodiff.NewModule(backend)
}

// NewParametricModule creates a ParametricModule around backend with the
// given parameter value.
func NewParametricModule[T Value[T], P any](backend ParametricBackend[T, P], params P) *ParametricModule[T, P] {
	return internalautodiff.NewParametricModule(backend, params)
}
