// Copyright 2025 The Flowgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vector provides a dense 1-D element type and vector backends for
// the autodiff graph: a variadic Sum, a multi-output Split, and a
// parameterized elementwise Pow.
//
// Example:
//
//	import (
//	    "github.com/flowgrad-ml/flowgrad/autodiff"
//	    "github.com/flowgrad-ml/flowgrad/backend/vector"
//	)
//
//	square := autodiff.NewParametricModule[vector.Vector](vector.Pow{}, 2.0)
//	x := autodiff.NewNode(vector.Vector{1, 2, 3, 4})
//	y := square.Forward([]*vector.Node{x})[0]
//	y.Backward()
//	// x.Grad == Vector{2, 4, 6, 8}
package vector

import (
	"github.com/flowgrad-ml/flowgrad/autodiff"
	internalvector "github.com/flowgrad-ml/flowgrad/internal/backend/vector"
)

// Vector is a []float64 satisfying the autodiff element-type contract.
type Vector = internalvector.Vector

// Node is a graph node over Vector values.
type Node = internalvector.Node

// Sum is a variadic elementwise vector sum backend.
type Sum = internalvector.Sum

// Split splits one vector of length n into n single-element outputs.
type Split = internalvector.Split

// Pow raises every element to a fixed exponent given as module parameter.
type Pow = internalvector.Pow

// Compile-time checks that the backends satisfy the operation contract.
var (
	_ autodiff.Backend[Vector]                    = Sum{}
	_ autodiff.Backend[Vector]                    = Split{}
	_ autodiff.ParametricBackend[Vector, float64] = Pow{}
)
