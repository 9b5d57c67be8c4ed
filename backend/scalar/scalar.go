// Copyright 2025 The Flowgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides a float64 element type and scalar backends for the
// autodiff graph.
//
// Example:
//
//	import (
//	    "github.com/flowgrad-ml/flowgrad/autodiff"
//	    "github.com/flowgrad-ml/flowgrad/backend/scalar"
//	)
//
//	sum := autodiff.NewModule[scalar.Scalar](scalar.Sum{})
//	a := autodiff.NewNode(scalar.Scalar(3))
//	b := autodiff.NewNode(scalar.Scalar(4))
//	c := sum.Forward([]*scalar.Node{a, b})[0]
//	c.Backward()
package scalar

import (
	"github.com/flowgrad-ml/flowgrad/autodiff"
	internalscalar "github.com/flowgrad-ml/flowgrad/internal/backend/scalar"
)

// Scalar is a float64 satisfying the autodiff element-type contract.
type Scalar = internalscalar.Scalar

// Node is a graph node over Scalar values.
type Node = internalscalar.Node

// Sum is a variadic scalar sum backend.
type Sum = internalscalar.Sum

// Mul is a two-input scalar product backend.
type Mul = internalscalar.Mul

// Compile-time checks that the backends satisfy the operation contract.
var (
	_ autodiff.Backend[Scalar] = Sum{}
	_ autodiff.Backend[Scalar] = Mul{}
)
