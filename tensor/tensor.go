// Copyright 2025 The Flowgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense N-dimensional float64 storage with manual
// strided indexing, usable as an element type for the autodiff graph.
//
// The storage is intentionally minimal: row-major layout, exact-shape
// elementwise operations, no broadcasting, no device abstraction. It
// demonstrates that the engine is agnostic to its element type, nothing more.
//
// Example:
//
//	t, err := tensor.New(2, 3)
//	if err != nil { ... }
//	t.Set(1.5, 0, 2)
//	v := t.At(0, 2)
package tensor

import (
	"github.com/flowgrad-ml/flowgrad/autodiff"
	internaltensor "github.com/flowgrad-ml/flowgrad/internal/tensor"
)

// Shape represents the dimensions of a tensor.
type Shape = internaltensor.Shape

// Tensor is dense row-major storage over a flat float64 buffer.
type Tensor = internaltensor.Tensor

// Node is a graph node over tensor values.
type Node = internaltensor.Node

// Add is a variadic elementwise tensor sum backend.
type Add = internaltensor.Add

// Compile-time checks against the autodiff contracts.
var (
	_ autodiff.Value[*Tensor]   = (*Tensor)(nil)
	_ autodiff.Backend[*Tensor] = Add{}
)

// New creates a zero-filled tensor with the given shape.
func New(shape ...int) (*Tensor, error) {
	return internaltensor.New(shape...)
}

// FromSlice creates a tensor with the given shape backed by a copy of data.
func FromSlice(data []float64, shape ...int) (*Tensor, error) {
	return internaltensor.FromSlice(data, shape...)
}
