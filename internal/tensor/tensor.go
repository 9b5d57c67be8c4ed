// Package tensor provides dense N-dimensional float64 storage with manual
// strided indexing.
//
// It exists as an example element type for the autodiff graph — it satisfies
// the engine's Value contract — and is not part of the engine's own API.
// There is no broadcasting, no shape inference, and no device abstraction.
package tensor

import (
	"errors"
	"fmt"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} is a 3-D tensor with dimensions 2×3×4.
type Shape []int

// Size returns the total number of elements, or 0 for an empty shape.
func (s Shape) Size() int {
	if len(s) == 0 {
		return 0
	}
	size := 1
	for _, dim := range s {
		size *= dim
	}
	return size
}

// Tensor is dense row-major storage over a flat float64 buffer.
type Tensor struct {
	shape   Shape
	strides []int
	data    []float64
}

// New creates a zero-filled tensor with the given shape.
// Every dimension must be positive.
func New(shape ...int) (*Tensor, error) {
	if len(shape) == 0 {
		return nil, errors.New("tensor: shape must have at least 1 dimension")
	}
	for _, dim := range shape {
		if dim <= 0 {
			return nil, fmt.Errorf("tensor: invalid dimension %d", dim)
		}
	}
	s := Shape(shape)
	return &Tensor{
		shape:   s,
		strides: computeStrides(s),
		data:    make([]float64, s.Size()),
	}, nil
}

// FromSlice creates a tensor with the given shape backed by a copy of data.
// len(data) must equal the shape's size.
func FromSlice(data []float64, shape ...int) (*Tensor, error) {
	t, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(t.data) {
		return nil, fmt.Errorf("tensor: data length %d does not match shape size %d", len(data), len(t.data))
	}
	copy(t.data, data)
	return t, nil
}

// computeStrides returns row-major strides for shape.
func computeStrides(shape Shape) []int {
	strides := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}
	return strides
}

// Shape returns a copy of the tensor's dimensions.
func (t *Tensor) Shape() Shape {
	out := make(Shape, len(t.shape))
	copy(out, t.shape)
	return out
}

// Size returns the total number of elements.
func (t *Tensor) Size() int {
	return len(t.data)
}

// Data returns the flat backing slice. Mutations are visible to the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// Index converts multi-dimensional indices into a flat offset.
// Panics on rank mismatch or out-of-range indices, like a slice access.
func (t *Tensor) Index(indices ...int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("tensor: got %d indices for rank %d", len(indices), len(t.shape)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of range for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.strides[i]
	}
	return offset
}

// At returns the element at the given indices.
func (t *Tensor) At(indices ...int) float64 {
	return t.data[t.Index(indices...)]
}

// Set stores v at the given indices.
func (t *Tensor) Set(v float64, indices ...int) {
	t.data[t.Index(indices...)] = v
}

// Fill sets every element to v.
func (t *Tensor) Fill(v float64) {
	for i := range t.data {
		t.data[i] = v
	}
}

// Reshape changes the tensor's dimensions in place. The new shape must
// describe the same number of elements.
func (t *Tensor) Reshape(shape ...int) error {
	s := Shape(shape)
	if s.Size() != len(t.data) {
		return fmt.Errorf("tensor: cannot reshape %d elements to %v", len(t.data), s)
	}
	t.shape = s
	t.strides = computeStrides(s)
	return nil
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	out := &Tensor{
		shape:   t.Shape(),
		strides: make([]int, len(t.strides)),
		data:    make([]float64, len(t.data)),
	}
	copy(out.strides, t.strides)
	copy(out.data, t.data)
	return out
}

// ZeroLike returns a zero-filled tensor with the receiver's shape.
func (t *Tensor) ZeroLike() *Tensor {
	out := t.Clone()
	out.Fill(0)
	return out
}

// OneLike returns a one-filled tensor with the receiver's shape.
func (t *Tensor) OneLike() *Tensor {
	out := t.Clone()
	out.Fill(1)
	return out
}

// String renders the shape and flat data, mainly for logs and test failures.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v%v", t.shape, t.data)
}
