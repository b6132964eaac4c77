// Package vectree: the Tensor leaf type.
// A Tensor is an immutable row-major float64 array of arbitrary rank. It is
// the only value-carrying node of a Tree; lists and objects merely arrange
// tensors into a nesting.

package vectree

import (
	"fmt"
	"strconv"
	"strings"
)

// Tensor is an immutable leaf array: row-major data plus a Shape.
//
// Construction copies the incoming slices and no mutating method exists, so
// a *Tensor may be shared freely across trees and goroutines.
type Tensor struct {
	shape Shape
	data  []float64 // row-major, len == shape.Size()
}

// NewTensor builds a tensor of the given shape from row-major data.
//
// Inputs:
//   - shape: per-dimension sizes; empty (or nil) means scalar.
//   - data:  exactly shape.Size() values; copied, never aliased.
//
// Errors:
//   - ErrNegativeDim when shape carries a negative dimension.
//   - ErrSizeMismatch when len(data) != shape.Size().
//
// Complexity: O(size) for the defensive copy.
func NewTensor(shape Shape, data []float64) (*Tensor, error) {
	if err := shape.validate(); err != nil {
		return nil, fmt.Errorf("NewTensor: shape %s: %w", shape, err)
	}
	if len(data) != shape.Size() {
		return nil, fmt.Errorf("NewTensor: %d values for shape %s: %w", len(data), shape, ErrSizeMismatch)
	}

	t := &Tensor{shape: shape.Clone(), data: make([]float64, len(data))}
	copy(t.data, data)

	return t, nil
}

// Scalar builds a rank-0 tensor holding a single value.
func Scalar(v float64) *Tensor {
	return &Tensor{shape: nil, data: []float64{v}}
}

// Vector builds a rank-1 tensor of shape (len(vals)).
func Vector(vals ...float64) *Tensor {
	data := make([]float64, len(vals))
	copy(data, vals)

	return &Tensor{shape: Shape{len(vals)}, data: data}
}

// Shape returns an independent copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	if t == nil {
		return nil
	}

	return t.shape.Clone()
}

// Size returns the number of elements the tensor holds.
func (t *Tensor) Size() int {
	if t == nil {
		return 0
	}

	return len(t.data)
}

// Data returns an independent copy of the row-major element data.
func (t *Tensor) Data() []float64 {
	if t == nil {
		return nil
	}
	out := make([]float64, len(t.data))
	copy(out, t.data)

	return out
}

// At returns the element at the given coordinate. A scalar takes zero
// indices, a rank-1 tensor one index, and so on.
//
// Errors:
//   - ErrNilTensor when t is nil.
//   - ErrOutOfRange when the number of indices disagrees with the rank or
//     any index falls outside its dimension.
//
// Complexity: O(rank).
func (t *Tensor) At(idx ...int) (float64, error) {
	if t == nil {
		return 0, fmt.Errorf("At: %w", ErrNilTensor)
	}
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("At: %d indices for shape %s: %w", len(idx), t.shape, ErrOutOfRange)
	}

	// Row-major offset: rightmost index varies fastest.
	offset := 0
	for i, ix := range idx {
		if ix < 0 || ix >= t.shape[i] {
			return 0, fmt.Errorf("At: index %d out of [0,%d): %w", ix, t.shape[i], ErrOutOfRange)
		}
		offset = offset*t.shape[i] + ix
	}

	return t.data[offset], nil
}

// Clone returns an independent copy of the tensor. Cloning nil yields nil.
func (t *Tensor) Clone() *Tensor {
	if t == nil {
		return nil
	}
	out := &Tensor{shape: t.shape.Clone(), data: make([]float64, len(t.data))}
	copy(out.data, t.data)

	return out
}

// Equal reports exact equality of shape and data. Float comparison is
// bitwise-exact on purpose: trees round-trip through flattening without any
// arithmetic, so equality is well-defined. Two nil tensors are equal.
func (t *Tensor) Equal(o *Tensor) bool {
	if t == nil || o == nil {
		return t == o
	}
	if !t.shape.Equal(o.shape) {
		return false
	}
	for i := range t.data {
		if t.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders the tensor as "<shape>[v0 v1 ...]", e.g. "(2)[4 9]".
func (t *Tensor) String() string {
	if t == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(t.shape.String())
	b.WriteByte('[')
	for i, v := range t.data {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(']')

	return b.String()
}
