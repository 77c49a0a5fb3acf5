// Copyright 2025 Deep Netts Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/stjordanis/deepnetts-communityedition/internal/tensor"
)

// Tensor is a dense row-major float32 matrix.
//
// Example:
//
//	w := tensor.New(2, 3)
//	w.SetAt(1, 2, 0.5)
//	fmt.Println(w.GetAt(1, 2)) // 0.5
type Tensor = tensor.Tensor

// ShapeError describes an operation on tensors of incompatible shapes.
type ShapeError = tensor.ShapeError

// ErrShapeMismatch is wrapped by every shape error.
var ErrShapeMismatch = tensor.ErrShapeMismatch

// New creates a zero-filled rows×cols tensor.
//
// Panics if rows or cols is not positive.
func New(rows, cols int) *Tensor {
	return tensor.New(rows, cols)
}

// NewVector creates a zero-filled 1×width tensor.
func NewVector(width int) *Tensor {
	return tensor.NewVector(width)
}

// FromSlice creates a 1×len(values) tensor holding a copy of values.
func FromSlice(values []float32) *Tensor {
	return tensor.FromSlice(values)
}

// FromMatrix creates a rows×cols tensor from row-major values.
//
// Example:
//
//	m, err := tensor.FromMatrix(2, 2, []float32{1, 2, 3, 4})
func FromMatrix(rows, cols int, values []float32) (*Tensor, error) {
	return tensor.FromMatrix(rows, cols, values)
}

// AbsMax returns the elementwise maximum of |a| and |b|.
func AbsMax(a, b *Tensor) (*Tensor, error) {
	return tensor.AbsMax(a, b)
}
