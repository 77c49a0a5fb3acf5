// Package tensor implements the dense numeric container used by the network engine.
//
// A Tensor is a mutable, row-major matrix of float32 values. A vector is a
// tensor with a single row. Elementwise operations mutate the receiver in place
// and fail with ErrShapeMismatch when the operand dimensions disagree.
package tensor

import (
	"fmt"
	"strings"
)

// Tensor is a dense, rectangular container of float32 values.
//
// The zero value is not usable; create tensors with New, NewVector,
// FromSlice or FromMatrix.
//
// Example:
//
//	w := tensor.New(3, 2)          // 3 rows, 2 columns
//	w.SetAt(1, 0, 0.5)
//	v := tensor.FromSlice([]float32{1, 2})
//	err := v.Add(tensor.FromSlice([]float32{3, 4})) // v = [4, 6]
type Tensor struct {
	rows   int
	cols   int
	values []float32 // len(values) == rows*cols
}

// New creates a zero-filled tensor with the given number of rows and columns.
//
// Panics if either dimension is not positive.
func New(rows, cols int) *Tensor {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("tensor.New: invalid dimensions %dx%d (must be > 0)", rows, cols))
	}
	return &Tensor{
		rows:   rows,
		cols:   cols,
		values: make([]float32, rows*cols),
	}
}

// NewVector creates a zero-filled vector (one row) of the given width.
func NewVector(width int) *Tensor {
	return New(1, width)
}

// FromSlice creates a vector holding a copy of values.
func FromSlice(values []float32) *Tensor {
	t := NewVector(len(values))
	copy(t.values, values)
	return t
}

// FromMatrix creates a rows x cols tensor holding a copy of values in row-major order.
func FromMatrix(rows, cols int, values []float32) (*Tensor, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d (must be > 0)", rows, cols)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("shape %dx%d requires %d elements, but got %d", rows, cols, rows*cols, len(values))
	}
	t := New(rows, cols)
	copy(t.values, values)
	return t, nil
}

// Rows returns the number of rows.
func (t *Tensor) Rows() int {
	return t.rows
}

// Cols returns the number of columns.
func (t *Tensor) Cols() int {
	return t.cols
}

// Len returns the total number of elements.
func (t *Tensor) Len() int {
	return len(t.values)
}

// Values returns the underlying buffer.
//
// The slice shares memory with the tensor; use Copy for an independent tensor.
func (t *Tensor) Values() []float32 {
	return t.values
}

// Get returns the element at flat index col.
//
// For vectors this is the column index.
func (t *Tensor) Get(col int) float32 {
	return t.values[col]
}

// Set stores v at flat index col.
func (t *Tensor) Set(col int, v float32) {
	t.values[col] = v
}

// AddTo adds v to the element at flat index col.
func (t *Tensor) AddTo(col int, v float32) {
	t.values[col] += v
}

// GetAt returns the element at (row, col).
func (t *Tensor) GetAt(row, col int) float32 {
	return t.values[t.index(row, col)]
}

// SetAt stores v at (row, col).
func (t *Tensor) SetAt(row, col int, v float32) {
	t.values[t.index(row, col)] = v
}

// AddAt adds v to the element at (row, col).
func (t *Tensor) AddAt(row, col int, v float32) {
	t.values[t.index(row, col)] += v
}

func (t *Tensor) index(row, col int) int {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		panic(fmt.Sprintf("tensor: index (%d, %d) out of bounds for %dx%d", row, col, t.rows, t.cols))
	}
	return row*t.cols + col
}

// Fill sets every element to v.
func (t *Tensor) Fill(v float32) {
	for i := range t.values {
		t.values[i] = v
	}
}

// Copy returns an independent tensor with the same shape and values.
func (t *Tensor) Copy() *Tensor {
	c := &Tensor{
		rows:   t.rows,
		cols:   t.cols,
		values: make([]float32, len(t.values)),
	}
	copy(c.values, t.values)
	return c
}

// CopyFrom overwrites the tensor's values with src.
//
// src must have exactly Len() elements.
func (t *Tensor) CopyFrom(src []float32) error {
	if len(src) != len(t.values) {
		return &ShapeError{Op: "CopyFrom", Rows: t.rows, Cols: t.cols, OtherRows: 1, OtherCols: len(src)}
	}
	copy(t.values, src)
	return nil
}

// SameShape reports whether t and other have identical dimensions.
func (t *Tensor) SameShape(other *Tensor) bool {
	return t.rows == other.rows && t.cols == other.cols
}

// Equal reports whether t and other have the same shape and values within tolerance.
func (t *Tensor) Equal(other *Tensor, tolerance float32) bool {
	if !t.SameShape(other) {
		return false
	}
	for i, v := range t.values {
		d := v - other.values[i]
		if d < 0 {
			d = -d
		}
		if d > tolerance {
			return false
		}
	}
	return true
}

// String returns a compact representation, one bracketed row per line.
func (t *Tensor) String() string {
	var sb strings.Builder
	for r := 0; r < t.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprint(&sb, t.values[r*t.cols:(r+1)*t.cols])
	}
	return sb.String()
}
