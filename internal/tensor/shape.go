package tensor

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is matched by every error caused by disagreeing tensor dimensions.
var ErrShapeMismatch = errors.New("shape mismatch")

// ShapeError describes a dimension disagreement between two operands.
type ShapeError struct {
	Op        string // Operation that failed (e.g., "Add", "CopyFrom")
	Rows      int    // Receiver rows
	Cols      int    // Receiver columns
	OtherRows int    // Operand rows
	OtherCols int    // Operand columns
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: %dx%d vs %dx%d", e.Op, ErrShapeMismatch, e.Rows, e.Cols, e.OtherRows, e.OtherCols)
}

// Is reports whether target is ErrShapeMismatch.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// checkShape validates that other can be combined with t elementwise.
//
// Returns broadcast=true when other is a 1x1 scalar and t is not.
func (t *Tensor) checkShape(op string, other *Tensor) (broadcast bool, err error) {
	if t.SameShape(other) {
		return false, nil
	}
	if other.rows == 1 && other.cols == 1 {
		return true, nil
	}
	return false, &ShapeError{Op: op, Rows: t.rows, Cols: t.cols, OtherRows: other.rows, OtherCols: other.cols}
}
