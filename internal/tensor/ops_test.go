package tensor

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementwiseOps(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b *Tensor) error
		want []float32
	}{
		{"Add", (*Tensor).Add, []float32{5, 7, 9}},
		{"Sub", (*Tensor).Sub, []float32{-3, -3, -3}},
		{"MulElementWise", (*Tensor).MulElementWise, []float32{4, 10, 18}},
		{"Div", (*Tensor).Div, []float32{0.25, 0.4, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := FromSlice([]float32{1, 2, 3})
			b := FromSlice([]float32{4, 5, 6})
			require.NoError(t, tt.op(a, b))
			assert.InDeltaSlice(t, tt.want, a.Values(), 1e-6)
			// Operand is untouched.
			assert.Equal(t, []float32{4, 5, 6}, b.Values())
		})
	}
}

func TestElementwiseOps_ShapeMismatch(t *testing.T) {
	ops := map[string]func(a, b *Tensor) error{
		"Add":            (*Tensor).Add,
		"Sub":            (*Tensor).Sub,
		"MulElementWise": (*Tensor).MulElementWise,
		"Div":            (*Tensor).Div,
	}
	shapes := [][2][2]int{
		{{1, 3}, {1, 4}},
		{{2, 3}, {3, 2}},
		{{1, 6}, {2, 3}},
		{{4, 4}, {1, 2}},
	}

	for name, op := range ops {
		for _, s := range shapes {
			a := New(s[0][0], s[0][1])
			b := New(s[1][0], s[1][1])
			before := a.Copy()

			err := op(a, b)
			require.Error(t, err, "%s %v", name, s)
			assert.ErrorIs(t, err, ErrShapeMismatch)

			var se *ShapeError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, name, se.Op)
			assert.Equal(t, s[1][1], se.OtherCols)
			assert.True(t, a.Equal(before, 0), "receiver must be unchanged on error")
		}
	}
}

func TestElementwiseOps_ScalarBroadcast(t *testing.T) {
	a := FromSlice([]float32{2, 4, 6})
	require.NoError(t, a.Div(FromSlice([]float32{2})))
	assert.Equal(t, []float32{1, 2, 3}, a.Values())

	require.NoError(t, a.Add(FromSlice([]float32{1})))
	assert.Equal(t, []float32{2, 3, 4}, a.Values())
}

func TestDiv_ByZero(t *testing.T) {
	a := FromSlice([]float32{1, 0, -1})
	require.NoError(t, a.Div(FromSlice([]float32{0, 0, 0})))

	assert.True(t, math.IsInf(float64(a.Get(0)), 1))
	assert.True(t, math.IsNaN(float64(a.Get(1))))
	assert.True(t, math.IsInf(float64(a.Get(2)), -1))
}

func TestScalarOps(t *testing.T) {
	a := FromSlice([]float32{2, 4})
	a.DivScalar(2)
	assert.Equal(t, []float32{1, 2}, a.Values())
	a.Scale(-3)
	assert.Equal(t, []float32{-3, -6}, a.Values())
}

func TestReductions(t *testing.T) {
	a := FromSlice([]float32{1, 5, -2, 5})
	assert.Equal(t, float32(9), a.Sum())
	assert.Equal(t, float32(5), a.Max())
	assert.Equal(t, 1, a.ArgMax())
}

func TestAbsMax(t *testing.T) {
	a := FromSlice([]float32{-3, 1, 0})
	b := FromSlice([]float32{2, -4, 0})

	m, err := AbsMax(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 4, 0}, m.Values())

	_, err = AbsMax(a, NewVector(2))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func BenchmarkAdd(b *testing.B) {
	x := New(128, 128)
	y := New(128, 128)
	y.Fill(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Add(y)
	}
}
