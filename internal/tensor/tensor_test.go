package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New(3, 2)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, 6, m.Len())
	for _, v := range m.Values() {
		assert.Zero(t, v)
	}
}

func TestNew_InvalidDimensions(t *testing.T) {
	assert.Panics(t, func() { New(0, 3) })
	assert.Panics(t, func() { New(2, -1) })
}

func TestFromSlice_Copies(t *testing.T) {
	src := []float32{1, 2, 3}
	v := FromSlice(src)
	src[0] = 100

	assert.Equal(t, 1, v.Rows())
	assert.Equal(t, 3, v.Cols())
	assert.Equal(t, float32(1), v.Get(0))
}

func TestFromMatrix(t *testing.T) {
	m, err := FromMatrix(2, 3, []float32{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, float32(6), m.GetAt(1, 2))
	assert.Equal(t, float32(2), m.GetAt(0, 1))

	_, err = FromMatrix(2, 3, []float32{1, 2})
	assert.Error(t, err)

	_, err = FromMatrix(0, 3, nil)
	assert.Error(t, err)
}

func TestGetSetAt(t *testing.T) {
	m := New(2, 2)
	m.SetAt(1, 0, 4)
	m.AddAt(1, 0, 0.5)
	assert.Equal(t, float32(4.5), m.GetAt(1, 0))
	assert.Equal(t, float32(4.5), m.Get(2))

	m.Set(3, 7)
	m.AddTo(3, 1)
	assert.Equal(t, float32(8), m.GetAt(1, 1))
}

func TestGetAt_OutOfBounds(t *testing.T) {
	m := New(2, 2)
	assert.Panics(t, func() { m.GetAt(2, 0) })
	assert.Panics(t, func() { m.SetAt(0, -1, 1) })
}

func TestFill(t *testing.T) {
	m := New(2, 3)
	m.Fill(0.25)
	for _, v := range m.Values() {
		assert.Equal(t, float32(0.25), v)
	}
}

func TestCopy_Independent(t *testing.T) {
	a := FromSlice([]float32{1, 2, 3})
	b := a.Copy()
	b.Set(0, 42)

	assert.Equal(t, float32(1), a.Get(0))
	assert.Equal(t, float32(42), b.Get(0))
	assert.True(t, a.SameShape(b))
}

func TestCopyFrom(t *testing.T) {
	v := NewVector(3)
	require.NoError(t, v.CopyFrom([]float32{3, 2, 1}))
	assert.Equal(t, []float32{3, 2, 1}, v.Values())

	err := v.CopyFrom([]float32{1, 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestEqual(t *testing.T) {
	a := FromSlice([]float32{1, 2})
	b := FromSlice([]float32{1.0005, 2})
	assert.True(t, a.Equal(b, 1e-3))
	assert.False(t, a.Equal(b, 1e-5))
	assert.False(t, a.Equal(NewVector(3), 1))
}

func TestString(t *testing.T) {
	m, err := FromMatrix(2, 2, []float32{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, "[1 2]\n[3 4]", m.String())
}
