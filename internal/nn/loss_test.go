package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stjordanis/deepnetts-communityedition/internal/tensor"
)

func TestMSELoss(t *testing.T) {
	pred := tensor.FromSlice([]float32{0.5, 2})
	target := tensor.FromSlice([]float32{1, 1})
	errs := tensor.NewVector(2)

	loss, err := MSELoss{}.Loss(pred, target, errs)
	require.NoError(t, err)

	// ½ · (0.25 + 1)
	assert.InDelta(t, 0.625, loss, 1e-6)
	assert.Equal(t, []float32{-0.5, 1}, errs.Values())
	assert.Equal(t, MeanSquaredError, MSELoss{}.Type())
}

func TestCrossEntropyLoss(t *testing.T) {
	pred := tensor.FromSlice([]float32{0.7, 0.2, 0.1})
	target := tensor.FromSlice([]float32{1, 0, 0})
	errs := tensor.NewVector(3)

	loss, err := CrossEntropyLoss{}.Loss(pred, target, errs)
	require.NoError(t, err)

	assert.InDelta(t, -math.Log(0.7), loss, 1e-5)
	assert.InDeltaSlice(t, []float32{-0.3, 0.2, 0.1}, errs.Values(), 1e-6)
}

// TestCrossEntropyLoss_ZeroProbability tests the log clamp.
func TestCrossEntropyLoss_ZeroProbability(t *testing.T) {
	pred := tensor.FromSlice([]float32{0, 1})
	target := tensor.FromSlice([]float32{1, 0})

	loss, err := CrossEntropyLoss{}.Loss(pred, target, tensor.NewVector(2))
	require.NoError(t, err)
	assert.False(t, math.IsInf(float64(loss), 0))
	assert.Greater(t, loss, float32(10))
}

func TestBinaryCrossEntropyLoss(t *testing.T) {
	pred := tensor.FromSlice([]float32{0.8})
	target := tensor.FromSlice([]float32{0})
	errs := tensor.NewVector(1)

	loss, err := BinaryCrossEntropyLoss{}.Loss(pred, target, errs)
	require.NoError(t, err)

	assert.InDelta(t, -math.Log(0.2), loss, 1e-4)
	assert.InDelta(t, 0.8, errs.Get(0), 1e-6)

	// Saturated predictions stay finite.
	loss, err = BinaryCrossEntropyLoss{}.Loss(tensor.FromSlice([]float32{1}), tensor.FromSlice([]float32{0}), errs)
	require.NoError(t, err)
	assert.False(t, math.IsInf(float64(loss), 0))
}

func TestLoss_ShapeMismatch(t *testing.T) {
	losses := []LossFunction{MSELoss{}, CrossEntropyLoss{}, BinaryCrossEntropyLoss{}}
	for _, l := range losses {
		_, err := l.Loss(tensor.NewVector(2), tensor.NewVector(3), tensor.NewVector(2))
		assert.ErrorIs(t, err, tensor.ErrShapeMismatch, l.Type().String())

		_, err = l.Loss(tensor.NewVector(2), tensor.NewVector(2), tensor.NewVector(3))
		assert.ErrorIs(t, err, tensor.ErrShapeMismatch, l.Type().String())
	}
}

func TestNewLossFunction(t *testing.T) {
	for _, lt := range []LossType{MeanSquaredError, CrossEntropy, BinaryCrossEntropy} {
		fn, err := NewLossFunction(lt)
		require.NoError(t, err)
		assert.Equal(t, lt, fn.Type())
	}
	_, err := NewLossFunction(LossType(9))
	assert.Error(t, err)

	assert.True(t, CrossEntropy.IsCrossEntropy())
	assert.True(t, BinaryCrossEntropy.IsCrossEntropy())
	assert.False(t, MeanSquaredError.IsCrossEntropy())
}
