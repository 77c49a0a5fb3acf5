package eval

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stjordanis/deepnetts-communityedition/internal/data"
	"github.com/stjordanis/deepnetts-communityedition/internal/tensor"
)

// lookupPredictor returns a fixed output per input, keyed by the first input component.
type lookupPredictor map[float32][]float32

func (p lookupPredictor) Predict(input *tensor.Tensor) (*tensor.Tensor, error) {
	out, ok := p[input.Get(0)]
	if !ok {
		return nil, errors.New("unexpected input")
	}
	return tensor.FromSlice(out), nil
}

func TestEvaluateClassifier_Binary(t *testing.T) {
	ds := data.NewBasicDataSet(1, 1)
	targets := []float32{1, 1, 0, 0}
	for i, tgt := range targets {
		require.NoError(t, ds.Add(data.NewItem([]float32{float32(i)}, []float32{tgt})))
	}
	// Predictions: TP, FN, FP, TN.
	p := lookupPredictor{0: {0.9}, 1: {0.2}, 2: {0.7}, 3: {0.1}}

	m, err := EvaluateClassifier(p, ds)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, m[Accuracy], 1e-9)
	assert.InDelta(t, 0.5, m[Precision], 1e-9)
	assert.InDelta(t, 0.5, m[Recall], 1e-9)
	assert.InDelta(t, 0.5, m[F1Score], 1e-9)
}

func TestEvaluateClassifier_MultiClass(t *testing.T) {
	ds := data.NewBasicDataSet(1, 3)
	require.NoError(t, ds.Add(data.NewItem([]float32{0}, []float32{1, 0, 0})))
	require.NoError(t, ds.Add(data.NewItem([]float32{1}, []float32{0, 1, 0})))
	require.NoError(t, ds.Add(data.NewItem([]float32{2}, []float32{0, 0, 1})))
	require.NoError(t, ds.Add(data.NewItem([]float32{3}, []float32{0, 0, 1})))

	p := lookupPredictor{
		0: {0.8, 0.1, 0.1},
		1: {0.1, 0.8, 0.1},
		2: {0.1, 0.1, 0.8},
		3: {0.1, 0.7, 0.2}, // wrong: predicts class 1
	}

	m, err := EvaluateClassifier(p, ds)
	require.NoError(t, err)

	assert.InDelta(t, 0.75, m[Accuracy], 1e-9)
	// Precision per class: 1, 1/2, 1 -> mean 5/6.
	assert.InDelta(t, 5.0/6.0, m[Precision], 1e-9)
	// Recall per class: 1, 1, 1/2 -> mean 5/6.
	assert.InDelta(t, 5.0/6.0, m[Recall], 1e-9)
}

func TestEvaluateClassifier_Errors(t *testing.T) {
	_, err := EvaluateClassifier(lookupPredictor{}, data.NewBasicDataSet(1, 2))
	assert.ErrorIs(t, err, ErrEmptyDataSet)

	ds := data.NewBasicDataSet(1, 2)
	require.NoError(t, ds.Add(data.NewItem([]float32{0}, []float32{1, 0})))
	_, err = EvaluateClassifier(lookupPredictor{0: {1}}, ds)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = EvaluateClassifier(lookupPredictor{}, ds)
	assert.Error(t, err)
}

func TestEvaluateRegressor(t *testing.T) {
	ds := data.NewBasicDataSet(1, 1)
	for i, tgt := range []float32{1, 2, 3, 4} {
		require.NoError(t, ds.Add(data.NewItem([]float32{float32(i)}, []float32{tgt})))
	}
	p := lookupPredictor{0: {1.5}, 1: {2}, 2: {2.5}, 3: {4}}

	m, err := EvaluateRegressor(p, ds)
	require.NoError(t, err)

	// Residuals 0.5, 0, -0.5, 0.
	assert.InDelta(t, 0.125, m[MSE], 1e-9)
	assert.InDelta(t, 0.35355339, m[RMSE], 1e-6)
	assert.InDelta(t, 0.25, m[MAE], 1e-9)
	// SSres = 0.5, SStot = 5.
	assert.InDelta(t, 0.9, m[RSquared], 1e-9)
}

func TestRegressorMeasures_Perfect(t *testing.T) {
	m := RegressorMeasures([]float64{2, 2}, []float64{2, 2})
	assert.Zero(t, m[MSE])
	assert.Equal(t, 1.0, m[RSquared])
}

func TestPerformanceMeasure_String(t *testing.T) {
	m := PerformanceMeasure{RMSE: 0.5, MAE: 0.25}
	assert.Equal(t, "mae=0.2500, rmse=0.5000", m.String())

	v, ok := m.Get(RMSE)
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)
	_, ok = m.Get(Accuracy)
	assert.False(t, ok)
}

func TestConfusionMatrix(t *testing.T) {
	cm := NewConfusionMatrix(2)
	cm.Add(1, 1)
	cm.Add(1, 0)
	cm.Add(0, 0)

	assert.Equal(t, 2, cm.Classes())
	assert.Equal(t, 3, cm.Total())
	assert.Equal(t, 1, cm.Get(1, 0))
	assert.Equal(t, 0, cm.Get(0, 1))
}
