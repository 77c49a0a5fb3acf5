// Package eval computes performance measures of trained networks.
//
// Classifiers are scored from a confusion matrix (accuracy, precision,
// recall, F1), regressors from their residuals (MSE, RMSE, MAE, R²).
package eval

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/stjordanis/deepnetts-communityedition/internal/data"
	"github.com/stjordanis/deepnetts-communityedition/internal/tensor"
)

// Measure names.
const (
	Accuracy  = "accuracy"
	Precision = "precision"
	Recall    = "recall"
	F1Score   = "f1"
	MSE       = "mse"
	RMSE      = "rmse"
	MAE       = "mae"
	RSquared  = "r2"
)

// binaryThreshold separates the positive class for single-output classifiers.
const binaryThreshold = 0.5

// ErrEmptyDataSet is returned when evaluating on a data set without items.
var ErrEmptyDataSet = errors.New("empty data set")

// Predictor maps an input vector to an output vector.
type Predictor interface {
	Predict(input *tensor.Tensor) (*tensor.Tensor, error)
}

// PerformanceMeasure maps measure names to values.
type PerformanceMeasure map[string]float64

// Get returns the named measure and whether it is present.
func (p PerformanceMeasure) Get(name string) (float64, bool) {
	v, ok := p[name]
	return v, ok
}

// String returns the measures sorted by name.
func (p PerformanceMeasure) String() string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	slices.Sort(names)

	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%.4f", name, p[name])
	}
	return sb.String()
}

// ConfusionMatrix counts predictions per (actual, predicted) class pair.
type ConfusionMatrix struct {
	classes int
	counts  []int // [actual*classes + predicted]
}

// NewConfusionMatrix creates an empty matrix for the given number of classes.
func NewConfusionMatrix(classes int) *ConfusionMatrix {
	return &ConfusionMatrix{
		classes: classes,
		counts:  make([]int, classes*classes),
	}
}

// Add records one prediction.
func (m *ConfusionMatrix) Add(actual, predicted int) {
	m.counts[actual*m.classes+predicted]++
}

// Get returns the count for (actual, predicted).
func (m *ConfusionMatrix) Get(actual, predicted int) int {
	return m.counts[actual*m.classes+predicted]
}

// Classes returns the number of classes.
func (m *ConfusionMatrix) Classes() int {
	return m.classes
}

// Total returns the number of recorded predictions.
func (m *ConfusionMatrix) Total() int {
	total := 0
	for _, c := range m.counts {
		total += c
	}
	return total
}

// classOf maps an output or target vector to a class index.
//
// Single-output vectors are thresholded at 0.5; wider vectors use argmax.
func classOf(v *tensor.Tensor) int {
	if v.Len() == 1 {
		if v.Get(0) >= binaryThreshold {
			return 1
		}
		return 0
	}
	return v.ArgMax()
}

// EvaluateClassifier runs every item of ds through p and scores the predicted classes.
//
// For binary classifiers precision and recall are those of the positive
// class; for multi-class classifiers they are macro averages over classes.
func EvaluateClassifier(p Predictor, ds data.DataSet) (PerformanceMeasure, error) {
	classes := ds.TargetWidth()
	if classes == 1 {
		classes = 2
	}
	cm := NewConfusionMatrix(classes)

	for item := range ds.Items() {
		out, err := p.Predict(item.Input)
		if err != nil {
			return nil, err
		}
		if out.Len() != item.Target.Len() {
			return nil, &tensor.ShapeError{Op: "EvaluateClassifier", Rows: out.Rows(), Cols: out.Cols(), OtherRows: item.Target.Rows(), OtherCols: item.Target.Cols()}
		}
		cm.Add(classOf(item.Target), classOf(out))
	}
	if cm.Total() == 0 {
		return nil, ErrEmptyDataSet
	}
	return ClassifierMeasures(cm), nil
}

// ClassifierMeasures derives accuracy, precision, recall and F1 from cm.
func ClassifierMeasures(cm *ConfusionMatrix) PerformanceMeasure {
	correct := 0
	for c := 0; c < cm.classes; c++ {
		correct += cm.Get(c, c)
	}

	precisions := make([]float64, 0, cm.classes)
	recalls := make([]float64, 0, cm.classes)
	first := 0
	if cm.classes == 2 {
		// Positive class only.
		first = 1
	}
	for c := first; c < cm.classes; c++ {
		tp := float64(cm.Get(c, c))
		var predicted, actual float64
		for k := 0; k < cm.classes; k++ {
			predicted += float64(cm.Get(k, c))
			actual += float64(cm.Get(c, k))
		}
		precisions = append(precisions, ratio(tp, predicted))
		recalls = append(recalls, ratio(tp, actual))
	}

	precision := stat.Mean(precisions, nil)
	recall := stat.Mean(recalls, nil)
	return PerformanceMeasure{
		Accuracy:  ratio(float64(correct), float64(cm.Total())),
		Precision: precision,
		Recall:    recall,
		F1Score:   ratio(2*precision*recall, precision+recall),
	}
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// EvaluateRegressor runs every item of ds through p and scores the residuals
// over all output components.
func EvaluateRegressor(p Predictor, ds data.DataSet) (PerformanceMeasure, error) {
	var predicted, actual []float64

	for item := range ds.Items() {
		out, err := p.Predict(item.Input)
		if err != nil {
			return nil, err
		}
		if out.Len() != item.Target.Len() {
			return nil, &tensor.ShapeError{Op: "EvaluateRegressor", Rows: out.Rows(), Cols: out.Cols(), OtherRows: item.Target.Rows(), OtherCols: item.Target.Cols()}
		}
		for i, v := range out.Values() {
			predicted = append(predicted, float64(v))
			actual = append(actual, float64(item.Target.Get(i)))
		}
	}
	if len(actual) == 0 {
		return nil, ErrEmptyDataSet
	}
	return RegressorMeasures(predicted, actual), nil
}

// RegressorMeasures computes MSE, RMSE, MAE and R² of predicted against actual.
func RegressorMeasures(predicted, actual []float64) PerformanceMeasure {
	residuals := make([]float64, len(actual))
	floats.SubTo(residuals, predicted, actual)

	n := float64(len(residuals))
	mse := floats.Dot(residuals, residuals) / n
	mae := floats.Norm(residuals, 1) / n

	r2 := 1.0
	if stat.Variance(actual, nil) > 0 {
		r2 = stat.RSquaredFrom(predicted, actual, nil)
	} else if mse > 0 {
		r2 = 0
	}

	return PerformanceMeasure{
		MSE:      mse,
		RMSE:     math.Sqrt(mse),
		MAE:      mae,
		RSquared: r2,
	}
}
