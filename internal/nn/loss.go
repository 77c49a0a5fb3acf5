package nn

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/stjordanis/deepnetts-communityedition/internal/tensor"
)

// logEpsilon clamps probabilities away from zero before taking logarithms.
const logEpsilon = 1e-7

// LossType identifies a loss function.
//
// The output layer pins its gradient mode to the loss type: the
// cross-entropy family passes the output error through unchanged, mean
// squared error multiplies it by the activation derivative.
type LossType int

// Loss types.
const (
	MeanSquaredError LossType = iota
	CrossEntropy
	BinaryCrossEntropy
)

// String returns the loss name.
func (l LossType) String() string {
	switch l {
	case MeanSquaredError:
		return "mean_squared_error"
	case CrossEntropy:
		return "cross_entropy"
	case BinaryCrossEntropy:
		return "binary_cross_entropy"
	default:
		return fmt.Sprintf("LossType(%d)", int(l))
	}
}

// IsCrossEntropy reports whether l belongs to the cross-entropy family.
func (l LossType) IsCrossEntropy() bool {
	return l == CrossEntropy || l == BinaryCrossEntropy
}

// LossFunction computes the loss of a single example.
type LossFunction interface {
	// Type returns the loss type.
	Type() LossType

	// Loss returns the loss of predicted against target and writes the
	// error signal for the output layer into outputErrors.
	//
	// All three tensors must have the same shape.
	Loss(predicted, target, outputErrors *tensor.Tensor) (float32, error)
}

// NewLossFunction returns the loss function for t.
func NewLossFunction(t LossType) (LossFunction, error) {
	switch t {
	case MeanSquaredError:
		return MSELoss{}, nil
	case CrossEntropy:
		return CrossEntropyLoss{}, nil
	case BinaryCrossEntropy:
		return BinaryCrossEntropyLoss{}, nil
	default:
		return nil, fmt.Errorf("unknown loss function %v", t)
	}
}

// MSELoss computes the squared error loss.
//
// Loss = ½ · Σ(predicted - target)²
// Error = predicted - target
type MSELoss struct{}

// Type returns MeanSquaredError.
func (MSELoss) Type() LossType { return MeanSquaredError }

// Loss computes the squared error and writes predicted - target into outputErrors.
func (MSELoss) Loss(predicted, target, outputErrors *tensor.Tensor) (float32, error) {
	if err := writeErrors(predicted, target, outputErrors); err != nil {
		return 0, err
	}
	var sum float32
	for _, e := range outputErrors.Values() {
		sum += e * e
	}
	return 0.5 * sum, nil
}

// CrossEntropyLoss computes categorical cross-entropy over softmax outputs.
//
// Loss = -Σ target · ln(predicted)
// Error = predicted - target (softmax collapse)
type CrossEntropyLoss struct{}

// Type returns CrossEntropy.
func (CrossEntropyLoss) Type() LossType { return CrossEntropy }

// Loss computes the cross-entropy and writes predicted - target into outputErrors.
func (CrossEntropyLoss) Loss(predicted, target, outputErrors *tensor.Tensor) (float32, error) {
	if err := writeErrors(predicted, target, outputErrors); err != nil {
		return 0, err
	}
	var loss float32
	p := predicted.Values()
	for i, t := range target.Values() {
		if t != 0 {
			loss -= t * math32.Log(math32.Max(p[i], logEpsilon))
		}
	}
	return loss, nil
}

// BinaryCrossEntropyLoss computes binary cross-entropy over sigmoid outputs.
//
// Loss = -Σ [target · ln(p) + (1 - target) · ln(1 - p)]
// Error = predicted - target (sigmoid collapse)
type BinaryCrossEntropyLoss struct{}

// Type returns BinaryCrossEntropy.
func (BinaryCrossEntropyLoss) Type() LossType { return BinaryCrossEntropy }

// Loss computes the binary cross-entropy and writes predicted - target into outputErrors.
func (BinaryCrossEntropyLoss) Loss(predicted, target, outputErrors *tensor.Tensor) (float32, error) {
	if err := writeErrors(predicted, target, outputErrors); err != nil {
		return 0, err
	}
	var loss float32
	p := predicted.Values()
	for i, t := range target.Values() {
		pi := math32.Min(math32.Max(p[i], logEpsilon), 1-logEpsilon)
		loss -= t*math32.Log(pi) + (1-t)*math32.Log(1-pi)
	}
	return loss, nil
}

func writeErrors(predicted, target, outputErrors *tensor.Tensor) error {
	if !predicted.SameShape(target) {
		return &tensor.ShapeError{Op: "Loss", Rows: predicted.Rows(), Cols: predicted.Cols(), OtherRows: target.Rows(), OtherCols: target.Cols()}
	}
	if err := outputErrors.CopyFrom(predicted.Values()); err != nil {
		return err
	}
	return outputErrors.Sub(target)
}
