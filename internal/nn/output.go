package nn

import (
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/stjordanis/deepnetts-communityedition/internal/tensor"
)

// OutputLayer is the last layer of a network.
//
// With an elementwise activation it computes its outputs like a dense layer.
// With Softmax it computes max-shifted softmax over the raw weighted sums:
//
//	out[j] = exp(z[j] - max(z)) / Σ_k exp(z[k] - max(z))
//
// The backward pass receives the output errors computed by the loss function.
// The layer delta depends on the pinned loss type:
//   - cross-entropy family: delta[j] = err[j] (softmax/sigmoid collapse, the
//     activation derivative is already folded into predicted - target)
//   - mean squared error: delta[j] = err[j] · f'(out[j])
//
// Softmax combined with mean squared error is rejected by SetLossType.
type OutputLayer struct {
	weighted
	lossType LossType
}

// NewOutputLayer creates an output layer with the given width and activation.
func NewOutputLayer(width int, activation ActivationType) *OutputLayer {
	l := &OutputLayer{weighted: weighted{width: width, activation: activation}}
	if activation == Softmax {
		l.lossType = CrossEntropy
	}
	return l
}

// NewSoftmaxOutputLayer creates a softmax output layer paired with cross-entropy.
func NewSoftmaxOutputLayer(width int) *OutputLayer {
	return NewOutputLayer(width, Softmax)
}

// Kind returns KindSoftmaxOutput for softmax layers and KindOutput otherwise.
func (l *OutputLayer) Kind() Kind {
	if l.activation == Softmax {
		return KindSoftmaxOutput
	}
	return KindOutput
}

// Init sizes the layer from the previous layer width.
func (l *OutputLayer) Init(prev Layer, rng *rand.Rand) error {
	if l.activation != Softmax && !l.activation.Elementwise() {
		return topologyError(-1, "unknown output activation %v", l.activation)
	}
	return l.init(prev, rng)
}

// LossType returns the loss type the gradient is pinned to.
func (l *OutputLayer) LossType() LossType {
	return l.lossType
}

// SetLossType pins the gradient mode to t.
//
// Returns ErrLossOutputMismatch when the pairing would yield a wrong gradient:
//   - Softmax requires the cross-entropy family
//   - CrossEntropy requires Softmax
//   - BinaryCrossEntropy requires Sigmoid or Softmax
func (l *OutputLayer) SetLossType(t LossType) error {
	if err := checkLossPairing(l.activation, t); err != nil {
		return err
	}
	l.lossType = t
	return nil
}

func checkLossPairing(act ActivationType, t LossType) error {
	ok := true
	switch t {
	case MeanSquaredError:
		ok = act != Softmax
	case CrossEntropy:
		ok = act == Softmax
	case BinaryCrossEntropy:
		ok = act == Sigmoid || act == Softmax
	default:
		return fmt.Errorf("unknown loss type %v", t)
	}
	if !ok {
		return fmt.Errorf("%w: %v output with %v loss", ErrLossOutputMismatch, act, t)
	}
	return nil
}

// Forward computes the network outputs from the previous layer outputs.
func (l *OutputLayer) Forward(inputs *tensor.Tensor) {
	if l.activation == Softmax {
		l.softmax(inputs)
		return
	}
	l.weightedSums(inputs)
	l.activate()
}

// softmax computes raw weighted sums while tracking their maximum, then
// exponentiates the max-shifted sums and scales them to sum to 1.
func (l *OutputLayer) softmax(inputs *tensor.Tensor) {
	in := inputs.Values()
	if len(in) != l.weights.Rows() {
		panic(&tensor.ShapeError{Op: "Forward", Rows: l.weights.Rows(), Cols: l.width, OtherRows: inputs.Rows(), OtherCols: inputs.Cols()})
	}

	out := l.outputs.Values()
	maxSum := math32.Inf(-1)
	for j := range out {
		sum := l.biases.Get(j)
		for i, x := range in {
			sum += x * l.weights.GetAt(i, j)
		}
		out[j] = sum
		if sum > maxSum {
			maxSum = sum
		}
	}

	var total float32
	for j, sum := range out {
		out[j] = math32.Exp(sum - maxSum)
		total += out[j]
	}
	l.outputs.Scale(1 / total)
}

// Backward computes the layer deltas from the output errors and accumulates
// weight and bias deltas. When propagate is set, the error signal for the
// previous layer is written to InputErrors.
func (l *OutputLayer) Backward(inputs, outputErrors *tensor.Tensor, propagate bool) {
	errs := outputErrors.Values()
	deltas := l.deltas.Values()
	if l.lossType.IsCrossEntropy() {
		copy(deltas, errs)
	} else {
		out := l.outputs.Values()
		for j := range deltas {
			deltas[j] = errs[j] * l.activation.Prime(out[j])
		}
	}
	l.accumulate(inputs)
	if propagate {
		l.propagate()
	}
}
