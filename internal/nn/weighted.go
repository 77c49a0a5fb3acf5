package nn

import (
	"math/rand"

	"github.com/stjordanis/deepnetts-communityedition/internal/optim"
	"github.com/stjordanis/deepnetts-communityedition/internal/tensor"
)

// weighted holds the trainable state shared by dense and output layers.
//
// Shapes (prev = previous layer width, w = width):
//   - weights, gradients, deltaWeights, prevDeltaWeights: [prev, w]
//   - biases, deltaBiases, prevDeltaBiases, outputs, deltas: [w]
//   - inputErrors: [prev]
type weighted struct {
	width      int
	activation ActivationType

	initialized bool
	batchMode   bool
	pending     bool // a Backward ran since the last ApplyWeightChanges

	outputs     *tensor.Tensor
	deltas      *tensor.Tensor
	inputErrors *tensor.Tensor

	weights          *tensor.Tensor
	gradients        *tensor.Tensor
	deltaWeights     *tensor.Tensor
	prevDeltaWeights *tensor.Tensor

	biases          *tensor.Tensor
	deltaBiases     *tensor.Tensor
	prevDeltaBiases *tensor.Tensor

	opt optim.Optimizer
}

func (w *weighted) init(prev Layer, rng *rand.Rand) error {
	if w.initialized {
		return topologyError(-1, "layer already initialized")
	}
	if w.width <= 0 {
		return topologyError(-1, "invalid width %d", w.width)
	}
	if prev == nil {
		return topologyError(-1, "layer has no predecessor")
	}
	prevWidth := prev.Width()
	if prevWidth <= 0 {
		return topologyError(-1, "predecessor has invalid width %d", prevWidth)
	}

	w.outputs = tensor.NewVector(w.width)
	w.deltas = tensor.NewVector(w.width)
	w.inputErrors = tensor.NewVector(prevWidth)

	w.weights = tensor.New(prevWidth, w.width)
	w.gradients = tensor.New(prevWidth, w.width)
	w.deltaWeights = tensor.New(prevWidth, w.width)
	w.prevDeltaWeights = tensor.New(prevWidth, w.width)
	Xavier(w.weights, prevWidth, rng)

	w.biases = tensor.NewVector(w.width)
	w.deltaBiases = tensor.NewVector(w.width)
	w.prevDeltaBiases = tensor.NewVector(w.width)
	RandomizeBiases(w.biases, rng)

	w.opt = optim.NewSGD(optim.DefaultConfig().LearningRate)
	w.initialized = true
	return nil
}

// weightedSums writes bias[j] + Σ_i in[i]·w[i][j] into outputs.
func (w *weighted) weightedSums(inputs *tensor.Tensor) {
	in := inputs.Values()
	if len(in) != w.weights.Rows() {
		panic(&tensor.ShapeError{Op: "Forward", Rows: w.weights.Rows(), Cols: w.width, OtherRows: inputs.Rows(), OtherCols: inputs.Cols()})
	}
	out := w.outputs.Values()
	weights := w.weights.Values()
	copy(out, w.biases.Values())
	for i, x := range in {
		row := weights[i*w.width : (i+1)*w.width]
		for j, wij := range row {
			out[j] += x * wij
		}
	}
}

// activate applies the elementwise activation to outputs in place.
func (w *weighted) activate() {
	out := w.outputs.Values()
	for j, v := range out {
		out[j] = w.activation.Value(v)
	}
}

// accumulate computes gradients from deltas and inputs and adds the
// optimizer deltas onto the accumulators.
func (w *weighted) accumulate(inputs *tensor.Tensor) {
	if !w.batchMode {
		w.deltaWeights.Fill(0)
		w.deltaBiases.Fill(0)
	}

	in := inputs.Values()
	deltas := w.deltas.Values()
	for j, d := range deltas {
		for i, x := range in {
			grad := d * x
			w.gradients.SetAt(i, j, grad)
			w.deltaWeights.AddAt(i, j, w.opt.WeightDelta(grad, i, j))
		}
		w.deltaBiases.AddTo(j, w.opt.BiasDelta(d, j))
	}
	w.pending = true
}

// propagate writes Σ_j delta[j]·w[i][j] into inputErrors.
func (w *weighted) propagate() {
	errs := w.inputErrors.Values()
	deltas := w.deltas.Values()
	weights := w.weights.Values()
	for i := range errs {
		row := weights[i*w.width : (i+1)*w.width]
		var sum float32
		for j, d := range deltas {
			sum += d * row[j]
		}
		errs[i] = sum
	}
}

// ApplyWeightChanges adds the accumulated deltas onto weights and biases.
//
// The applied deltas become the previous-delta history used by momentum,
// and the accumulators are reset. Without an intervening Backward the call
// is a no-op.
func (w *weighted) ApplyWeightChanges() {
	if !w.pending {
		return
	}
	// Shapes are fixed at init, so these cannot fail.
	_ = w.weights.Add(w.deltaWeights)
	_ = w.biases.Add(w.deltaBiases)
	_ = w.prevDeltaWeights.CopyFrom(w.deltaWeights.Values())
	_ = w.prevDeltaBiases.CopyFrom(w.deltaBiases.Values())
	w.deltaWeights.Fill(0)
	w.deltaBiases.Fill(0)
	w.pending = false
}

// Width returns the number of neurons.
func (w *weighted) Width() int { return w.width }

// Outputs returns the layer activations.
func (w *weighted) Outputs() *tensor.Tensor { return w.outputs }

// InputErrors returns the error signal for the previous layer.
func (w *weighted) InputErrors() *tensor.Tensor { return w.inputErrors }

// Activation returns the activation type.
func (w *weighted) Activation() ActivationType { return w.activation }

// Weights returns the [prev, width] weight matrix.
func (w *weighted) Weights() *tensor.Tensor { return w.weights }

// Biases returns the bias vector.
func (w *weighted) Biases() *tensor.Tensor { return w.biases }

// Gradients returns the weight gradients of the last Backward call.
func (w *weighted) Gradients() *tensor.Tensor { return w.gradients }

// Deltas returns the per-neuron error terms of the last Backward call.
func (w *weighted) Deltas() *tensor.Tensor { return w.deltas }

// DeltaWeights returns the pending weight deltas.
func (w *weighted) DeltaWeights() *tensor.Tensor { return w.deltaWeights }

// DeltaBiases returns the pending bias deltas.
func (w *weighted) DeltaBiases() *tensor.Tensor { return w.deltaBiases }

// PrevDeltaWeights returns the weight deltas of the last applied update.
func (w *weighted) PrevDeltaWeights() *tensor.Tensor { return w.prevDeltaWeights }

// PrevDeltaBiases returns the bias deltas of the last applied update.
func (w *weighted) PrevDeltaBiases() *tensor.Tensor { return w.prevDeltaBiases }

// SetBatchMode switches between per-example and accumulated updates.
func (w *weighted) SetBatchMode(batch bool) { w.batchMode = batch }

// BatchMode reports whether deltas accumulate across Backward calls.
func (w *weighted) BatchMode() bool { return w.batchMode }

// Optimizer returns the layer optimizer.
func (w *weighted) Optimizer() optim.Optimizer { return w.opt }

// SetOptimizer replaces the layer optimizer. The layer must be initialized.
func (w *weighted) SetOptimizer(t optim.Type, cfg optim.Config) error {
	if !w.initialized {
		return topologyError(-1, "optimizer set before init")
	}
	opt, err := optim.New(t, cfg, w)
	if err != nil {
		return err
	}
	w.opt = opt
	return nil
}
