package nn

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/stjordanis/deepnetts-communityedition/internal/data"
	"github.com/stjordanis/deepnetts-communityedition/internal/eval"
	"github.com/stjordanis/deepnetts-communityedition/internal/optim"
	"github.com/stjordanis/deepnetts-communityedition/internal/parallel"
	"github.com/stjordanis/deepnetts-communityedition/internal/tensor"
)

// Trainer drives the training loop of a network.
//
// The loop, learning-rate schedule and stopping criteria belong to the
// trainer; the network only exposes the forward, backward and apply steps.
type Trainer interface {
	Train(ctx context.Context, ds data.DataSet) error
}

// Network is a feed-forward neural network: an ordered stack of layers.
//
// The first layer is always an *InputLayer and the last an *OutputLayer.
// Forward sweeps layers 1..N-1, Backward sweeps N-1..1. Weight changes
// accumulated by Backward are added onto the weights by ApplyWeightChanges,
// optionally in parallel over a worker pool.
//
// Example:
//
//	net, err := nn.NewBuilder().
//	    AddInputLayer(2).
//	    AddDenseLayer(3, nn.LeakyReLU).
//	    AddSoftmaxOutputLayer(2).
//	    LossFunction(nn.CrossEntropy).
//	    Build()
//
//	_ = net.SetInput(tensor.FromSlice([]float32{1, 0}))
//	probs := net.Output()
type Network struct {
	layers []Layer
	input  *InputLayer
	output *OutputLayer

	loss         LossFunction
	outputErrors *tensor.Tensor

	outputLabels []string
	label        string

	trainer Trainer
	pool    *parallel.Pool
}

// NewNetwork validates the layer chain and initializes every layer in order.
//
// layers must hold at least two layers, the first an *InputLayer and the
// last an *OutputLayer, with only dense layers in between. The loss function
// must be set with SetLossFunction before training.
func NewNetwork(rng *rand.Rand, layers ...Layer) (*Network, error) {
	if len(layers) < 2 {
		return nil, topologyError(-1, "network needs at least 2 layers, got %d", len(layers))
	}
	input, ok := layers[0].(*InputLayer)
	if !ok {
		return nil, topologyError(0, "first layer must be input, got %v", layers[0].Kind())
	}
	last := len(layers) - 1
	output, ok := layers[last].(*OutputLayer)
	if !ok {
		return nil, topologyError(last, "last layer must be output, got %v", layers[last].Kind())
	}
	for i := 1; i < last; i++ {
		if layers[i].Kind() != KindDense {
			return nil, topologyError(i, "hidden layer must be dense, got %v", layers[i].Kind())
		}
	}

	var prev Layer
	for i, l := range layers {
		if err := l.Init(prev, rng); err != nil {
			var te *TopologyError
			if errors.As(err, &te) && te.Index < 0 {
				te.Index = i
			}
			return nil, err
		}
		prev = l
	}

	return &Network{
		layers:       append([]Layer(nil), layers...),
		input:        input,
		output:       output,
		outputErrors: tensor.NewVector(output.Width()),
	}, nil
}

// SetInput validates and stores input on the input layer, then runs a full forward pass.
func (n *Network) SetInput(input *tensor.Tensor) error {
	if err := n.input.SetInput(input); err != nil {
		return err
	}
	n.Forward()
	return nil
}

// Forward sweeps layers 1..N-1, each reading the previous layer outputs.
func (n *Network) Forward() {
	for i := 1; i < len(n.layers); i++ {
		n.layers[i].Forward(n.layers[i-1].Outputs())
	}
}

// Backward sweeps layers N-1..1. The output layer consumes the output errors,
// every other layer the input errors of its successor. The input layer has
// no trainable state and is skipped.
func (n *Network) Backward() {
	upstream := n.outputErrors
	for i := len(n.layers) - 1; i > 0; i-- {
		l := n.layers[i]
		l.Backward(n.layers[i-1].Outputs(), upstream, i > 1)
		upstream = l.InputErrors()
	}
}

// Output returns the output layer activations. The tensor is owned by the network.
func (n *Network) Output() *tensor.Tensor {
	return n.output.Outputs()
}

// Predict runs input through the network and returns a copy of the output.
func (n *Network) Predict(input *tensor.Tensor) (*tensor.Tensor, error) {
	if err := n.SetInput(input); err != nil {
		return nil, err
	}
	return n.Output().Copy(), nil
}

// Loss compares the current output against target with the configured loss
// function, stores the output errors for Backward and returns the loss.
func (n *Network) Loss(target *tensor.Tensor) (float32, error) {
	if n.loss == nil {
		return 0, errors.New("loss function not set")
	}
	return n.loss.Loss(n.Output(), target, n.outputErrors)
}

// SetOutputErrors stores errs as the error signal for the next Backward.
func (n *Network) SetOutputErrors(errs *tensor.Tensor) error {
	if errs.Len() != n.outputErrors.Len() {
		return &tensor.ShapeError{Op: "SetOutputErrors", Rows: 1, Cols: n.outputErrors.Len(), OtherRows: errs.Rows(), OtherCols: errs.Cols()}
	}
	return n.outputErrors.CopyFrom(errs.Values())
}

// OutputErrors returns the error signal consumed by the next Backward.
func (n *Network) OutputErrors() *tensor.Tensor {
	return n.outputErrors
}

// ApplyWeightChanges adds the accumulated deltas of every layer onto its
// weights. With a worker pool, layers are applied concurrently and the call
// returns only after all of them have finished.
func (n *Network) ApplyWeightChanges() error {
	if n.pool == nil {
		for _, l := range n.layers[1:] {
			l.ApplyWeightChanges()
		}
		return nil
	}

	tasks := make([]parallel.Task, 0, len(n.layers)-1)
	for _, l := range n.layers[1:] {
		tasks = append(tasks, func() error {
			l.ApplyWeightChanges()
			return nil
		})
	}
	// Apply is all-or-nothing; it is not cancellable.
	return n.pool.Run(context.Background(), tasks)
}

// LossFunction returns the configured loss function.
func (n *Network) LossFunction() LossFunction {
	return n.loss
}

// SetLossFunction sets the loss function and pins the output layer gradient
// mode to match it.
//
// Returns ErrLossOutputMismatch when the loss does not fit the output
// activation (e.g., softmax with mean squared error).
func (n *Network) SetLossFunction(fn LossFunction) error {
	if fn == nil {
		return errors.New("loss function is nil")
	}
	if err := n.output.SetLossType(fn.Type()); err != nil {
		return err
	}
	n.loss = fn
	return nil
}

// SetBatchMode switches every trainable layer between per-example and accumulated updates.
func (n *Network) SetBatchMode(batch bool) {
	for _, l := range n.layers {
		if t, ok := l.(Trainable); ok {
			t.SetBatchMode(batch)
		}
	}
}

// SetOptimizer installs a fresh optimizer of type t on every trainable layer.
func (n *Network) SetOptimizer(t optim.Type, cfg optim.Config) error {
	for i, l := range n.layers {
		tl, ok := l.(Trainable)
		if !ok {
			continue
		}
		if err := tl.SetOptimizer(t, cfg); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return nil
}

// SetPool sets the worker pool used by ApplyWeightChanges. Nil applies sequentially.
//
// The network does not own the pool; the caller closes it.
func (n *Network) SetPool(p *parallel.Pool) {
	n.pool = p
}

// Pool returns the worker pool, or nil.
func (n *Network) Pool() *parallel.Pool {
	return n.pool
}

// SetTrainer attaches the trainer used by Train.
func (n *Network) SetTrainer(t Trainer) {
	n.trainer = t
}

// Trainer returns the attached trainer, or nil.
func (n *Network) Trainer() Trainer {
	return n.trainer
}

// Train forwards to the attached trainer.
func (n *Network) Train(ctx context.Context, ds data.DataSet) error {
	if n.trainer == nil {
		return ErrNoTrainer
	}
	return n.trainer.Train(ctx, ds)
}

// Test evaluates the network on ds.
//
// Networks trained with a cross-entropy loss are evaluated as classifiers,
// all others as regressors.
func (n *Network) Test(ds data.DataSet) (eval.PerformanceMeasure, error) {
	if n.loss == nil {
		return nil, errors.New("loss function not set")
	}
	if n.loss.Type().IsCrossEntropy() {
		return eval.EvaluateClassifier(n, ds)
	}
	return eval.EvaluateRegressor(n, ds)
}

// Layers returns the layers in order. The slice is a copy; the layers are shared.
func (n *Network) Layers() []Layer {
	return append([]Layer(nil), n.layers...)
}

// Len returns the number of layers.
func (n *Network) Len() int {
	return len(n.layers)
}

// Layer returns the layer at index.
//
// Panics if index is out of bounds.
func (n *Network) Layer(index int) Layer {
	if index < 0 || index >= len(n.layers) {
		panic("Network.Layer: index out of bounds")
	}
	return n.layers[index]
}

// InputLayer returns the first layer.
func (n *Network) InputLayer() *InputLayer {
	return n.input
}

// OutputLayer returns the last layer.
func (n *Network) OutputLayer() *OutputLayer {
	return n.output
}

// OutputLabels returns the class labels of the outputs, if any.
func (n *Network) OutputLabels() []string {
	return n.outputLabels
}

// SetOutputLabels sets one label per output neuron.
func (n *Network) SetOutputLabels(labels []string) error {
	if labels != nil && len(labels) != n.output.Width() {
		return fmt.Errorf("got %d output labels for %d outputs", len(labels), n.output.Width())
	}
	n.outputLabels = labels
	return nil
}

// OutputLabel returns the label of output i.
func (n *Network) OutputLabel(i int) string {
	return n.outputLabels[i]
}

// Label returns the network label.
func (n *Network) Label() string {
	return n.label
}

// SetLabel sets a descriptive network label.
func (n *Network) SetLabel(label string) {
	n.label = label
}
