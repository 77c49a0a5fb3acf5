// Package nn implements the feed-forward network engine.
//
// This package provides:
//   - Layer interface: closed set of layer kinds (input, dense, output, softmax output)
//   - Activation types: Linear, Sigmoid, Tanh, ReLU, LeakyReLU, Softmax
//   - Loss functions: MSE, CrossEntropy, BinaryCrossEntropy
//   - Network: ordered layer stack with forward/backward sweeps and weight application
//   - Builder: validated network construction
//
// A network is a flat, indexable sequence of layers. Layer i reads the outputs
// of layer i-1 during the forward pass and receives the input errors of layer
// i+1 during the backward pass; layers never hold references to each other.
//
// Gradients are derived by hand per layer. Every trainable layer accumulates
// optimizer-scaled deltas during Backward and adds them onto its weights in
// ApplyWeightChanges.
package nn

import (
	"fmt"
	"math/rand"

	"github.com/stjordanis/deepnetts-communityedition/internal/optim"
	"github.com/stjordanis/deepnetts-communityedition/internal/tensor"
)

// Kind identifies a layer variant.
type Kind int

// Layer kinds.
const (
	KindInput Kind = iota
	KindDense
	KindOutput
	KindSoftmaxOutput
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindDense:
		return "dense"
	case KindOutput:
		return "output"
	case KindSoftmaxOutput:
		return "softmax_output"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Layer is one stage of the linear network topology.
//
// Lifecycle: Init is called exactly once, in chain order, after all layers are
// added to the network. Forward and Backward are then called any number of
// times; ApplyWeightChanges adds the accumulated deltas onto the weights.
type Layer interface {
	// Kind returns the layer variant.
	Kind() Kind

	// Width returns the number of neurons (outputs) of the layer.
	Width() int

	// Outputs returns the layer activations. The tensor is owned by the layer.
	Outputs() *tensor.Tensor

	// Init sizes all tensors from the previous layer width and initializes
	// weights. prev is nil for the input layer.
	Init(prev Layer, rng *rand.Rand) error

	// Forward computes the activations from the previous layer outputs.
	Forward(inputs *tensor.Tensor)

	// Backward consumes the upstream error signal, accumulates weight and bias
	// deltas and, when propagate is set, computes InputErrors.
	Backward(inputs, upstream *tensor.Tensor, propagate bool)

	// InputErrors returns the error signal for the previous layer computed by
	// the last Backward call. Nil for layers without trainable state.
	InputErrors() *tensor.Tensor

	// ApplyWeightChanges adds the accumulated deltas onto weights and biases
	// and resets the accumulators.
	ApplyWeightChanges()
}

// Trainable is implemented by layers that own weights and biases.
type Trainable interface {
	Layer

	Activation() ActivationType
	Weights() *tensor.Tensor
	Biases() *tensor.Tensor
	Gradients() *tensor.Tensor
	DeltaWeights() *tensor.Tensor
	DeltaBiases() *tensor.Tensor
	PrevDeltaWeights() *tensor.Tensor
	PrevDeltaBiases() *tensor.Tensor

	// SetBatchMode switches between per-example and accumulated updates.
	SetBatchMode(batch bool)
	BatchMode() bool

	// SetOptimizer replaces the layer optimizer.
	SetOptimizer(t optim.Type, cfg optim.Config) error
	Optimizer() optim.Optimizer
}
