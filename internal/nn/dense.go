package nn

import (
	"fmt"
	"math/rand"

	"github.com/stjordanis/deepnetts-communityedition/internal/tensor"
)

// DenseLayer is a fully connected hidden layer.
//
// Forward:
//
//	out[j] = f(bias[j] + Σ_i in[i]·w[i][j])
//
// Backward, given the upstream error from the next layer:
//
//	delta[j]   = upstream[j] · f'(out[j])
//	grad[i][j] = delta[j] · in[i]
//	prevErr[i] = Σ_j delta[j] · w[i][j]
//
// Weights are initialized with Xavier scaling, biases with small random values.
type DenseLayer struct {
	weighted
}

// NewDenseLayer creates a dense layer with the given width and elementwise activation.
//
// Panics if activation is Softmax, which is only valid on the output layer.
func NewDenseLayer(width int, activation ActivationType) *DenseLayer {
	if !activation.Elementwise() {
		panic(fmt.Sprintf("NewDenseLayer: activation %v is not elementwise", activation))
	}
	return &DenseLayer{weighted{width: width, activation: activation}}
}

// Kind returns KindDense.
func (l *DenseLayer) Kind() Kind { return KindDense }

// Init sizes the layer from the previous layer width.
func (l *DenseLayer) Init(prev Layer, rng *rand.Rand) error {
	return l.init(prev, rng)
}

// Forward computes the activations from the previous layer outputs.
func (l *DenseLayer) Forward(inputs *tensor.Tensor) {
	l.weightedSums(inputs)
	l.activate()
}

// Backward computes the layer deltas from the upstream error and accumulates
// weight and bias deltas. When propagate is set, the error signal for the
// previous layer is written to InputErrors.
func (l *DenseLayer) Backward(inputs, upstream *tensor.Tensor, propagate bool) {
	up := upstream.Values()
	out := l.outputs.Values()
	deltas := l.deltas.Values()
	for j := range deltas {
		deltas[j] = up[j] * l.activation.Prime(out[j])
	}
	l.accumulate(inputs)
	if propagate {
		l.propagate()
	}
}
