package nn

import (
	"math/rand"

	"github.com/stjordanis/deepnetts-communityedition/internal/tensor"
)

// InputLayer holds the externally supplied input vector.
//
// It is the activation source for the first hidden layer and has no
// trainable state; Forward, Backward and ApplyWeightChanges are no-ops.
type InputLayer struct {
	width       int
	initialized bool
	outputs     *tensor.Tensor
}

// NewInputLayer creates an input layer of the given width.
func NewInputLayer(width int) *InputLayer {
	return &InputLayer{width: width}
}

// Kind returns KindInput.
func (l *InputLayer) Kind() Kind { return KindInput }

// Width returns the input width.
func (l *InputLayer) Width() int { return l.width }

// Outputs returns the current input vector.
func (l *InputLayer) Outputs() *tensor.Tensor { return l.outputs }

// Init allocates the input buffer. prev must be nil.
func (l *InputLayer) Init(prev Layer, _ *rand.Rand) error {
	if l.initialized {
		return topologyError(-1, "layer already initialized")
	}
	if prev != nil {
		return topologyError(-1, "input layer must be first")
	}
	if l.width <= 0 {
		return topologyError(-1, "invalid width %d", l.width)
	}
	l.outputs = tensor.NewVector(l.width)
	l.initialized = true
	return nil
}

// SetInput copies input into the layer.
//
// input must have exactly Width() elements.
func (l *InputLayer) SetInput(input *tensor.Tensor) error {
	if input.Len() != l.width {
		return &tensor.ShapeError{Op: "SetInput", Rows: 1, Cols: l.width, OtherRows: input.Rows(), OtherCols: input.Cols()}
	}
	return l.outputs.CopyFrom(input.Values())
}

// Forward is a no-op.
func (l *InputLayer) Forward(*tensor.Tensor) {}

// Backward is a no-op.
func (l *InputLayer) Backward(_, _ *tensor.Tensor, _ bool) {}

// InputErrors returns nil.
func (l *InputLayer) InputErrors() *tensor.Tensor { return nil }

// ApplyWeightChanges is a no-op.
func (l *InputLayer) ApplyWeightChanges() {}
