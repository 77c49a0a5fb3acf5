package nn

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/stjordanis/deepnetts-communityedition/internal/optim"
	"github.com/stjordanis/deepnetts-communityedition/internal/parallel"
)

// Builder assembles and validates a Network.
//
// Errors from individual steps are deferred to Build.
//
// Example:
//
//	net, err := nn.NewBuilder().
//	    AddInputLayer(4).
//	    AddDenseLayer(8, nn.Tanh).
//	    AddOutputLayer(1, nn.Sigmoid).
//	    LossFunction(nn.BinaryCrossEntropy).
//	    Optimizer(optim.MomentumType, optim.Config{LearningRate: 0.05, Momentum: 0.7}).
//	    RandomSeed(42).
//	    Build()
type Builder struct {
	layers []Layer
	err    error

	lossType LossType
	lossSet  bool

	seed    int64
	seedSet bool

	optType optim.Type
	optCfg  optim.Config
	optSet  bool

	pool   *parallel.Pool
	labels []string
	label  string
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddInputLayer appends an input layer of the given width.
func (b *Builder) AddInputLayer(width int) *Builder {
	return b.AddLayer(NewInputLayer(width))
}

// AddDenseLayer appends a hidden layer with an elementwise activation.
func (b *Builder) AddDenseLayer(width int, activation ActivationType) *Builder {
	if !activation.Elementwise() {
		b.fail(topologyError(len(b.layers), "dense layer activation %v is not elementwise", activation))
		return b
	}
	return b.AddLayer(NewDenseLayer(width, activation))
}

// AddOutputLayer appends an output layer.
func (b *Builder) AddOutputLayer(width int, activation ActivationType) *Builder {
	return b.AddLayer(NewOutputLayer(width, activation))
}

// AddSoftmaxOutputLayer appends a softmax output layer.
func (b *Builder) AddSoftmaxOutputLayer(width int) *Builder {
	return b.AddLayer(NewSoftmaxOutputLayer(width))
}

// AddLayer appends an already constructed layer.
func (b *Builder) AddLayer(l Layer) *Builder {
	b.layers = append(b.layers, l)
	return b
}

// LossFunction selects the loss function. Required.
func (b *Builder) LossFunction(t LossType) *Builder {
	b.lossType = t
	b.lossSet = true
	return b
}

// RandomSeed makes weight initialization deterministic.
func (b *Builder) RandomSeed(seed int64) *Builder {
	b.seed = seed
	b.seedSet = true
	return b
}

// Optimizer selects the optimizer installed on every trainable layer.
// Defaults to SGD with optim.DefaultConfig.
func (b *Builder) Optimizer(t optim.Type, cfg optim.Config) *Builder {
	b.optType = t
	b.optCfg = cfg
	b.optSet = true
	return b
}

// Pool enables parallel weight application on p.
func (b *Builder) Pool(p *parallel.Pool) *Builder {
	b.pool = p
	return b
}

// OutputLabels sets one class label per output neuron.
func (b *Builder) OutputLabels(labels ...string) *Builder {
	b.labels = labels
	return b
}

// Label sets a descriptive network label.
func (b *Builder) Label(label string) *Builder {
	b.label = label
	return b
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build validates the configuration, initializes all layers and returns the network.
func (b *Builder) Build() (*Network, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.lossSet {
		return nil, errors.New("loss function not set")
	}

	seed := b.seed
	if !b.seedSet {
		seed = time.Now().UnixNano()
	}
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	rng := rand.New(rand.NewSource(seed))

	net, err := NewNetwork(rng, b.layers...)
	if err != nil {
		return nil, err
	}

	loss, err := NewLossFunction(b.lossType)
	if err != nil {
		return nil, err
	}
	if err := net.SetLossFunction(loss); err != nil {
		return nil, err
	}

	if b.optSet {
		if err := net.SetOptimizer(b.optType, b.optCfg); err != nil {
			return nil, fmt.Errorf("optimizer: %w", err)
		}
	}
	if err := net.SetOutputLabels(b.labels); err != nil {
		return nil, err
	}
	net.SetLabel(b.label)
	net.SetPool(b.pool)

	return net, nil
}
