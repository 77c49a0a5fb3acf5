// Package optim implements optimization strategies for layer weight updates.
//
// An optimizer turns a gradient at a given weight coordinate into a delta that
// the owning layer accumulates and later adds onto its weights. Deltas already
// carry the sign that decreases the loss:
//
//	weights[i][j] += optimizer.WeightDelta(grad[i][j], i, j)
//
// This package provides:
//   - Optimizer interface: per-coordinate weight and bias deltas
//   - SGD: plain gradient descent
//   - Momentum: gradient descent with a momentum term over the previous applied delta
//
// Example usage:
//
//	opt, err := optim.New(optim.MomentumType, optim.Config{
//	    LearningRate: 0.01,
//	    Momentum:     0.9,
//	}, layer)
package optim

import (
	"errors"
	"fmt"

	"github.com/stjordanis/deepnetts-communityedition/internal/tensor"
)

// ErrInvalidConfig is returned for out-of-range optimizer hyperparameters.
var ErrInvalidConfig = errors.New("invalid optimizer config")

// Optimizer computes weight and bias deltas from gradients.
type Optimizer interface {
	// WeightDelta returns the delta for the weight at (row, col) given its gradient.
	WeightDelta(grad float32, row, col int) float32

	// BiasDelta returns the delta for the bias at col given the neuron's error signal.
	BiasDelta(grad float32, col int) float32

	// LearningRate returns the current learning rate.
	LearningRate() float32
}

// History exposes the deltas most recently applied by a layer.
//
// Momentum consults it; plain SGD ignores it.
type History interface {
	PrevDeltaWeights() *tensor.Tensor
	PrevDeltaBiases() *tensor.Tensor
}

// Type identifies an optimizer strategy.
type Type int

// Optimizer types.
const (
	SGDType Type = iota
	MomentumType
)

// String returns the optimizer name.
func (t Type) String() string {
	switch t {
	case SGDType:
		return "sgd"
	case MomentumType:
		return "momentum"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Config holds hyperparameters shared by all optimizers.
type Config struct {
	LearningRate float32 // Learning rate (default: 0.01)
	Momentum     float32 // Momentum factor, MomentumType only (default: 0.9, range: [0, 1))
}

// DefaultConfig returns the default hyperparameters.
func DefaultConfig() Config {
	return Config{
		LearningRate: 0.01,
		Momentum:     0.9,
	}
}

// New creates an optimizer of type t.
//
// Zero-valued fields of cfg fall back to DefaultConfig. history must be
// non-nil for MomentumType.
func New(t Type, cfg Config, history History) (Optimizer, error) {
	def := DefaultConfig()
	if cfg.LearningRate == 0 {
		cfg.LearningRate = def.LearningRate
	}
	if cfg.LearningRate < 0 {
		return nil, fmt.Errorf("%w: learning rate %v must be > 0", ErrInvalidConfig, cfg.LearningRate)
	}

	switch t {
	case SGDType:
		return NewSGD(cfg.LearningRate), nil
	case MomentumType:
		if cfg.Momentum == 0 {
			cfg.Momentum = def.Momentum
		}
		if cfg.Momentum < 0 || cfg.Momentum >= 1 {
			return nil, fmt.Errorf("%w: momentum %v must be in [0, 1)", ErrInvalidConfig, cfg.Momentum)
		}
		if history == nil {
			return nil, fmt.Errorf("%w: momentum requires delta history", ErrInvalidConfig)
		}
		return NewMomentum(cfg.LearningRate, cfg.Momentum, history), nil
	default:
		return nil, fmt.Errorf("%w: unknown optimizer %v", ErrInvalidConfig, t)
	}
}
