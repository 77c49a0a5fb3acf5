// Copyright 2025 Deep Netts Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/stjordanis/deepnetts-communityedition/internal/optim"
)

// Optimizer computes weight and bias deltas from gradients.
type Optimizer = optim.Optimizer

// History exposes the deltas a layer applied in its last update.
type History = optim.History

// Type identifies an optimizer strategy.
type Type = optim.Type

// Optimizer types.
const (
	SGDType      = optim.SGDType
	MomentumType = optim.MomentumType
)

// Config holds optimizer hyperparameters.
type Config = optim.Config

// ErrInvalidConfig is returned for out-of-range hyperparameters.
var ErrInvalidConfig = optim.ErrInvalidConfig

// DefaultConfig returns the default hyperparameters.
func DefaultConfig() Config {
	return optim.DefaultConfig()
}

// New creates an optimizer of type t. history is required for MomentumType.
func New(t Type, cfg Config, history History) (Optimizer, error) {
	return optim.New(t, cfg, history)
}

// SGD is plain stochastic gradient descent.
type SGD = optim.SGD

// NewSGD creates an SGD optimizer.
func NewSGD(lr float32) *SGD {
	return optim.NewSGD(lr)
}

// Momentum is gradient descent with momentum.
type Momentum = optim.Momentum

// NewMomentum creates a momentum optimizer reading previous deltas from history.
func NewMomentum(lr, momentum float32, history History) *Momentum {
	return optim.NewMomentum(lr, momentum, history)
}
