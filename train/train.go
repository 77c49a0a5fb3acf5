// Copyright 2025 Deep Netts Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train runs backpropagation training on nn networks.
//
// Example:
//
//	trainer := train.NewBackpropagationTrainer(net, train.Config{
//	    MaxEpochs:    1000,
//	    MaxError:     0.01,
//	    LearningRate: 0.1,
//	    Logger:       slog.Default(),
//	})
//	net.SetTrainer(trainer)
//	if err := net.Train(ctx, ds); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(trainer.Result().StopReason)
package train

import (
	"github.com/stjordanis/deepnetts-communityedition/internal/nn"
	"github.com/stjordanis/deepnetts-communityedition/internal/train"
)

// Config holds training hyperparameters.
type Config = train.Config

// Result summarizes a finished training run.
type Result = train.Result

// BackpropagationTrainer trains a network with error backpropagation.
type BackpropagationTrainer = train.BackpropagationTrainer

// Stop reasons reported by Result.
const (
	StopMaxError  = train.StopMaxError
	StopMaxEpochs = train.StopMaxEpochs
	StopCancelled = train.StopCancelled
)

// DefaultConfig returns the default training configuration.
func DefaultConfig() Config {
	return train.DefaultConfig()
}

// NewBackpropagationTrainer creates a trainer for net.
func NewBackpropagationTrainer(net *nn.Network, cfg Config) *BackpropagationTrainer {
	return train.NewBackpropagationTrainer(net, cfg)
}
