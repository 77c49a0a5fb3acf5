// Copyright 2025 Deep Netts Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the weight update strategies used during training.
//
// # Optimizers
//
// SGD: delta = -learningRate * gradient
//
// Momentum: delta = -learningRate * gradient + momentum * previousDelta,
// where previousDelta is the delta the layer applied in its last update.
//
// Optimizers are installed per layer, either through nn.Builder or by the
// trainer:
//
//	net, err := nn.NewBuilder().
//	    AddInputLayer(4).
//	    AddDenseLayer(8, nn.Tanh).
//	    AddOutputLayer(1, nn.Sigmoid).
//	    LossFunction(nn.BinaryCrossEntropy).
//	    Optimizer(optim.MomentumType, optim.Config{LearningRate: 0.05, Momentum: 0.7}).
//	    Build()
package optim
