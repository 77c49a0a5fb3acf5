// Copyright 2025 Deep Netts Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides feed-forward neural networks trained with backpropagation.
//
// # Overview
//
// This package contains:
//   - Layers: InputLayer, DenseLayer, OutputLayer (elementwise or softmax)
//   - Activations: Linear, Sigmoid, Tanh, ReLU, LeakyReLU, Softmax
//   - Loss functions: MeanSquaredError, CrossEntropy, BinaryCrossEntropy
//   - Network and Builder
//   - Initialization: Xavier, RandomizeBiases
//
// # Basic Usage
//
//	import (
//	    "github.com/stjordanis/deepnetts-communityedition/nn"
//	    "github.com/stjordanis/deepnetts-communityedition/tensor"
//	)
//
//	func main() {
//	    net, err := nn.NewBuilder().
//	        AddInputLayer(2).
//	        AddDenseLayer(3, nn.LeakyReLU).
//	        AddSoftmaxOutputLayer(2).
//	        LossFunction(nn.CrossEntropy).
//	        RandomSeed(42).
//	        Build()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Forward pass
//	    probs, err := net.Predict(tensor.FromSlice([]float32{1, 0}))
//	}
//
// # Training Step
//
// A training step is forward, loss, backward and apply:
//
//	_ = net.SetInput(item.Input)
//	loss, _ := net.Loss(item.Target)
//	net.Backward()
//	_ = net.ApplyWeightChanges()
//
// The train package wraps this loop with stopping criteria and mini-batches.
//
// # Softmax and Cross-Entropy
//
// A softmax output layer computes max-shifted probabilities, so large raw
// sums never overflow. Paired with cross-entropy the output delta collapses
// to predicted - target. Softmax with mean squared error is rejected with
// ErrLossOutputMismatch.
//
// # Parallel Weight Updates
//
// With a worker pool set through Builder.Pool, ApplyWeightChanges updates
// all layers concurrently and returns once every layer is done. Results are
// bit-identical to sequential application.
package nn
