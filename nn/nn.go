// Copyright 2025 Deep Netts Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/stjordanis/deepnetts-communityedition/internal/nn"
)

// Layer is a single stage of a network.
type Layer = nn.Layer

// Trainable is a layer with weights and biases.
type Trainable = nn.Trainable

// Kind identifies a layer variant.
type Kind = nn.Kind

// Layer kinds.
const (
	KindInput         = nn.KindInput
	KindDense         = nn.KindDense
	KindOutput        = nn.KindOutput
	KindSoftmaxOutput = nn.KindSoftmaxOutput
)

// Layers

// InputLayer holds the input vector.
type InputLayer = nn.InputLayer

// NewInputLayer creates an input layer of the given width.
func NewInputLayer(width int) *InputLayer {
	return nn.NewInputLayer(width)
}

// DenseLayer is a fully connected hidden layer.
type DenseLayer = nn.DenseLayer

// NewDenseLayer creates a hidden layer with an elementwise activation.
//
// Example:
//
//	hidden := nn.NewDenseLayer(16, nn.Tanh)
func NewDenseLayer(width int, activation ActivationType) *DenseLayer {
	return nn.NewDenseLayer(width, activation)
}

// OutputLayer is the last layer of a network.
type OutputLayer = nn.OutputLayer

// NewOutputLayer creates an output layer.
func NewOutputLayer(width int, activation ActivationType) *OutputLayer {
	return nn.NewOutputLayer(width, activation)
}

// NewSoftmaxOutputLayer creates a softmax output layer.
func NewSoftmaxOutputLayer(width int) *OutputLayer {
	return nn.NewSoftmaxOutputLayer(width)
}

// Activations

// ActivationType selects a neuron activation function.
type ActivationType = nn.ActivationType

// Activation types.
const (
	Linear    = nn.Linear
	Sigmoid   = nn.Sigmoid
	Tanh      = nn.Tanh
	ReLU      = nn.ReLU
	LeakyReLU = nn.LeakyReLU
	Softmax   = nn.Softmax
)

// ParseActivationType returns the activation with the given name.
func ParseActivationType(name string) (ActivationType, error) {
	return nn.ParseActivationType(name)
}

// Loss Functions

// LossType selects a loss function.
type LossType = nn.LossType

// Loss types.
const (
	MeanSquaredError   = nn.MeanSquaredError
	CrossEntropy       = nn.CrossEntropy
	BinaryCrossEntropy = nn.BinaryCrossEntropy
)

// LossFunction computes the loss of a single example.
type LossFunction = nn.LossFunction

// MSELoss is half the sum of squared errors.
type MSELoss = nn.MSELoss

// CrossEntropyLoss is categorical cross-entropy over softmax outputs.
type CrossEntropyLoss = nn.CrossEntropyLoss

// BinaryCrossEntropyLoss is cross-entropy over independent probabilities.
type BinaryCrossEntropyLoss = nn.BinaryCrossEntropyLoss

// NewLossFunction returns the loss function of type t.
func NewLossFunction(t LossType) (LossFunction, error) {
	return nn.NewLossFunction(t)
}

// Networks

// Network is a feed-forward neural network.
type Network = nn.Network

// Trainer drives the training loop of a network.
type Trainer = nn.Trainer

// Builder assembles and validates a Network.
type Builder = nn.Builder

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return nn.NewBuilder()
}

// NewNetwork validates and initializes a layer chain.
//
// Most callers should use NewBuilder instead.
func NewNetwork(rng *rand.Rand, layers ...Layer) (*Network, error) {
	return nn.NewNetwork(rng, layers...)
}

// Errors

// TopologyError provides the layer position of a topology failure.
type TopologyError = nn.TopologyError

// Errors returned by network construction and training.
var (
	ErrMalformedTopology  = nn.ErrMalformedTopology
	ErrLossOutputMismatch = nn.ErrLossOutputMismatch
	ErrNoTrainer          = nn.ErrNoTrainer
)
