package nn

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// leakySlope is the LeakyReLU slope for negative inputs.
const leakySlope = 0.1

// ActivationType identifies a layer activation function.
//
// Elementwise types are evaluated per neuron by the owning layer through
// Value and Prime. Softmax is a vector operation and is only valid on the
// output layer, which implements it directly.
type ActivationType int

// Activation types.
const (
	Linear ActivationType = iota
	Sigmoid
	Tanh
	ReLU
	LeakyReLU
	Softmax
)

var activationNames = map[ActivationType]string{
	Linear:    "linear",
	Sigmoid:   "sigmoid",
	Tanh:      "tanh",
	ReLU:      "relu",
	LeakyReLU: "leaky_relu",
	Softmax:   "softmax",
}

// String returns the activation name.
func (a ActivationType) String() string {
	if name, ok := activationNames[a]; ok {
		return name
	}
	return fmt.Sprintf("ActivationType(%d)", int(a))
}

// ParseActivationType returns the activation with the given name (case-insensitive).
func ParseActivationType(name string) (ActivationType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range activationNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown activation %q", name)
}

// Elementwise reports whether Value and Prime are defined for a.
func (a ActivationType) Elementwise() bool {
	_, ok := activationNames[a]
	return ok && a != Softmax
}

// Value applies the activation to x.
//
// Panics for Softmax, which has no scalar form.
func (a ActivationType) Value(x float32) float32 {
	switch a {
	case Linear:
		return x
	case Sigmoid:
		return 1 / (1 + math32.Exp(-x))
	case Tanh:
		return math32.Tanh(x)
	case ReLU:
		return math32.Max(0, x)
	case LeakyReLU:
		if x >= 0 {
			return x
		}
		return leakySlope * x
	default:
		panic(fmt.Sprintf("activation %v has no elementwise value", a))
	}
}

// Prime returns the derivative of the activation expressed in terms of its output y.
//
// For LeakyReLU and ReLU the derivative is taken on the output value; this is
// exact because both functions keep the sign of their input.
func (a ActivationType) Prime(y float32) float32 {
	switch a {
	case Linear:
		return 1
	case Sigmoid:
		return y * (1 - y)
	case Tanh:
		return 1 - y*y
	case ReLU:
		if y > 0 {
			return 1
		}
		return 0
	case LeakyReLU:
		if y > 0 {
			return 1
		}
		return leakySlope
	default:
		panic(fmt.Sprintf("activation %v has no elementwise derivative", a))
	}
}
