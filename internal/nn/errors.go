package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrMalformedTopology reports a layer chain that is missing its input or
	// output layer, or a layer initialized out of order.
	ErrMalformedTopology = errors.New("malformed topology")

	// ErrLossOutputMismatch reports a loss function whose gradient shortcut
	// does not match the output layer activation.
	ErrLossOutputMismatch = errors.New("loss function does not match output layer")

	// ErrNoTrainer is returned by Network.Train when no trainer is attached.
	ErrNoTrainer = errors.New("network has no trainer")
)

// TopologyError provides the layer position of a topology failure.
type TopologyError struct {
	Index   int    // Layer index in the network (-1 when not layer specific)
	Details string // Human readable description
}

// Error implements the error interface.
func (e *TopologyError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", ErrMalformedTopology, e.Details)
	}
	return fmt.Sprintf("%s: layer %d: %s", ErrMalformedTopology, e.Index, e.Details)
}

// Is reports whether target is ErrMalformedTopology.
func (e *TopologyError) Is(target error) bool {
	return target == ErrMalformedTopology
}

func topologyError(index int, format string, args ...any) error {
	return &TopologyError{Index: index, Details: fmt.Sprintf(format, args...)}
}
