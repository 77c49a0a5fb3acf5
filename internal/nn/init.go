package nn

import (
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/stjordanis/deepnetts-communityedition/internal/tensor"
)

// biasRange bounds the uniform distribution used for initial biases.
const biasRange = 0.1

// Xavier fills weights with values drawn from a uniform distribution:
// U(-1/sqrt(fanIn), 1/sqrt(fanIn))
//
// Scaling by the fan-in keeps early activation variance stable across layers.
func Xavier(weights *tensor.Tensor, fanIn int, rng *rand.Rand) {
	bound := 1 / math32.Sqrt(float32(fanIn))
	uniform(weights, bound, rng)
}

// RandomizeBiases fills biases with small values from U(-0.1, 0.1).
func RandomizeBiases(biases *tensor.Tensor, rng *rand.Rand) {
	uniform(biases, biasRange, rng)
}

func uniform(t *tensor.Tensor, bound float32, rng *rand.Rand) {
	data := t.Values()
	for i := range data {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		data[i] = (rng.Float32()*2 - 1) * bound
	}
}
