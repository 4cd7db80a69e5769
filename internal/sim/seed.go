package sim

import (
	"math/rand"

	"github.com/san-kum/lorenzsim/internal/dynamo"
)

// InitialPosition is the fixed starting point used when no seed is asked for.
var InitialPosition = dynamo.V(10, 1, 10)

// Seed draws three independent integers in [1, n] as a starting position.
// n below 1 is treated as 1.
func Seed(rng *rand.Rand, n int) dynamo.Vector3 {
	if n < 1 {
		n = 1
	}
	return dynamo.V(
		float64(rng.Intn(n)+1),
		float64(rng.Intn(n)+1),
		float64(rng.Intn(n)+1),
	)
}
