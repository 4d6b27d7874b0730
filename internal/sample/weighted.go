package sample

import "math/rand"

// WeightedIndex draws one index from a discrete distribution described by
// weights. It walks the weight list accumulating a running sum and returns
// the first index whose cumulative weight exceeds a single uniform draw.
// Weights are expected to sum to 1; if accumulated floating-point error
// leaves the draw uncovered, the last index wins.
func WeightedIndex(rng *rand.Rand, weights []float64) int {
	draw := rng.Float64()
	sum := 0.0
	for i, w := range weights {
		sum += w
		if draw < sum {
			return i
		}
	}
	return len(weights) - 1
}
