package sample

import (
	"math/rand"
	"testing"
)

func TestWeightedIndexSingleWeight(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		if got := WeightedIndex(rng, []float64{1.0}); got != 0 {
			t.Fatalf("expected index 0, got %d", got)
		}
	}
}

func TestWeightedIndexSkipsZeroWeight(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		if got := WeightedIndex(rng, []float64{0, 1.0}); got != 1 {
			t.Fatalf("zero-weight index drawn: %d", got)
		}
	}
}

func TestWeightedIndexLastIndexFallback(t *testing.T) {
	// Weights deliberately sum below 1 so draws above the cumulative sum
	// must fall through to the last index.
	rng := rand.New(rand.NewSource(3))
	sawLast := false
	for i := 0; i < 10000; i++ {
		got := WeightedIndex(rng, []float64{0.5, 0.4})
		if got < 0 || got > 1 {
			t.Fatalf("index out of range: %d", got)
		}
		if got == 1 {
			sawLast = true
		}
	}
	if !sawLast {
		t.Fatal("expected some draws to land on the last index")
	}
}
