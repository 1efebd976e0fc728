package classifier

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// BinScores partitions a probability distribution into numClasses contiguous
// equal-size bins and sums the mass per bin. The bin size is the floor of
// len(probs)/numClasses; when the distribution length is not divisible,
// indices past the last full bin contribute to no class. The truncation
// mirrors the reference bucketing and is relied on by callers.
func BinScores(probs []float64, numClasses int) ([]float64, error) {
	if numClasses < 1 {
		return nil, fmt.Errorf("classifier: need at least one class, got %d", numClasses)
	}
	binSize := len(probs) / numClasses
	if binSize == 0 {
		return nil, fmt.Errorf("classifier: %d classes cannot be carved out of a %d-element distribution", numClasses, len(probs))
	}

	scores := make([]float64, numClasses)
	for c := 0; c < numClasses; c++ {
		scores[c] = floats.Sum(probs[c*binSize : (c+1)*binSize])
	}
	return scores, nil
}

// Argmax returns the index of the maximum value, lowest index on ties.
func Argmax(scores []float64) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best
}
