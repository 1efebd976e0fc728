package classifier

import (
	"github.com/rs/zerolog/log"

	"github.com/astroqml/galaxyq/internal/ansatz"
)

// Cost is the mean squared error between true labels and predicted class
// indices over the examples. Squared error on plain integer indices is not a
// calibrated probabilistic loss; the classifier output is treated as a number,
// matching the reference objective.
func Cost(theta []float64, examples []Example, topo ansatz.Topology, numClasses int) float64 {
	if len(examples) == 0 {
		return 0
	}

	var total float64
	for _, ex := range examples {
		predicted, err := Classify(ex.Features, theta, topo, numClasses)
		if err != nil {
			// The optimizer probes arbitrary theta; topology errors here mean
			// a programming bug upstream, so penalize hard rather than hide it.
			log.Error().Err(err).Msg("classification failed inside cost evaluation")
			predicted = -1
		}
		diff := float64(ex.Label - predicted)
		total += diff * diff
	}
	return total / float64(len(examples))
}
