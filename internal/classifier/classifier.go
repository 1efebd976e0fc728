// Package classifier contains logic to execute classification and compute the
// training cost over the variational circuit.
package classifier

import (
	"fmt"

	"github.com/astroqml/galaxyq/internal/ansatz"
	"github.com/astroqml/galaxyq/internal/encoding"
)

// Example is one labeled training or evaluation sample.
type Example struct {
	Features []float64
	Label    int
}

// Classify encodes the feature vector, appends the bound ansatz on the same
// register, simulates the exact final state and buckets the probability mass
// into class scores. Deterministic for fixed inputs.
func Classify(features, theta []float64, topo ansatz.Topology, numClasses int) (int, error) {
	if n := encoding.NumQubits(len(features)); n != topo.NumQubits {
		return 0, fmt.Errorf("classifier: %d-element feature vector needs a %d-qubit ansatz, topology has %d", len(features), n, topo.NumQubits)
	}

	state, err := encoding.Encode(features)
	if err != nil {
		return 0, err
	}

	circuit, err := topo.Build(theta)
	if err != nil {
		return 0, err
	}

	if err := state.Run(circuit); err != nil {
		return 0, err
	}

	scores, err := BinScores(state.Probabilities(), numClasses)
	if err != nil {
		return 0, err
	}

	return Argmax(scores), nil
}
