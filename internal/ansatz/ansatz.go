// Package ansatz builds the hardware-efficient variational circuit used by
// the classifier: alternating layers of per-qubit Y rotations and a linear
// chain of CX entangling gates.
package ansatz

import (
	"errors"
	"fmt"

	"github.com/astroqml/galaxyq/internal/qsim"
)

var ErrParamCount = errors.New("ansatz: parameter count does not match topology")

// Topology fixes the circuit shape. Reps counts the rotation+entanglement
// repetitions; a final rotation layer always closes the circuit, so the free
// parameter count is (Reps+1) * NumQubits.
type Topology struct {
	NumQubits int
	Reps      int
}

func NewTopology(numQubits, reps int) (Topology, error) {
	if numQubits < 1 {
		return Topology{}, fmt.Errorf("ansatz: need at least one qubit, got %d", numQubits)
	}
	if reps < 1 {
		return Topology{}, fmt.Errorf("ansatz: need at least one repetition, got %d", reps)
	}
	return Topology{NumQubits: numQubits, Reps: reps}, nil
}

// ParamCount is the number of free rotation angles in the topology.
func (t Topology) ParamCount() int {
	return (t.Reps + 1) * t.NumQubits
}

// Build binds theta to the topology and returns the circuit. Angles are
// consumed in construction order: first rotation layer qubit 0..n-1, then the
// entangling chain, then the next layer, with the last rotation layer closing.
func (t Topology) Build(theta []float64) (*qsim.Circuit, error) {
	if len(theta) != t.ParamCount() {
		return nil, fmt.Errorf("%w: got %d parameters, topology requires %d", ErrParamCount, len(theta), t.ParamCount())
	}

	circuit, err := qsim.NewCircuit(t.NumQubits)
	if err != nil {
		return nil, err
	}

	next := 0
	for rep := 0; rep < t.Reps; rep++ {
		for q := 0; q < t.NumQubits; q++ {
			circuit.RY(q, theta[next])
			next++
		}
		for q := 0; q < t.NumQubits-1; q++ {
			circuit.CX(q, q+1)
		}
	}
	for q := 0; q < t.NumQubits; q++ {
		circuit.RY(q, theta[next])
		next++
	}

	return circuit, nil
}
