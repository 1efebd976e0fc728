// Package qsim implements an exact statevector simulator for small quantum
// registers. The full 2^n amplitude vector is materialized in memory on every
// run, so register sizes beyond roughly 20-24 qubits are not feasible on
// commodity hardware.
package qsim

import "fmt"

type GateType string

const (
	GateH  GateType = "H"
	GateX  GateType = "X"
	GateRY GateType = "RY"
	GateRZ GateType = "RZ"
	GateCX GateType = "CX"
	GateCZ GateType = "CZ"
)

// Gate is a single operation in a circuit. Control is only meaningful for
// two-qubit gates, Theta only for rotations.
type Gate struct {
	Type    GateType
	Target  int
	Control int
	Theta   float64
}

func (g Gate) validate(numQubits int) error {
	if g.Target < 0 || g.Target >= numQubits {
		return fmt.Errorf("gate %s: target %d out of range for %d qubits", g.Type, g.Target, numQubits)
	}
	switch g.Type {
	case GateCX, GateCZ:
		if g.Control < 0 || g.Control >= numQubits {
			return fmt.Errorf("gate %s: control %d out of range for %d qubits", g.Type, g.Control, numQubits)
		}
		if g.Control == g.Target {
			return fmt.Errorf("gate %s: control and target both %d", g.Type, g.Target)
		}
	}
	return nil
}
