package qsim

import "fmt"

// Circuit is an ordered gate sequence over a fixed-size register.
type Circuit struct {
	NumQubits int
	Gates     []Gate
}

func NewCircuit(numQubits int) (*Circuit, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("circuit requires at least one qubit, got %d", numQubits)
	}
	return &Circuit{NumQubits: numQubits}, nil
}

func (c *Circuit) H(target int) *Circuit {
	c.Gates = append(c.Gates, Gate{Type: GateH, Target: target, Control: -1})
	return c
}

func (c *Circuit) X(target int) *Circuit {
	c.Gates = append(c.Gates, Gate{Type: GateX, Target: target, Control: -1})
	return c
}

func (c *Circuit) RY(target int, theta float64) *Circuit {
	c.Gates = append(c.Gates, Gate{Type: GateRY, Target: target, Control: -1, Theta: theta})
	return c
}

func (c *Circuit) RZ(target int, theta float64) *Circuit {
	c.Gates = append(c.Gates, Gate{Type: GateRZ, Target: target, Control: -1, Theta: theta})
	return c
}

func (c *Circuit) CX(control, target int) *Circuit {
	c.Gates = append(c.Gates, Gate{Type: GateCX, Target: target, Control: control})
	return c
}

func (c *Circuit) CZ(control, target int) *Circuit {
	c.Gates = append(c.Gates, Gate{Type: GateCZ, Target: target, Control: control})
	return c
}

// Append splices another circuit's gates onto this one. Both circuits must
// address the same register size.
func (c *Circuit) Append(other *Circuit) error {
	if other.NumQubits != c.NumQubits {
		return fmt.Errorf("cannot append %d-qubit circuit to %d-qubit circuit", other.NumQubits, c.NumQubits)
	}
	c.Gates = append(c.Gates, other.Gates...)
	return nil
}
