package qsim

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
)

const normTolerance = 1e-9

// StateVector holds the full complex amplitude vector of a quantum register.
// Basis state i assigns bit q of i to qubit q.
type StateVector struct {
	Amplitudes []complex128
	NumQubits  int
}

// NewStateVector returns the |0...0> state over numQubits qubits.
func NewStateVector(numQubits int) (*StateVector, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("state vector requires at least one qubit, got %d", numQubits)
	}
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}, nil
}

// NewStateVectorFromAmplitudes prepares a register in an exact caller-supplied
// state. The amplitude slice must have power-of-two length and unit norm.
func NewStateVectorFromAmplitudes(amps []complex128) (*StateVector, error) {
	n := len(amps)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("amplitude vector length %d is not a power of two", n)
	}
	var sumSq float64
	for _, a := range amps {
		sumSq += real(a)*real(a) + imag(a)*imag(a)
	}
	if math.Abs(sumSq-1) > normTolerance {
		return nil, fmt.Errorf("amplitude vector norm^2 = %g, want 1", sumSq)
	}
	out := make([]complex128, n)
	copy(out, amps)
	return &StateVector{Amplitudes: out, NumQubits: bits.TrailingZeros(uint(n))}, nil
}

func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

// Apply mutates the state by one gate.
func (s *StateVector) Apply(g Gate) error {
	if err := g.validate(s.NumQubits); err != nil {
		return err
	}
	switch g.Type {
	case GateH:
		s.applyH(g.Target)
	case GateX:
		s.applyX(g.Target)
	case GateRY:
		s.applyRY(g.Target, g.Theta)
	case GateRZ:
		s.applyRZ(g.Target, g.Theta)
	case GateCX:
		s.applyCX(g.Control, g.Target)
	case GateCZ:
		s.applyCZ(g.Control, g.Target)
	default:
		return fmt.Errorf("unsupported gate type %q", g.Type)
	}
	return nil
}

// Run applies every gate of the circuit in order.
func (s *StateVector) Run(c *Circuit) error {
	if c.NumQubits != s.NumQubits {
		return fmt.Errorf("cannot run %d-qubit circuit on %d-qubit state", c.NumQubits, s.NumQubits)
	}
	for _, g := range c.Gates {
		if err := s.Apply(g); err != nil {
			return err
		}
	}
	return nil
}

// Probabilities returns the squared magnitude of every amplitude.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.Amplitudes))
	for i, a := range s.Amplitudes {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return probs
}

func (s *StateVector) applyH(q int) {
	hFactor := complex(1.0/math.Sqrt2, 0)
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			a, b := s.Amplitudes[i], s.Amplitudes[j]
			s.Amplitudes[i] = hFactor * (a + b)
			s.Amplitudes[j] = hFactor * (a - b)
		}
	}
}

func (s *StateVector) applyX(q int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyRY(q int, theta float64) {
	n := len(s.Amplitudes)
	bit := 1 << q
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			a, b := s.Amplitudes[i], s.Amplitudes[j]
			s.Amplitudes[i] = c*a - sn*b
			s.Amplitudes[j] = sn*a + c*b
		}
	}
}

func (s *StateVector) applyRZ(q int, theta float64) {
	n := len(s.Amplitudes)
	bit := 1 << q
	phase := cmplx.Exp(complex(0, theta/2))
	conj := cmplx.Conj(phase)
	for i := 0; i < n; i++ {
		if i&bit != 0 {
			s.Amplitudes[i] *= phase
		} else {
			s.Amplitudes[i] *= conj
		}
	}
}

func (s *StateVector) applyCX(control, target int) {
	n := len(s.Amplitudes)
	cBit := 1 << control
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyCZ(control, target int) {
	n := len(s.Amplitudes)
	cBit := 1 << control
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&tBit != 0 {
			s.Amplitudes[i] *= -1
		}
	}
}

// Simulate runs a circuit from the |0...0> state and returns the final state.
func Simulate(c *Circuit) (*StateVector, error) {
	state, err := NewStateVector(c.NumQubits)
	if err != nil {
		return nil, err
	}
	if err := state.Run(c); err != nil {
		return nil, err
	}
	return state, nil
}
