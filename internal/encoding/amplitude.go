// Package encoding maps classical real-valued feature vectors into quantum
// state amplitudes.
package encoding

import (
	"errors"
	"fmt"
	"math/bits"

	"gonum.org/v1/gonum/floats"

	"github.com/astroqml/galaxyq/internal/qsim"
)

var ErrZeroNorm = errors.New("encoding: vector has zero norm")

// NumQubits returns the smallest register size whose amplitude space holds a
// vector of length l.
func NumQubits(l int) int {
	if l <= 1 {
		return 1
	}
	n := bits.Len(uint(l - 1))
	return n
}

// Pad zero-extends v to the next power-of-two length. Vectors already at a
// power-of-two length come back unchanged (same backing array).
func Pad(v []float64) []float64 {
	dim := 1 << NumQubits(len(v))
	if len(v) == dim {
		return v
	}
	out := make([]float64, dim)
	copy(out, v)
	return out
}

// Encode prepares a quantum register whose amplitudes are the normalized,
// power-of-two padded input vector. State preparation is exact.
func Encode(v []float64) (*qsim.StateVector, error) {
	if len(v) == 0 {
		return nil, errors.New("encoding: empty vector")
	}

	padded := Pad(v)
	norm := floats.Norm(padded, 2)
	if norm == 0 {
		return nil, ErrZeroNorm
	}

	// Renormalization is a no-op for already-normalized input since zero
	// padding preserves the norm, but it keeps unnormalized callers safe.
	amps := make([]complex128, len(padded))
	for i, x := range padded {
		amps[i] = complex(x/norm, 0)
	}

	state, err := qsim.NewStateVectorFromAmplitudes(amps)
	if err != nil {
		return nil, fmt.Errorf("encoding: %w", err)
	}
	return state, nil
}

// EncodeWithLimit is Encode with a ceiling on register size; full statevector
// simulation is exponential in qubit count, so callers pass their configured
// maximum.
func EncodeWithLimit(v []float64, maxQubits int) (*qsim.StateVector, error) {
	if n := NumQubits(len(v)); maxQubits > 0 && n > maxQubits {
		return nil, fmt.Errorf("encoding: %d-element vector needs %d qubits, limit is %d (statevector memory is 2^n)", len(v), n, maxQubits)
	}
	return Encode(v)
}
