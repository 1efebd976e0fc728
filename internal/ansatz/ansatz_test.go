package ansatz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroqml/galaxyq/internal/qsim"
)

func TestNewTopology(t *testing.T) {
	_, err := NewTopology(0, 2)
	assert.Error(t, err)

	_, err = NewTopology(6, 0)
	assert.Error(t, err)

	topo, err := NewTopology(6, 2)
	require.NoError(t, err)
	assert.Equal(t, 18, topo.ParamCount())
}

func TestParamCount(t *testing.T) {
	cases := []struct {
		qubits, reps, want int
	}{
		{6, 2, 18},
		{10, 2, 30},
		{3, 1, 6},
		{1, 1, 2},
	}
	for _, tc := range cases {
		topo, err := NewTopology(tc.qubits, tc.reps)
		require.NoError(t, err)
		assert.Equal(t, tc.want, topo.ParamCount(), "%d qubits %d reps", tc.qubits, tc.reps)
	}
}

func TestBuildRejectsWrongParamCount(t *testing.T) {
	topo, err := NewTopology(6, 2)
	require.NoError(t, err)

	_, err = topo.Build(make([]float64, 17))
	assert.ErrorIs(t, err, ErrParamCount)

	_, err = topo.Build(make([]float64, 19))
	assert.ErrorIs(t, err, ErrParamCount)

	_, err = topo.Build(nil)
	assert.ErrorIs(t, err, ErrParamCount)
}

func TestBuildGateOrder(t *testing.T) {
	topo, err := NewTopology(3, 2)
	require.NoError(t, err)

	theta := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}
	circuit, err := topo.Build(theta)
	require.NoError(t, err)

	// 3 RY + 2 CX per repetition, plus a closing RY layer.
	require.Len(t, circuit.Gates, 2*(3+2)+3)

	var angles []float64
	rotations := 0
	entanglers := 0
	for _, g := range circuit.Gates {
		switch g.Type {
		case qsim.GateRY:
			rotations++
			angles = append(angles, g.Theta)
		case qsim.GateCX:
			entanglers++
		default:
			t.Fatalf("unexpected gate type %s", g.Type)
		}
	}

	assert.Equal(t, 9, rotations)
	assert.Equal(t, 4, entanglers)
	// Parameter-to-gate order follows construction order exactly.
	assert.Equal(t, theta, angles)

	// First layer targets qubits in ascending order, then the chain.
	assert.Equal(t, qsim.GateRY, circuit.Gates[0].Type)
	assert.Equal(t, 0, circuit.Gates[0].Target)
	assert.Equal(t, 2, circuit.Gates[2].Target)
	assert.Equal(t, qsim.GateCX, circuit.Gates[3].Type)
	assert.Equal(t, 0, circuit.Gates[3].Control)
	assert.Equal(t, 1, circuit.Gates[3].Target)
}

func TestBuiltCircuitSimulates(t *testing.T) {
	topo, err := NewTopology(4, 2)
	require.NoError(t, err)

	theta := make([]float64, topo.ParamCount())
	for i := range theta {
		theta[i] = float64(i) * 0.17
	}

	circuit, err := topo.Build(theta)
	require.NoError(t, err)

	state, err := qsim.Simulate(circuit)
	require.NoError(t, err)

	var sum float64
	for _, p := range state.Probabilities() {
		sum += p
	}
	assert.InDelta(t, 1, sum, 1e-9)
}
