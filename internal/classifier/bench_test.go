package classifier

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/astroqml/galaxyq/internal/ansatz"
)

func BenchmarkClassify(b *testing.B) {
	sizes := []struct {
		features int
		qubits   int
	}{
		{64, 6},
		{256, 8},
		{1024, 10},
	}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Features%d_Qubits%d", size.features, size.qubits), func(b *testing.B) {
			topo, err := ansatz.NewTopology(size.qubits, 2)
			if err != nil {
				b.Fatal(err)
			}

			features := make([]float64, size.features)
			for i := range features {
				features[i] = rand.Float64()
			}
			theta := make([]float64, topo.ParamCount())
			for i := range theta {
				theta[i] = rand.Float64() * 6.28
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Classify(features, theta, topo, 2); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCost(b *testing.B) {
	topo, err := ansatz.NewTopology(6, 2)
	if err != nil {
		b.Fatal(err)
	}

	examples := make([]Example, 2)
	for i := range examples {
		features := make([]float64, 64)
		for j := range features {
			features[j] = rand.Float64()
		}
		examples[i] = Example{Features: features, Label: i}
	}
	theta := make([]float64, topo.ParamCount())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Cost(theta, examples, topo, 2)
	}
}
