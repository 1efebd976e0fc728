// Package trainer searches the ansatz parameters that minimize the
// classification cost using derivative-free optimization.
package trainer

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/optimize"

	"github.com/astroqml/galaxyq/internal/ansatz"
	"github.com/astroqml/galaxyq/internal/classifier"
)

// Config carries the topology and search budget.
type Config struct {
	Topology      ansatz.Topology
	NumClasses    int
	MaxIterations int
	// Seed 0 draws the initial parameters from the clock, matching the
	// original unseeded behavior; any other value is reproducible.
	Seed int64
}

// Result is the outcome of one training run.
type Result struct {
	Theta           []float64
	Cost            float64
	InitialCost     float64
	InitialTheta    []float64
	Iterations      int
	FuncEvaluations int
	Duration        time.Duration
	Status          string
	Seed            int64
}

// InitialParams draws ParamCount angles independently and uniformly from
// [0, 2*pi).
func InitialParams(topo ansatz.Topology, seed int64) ([]float64, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	theta := make([]float64, topo.ParamCount())
	for i := range theta {
		theta[i] = rng.Float64() * 2 * math.Pi
	}
	return theta, seed
}

// Train minimizes the mean squared label error over the examples with
// Nelder-Mead. The objective is piecewise constant (argmax over binned
// probability mass), so no gradient exists to exploit; the iteration cap is
// the only convergence guarantee.
func Train(examples []classifier.Example, cfg Config) (*Result, error) {
	if len(examples) == 0 {
		return nil, fmt.Errorf("trainer: no training examples")
	}
	if cfg.NumClasses < 2 {
		return nil, fmt.Errorf("trainer: need at least two classes, got %d", cfg.NumClasses)
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = 1000
	}

	theta0, seed := InitialParams(cfg.Topology, cfg.Seed)
	initialCost := classifier.Cost(theta0, examples, cfg.Topology, cfg.NumClasses)

	log.Info().
		Int("parameters", cfg.Topology.ParamCount()).
		Int("examples", len(examples)).
		Int("max_iterations", cfg.MaxIterations).
		Int64("seed", seed).
		Float64("initial_cost", initialCost).
		Msg("starting parameter search")

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return classifier.Cost(x, examples, cfg.Topology, cfg.NumClasses)
		},
	}

	settings := &optimize.Settings{
		MajorIterations: cfg.MaxIterations,
		Recorder:        newProgressRecorder(cfg.MaxIterations / 10),
	}

	start := time.Now()
	result, err := optimize.Minimize(problem, theta0, settings, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("trainer: optimization failed: %w", err)
	}

	// The iteration cap is an expected stopping condition, not a failure.
	acceptable := map[optimize.Status]bool{
		optimize.Success:             true,
		optimize.FunctionConvergence: true,
		optimize.GradientThreshold:   true,
		optimize.IterationLimit:      true,
	}
	if !acceptable[result.Status] {
		return nil, fmt.Errorf("trainer: optimization did not converge: status=%v", result.Status)
	}

	out := &Result{
		Theta:           result.X,
		Cost:            result.F,
		InitialCost:     initialCost,
		InitialTheta:    theta0,
		Iterations:      result.Stats.MajorIterations,
		FuncEvaluations: result.Stats.FuncEvaluations,
		Duration:        time.Since(start),
		Status:          result.Status.String(),
		Seed:            seed,
	}

	log.Info().
		Float64("final_cost", out.Cost).
		Int("iterations", out.Iterations).
		Int("func_evaluations", out.FuncEvaluations).
		Str("status", out.Status).
		Str("duration", out.Duration.String()).
		Msg("parameter search finished")

	return out, nil
}
