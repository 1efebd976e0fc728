package trainer

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"gonum.org/v1/gonum/stat"

	"github.com/astroqml/galaxyq/internal/ansatz"
	"github.com/astroqml/galaxyq/internal/classifier"
)

// Report is the machine-readable record of a training run.
type Report struct {
	Theta           []float64 `json:"theta"`
	InitialCost     float64   `json:"initial_cost"`
	FinalCost       float64   `json:"final_cost"`
	Iterations      int       `json:"iterations"`
	FuncEvaluations int       `json:"func_evaluations"`
	DurationMS      int64     `json:"duration_ms"`
	Status          string    `json:"status"`
	Seed            int64     `json:"seed"`
	NumQubits       int       `json:"num_qubits"`
	Reps            int       `json:"reps"`
	NumClasses      int       `json:"num_classes"`
	ErrorMean       float64   `json:"error_mean"`
	ErrorStdDev     float64   `json:"error_std_dev"`
}

// BuildReport summarizes a result, including per-example squared error
// statistics under the final parameters.
func BuildReport(res *Result, examples []classifier.Example, cfg Config) *Report {
	errors := make([]float64, 0, len(examples))
	for _, ex := range examples {
		predicted, err := classifier.Classify(ex.Features, res.Theta, cfg.Topology, cfg.NumClasses)
		if err != nil {
			continue
		}
		diff := float64(ex.Label - predicted)
		errors = append(errors, diff*diff)
	}

	var mean, stddev float64
	if len(errors) > 0 {
		mean = stat.Mean(errors, nil)
		if len(errors) > 1 {
			stddev = stat.StdDev(errors, nil)
		}
	}

	return &Report{
		Theta:           res.Theta,
		InitialCost:     res.InitialCost,
		FinalCost:       res.Cost,
		Iterations:      res.Iterations,
		FuncEvaluations: res.FuncEvaluations,
		DurationMS:      res.Duration.Milliseconds(),
		Status:          res.Status,
		Seed:            res.Seed,
		NumQubits:       cfg.Topology.NumQubits,
		Reps:            cfg.Topology.Reps,
		NumClasses:      cfg.NumClasses,
		ErrorMean:       mean,
		ErrorStdDev:     stddev,
	}
}

// Write marshals the report to path.
func (r *Report) Write(path string) error {
	data, err := sonic.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("trainer: marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("trainer: write report: %w", err)
	}
	return nil
}

// Params is the persisted model: the trained angles plus everything inference
// needs to rebuild the same pipeline.
type Params struct {
	Theta      []float64 `json:"theta"`
	NumQubits  int       `json:"num_qubits"`
	Reps       int       `json:"reps"`
	NumClasses int       `json:"num_classes"`
	ImageSize  int       `json:"image_size"`
	ClassNames []string  `json:"class_names"`
}

// Topology rebuilds the ansatz topology the parameters were trained for.
func (p *Params) Topology() (ansatz.Topology, error) {
	topo, err := ansatz.NewTopology(p.NumQubits, p.Reps)
	if err != nil {
		return ansatz.Topology{}, err
	}
	if len(p.Theta) != topo.ParamCount() {
		return ansatz.Topology{}, fmt.Errorf("trainer: params hold %d angles, topology requires %d", len(p.Theta), topo.ParamCount())
	}
	return topo, nil
}

// SaveParams writes the model to path.
func SaveParams(path string, p *Params) error {
	data, err := sonic.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("trainer: marshal params: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("trainer: write params: %w", err)
	}
	return nil
}

// LoadParams reads a model written by SaveParams.
func LoadParams(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("trainer: read params: %w", err)
	}
	p := &Params{}
	if err := sonic.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("trainer: parse params: %w", err)
	}
	if _, err := p.Topology(); err != nil {
		return nil, err
	}
	return p, nil
}
