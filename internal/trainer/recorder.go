package trainer

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/optimize"
)

// progressRecorder logs the best objective value at a fixed major-iteration
// interval so long searches stay observable.
type progressRecorder struct {
	every int
}

func newProgressRecorder(every int) *progressRecorder {
	if every < 1 {
		every = 1
	}
	return &progressRecorder{every: every}
}

func (r *progressRecorder) Init() error {
	return nil
}

func (r *progressRecorder) Record(loc *optimize.Location, op optimize.Operation, stats *optimize.Stats) error {
	if op&optimize.MajorIteration == 0 {
		return nil
	}
	if stats.MajorIterations%r.every == 0 {
		log.Debug().
			Int("iteration", stats.MajorIterations).
			Int("func_evaluations", stats.FuncEvaluations).
			Float64("cost", loc.F).
			Msg("search progress")
	}
	return nil
}
