package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/astroqml/galaxyq/internal/ansatz"
	"github.com/astroqml/galaxyq/internal/classifier"
	"github.com/astroqml/galaxyq/internal/config"
	"github.com/astroqml/galaxyq/internal/dataset"
	"github.com/astroqml/galaxyq/internal/encoding"
	"github.com/astroqml/galaxyq/internal/trainer"
	"github.com/astroqml/galaxyq/internal/utils/logger"
)

func main() {
	logger.Init()
	log.Info().Msg("Starting classifier...")

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env not loaded; continuing with existing environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load environment configuration")
	}

	manifest, err := dataset.LoadManifest(cfg.TrainManifest)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load training manifest")
	}

	loader := dataset.NewLoader(cfg.DataDir, cfg.ImageSize)
	examples, err := loader.LoadExamples(manifest)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load training examples")
	}

	numQubits := encoding.NumQubits(cfg.ImageSize * cfg.ImageSize)
	if numQubits > cfg.MaxQubits {
		log.Fatal().
			Int("num_qubits", numQubits).
			Int("max_qubits", cfg.MaxQubits).
			Msg("image size needs more qubits than the configured ceiling; statevector memory is 2^n")
	}

	topo, err := ansatz.NewTopology(numQubits, cfg.AnsatzReps)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid ansatz topology")
	}

	trainCfg := trainer.Config{
		Topology:      topo,
		NumClasses:    cfg.NumClasses,
		MaxIterations: cfg.MaxIterations,
		Seed:          cfg.RandomSeed,
	}

	res, err := trainer.Train(examples, trainCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("training failed")
	}

	evaluateTrainingSet(examples, res.Theta, topo, cfg.NumClasses)

	if cfg.ReportPath != "" {
		report := trainer.BuildReport(res, examples, trainCfg)
		if err := report.Write(cfg.ReportPath); err != nil {
			log.Error().Err(err).Str("path", cfg.ReportPath).Msg("failed to write training report")
		} else {
			log.Info().Str("path", cfg.ReportPath).Msg("training report written")
		}
	}

	if cfg.ParamsPath != "" {
		params := &trainer.Params{
			Theta:      res.Theta,
			NumQubits:  topo.NumQubits,
			Reps:       topo.Reps,
			NumClasses: cfg.NumClasses,
			ImageSize:  cfg.ImageSize,
			ClassNames: cfg.ClassNameList(),
		}
		if err := trainer.SaveParams(cfg.ParamsPath, params); err != nil {
			log.Error().Err(err).Str("path", cfg.ParamsPath).Msg("failed to save trained parameters")
		} else {
			log.Info().Str("path", cfg.ParamsPath).Msg("trained parameters saved")
		}
	}

	if cfg.TestImage == "" {
		log.Warn().Msg("TEST_IMAGE not set; skipping held-out prediction")
		return
	}

	features, err := loader.LoadFeatures(cfg.TestImage)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.TestImage).Msg("failed to load test image")
	}

	class, err := classifier.Classify(features, res.Theta, topo, cfg.NumClasses)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to classify test image")
	}

	names := cfg.ClassNameList()
	name := fmt.Sprintf("class %d", class)
	if class < len(names) {
		name = names[class]
	}
	fmt.Printf("Predicted class for %s: %s\n", cfg.TestImage, name)
}

func evaluateTrainingSet(examples []classifier.Example, theta []float64, topo ansatz.Topology, numClasses int) {
	correct := 0
	for i, ex := range examples {
		predicted, err := classifier.Classify(ex.Features, theta, topo, numClasses)
		if err != nil {
			log.Error().Err(err).Int("sample", i).Msg("training sample evaluation failed")
			continue
		}
		if predicted == ex.Label {
			correct++
		}
		log.Debug().Int("sample", i).Int("label", ex.Label).Int("predicted", predicted).Msg("training sample evaluated")
	}
	log.Info().Int("correct", correct).Int("total", len(examples)).Msg("training set evaluation")
}
