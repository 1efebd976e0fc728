package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/astroqml/galaxyq/internal/classifier"
	"github.com/astroqml/galaxyq/internal/config"
	"github.com/astroqml/galaxyq/internal/encoding"
	"github.com/astroqml/galaxyq/internal/preprocess"
	"github.com/astroqml/galaxyq/internal/utils/logger"
)

// inspect encodes a single image and reports how its probability mass lands
// in the class bins before any variational circuit is applied. Useful when
// deciding whether a dataset has any chance of separating under the fixed
// bin partition.
func main() {
	logger.Init()

	args := os.Args[1:]
	if len(args) < 1 {
		log.Fatal().Msg("usage: inspect <image-path>")
	}
	path := args[0]

	cfg, err := config.LoadClassifierEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load environment configuration")
	}

	features, err := preprocess.LoadFeatures(path, cfg.ImageSize)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to preprocess image")
	}

	state, err := encoding.EncodeWithLimit(features, cfg.MaxQubits)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode features")
	}

	probs := state.Probabilities()
	scores, err := classifier.BinScores(probs, cfg.NumClasses)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to bin probabilities")
	}

	log.Info().
		Str("path", path).
		Int("features", len(features)).
		Int("num_qubits", state.NumQubits).
		Msg("image encoded")

	for c, score := range scores {
		log.Info().Int("class", c).Float64("mass", score).Msg("bin mass")
	}
	log.Info().Int("argmax", classifier.Argmax(scores)).Msg("raw encoding prediction")
}
