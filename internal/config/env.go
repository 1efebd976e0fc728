// Package config defines environment configuration structs and loaders.
package config

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	ClassifierEnvConfig
	DatasetEnvConfig
	ServerEnvConfig
}

func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ClassifierEnvConfig holds the circuit topology and training budget.
type ClassifierEnvConfig struct {
	ImageSize     int    `env:"IMAGE_SIZE" envDefault:"32"`
	AnsatzReps    int    `env:"ANSATZ_REPS" envDefault:"2"`
	NumClasses    int    `env:"NUM_CLASSES" envDefault:"2"`
	MaxIterations int    `env:"MAX_ITERATIONS" envDefault:"1000"`
	RandomSeed    int64  `env:"RANDOM_SEED" envDefault:"0"`
	MaxQubits     int    `env:"MAX_QUBITS" envDefault:"20"`
	ReportPath    string `env:"REPORT_PATH"`
}

// DatasetEnvConfig points at the training manifest and image data.
type DatasetEnvConfig struct {
	TrainManifest string `env:"TRAIN_MANIFEST" envDefault:"data/train.json"`
	TestImage     string `env:"TEST_IMAGE"`
	DataDir       string `env:"DATA_DIR" envDefault:"data"`
	ClassNames    string `env:"CLASS_NAMES" envDefault:"Spiral,Elliptical"`
}

// ServerEnvConfig configures the inference server.
type ServerEnvConfig struct {
	Address       string `env:"SERVER_HOST" envDefault:"127.0.0.1"`
	Port          int    `env:"SERVER_PORT" envDefault:"8080"`
	BodySizeLimit int    `env:"SERVER_BODY_LIMIT" envDefault:"4194304"`
	ParamsPath    string `env:"PARAMS_PATH" envDefault:"params.json"`
}

// ClassNameList splits the configured class names.
func (c DatasetEnvConfig) ClassNameList() []string {
	parts := strings.Split(c.ClassNames, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
