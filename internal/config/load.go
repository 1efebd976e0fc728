package config

import (
	"os"
	"strconv"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiWithDefault(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func LoadClassifierEnv() (*ClassifierEnvConfig, error) {
	cfg := &ClassifierEnvConfig{
		ImageSize:     atoiWithDefault(getenv("IMAGE_SIZE", "32"), 32),
		AnsatzReps:    atoiWithDefault(getenv("ANSATZ_REPS", "2"), 2),
		NumClasses:    atoiWithDefault(getenv("NUM_CLASSES", "2"), 2),
		MaxIterations: atoiWithDefault(getenv("MAX_ITERATIONS", "1000"), 1000),
		MaxQubits:     atoiWithDefault(getenv("MAX_QUBITS", "20"), 20),
		ReportPath:    getenv("REPORT_PATH", ""),
	}
	if seed, err := strconv.ParseInt(getenv("RANDOM_SEED", "0"), 10, 64); err == nil {
		cfg.RandomSeed = seed
	}
	return cfg, nil
}

func LoadDatasetEnv() (*DatasetEnvConfig, error) {
	cfg := &DatasetEnvConfig{
		TrainManifest: getenv("TRAIN_MANIFEST", "data/train.json"),
		TestImage:     getenv("TEST_IMAGE", ""),
		DataDir:       getenv("DATA_DIR", "data"),
		ClassNames:    getenv("CLASS_NAMES", "Spiral,Elliptical"),
	}
	return cfg, nil
}
