package dataset

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/astroqml/galaxyq/internal/classifier"
	"github.com/astroqml/galaxyq/internal/preprocess"
)

// Loader resolves manifest samples into feature vectors.
type Loader struct {
	DataDir   string
	ImageSize int
	fetcher   *Fetcher
}

func NewLoader(dataDir string, imageSize int) *Loader {
	return &Loader{DataDir: dataDir, ImageSize: imageSize, fetcher: NewFetcher()}
}

// LoadExamples preprocesses every manifest sample into a labeled feature
// vector. A single bad sample fails the whole load; partial training sets
// would silently skew the objective.
func (l *Loader) LoadExamples(m *Manifest) ([]classifier.Example, error) {
	examples := make([]classifier.Example, 0, len(m.Samples))
	for i, s := range m.Samples {
		features, err := l.loadFeatures(s.Path)
		if err != nil {
			return nil, fmt.Errorf("dataset: sample %d (%s): %w", i, s.Path, err)
		}
		examples = append(examples, classifier.Example{Features: features, Label: s.Label})
		log.Debug().Str("path", s.Path).Int("label", s.Label).Msg("sample loaded")
	}
	return examples, nil
}

// LoadFeatures resolves a single image location the same way manifest samples
// are resolved.
func (l *Loader) LoadFeatures(path string) ([]float64, error) {
	return l.loadFeatures(path)
}

func (l *Loader) loadFeatures(path string) ([]float64, error) {
	if isRemote(path) {
		data, err := l.fetcher.FetchBytes(path)
		if err != nil {
			return nil, err
		}
		return preprocess.DecodeFeatures(data, l.ImageSize)
	}

	if !filepath.IsAbs(path) && l.DataDir != "" {
		path = filepath.Join(l.DataDir, path)
	}
	return preprocess.LoadFeatures(path, l.ImageSize)
}
