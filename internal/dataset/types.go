// Package dataset loads the labeled galaxy images the classifier trains and
// evaluates on. Datasets are described by a JSON manifest instead of paths
// hardcoded in the program.
package dataset

import "fmt"

// Sample is one manifest entry: an image location and its class label.
// Path may be a filesystem path (absolute or relative to the data directory)
// or an http(s) URL.
type Sample struct {
	Path  string `json:"path"`
	Label int    `json:"label"`
}

// Manifest enumerates the samples and the class names the labels index into.
type Manifest struct {
	ClassNames []string `json:"class_names"`
	Samples    []Sample `json:"samples"`
}

// Validate checks every label against the class name list.
func (m *Manifest) Validate() error {
	if len(m.ClassNames) < 2 {
		return fmt.Errorf("dataset: manifest needs at least two class names, got %d", len(m.ClassNames))
	}
	if len(m.Samples) == 0 {
		return fmt.Errorf("dataset: manifest has no samples")
	}
	for i, s := range m.Samples {
		if s.Path == "" {
			return fmt.Errorf("dataset: sample %d has no path", i)
		}
		if s.Label < 0 || s.Label >= len(m.ClassNames) {
			return fmt.Errorf("dataset: sample %d label %d out of range for %d classes", i, s.Label, len(m.ClassNames))
		}
	}
	return nil
}
