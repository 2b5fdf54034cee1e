package shadow

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Metadata is the audit record persisted alongside (and inside) every model
// artifact.
type Metadata struct {
	ModelVersion     string   `json:"model_version"`
	TrainingDate     string   `json:"training_date"`
	NTrainingSamples int      `json:"n_training_samples"`
	NPositive        int      `json:"n_positive"`
	NNegative        int      `json:"n_negative"`
	FeatureNames     []string `json:"feature_names"`
	Seed             int64    `json:"seed"`
	CVBrierMean      *float64 `json:"cv_brier_mean"`
	CVBrierStddev    *float64 `json:"cv_brier_stddev"`
	TrainingRounds   []string `json:"training_rounds"`
}

// Artifact bundles the fitted pipeline with its metadata in a single file,
// so scoring and calibration can never see a version mismatch between the two.
// Immutable once persisted.
type Artifact struct {
	Pipeline PipelineState `json:"pipeline_state"`
	Meta     Metadata      `json:"meta"`
}

// Classifier returns the artifact's fitted pipeline behind the strategy
// interface.
func (a *Artifact) Classifier() Classifier {
	return PipelineFromState(a.Pipeline)
}

// Save writes the artifact as one JSON document, creating parent directories
// as needed.
func (a *Artifact) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

// LoadArtifact reads a persisted artifact.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse artifact: %w", err)
	}
	return &a, nil
}

// WriteMetaFile renders the metadata as human-readable structured text for
// audit, mirroring what is embedded in the artifact.
func (a *Artifact) WriteMetaFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create meta dir: %w", err)
	}

	var b strings.Builder
	m := a.Meta
	fmt.Fprintf(&b, "model_version:      %s\n", m.ModelVersion)
	fmt.Fprintf(&b, "training_date:      %s\n", m.TrainingDate)
	fmt.Fprintf(&b, "n_training_samples: %d\n", m.NTrainingSamples)
	fmt.Fprintf(&b, "n_positive:         %d\n", m.NPositive)
	fmt.Fprintf(&b, "n_negative:         %d\n", m.NNegative)
	fmt.Fprintf(&b, "seed:               %d\n", m.Seed)
	if m.CVBrierMean != nil && m.CVBrierStddev != nil {
		fmt.Fprintf(&b, "cv_brier:           %.4f +/- %.4f\n", *m.CVBrierMean, *m.CVBrierStddev)
	} else {
		fmt.Fprintf(&b, "cv_brier:           skipped\n")
	}
	fmt.Fprintf(&b, "training_rounds:    %s\n", strings.Join(m.TrainingRounds, ", "))
	fmt.Fprintf(&b, "feature_names:      %s\n", strings.Join(m.FeatureNames, ", "))

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write meta file: %w", err)
	}
	return nil
}
