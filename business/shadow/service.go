package shadow

import (
	"context"
	"fmt"

	"namelab/domain"
)

// Service is the orchestrating entry point around train/score/calibrate.
// It owns the artifact location; the artifact itself stays immutable and is
// re-read per call, so a concurrent retrain can never be half-observed.
type Service struct {
	artifactPath string
	metaPath     string
	seed         int64
}

func NewService(artifactPath, metaPath string, seed int64) *Service {
	return &Service{
		artifactPath: artifactPath,
		metaPath:     metaPath,
		seed:         seed,
	}
}

// Train fits and persists a new model version.
func (s *Service) Train(ctx context.Context, pairs []ArtifactPair, version string) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return Train(pairs, TrainOptions{
		ModelVersion: version,
		Seed:         s.seed,
		ArtifactPath: s.artifactPath,
		MetaPath:     s.metaPath,
	})
}

// Score serves viability probabilities from the persisted artifact.
func (s *Service) Score(ctx context.Context, candidates []domain.Candidate) ([]ScoredCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	artifact, err := LoadArtifact(s.artifactPath)
	if err != nil {
		return nil, err
	}
	return Score(artifact, candidates)
}

// Calibrate evaluates the persisted artifact against labeled historical
// rounds.
func (s *Service) Calibrate(ctx context.Context, pairs []ArtifactPair) (CalibrationReport, error) {
	if err := ctx.Err(); err != nil {
		return CalibrationReport{}, fmt.Errorf("context error: %w", err)
	}

	artifact, err := LoadArtifact(s.artifactPath)
	if err != nil {
		return CalibrationReport{}, err
	}

	ds, err := LoadProxyDataset(pairs)
	if err != nil {
		return CalibrationReport{}, err
	}
	return Calibrate(artifact, ds)
}
