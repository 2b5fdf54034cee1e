package shadow

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namelab/business/features"
)

func TestTrainSmallDataset(t *testing.T) {
	pair := writeRoundPair(t, "r1", []roundRow{
		{"Stivella", 19, "AVAILABLE"},
		{"Carezza", 17, "TAKEN"},
		{"Vinaria", 21, "AVAILABLE"},
		{"Rivetta", 16, "TAKEN"},
	})

	artifact, err := Train([]ArtifactPair{pair}, TrainOptions{Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, "v1", artifact.Meta.ModelVersion)
	assert.Equal(t, 4, artifact.Meta.NTrainingSamples)
	assert.Equal(t, 2, artifact.Meta.NPositive)
	assert.Equal(t, 2, artifact.Meta.NNegative)
	assert.Equal(t, features.Names(), artifact.Meta.FeatureNames)
	assert.Equal(t, []string{"r1"}, artifact.Meta.TrainingRounds)
	assert.True(t, artifact.Pipeline.Fitted)

	// too few samples per class for cross-validation
	assert.Nil(t, artifact.Meta.CVBrierMean)
	assert.Nil(t, artifact.Meta.CVBrierStddev)
}

func TestTrainRunsCrossValidation(t *testing.T) {
	rows := make([]roundRow, 0, 16)
	for i := 0; i < 8; i++ {
		rows = append(rows, roundRow{fmt.Sprintf("Avanti%c", 'a'+i), 19 + i%3, "AVAILABLE"})
		rows = append(rows, roundRow{fmt.Sprintf("Blocco%c", 'a'+i), 14 + i%3, "TAKEN"})
	}
	pair := writeRoundPair(t, "big", rows)

	artifact, err := Train([]ArtifactPair{pair}, TrainOptions{ModelVersion: "v2", Seed: 7})
	require.NoError(t, err)

	assert.Equal(t, "v2", artifact.Meta.ModelVersion)
	assert.Equal(t, 16, artifact.Meta.NTrainingSamples)
	require.NotNil(t, artifact.Meta.CVBrierMean)
	require.NotNil(t, artifact.Meta.CVBrierStddev)
	assert.GreaterOrEqual(t, *artifact.Meta.CVBrierMean, 0.0)
	assert.LessOrEqual(t, *artifact.Meta.CVBrierMean, 1.0)
}

func TestTrainDegenerateSingleClass(t *testing.T) {
	pair := writeRoundPair(t, "allTaken", []roundRow{
		{"Stivella", 19, "TAKEN"},
		{"Carezza", 21, "TAKEN"},
	})

	artifact, err := Train([]ArtifactPair{pair}, TrainOptions{})
	require.NoError(t, err)

	// real counts are kept even though the fit used placeholder data
	assert.Equal(t, 2, artifact.Meta.NTrainingSamples)
	assert.Equal(t, 0, artifact.Meta.NPositive)
	assert.Equal(t, 2, artifact.Meta.NNegative)

	prob, err := artifact.Classifier().PredictProba(make([]float64, features.Dim))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, prob, 0.0)
	assert.LessOrEqual(t, prob, 1.0)
}

func TestTrainPersistsArtifact(t *testing.T) {
	pair := writeRoundPair(t, "persist", []roundRow{
		{"Stivella", 19, "AVAILABLE"},
		{"Carezza", 17, "TAKEN"},
	})

	dir := t.TempDir()
	artifactPath := filepath.Join(dir, "model", "shadow_model.json")
	metaPath := filepath.Join(dir, "model", "shadow_model_meta.txt")

	trained, err := Train([]ArtifactPair{pair}, TrainOptions{
		ModelVersion: "v3",
		ArtifactPath: artifactPath,
		MetaPath:     metaPath,
	})
	require.NoError(t, err)

	loaded, err := LoadArtifact(artifactPath)
	require.NoError(t, err)
	assert.Equal(t, trained.Meta, loaded.Meta)
	assert.Equal(t, trained.Pipeline, loaded.Pipeline)

	meta, err := os.ReadFile(metaPath)
	require.NoError(t, err)
	assert.Contains(t, string(meta), "model_version:      v3")
	assert.Contains(t, string(meta), "cv_brier:           skipped")
}

func TestLoadArtifactErrors(t *testing.T) {
	_, err := LoadArtifact(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = LoadArtifact(bad)
	assert.Error(t, err)
}
