package shadow

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namelab/business/features"
	"namelab/domain"
)

// uniformArtifact predicts 0.5 for every input: zero weights, zero bias.
func uniformArtifact(nSamples int) *Artifact {
	ones := make([]float64, features.Dim)
	for i := range ones {
		ones[i] = 1
	}
	return &Artifact{
		Pipeline: PipelineState{
			Means:   make([]float64, features.Dim),
			Stddevs: ones,
			Weights: make([]float64, features.Dim),
			Fitted:  true,
		},
		Meta: Metadata{ModelVersion: "vtest", NTrainingSamples: nSamples},
	}
}

func TestScoreBounds(t *testing.T) {
	artifact := uniformArtifact(25)
	candidates := []domain.Candidate{
		{Name: "Stivella", Pattern: domain.PatternB, TotalScore: 19},
		{Name: "Carezza", Pattern: domain.PatternA, TotalScore: 12},
	}

	scored, err := Score(artifact, candidates)
	require.NoError(t, err)
	require.Len(t, scored, 2)

	for _, s := range scored {
		assert.GreaterOrEqual(t, s.PViable, 0.0)
		assert.LessOrEqual(t, s.PViable, 1.0)
		assert.LessOrEqual(t, s.CI90Lower, s.PViable)
		assert.GreaterOrEqual(t, s.CI90Upper, s.PViable)
		assert.GreaterOrEqual(t, s.CI90Lower, 0.0)
		assert.LessOrEqual(t, s.CI90Upper, 1.0)
	}
	assert.Equal(t, candidates[0], scored[0].Candidate)
}

func TestScoreBandNarrowsWithN(t *testing.T) {
	cand := []domain.Candidate{{Name: "Stivella", TotalScore: 19}}

	small, err := Score(uniformArtifact(5), cand)
	require.NoError(t, err)
	large, err := Score(uniformArtifact(500), cand)
	require.NoError(t, err)

	assert.Less(t,
		large[0].CI90Upper-large[0].CI90Lower,
		small[0].CI90Upper-small[0].CI90Lower)
}

func TestScoreZeroTrainingSamples(t *testing.T) {
	scored, err := Score(uniformArtifact(0), []domain.Candidate{{Name: "Vinaria"}})
	require.NoError(t, err)
	require.Len(t, scored, 1)

	assert.Less(t, scored[0].CI90Lower, scored[0].CI90Upper)
}

func TestScoreUnfittedArtifact(t *testing.T) {
	artifact := &Artifact{}
	_, err := Score(artifact, []domain.Candidate{{Name: "Stivella"}})
	assert.Error(t, err)
}

func TestScoreFileLeavesSourceUntouched(t *testing.T) {
	pair := writeRoundPair(t, "score", []roundRow{
		{"Stivella", 19, "AVAILABLE"},
		{"Carezza", 15, "TAKEN"},
	})

	before, err := os.ReadFile(pair.CandidatesPath)
	require.NoError(t, err)

	scored, err := ScoreFile(uniformArtifact(10), pair.CandidatesPath)
	require.NoError(t, err)
	assert.Len(t, scored, 2)

	after, err := os.ReadFile(pair.CandidatesPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
