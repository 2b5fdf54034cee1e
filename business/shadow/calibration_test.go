package shadow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namelab/business/features"
)

func uniformDataset(y []int) Dataset {
	X := make([][]float64, len(y))
	for i := range X {
		X[i] = make([]float64, features.Dim)
	}
	return Dataset{X: X, Y: y, FeatureNames: features.Names()}
}

func TestCalibrateUniformPredictor(t *testing.T) {
	artifact := uniformArtifact(20)
	ds := uniformDataset([]int{1, 0, 1, 0})

	report, err := Calibrate(artifact, ds)
	require.NoError(t, err)

	assert.Equal(t, "vtest", report.ModelVersion)
	assert.Equal(t, 4, report.NCalibrationSamples)
	require.NotNil(t, report.BrierScore)
	require.NotNil(t, report.LogLoss)

	// constant 0.5 predictions: Brier 0.25, log loss ln 2
	assert.InDelta(t, 0.25, *report.BrierScore, 1e-9)
	assert.InDelta(t, math.Ln2, *report.LogLoss, 1e-9)
	assert.True(t, report.PassGate)

	require.Len(t, report.ReliabilityBins, 1)
	bin := report.ReliabilityBins[0]
	assert.Equal(t, 4, bin.N)
	assert.InDelta(t, 0.5, bin.MeanPredicted, 1e-9)
	assert.InDelta(t, 0.5, bin.PositiveFraction, 1e-9)
}

func TestCalibrateEmptyDataset(t *testing.T) {
	report, err := Calibrate(uniformArtifact(20), Dataset{})
	require.NoError(t, err)

	assert.Equal(t, 0, report.NCalibrationSamples)
	assert.Nil(t, report.BrierScore)
	assert.Nil(t, report.LogLoss)
	assert.Empty(t, report.ReliabilityBins)
	assert.False(t, report.PassGate)
	assert.Contains(t, report.Note, "total_score >= 18")
}

func TestCalibrateTrainedModelPasses(t *testing.T) {
	pair := writeRoundPair(t, "calib", []roundRow{
		{"Stivella", 21, "AVAILABLE"},
		{"Vinaria", 20, "AVAILABLE"},
		{"Avanti", 19, "AVAILABLE"},
		{"Carezza", 14, "TAKEN"},
		{"Blocco", 13, "TAKEN"},
		{"Rivetta", 12, "TAKEN"},
	})

	artifact, err := Train([]ArtifactPair{pair}, TrainOptions{})
	require.NoError(t, err)

	ds, err := LoadProxyDataset([]ArtifactPair{pair})
	require.NoError(t, err)

	report, err := Calibrate(artifact, ds)
	require.NoError(t, err)

	require.NotNil(t, report.BrierScore)
	assert.Less(t, *report.BrierScore, DefaultBrierGate)
	assert.True(t, report.PassGate)
}

func TestRenderVerdicts(t *testing.T) {
	report, err := Calibrate(uniformArtifact(20), uniformDataset([]int{1, 0}))
	require.NoError(t, err)
	assert.Contains(t, report.Render(), "PASS")

	empty, err := Calibrate(uniformArtifact(20), Dataset{})
	require.NoError(t, err)
	out := empty.Render()
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "n/a")
	assert.Contains(t, out, "Note:")
}
