package shadow

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namelab/business/features"
	"namelab/domain"
)

type roundRow struct {
	name   string
	total  int
	status string // AVAILABLE, TAKEN, empty = absent from the list
}

// writeRoundPair renders one round's candidate table and availability list
// into a temp dir and returns the artifact pair.
func writeRoundPair(t *testing.T, label string, rows []roundRow) ArtifactPair {
	t.Helper()
	dir := t.TempDir()

	var table strings.Builder
	table.WriteString("| Name | Pattern | D | W | P | E | I | Score |\n")
	table.WriteString("|------|---------|---|---|---|---|---|-------|\n")
	var avail strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&table, "| %s | A | 3 | 3 | 3 | 3 | 3 | %d |\n", r.name, r.total)
		if r.status != "" {
			fmt.Fprintf(&avail, "%s %s\n", r.status, r.name)
		}
	}

	candPath := filepath.Join(dir, label+"_candidates.md")
	availPath := filepath.Join(dir, label+"_availability.txt")
	require.NoError(t, os.WriteFile(candPath, []byte(table.String()), 0o644))
	require.NoError(t, os.WriteFile(availPath, []byte(avail.String()), 0o644))

	return ArtifactPair{CandidatesPath: candPath, AvailabilityPath: availPath, RoundLabel: label}
}

func TestProxyLabel(t *testing.T) {
	avail := map[string]domain.Availability{
		"stivella": domain.AvailabilityAvailable,
		"carezza":  domain.AvailabilityTaken,
		"vinaria":  domain.AvailabilityUnknown,
	}

	label, ok := ProxyLabel(domain.Candidate{Name: "Stivella", TotalScore: 19}, avail)
	assert.True(t, ok)
	assert.Equal(t, 1, label)

	// available but under the score threshold: excluded
	_, ok = ProxyLabel(domain.Candidate{Name: "Stivella", TotalScore: 17}, avail)
	assert.False(t, ok)

	label, ok = ProxyLabel(domain.Candidate{Name: "Carezza", TotalScore: 25}, avail)
	assert.True(t, ok)
	assert.Equal(t, 0, label)

	_, ok = ProxyLabel(domain.Candidate{Name: "Vinaria", TotalScore: 20}, avail)
	assert.False(t, ok)

	_, ok = ProxyLabel(domain.Candidate{Name: "Ghost", TotalScore: 20}, avail)
	assert.False(t, ok)

	// lookup normalizes case and whitespace
	label, ok = ProxyLabel(domain.Candidate{Name: "  STIVELLA ", TotalScore: 18}, avail)
	assert.True(t, ok)
	assert.Equal(t, 1, label)
}

func TestLoadProxyDataset(t *testing.T) {
	pair := writeRoundPair(t, "round1", []roundRow{
		{"Stivella", 19, "AVAILABLE"},
		{"Carezza", 17, "TAKEN"},
		{"Vinaria", 16, "AVAILABLE"}, // under threshold, excluded
		{"Rivetta", 20, ""},          // not in the list, excluded
	})

	ds, err := LoadProxyDataset([]ArtifactPair{pair})
	require.NoError(t, err)

	require.Equal(t, 2, ds.Len())
	assert.Equal(t, []int{1, 0}, ds.Y)
	assert.Equal(t, []string{"round1", "round1"}, ds.RoundLabels)
	assert.Equal(t, features.Names(), ds.FeatureNames)
	assert.Len(t, ds.X[0], features.Dim)
}

func TestLoadProxyDatasetSkipsMissingCandidates(t *testing.T) {
	good := writeRoundPair(t, "round2", []roundRow{
		{"Stivella", 19, "AVAILABLE"},
	})
	missing := ArtifactPair{
		CandidatesPath:   filepath.Join(t.TempDir(), "absent.md"),
		AvailabilityPath: good.AvailabilityPath,
		RoundLabel:       "ghost",
	}

	ds, err := LoadProxyDataset([]ArtifactPair{missing, good})
	require.NoError(t, err)

	assert.Equal(t, 1, ds.Len())
	assert.Equal(t, []string{"round2"}, ds.RoundLabels)
}

func TestLoadProxyDatasetMissingAvailability(t *testing.T) {
	pair := writeRoundPair(t, "round3", []roundRow{
		{"Stivella", 19, "AVAILABLE"},
	})
	pair.AvailabilityPath = filepath.Join(t.TempDir(), "absent.txt")

	// every candidate stays unlabeled, so the dataset is empty
	ds, err := LoadProxyDataset([]ArtifactPair{pair})
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
}
