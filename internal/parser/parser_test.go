package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namelab/domain"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const candidateTable = `# Round 3 candidates

Some prose before the table.

| Name     | Pattern | D | W | P | E | I | Score |
|----------|---------|---|---|---|---|---|-------|
| Stivella | B       | 4 | 3 | 5 | 4 | 3 | 19    |
| Carezza  | a       | 3 | 4 | 4 | 3 | 3 | 17    |
| 123bad   | C       | 1 | 1 | 1 | 1 | 1 | 5     |
|          | D       | 2 | 2 | 2 | 2 | 2 | 10    |
| Vinaria  | D       | 5 | x | 4 | 4 | 4 | 21    |

trailing prose ends the table

| Name    | Pattern | D | W | P | E | I | Score |
|---------|---------|---|---|---|---|---|-------|
| Rivetta | E       | 3 | 3 | 3 | 3 | 3 | 15    |
`

func TestParseCandidatesFile(t *testing.T) {
	path := writeTemp(t, "candidates.md", candidateTable)

	got, err := ParseCandidatesFile(path)
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, domain.Candidate{
		Name: "Stivella", Pattern: domain.PatternB,
		ScoreD: 4, ScoreW: 3, ScoreP: 5, ScoreE: 4, ScoreI: 3, TotalScore: 19,
	}, got[0])

	// lowercase pattern letters are accepted
	assert.Equal(t, domain.PatternA, got[1].Pattern)

	// unparseable score cells default to zero
	assert.Equal(t, "Vinaria", got[2].Name)
	assert.Equal(t, 0, got[2].ScoreW)
	assert.Equal(t, 21, got[2].TotalScore)

	// second table in the same file
	assert.Equal(t, "Rivetta", got[3].Name)
}

func TestParseCandidatesFileMissingColumns(t *testing.T) {
	path := writeTemp(t, "partial.md", `| Name | Pattern | Score |
|------|---------|-------|
| Solo | A       | 12    |
`)

	got, err := ParseCandidatesFile(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseCandidatesFileNoTable(t *testing.T) {
	path := writeTemp(t, "empty.md", "just prose\nno tables here\n")

	got, err := ParseCandidatesFile(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseCandidatesFileMissing(t *testing.T) {
	_, err := ParseCandidatesFile(filepath.Join(t.TempDir(), "absent.md"))
	assert.Error(t, err)
}

func TestParseAvailabilityFile(t *testing.T) {
	path := writeTemp(t, "availability.txt", `AVAILABLE Stivella
TAKEN Carezza
available Vinaria
PENDING Rivetta
AVAILABLE Casa Nova

TAKEN
`)

	got, err := ParseAvailabilityFile(path)
	require.NoError(t, err)
	require.Len(t, got, 5)

	assert.Equal(t, domain.AvailabilityAvailable, got["stivella"])
	assert.Equal(t, domain.AvailabilityTaken, got["carezza"])
	assert.Equal(t, domain.AvailabilityAvailable, got["vinaria"])
	assert.Equal(t, domain.AvailabilityUnknown, got["rivetta"])
	assert.Equal(t, domain.AvailabilityAvailable, got["casa nova"])
}

func TestParseAvailabilityFileMissing(t *testing.T) {
	_, err := ParseAvailabilityFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
