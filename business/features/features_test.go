package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namelab/domain"
)

func TestPhonetic(t *testing.T) {
	f := Phonetic("Sfogella")

	assert.InDelta(t, 0.375, f.VowelRatio, 1e-9)
	assert.Equal(t, 3, f.SyllableCount)
	assert.Equal(t, 2, f.OnsetComplexity)
	assert.True(t, f.HasItalianSuffix)
}

func TestPhoneticEmptyName(t *testing.T) {
	f := Phonetic("")

	assert.Equal(t, 1, f.SyllableCount)
	assert.Equal(t, 0.0, f.VowelRatio)
	assert.Equal(t, 0, f.OnsetComplexity)
	assert.False(t, f.HasItalianSuffix)
}

func TestPhoneticAccentedVowels(t *testing.T) {
	f := Phonetic("Carità")

	assert.Equal(t, 3, f.SyllableCount)
	assert.InDelta(t, 0.5, f.VowelRatio, 1e-9)
}

func TestOrthographic(t *testing.T) {
	f := Orthographic("Stivella")

	assert.Equal(t, 8, f.NameLength)
	assert.Equal(t, "ella_type", f.SuffixClass)
	assert.GreaterOrEqual(t, f.BigramFrequency, 0.0)
	assert.LessOrEqual(t, f.BigramFrequency, 1.0)
}

func TestOrthographicSuffixPrecedence(t *testing.T) {
	cases := map[string]string{
		"Casanova": "ova_type",
		"Bellina":  "ina_type",
		"Vettora":  "ora_type",
		"Homeix":   "compound",
		"Plain":    "other",
	}
	for name, want := range cases {
		assert.Equal(t, want, Orthographic(name).SuffixClass, name)
	}
}

func TestPhoneticCode(t *testing.T) {
	assert.Equal(t, "stfl", PhoneticCode("Stivella"))
	assert.Equal(t, "stfl", PhoneticCode("Stivela"))
	assert.Equal(t, "krs", PhoneticCode("Carezza"))
	assert.Equal(t, "", PhoneticCode("  123 "))
}

func TestPhoneticCodeAccentAndPlural(t *testing.T) {
	// accents fold before coding and a trailing plural s is dropped
	assert.Equal(t, PhoneticCode("Velas"), PhoneticCode("Vèla"))
}

func TestBatchConfusionScores(t *testing.T) {
	scores := BatchConfusionScores([]string{"Stivella", "Stivela", "Carezza"})

	assert.InDelta(t, 1.0/3.0, scores["Stivella"], 1e-9)
	assert.InDelta(t, 1.0/3.0, scores["Stivela"], 1e-9)
	assert.Equal(t, 0.0, scores["Carezza"])
}

func TestBatchConfusionScoresEdges(t *testing.T) {
	assert.Empty(t, BatchConfusionScores(nil))

	single := BatchConfusionScores([]string{"Rivetta"})
	assert.Equal(t, 0.0, single["Rivetta"])
}

func TestVectorOrder(t *testing.T) {
	names := Names()
	require.Len(t, names, Dim)
	assert.Equal(t, "score_D", names[0])
	assert.Equal(t, "score_total", names[5])
	assert.Equal(t, "pattern_A", names[6])
	assert.Equal(t, "has_italian_suffix", names[13])
}

func TestVector(t *testing.T) {
	c := domain.Candidate{
		Name:       "Sfogella",
		Pattern:    domain.PatternB,
		ScoreD:     4,
		ScoreW:     3,
		ScoreP:     5,
		ScoreE:     4,
		ScoreI:     3,
		TotalScore: 19,
	}

	v := Vector(c)

	assert.Equal(t, 4.0, v[0])
	assert.Equal(t, 19.0, v[5])
	assert.Equal(t, [5]float64{0, 1, 0, 0, 0}, [5]float64{v[6], v[7], v[8], v[9], v[10]})
	assert.Equal(t, 8.0, v[11])
	assert.InDelta(t, 0.375, v[12], 1e-9)
	assert.Equal(t, 1.0, v[13])
}

func TestVectorEmptyName(t *testing.T) {
	v := Vector(domain.Candidate{Pattern: domain.PatternA})

	// length denominator floors at one, ratio stays defined
	assert.Equal(t, 1.0, v[11])
	assert.Equal(t, 0.0, v[12])
	assert.Equal(t, 1.0, v[6])
}

func TestVectorDeterministic(t *testing.T) {
	c := domain.Candidate{Name: "Vinaria", Pattern: domain.PatternD, TotalScore: 21}
	assert.Equal(t, Vector(c), Vector(c))
}
