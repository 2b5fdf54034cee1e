package features

import (
	"strings"

	"namelab/domain"
)

// Dim is the size of the model feature vector.
const Dim = 14

// Names returns the feature labels in vector order. The order is load-bearing:
// persisted model weights are indexed by it.
func Names() []string {
	return []string{
		"score_D",
		"score_W",
		"score_P",
		"score_E",
		"score_I",
		"score_total",
		"pattern_A",
		"pattern_B",
		"pattern_C",
		"pattern_D",
		"pattern_E",
		"name_length",
		"vowel_ratio",
		"has_italian_suffix",
	}
}

// Vector maps a scored candidate to the fixed-order feature vector.
// Reproducible bit-for-bit for the same input.
func Vector(c domain.Candidate) [Dim]float64 {
	name := strings.TrimSpace(c.Name)
	lower := []rune(strings.ToLower(name))

	// empty names still need a defined length denominator
	n := len([]rune(name))
	if n == 0 {
		n = 1
	}

	vowelCount := 0
	for _, r := range lower {
		if isVowel(r) {
			vowelCount++
		}
	}

	italian := 0.0
	if hasItalianSuffix(string(lower)) {
		italian = 1.0
	}

	var v [Dim]float64
	v[0] = float64(c.ScoreD)
	v[1] = float64(c.ScoreW)
	v[2] = float64(c.ScoreP)
	v[3] = float64(c.ScoreE)
	v[4] = float64(c.ScoreI)
	v[5] = float64(c.TotalScore)
	for i, p := range domain.AllPatterns() {
		if c.Pattern == p {
			v[6+i] = 1.0
		}
	}
	v[11] = float64(n)
	v[12] = float64(vowelCount) / float64(n)
	v[13] = italian

	return v
}
