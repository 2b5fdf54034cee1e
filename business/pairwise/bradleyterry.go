// Package pairwise infers relative strength scores for candidate names from
// pairwise human comparisons, using Bradley-Terry minorization-maximization.
package pairwise

import "math"

// Winner values for a Comparison.
const (
	WinnerA   = "a"
	WinnerB   = "b"
	WinnerTie = "tie"
)

// Comparison is one human judgment between two candidate names.
type Comparison struct {
	NameA  string `json:"name_a"`
	NameB  string `json:"name_b"`
	Winner string `json:"winner"`
}

const (
	mmIterations = 50
	// below this there is not enough signal to separate anyone
	minComparisons = 3
	strengthFloor  = 1e-6
)

// Strengths returns a Bradley-Terry strength score per name. With fewer than
// three comparisons, or an empty name set, every name scores a uniform 1.0.
// A tie counts as half a win for each side.
func Strengths(names []string, comparisons []Comparison) map[string]float64 {
	scores := make(map[string]float64, len(names))
	if len(names) == 0 {
		return scores
	}

	for _, n := range names {
		scores[n] = 1.0
	}
	if len(comparisons) < minComparisons {
		return scores
	}

	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}

	n := len(names)
	wins := make([]float64, n)
	games := make([][]float64, n)
	for i := range games {
		games[i] = make([]float64, n)
	}

	for _, cmp := range comparisons {
		a, okA := index[cmp.NameA]
		b, okB := index[cmp.NameB]
		if !okA || !okB || a == b {
			continue
		}

		games[a][b]++
		games[b][a]++

		switch cmp.Winner {
		case WinnerA:
			wins[a]++
		case WinnerB:
			wins[b]++
		case WinnerTie:
			wins[a] += 0.5
			wins[b] += 0.5
		}
	}

	strengths := make([]float64, n)
	for i := range strengths {
		strengths[i] = 1.0
	}

	for iter := 0; iter < mmIterations; iter++ {
		next := make([]float64, n)
		for i := 0; i < n; i++ {
			denom := 0.0
			for j := 0; j < n; j++ {
				if i == j || games[i][j] == 0 {
					continue
				}
				denom += games[i][j] / (strengths[i] + strengths[j])
			}
			if denom == 0 {
				// no games for this name this round; keep current value
				next[i] = strengths[i]
				continue
			}
			next[i] = wins[i] / denom
			if next[i] < strengthFloor {
				next[i] = strengthFloor
			}
		}

		normalizeGeometricMean(next)
		strengths = next
	}

	for name, i := range index {
		scores[name] = strengths[i]
	}
	return scores
}

// normalizeGeometricMean rescales so the geometric mean of all strengths is 1.
func normalizeGeometricMean(xs []float64) {
	if len(xs) == 0 {
		return
	}
	logSum := 0.0
	for _, x := range xs {
		logSum += math.Log(x)
	}
	scale := math.Exp(logSum / float64(len(xs)))
	if scale == 0 {
		return
	}
	for i := range xs {
		xs[i] /= scale
	}
}
