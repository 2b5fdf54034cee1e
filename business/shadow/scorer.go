package shadow

import (
	"fmt"
	"math"

	"namelab/business/features"
	"namelab/domain"
	"namelab/internal/parser"
	"namelab/pkg/metrics"
)

// z for a 90% two-sided normal interval
const z90 = 1.6449

// ScoredCandidate is one shadow-model prediction. The band is an
// Agresti-Coull 90% interval using the training-set size as effective n.
type ScoredCandidate struct {
	Candidate domain.Candidate `json:"candidate"`
	PViable   float64          `json:"p_viable"`
	CI90Lower float64          `json:"ci90_lower"`
	CI90Upper float64          `json:"ci90_upper"`
}

// Score predicts viability for each candidate. The input slice and its
// candidates are read-only; the source table is never touched.
func Score(artifact *Artifact, candidates []domain.Candidate) ([]ScoredCandidate, error) {
	clf := artifact.Classifier()
	effectiveN := float64(artifact.Meta.NTrainingSamples)
	if effectiveN < 1 {
		effectiveN = 1
	}

	out := make([]ScoredCandidate, 0, len(candidates))
	for _, cand := range candidates {
		vec := features.Vector(cand)
		p, err := clf.PredictProba(vec[:])
		if err != nil {
			return nil, fmt.Errorf("score %q: %w", cand.Name, err)
		}

		lower, upper := agrestiCoull(p, effectiveN)
		out = append(out, ScoredCandidate{
			Candidate: cand,
			PViable:   p,
			CI90Lower: lower,
			CI90Upper: upper,
		})
	}

	metrics.ScoredCandidatesTotal.Add(float64(len(out)))
	return out, nil
}

// ScoreFile parses a candidate table and scores every row in it.
func ScoreFile(artifact *Artifact, candidatesPath string) ([]ScoredCandidate, error) {
	candidates, err := parser.ParseCandidatesFile(candidatesPath)
	if err != nil {
		return nil, fmt.Errorf("parse candidate table: %w", err)
	}
	return Score(artifact, candidates)
}

// agrestiCoull computes the 90% normal-approximation band around p with
// effective sample size n. The band always contains p and stays inside [0, 1].
func agrestiCoull(p, n float64) (lower, upper float64) {
	z2 := z90 * z90
	nTilde := n + z2
	pTilde := (p*n + z2/2) / nTilde
	half := z90 * math.Sqrt(pTilde*(1-pTilde)/nTilde)

	lower = math.Max(0, math.Min(pTilde-half, p))
	upper = math.Min(1, math.Max(pTilde+half, p))
	return lower, upper
}
