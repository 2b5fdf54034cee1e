// Package planner answers the sizing question "how many candidates must we
// generate so that, with target confidence, at least K survive the registry
// check?" under a Binomial model of per-name yield.
package planner

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// MaxN caps the linear search; a plan that needs more samples than this is
// reported as infeasible rather than searched forever.
const MaxN = 10000

// delta applied to the yield estimate for the pessimistic/optimistic bounds
const ciYieldDelta = 0.10

var ErrEmptyHistory = errors.New("yield history is empty")

// YieldPlan is a computed sizing recommendation. Purely derived; recomputed
// per request, never mutated.
type YieldPlan struct {
	RecommendedN       int     `json:"recommended_n"`
	PYield             float64 `json:"p_yield"`
	K                  int     `json:"k"`
	TargetConfidence   float64 `json:"target_confidence"`
	AchievedConfidence float64 `json:"achieved_confidence"`
	CI90LowerN         int     `json:"ci90_lower_n"`
	CI90UpperN         int     `json:"ci90_upper_n"`
	Feasible           bool    `json:"feasible"`
}

// MinNForConfidence finds the minimum n >= k with
// P(Binomial(n, p) >= k) >= confidence, searching linearly up to MaxN.
func MinNForConfidence(pYield float64, k int, confidence float64) (n int, achieved float64, feasible bool, err error) {
	if pYield <= 0 || pYield >= 1 {
		return 0, 0, false, fmt.Errorf("p_yield must be in (0, 1), got %v", pYield)
	}
	if confidence <= 0 || confidence >= 1 {
		return 0, 0, false, fmt.Errorf("target confidence must be in (0, 1), got %v", confidence)
	}
	if k < 1 {
		return 0, 0, false, fmt.Errorf("target survivor count must be positive, got %d", k)
	}

	for n = k; n <= MaxN; n++ {
		achieved = probAtLeast(n, pYield, k)
		if achieved >= confidence {
			return n, achieved, true, nil
		}
	}

	return MaxN, probAtLeast(MaxN, pYield, k), false, nil
}

// probAtLeast is P(Binomial(n, p) >= k).
func probAtLeast(n int, p float64, k int) float64 {
	dist := distuv.Binomial{N: float64(n), P: p}
	// Survival(x) = P(X > x); integer support makes this P(X >= k)
	return dist.Survival(float64(k - 1))
}

// PlanFromAssumedYield builds a full plan around an assumed per-name yield.
// The CI bounds re-run the same search at p -/+ 0.10, clamped to (0.001, 0.999).
func PlanFromAssumedYield(pYield float64, k int, confidence float64) (YieldPlan, error) {
	return buildPlan(pYield, k, confidence, 0.001, 0.999)
}

// PlanFromHistory derives the yield from observed round yields (arithmetic
// mean) and plans exactly as PlanFromAssumedYield, clamping to (0.01, 0.99).
// An empty history is an explicit error: there is no sensible default yield.
func PlanFromHistory(history []float64, k int, confidence float64) (YieldPlan, error) {
	if len(history) == 0 {
		return YieldPlan{}, ErrEmptyHistory
	}

	sum := 0.0
	for _, y := range history {
		sum += y
	}
	mean := sum / float64(len(history))

	return buildPlan(clamp(mean, 0.01, 0.99), k, confidence, 0.01, 0.99)
}

func buildPlan(pYield float64, k int, confidence, clampLo, clampHi float64) (YieldPlan, error) {
	n, achieved, feasible, err := MinNForConfidence(pYield, k, confidence)
	if err != nil {
		return YieldPlan{}, err
	}

	// pessimistic yield needs more samples, optimistic fewer
	lowerN, _, _, err := MinNForConfidence(clamp(pYield-ciYieldDelta, clampLo, clampHi), k, confidence)
	if err != nil {
		return YieldPlan{}, err
	}
	upperN, _, _, err := MinNForConfidence(clamp(pYield+ciYieldDelta, clampLo, clampHi), k, confidence)
	if err != nil {
		return YieldPlan{}, err
	}

	return YieldPlan{
		RecommendedN:       n,
		PYield:             pYield,
		K:                  k,
		TargetConfidence:   confidence,
		AchievedConfidence: achieved,
		CI90LowerN:         lowerN,
		CI90UpperN:         upperN,
		Feasible:           feasible,
	}, nil
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
