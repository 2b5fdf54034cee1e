// Package allocation decides how many candidate names to generate per
// structural pattern in the next round. Each pattern is one arm of a
// Thompson-sampling bandit whose unknown availability rate is modeled as a
// Beta posterior, updated additively from round outcomes.
package allocation

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"namelab/domain"
)

// Controller holds the per-pattern posterior for one campaign. It has a
// single steady state: created once, updated after every round, never
// terminal. Not safe for concurrent use; callers own synchronization.
type Controller struct {
	alphas           map[domain.Pattern]float64
	betas            map[domain.Pattern]float64
	explorationFloor float64
	seed             int64
	rng              *rand.Rand
}

// New creates a controller with Beta(2,2) priors on every arm and the
// default 10% exploration floor.
func New(seed int64) *Controller {
	return NewWithFloor(seed, defaultExplorationFloor)
}

func NewWithFloor(seed int64, explorationFloor float64) *Controller {
	alphas, betas := newPriorBeliefs()
	return &Controller{
		alphas:           alphas,
		betas:            betas,
		explorationFloor: explorationFloor,
		seed:             seed,
		rng:              rand.New(rand.NewSource(uint64(seed))),
	}
}

// Update folds one round outcome for a pattern into its posterior.
// Rejects negative counts and nChecked < nAvailable outright: silently
// accepting either would corrupt the posterior.
func (c *Controller) Update(pattern domain.Pattern, nAvailable, nChecked int) error {
	if _, ok := c.alphas[pattern]; !ok {
		return fmt.Errorf("unknown pattern %q", pattern)
	}
	if nAvailable < 0 || nChecked < 0 {
		return fmt.Errorf("negative outcome counts: available=%d checked=%d", nAvailable, nChecked)
	}
	if nChecked < nAvailable {
		return fmt.Errorf("checked %d is fewer than available %d", nChecked, nAvailable)
	}

	c.alphas[pattern] += float64(nAvailable)
	c.betas[pattern] += float64(nChecked - nAvailable)

	posteriorUpdatesTotal.WithLabelValues(string(pattern)).Inc()
	return nil
}

// Allocate splits totalN generation slots across the five patterns.
// One Beta sample is drawn per arm; every arm is guaranteed at least
// floor(explorationFloor * totalN) slots, the remainder goes proportionally
// to the sampled values with largest-remainder rounding (ties broken by arm
// order). The result always sums to exactly totalN.
func (c *Controller) Allocate(totalN int) (map[domain.Pattern]int, error) {
	if totalN < 0 {
		return nil, fmt.Errorf("cannot allocate a negative total: %d", totalN)
	}

	patterns := domain.AllPatterns()
	samples := make([]float64, len(patterns))
	for i, p := range patterns {
		dist := distuv.Beta{Alpha: c.alphas[p], Beta: c.betas[p], Src: c.rng}
		samples[i] = dist.Rand()
	}

	floorAmt := int(c.explorationFloor * float64(totalN))
	reserved := floorAmt * len(patterns)

	alloc := make(map[domain.Pattern]int, len(patterns))

	if reserved > totalN {
		allocateEvenSplit(alloc, patterns, samples, totalN)
		allocationRoundsTotal.Inc()
		return alloc, nil
	}

	remainder := totalN - reserved

	sum := 0.0
	for _, s := range samples {
		sum += s
	}

	type share struct {
		idx  int
		frac float64
	}
	shares := make([]share, len(patterns))
	distributed := 0
	for i, p := range patterns {
		exact := samples[i] / sum * float64(remainder)
		whole := int(exact)
		alloc[p] = floorAmt + whole
		distributed += whole
		shares[i] = share{idx: i, frac: exact - float64(whole)}
	}

	// leftover units to the largest fractional remainders, arm order on ties
	sort.SliceStable(shares, func(a, b int) bool {
		return shares[a].frac > shares[b].frac
	})
	leftover := remainder - distributed
	for i := 0; i < leftover; i++ {
		alloc[patterns[shares[i%len(shares)].idx]]++
	}

	// drift safety: any residual mismatch lands on the highest-sampled arm
	total := 0
	for _, p := range patterns {
		total += alloc[p]
	}
	if total != totalN {
		alloc[patterns[argmax(samples)]] += totalN - total
	}

	allocationRoundsTotal.Inc()
	return alloc, nil
}

// allocateEvenSplit is the fallback when the floor reservation alone exceeds
// totalN: even base share, leftover units to the highest-sampled arms.
func allocateEvenSplit(alloc map[domain.Pattern]int, patterns []domain.Pattern, samples []float64, totalN int) {
	base := totalN / len(patterns)
	leftover := totalN % len(patterns)

	order := make([]int, len(patterns))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return samples[order[a]] > samples[order[b]]
	})

	for _, p := range patterns {
		alloc[p] = base
	}
	for i := 0; i < leftover; i++ {
		alloc[patterns[order[i]]]++
	}
}

func argmax(xs []float64) int {
	best := 0
	for i, x := range xs {
		if x > xs[best] {
			best = i
		}
	}
	return best
}

// State snapshots the posterior as the flat serializable record.
func (c *Controller) State() State {
	alphas := make(map[domain.Pattern]float64, len(c.alphas))
	betas := make(map[domain.Pattern]float64, len(c.betas))
	for p, a := range c.alphas {
		alphas[p] = a
	}
	for p, b := range c.betas {
		betas[p] = b
	}
	return State{Alphas: alphas, Betas: betas, Seed: c.seed}
}

// FromState rebuilds a controller from a stored snapshot. The sampler is
// re-seeded from the stored seed; consumed-draw position is not restored.
func FromState(s State) *Controller {
	c := NewWithFloor(s.Seed, defaultExplorationFloor)
	for p := range c.alphas {
		if a, ok := s.Alphas[p]; ok && a > 0 {
			c.alphas[p] = a
		}
		if b, ok := s.Betas[p]; ok && b > 0 {
			c.betas[p] = b
		}
	}
	return c
}
