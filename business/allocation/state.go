package allocation

import "namelab/domain"

const (
	// Beta(2,2) prior: mildly informative, keeps early rounds from
	// collapsing onto one pattern.
	priorAlpha = 2.0
	priorBeta  = 2.0

	// share of every allocation reserved per arm regardless of posterior
	defaultExplorationFloor = 0.10
)

// State is the flat serializable record for one campaign's posterior.
// Reconstruction re-seeds the sampler from Seed; the mid-stream draw position
// is not preserved, which is a documented limitation of this contract.
type State struct {
	Alphas map[domain.Pattern]float64 `json:"alphas"`
	Betas  map[domain.Pattern]float64 `json:"betas"`
	Seed   int64                      `json:"seed"`
}

func newPriorBeliefs() (map[domain.Pattern]float64, map[domain.Pattern]float64) {
	alphas := make(map[domain.Pattern]float64, len(domain.AllPatterns()))
	betas := make(map[domain.Pattern]float64, len(domain.AllPatterns()))
	for _, p := range domain.AllPatterns() {
		alphas[p] = priorAlpha
		betas[p] = priorBeta
	}
	return alphas, betas
}
