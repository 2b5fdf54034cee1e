// Package shadow trains, serves, and calibrates the shadow viability model.
// Shadow mode means the scores never gate a name; they are decision support
// next to the human review loop.
package shadow

import (
	"os"
	"strings"

	"namelab/business/features"
	"namelab/domain"
	"namelab/internal/parser"
	"namelab/pkg/logger"
)

// Proxy labels call a name viable when the registry had it free and the
// reviewers scored it at least this total.
const viableScoreThreshold = 18

// ArtifactPair points at one historical round's artifacts.
type ArtifactPair struct {
	CandidatesPath   string
	AvailabilityPath string
	RoundLabel       string
}

// Dataset is a proxy-labeled training or evaluation set.
type Dataset struct {
	X            [][]float64
	Y            []int
	FeatureNames []string
	RoundLabels  []string
}

func (d Dataset) Len() int { return len(d.Y) }

func (d Dataset) countLabel(label int) int {
	n := 0
	for _, y := range d.Y {
		if y == label {
			n++
		}
	}
	return n
}

// ProxyLabel derives the training label for one candidate.
// 1 = available and scored >= threshold, 0 = definitively taken,
// ok=false = excluded (unknown status, or available but under threshold).
func ProxyLabel(c domain.Candidate, availability map[string]domain.Availability) (int, bool) {
	status, found := availability[normalizedName(c.Name)]
	if !found {
		status = domain.AvailabilityUnknown
	}

	switch status {
	case domain.AvailabilityTaken:
		return 0, true
	case domain.AvailabilityAvailable:
		if c.TotalScore >= viableScoreThreshold {
			return 1, true
		}
		return 0, false // available but below threshold, exclude
	default:
		return 0, false // unknown, exclude
	}
}

// normalizedName is the availability-lookup key form of a candidate name.
func normalizedName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// LoadProxyDataset builds a labeled dataset from historical artifact pairs.
// Missing candidate tables are logged and skipped, not fatal; a missing
// availability file leaves every candidate unlabeled for that round.
func LoadProxyDataset(pairs []ArtifactPair) (Dataset, error) {
	ds := Dataset{FeatureNames: features.Names()}

	for _, pair := range pairs {
		if _, err := os.Stat(pair.CandidatesPath); err != nil {
			logger.Warn("missing candidate table, skipping",
				"path", pair.CandidatesPath, "round", pair.RoundLabel)
			continue
		}

		candidates, err := parser.ParseCandidatesFile(pair.CandidatesPath)
		if err != nil {
			return Dataset{}, err
		}

		availability := map[string]domain.Availability{}
		if pair.AvailabilityPath != "" {
			if _, err := os.Stat(pair.AvailabilityPath); err == nil {
				availability, err = parser.ParseAvailabilityFile(pair.AvailabilityPath)
				if err != nil {
					return Dataset{}, err
				}
			} else {
				logger.Warn("missing availability list, candidates stay unlabeled",
					"path", pair.AvailabilityPath, "round", pair.RoundLabel)
			}
		}

		for _, cand := range candidates {
			label, ok := ProxyLabel(cand, availability)
			if !ok {
				continue
			}

			vec := features.Vector(cand)
			ds.X = append(ds.X, vec[:])
			ds.Y = append(ds.Y, label)
			ds.RoundLabels = append(ds.RoundLabels, pair.RoundLabel)
		}
	}

	return ds, nil
}
