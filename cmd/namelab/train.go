package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"namelab/business/shadow"
)

// parsePairs turns "candidates.md:availability.txt:label" flags into
// training artifact pairs. The label segment is optional.
func parsePairs(raw []string) ([]shadow.ArtifactPair, error) {
	pairs := make([]shadow.ArtifactPair, 0, len(raw))
	for _, r := range raw {
		parts := strings.Split(r, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("invalid pair %q, expected candidates:availability[:label]", r)
		}
		p := shadow.ArtifactPair{CandidatesPath: parts[0], AvailabilityPath: parts[1]}
		if len(parts) == 3 {
			p.RoundLabel = parts[2]
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func trainCmd() *cobra.Command {
	var (
		rawPairs     []string
		artifactPath string
		metaPath     string
		version      string
		seed         int64
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the shadow viability model from round artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := parsePairs(rawPairs)
			if err != nil {
				return err
			}
			if len(pairs) == 0 {
				return fmt.Errorf("at least one --pair is required")
			}
			artifact, err := shadow.Train(pairs, shadow.TrainOptions{
				ModelVersion: version,
				Seed:         seed,
				ArtifactPath: artifactPath,
				MetaPath:     metaPath,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "trained %s on %d samples (%d positive, %d negative)\n",
				artifact.Meta.ModelVersion, artifact.Meta.NTrainingSamples,
				artifact.Meta.NPositive, artifact.Meta.NNegative)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&rawPairs, "pair", nil, "candidates:availability[:label] artifact pair, repeatable")
	cmd.Flags().StringVar(&artifactPath, "artifact", "shadow_model.json", "output path for the model artifact")
	cmd.Flags().StringVar(&metaPath, "meta", "", "optional output path for the text metadata file")
	cmd.Flags().StringVar(&version, "version", "", "model version label")
	cmd.Flags().Int64Var(&seed, "seed", 42, "training seed recorded in metadata")
	return cmd
}
