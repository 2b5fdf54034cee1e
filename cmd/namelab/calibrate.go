package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"namelab/business/shadow"
)

func calibrateCmd() *cobra.Command {
	var (
		rawPairs     []string
		artifactPath string
	)

	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Evaluate shadow model calibration against held-out round artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := parsePairs(rawPairs)
			if err != nil {
				return err
			}
			artifact, err := shadow.LoadArtifact(artifactPath)
			if err != nil {
				return fmt.Errorf("load artifact: %w", err)
			}
			ds, err := shadow.LoadProxyDataset(pairs)
			if err != nil {
				return err
			}
			report, err := shadow.Calibrate(artifact, ds)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Render())
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&rawPairs, "pair", nil, "candidates:availability[:label] artifact pair, repeatable")
	cmd.Flags().StringVar(&artifactPath, "artifact", "shadow_model.json", "path to the model artifact")
	return cmd
}
