package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"namelab/business/shadow"
)

func scoreCmd() *cobra.Command {
	var artifactPath string

	cmd := &cobra.Command{
		Use:   "score <candidates-file>",
		Short: "Score candidates from a round artifact with the shadow model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			artifact, err := shadow.LoadArtifact(artifactPath)
			if err != nil {
				return fmt.Errorf("load artifact: %w", err)
			}
			scored, err := shadow.ScoreFile(artifact, args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(scored)
		},
	}

	cmd.Flags().StringVar(&artifactPath, "artifact", "shadow_model.json", "path to the model artifact")
	return cmd
}
