package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"namelab/business/replay"
	"namelab/business/shadow"
)

func gateCmd() *cobra.Command {
	var (
		rawPairs       []string
		artifactPath   string
		brierThreshold float64
		skipCalib      bool
	)

	cmd := &cobra.Command{
		Use:   "gate <events-file>",
		Short: "Run release gates against an event log, exit 1 on failure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := replay.ReplayFile(args[0])
			if err != nil {
				return err
			}

			pass := true
			report := func(name string, ok bool) {
				verdict := "PASS"
				if !ok {
					verdict = "FAIL"
					pass = false
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", name, verdict)
			}

			report("schema", replay.SchemaGate(summary))
			report("parity", replay.LegacyParityGate(summary))

			if !skipCalib {
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
				calib, err := shadow.Calibrate(artifact, ds)
				if err != nil {
					return err
				}
				report("calibration", replay.CalibrationGate(calib, brierThreshold))
			}

			if !pass {
				cmd.SilenceUsage = true
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&rawPairs, "pair", nil, "candidates:availability[:label] calibration pair, repeatable")
	cmd.Flags().StringVar(&artifactPath, "artifact", "shadow_model.json", "path to the model artifact")
	cmd.Flags().Float64Var(&brierThreshold, "brier-threshold", 0, "Brier score gate threshold, 0 uses the default")
	cmd.Flags().BoolVar(&skipCalib, "skip-calibration", false, "only run schema and parity gates")
	return cmd
}
