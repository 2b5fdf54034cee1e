package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"namelab/business/replay"
)

func replayCmd() *cobra.Command {
	var comparePath string

	cmd := &cobra.Command{
		Use:   "replay <events-file>",
		Short: "Replay a sidecar event log and summarize its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := replay.ReplayFile(args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if comparePath == "" {
				return enc.Encode(summary)
			}

			other, err := replay.ReplayFile(comparePath)
			if err != nil {
				return err
			}
			return enc.Encode(struct {
				Baseline replay.ReplaySummary `json:"baseline"`
				Current  replay.ReplaySummary `json:"current"`
				Diff     replay.SummaryDiff   `json:"diff"`
			}{summary, other, replay.CompareSummaries(summary, other)})
		},
	}

	cmd.Flags().StringVar(&comparePath, "compare", "", "second event log to diff against")
	return cmd
}
