package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"namelab/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "namelab",
	Short: "Decision support tooling for name generation campaigns",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(os.Getenv("APP_ENV"))
	},
}

func main() {
	rootCmd.AddCommand(trainCmd())
	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(calibrateCmd())
	rootCmd.AddCommand(replayCmd())
	rootCmd.AddCommand(gateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
