package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scorecard",
		Short: "Scorecard - grade a class and produce terminal reports",
		Long: `Scorecard grades a class from its raw subject scores.

It computes class statistics, assigns z-score grades, selects each student's
best six subjects, ranks the class and rolls results up per facilitator.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newComputeCommand())
	cmd.AddCommand(newDaycareCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newCompareCommand())
	cmd.AddCommand(newCacheCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
