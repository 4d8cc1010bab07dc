package main

import (
	"fmt"
	"path/filepath"

	"github.com/spboyer/scorecard/internal/cache"
	"github.com/spboyer/scorecard/internal/projectconfig"
	"github.com/spf13/cobra"
)

func newCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the report cache",
		Long: `Manage the report cache.

The cache stores generated reports so that grading an unchanged snapshot again
is instant. Entries are keyed by the full content of the snapshot: students,
subject list and settings.`,
	}

	cmd.AddCommand(newCacheClearCommand())

	return cmd
}

func newCacheClearCommand() *cobra.Command {
	var cacheDir string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the report cache",
		Long: `Clear all cached reports.

The next compute run will grade every snapshot from scratch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("cache-dir") {
				cfg, err := projectconfig.Load(".")
				if err != nil {
					return err
				}
				cacheDir = cfg.Cache.Dir
			}

			// Resolve to absolute path
			absDir, err := filepath.Abs(cacheDir)
			if err != nil {
				return fmt.Errorf("resolving cache directory: %w", err)
			}

			c := cache.New(absDir)
			if err := c.Clear(); err != nil {
				return fmt.Errorf("clearing cache: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Cache cleared: %s\n", absDir) //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().StringVar(&cacheDir, "cache-dir", projectconfig.DefaultCacheDir, "Cache directory to clear")

	return cmd
}
