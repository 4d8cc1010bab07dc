package main

import (
	"fmt"

	"github.com/spboyer/scorecard/internal/validation"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <snapshot> [snapshot ...]",
		Short: "Check snapshot files against the snapshot schema",
		Long: `Check snapshot files (YAML or JSON) against the snapshot schema.

Every file is checked and all problems are listed. The command exits with
status 1 when any file is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: validateCommandE,
	}
}

func validateCommandE(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	invalid := 0

	for _, path := range args {
		errs, err := validation.ValidateSnapshotFile(path)
		if err != nil {
			return err
		}
		if len(errs) == 0 {
			fmt.Fprintf(w, "✅ %s\n", path) //nolint:errcheck
			continue
		}
		invalid++
		fmt.Fprintf(w, "❌ %s\n", path) //nolint:errcheck
		for _, e := range errs {
			fmt.Fprintf(w, "   %s\n", e) //nolint:errcheck
		}
	}

	if invalid > 0 {
		return &ValidationFailedError{Message: fmt.Sprintf("%d of %d snapshot(s) failed validation", invalid, len(args))}
	}
	return nil
}
