package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spboyer/scorecard/internal/grading"
	"github.com/spf13/cobra"
)

type daycareResult struct {
	Score int `json:"score"`
	grading.DaycareResult
}

func newDaycareCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "daycare <score> [score ...]",
		Short: "Grade early-years scores",
		Long: `Grade early-years (daycare) scores on fixed thresholds.

Daycare grades do not depend on the rest of the class:
  70 and above  G  High Proficiency
  40 and above  S  Sufficient
  below 40      B  Approaching`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "json" {
				return fmt.Errorf("unsupported format %q: must be table or json", format)
			}

			results := make([]daycareResult, 0, len(args))
			for _, arg := range args {
				score, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid score %q: must be a whole number", arg)
				}
				results = append(results, daycareResult{Score: score, DaycareResult: grading.ClassifyDaycare(score)})
			}

			w := cmd.OutOrStdout()
			if format == "json" {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			for _, r := range results {
				if _, err := fmt.Fprintf(w, "%5d  %s  %s\n", r.Score, r.Grade, r.Remark); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or json")

	return cmd
}
