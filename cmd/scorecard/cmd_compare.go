package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spboyer/scorecard/internal/models"
	"github.com/spboyer/scorecard/internal/reporting"
	"github.com/spf13/cobra"
)

var compareOutputFormat string

func newCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <older-report.json> <newer-report.json>",
		Short: "Compare two report files",
		Long: `Compare two JSON reports produced by "scorecard compute --format json",
for example two terms of the same class.

Students are matched by ID. The comparison shows each student's rank and
aggregate movement, plus students who joined or left.`,
		Args: cobra.ExactArgs(2),
		RunE: compareCommandE,
	}

	cmd.Flags().StringVarP(&compareOutputFormat, "format", "f", "table", "Output format: table or json")

	return cmd
}

func compareCommandE(cmd *cobra.Command, args []string) error {
	if compareOutputFormat != "table" && compareOutputFormat != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", compareOutputFormat)
	}

	older, err := loadReportFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}
	newer, err := loadReportFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[1], err)
	}

	c := reporting.CompareReports(older, newer)

	if compareOutputFormat == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	}
	return reporting.WriteComparisonTable(cmd.OutOrStdout(), c)
}

func loadReportFile(path string) (*models.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rep models.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}
