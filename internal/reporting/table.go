package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/scorecard/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numberPrinter formats numbers with English digit grouping.
var numberPrinter = message.NewPrinter(language.English)

const (
	maxNameWidth = 24
	minNameWidth = 8
	subjectWidth = 7
)

// WriteTable writes the master sheet, facilitator summary and digest of
// rep as aligned plain text.
func WriteTable(w io.Writer, rep *models.Report) error {
	tw := &errWriter{w: w}

	nameWidth := runewidth.StringWidth("Name")
	for _, s := range rep.Students {
		nameWidth = max(nameWidth, runewidth.StringWidth(s.Name))
	}
	nameWidth = min(max(nameWidth, minNameWidth), maxNameWidth)

	subjectCols := make([]int, len(rep.Subjects))
	for i, subject := range rep.Subjects {
		subjectCols[i] = max(subjectWidth, min(runewidth.StringWidth(subject), maxNameWidth))
	}

	total := 6 + nameWidth + 2 + 7 + 5 + 13
	for _, c := range subjectCols {
		total += c + 2
	}

	title := " MASTER SHEET"
	if rep.Cohort != "" {
		title += ": " + rep.Cohort
	}
	tw.printf("%s\n", strings.Repeat("═", total))
	tw.printf("%s\n", title)
	tw.printf("%s\n\n", strings.Repeat("═", total))

	// Header
	tw.printf("%s  %s", padLeft("Rank", 4), padRight("Name", nameWidth))
	for i, subject := range rep.Subjects {
		tw.printf("  %s", padRight(truncate(subject, subjectCols[i]), subjectCols[i]))
	}
	tw.printf("  %s  %s  %s\n", padLeft("Total", 5), padLeft("Agg", 3), "Category")
	tw.printf("%s\n", strings.Repeat("─", total))

	for _, s := range rep.Students {
		tw.printf("%s  %s", padLeft(fmt.Sprint(s.Rank), 4), padRight(truncate(s.Name, nameWidth), nameWidth))
		for i, subject := range rep.Subjects {
			cell := "-"
			if cs, ok := s.Subject(subject); ok {
				cell = fmt.Sprintf("%d %s", cs.Score, cs.Grade)
			}
			tw.printf("  %s", padRight(cell, subjectCols[i]))
		}
		tw.printf("  %s  %s  %s\n",
			padLeft(numberPrinter.Sprintf("%d", s.TotalScore), 5),
			padLeft(fmt.Sprint(s.BestSixAggregate), 3),
			s.Category)
	}

	if len(rep.Facilitators) > 0 {
		tw.printf("\n%s\n", strings.Repeat("─", total))
		tw.printf(" FACILITATORS\n")
		tw.printf("%s\n", strings.Repeat("─", total))
		tw.printf("%s  %s  %s  %s  %s\n",
			padRight("Facilitator", maxNameWidth), padRight("Subject", maxNameWidth),
			padLeft("Students", 8), padLeft("Perf %", 7), "Grade")
		for _, f := range rep.Facilitators {
			tw.printf("%s  %s  %s  %s  %s\n",
				padRight(truncate(f.FacilitatorName, maxNameWidth), maxNameWidth),
				padRight(truncate(f.Subject, maxNameWidth), maxNameWidth),
				padLeft(fmt.Sprint(f.StudentCount), 8),
				padLeft(numberPrinter.Sprintf("%.2f", f.PerformancePercentage), 7),
				f.PerformanceGrade)
		}
	}

	d := rep.Digest
	tw.printf("\n%s\n", strings.Repeat("─", total))
	tw.printf(" SUMMARY\n")
	tw.printf("%s\n", strings.Repeat("─", total))
	tw.printf("  Students:        %s\n", numberPrinter.Sprintf("%d", d.CohortSize))
	tw.printf("  Categories:      %s\n", formatCategoryCounts(d.CategoryCounts))
	if d.CohortSize > 0 {
		tw.printf("  Aggregate:       best %d, worst %d, mean %s\n",
			d.BestAggregate, d.WorstAggregate, numberPrinter.Sprintf("%.2f", d.MeanAggregate))
		tw.printf("  Mean total:      %s\n", numberPrinter.Sprintf("%.2f", d.MeanTotalScore))
		tw.printf("  Top student:     %s\n", d.TopStudent)
	}

	return tw.err
}

func formatCategoryCounts(counts map[models.Category]int) string {
	parts := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		parts = append(parts, fmt.Sprintf("%s %d", c, counts[c]))
	}
	return strings.Join(parts, ", ")
}

// errWriter remembers the first write error so table code can stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// truncate shortens s to width display columns, replacing the tail with "…".
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

func padLeft(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return strings.Repeat(" ", width-sw) + s
}
