package reporting

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/spboyer/scorecard/internal/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// FormatMarkdown renders rep as a markdown document: digest, master sheet,
// subject and facilitator tables, then per-student remarks.
func FormatMarkdown(rep *models.Report) string {
	var b strings.Builder

	title := "Class Report"
	if rep.Cohort != "" {
		title += ": " + rep.Cohort
	}
	fmt.Fprintf(&b, "# %s\n\n", escapeCell(title))

	d := rep.Digest
	fmt.Fprintf(&b, "- **Students:** %d\n", d.CohortSize)
	fmt.Fprintf(&b, "- **Categories:** %s\n", formatCategoryCounts(d.CategoryCounts))
	if d.CohortSize > 0 {
		fmt.Fprintf(&b, "- **Aggregate:** best %d, worst %d, mean %.2f\n", d.BestAggregate, d.WorstAggregate, d.MeanAggregate)
		fmt.Fprintf(&b, "- **Top student:** %s\n", escapeCell(d.TopStudent))
	}
	if !rep.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "- **Generated:** %s\n", rep.GeneratedAt.Format("2006-01-02 15:04 MST"))
	}
	b.WriteString("\n")

	// Master sheet
	b.WriteString("## Master Sheet\n\n")
	b.WriteString("| Rank | Name |")
	for _, subject := range rep.Subjects {
		fmt.Fprintf(&b, " %s |", escapeCell(subject))
	}
	b.WriteString(" Total | Aggregate | Category |\n")
	b.WriteString("|-----:|------|")
	for range rep.Subjects {
		b.WriteString("------|")
	}
	b.WriteString("------:|----------:|----------|\n")
	for _, s := range rep.Students {
		fmt.Fprintf(&b, "| %d | %s |", s.Rank, escapeCell(s.Name))
		for _, subject := range rep.Subjects {
			if cs, ok := s.Subject(subject); ok {
				fmt.Fprintf(&b, " %d (%s) |", cs.Score, cs.Grade)
			} else {
				b.WriteString(" - |")
			}
		}
		fmt.Fprintf(&b, " %d | %d | %s |\n", s.TotalScore, s.BestSixAggregate, s.Category)
	}
	b.WriteString("\n")

	if len(rep.SubjectSummaries) > 0 {
		b.WriteString("## Subjects\n\n")
		b.WriteString("| Subject | Mean | Std Dev | Min | Max | Credit Pass |\n")
		b.WriteString("|---------|-----:|--------:|----:|----:|------------:|\n")
		for _, ss := range rep.SubjectSummaries {
			fmt.Fprintf(&b, "| %s | %.2f | %.2f | %d | %d | %.1f%% |\n",
				escapeCell(ss.Subject), ss.Mean, ss.StdDev, ss.MinScore, ss.MaxScore, ss.CreditPassRate*100)
		}
		b.WriteString("\n")
	}

	if len(rep.Facilitators) > 0 {
		b.WriteString("## Facilitators\n\n")
		b.WriteString("| Facilitator | Subject | Students | Performance | Grade |\n")
		b.WriteString("|-------------|---------|---------:|------------:|-------|\n")
		for _, f := range rep.Facilitators {
			fmt.Fprintf(&b, "| %s | %s | %d | %.2f%% | %s |\n",
				escapeCell(f.FacilitatorName), escapeCell(f.Subject), f.StudentCount, f.PerformancePercentage, f.PerformanceGrade)
		}
		b.WriteString("\n")
	}

	if len(rep.Students) > 0 {
		b.WriteString("## Remarks\n\n")
		for _, s := range rep.Students {
			fmt.Fprintf(&b, "### %d. %s\n\n", s.Rank, s.Name)
			if s.OverallRemark != "" {
				for _, para := range strings.Split(s.OverallRemark, "\n\n") {
					fmt.Fprintf(&b, "%s\n\n", para)
				}
			}
			if s.WeaknessAnalysis != "" {
				fmt.Fprintf(&b, "- **Weakness:** %s\n", s.WeaknessAnalysis)
			}
			fmt.Fprintf(&b, "- **Recommendation:** %s\n\n", s.Recommendation)
		}
	}

	return b.String()
}

// escapeCell keeps user text from breaking table rows.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// RenderHTML converts the markdown report to a standalone HTML page.
func RenderHTML(rep *models.Report) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var body bytes.Buffer
	if err := md.Convert([]byte(FormatMarkdown(rep)), &body); err != nil {
		return nil, fmt.Errorf("rendering html: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", html.EscapeString(pageTitle(rep)))
	page.WriteString("<style>table{border-collapse:collapse}th,td{border:1px solid #ccc;padding:2px 6px}</style>\n")
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

func pageTitle(rep *models.Report) string {
	if rep.Cohort == "" {
		return "Class Report"
	}
	return "Class Report: " + rep.Cohort
}
