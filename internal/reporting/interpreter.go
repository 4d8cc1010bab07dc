package reporting

import (
	"fmt"
	"strings"

	"github.com/spboyer/scorecard/internal/models"
)

// InterpretAggregate returns a plain-language label for a best-six aggregate.
func InterpretAggregate(aggregate int) string {
	switch {
	case aggregate <= 10:
		return "Excellent (≤10)"
	case aggregate <= 20:
		return "Good (11-20)"
	case aggregate <= 36:
		return "Needs Work (21-36)"
	default:
		return "At Risk (>36)"
	}
}

// InterpretCreditRate explains a subject's credit pass rate (0-1).
func InterpretCreditRate(rate float64) string {
	pct := rate * 100
	switch {
	case pct >= 100:
		return fmt.Sprintf("every student earned a credit (%.0f%%)", pct)
	case pct >= 80:
		return fmt.Sprintf("most students earned a credit (%.0f%%)", pct)
	case pct >= 50:
		return fmt.Sprintf("about half the class earned a credit (%.0f%%)", pct)
	default:
		return fmt.Sprintf("few students earned a credit (%.0f%%)", pct)
	}
}

// Interpret produces a plain-language reading of a report: how the class is
// spread across categories, which subjects are strongest and weakest, and
// which facilitator's classes performed best.
func Interpret(rep *models.Report) string {
	var b strings.Builder

	d := rep.Digest
	b.WriteString("=== Interpretation ===\n\n")

	if d.CohortSize == 0 {
		b.WriteString("No students were graded.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Mean Aggregate: %.2f — %s\n", d.MeanAggregate, InterpretAggregate(int(d.MeanAggregate+0.5)))
	fmt.Fprintf(&b, "Categories:     %s\n", formatCategoryCounts(d.CategoryCounts))
	passing := d.CohortSize - d.CategoryCounts[models.CategoryFail]
	fmt.Fprintf(&b, "Passing:        %d of %d students (%.0f%%)\n",
		passing, d.CohortSize, float64(passing)/float64(d.CohortSize)*100)
	if d.TopStudent != "" {
		fmt.Fprintf(&b, "Top Student:    %s (aggregate %d)\n", d.TopStudent, d.BestAggregate)
	}

	if best, worst, ok := strongestAndWeakest(rep.SubjectSummaries); ok {
		b.WriteString("\nSubjects:\n")
		fmt.Fprintf(&b, "  Strongest: %s, mean %.1f, %s\n", best.Subject, best.Mean, InterpretCreditRate(best.CreditPassRate))
		if worst.Subject != best.Subject {
			fmt.Fprintf(&b, "  Weakest:   %s, mean %.1f, %s\n", worst.Subject, worst.Mean, InterpretCreditRate(worst.CreditPassRate))
		}
	}

	if len(rep.Facilitators) > 0 {
		// Facilitators arrive sorted by performance, best first.
		top := rep.Facilitators[0]
		b.WriteString("\nFacilitators:\n")
		fmt.Fprintf(&b, "  Strongest: %s (%s), %.2f%%, grade %s\n",
			top.FacilitatorName, top.Subject, top.PerformancePercentage, top.PerformanceGrade)
		if n := len(rep.Facilitators); n > 1 {
			low := rep.Facilitators[n-1]
			fmt.Fprintf(&b, "  Needs support: %s (%s), %.2f%%, grade %s\n",
				low.FacilitatorName, low.Subject, low.PerformancePercentage, low.PerformanceGrade)
		}
	}

	return b.String()
}

// strongestAndWeakest picks subjects by credit pass rate, breaking ties by
// mean. The first subject wins remaining ties.
func strongestAndWeakest(summaries []models.SubjectSummary) (best, worst models.SubjectSummary, ok bool) {
	if len(summaries) == 0 {
		return best, worst, false
	}
	best, worst = summaries[0], summaries[0]
	for _, s := range summaries[1:] {
		if s.CreditPassRate > best.CreditPassRate || (s.CreditPassRate == best.CreditPassRate && s.Mean > best.Mean) {
			best = s
		}
		if s.CreditPassRate < worst.CreditPassRate || (s.CreditPassRate == worst.CreditPassRate && s.Mean < worst.Mean) {
			worst = s
		}
	}
	return best, worst, true
}
