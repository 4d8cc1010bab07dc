package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/scorecard/internal/models"
)

// Movement status values for StudentMovement.Status.
const (
	MovementBoth    = "both"
	MovementNew     = "new"
	MovementDropped = "dropped"
)

// StudentMovement is how one student moved between two reports.
// RankChange is positive when the student climbed; AggregateChange is
// negative when the student improved.
type StudentMovement struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Status          string          `json:"status"`
	OldRank         int             `json:"old_rank,omitempty"`
	NewRank         int             `json:"new_rank,omitempty"`
	RankChange      int             `json:"rank_change"`
	OldAggregate    int             `json:"old_aggregate,omitempty"`
	NewAggregate    int             `json:"new_aggregate,omitempty"`
	AggregateChange int             `json:"aggregate_change"`
	OldCategory     models.Category `json:"old_category,omitempty"`
	NewCategory     models.Category `json:"new_category,omitempty"`
}

// Comparison is the full comparison between an older and a newer report.
type Comparison struct {
	OldReportID          string            `json:"old_report_id"`
	NewReportID          string            `json:"new_report_id"`
	OldCohort            string            `json:"old_cohort"`
	NewCohort            string            `json:"new_cohort"`
	MeanAggregateChange  float64           `json:"mean_aggregate_change"`
	MeanTotalScoreChange float64           `json:"mean_total_score_change"`
	Students             []StudentMovement `json:"students"`
}

// CompareReports matches students by ID. Students are listed in the newer
// report's rank order, followed by students only present in the older one.
func CompareReports(older, newer *models.Report) *Comparison {
	c := &Comparison{
		OldReportID:          older.ID,
		NewReportID:          newer.ID,
		OldCohort:            older.Cohort,
		NewCohort:            newer.Cohort,
		MeanAggregateChange:  newer.Digest.MeanAggregate - older.Digest.MeanAggregate,
		MeanTotalScoreChange: newer.Digest.MeanTotalScore - older.Digest.MeanTotalScore,
	}

	matched := make(map[int]bool, len(newer.Students))
	for _, cur := range newer.Students {
		m := StudentMovement{
			ID:           cur.ID,
			Name:         cur.Name,
			Status:       MovementNew,
			NewRank:      cur.Rank,
			NewAggregate: cur.BestSixAggregate,
			NewCategory:  cur.Category,
		}
		if prev, ok := older.Student(cur.ID); ok {
			matched[cur.ID] = true
			m.Status = MovementBoth
			m.OldRank = prev.Rank
			m.OldAggregate = prev.BestSixAggregate
			m.OldCategory = prev.Category
			m.RankChange = prev.Rank - cur.Rank
			m.AggregateChange = cur.BestSixAggregate - prev.BestSixAggregate
		}
		c.Students = append(c.Students, m)
	}

	for _, prev := range older.Students {
		if matched[prev.ID] {
			continue
		}
		c.Students = append(c.Students, StudentMovement{
			ID:           prev.ID,
			Name:         prev.Name,
			Status:       MovementDropped,
			OldRank:      prev.Rank,
			OldAggregate: prev.BestSixAggregate,
			OldCategory:  prev.Category,
		})
	}

	return c
}

// WriteComparisonTable writes c as aligned plain text.
func WriteComparisonTable(w io.Writer, c *Comparison) error {
	tw := &errWriter{w: w}

	nameWidth := minNameWidth
	for _, m := range c.Students {
		nameWidth = max(nameWidth, min(runewidth.StringWidth(m.Name), maxNameWidth))
	}
	total := nameWidth + 48

	tw.printf("%s\n", strings.Repeat("=", total))
	tw.printf(" COMPARISON: %s → %s\n", c.OldCohort, c.NewCohort)
	tw.printf("%s\n\n", strings.Repeat("=", total))
	tw.printf("  Mean aggregate:   %+.2f\n", c.MeanAggregateChange)
	tw.printf("  Mean total score: %+.2f\n\n", c.MeanTotalScoreChange)

	tw.printf("%s  %s  %s  %s  %s\n",
		padRight("Name", nameWidth), padLeft("Rank", 9), padLeft("Δ", 3), padLeft("Aggregate", 9), "Category")
	tw.printf("%s\n", strings.Repeat("-", total))

	for _, m := range c.Students {
		name := padRight(truncate(m.Name, nameWidth), nameWidth)
		switch m.Status {
		case MovementNew:
			tw.printf("%s  %s  %s  %s  %s (new)\n", name,
				padLeft(fmt.Sprintf("- → %d", m.NewRank), 9), padLeft("", 3),
				padLeft(fmt.Sprint(m.NewAggregate), 9), m.NewCategory)
		case MovementDropped:
			tw.printf("%s  %s  %s  %s  %s (left)\n", name,
				padLeft(fmt.Sprintf("%d → -", m.OldRank), 9), padLeft("", 3),
				padLeft(fmt.Sprint(m.OldAggregate), 9), m.OldCategory)
		default:
			tw.printf("%s  %s  %s  %s  %s\n", name,
				padLeft(fmt.Sprintf("%d → %d", m.OldRank, m.NewRank), 9),
				padLeft(movementIcon(m.RankChange), 3),
				padLeft(fmt.Sprintf("%d → %d", m.OldAggregate, m.NewAggregate), 9),
				categoryChange(m.OldCategory, m.NewCategory))
		}
	}
	return tw.err
}

func movementIcon(rankChange int) string {
	switch {
	case rankChange > 0:
		return fmt.Sprintf("↑%d", rankChange)
	case rankChange < 0:
		return fmt.Sprintf("↓%d", -rankChange)
	default:
		return "="
	}
}

func categoryChange(older, newer models.Category) string {
	if older == newer {
		return string(newer)
	}
	return fmt.Sprintf("%s → %s", older, newer)
}
