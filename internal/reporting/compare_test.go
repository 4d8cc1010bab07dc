package reporting

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/scorecard/internal/models"
	"github.com/spboyer/scorecard/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// laterTerm swaps Kofi and Esi, drops Ama and enrolls Yaw.
func laterTerm(t *testing.T) *models.Report {
	t.Helper()
	return report.Generate(&models.Snapshot{
		Name:     "JHS 2 Blue",
		Subjects: []string{"Mathematics", "Science"},
		Settings: models.Settings{CoreSubjects: []string{"Mathematics", "Science"}},
		Students: []models.StudentRecord{
			{ID: 1, Name: "Kofi", Scores: map[string]int{"Mathematics": 50, "Science": 40}},
			{ID: 3, Name: "Esi", Scores: map[string]int{"Mathematics": 90, "Science": 80}},
			{ID: 4, Name: "Yaw", Scores: map[string]int{"Mathematics": 70, "Science": 60}},
		},
	})
}

func TestCompareReports(t *testing.T) {
	older := sampleReport(t)
	newer := laterTerm(t)

	c := CompareReports(older, newer)

	assert.Equal(t, older.ID, c.OldReportID)
	assert.Equal(t, newer.ID, c.NewReportID)
	assert.InDelta(t, 0, c.MeanAggregateChange, 1e-9)
	require.Len(t, c.Students, 4)

	esi := c.Students[0]
	assert.Equal(t, "Esi", esi.Name)
	assert.Equal(t, MovementBoth, esi.Status)
	assert.Equal(t, 3, esi.OldRank)
	assert.Equal(t, 1, esi.NewRank)
	assert.Equal(t, 2, esi.RankChange)
	assert.Equal(t, -10, esi.AggregateChange)
	assert.Equal(t, models.CategoryMerit, esi.OldCategory)
	assert.Equal(t, models.CategoryDistinction, esi.NewCategory)

	yaw := c.Students[1]
	assert.Equal(t, MovementNew, yaw.Status)
	assert.Zero(t, yaw.OldRank)

	kofi := c.Students[2]
	assert.Equal(t, -2, kofi.RankChange)
	assert.Equal(t, 10, kofi.AggregateChange)

	ama := c.Students[3]
	assert.Equal(t, "Ama", ama.Name)
	assert.Equal(t, MovementDropped, ama.Status)
	assert.Equal(t, 2, ama.OldRank)
	assert.Zero(t, ama.NewRank)
}

func TestWriteComparisonTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteComparisonTable(&buf, CompareReports(sampleReport(t), laterTerm(t))))
	out := buf.String()

	assert.Contains(t, out, "COMPARISON: JHS 1 Blue → JHS 2 Blue")
	assert.Contains(t, out, "3 → 1")
	assert.Contains(t, out, "↑2")
	assert.Contains(t, out, "↓2")
	assert.Contains(t, out, "Merit → Distinction")
	assert.Contains(t, out, "(new)")
	assert.Contains(t, out, "(left)")
}

func TestWriteComparisonTable_WideNamesStayAligned(t *testing.T) {
	c := &Comparison{
		OldCohort: "Term 1",
		NewCohort: "Term 2",
		Students: []StudentMovement{{
			ID: 1, Name: "山田太郎山田", Status: MovementBoth,
			OldRank: 1, NewRank: 1, OldAggregate: 6, NewAggregate: 6,
			OldCategory: models.CategoryDistinction, NewCategory: models.CategoryDistinction,
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteComparisonTable(&buf, c))

	var header, row string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "Name") {
			header = line
		}
		if strings.HasPrefix(line, "山田") {
			row = line
		}
	}
	require.NotEmpty(t, header)
	require.NotEmpty(t, row)

	col := func(s, marker string) int { return runewidth.StringWidth(s[:strings.Index(s, marker)]) }
	assert.Equal(t, col(header, "Category"), col(row, "Distinction"))
}
