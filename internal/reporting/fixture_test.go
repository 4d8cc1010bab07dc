package reporting

import (
	"testing"

	"github.com/spboyer/scorecard/internal/models"
	"github.com/spboyer/scorecard/internal/report"
)

// sampleReport grades three students in two core subjects:
//
//	Kofi 90/80 -> B2 B2, aggregate 4, rank 1
//	Ama  70/60 -> C4 C4, aggregate 8, rank 2
//	Esi  50/40 -> D7 D7, aggregate 14, rank 3
func sampleReport(t *testing.T) *models.Report {
	t.Helper()
	return report.Generate(&models.Snapshot{
		Name:     "JHS 1 Blue",
		Subjects: []string{"Mathematics", "Science"},
		Settings: models.Settings{
			CoreSubjects:     []string{"Mathematics", "Science"},
			ScienceBaseScore: 100,
			FacilitatorNames: map[string]string{"Mathematics": "Mrs. Owusu", "Science": "Mr. Boateng"},
		},
		Students: []models.StudentRecord{
			{ID: 3, Name: "Esi", Scores: map[string]int{"Mathematics": 50, "Science": 40}},
			{ID: 1, Name: "Kofi", Scores: map[string]int{"Mathematics": 90, "Science": 80}},
			{ID: 2, Name: "Ama", Scores: map[string]int{"Mathematics": 70, "Science": 60}},
		},
	})
}
