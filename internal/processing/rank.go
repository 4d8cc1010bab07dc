package processing

import (
	"sort"

	"github.com/spboyer/scorecard/internal/models"
)

// Rank orders students by best-six aggregate ascending, then total score
// descending, and assigns 1-based ranks. Students tied on both keep their
// input order and still receive consecutive ranks.
func Rank(students []models.ProcessedStudent) {
	sort.SliceStable(students, func(i, j int) bool {
		if students[i].BestSixAggregate != students[j].BestSixAggregate {
			return students[i].BestSixAggregate < students[j].BestSixAggregate
		}
		return students[i].TotalScore > students[j].TotalScore
	})
	for i := range students {
		students[i].Rank = i + 1
	}
}
