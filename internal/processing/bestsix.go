package processing

import (
	"slices"
	"sort"

	"github.com/spboyer/scorecard/internal/models"
)

// Number of subjects counted from each partition.
const (
	BestCoreCount     = 4
	BestElectiveCount = 2
)

// Selection is the set of subjects counted towards the aggregate.
type Selection struct {
	Core      []models.ComputedSubject
	Elective  []models.ComputedSubject
	Aggregate int
}

// SelectBestSix takes the best four core and best two elective subjects.
// Best means lowest grade value, then highest score. A short partition
// contributes what it has; nothing is padded.
func SelectBestSix(subjects []models.ComputedSubject, coreSubjects []string) Selection {
	var core, elective []models.ComputedSubject
	for _, s := range subjects {
		if slices.Contains(coreSubjects, s.Subject) {
			core = append(core, s)
		} else {
			elective = append(elective, s)
		}
	}

	sel := Selection{
		Core:     best(core, BestCoreCount),
		Elective: best(elective, BestElectiveCount),
	}
	for _, s := range sel.Core {
		sel.Aggregate += s.GradeValue
	}
	for _, s := range sel.Elective {
		sel.Aggregate += s.GradeValue
	}
	return sel
}

func best(subjects []models.ComputedSubject, n int) []models.ComputedSubject {
	sorted := make([]models.ComputedSubject, len(subjects))
	copy(sorted, subjects)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].GradeValue != sorted[j].GradeValue {
			return sorted[i].GradeValue < sorted[j].GradeValue
		}
		return sorted[i].Score > sorted[j].Score
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
