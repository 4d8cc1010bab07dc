package statistics

import (
	"math"

	"github.com/spboyer/scorecard/internal/models"
)

// ScienceSubject is the subject whose sectioned marks are rescaled.
const ScienceSubject = "Science"

// SubjectScore returns the score a student contributes for subject.
//
// Science with a section breakdown is rescaled onto 100 points: on a 100 base
// the sections are summed, on a 140 base the sum is scaled by 100/140. Every
// other case uses the flat score, which is 0 when absent. Both the statistics
// pass and the per-student pass must call this so that grades are computed
// against statistics built from the same numbers.
func SubjectScore(student *models.StudentRecord, subject string, scienceBaseScore int) int {
	if subject == ScienceSubject {
		if d, ok := student.Detail(subject); ok {
			return NormalizeSections(d, scienceBaseScore)
		}
	}
	return student.Score(subject)
}

// NormalizeSections rescales a section breakdown onto a 100-point scale.
// Any base other than 140 is treated as 100.
func NormalizeSections(d models.ScoreDetail, base int) int {
	raw := d.SectionA + d.SectionB
	if base == models.ScienceBase140 {
		return roundHalfUp(raw / float64(models.ScienceBase140) * 100)
	}
	return roundHalfUp(raw)
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
