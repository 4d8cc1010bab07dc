// Package processing turns raw student records into graded, ranked results.
package processing

import (
	"strings"

	"github.com/spboyer/scorecard/internal/grading"
	"github.com/spboyer/scorecard/internal/models"
	"github.com/spboyer/scorecard/internal/statistics"
)

// ProcessStudents grades every student against stats, selects each student's
// best six, classifies and remarks on them, and returns the cohort ranked.
//
// stats must have been computed from the same students, subjects and
// settings.ScienceBaseScore; mixing snapshots produces meaningless grades.
func ProcessStudents(stats models.ClassStatistics, students []models.StudentRecord, subjects []string, settings models.Settings) []models.ProcessedStudent {
	processed := make([]models.ProcessedStudent, 0, len(students))
	for i := range students {
		processed = append(processed, processStudent(stats, &students[i], subjects, settings))
	}
	Rank(processed)
	return processed
}

func processStudent(stats models.ClassStatistics, s *models.StudentRecord, subjects []string, settings models.Settings) models.ProcessedStudent {
	p := models.ProcessedStudent{
		ID:          s.ID,
		Name:        s.Name,
		Subjects:    make([]models.ComputedSubject, 0, len(subjects)),
		PassThrough: s.PassThrough,
	}

	for _, subject := range subjects {
		score := statistics.SubjectScore(s, subject, settings.ScienceBaseScore)
		p.TotalScore += score

		c := grading.ClassifyZScore(float64(score), stats.SubjectMeans[subject], stats.SubjectStdDevs[subject], settings.GradingRemarks)
		p.Subjects = append(p.Subjects, models.ComputedSubject{
			Subject:     subject,
			Score:       score,
			Grade:       c.Grade,
			GradeValue:  c.Value,
			GradeRemark: c.Remark,
			Remark:      subjectRemark(s, subject, score),
			Facilitator: ResolveFacilitator(subject, settings),
			ZScore:      c.ZScore,
		})
	}

	best := SelectBestSix(p.Subjects, settings.CoreSubjects)
	p.BestCoreSubjects = best.Core
	p.BestElectiveSubjects = best.Elective
	p.BestSixAggregate = best.Aggregate
	p.Category = Categorize(best.Aggregate)

	r := BuildRemarks(s, p.Subjects, p.Category, p.BestSixAggregate)
	p.OverallRemark = r.Overall
	p.WeaknessAnalysis = r.Weakness
	p.Recommendation = r.Recommendation

	return p
}

// subjectRemark returns the facilitator's remark for subject, or the
// score-band text when none was entered.
func subjectRemark(s *models.StudentRecord, subject string, score int) string {
	if text := strings.TrimSpace(s.SubjectRemarks[subject]); text != "" {
		return text
	}
	return grading.ScoreRemark(score)
}

// Categorize classifies a best-six aggregate. Bounds are inclusive.
func Categorize(aggregate int) models.Category {
	switch {
	case aggregate <= 10:
		return models.CategoryDistinction
	case aggregate <= 20:
		return models.CategoryMerit
	case aggregate <= 36:
		return models.CategoryPass
	default:
		return models.CategoryFail
	}
}
