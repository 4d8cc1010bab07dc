// Package report runs the grading pipeline over cohort snapshots.
package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/spboyer/scorecard/internal/facilitators"
	"github.com/spboyer/scorecard/internal/models"
	"github.com/spboyer/scorecard/internal/processing"
	"github.com/spboyer/scorecard/internal/statistics"
)

// creditGradeValue is the worst grade value (C6) that still counts as a credit.
const creditGradeValue = 6

// Generate runs statistics, student processing and facilitator aggregation
// over snap as one unit. Nothing from a previous run is reused.
func Generate(snap *models.Snapshot) *models.Report {
	settings := snap.Settings
	stats := statistics.ComputeClassStatistics(snap.Students, snap.Subjects, settings.ScienceBaseScore)
	students := processing.ProcessStudents(stats, snap.Students, snap.Subjects, settings)

	return stamp(&models.Report{
		Cohort:           snap.Name,
		Subjects:         append([]string(nil), snap.Subjects...),
		Settings:         settings,
		Statistics:       stats,
		Students:         students,
		Facilitators:     facilitators.ComputeFacilitatorStats(students),
		Digest:           Summarize(students),
		SubjectSummaries: SummarizeSubjects(stats, students, snap.Subjects),
	})
}

// stamp gives rep the identity of the current run.
func stamp(rep *models.Report) *models.Report {
	rep.ID = uuid.NewString()
	rep.GeneratedAt = time.Now().UTC()
	return rep
}

// Summarize builds the cohort digest from ranked students.
func Summarize(students []models.ProcessedStudent) models.Digest {
	d := models.Digest{
		CohortSize:     len(students),
		CategoryCounts: make(map[models.Category]int, len(models.Categories)),
	}
	for _, c := range models.Categories {
		d.CategoryCounts[c] = 0
	}
	if len(students) == 0 {
		return d
	}

	d.BestAggregate = students[0].BestSixAggregate
	d.WorstAggregate = students[0].BestSixAggregate
	aggSum, totalSum := 0, 0
	for _, s := range students {
		d.CategoryCounts[s.Category]++
		aggSum += s.BestSixAggregate
		totalSum += s.TotalScore
		d.BestAggregate = min(d.BestAggregate, s.BestSixAggregate)
		d.WorstAggregate = max(d.WorstAggregate, s.BestSixAggregate)
		if s.Rank == 1 {
			d.TopStudent = s.Name
		}
	}
	d.MeanAggregate = float64(aggSum) / float64(len(students))
	d.MeanTotalScore = float64(totalSum) / float64(len(students))
	return d
}

// SummarizeSubjects describes each active subject, in subject order.
func SummarizeSubjects(stats models.ClassStatistics, students []models.ProcessedStudent, subjects []string) []models.SubjectSummary {
	out := make([]models.SubjectSummary, 0, len(subjects))
	for _, subject := range subjects {
		sum := models.SubjectSummary{
			Subject:     subject,
			Mean:        stats.SubjectMeans[subject],
			StdDev:      stats.SubjectStdDevs[subject],
			GradeCounts: make(map[models.Grade]int, len(models.StandardGrades)),
		}
		for _, g := range models.StandardGrades {
			sum.GradeCounts[g] = 0
		}

		seen, credits := 0, 0
		for i := range students {
			cs, ok := students[i].Subject(subject)
			if !ok {
				continue
			}
			if seen == 0 || cs.Score < sum.MinScore {
				sum.MinScore = cs.Score
			}
			if seen == 0 || cs.Score > sum.MaxScore {
				sum.MaxScore = cs.Score
			}
			seen++
			sum.GradeCounts[cs.Grade]++
			if cs.GradeValue <= creditGradeValue {
				credits++
			}
		}
		if seen > 0 {
			sum.CreditPassRate = float64(credits) / float64(seen)
		}
		out = append(out, sum)
	}
	return out
}
