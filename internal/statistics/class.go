// Package statistics computes cohort-level statistics used for norm-referenced
// grading.
package statistics

import "github.com/spboyer/scorecard/internal/models"

// ComputeClassStatistics returns the population mean and standard deviation of
// every subject in subjects across students. It always recomputes from the
// inputs; an empty cohort yields 0 for both statistics.
func ComputeClassStatistics(students []models.StudentRecord, subjects []string, scienceBaseScore int) models.ClassStatistics {
	stats := models.ClassStatistics{
		SubjectMeans:   make(map[string]float64, len(subjects)),
		SubjectStdDevs: make(map[string]float64, len(subjects)),
	}

	for _, subject := range subjects {
		scores := SubjectScores(students, subject, scienceBaseScore)
		stats.SubjectMeans[subject] = Mean(scores)
		stats.SubjectStdDevs[subject] = StdDev(scores)
	}

	return stats
}

// SubjectScores returns every student's normalized score for subject, in
// cohort order.
func SubjectScores(students []models.StudentRecord, subject string, scienceBaseScore int) []float64 {
	scores := make([]float64, 0, len(students))
	for i := range students {
		scores = append(scores, float64(SubjectScore(&students[i], subject, scienceBaseScore)))
	}
	return scores
}
