// Package facilitators rolls student grades up into per-facilitator
// performance statistics.
package facilitators

import (
	"math"
	"sort"

	"github.com/spboyer/scorecard/internal/grading"
	"github.com/spboyer/scorecard/internal/models"
)

type groupKey struct {
	facilitator string
	subject     string
}

// ComputeFacilitatorStats groups every computed subject by (facilitator,
// subject) and returns one record per group, best performance first. Groups
// with equal performance keep the order in which they were first seen.
func ComputeFacilitatorStats(students []models.ProcessedStudent) []models.FacilitatorStats {
	var order []groupKey
	groups := make(map[groupKey]*models.FacilitatorStats)

	for _, student := range students {
		for _, cs := range student.Subjects {
			key := groupKey{facilitator: cs.Facilitator, subject: cs.Subject}
			g, ok := groups[key]
			if !ok {
				g = newStats(cs.Facilitator, cs.Subject)
				groups[key] = g
				order = append(order, key)
			}
			g.StudentCount++
			g.GradeCounts[cs.Grade]++
			g.TotalGradeValue += cs.GradeValue
		}
	}

	out := make([]models.FacilitatorStats, 0, len(order))
	for _, key := range order {
		g := groups[key]
		finish(g)
		out = append(out, *g)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PerformancePercentage > out[j].PerformancePercentage
	})
	return out
}

func newStats(facilitator, subject string) *models.FacilitatorStats {
	counts := make(map[models.Grade]int, len(models.StandardGrades))
	for _, g := range models.StandardGrades {
		counts[g] = 0
	}
	return &models.FacilitatorStats{
		FacilitatorName: facilitator,
		Subject:         subject,
		GradeCounts:     counts,
	}
}

func finish(g *models.FacilitatorStats) {
	g.PerformancePercentage = PerformancePercentage(g.TotalGradeValue, g.StudentCount)
	g.PerformanceGrade = grading.PerformanceGrade(g.PerformancePercentage)
	if g.StudentCount > 0 {
		g.AverageGradeValue = float64(g.TotalGradeValue) / float64(g.StudentCount)
	}
}

// PerformancePercentage expresses how far a group's average grade sits from
// the worst grade, as a percentage rounded to two decimals. An empty group
// scores 0.
func PerformancePercentage(totalGradeValue, studentCount int) float64 {
	if studentCount == 0 {
		return 0
	}
	worst := float64(studentCount * models.WorstGradeValue)
	pct := (1 - float64(totalGradeValue)/worst) * 100
	return math.Round(pct*100) / 100
}
