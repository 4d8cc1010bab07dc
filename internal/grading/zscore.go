// Package grading maps scores to grade bands and descriptive remarks.
package grading

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spboyer/scorecard/internal/models"
)

// ErrUnknownGrade is returned by ParseGrade for text that names no band.
var ErrUnknownGrade = errors.New("unknown grade")

// zCutoff pairs a minimum z-score with the grade awarded at or above it.
type zCutoff struct {
	minZ  float64
	grade models.Grade
}

// Cutoffs come from the standard normal distribution: the top 5% earn A1,
// the next 10% B2, and so on down to the bottom 1% at F9.
var zCutoffs = []zCutoff{
	{1.645, models.GradeA1},
	{1.036, models.GradeB2},
	{0.524, models.GradeB3},
	{0, models.GradeC4},
	{-0.524, models.GradeC5},
	{-1.036, models.GradeC6},
	{-1.645, models.GradeD7},
	{-2.326, models.GradeE8},
}

// DefaultGradeRemarks is the label attached to each band when the caller's
// remark map has no entry for it.
var DefaultGradeRemarks = map[models.Grade]string{
	models.GradeA1: "Excellent",
	models.GradeB2: "Very Good",
	models.GradeB3: "Good",
	models.GradeC4: "Credit",
	models.GradeC5: "Credit",
	models.GradeC6: "Credit",
	models.GradeD7: "Pass",
	models.GradeE8: "Pass",
	models.GradeF9: "Fail",
}

// Classification is the authoritative letter grade for one score.
type Classification struct {
	Grade  models.Grade
	Value  int
	Remark string
	ZScore float64
}

// ClassifyZScore grades score against the cohort mean and standard deviation.
// A zero standard deviation cannot separate students, so every score gets C4.
func ClassifyZScore(score, mean, stdDev float64, remarks map[models.Grade]string) Classification {
	if stdDev == 0 {
		return classification(models.GradeC4, 0, remarks)
	}

	z := (score - mean) / stdDev
	for _, c := range zCutoffs {
		if z >= c.minZ {
			return classification(c.grade, z, remarks)
		}
	}
	return classification(models.GradeF9, z, remarks)
}

func classification(g models.Grade, z float64, remarks map[models.Grade]string) Classification {
	return Classification{
		Grade:  g,
		Value:  g.Value(),
		Remark: GradeRemark(g, remarks),
		ZScore: z,
	}
}

// GradeRemark looks up the label for g, preferring remarks over the defaults.
func GradeRemark(g models.Grade, remarks map[models.Grade]string) string {
	if r, ok := remarks[g]; ok && r != "" {
		return r
	}
	return DefaultGradeRemarks[g]
}

// ParseGrade converts text such as "a1" or " B2 " to a standard band.
func ParseGrade(s string) (models.Grade, error) {
	g := models.Grade(strings.ToUpper(strings.TrimSpace(s)))
	if g.Value() == 0 {
		return "", fmt.Errorf("%w %q: must be one of A1, B2, B3, C4, C5, C6, D7, E8, F9", ErrUnknownGrade, s)
	}
	return g, nil
}
