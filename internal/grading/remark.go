package grading

import "github.com/spboyer/scorecard/internal/models"

// scoreBand is a fixed threshold used for narrative text only.
type scoreBand struct {
	min    int
	remark string
}

var scoreBands = []scoreBand{
	{90, "Outstanding"},
	{80, "Excellent"},
	{70, "Very Good"},
	{60, "Good"},
	{55, "Credit"},
	{50, "Pass"},
	{40, "Weak Pass"},
}

// RemarkCriticalFailure is the remark for scores below every band.
const RemarkCriticalFailure = "Critical Failure"

// ScoreRemark describes an absolute score. It never affects the letter grade.
func ScoreRemark(score int) string {
	for _, b := range scoreBands {
		if score >= b.min {
			return b.remark
		}
	}
	return RemarkCriticalFailure
}

// DaycareResult is the early-years classification of a single score.
type DaycareResult struct {
	Grade  models.Grade `json:"grade" yaml:"grade"`
	Remark string       `json:"remark" yaml:"remark"`
}

// ClassifyDaycare grades an early-years score on absolute thresholds,
// independent of any cohort.
func ClassifyDaycare(score int) DaycareResult {
	switch {
	case score >= 70:
		return DaycareResult{Grade: models.GradeDaycareHigh, Remark: "High Proficiency"}
	case score >= 40:
		return DaycareResult{Grade: models.GradeDaycareSufficient, Remark: "Sufficient"}
	default:
		return DaycareResult{Grade: models.GradeDaycareApproaching, Remark: "Approaching"}
	}
}

// PerformanceGrade converts a facilitator performance percentage to a band.
func PerformanceGrade(percentage float64) models.Grade {
	switch {
	case percentage >= 80:
		return models.GradeA1
	case percentage >= 70:
		return models.GradeB2
	case percentage >= 60:
		return models.GradeB3
	case percentage >= 50:
		return models.GradeC4
	case percentage >= 45:
		return models.GradeC5
	case percentage >= 40:
		return models.GradeC6
	case percentage >= 35:
		return models.GradeD7
	case percentage >= 30:
		return models.GradeE8
	default:
		return models.GradeF9
	}
}
