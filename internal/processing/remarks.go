package processing

import (
	"fmt"
	"strings"

	"github.com/spboyer/scorecard/internal/models"
)

// DefaultRecommendation is used when no recommendation was entered.
const DefaultRecommendation = "Continue to study hard, stay focused and seek help in areas of difficulty."

// weakGradeValue is the first grade value (D7) that counts as a weakness.
const weakGradeValue = 7

// encouragingAggregate is the highest aggregate that earns the encouraging
// class-teacher summary.
const encouragingAggregate = 15

// Remarks is the narrative text generated for one student.
type Remarks struct {
	Overall        string
	Weakness       string
	Recommendation string
}

// BuildRemarks assembles a student's narrative.
//
// Manually entered text is used verbatim. A manual final remark is kept
// with the weakness note appended.
// Without one, the text is the weakness note (or the lowest subject when
// nothing is at D7 or below), any facilitator notes, a blank line and the
// class-teacher summary.
func BuildRemarks(s *models.StudentRecord, subjects []models.ComputedSubject, category models.Category, aggregate int) Remarks {
	weak := WeaknessNote(subjects)
	r := Remarks{
		Weakness:       weak,
		Recommendation: s.Recommendation,
	}
	if isBlank(r.Recommendation) {
		r.Recommendation = DefaultRecommendation
	}
	if r.Weakness == "" {
		r.Weakness = LowestPerformanceNote(subjects)
	}

	if !isBlank(s.FinalRemark) {
		r.Overall = joinNonEmpty(" ", s.FinalRemark, weak)
		return r
	}

	summary := s.OverallRemark
	if isBlank(summary) {
		summary = TeacherSummary(category, aggregate)
	}
	r.Overall = r.Weakness + FacilitatorNotes(s, subjects) + "\n\n" + summary
	return r
}

// WeaknessNote lists every subject graded D7 or worse, in subject order.
// It is empty when there is none.
func WeaknessNote(subjects []models.ComputedSubject) string {
	var weak []string
	for _, s := range subjects {
		if s.GradeValue >= weakGradeValue {
			weak = append(weak, s.Subject)
		}
	}
	if len(weak) == 0 {
		return ""
	}
	return fmt.Sprintf("Needs urgent improvement in: %s.", strings.Join(weak, ", "))
}

// LowestPerformanceNote names the subject with the lowest score. On equal
// scores the first subject in order wins.
func LowestPerformanceNote(subjects []models.ComputedSubject) string {
	if len(subjects) == 0 {
		return ""
	}
	lowest := subjects[0]
	for _, s := range subjects[1:] {
		if s.Score < lowest.Score {
			lowest = s
		}
	}
	return fmt.Sprintf("Lowest performance in %s.", lowest.Subject)
}

// FacilitatorNotes formats the facilitators' per-subject notes as a suffix,
// or returns "" when there are none.
func FacilitatorNotes(s *models.StudentRecord, subjects []models.ComputedSubject) string {
	var notes []string
	for _, cs := range subjects {
		if text := strings.TrimSpace(s.SubjectRemarks[cs.Subject]); text != "" {
			notes = append(notes, cs.Subject+": "+text)
		}
	}
	if len(notes) == 0 {
		return ""
	}
	return " [Facilitator Notes: " + strings.Join(notes, "; ") + "]"
}

// TeacherSummary is the generated class-teacher sentence.
func TeacherSummary(category models.Category, aggregate int) string {
	lead := fmt.Sprintf("Overall performance: %s with an aggregate of %d.", category, aggregate)
	if aggregate <= encouragingAggregate {
		return lead + " Excellent work; keep it up."
	}
	return lead + " More effort required to improve aggregate."
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
