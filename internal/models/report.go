package models

import "time"

// Report is the complete output of one pipeline run over one Snapshot.
type Report struct {
	ID               string             `json:"report_id" yaml:"report_id"`
	Cohort           string             `json:"cohort" yaml:"cohort"`
	GeneratedAt      time.Time          `json:"generated_at" yaml:"generated_at"`
	Subjects         []string           `json:"subjects" yaml:"subjects"`
	Settings         Settings           `json:"settings" yaml:"settings"`
	Statistics       ClassStatistics    `json:"statistics" yaml:"statistics"`
	Students         []ProcessedStudent `json:"students" yaml:"students"`
	Facilitators     []FacilitatorStats `json:"facilitators" yaml:"facilitators"`
	Digest           Digest             `json:"summary" yaml:"summary"`
	SubjectSummaries []SubjectSummary   `json:"subject_summaries" yaml:"subject_summaries"`
}

// Digest summarizes the whole cohort.
type Digest struct {
	CohortSize     int              `json:"cohort_size" yaml:"cohort_size"`
	CategoryCounts map[Category]int `json:"category_counts" yaml:"category_counts"`
	BestAggregate  int              `json:"best_aggregate" yaml:"best_aggregate"`
	WorstAggregate int              `json:"worst_aggregate" yaml:"worst_aggregate"`
	MeanAggregate  float64          `json:"mean_aggregate" yaml:"mean_aggregate"`
	MeanTotalScore float64          `json:"mean_total_score" yaml:"mean_total_score"`
	TopStudent     string           `json:"top_student,omitempty" yaml:"top_student,omitempty"`
}

// SubjectSummary describes how the cohort did in one subject.
type SubjectSummary struct {
	Subject     string        `json:"subject" yaml:"subject"`
	Mean        float64       `json:"mean" yaml:"mean"`
	StdDev      float64       `json:"std_dev" yaml:"std_dev"`
	MinScore    int           `json:"min_score" yaml:"min_score"`
	MaxScore    int           `json:"max_score" yaml:"max_score"`
	GradeCounts map[Grade]int `json:"grade_counts" yaml:"grade_counts"`
	// CreditPassRate is the share (0-1) of students graded C6 or better.
	CreditPassRate float64 `json:"credit_pass_rate" yaml:"credit_pass_rate"`
}

// Student returns the processed student with id.
func (r *Report) Student(id int) (ProcessedStudent, bool) {
	for _, s := range r.Students {
		if s.ID == id {
			return s, true
		}
	}
	return ProcessedStudent{}, false
}
