package models

// ClassStatistics holds per-subject cohort statistics. The keys of both maps
// are exactly the active subject list the statistics were computed for.
type ClassStatistics struct {
	SubjectMeans   map[string]float64 `json:"subject_means" yaml:"subject_means"`
	SubjectStdDevs map[string]float64 `json:"subject_std_devs" yaml:"subject_std_devs"`
}

// ComputedSubject is one subject's derived result for one student.
type ComputedSubject struct {
	Subject     string  `json:"subject" yaml:"subject"`
	Score       int     `json:"score" yaml:"score"`
	Grade       Grade   `json:"grade" yaml:"grade"`
	GradeValue  int     `json:"grade_value" yaml:"grade_value"`
	GradeRemark string  `json:"grade_remark" yaml:"grade_remark"`
	Remark      string  `json:"remark" yaml:"remark"`
	Facilitator string  `json:"facilitator" yaml:"facilitator"`
	ZScore      float64 `json:"z_score" yaml:"z_score"`
}

// ProcessedStudent is the full derived result for one StudentRecord.
type ProcessedStudent struct {
	ID                   int               `json:"id" yaml:"id"`
	Name                 string            `json:"name" yaml:"name"`
	Subjects             []ComputedSubject `json:"subjects" yaml:"subjects"`
	TotalScore           int               `json:"total_score" yaml:"total_score"`
	BestSixAggregate     int               `json:"best_six_aggregate" yaml:"best_six_aggregate"`
	BestCoreSubjects     []ComputedSubject `json:"best_core_subjects" yaml:"best_core_subjects"`
	BestElectiveSubjects []ComputedSubject `json:"best_elective_subjects" yaml:"best_elective_subjects"`
	Category             Category          `json:"category" yaml:"category"`
	OverallRemark        string            `json:"overall_remark" yaml:"overall_remark"`
	Recommendation       string            `json:"recommendation" yaml:"recommendation"`
	WeaknessAnalysis     string            `json:"weakness_analysis" yaml:"weakness_analysis"`
	Rank                 int               `json:"rank" yaml:"rank"`

	PassThrough `yaml:",inline"`
}

// Subject returns the computed result for name, if the student has one.
func (p *ProcessedStudent) Subject(name string) (ComputedSubject, bool) {
	for _, s := range p.Subjects {
		if s.Subject == name {
			return s, true
		}
	}
	return ComputedSubject{}, false
}

// FacilitatorStats rolls up grades for one (facilitator, subject) pair.
type FacilitatorStats struct {
	FacilitatorName       string        `json:"facilitator_name" yaml:"facilitator_name"`
	Subject               string        `json:"subject" yaml:"subject"`
	StudentCount          int           `json:"student_count" yaml:"student_count"`
	GradeCounts           map[Grade]int `json:"grade_counts" yaml:"grade_counts"`
	TotalGradeValue       int           `json:"total_grade_value" yaml:"total_grade_value"`
	AverageGradeValue     float64       `json:"average_grade_value" yaml:"average_grade_value"`
	PerformancePercentage float64       `json:"performance_percentage" yaml:"performance_percentage"`
	PerformanceGrade      Grade         `json:"performance_grade" yaml:"performance_grade"`
}
