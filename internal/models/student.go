package models

// ScoreDetail is the raw, un-normalized section breakdown for a subject.
// Only Science carries one today.
type ScoreDetail struct {
	SectionA float64 `yaml:"sectionA" json:"sectionA"`
	SectionB float64 `yaml:"sectionB" json:"sectionB"`
	Total    float64 `yaml:"total,omitempty" json:"total,omitempty"`
}

// StudentRecord is one learner's raw input for a computation pass.
// Records are treated as immutable while a report is being generated.
type StudentRecord struct {
	ID           int                    `yaml:"id" json:"id"`
	Name         string                 `yaml:"name" json:"name"`
	Scores       map[string]int         `yaml:"scores,omitempty" json:"scores,omitempty"`
	ScoreDetails map[string]ScoreDetail `yaml:"scoreDetails,omitempty" json:"scoreDetails,omitempty"`

	// Free text entered by facilitators and the class teacher. When present
	// these win over generated text.
	SubjectRemarks map[string]string `yaml:"subjectRemarks,omitempty" json:"subjectRemarks,omitempty"`
	FinalRemark    string            `yaml:"finalRemark,omitempty" json:"finalRemark,omitempty"`
	OverallRemark  string            `yaml:"overallRemark,omitempty" json:"overallRemark,omitempty"`
	Recommendation string            `yaml:"recommendation,omitempty" json:"recommendation,omitempty"`

	PassThrough `yaml:",inline"`
}

// PassThrough holds descriptive fields that are copied verbatim into the
// processed result.
type PassThrough struct {
	Attendance string `yaml:"attendance,omitempty" json:"attendance,omitempty" mapstructure:"attendance"`
	Age        string `yaml:"age,omitempty" json:"age,omitempty" mapstructure:"age"`
	PromotedTo string `yaml:"promotedTo,omitempty" json:"promotedTo,omitempty" mapstructure:"promotedTo"`
	Conduct    string `yaml:"conduct,omitempty" json:"conduct,omitempty" mapstructure:"conduct"`
	Interest   string `yaml:"interest,omitempty" json:"interest,omitempty" mapstructure:"interest"`
	Skills     string `yaml:"skills,omitempty" json:"skills,omitempty" mapstructure:"skills"`
}

// Score returns the flat score for subject, or 0 when none was recorded.
func (s *StudentRecord) Score(subject string) int {
	return s.Scores[subject]
}

// Detail returns the section breakdown for subject if one exists.
func (s *StudentRecord) Detail(subject string) (ScoreDetail, bool) {
	d, ok := s.ScoreDetails[subject]
	return d, ok
}
