package models

// Supported values for Settings.ScienceBaseScore.
const (
	ScienceBase100 = 100
	ScienceBase140 = 140
)

// StaffMember is a facilitator and the subjects they teach.
type StaffMember struct {
	Name     string   `yaml:"name" json:"name"`
	Subjects []string `yaml:"subjects" json:"subjects"`
}

// Teaches reports whether subject is in the member's subject set.
func (m StaffMember) Teaches(subject string) bool {
	for _, s := range m.Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// Settings is the immutable configuration passed to every pipeline stage.
type Settings struct {
	// FacilitatorNames maps a subject to the facilitator responsible for it.
	FacilitatorNames map[string]string `yaml:"facilitatorNames,omitempty" json:"facilitatorNames,omitempty"`
	// GradingRemarks overrides the label attached to a grade band.
	GradingRemarks map[Grade]string `yaml:"gradingRemarks,omitempty" json:"gradingRemarks,omitempty"`
	Staff          []StaffMember    `yaml:"staff,omitempty" json:"staff,omitempty"`
	// ScienceBaseScore is the maximum raw Science mark, 100 or 140.
	ScienceBaseScore int      `yaml:"scienceBaseScore,omitempty" json:"scienceBaseScore,omitempty"`
	CoreSubjects     []string `yaml:"coreSubjects,omitempty" json:"coreSubjects,omitempty"`
}

// Snapshot is a consistent bundle of cohort, active subject list and settings.
// One report is always generated from exactly one snapshot.
type Snapshot struct {
	Name     string          `yaml:"name,omitempty" json:"name,omitempty"`
	Subjects []string        `yaml:"subjects" json:"subjects"`
	Settings Settings        `yaml:"settings,omitempty" json:"settings,omitempty"`
	Students []StudentRecord `yaml:"students" json:"students"`
}
