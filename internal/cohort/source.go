package cohort

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spboyer/scorecard/internal/models"
	"github.com/spboyer/scorecard/internal/projectconfig"
)

// FileSource loads a snapshot from disk. When StudentsCSV is set its rows
// replace the snapshot's students; its subject columns become the active
// list if the snapshot has none. Path may be empty when only a CSV is given.
type FileSource struct {
	Path        string
	StudentsCSV string
	Config      *projectconfig.ProjectConfig
	// ScienceBaseScore, when non-zero, replaces whatever the snapshot and
	// project config say.
	ScienceBaseScore int
}

// Name returns the primary file of the source.
func (s *FileSource) Name() string {
	if s.Path != "" {
		return s.Path
	}
	return s.StudentsCSV
}

// Load reads the files and returns a snapshot with defaults applied.
func (s *FileSource) Load(ctx context.Context) (*models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := &models.Snapshot{}
	if s.Path != "" {
		var err error
		if snap, err = LoadSnapshot(s.Path); err != nil {
			return nil, err
		}
	}

	if s.StudentsCSV != "" {
		students, subjects, err := LoadStudentsCSV(s.StudentsCSV)
		if err != nil {
			return nil, err
		}
		snap.Students = students
		if len(snap.Subjects) == 0 {
			snap.Subjects = subjects
		}
		if snap.Name == "" {
			snap.Name = strings.TrimSuffix(filepath.Base(s.StudentsCSV), filepath.Ext(s.StudentsCSV))
		}
	}

	if s.ScienceBaseScore != 0 {
		snap.Settings.ScienceBaseScore = s.ScienceBaseScore
	}
	if err := ApplyDefaults(snap, s.Config); err != nil {
		return nil, err
	}
	return snap, nil
}
