// Package cohort loads cohort snapshots from disk.
package cohort

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spboyer/scorecard/internal/grading"
	"github.com/spboyer/scorecard/internal/models"
	"github.com/spboyer/scorecard/internal/projectconfig"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for snapshot files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported snapshot format")

// LoadSnapshot reads a snapshot file. The format is chosen by extension:
// .yaml/.yml or .json.
func LoadSnapshot(path string) (*models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	snap, err := ParseSnapshot(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	if snap.Name == "" {
		snap.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return snap, nil
}

// ParseSnapshot decodes data according to ext (".yaml", ".yml" or ".json").
func ParseSnapshot(data []byte, ext string) (*models.Snapshot, error) {
	var snap models.Snapshot
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("parsing json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return &snap, nil
}

// ApplyDefaults fills the settings a snapshot leaves empty from the project
// configuration. Values present in the snapshot always win.
func ApplyDefaults(snap *models.Snapshot, cfg *projectconfig.ProjectConfig) error {
	if cfg == nil {
		return nil
	}
	s := &snap.Settings
	if s.ScienceBaseScore == 0 {
		s.ScienceBaseScore = cfg.Grading.ScienceBaseScore
	}
	if len(s.CoreSubjects) == 0 {
		s.CoreSubjects = slices.Clone(cfg.Grading.CoreSubjects)
	}
	if len(s.FacilitatorNames) == 0 && len(cfg.Grading.Facilitators) > 0 {
		s.FacilitatorNames = make(map[string]string, len(cfg.Grading.Facilitators))
		for subject, name := range cfg.Grading.Facilitators {
			s.FacilitatorNames[subject] = name
		}
	}
	if len(s.GradingRemarks) == 0 && len(cfg.Grading.Remarks) > 0 {
		s.GradingRemarks = make(map[models.Grade]string, len(cfg.Grading.Remarks))
		for key, label := range cfg.Grading.Remarks {
			g, err := grading.ParseGrade(key)
			if err != nil {
				return fmt.Errorf("grading remarks in %s: %w", projectconfig.FileName, err)
			}
			s.GradingRemarks[g] = label
		}
	}
	return nil
}
