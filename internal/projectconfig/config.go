// Package projectconfig provides the ProjectConfig struct and loader for
// .scorecard.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up by Load.
const FileName = ".scorecard.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultScienceBaseScore = 100

	DefaultOutputFormat = "table"
	DefaultOutputDir    = ""

	DefaultCacheDir = ".scorecard-cache"

	DefaultWorkers = 4
)

// DefaultCoreSubjects are the subjects every student's best six draws its
// four core grades from.
var DefaultCoreSubjects = []string{"English Language", "Mathematics", "Science", "Social Studies"}

// GradingConfig holds school-wide grading settings.
type GradingConfig struct {
	ScienceBaseScore int      `yaml:"science_base_score,omitempty"`
	CoreSubjects     []string `yaml:"core_subjects,omitempty"`
	// Remarks overrides grade band labels, keyed by grade (A1..F9).
	Remarks map[string]string `yaml:"remarks,omitempty"`
	// Facilitators maps subject to facilitator name.
	Facilitators map[string]string `yaml:"facilitators,omitempty"`
}

// OutputConfig holds report output settings.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"`
	Dir    string `yaml:"dir,omitempty"`
}

// CacheConfig holds cache settings.
type CacheConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Dir     string `yaml:"dir,omitempty"`
}

// RunnerConfig holds concurrency settings for multi-cohort runs.
type RunnerConfig struct {
	Workers int `yaml:"workers,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .scorecard.yaml.
type ProjectConfig struct {
	Grading GradingConfig `yaml:"grading,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Cache   CacheConfig   `yaml:"cache,omitempty"`
	Runner  RunnerConfig  `yaml:"runner,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Grading: GradingConfig{
			ScienceBaseScore: DefaultScienceBaseScore,
			CoreSubjects:     slices.Clone(DefaultCoreSubjects),
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
			Dir:    DefaultOutputDir,
		},
		Cache: CacheConfig{
			Enabled: boolPtr(false),
			Dir:     DefaultCacheDir,
		},
		Runner: RunnerConfig{
			Workers: DefaultWorkers,
		},
	}
}

// Load finds .scorecard.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .scorecard.yaml (max 10 levels).
// Returns os.ErrNotExist if no config file is found.
func findConfigFile(dir string) ([]byte, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	// Grading
	if src.Grading.ScienceBaseScore != 0 {
		dst.Grading.ScienceBaseScore = src.Grading.ScienceBaseScore
	}
	if len(src.Grading.CoreSubjects) > 0 {
		dst.Grading.CoreSubjects = src.Grading.CoreSubjects
	}
	if len(src.Grading.Remarks) > 0 {
		dst.Grading.Remarks = src.Grading.Remarks
	}
	if len(src.Grading.Facilitators) > 0 {
		dst.Grading.Facilitators = src.Grading.Facilitators
	}

	// Output
	if src.Output.Format != "" {
		dst.Output.Format = src.Output.Format
	}
	if src.Output.Dir != "" {
		dst.Output.Dir = src.Output.Dir
	}

	// Cache
	if src.Cache.Enabled != nil {
		dst.Cache.Enabled = src.Cache.Enabled
	}
	if src.Cache.Dir != "" {
		dst.Cache.Dir = src.Cache.Dir
	}

	// Runner
	if src.Runner.Workers != 0 {
		dst.Runner.Workers = src.Runner.Workers
	}
}

// CacheEnabled reports whether caching is switched on.
func (c *ProjectConfig) CacheEnabled() bool {
	return c.Cache.Enabled != nil && *c.Cache.Enabled
}

func boolPtr(b bool) *bool {
	return &b
}
