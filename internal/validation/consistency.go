package validation

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spboyer/scorecard/internal/models"
	"gopkg.in/yaml.v3"
)

// checkConsistency reports problems that span several fields: duplicate
// student IDs, and Science breakdowns that exceed the configured base.
// It expects data that already passed the schema.
func checkConsistency(data []byte) []string {
	var snap models.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return []string{fmt.Sprintf("decoding snapshot: %v", err)}
	}

	var errs []string
	seen := make(map[int]int, len(snap.Students))
	for i, s := range snap.Students {
		if first, dup := seen[s.ID]; dup {
			errs = append(errs, fmt.Sprintf("/students/%d/id: duplicate id %d (first used at /students/%d)", i, s.ID, first))
			continue
		}
		seen[s.ID] = i
	}

	base := snap.Settings.ScienceBaseScore
	if base == 0 {
		// filled from project config later
		base = models.ScienceBase140
	}
	for i, s := range snap.Students {
		for _, subject := range slices.Sorted(maps.Keys(s.ScoreDetails)) {
			d := s.ScoreDetails[subject]
			if sum := d.SectionA + d.SectionB; sum > float64(base) {
				errs = append(errs, fmt.Sprintf("/students/%d/scoreDetails/%s: sections sum to %g, above the science base of %d", i, subject, sum, base))
			}
		}
	}
	return errs
}
