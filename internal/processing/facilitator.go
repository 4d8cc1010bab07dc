package processing

import (
	"strings"

	"github.com/spboyer/scorecard/internal/models"
)

// FacilitatorTBA is used when no facilitator can be resolved for a subject.
const FacilitatorTBA = "TBA"

// ResolveFacilitator picks the facilitator for subject in priority order:
// the first roster member who teaches it, then the subject-to-name map, then
// FacilitatorTBA. Blank names never win.
func ResolveFacilitator(subject string, settings models.Settings) string {
	for _, m := range settings.Staff {
		if name := strings.TrimSpace(m.Name); name != "" && m.Teaches(subject) {
			return name
		}
	}
	if name := strings.TrimSpace(settings.FacilitatorNames[subject]); name != "" {
		return name
	}
	return FacilitatorTBA
}
