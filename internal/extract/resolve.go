package extract

import (
	"fmt"
	"strings"

	"github.com/inkwell-data/policyscan/internal/model"
)

// ResolveFields selects the single best scored candidate per registered
// field. Higher confidence wins; ties break to the earliest document
// offset. Fields with no surviving candidates are emitted unset with
// confidence 0 and a warning, so the output always contains exactly one
// entry per registered field key.
func ResolveFields(scored []model.ScoredCandidate, reg *model.FieldRegistry) (map[string]model.ExtractedField, []string) {
	best := make(map[string]model.ScoredCandidate, len(reg.Fields))
	for _, sc := range scored {
		cur, ok := best[sc.FieldKey]
		if !ok || sc.Confidence > cur.Confidence ||
			(sc.Confidence == cur.Confidence && sc.Offset < cur.Offset) {
			best[sc.FieldKey] = sc
		}
	}

	fields := make(map[string]model.ExtractedField, len(reg.Fields))
	var warnings []string
	for _, key := range reg.Keys() {
		winner, ok := best[key]
		if !ok {
			fields[key] = model.ExtractedField{Confidence: 0}
			warnings = append(warnings, fmt.Sprintf("field %s: no candidates found", key))
			continue
		}
		fields[key] = model.ExtractedField{
			Value:      winner.Value,
			Confidence: winner.Confidence,
			Page:       winner.Page,
			Context:    strings.TrimSpace(winner.Window),
		}
		if winner.Validation == model.ValidationFailed {
			warnings = append(warnings, fmt.Sprintf(
				"field %s: value %v failed range validation", key, winner.Value))
		}
	}
	return fields, warnings
}
