package extract

import (
	"github.com/inkwell-data/policyscan/internal/model"
)

var (
	lifeIndicators   = []string{"cash_value", "bonus"}
	healthIndicators = []string{"deductible"}
	autoIndicators   = []string{"vehicle_registration", "net_premium"}
)

// ClassifyDocument labels the document type from which fields resolved.
// Highest indicator count wins; any tie, including all-zero, falls back to
// the generic label rather than guessing.
func ClassifyDocument(fields map[string]model.ExtractedField) model.DocumentType {
	life := countSet(fields, lifeIndicators)
	health := countSet(fields, healthIndicators)
	auto := countSet(fields, autoIndicators)

	switch {
	case life > health && life > auto:
		return model.DocTypeLife
	case health > life && health > auto:
		return model.DocTypeHealth
	case auto > life && auto > health:
		return model.DocTypeAuto
	default:
		return model.DocTypeGeneral
	}
}

func countSet(fields map[string]model.ExtractedField, keys []string) int {
	n := 0
	for _, k := range keys {
		if f, ok := fields[k]; ok && f.IsSet() && !f.Derived {
			n++
		}
	}
	return n
}
