package extract

import (
	"strconv"

	"github.com/inkwell-data/policyscan/internal/model"
)

// Validate runs the range/shape sanity check for a candidate. Currency
// values check against the field's configured bounds; dates check the
// plausible calendar-year range (misread digits produce absurd years);
// codes have no range and report not_applicable. A failed candidate is not
// discarded; it merely loses the validation bonus and is flagged in the
// output warnings.
func Validate(c model.Candidate, reg *model.FieldRegistry, cfg Config) model.ValidationOutcome {
	def := reg.ByKey(c.FieldKey)
	if def == nil {
		return model.ValidationNotApplicable
	}
	switch def.Category {
	case model.CategoryCurrency:
		v, ok := c.Value.(float64)
		if !ok {
			return model.ValidationFailed
		}
		r, bounded := cfg.Ranges[c.FieldKey]
		if !bounded {
			return model.ValidationNotApplicable
		}
		if v < r.Min || v > r.Max {
			return model.ValidationFailed
		}
		return model.ValidationPassed
	case model.CategoryDate:
		iso, ok := c.Value.(string)
		if !ok || len(iso) < 4 {
			return model.ValidationFailed
		}
		year, err := strconv.Atoi(iso[:4])
		if err != nil || year < cfg.MinYear || year > cfg.MaxYear {
			return model.ValidationFailed
		}
		return model.ValidationPassed
	default:
		return model.ValidationNotApplicable
	}
}
