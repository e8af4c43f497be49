package extract

import (
	"fmt"

	"github.com/inkwell-data/policyscan/internal/model"
)

// Reconcile applies the fixed cross-field rule set, once, in order. Rules
// never iterate to a fixed point, so adding a bidirectional rule cannot
// oscillate. Derived fields carry the Derived provenance flag and a
// confidence discounted from their inputs, never a fabricated equal score.
func Reconcile(fields map[string]model.ExtractedField, cfg Config) (map[string]model.ExtractedField, []string) {
	out := make(map[string]model.ExtractedField, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	var warnings []string

	// Rule 1: total_premium = net_premium + tax_amount.
	total := out["total_premium"]
	net, netOK := out["net_premium"].CurrencyValue()
	if !isPositiveCurrency(total) && netOK && net > 0 {
		tax, taxOK := out["tax_amount"].CurrencyValue()
		if !taxOK {
			tax = 0 // unset never null-propagates into derivation arithmetic
		}
		conf := out["net_premium"].Confidence
		if taxOK && out["tax_amount"].Confidence < conf {
			conf = out["tax_amount"].Confidence
		}
		conf -= cfg.DerivationPenalty
		if conf < 0 {
			conf = 0
		}
		out["total_premium"] = model.ExtractedField{
			Value:      net + tax,
			Confidence: conf,
			Page:       out["net_premium"].Page,
			Context:    "derived: net_premium + tax_amount",
			Derived:    true,
		}
		warnings = append(warnings, fmt.Sprintf(
			"total_premium derived from net_premium (%.2f) + tax_amount (%.2f)", net, tax))
	}

	// Rule 2: annual_premium = monthly_premium * 12.
	annual := out["annual_premium"]
	monthly, monthlyOK := out["monthly_premium"].CurrencyValue()
	if !isPositiveCurrency(annual) && monthlyOK && monthly > 0 {
		conf := out["monthly_premium"].Confidence - cfg.DerivationPenalty
		if conf < 0 {
			conf = 0
		}
		out["annual_premium"] = model.ExtractedField{
			Value:      monthly * 12,
			Confidence: conf,
			Page:       out["monthly_premium"].Page,
			Context:    "derived: monthly_premium * 12",
			Derived:    true,
		}
		warnings = append(warnings, fmt.Sprintf(
			"annual_premium derived from monthly_premium (%.2f) * 12", monthly))
	}

	return out, warnings
}

func isPositiveCurrency(f model.ExtractedField) bool {
	v, ok := f.CurrencyValue()
	return ok && v > 0
}
