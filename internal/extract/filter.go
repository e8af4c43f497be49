package extract

import (
	"strings"

	"github.com/inkwell-data/policyscan/internal/model"
)

// Filter drops candidates that are artifacts rather than field values:
// percent figures, parenthetical annotations, truncated codes, and bare
// page-number/year shapes. Purely subtractive; values are never modified.
func Filter(candidates []model.Candidate, reg *model.FieldRegistry) []model.Candidate {
	var kept []model.Candidate
	for _, c := range candidates {
		def := reg.ByKey(c.FieldKey)
		if def == nil {
			continue
		}
		if c.Source == model.SourceText && (followedByPercent(c) || inParentheses(c)) {
			continue
		}
		switch def.Category {
		case model.CategoryCode:
			if len(c.Raw) < minCodeLength {
				continue
			}
		case model.CategoryCurrency:
			if isBareNoiseNumber(c) {
				continue
			}
		}
		kept = append(kept, c)
	}
	return kept
}

// followedByPercent reports whether the match is immediately followed by a
// percent sign in its window, allowing intervening spaces ("18 %").
func followedByPercent(c model.Candidate) bool {
	if c.End() >= len(c.Window) {
		return false
	}
	rest := strings.TrimLeft(c.Window[c.End():], " ")
	return strings.HasPrefix(rest, "%")
}

// inParentheses reports whether the match is enclosed in parentheses within
// its window. Parenthetical figures typically denote rates or negative
// adjustments, not the headline amount.
func inParentheses(c model.Candidate) bool {
	if c.Distance > len(c.Window) || c.End() > len(c.Window) {
		return false
	}
	before := c.Window[:c.Distance]
	open := strings.LastIndex(before, "(")
	if open < 0 || strings.Contains(before[open:], ")") {
		return false
	}
	after := c.Window[c.End():]
	closeIdx := strings.Index(after, ")")
	if closeIdx < 0 {
		return false
	}
	return !strings.Contains(after[:closeIdx], "(")
}

// isBareNoiseNumber drops unprefixed integers that look like page numbers
// (1-3 digits) or calendar years, which the permissive currency shape would
// otherwise admit.
func isBareNoiseNumber(c model.Candidate) bool {
	v, ok := c.Value.(float64)
	if !ok {
		return false
	}
	raw := c.Raw
	if strings.ContainsAny(raw, "₹$£") ||
		strings.Contains(raw, ",") || strings.Contains(raw, ".") {
		return false
	}
	upper := strings.ToUpper(raw)
	if strings.Contains(upper, "RS") || strings.Contains(upper, "INR") || strings.Contains(upper, "USD") {
		return false
	}
	if len(raw) <= 3 {
		return true
	}
	return len(raw) == 4 && v >= 1900 && v <= 2099
}
