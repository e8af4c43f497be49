package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/inkwell-data/policyscan/internal/model"
)

// RawValue is a shape match inside a window, before any field semantics are
// applied. Start/End are offsets within the window.
type RawValue struct {
	Raw   string
	Value any
	Start int
	End   int
}

// Ordered alternation: symbol-prefixed amounts first, then grouped amounts,
// then bare decimals. Grouping accepts both western (1,500,000) and Indian
// (10,00,000) separators.
var currencyRe = regexp.MustCompile(
	`(?:₹|Rs\.?|INR|USD|\$|£)\s*[0-9][0-9,]*(?:\.[0-9]{1,2})?` +
		`|\b[0-9]{1,3}(?:,[0-9]{2,3})+(?:\.[0-9]{2})?\b` +
		`|\b[0-9]+\.[0-9]{2}\b` +
		`|\b[0-9]+\b`)

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[0-9]{2}[-/][0-9]{2}[-/][0-9]{4}\b`),
	regexp.MustCompile(`\b[0-9]{4}[-/][0-9]{2}[-/][0-9]{2}\b`),
	regexp.MustCompile(`(?i)\b[0-9]{1,2}(?:st|nd|rd|th)?[-\s]+(?:of\s+)?(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*[-\s]+[0-9]{4}\b`),
}

// Code shapes are uppercase alphanumeric segments joined by /, -, or space.
// Lowercase letters terminate a match, which keeps prose out of code
// candidates. Space-joined segments need two characters or more so that a
// capitalized word after a code ("LI/2024/123456 Sum") does not get its
// leading letter absorbed.
var codeRe = regexp.MustCompile(`[A-Z0-9]+(?:[/\-][A-Z0-9]+| [A-Z0-9]{2,})*`)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ExtractValues produces typed candidates from a window for the given
// category, in left-to-right appearance order. Values that fail to parse
// are absent from the result, never an error.
func ExtractValues(window string, category model.FieldCategory) []RawValue {
	switch category {
	case model.CategoryCurrency:
		return extractCurrency(window)
	case model.CategoryDate:
		return extractDates(window)
	case model.CategoryCode:
		return extractCodes(window)
	}
	return nil
}

func extractCurrency(window string) []RawValue {
	var out []RawValue
	for _, loc := range currencyRe.FindAllStringIndex(window, -1) {
		raw := window[loc[0]:loc[1]]
		v, ok := parseAmount(raw)
		if !ok {
			continue
		}
		out = append(out, RawValue{Raw: raw, Value: v, Start: loc[0], End: loc[1]})
	}
	return out
}

// parseAmount normalizes a currency match: everything before the first
// digit is dropped (symbol, code, whitespace), separators are stripped,
// and the remainder is parsed as a float.
func parseAmount(raw string) (float64, bool) {
	i := strings.IndexFunc(raw, func(r rune) bool { return r >= '0' && r <= '9' })
	if i < 0 {
		return 0, false
	}
	digits := strings.ReplaceAll(raw[i:], ",", "")
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func extractDates(window string) []RawValue {
	var out []RawValue
	for _, re := range datePatterns {
		for _, loc := range re.FindAllStringIndex(window, -1) {
			raw := window[loc[0]:loc[1]]
			iso, ok := normalizeDate(raw)
			if !ok {
				continue
			}
			out = append(out, RawValue{Raw: raw, Value: iso, Start: loc[0], End: loc[1]})
		}
	}
	// Restore appearance order across patterns, then drop overlaps so a
	// DD-MM-YYYY match is not repeated by a narrower pattern.
	sort.SliceStable(out, func(a, b int) bool { return out[a].Start < out[b].Start })
	return dedupeOverlaps(out)
}

// normalizeDate converts a raw date match to canonical YYYY-MM-DD form.
// Out-of-range components are discarded, not corrected.
func normalizeDate(raw string) (string, bool) {
	s := strings.ReplaceAll(raw, "/", "-")
	for _, layout := range []string{"02-01-2006", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return normalizeWordDate(raw)
}

// normalizeWordDate handles "15 Jan 2024", "15-Jan-2024", and ordinal
// forms like "1st January 2024".
func normalizeWordDate(raw string) (string, bool) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == '-' || r == '\t'
	})
	if len(fields) == 4 && strings.EqualFold(fields[1], "of") {
		fields = []string{fields[0], fields[2], fields[3]}
	}
	if len(fields) != 3 {
		return "", false
	}
	dayStr := strings.ToLower(fields[0])
	for _, suffix := range []string{"st", "nd", "rd", "th"} {
		dayStr = strings.TrimSuffix(dayStr, suffix)
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return "", false
	}
	monKey := strings.ToLower(fields[1])
	if len(monKey) < 3 {
		return "", false
	}
	month, ok := monthsByPrefix[monKey[:3]]
	if !ok {
		return "", false
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return "", false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month || t.Year() != year {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

func extractCodes(window string) []RawValue {
	var out []RawValue
	for _, loc := range codeRe.FindAllStringIndex(window, -1) {
		raw := strings.Trim(window[loc[0]:loc[1]], " /-")
		if len(raw) < minCodeLength || len(raw) > maxCodeLength {
			continue
		}
		if !strings.ContainsAny(raw, "0123456789") {
			continue
		}
		start := loc[0] + strings.Index(window[loc[0]:loc[1]], raw)
		out = append(out, RawValue{Raw: raw, Value: raw, Start: start, End: start + len(raw)})
	}
	return out
}

func dedupeOverlaps(vals []RawValue) []RawValue {
	var out []RawValue
	lastEnd := -1
	for _, v := range vals {
		if v.Start < lastEnd {
			continue
		}
		out = append(out, v)
		lastEnd = v.End
	}
	return out
}
