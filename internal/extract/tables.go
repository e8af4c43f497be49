package extract

import (
	"strings"

	"github.com/inkwell-data/policyscan/internal/model"
)

// Table type labels, matching the header vocabulary of premium breakdowns
// and coverage schedules.
const (
	TableTypePremiumBreakdown = "premium_breakdown"
	TableTypeCoverageDetails  = "coverage_details"
	TableTypeFinancial        = "financial_data"
)

var financialHeaderKeywords = []string{"premium", "amount", "coverage", "sum", "total", "benefit"}

// LabelTables classifies the supplied tables and returns the financial ones
// with their Type set. Tables whose headers carry no financial vocabulary
// are dropped from the output entirely.
func LabelTables(tables []model.TableRows) []model.TableRows {
	var labeled []model.TableRows
	for _, t := range tables {
		if len(t.Rows) == 0 {
			continue
		}
		joined := strings.ToLower(strings.Join(t.Headers, " "))
		financial := false
		for _, kw := range financialHeaderKeywords {
			if strings.Contains(joined, kw) {
				financial = true
				break
			}
		}
		if !financial {
			continue
		}
		switch {
		case strings.Contains(joined, "premium"):
			t.Type = TableTypePremiumBreakdown
		case strings.Contains(joined, "coverage") || strings.Contains(joined, "benefit"):
			t.Type = TableTypeCoverageDetails
		default:
			t.Type = TableTypeFinancial
		}
		labeled = append(labeled, t)
	}
	return labeled
}

// TableCandidates synthesizes candidates from labeled table rows. The first
// cell of a row acts as the label; when it contains a field keyword, the
// remaining cells are searched for values of the field's category. Table
// candidates carry the table source kind (and hence the scoring bonus) and
// zero anchor distance; a structured row leaves no ambiguity about which
// value belongs to the label. They compete through the normal resolver
// rather than overriding text matches unconditionally.
func TableCandidates(doc model.Document, tables []model.TableRows, reg *model.FieldRegistry) []model.Candidate {
	var candidates []model.Candidate
	for _, t := range tables {
		pageOffset := pageStartOffset(doc, t.Page)
		for _, row := range t.Rows {
			if len(row) < 2 {
				continue
			}
			label := strings.ToLower(row[0])
			cells := strings.Join(row[1:], " ")
			for i := range reg.Fields {
				def := &reg.Fields[i]
				kw, ok := matchKeyword(label, def.Keywords)
				if !ok {
					continue
				}
				for _, v := range ExtractValues(cells, def.Category) {
					candidates = append(candidates, model.Candidate{
						FieldKey: def.Key,
						Raw:      v.Raw,
						Value:    v.Value,
						Anchor: model.Anchor{
							FieldKey: def.Key,
							Keyword:  kw,
							Offset:   pageOffset,
							Page:     t.Page,
						},
						Distance: 0,
						Offset:   pageOffset,
						Window:   strings.TrimSpace(row[0] + ": " + cells),
						Source:   model.SourceTable,
						Page:     t.Page,
					})
					break // one value per row per field: the leftmost cell match
				}
			}
		}
	}
	return candidates
}

// matchKeyword returns the first (longest, given registry ordering) keyword
// contained in the row label.
func matchKeyword(label string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(label, strings.ToLower(kw)) {
			return kw, true
		}
	}
	return "", false
}

func pageStartOffset(doc model.Document, page int) int {
	for _, b := range doc.PageBoundaries {
		if b.Page == page {
			return b.Offset
		}
	}
	return 0
}
