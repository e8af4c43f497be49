package extract

import (
	"github.com/inkwell-data/policyscan/internal/model"
)

// ResolveWindows carves the forward context window for each anchor and runs
// the value extractor for the anchor's field category. The window starts at
// the anchor offset, extends WindowSize characters, and truncates at
// document end; it never looks backward past the anchor start, because the
// keyword normally precedes its value ("Total Premium: 1,500.00").
func ResolveWindows(doc model.Document, anchors []model.Anchor, reg *model.FieldRegistry, cfg Config) []model.Candidate {
	var candidates []model.Candidate
	for _, a := range anchors {
		def := reg.ByKey(a.FieldKey)
		if def == nil {
			continue
		}
		end := a.Offset + cfg.WindowSize
		if end > len(doc.Text) {
			end = len(doc.Text)
		}
		window := doc.Text[a.Offset:end]
		for _, v := range ExtractValues(window, def.Category) {
			candidates = append(candidates, model.Candidate{
				FieldKey: a.FieldKey,
				Raw:      v.Raw,
				Value:    v.Value,
				Anchor:   a,
				Distance: v.Start,
				Offset:   a.Offset + v.Start,
				Window:   window,
				Source:   model.SourceText,
				Page:     a.Page,
			})
		}
	}
	return candidates
}
