package extract

import (
	"strings"

	"github.com/inkwell-data/policyscan/internal/model"
)

// Anchors locates every case-insensitive occurrence of every registered
// keyword in the document text. Synonyms are tried independently; a keyword
// occurring inside a longer synonym's match is intentionally not suppressed
// here; specificity scoring out-ranks it later.
func Anchors(doc model.Document, reg *model.FieldRegistry) []model.Anchor {
	lower := strings.ToLower(doc.Text)
	var anchors []model.Anchor
	for i := range reg.Fields {
		f := &reg.Fields[i]
		for _, kw := range f.Keywords {
			needle := strings.ToLower(kw)
			for from := 0; ; {
				idx := strings.Index(lower[from:], needle)
				if idx < 0 {
					break
				}
				offset := from + idx
				anchors = append(anchors, model.Anchor{
					FieldKey: f.Key,
					Keyword:  kw,
					Offset:   offset,
					Page:     doc.PageAt(offset),
				})
				from = offset + 1
			}
		}
	}
	return anchors
}
