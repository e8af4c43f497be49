package report

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/inkwell-data/policyscan/internal/model"
)

// FormatSummary generates a human-readable extraction report.
func FormatSummary(res *model.ExtractionResult, buckets model.BucketThresholds) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	fmt.Fprintf(&b, "# Extraction Report: %s\n", res.DocumentMetadata.Filename)
	fmt.Fprintf(&b, "Pages: %d\n", res.DocumentMetadata.Pages)
	fmt.Fprintf(&b, "Document type: %s\n\n", res.DocumentMetadata.DocumentType)

	// Summary.
	set, derived := 0, 0
	for _, f := range res.Fields {
		if f.IsSet() {
			set++
		}
		if f.Derived {
			derived++
		}
	}
	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "- Fields resolved: %d/%d\n", set, len(res.Fields))
	fmt.Fprintf(&b, "- Derived fields: %d\n", derived)
	fmt.Fprintf(&b, "- Tables extracted: %d\n", len(res.TablesExtracted))
	fmt.Fprintf(&b, "- Warnings: %d\n\n", len(res.Warnings))

	// Field values, sorted by key.
	b.WriteString("## Extracted Fields\n")
	keys := make([]string, 0, len(res.Fields))
	for k := range res.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		f := res.Fields[k]
		if !f.IsSet() {
			fmt.Fprintf(&b, "- %s: (unset)\n", k)
			continue
		}
		value := formatValue(p, f.Value)
		marker := ""
		if f.Derived {
			marker = ", derived"
		}
		fmt.Fprintf(&b, "- **%s**: %s [p%d, %.0f%% %s%s]\n",
			k, value, f.Page, f.Confidence*100, buckets.Bucket(f.Confidence), marker)
	}
	b.WriteString("\n")

	if len(res.TablesExtracted) > 0 {
		b.WriteString("## Tables\n")
		for i, t := range res.TablesExtracted {
			fmt.Fprintf(&b, "- Table %d (page %d): %s, %d rows\n", i+1, t.Page, t.Type, len(t.Rows))
		}
		b.WriteString("\n")
	}

	if len(res.Warnings) > 0 {
		b.WriteString("## Warnings\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	return b.String()
}

func formatValue(p *message.Printer, v any) string {
	switch val := v.(type) {
	case float64:
		return p.Sprintf("%.2f", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
