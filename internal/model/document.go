package model

// PageBoundary marks the character offset where a page begins.
type PageBoundary struct {
	Page   int `json:"page"`
	Offset int `json:"offset"`
}

// TableRows is one structured table supplied by the external table
// extraction layer. Type is assigned during extraction (premium_breakdown,
// coverage_details, financial_data).
type TableRows struct {
	Page    int        `json:"page"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
	Type    string     `json:"table_type,omitempty"`
}

// Document is the pre-extracted input to the engine. The engine never opens
// or parses binary PDF structure; text and tables arrive already
// materialized.
type Document struct {
	Filename       string         `json:"filename"`
	Text           string         `json:"document_text"`
	PageBoundaries []PageBoundary `json:"page_boundaries,omitempty"`
	Tables         []TableRows    `json:"tables,omitempty"`
}

// PageAt returns the page number containing the given character offset.
// Documents without page boundaries are treated as a single page 1.
func (d Document) PageAt(offset int) int {
	page := 1
	for _, b := range d.PageBoundaries {
		if b.Offset > offset {
			break
		}
		page = b.Page
	}
	return page
}

// PageCount returns the number of pages, minimum 1 for non-empty documents.
func (d Document) PageCount() int {
	n := len(d.PageBoundaries)
	if n == 0 {
		if d.Text == "" && len(d.Tables) == 0 {
			return 0
		}
		return 1
	}
	return n
}
