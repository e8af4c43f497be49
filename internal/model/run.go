package model

import "time"

// Run is one stored extraction: the document processed and its full result.
type Run struct {
	ID           string            `json:"id"`
	Filename     string            `json:"filename"`
	DocumentType DocumentType      `json:"document_type"`
	Result       *ExtractionResult `json:"result"`
	CreatedAt    time.Time         `json:"created_at"`
}

// RunFilter specifies criteria for listing stored runs.
type RunFilter struct {
	DocumentType DocumentType `json:"document_type,omitempty"`
	Filename     string       `json:"filename,omitempty"`
	Limit        int          `json:"limit,omitempty"`
	Offset       int          `json:"offset,omitempty"`
}
