package model

// SourceKind records whether a candidate came from free text or a
// structured table row.
type SourceKind string

const (
	SourceText  SourceKind = "text"
	SourceTable SourceKind = "table"
)

// ValidationOutcome is the result of range/shape sanity checking.
type ValidationOutcome string

const (
	ValidationPassed        ValidationOutcome = "passed"
	ValidationFailed        ValidationOutcome = "failed"
	ValidationNotApplicable ValidationOutcome = "not_applicable"
)

// Anchor is a located occurrence of a field's keyword in document text.
type Anchor struct {
	FieldKey string `json:"field_key"`
	Keyword  string `json:"keyword"`
	Offset   int    `json:"offset"`
	Page     int    `json:"page"`
}

// Candidate is a prospective field value extracted from the context window
// around an anchor (or synthesized from a table row). Candidates are never
// mutated after creation; re-scoring produces a ScoredCandidate.
type Candidate struct {
	FieldKey string
	Raw      string
	Value    any // float64 for currency, ISO date string for date, raw string for code
	Anchor   Anchor
	Distance int // offset of the match start relative to the anchor, within [0, window size]
	Offset   int // absolute offset in document text; tables use their page's start offset
	Window   string
	Source   SourceKind
	Page     int
}

// End returns the candidate's match end offset within its window.
func (c Candidate) End() int {
	return c.Distance + len(c.Raw)
}

// ScoredCandidate is a Candidate plus its confidence and validation outcome.
type ScoredCandidate struct {
	Candidate
	Confidence float64
	Validation ValidationOutcome
}
