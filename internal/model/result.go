package model

// DocumentType labels the inferred kind of insurance document.
type DocumentType string

const (
	DocTypeLife    DocumentType = "life_insurance"
	DocTypeHealth  DocumentType = "health_insurance"
	DocTypeAuto    DocumentType = "auto_insurance"
	DocTypeGeneral DocumentType = "general_insurance"
)

// ConfidenceBucket groups confidence scores into coarse trust levels.
type ConfidenceBucket string

const (
	BucketHigh   ConfidenceBucket = "high"
	BucketMedium ConfidenceBucket = "medium"
	BucketLow    ConfidenceBucket = "low"
)

// BucketThresholds holds the lower bounds of the high and medium buckets.
type BucketThresholds struct {
	High   float64 `yaml:"high" mapstructure:"high"`
	Medium float64 `yaml:"medium" mapstructure:"medium"`
}

// DefaultBuckets returns the standard high/medium cutoffs.
func DefaultBuckets() BucketThresholds {
	return BucketThresholds{High: 0.8, Medium: 0.6}
}

// Bucket classifies a confidence score.
func (b BucketThresholds) Bucket(confidence float64) ConfidenceBucket {
	switch {
	case confidence >= b.High:
		return BucketHigh
	case confidence >= b.Medium:
		return BucketMedium
	default:
		return BucketLow
	}
}

// ExtractedField is the final resolved value for one field. An unset field
// has a nil Value and confidence exactly 0.
type ExtractedField struct {
	Value      any     `json:"value"`
	Confidence float64 `json:"confidence"`
	Page       int     `json:"page,omitempty"`
	Context    string  `json:"context,omitempty"`
	Derived    bool    `json:"derived,omitempty"`
}

// IsSet reports whether the field resolved to a value.
func (f ExtractedField) IsSet() bool {
	return f.Value != nil
}

// CurrencyValue returns the field's value as a float64 when it is a set
// currency amount.
func (f ExtractedField) CurrencyValue() (float64, bool) {
	v, ok := f.Value.(float64)
	return v, ok
}

// DocumentMetadata describes the processed document.
type DocumentMetadata struct {
	Filename     string       `json:"filename"`
	Pages        int          `json:"pages"`
	DocumentType DocumentType `json:"document_type"`
}

// ExtractionResult is the immutable document-level output: exactly one
// ExtractedField per registered field key, the labeled tables, and any
// non-fatal warnings accumulated along the way.
type ExtractionResult struct {
	DocumentMetadata DocumentMetadata          `json:"document_metadata"`
	Fields           map[string]ExtractedField `json:"fields"`
	TablesExtracted  []TableRows               `json:"tables_extracted"`
	Warnings         []string                  `json:"warnings"`
}
