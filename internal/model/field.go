package model

import (
	"os"
	"sort"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// FieldCategory determines which value shape a field's candidates must match.
type FieldCategory string

const (
	CategoryCurrency FieldCategory = "currency"
	CategoryDate     FieldCategory = "date"
	CategoryCode     FieldCategory = "code"
)

// FieldDefinition declares a target field: its key, value shape, and the
// keyword synonyms used to anchor it in document text.
type FieldDefinition struct {
	Key      string        `json:"key" yaml:"key"`
	Category FieldCategory `json:"category" yaml:"category"`
	Keywords []string      `json:"keywords" yaml:"keywords"`
}

// FieldRegistry is an indexed, immutable collection of field definitions.
// Keywords are held longest-first so that more specific phrasings are tried
// before their substrings.
type FieldRegistry struct {
	Fields  []FieldDefinition
	byKey   map[string]*FieldDefinition
	longest map[string]int
}

// NewFieldRegistry creates a FieldRegistry with indexed lookups.
// Each field's keyword list is sorted longest-first; the longest keyword
// length per field is precomputed for specificity scoring.
func NewFieldRegistry(fields []FieldDefinition) (*FieldRegistry, error) {
	if len(fields) == 0 {
		return nil, eris.New("model: field registry requires at least one field")
	}
	r := &FieldRegistry{
		Fields:  fields,
		byKey:   make(map[string]*FieldDefinition, len(fields)),
		longest: make(map[string]int, len(fields)),
	}
	for i := range r.Fields {
		f := &r.Fields[i]
		if f.Key == "" {
			return nil, eris.New("model: field definition with empty key")
		}
		if _, dup := r.byKey[f.Key]; dup {
			return nil, eris.Errorf("model: duplicate field key %q", f.Key)
		}
		switch f.Category {
		case CategoryCurrency, CategoryDate, CategoryCode:
		default:
			return nil, eris.Errorf("model: field %q has unknown category %q", f.Key, f.Category)
		}
		if len(f.Keywords) == 0 {
			return nil, eris.Errorf("model: field %q has no keywords", f.Key)
		}
		sort.SliceStable(f.Keywords, func(a, b int) bool {
			return len(f.Keywords[a]) > len(f.Keywords[b])
		})
		r.byKey[f.Key] = f
		r.longest[f.Key] = len(f.Keywords[0])
	}
	return r, nil
}

// ByKey returns the field definition for the given key, or nil if not found.
func (r *FieldRegistry) ByKey(key string) *FieldDefinition {
	return r.byKey[key]
}

// LongestKeyword returns the length of the longest keyword registered for
// the given field key, or 0 if the field is unknown.
func (r *FieldRegistry) LongestKeyword(key string) int {
	return r.longest[key]
}

// Keys returns all field keys in registration order.
func (r *FieldRegistry) Keys() []string {
	keys := make([]string, 0, len(r.Fields))
	for i := range r.Fields {
		keys = append(keys, r.Fields[i].Key)
	}
	return keys
}

// LoadFieldsFile reads field definitions from a YAML file, for per-insurer
// keyword tuning without a rebuild.
func LoadFieldsFile(path string) ([]FieldDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "model: read fields file %s", path)
	}
	var doc struct {
		Fields []FieldDefinition `yaml:"fields"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrapf(err, "model: parse fields file %s", path)
	}
	if len(doc.Fields) == 0 {
		return nil, eris.Errorf("model: fields file %s defines no fields", path)
	}
	return doc.Fields, nil
}

// DefaultFields returns the built-in field set covering life, health, and
// auto policy documents.
func DefaultFields() []FieldDefinition {
	return []FieldDefinition{
		{Key: "policy_number", Category: CategoryCode, Keywords: []string{
			"policy number", "policy no", "policy #", "certificate number",
			"certificate no", "policy id",
		}},
		{Key: "vehicle_registration", Category: CategoryCode, Keywords: []string{
			"vehicle registration", "registration number", "registration no",
			"vehicle no", "reg no",
		}},
		{Key: "issue_date", Category: CategoryDate, Keywords: []string{
			"issue date", "date of issue", "policy issue", "issued on",
			"commencement date",
		}},
		{Key: "effective_date", Category: CategoryDate, Keywords: []string{
			"effective date", "start date", "commence date", "from date",
			"policy start", "effective from",
		}},
		{Key: "expiry_date", Category: CategoryDate, Keywords: []string{
			"expiry date", "maturity date", "end date", "valid till",
			"policy expiry", "expire", "maturity",
		}},
		{Key: "annual_premium", Category: CategoryCurrency, Keywords: []string{
			"annual premium", "yearly premium", "premium per annum",
			"total annual premium", "annualized premium",
		}},
		{Key: "monthly_premium", Category: CategoryCurrency, Keywords: []string{
			"monthly premium", "premium per month", "monthly installment",
			"per month",
		}},
		{Key: "total_premium", Category: CategoryCurrency, Keywords: []string{
			"total premium", "gross premium", "premium payable",
			"total amount", "amount payable",
		}},
		{Key: "net_premium", Category: CategoryCurrency, Keywords: []string{
			"net premium", "basic premium", "own damage premium",
		}},
		{Key: "sum_insured", Category: CategoryCurrency, Keywords: []string{
			"sum insured", "sum assured", "coverage limit", "cover amount",
			"insured amount", "face value", "death benefit",
		}},
		{Key: "deductible", Category: CategoryCurrency, Keywords: []string{
			"deductible", "copay", "co-payment", "co payment", "basic excess",
		}},
		{Key: "tax_amount", Category: CategoryCurrency, Keywords: []string{
			"gst", "service tax", "tax amount", "goods and services tax",
			"igst", "cgst", "sgst",
		}},
		{Key: "discount", Category: CategoryCurrency, Keywords: []string{
			"discount", "rebate", "ncb", "no claim bonus",
		}},
		{Key: "cash_value", Category: CategoryCurrency, Keywords: []string{
			"cash value", "surrender value", "maturity benefit",
			"accumulated value",
		}},
		{Key: "bonus", Category: CategoryCurrency, Keywords: []string{
			"reversionary bonus", "terminal bonus", "additional benefit",
			"bonus",
		}},
	}
}
