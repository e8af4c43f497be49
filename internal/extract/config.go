package extract

import "github.com/rotisserie/eris"

// Scoring weights. These are behavior, not tuning knobs: changing any of
// them invalidates the recorded test fixtures.
const (
	proximityWeight   = 0.5
	specificityWeight = 0.3
	tableBonus        = 0.15
	validationBonus   = 0.1
)

// minCodeLength is the shortest code-category match accepted, applied both
// by the shape pattern and again by the filter to defend against matches
// truncated at window boundaries.
const minCodeLength = 6

// maxCodeLength bounds code-category matches.
const maxCodeLength = 20

// Range bounds a plausible currency value for one field.
type Range struct {
	Min float64 `yaml:"min" mapstructure:"min"`
	Max float64 `yaml:"max" mapstructure:"max"`
}

// Config holds the engine's tunables. It is copied at construction; the
// engine never reads ambient state.
type Config struct {
	// WindowSize is the forward context window length in characters.
	WindowSize int
	// MinYear/MaxYear bound the plausible calendar range for dates.
	MinYear int
	MaxYear int
	// Ranges maps field keys to plausible currency bounds. Currency fields
	// without an entry validate as not_applicable.
	Ranges map[string]Range
	// DerivationPenalty is subtracted from the input confidence when the
	// reconciler derives a field from other fields.
	DerivationPenalty float64
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		WindowSize:        70,
		MinYear:           1990,
		MaxYear:           2050,
		Ranges:            DefaultRanges(),
		DerivationPenalty: 0.1,
	}
}

// DefaultRanges returns plausible bounds for the built-in currency fields.
// Scale is currency-unit-agnostic.
func DefaultRanges() map[string]Range {
	return map[string]Range{
		"annual_premium":  {Min: 100, Max: 1e8},
		"monthly_premium": {Min: 100, Max: 1e8},
		"total_premium":   {Min: 100, Max: 1e8},
		"net_premium":     {Min: 100, Max: 1e8},
		"sum_insured":     {Min: 1000, Max: 1e9},
		"deductible":      {Min: 0, Max: 1e5},
		"tax_amount":      {Min: 0, Max: 1e7},
		"discount":        {Min: 0, Max: 1e7},
		"cash_value":      {Min: 0, Max: 1e9},
		"bonus":           {Min: 0, Max: 1e9},
	}
}

func (c Config) validate() error {
	if c.WindowSize <= 0 {
		return eris.New("extract: window size must be positive")
	}
	if c.MinYear <= 0 || c.MaxYear < c.MinYear {
		return eris.Errorf("extract: invalid year range [%d, %d]", c.MinYear, c.MaxYear)
	}
	if c.DerivationPenalty < 0 || c.DerivationPenalty > 1 {
		return eris.Errorf("extract: derivation penalty %v outside [0, 1]", c.DerivationPenalty)
	}
	return nil
}
