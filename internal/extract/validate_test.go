package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell-data/policyscan/internal/model"
)

func TestValidate(t *testing.T) {
	reg := testRegistry(t)
	cfg := DefaultConfig()

	tests := []struct {
		name string
		c    model.Candidate
		want model.ValidationOutcome
	}{
		{
			"currency in range",
			model.Candidate{FieldKey: "total_premium", Value: 1500.0},
			model.ValidationPassed,
		},
		{
			"currency below range",
			model.Candidate{FieldKey: "total_premium", Value: 5.0},
			model.ValidationFailed,
		},
		{
			"currency above range",
			model.Candidate{FieldKey: "sum_insured", Value: 5e9},
			model.ValidationFailed,
		},
		{
			"date in range",
			model.Candidate{FieldKey: "issue_date", Value: "2024-01-15"},
			model.ValidationPassed,
		},
		{
			"date year too old",
			model.Candidate{FieldKey: "issue_date", Value: "1975-01-15"},
			model.ValidationFailed,
		},
		{
			"date year too far ahead",
			model.Candidate{FieldKey: "expiry_date", Value: "2099-01-15"},
			model.ValidationFailed,
		},
		{
			"code has no range",
			model.Candidate{FieldKey: "policy_number", Value: "LI/2024/123456"},
			model.ValidationNotApplicable,
		},
		{
			"unknown field",
			model.Candidate{FieldKey: "nonexistent", Value: 1.0},
			model.ValidationNotApplicable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.c, reg, cfg))
		})
	}
}

func TestValidate_UnboundedCurrencyFieldNotApplicable(t *testing.T) {
	reg := testRegistry(t)
	cfg := DefaultConfig()
	delete(cfg.Ranges, "discount")

	got := Validate(model.Candidate{FieldKey: "discount", Value: 100.0}, reg, cfg)
	assert.Equal(t, model.ValidationNotApplicable, got)
}
