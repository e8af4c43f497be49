package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-data/policyscan/internal/model"
)

func TestExtractCurrency(t *testing.T) {
	tests := []struct {
		name   string
		window string
		want   []float64
	}{
		{"rupee symbol", "Premium: ₹25,000.00 due", []float64{25000}},
		{"rs prefix", "Sum Insured: Rs. 10,00,000", []float64{1000000}},
		{"inr prefix", "INR 100000 payable", []float64{100000}},
		{"bare with separator and decimals", "Total Premium: 1,500.00", []float64{1500}},
		{"bare decimal", "GST: 270.00 extra", []float64{270}},
		{"suffix slash dash", "Amount ₹4,500/- only", []float64{4500}},
		{"multiple values in order", "Net: 1,000.00 Tax: 180.00", []float64{1000, 180}},
		{"dollar", "Deductible: $500.00", []float64{500}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vals := ExtractValues(tt.window, model.CategoryCurrency)
			require.Len(t, vals, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want, vals[i].Value)
			}
		})
	}
}

func TestExtractCurrency_OrderMatchesAppearance(t *testing.T) {
	vals := ExtractValues("a 1,500.00 b 270.00 c ₹99.00", model.CategoryCurrency)
	require.Len(t, vals, 3)
	assert.True(t, vals[0].Start < vals[1].Start)
	assert.True(t, vals[1].Start < vals[2].Start)
}

func TestExtractDates(t *testing.T) {
	tests := []struct {
		name   string
		window string
		want   []string
	}{
		{"ddmmyyyy slashes", "Issue Date: 15/01/2024", []string{"2024-01-15"}},
		{"ddmmyyyy hyphens", "Issue Date: 15-01-2024", []string{"2024-01-15"}},
		{"iso", "Start: 2024-01-15", []string{"2024-01-15"}},
		{"month name", "Maturity Date: 15 Jan 2024", []string{"2024-01-15"}},
		{"month name hyphens", "Valid till 15-Jan-2024", []string{"2024-01-15"}},
		{"ordinal day", "Maturity Date: 15th January 2044", []string{"2044-01-15"}},
		{"first ordinal", "Effective from 1st March 2025", []string{"2025-03-01"}},
		{"invalid day discarded", "Date: 32/01/2024", nil},
		{"invalid month discarded", "Date: 15/13/2024", nil},
		{"feb 30 discarded", "Date: 30/02/2024", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vals := ExtractValues(tt.window, model.CategoryDate)
			require.Len(t, vals, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want, vals[i].Value)
			}
		})
	}
}

func TestExtractDates_NoOverlapDuplicates(t *testing.T) {
	vals := ExtractValues("From 01/04/2024 to 31/03/2025", model.CategoryDate)
	require.Len(t, vals, 2)
	assert.Equal(t, "2024-04-01", vals[0].Value)
	assert.Equal(t, "2025-03-31", vals[1].Value)
}

func TestExtractCodes(t *testing.T) {
	tests := []struct {
		name   string
		window string
		want   []string
	}{
		{"policy number slashes", "Policy Number: LI/2024/123456", []string{"LI/2024/123456"}},
		{"hyphenated", "Policy No: AB-123456", []string{"AB-123456"}},
		{"vehicle spaced", "Registration No: UP 14 DX 9941", []string{"UP 14 DX 9941"}},
		{"vehicle compact", "Vehicle No: MH12AB1234", []string{"MH12AB1234"}},
		{"vehicle hyphens", "Reg No: MH-12-AB-1234", []string{"MH-12-AB-1234"}},
		{"too short dropped", "Ref: AB12", nil},
		{"letters only dropped", "Section: POLICY TERMS", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vals := ExtractValues(tt.window, model.CategoryCode)
			require.Len(t, vals, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want, vals[i].Value)
			}
		})
	}
}

func TestExtractCodes_MultipleInSameText(t *testing.T) {
	vals := ExtractValues("Vehicles: UP 14 DX 9941 and MH12AB1234 listed", model.CategoryCode)
	require.Len(t, vals, 2)
	assert.Equal(t, "UP 14 DX 9941", vals[0].Value)
	assert.Equal(t, "MH12AB1234", vals[1].Value)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"₹25,000.00", 25000, true},
		{"Rs. 100000", 100000, true},
		{"1,500.00", 1500, true},
		{"Rs.", 0, false},
	}
	for _, tt := range tests {
		v, ok := parseAmount(tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
		if ok {
			assert.Equal(t, tt.want, v, tt.raw)
		}
	}
}
