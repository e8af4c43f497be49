package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-data/policyscan/internal/model"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := New(testRegistry(t), DefaultConfig())
	require.NoError(t, err)
	return engine
}

func TestExtract_PremiumAndTax(t *testing.T) {
	engine := testEngine(t)
	doc := model.Document{
		Filename: "policy.pdf",
		Text:     "Total Premium: 1,500.00, GST: 270.00",
	}

	res, err := engine.Extract(doc)
	require.NoError(t, err)

	total := res.Fields["total_premium"]
	assert.Equal(t, 1500.0, total.Value)
	assert.GreaterOrEqual(t, total.Confidence, 0.6)

	tax := res.Fields["tax_amount"]
	assert.Equal(t, 270.0, tax.Value)
	assert.GreaterOrEqual(t, tax.Confidence, 0.6)
}

func TestExtract_PercentageNeverResolvesAsAmount(t *testing.T) {
	engine := testEngine(t)
	doc := model.Document{Text: "GST (18%) applied on the premium"}

	res, err := engine.Extract(doc)
	require.NoError(t, err)

	tax := res.Fields["tax_amount"]
	assert.False(t, tax.IsSet())
	assert.Zero(t, tax.Confidence)
}

func TestExtract_OneEntryPerFieldAndBoundedConfidence(t *testing.T) {
	engine := testEngine(t)
	doc := model.Document{Text: "Policy Number: LI/2024/123456 Sum Insured: Rs. 10,00,000"}

	res, err := engine.Extract(doc)
	require.NoError(t, err)

	assert.Len(t, res.Fields, len(engine.Registry().Fields))
	for key, f := range res.Fields {
		assert.GreaterOrEqual(t, f.Confidence, 0.0, key)
		assert.LessOrEqual(t, f.Confidence, 1.0, key)
		if !f.IsSet() {
			assert.Zero(t, f.Confidence, key)
		}
	}
	assert.Equal(t, "LI/2024/123456", res.Fields["policy_number"].Value)
	assert.Equal(t, 1000000.0, res.Fields["sum_insured"].Value)
}

func TestExtract_DerivesTotalPremium(t *testing.T) {
	engine := testEngine(t)
	doc := model.Document{Text: "Net Premium: 1,000.00 GST: 180.00"}

	res, err := engine.Extract(doc)
	require.NoError(t, err)

	total := res.Fields["total_premium"]
	assert.Equal(t, 1180.0, total.Value)
	assert.True(t, total.Derived)
	assert.Less(t, total.Confidence, res.Fields["net_premium"].Confidence)
}

func TestExtract_TableCandidatesCompete(t *testing.T) {
	engine := testEngine(t)
	doc := model.Document{
		Text: "Premium summary follows on this page",
		Tables: []model.TableRows{{
			Page:    1,
			Headers: []string{"Premium Component", "Amount"},
			Rows: [][]string{
				{"Net Premium", "1,000.00"},
				{"GST", "180.00"},
				{"Total Premium", "1,180.00"},
			},
		}},
	}

	res, err := engine.Extract(doc)
	require.NoError(t, err)

	assert.Equal(t, 1180.0, res.Fields["total_premium"].Value)
	assert.False(t, res.Fields["total_premium"].Derived)
	assert.Equal(t, 1000.0, res.Fields["net_premium"].Value)
	assert.Equal(t, 180.0, res.Fields["tax_amount"].Value)
	require.Len(t, res.TablesExtracted, 1)
	assert.Equal(t, TableTypePremiumBreakdown, res.TablesExtracted[0].Type)
}

func TestExtract_DocumentTypeClassified(t *testing.T) {
	engine := testEngine(t)
	doc := model.Document{
		Text: "Vehicle No: MH12AB1234 Own Damage Premium: 4,500.00",
	}

	res, err := engine.Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, model.DocTypeAuto, res.DocumentMetadata.DocumentType)
}

func TestExtract_EmptyDocumentRejected(t *testing.T) {
	engine := testEngine(t)
	_, err := engine.Extract(model.Document{Filename: "blank.pdf", Text: "   \n  "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text and no tables")
}

func TestExtract_Idempotent(t *testing.T) {
	engine := testEngine(t)
	doc := model.Document{
		Filename: "policy.pdf",
		Text:     "Policy Number: LI/2024/123456 Total Premium: 1,500.00 GST: 270.00 Issue Date: 15/01/2024",
	}

	first, err := engine.Extract(doc)
	require.NoError(t, err)
	second, err := engine.Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExtract_ResultJSONRoundTrip(t *testing.T) {
	engine := testEngine(t)
	doc := model.Document{
		Filename: "policy.pdf",
		Text:     "Total Premium: 1,500.00 Issue Date: 15/01/2024",
	}

	res, err := engine.Extract(doc)
	require.NoError(t, err)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"document_metadata"`)
	assert.Contains(t, string(data), `"fields"`)
	assert.Contains(t, string(data), `"warnings"`)

	var back model.ExtractionResult
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, res.DocumentMetadata, back.DocumentMetadata)
	assert.Equal(t, res.Fields["total_premium"].Value, back.Fields["total_premium"].Value)
	assert.Equal(t, "2024-01-15", back.Fields["issue_date"].Value)
}

func TestExtract_WarningsNeverNil(t *testing.T) {
	engine := testEngine(t)
	res, err := engine.Extract(model.Document{Text: "Total Premium: 1,500.00"})
	require.NoError(t, err)
	assert.NotNil(t, res.Warnings)
}

func TestNew_RejectsBadConfig(t *testing.T) {
	reg := testRegistry(t)

	cfg := DefaultConfig()
	cfg.WindowSize = 0
	_, err := New(reg, cfg)
	assert.Error(t, err)

	_, err = New(nil, DefaultConfig())
	assert.Error(t, err)
}
