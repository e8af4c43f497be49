package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-data/policyscan/internal/model"
)

func testRegistry(t *testing.T) *model.FieldRegistry {
	t.Helper()
	reg, err := model.NewFieldRegistry(model.DefaultFields())
	require.NoError(t, err)
	return reg
}

func anchorsFor(anchors []model.Anchor, fieldKey string) []model.Anchor {
	var out []model.Anchor
	for _, a := range anchors {
		if a.FieldKey == fieldKey {
			out = append(out, a)
		}
	}
	return out
}

func TestAnchors_CaseInsensitive(t *testing.T) {
	doc := model.Document{Text: "TOTAL PREMIUM: 1,500.00 and total premium again"}
	reg := testRegistry(t)

	got := anchorsFor(Anchors(doc, reg), "total_premium")
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Offset)
	assert.Equal(t, "total premium", got[0].Keyword)
}

func TestAnchors_SynonymsTriedIndependently(t *testing.T) {
	// "policy number" contains "policy no", so both synonyms anchor here.
	doc := model.Document{Text: "Policy Number: AB/123456"}
	reg := testRegistry(t)

	got := anchorsFor(Anchors(doc, reg), "policy_number")
	keywords := make([]string, 0, len(got))
	for _, a := range got {
		keywords = append(keywords, a.Keyword)
	}
	assert.Contains(t, keywords, "policy number")
	assert.Contains(t, keywords, "policy no")
}

func TestAnchors_PageAssignment(t *testing.T) {
	doc := model.Document{
		Text: "page one filler\nTotal Premium: 1,500.00",
		PageBoundaries: []model.PageBoundary{
			{Page: 1, Offset: 0},
			{Page: 2, Offset: 16},
		},
	}
	reg := testRegistry(t)

	got := anchorsFor(Anchors(doc, reg), "total_premium")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Page)
}

func TestAnchors_NoneForAbsentKeywords(t *testing.T) {
	doc := model.Document{Text: "nothing relevant here"}
	reg := testRegistry(t)
	assert.Empty(t, Anchors(doc, reg))
}
