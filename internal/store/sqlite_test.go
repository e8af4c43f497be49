package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-data/policyscan/internal/model"
)

func testSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "policyscan.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func testResult(filename string, docType model.DocumentType) *model.ExtractionResult {
	return &model.ExtractionResult{
		DocumentMetadata: model.DocumentMetadata{
			Filename:     filename,
			Pages:        1,
			DocumentType: docType,
		},
		Fields: map[string]model.ExtractedField{
			"total_premium": {Value: 1500.0, Confidence: 0.75, Page: 1},
		},
		Warnings: []string{},
	}
}

func TestSQLiteStore_CreateAndGet(t *testing.T) {
	s := testSQLite(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, testResult("policy.pdf", model.DocTypeAuto))
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "policy.pdf", run.Filename)
	assert.Equal(t, model.DocTypeAuto, run.DocumentType)

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "policy.pdf", got.Filename)
	require.NotNil(t, got.Result)
	assert.Equal(t, 1500.0, got.Result.Fields["total_premium"].Value)
	assert.Equal(t, 0.75, got.Result.Fields["total_premium"].Confidence)
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	s := testSQLite(t)
	_, err := s.GetRun(context.Background(), "does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteStore_CreateNilResult(t *testing.T) {
	s := testSQLite(t)
	_, err := s.CreateRun(context.Background(), nil)
	assert.Error(t, err)
}

func TestSQLiteStore_ListRuns(t *testing.T) {
	s := testSQLite(t)
	ctx := context.Background()

	_, err := s.CreateRun(ctx, testResult("a.pdf", model.DocTypeAuto))
	require.NoError(t, err)
	_, err = s.CreateRun(ctx, testResult("b.pdf", model.DocTypeLife))
	require.NoError(t, err)
	_, err = s.CreateRun(ctx, testResult("c.pdf", model.DocTypeAuto))
	require.NoError(t, err)

	all, err := s.ListRuns(ctx, model.RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	autos, err := s.ListRuns(ctx, model.RunFilter{DocumentType: model.DocTypeAuto})
	require.NoError(t, err)
	assert.Len(t, autos, 2)

	byName, err := s.ListRuns(ctx, model.RunFilter{Filename: "b.pdf"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, model.DocTypeLife, byName[0].DocumentType)

	limited, err := s.ListRuns(ctx, model.RunFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
