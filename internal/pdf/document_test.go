package pdf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDocument_PageBoundaries(t *testing.T) {
	doc := BuildDocument("/tmp/policy.pdf", "page one\fpage two\fpage three")

	assert.Equal(t, "policy.pdf", doc.Filename)
	require.Len(t, doc.PageBoundaries, 3)
	assert.Equal(t, 1, doc.PageBoundaries[0].Page)
	assert.Equal(t, 0, doc.PageBoundaries[0].Offset)
	assert.Equal(t, 2, doc.PageBoundaries[1].Page)
	assert.Equal(t, 9, doc.PageBoundaries[1].Offset)
	assert.Equal(t, 3, doc.PageBoundaries[2].Page)
	assert.Equal(t, 18, doc.PageBoundaries[2].Offset)

	// Feeds are replaced in place so boundary offsets stay valid.
	assert.Equal(t, "page one\npage two\npage three", doc.Text)
	assert.Equal(t, len("page one\fpage two\fpage three"), len(doc.Text))
	assert.Equal(t, 2, doc.PageAt(9))
}

func TestBuildDocument_SinglePage(t *testing.T) {
	doc := BuildDocument("policy.txt", "no feeds here")
	require.Len(t, doc.PageBoundaries, 1)
	assert.Equal(t, 1, doc.PageCount())
}

func TestLoadDocument_TextWithSidecar(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "policy.txt")
	require.NoError(t, os.WriteFile(txt, []byte("Total Premium: 1,500.00"), 0o644))

	sidecar := filepath.Join(dir, "policy_tables.json")
	tables := `[{"page":1,"headers":["Premium","Amount"],"rows":[["GST","270.00"]]}]`
	require.NoError(t, os.WriteFile(sidecar, []byte(tables), 0o644))

	doc, err := LoadDocument(context.Background(), txt, nil)
	require.NoError(t, err)
	assert.Equal(t, "policy.txt", doc.Filename)
	assert.Equal(t, "Total Premium: 1,500.00", doc.Text)
	require.Len(t, doc.Tables, 1)
	assert.Equal(t, [][]string{{"GST", "270.00"}}, doc.Tables[0].Rows)
}

func TestLoadDocument_TextWithoutSidecar(t *testing.T) {
	txt := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(txt, []byte("some text"), 0o644))

	doc, err := LoadDocument(context.Background(), txt, nil)
	require.NoError(t, err)
	assert.Empty(t, doc.Tables)
}

func TestLoadDocument_UnsupportedExtension(t *testing.T) {
	_, err := LoadDocument(context.Background(), "policy.docx", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input")
}

func TestLoadTables_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad_tables.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := LoadTables(path)
	assert.Error(t, err)
}

func TestInputStem(t *testing.T) {
	assert.Equal(t, "a/policy", InputStem("a/policy.pdf"))
	assert.Equal(t, "policy", InputStem("policy.txt"))
	assert.Equal(t, "noext", InputStem("noext"))
}
