package pdf

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/inkwell-data/policyscan/internal/model"
)

// BuildDocument converts raw extracted text into a Document. Form-feed
// characters mark page breaks (pdftotext convention); the feeds are
// replaced with newlines so offsets stay stable while page boundaries are
// recorded separately.
func BuildDocument(filename, text string) model.Document {
	boundaries := []model.PageBoundary{{Page: 1, Offset: 0}}
	page := 1
	for i := 0; i < len(text); i++ {
		if text[i] == '\f' {
			page++
			boundaries = append(boundaries, model.PageBoundary{Page: page, Offset: i + 1})
		}
	}
	return model.Document{
		Filename:       filepath.Base(filename),
		Text:           strings.ReplaceAll(text, "\f", "\n"),
		PageBoundaries: boundaries,
	}
}

// LoadTables reads pre-extracted table rows from a sidecar JSON file
// produced by the external table extraction layer.
func LoadTables(path string) ([]model.TableRows, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "pdf: read tables sidecar %s", path)
	}
	var tables []model.TableRows
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, eris.Wrapf(err, "pdf: parse tables sidecar %s", path)
	}
	return tables, nil
}

// LoadDocument materializes a Document from a .pdf or .txt input path.
// A sidecar named <stem>_tables.json is picked up when present.
func LoadDocument(ctx context.Context, path string, extractor *PdfToText) (model.Document, error) {
	var text string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		t, err := extractor.ExtractText(ctx, path)
		if err != nil {
			return model.Document{}, err
		}
		text = t
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return model.Document{}, eris.Wrapf(err, "pdf: read text file %s", path)
		}
		text = string(data)
	default:
		return model.Document{}, eris.Errorf("pdf: unsupported input %s (want .pdf or .txt)", path)
	}

	doc := BuildDocument(path, text)

	sidecar := InputStem(path) + "_tables.json"
	if _, err := os.Stat(sidecar); err == nil {
		tables, err := LoadTables(sidecar)
		if err != nil {
			return model.Document{}, err
		}
		doc.Tables = tables
		zap.L().Debug("pdf: loaded tables sidecar",
			zap.String("path", sidecar), zap.Int("tables", len(tables)))
	}

	return doc, nil
}

// InputStem strips the extension from an input path: "a/policy.pdf" →
// "a/policy". Output artifacts derive their names from the stem.
func InputStem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
