// Package export writes stored extraction runs to spreadsheet formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/inkwell-data/policyscan/internal/model"
)

// columns is the fixed export header: run metadata followed by one column
// per field in sorted key order (union across all runs).
func columns(runs []model.Run) []string {
	fieldKeys := map[string]bool{}
	for _, r := range runs {
		if r.Result == nil {
			continue
		}
		for k := range r.Result.Fields {
			fieldKeys[k] = true
		}
	}
	keys := make([]string, 0, len(fieldKeys))
	for k := range fieldKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return append([]string{"run_id", "filename", "document_type", "created_at"}, keys...)
}

func runRow(r model.Run, cols []string) []string {
	row := []string{
		r.ID,
		r.Filename,
		string(r.DocumentType),
		r.CreatedAt.Format(time.RFC3339),
	}
	for _, k := range cols[4:] {
		if r.Result == nil {
			row = append(row, "")
			continue
		}
		f, ok := r.Result.Fields[k]
		if !ok || !f.IsSet() {
			row = append(row, "")
			continue
		}
		row = append(row, fmt.Sprintf("%v", f.Value))
	}
	return row
}

// WriteCSV writes runs as CSV.
func WriteCSV(w io.Writer, runs []model.Run) error {
	cols := columns(runs)
	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}
	for _, r := range runs {
		if err := cw.Write(runRow(r, cols)); err != nil {
			return eris.Wrap(err, "export: write csv row")
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush csv")
}

// WriteXLSX writes runs as an XLSX workbook at the given path.
func WriteXLSX(path string, runs []model.Run) error {
	cols := columns(runs)

	f := xlsx.NewFile()
	sheet, err := f.AddSheet("extractions")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, c := range cols {
		header.AddCell().SetString(c)
	}
	for _, r := range runs {
		row := sheet.AddRow()
		for _, cell := range runRow(r, cols) {
			row.AddCell().SetString(cell)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save xlsx %s", path)
	}
	return nil
}
