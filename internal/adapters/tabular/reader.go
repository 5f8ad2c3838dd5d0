// Package tabular decodes uploaded CSV and XLSX files into rows of cells and
// parses the cell formats used by bulk imports.
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for files that are neither CSV nor XLSX.
var ErrUnsupportedFormat = errors.New("unsupported file format, expected .csv or .xlsx")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadRows decodes an upload into rows, choosing the decoder by file extension.
// Cells are trimmed and fully blank rows are dropped.
func ReadRows(r io.Reader, filename string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ReadCSV(r)
	case ".xlsx":
		return ReadXLSX(r)
	}
	return nil, ErrUnsupportedFormat
}

// ReadCSV reads comma separated rows, tolerating a UTF-8 BOM, ragged rows
// and stray quotes.
func ReadCSV(r io.Reader) ([][]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return cleanRows(records), nil
}

// ReadXLSX reads the rows of the first worksheet.
func ReadXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx file has no worksheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheets[0], err)
	}
	return cleanRows(rows), nil
}

func cleanRows(records [][]string) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		blank := true
		row := make([]string, len(rec))
		for i, cell := range rec {
			row[i] = strings.TrimSpace(cell)
			if row[i] != "" {
				blank = false
			}
		}
		if !blank {
			rows = append(rows, row)
		}
	}
	return rows
}

// Columns maps logical column names to their position in a row.
type Columns map[string]int

// Cell returns the trimmed cell of column name, or "" when the row is short.
func (c Columns) Cell(row []string, name string) string {
	idx, ok := c[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// DetectColumns looks for a header in the first row. aliases maps each logical
// column to the header labels that may name it. When every column is found
// the header mapping is returned with ok=true; otherwise the columns are
// assumed to appear in the order of fallback and ok=false means the first
// row is data.
func DetectColumns(first []string, aliases map[string][]string, fallback []string) (Columns, bool) {
	header := make(map[string]int, len(first))
	for i, cell := range first {
		header[strings.ToLower(strings.TrimSpace(cell))] = i
	}

	cols := make(Columns, len(aliases))
	for name, labels := range aliases {
		for _, label := range labels {
			if idx, ok := header[strings.ToLower(label)]; ok {
				cols[name] = idx
				break
			}
		}
	}
	if len(cols) == len(aliases) {
		return cols, true
	}

	cols = make(Columns, len(fallback))
	for i, name := range fallback {
		cols[name] = i
	}
	return cols, false
}
