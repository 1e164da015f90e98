// Package tabular turns uploaded files and form fields into the typed
// inputs the ranking core consumes: CSV, JSON, and XLSX sources become a
// topsis.Table, and delimited weight/impact strings become typed vectors.
package tabular

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rankworks/criterium/internal/topsis"
)

// Format identifies a supported input file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

var (
	// ErrUnsupportedFormat indicates a file extension outside the allow-list.
	ErrUnsupportedFormat = errors.New("tabular: file type not supported (use csv, xlsx, or json)")
	// ErrEmptyInput indicates a file with no header row.
	ErrEmptyInput = errors.New("tabular: input file is empty")
)

// DetectFormat maps a file name to its format by extension.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
	}
}

// Decode reads a tabular source in the given format. The first row (or the
// key order of the first JSON record) becomes the column header.
func Decode(r io.Reader, format Format) (topsis.Table, error) {
	switch format {
	case FormatCSV:
		return decodeCSV(r)
	case FormatJSON:
		return decodeJSON(r)
	case FormatXLSX:
		return decodeXLSX(r)
	default:
		return topsis.Table{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func decodeCSV(r io.Reader) (topsis.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return topsis.Table{}, fmt.Errorf("tabular: read csv: %w", err)
	}
	if len(records) == 0 {
		return topsis.Table{}, ErrEmptyInput
	}
	return topsis.Table{Columns: records[0], Rows: records[1:]}, nil
}

// decodeJSON accepts a list of flat records. Column order follows the key
// order of the first record in the raw document; encoding/json maps are
// unordered, so the order is recovered from a token scan.
func decodeJSON(r io.Reader) (topsis.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return topsis.Table{}, fmt.Errorf("tabular: read json: %w", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		// A single object is wrapped into a one-row table.
		var single map[string]any
		if err2 := json.Unmarshal(data, &single); err2 != nil {
			return topsis.Table{}, fmt.Errorf("tabular: parse json: %w", err)
		}
		records = []map[string]any{single}
	}
	if len(records) == 0 {
		return topsis.Table{}, ErrEmptyInput
	}

	columns, err := firstObjectKeys(data)
	if err != nil {
		return topsis.Table{}, err
	}

	t := topsis.Table{Columns: columns, Rows: make([][]string, len(records))}
	for i, rec := range records {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = formatJSONValue(rec[col])
		}
		t.Rows[i] = row
	}
	return t, nil
}

// firstObjectKeys scans the raw document for the key order of its first
// object.
func firstObjectKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("tabular: parse json: %w", err)
	}
	if d, ok := tok.(json.Delim); ok && d == '[' {
		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("tabular: parse json: %w", err)
		}
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("tabular: json input must be an object or a list of objects")
	}

	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("tabular: parse json: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.New("tabular: malformed json object")
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, fmt.Errorf("tabular: parse json: %w", err)
		}
	}
	return keys, nil
}

func formatJSONValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// decodeXLSX reads the first sheet of a workbook. Cell values are the
// calculated/formatted values, not formulas. Short rows are padded so the
// table stays rectangular.
func decodeXLSX(r io.Reader) (topsis.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return topsis.Table{}, fmt.Errorf("tabular: open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return topsis.Table{}, ErrEmptyInput
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return topsis.Table{}, fmt.Errorf("tabular: read xlsx: %w", err)
	}
	if len(rows) == 0 {
		return topsis.Table{}, ErrEmptyInput
	}

	header := rows[0]
	t := topsis.Table{Columns: header, Rows: make([][]string, 0, len(rows)-1)}
	for _, row := range rows[1:] {
		padded := make([]string, len(header))
		copy(padded, row)
		t.Rows = append(t.Rows, padded)
	}
	return t, nil
}
