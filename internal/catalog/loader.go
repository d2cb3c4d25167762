package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// RawTable is an untrusted catalog as read from disk: a header row plus
// data rows with no guaranteed shape.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// LoadRawTable reads a catalog CSV from disk. UTF-8 (with or without a BOM)
// is attempted first; invalid UTF-8 falls back to the legacy EUC-KR code page
// used by older Korean bank exports.
func LoadRawTable(path string) (*RawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog not found: %s", path)
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, err := korean.EUCKR.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode catalog (EUC-KR fallback): %w", err)
		}
		data = decoded
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog rows: %w", err)
	}

	return &RawTable{Columns: header, Rows: rows}, nil
}

// Field returns the value of the named column for the given row, or ""
// when the column is absent or the row is too short.
func (t *RawTable) Field(row int, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// FindColumn returns the index of the first column whose normalized header
// contains any of the given synonyms, or -1.
func (t *RawTable) FindColumn(synonyms ...string) int {
	for i, c := range t.Columns {
		h := normalizeHeader(c)
		for _, syn := range synonyms {
			if syn != "" && containsFold(h, normalizeHeader(syn)) {
				return i
			}
		}
	}
	return -1
}
