package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	hgerrors "github.com/matzehuels/hexgrid/pkg/errors"
)

// Table is a loaded dataset. It is not modified after loading.
type Table struct {
	Path    string // Location the table was loaded from
	Columns []string
	Rows    [][]string
}

// RowCount returns the number of data rows, excluding the header.
func (t *Table) RowCount() int { return len(t.Rows) }

// ColumnCount returns the number of header columns.
func (t *Table) ColumnCount() int { return len(t.Columns) }

// String returns the field at (row, col), or "" if the row is shorter.
func (t *Table) String(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Column returns every row's field at col.
func (t *Table) Column(col int) []string {
	out := make([]string, len(t.Rows))
	for i := range t.Rows {
		out[i] = t.String(i, col)
	}
	return out
}

// ColumnName returns the header of col, or "" when out of range.
func (t *Table) ColumnName(col int) string {
	if col < 0 || col >= len(t.Columns) {
		return ""
	}
	return t.Columns[col]
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse reads CSV with a header row from r. Blank lines are skipped and a
// leading UTF-8 byte order mark is removed. An input with no header is an
// INVALID_DATASET error.
func Parse(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, hgerrors.New(hgerrors.ErrCodeInvalidDataset, "dataset is empty")
	}
	if err != nil {
		return nil, hgerrors.Wrap(hgerrors.ErrCodeInvalidDataset, err, "read header")
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	t := &Table{Columns: header}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, hgerrors.Wrap(hgerrors.ErrCodeInvalidDataset, err, "read row %d", len(t.Rows)+1)
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}
