package timecard

import (
	"os"
	"path/filepath"
	"strings"
)

// Record is one data row of the source table.
type Record struct {
	Line  int
	Cells []string
}

// Table is the raw tabular source: a header row plus data records. Every
// record has exactly len(Header) cells.
type Table struct {
	Source  string
	Header  []string
	Records []Record
}

// Column returns the index of the named header column, or -1.
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// MissingColumns returns the names from required that are absent from the
// header, in the order given.
func (t *Table) MissingColumns(required []string) []string {
	var missing []string
	for _, name := range required {
		if t.Column(name) < 0 {
			missing = append(missing, name)
		}
	}
	return missing
}

// Load reads a timecard file into a Table and checks that every required
// column is present. Workbooks (.xlsx, .xlsm, .xls) are read from their first
// sheet; any other extension is read as comma-delimited text.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	var t *Table
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		t, err = ReadSpreadsheet(f, path)
	default:
		t, err = ReadCSV(f)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	t.Source = path

	if missing := t.MissingColumns(RequiredColumns); len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}
	return t, nil
}

func padCells(cells []string, width int) []string {
	if len(cells) >= width {
		return cells[:width]
	}
	padded := make([]string, width)
	copy(padded, cells)
	return padded
}
