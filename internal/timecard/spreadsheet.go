package timecard

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// maxXLSRows caps how many rows are read from a legacy .xls sheet.
const maxXLSRows = 100000

// ReadSpreadsheet reads the first sheet of a workbook. The first row is the
// header. Cells past the header width are ignored.
func ReadSpreadsheet(r io.Reader, filename string) (*Table, error) {
	rows, err := readSheetRows(r, filename)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errEmptySource
	}

	header := rows[0]
	t := &Table{Header: header}
	for i, cells := range rows[1:] {
		t.Records = append(t.Records, Record{
			Line:  i + 2,
			Cells: padCells(cells, len(header)),
		})
	}
	return t, nil
}

func readSheetRows(r io.Reader, filename string) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if strings.ToLower(filepath.Ext(filename)) == ".xls" {
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, err
		}
		if workbook.NumSheets() == 0 {
			return nil, fmt.Errorf("no worksheet found")
		}
		return workbook.ReadAllCells(maxXLSRows), nil
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}
	return file.GetRows(sheetName)
}
