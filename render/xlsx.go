package render

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet  = "Sheet1"
	maxSheetChars = 31
)

var sheetNameCleaner = strings.NewReplacer(":", " ", `\`, " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")")

func writeXLSX(w io.Writer, l *layout) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	sheet := defaultSheet
	if name := sheetName(l.title); name != "" {
		if err := f.SetSheetName(defaultSheet, name); err != nil {
			return err
		}
		sheet = name
	}

	rows := l.rows
	if l.header != nil {
		rows = append([][]string{l.header}, rows...)
	}
	for i, cells := range rows {
		if err := setSheetRow(f, sheet, i+1, cells); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func setSheetRow(f *excelize.File, sheet string, line int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, line)
	if err != nil {
		return err
	}
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// sheetName trims a title to something a workbook accepts as a sheet name.
func sheetName(title string) string {
	name := strings.TrimSpace(sheetNameCleaner.Replace(title))
	if r := []rune(name); len(r) > maxSheetChars {
		name = string(r[:maxSheetChars])
	}
	return strings.Trim(name, "'")
}
