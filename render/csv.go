package render

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, l *layout) error {
	cw := newCSVWriter(w, l.first)
	if l.header != nil {
		if err := cw.Write(l.header); err != nil {
			return err
		}
	}
	if err := cw.WriteAll(l.rows); err != nil {
		return err
	}
	return nil
}

func newCSVWriter(w io.Writer, first any) *csv.Writer {
	cw := csv.NewWriter(w)
	if d, ok := first.(Delimited); ok {
		cw.Comma = d.Delimiter()
	}
	return cw
}

// writeCSVRow writes one record and flushes it. item supplies the optional
// delimiter.
func writeCSVRow(w io.Writer, item any, row []string) error {
	cw := newCSVWriter(w, item)
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
