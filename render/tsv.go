package render

import (
	"io"
	"strings"
)

// tsvReplacer keeps tabs and newlines inside a cell from breaking the layout.
var tsvReplacer = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ")

func writeTSV(w io.Writer, l *layout) error {
	if l.header != nil {
		if err := writeTSVRow(w, l.header); err != nil {
			return err
		}
	}
	for _, row := range l.rows {
		if err := writeTSVRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeTSVRow(w io.Writer, cells []string) error {
	clean := make([]string, len(cells))
	for i, c := range cells {
		clean[i] = tsvReplacer.Replace(c)
	}
	_, err := io.WriteString(w, strings.Join(clean, "\t")+"\n")
	return err
}
