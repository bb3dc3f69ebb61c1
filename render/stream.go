package render

import (
	"fmt"
	"io"
	"iter"
)

// WriteIter renders items from seq as they arrive. CSV, TSV and JSONL are
// written row by row; the other formats need every row for their layout and
// collect seq first.
func WriteIter[T any](w io.Writer, f Format, seq iter.Seq[T]) error {
	info, ok := formatInfos[f]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if !info.streams {
		var items []T
		for item := range seq {
			items = append(items, item)
		}
		return Write(w, f, items...)
	}
	switch f {
	case CSV:
		return streamRows(w, f, seq, writeCSVRow)
	case TSV:
		return streamRows(w, f, seq, func(w io.Writer, _ any, row []string) error {
			return writeTSVRow(w, row)
		})
	default:
		return streamJSONL(w, seq)
	}
}

// streamRows writes the first item through Write, so it carries the header,
// and every later item through writeRow.
func streamRows[T any](w io.Writer, f Format, seq iter.Seq[T], writeRow func(io.Writer, any, []string) error) error {
	first := true
	for item := range seq {
		if first {
			first = false
			if err := checkRower(f, any(item)); err != nil {
				return err
			}
			if err := Write(w, f, item); err != nil {
				return err
			}
			continue
		}
		if err := writeRow(w, any(item), any(item).(Rower).Row()); err != nil {
			return err
		}
	}
	return nil
}

func streamJSONL[T any](w io.Writer, seq iter.Seq[T]) error {
	for item := range seq {
		if err := newJSONEncoder(w, []T{item}).Encode(item); err != nil {
			return err
		}
	}
	return nil
}
