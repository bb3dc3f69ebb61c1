package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// layout is a tabular view of items: the cells of every row plus the
// table-wide settings read from the first item.
type layout struct {
	first       any
	title       string
	placeholder string
	header      []string
	rows        [][]string
	aligns      []Alignment
	border      BorderStyle
	maxWidths   []int
	markup      bool
}

func newLayout[T any](f Format, items []T) (*layout, error) {
	if err := requireRower(f, items); err != nil {
		return nil, err
	}
	l := &layout{rows: make([][]string, len(items))}
	for i, item := range items {
		l.rows[i] = any(item).(Rower).Row()
	}

	first := any(items[0])
	l.first = first
	if h, ok := first.(Headed); ok {
		l.header = h.Header()
	}
	if t, ok := first.(Titled); ok {
		l.title = t.Title()
	}
	if b, ok := first.(Bordered); ok {
		l.border = b.Border()
	}
	if tr, ok := first.(Truncated); ok {
		l.maxWidths = tr.MaxWidths()
	}
	if m, ok := first.(Marked); ok {
		l.markup = m.Markup()
	}
	if p, ok := first.(Placeholder); ok {
		l.placeholder = p.Placeholder()
	}
	var aligns []Alignment
	if a, ok := first.(Aligned); ok {
		aligns = a.Alignments()
	}
	l.aligns = extendAligns(aligns, l.cols())
	return l, nil
}

func (l *layout) cols() int {
	n := len(l.header)
	for _, row := range l.rows {
		n = max(n, len(row))
	}
	return n
}

// widths returns the display width of each column, at least minWidth and at
// most the column's max width when one is set.
func (l *layout) widths(minWidth int) []int {
	widths := make([]int, l.cols())
	grow := func(cells []string) {
		for i, c := range cells {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}
	grow(l.header)
	for _, row := range l.rows {
		grow(row)
	}
	for i := range widths {
		widths[i] = max(widths[i], minWidth)
		if i < len(l.maxWidths) && l.maxWidths[i] > 0 {
			widths[i] = min(widths[i], l.maxWidths[i])
		}
	}
	return widths
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

// lineWriter keeps the first write error and skips every later write.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) printf(format string, args ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format, args...)
}

func (lw *lineWriter) line(s string) { lw.printf("%s\n", s) }

// padCells pads each cell to its column and joins them with sep.
func padCells(cells []string, widths []int, aligns []Alignment, sep string, fit func(string, int, Alignment) string) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		var c string
		if i < len(cells) {
			c = cells[i]
		}
		parts[i] = fit(c, width, aligns[i])
	}
	return strings.Join(parts, sep)
}
