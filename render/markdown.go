package render

import (
	"fmt"
	"io"
	"strings"
)

var markdownEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

// minMarkdownWidth leaves room for the ":-:" alignment marker.
const minMarkdownWidth = 3

func writeMarkdown(w io.Writer, l *layout) error {
	if l.header == nil {
		return fmt.Errorf("%w: format %q requires Headed, not implemented by %T", ErrMissingInterface, Markdown, l.first)
	}
	l.header = escapeMarkdown(l.header)
	for i, row := range l.rows {
		l.rows[i] = escapeMarkdown(row)
	}

	widths := l.widths(minMarkdownWidth)
	lw := &lineWriter{w: w}
	row := func(cells []string) {
		lw.printf("| %s |\n", padCells(cells, widths, l.aligns, " | ", alignCell))
	}

	row(l.header)
	sep := make([]string, len(widths))
	for i, width := range widths {
		switch l.aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	row(sep)
	for _, cells := range l.rows {
		row(cells)
	}
	return lw.err
}

func escapeMarkdown(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = markdownEscaper.Replace(c)
	}
	return out
}
