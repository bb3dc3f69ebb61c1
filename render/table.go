package render

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
}

func writeTable(w io.Writer, l *layout) error {
	lw := &lineWriter{w: w}
	widths := l.widths(0)
	if l.border == BorderNone {
		plainTable(lw, l, widths)
	} else {
		borderedTable(lw, l, widths, borderSets[l.border])
	}
	return lw.err
}

// plainTable writes space separated columns with a dashed rule under the
// header.
func plainTable(lw *lineWriter, l *layout, widths []int) {
	row := func(cells []string) {
		lw.line(strings.TrimRight(padCells(cells, widths, l.aligns, "  ", formatTableCell), " "))
	}
	if l.title != "" {
		lw.line(l.title)
	}
	if len(l.header) > 0 {
		row(l.header)
		rule := make([]string, len(widths))
		for i, width := range widths {
			rule[i] = strings.Repeat("-", width)
		}
		lw.line(strings.Join(rule, "  "))
	}
	if len(l.rows) == 0 && l.placeholder != "" {
		lw.line(l.placeholder)
	}
	for _, cells := range l.rows {
		row(cells)
	}
}

func borderedTable(lw *lineWriter, l *layout, widths []int, bc borderChars) {
	rule := func(left, mid, right string) {
		segs := make([]string, len(widths))
		for i, width := range widths {
			segs[i] = strings.Repeat(bc.horizontal, width+2)
		}
		lw.line(left + strings.Join(segs, mid) + right)
	}
	row := func(cells []string) {
		sep := " " + bc.vertical + " "
		lw.line(bc.vertical + " " + padCells(cells, widths, l.aligns, sep, formatTableCell) + " " + bc.vertical)
	}

	if l.title != "" {
		// The title spans every column, so its top rule has no tees.
		rule(bc.topLeft, bc.horizontal, bc.topRight)
		lw.line(bc.vertical + " " + alignCell(l.title, tableInnerWidth(widths)-2, AlignCenter) + " " + bc.vertical)
		rule(bc.leftTee, bc.topTee, bc.rightTee)
	} else {
		rule(bc.topLeft, bc.topTee, bc.topRight)
	}
	// A placeholder spans every column, so the rule above it closes the
	// column separators.
	empty := len(l.rows) == 0 && l.placeholder != ""
	if len(l.header) > 0 {
		row(l.header)
		if empty {
			rule(bc.leftTee, bc.bottomTee, bc.rightTee)
		} else {
			rule(bc.leftTee, bc.cross, bc.rightTee)
		}
	}
	if empty {
		lw.line(bc.vertical + " " + alignCell(l.placeholder, tableInnerWidth(widths)-2, AlignCenter) + " " + bc.vertical)
		rule(bc.bottomLeft, bc.horizontal, bc.bottomRight)
		return
	}
	for _, cells := range l.rows {
		row(cells)
	}
	rule(bc.bottomLeft, bc.bottomTee, bc.bottomRight)
}

// tableInnerWidth is the width between the outer borders: each column plus
// one space of padding per side, and one separator between columns.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func formatTableCell(s string, width int, align Alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		tail := "..."
		if width <= len(tail) {
			tail = ""
		}
		s = runewidth.Truncate(s, width, tail)
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
