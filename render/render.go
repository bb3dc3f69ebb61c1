package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingInterface  = errors.New("missing required interface")
)

// Format names an output format.
type Format string

const (
	CSV      Format = "csv"
	TSV      Format = "tsv"
	XLSX     Format = "xlsx"
	HTML     Format = "html"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	Markdown Format = "markdown"
	Table    Format = "table"
)

// formatInfo describes what a format needs from items and how it is written.
type formatInfo struct {
	tabular     bool // needs Rower
	needsHeader bool // needs Headed
	streams     bool // written row by row by WriteIter
	interactive bool // cells may carry markup
}

var formats = []Format{CSV, TSV, XLSX, HTML, JSON, JSONL, YAML, Markdown, Table}

var formatInfos = map[Format]formatInfo{
	CSV:      {tabular: true, streams: true},
	TSV:      {tabular: true, streams: true},
	XLSX:     {tabular: true},
	HTML:     {tabular: true, interactive: true},
	JSON:     {},
	JSONL:    {streams: true},
	YAML:     {},
	Markdown: {tabular: true, needsHeader: true},
	Table:    {tabular: true},
}

func (f Format) String() string { return string(f) }

// Exporting reports whether f is a download format. Only HTML is rendered
// interactively; every other format gets plain text cells without links.
func (f Format) Exporting() bool { return !formatInfos[f].interactive }

// Formats returns every supported format.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if _, ok := formatInfos[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
	return f, nil
}

// IsSupported reports whether values of type T carry every interface f
// requires. Encoded formats accept any T.
func IsSupported[T any](f Format) bool {
	info, ok := formatInfos[f]
	if !ok {
		return false
	}
	v := any(*new(T))
	if _, rower := v.(Rower); info.tabular && !rower {
		return false
	}
	if _, headed := v.(Headed); info.needsHeader && !headed {
		return false
	}
	return true
}

// Rower provides the cells of one row. Every tabular format requires it.
type Rower interface {
	Row() []string
}

// The interfaces below are optional. Each is read from the first item only
// and applies to the whole output.

// Indented sets the JSON and YAML indent. JSON is compact without it.
type Indented interface {
	Indent() string
}

// Headed provides column headers. Markdown requires it.
type Headed interface {
	Header() []string
}

// Titled names the output: a line above a terminal table, an HTML caption,
// or the spreadsheet name.
type Titled interface {
	Title() string
}

// Bordered picks the terminal table border. The default is BorderRounded.
type Bordered interface {
	Border() BorderStyle
}

// Aligned sets per-column alignment for Table, Markdown and HTML.
type Aligned interface {
	Alignments() []Alignment
}

// Truncated caps terminal table column widths. Longer cells end in "...".
// Zero leaves a column unlimited.
type Truncated interface {
	MaxWidths() []int
}

// Delimited replaces the CSV comma.
type Delimited interface {
	Delimiter() rune
}

// Marked reports that cells already hold HTML markup. HTML output passes
// such cells through a sanitising policy instead of escaping them.
type Marked interface {
	Markup() bool
}

// BorderStyle selects terminal table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // space separated columns
	BorderASCII                      // +-+|
)

// ParseBorder maps a config value to a BorderStyle. Unknown names fall back
// to BorderRounded.
func ParseBorder(s string) BorderStyle {
	switch s {
	case "none":
		return BorderNone
	case "ascii":
		return BorderASCII
	default:
		return BorderRounded
	}
}

// Alignment is a column's text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Placeholder provides the text HTML and terminal tables show in place of
// rows when there are none.
type Placeholder interface {
	Placeholder() string
}

var tabularWriters = map[Format]func(io.Writer, *layout) error{
	CSV:      writeCSV,
	TSV:      writeTSV,
	XLSX:     writeXLSX,
	HTML:     writeHTML,
	Markdown: writeMarkdown,
	Table:    writeTable,
}

// Write renders items to w in format f. Tabular formats write nothing for no
// items; see [WriteEmpty].
func Write[T any](w io.Writer, f Format, items ...T) error {
	switch f {
	case JSON:
		return writeJSON(w, items)
	case JSONL:
		return writeJSONL(w, items)
	case YAML:
		return writeYAML(w, items)
	}
	write, ok := tabularWriters[f]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if len(items) == 0 {
		return nil
	}
	l, err := newLayout(f, items)
	if err != nil {
		return err
	}
	return write(w, l)
}

// WriteEmpty renders a table with no rows: the title, header and placeholder
// of proto, whose own cells are left out. JSON, JSONL and YAML have nothing
// beyond their rows and write nothing; Write with no items gives their empty
// form.
func WriteEmpty[T any](w io.Writer, f Format, proto T) error {
	if _, ok := formatInfos[f]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	write, ok := tabularWriters[f]
	if !ok {
		return nil
	}
	l, err := newLayout(f, []T{proto})
	if err != nil {
		return err
	}
	l.rows = nil
	l.aligns = extendAligns(l.aligns, l.cols())
	return write(w, l)
}

// Marshal renders items in format f and returns the bytes.
func Marshal[T any](f Format, items ...T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, items...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func requireRower[T any](f Format, items []T) error {
	return checkRower(f, any(items[0]))
}

func checkRower(f Format, item any) error {
	if _, ok := item.(Rower); !ok {
		return fmt.Errorf("%w: format %q requires Rower, not implemented by %T", ErrMissingInterface, f, item)
	}
	return nil
}
