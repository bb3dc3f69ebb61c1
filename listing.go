package rubriclist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/rubriclist/render"
)

// Row is one formatted listing row. It carries the table-wide settings the
// renderer reads from the first row.
type Row struct {
	Cells []string

	header      []string
	title       string
	placeholder string
	markup      bool
	border      render.BorderStyle
	maxWidths   []int
}

func (r Row) Row() []string              { return r.Cells }
func (r Row) Header() []string           { return r.header }
func (r Row) Title() string              { return r.title }
func (r Row) Placeholder() string        { return r.placeholder }
func (r Row) Markup() bool               { return r.markup }
func (r Row) Border() render.BorderStyle { return r.border }
func (r Row) MaxWidths() []int           { return r.maxWidths }

// MarshalJSON encodes the row as an object keyed by column id, in column
// order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.cell(i))
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the row as a mapping keyed by column id, in column
// order.
func (r Row) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, col := range columns {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: col},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.cell(i)},
		)
	}
	return node, nil
}

func (r Row) cell(i int) string {
	if i < len(r.Cells) {
		return r.Cells[i]
	}
	return ""
}

// Listing writes a full rubric listing in any [render.Format].
type Listing struct {
	strs      Strings
	links     Linker
	registry  *Registry
	dates     *Dates
	border    render.BorderStyle
	maxWidths []int
}

// ListingOption configures a [Listing].
type ListingOption func(*Listing)

// ListingRegistry sets the module type registry passed to each Formatter.
func ListingRegistry(r *Registry) ListingOption {
	return func(l *Listing) { l.registry = r }
}

// ListingDates sets the date renderer passed to each Formatter.
func ListingDates(d *Dates) ListingOption {
	return func(l *Listing) { l.dates = d }
}

// ListingBorder sets the border style of terminal tables.
func ListingBorder(b render.BorderStyle) ListingOption {
	return func(l *Listing) { l.border = b }
}

// ListingMaxWidths caps terminal table column widths. Zero means no limit.
func ListingMaxWidths(widths ...int) ListingOption {
	return func(l *Listing) { l.maxWidths = widths }
}

// NewListing returns a Listing using strs for labels and links for anchors.
func NewListing(strs Strings, links Linker, opts ...ListingOption) *Listing {
	l := &Listing{strs: strs, links: links}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Formatter returns a Formatter configured like the listing.
func (l *Listing) Formatter(exporting bool) *Formatter {
	return NewFormatter(l.strs, l.links,
		Exporting(exporting),
		WithRegistry(l.registry),
		WithDates(l.dates),
	)
}

// Write renders every record of seq to w in format f. HTML is rendered with
// links; every other format is a plain text download.
//
// Rows whose cells fail to format are written with the error label in those
// cells, and Write returns their [RowErrors] after the listing is complete.
// An error from seq or ctx stops the listing and is returned wrapped.
func (l *Listing) Write(ctx context.Context, w io.Writer, f render.Format, seq iter.Seq2[Record, error]) error {
	fm := l.Formatter(f.Exporting())
	header, err := fm.Header()
	if err != nil {
		return err
	}
	title, err := l.optionalString("pluginname", "report_rubric_list")
	if err != nil {
		return err
	}
	placeholder, err := l.optionalString("nothingtodisplay", "core")
	if err != nil {
		return err
	}
	proto := Row{
		header:      header,
		title:       title,
		placeholder: placeholder,
		markup:      !fm.IsExporting(),
		border:      l.border,
		maxWidths:   l.maxWidths,
	}

	var (
		srcErr  error
		rowErrs RowErrors
		index   int
	)
	rows := func(yield func(Row) bool) {
		for rec, err := range seq {
			if err != nil {
				srcErr = err
				return
			}
			if err := ctx.Err(); err != nil {
				srcErr = err
				return
			}
			cells, err := fm.Row(rec)
			if err != nil {
				rowErrs = append(rowErrs, &RowError{Index: index, Name: rec.Name, Err: err})
			}
			index++
			row := proto
			row.Cells = cells
			if !yield(row) {
				return
			}
		}
	}

	if err := render.WriteIter(w, f, rows); err != nil {
		return err
	}
	if srcErr != nil {
		return fmt.Errorf("read rubrics: %w", srcErr)
	}
	if index == 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("read rubrics: %w", err)
		}
		// Tabular formats wrote nothing for an empty seq.
		return render.WriteEmpty(w, f, proto)
	}
	if len(rowErrs) > 0 {
		return rowErrs
	}
	return nil
}

// optionalString looks up a label the listing can do without. Only a missing
// string is tolerated.
func (l *Listing) optionalString(id, component string) (string, error) {
	s, err := l.strs.String(id, component)
	if errors.Is(err, ErrMissingString) {
		return "", nil
	}
	return s, err
}
