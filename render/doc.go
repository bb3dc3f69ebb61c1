// Package render writes tabular rows in the download and display formats a
// listing page offers.
//
// Supported formats are CSV, TSV, XLSX, HTML, JSON, JSONL, YAML, Markdown,
// and Table. The entry points are [Write], [Marshal], and [WriteIter], which
// accept a [Format] and items of any type. [WriteEmpty] writes a tabular
// format's title and header when there are no rows. JSON, JSONL, and YAML work on any
// value; the tabular formats require [Rower].
//
// # Interface Design
//
// A minimal interface unlocks a format, and optional interfaces enhance the
// rendering:
//
//   - [Rower] → CSV, TSV, XLSX, HTML, Table, Markdown (row data)
//   - [Headed] → header row (required by Markdown)
//   - [Titled] → table title, HTML caption, spreadsheet name
//   - [Aligned] → per-column alignment for Table, Markdown, HTML
//   - [Bordered], [Truncated] → Table border style and column limits
//   - [Delimited] → CSV field delimiter
//   - [Marked] → HTML cells that already carry link markup
//   - [Placeholder] → HTML and Table text shown when there are no rows
//
// # Export and Display
//
// [Format.Exporting] separates download formats from HTML display. Callers
// build plain text cells for downloads and link markup for display. Marked
// cells are never trusted blindly: HTML output runs them through
// [LinkPolicy], which keeps anchors and drops everything else.
//
// # Errors
//
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrMissingInterface]: items don't implement the required interface
package render
