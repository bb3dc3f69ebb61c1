package render

import (
	"html"
	"io"

	"github.com/microcosm-cc/bluemonday"
)

// LinkPolicy returns the sanitising policy applied to Marked cells. Only
// anchors with a parseable http(s) or relative href survive; every other
// element is stripped and its text kept.
func LinkPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes("http", "https")
	p.AllowAttrs("href").OnElements("a")
	return p
}

var linkPolicy = LinkPolicy()

func writeHTML(w io.Writer, l *layout) error {
	clean := html.EscapeString
	if l.markup {
		clean = linkPolicy.Sanitize
	}

	lw := &lineWriter{w: w}
	row := func(tag string, cells []string, clean func(string) string) {
		lw.line("    <tr>")
		for i, c := range cells {
			lw.printf("      <%s%s>%s</%s>\n", tag, alignStyle(l.aligns, i), clean(c), tag)
		}
		lw.line("    </tr>")
	}

	lw.line("<table>")
	if l.title != "" {
		lw.printf("  <caption>%s</caption>\n", html.EscapeString(l.title))
	}
	if l.header != nil {
		lw.line("  <thead>")
		row("th", l.header, html.EscapeString)
		lw.line("  </thead>")
	}
	lw.line("  <tbody>")
	if len(l.rows) == 0 && l.placeholder != "" {
		lw.line("    <tr>")
		lw.printf("      <td colspan=\"%d\">%s</td>\n", max(l.cols(), 1), html.EscapeString(l.placeholder))
		lw.line("    </tr>")
	}
	for _, cells := range l.rows {
		row("td", cells, clean)
	}
	lw.line("  </tbody>")
	lw.line("</table>")
	return lw.err
}

func alignStyle(aligns []Alignment, col int) string {
	if col >= len(aligns) {
		return ""
	}
	switch aligns[col] {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
