package rubriclist

import (
	"html"
	"net/url"
	"strings"
)

// Linker builds a hyperlink to a site path. Implementations escape text.
type Linker interface {
	Link(path string, params url.Values, text string) string
}

// SiteLinker links to paths under the site root, e.g. https://lms.example.edu.
// An empty Root produces root-relative links.
type SiteLinker struct {
	Root string
}

// URL returns the absolute URL of path with params encoded as the query.
func (l SiteLinker) URL(path string, params url.Values) string {
	u := strings.TrimRight(l.Root, "/") + "/" + strings.TrimLeft(path, "/")
	if q := params.Encode(); q != "" {
		u += "?" + q
	}
	return u
}

// Link implements [Linker].
func (l SiteLinker) Link(path string, params url.Values, text string) string {
	return `<a href="` + html.EscapeString(l.URL(path, params)) + `">` + html.EscapeString(text) + `</a>`
}
