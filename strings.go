package rubriclist

import (
	"embed"
	"fmt"
	"io"
	"path"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Strings looks up a display string by id within a component namespace,
// such as ("statusdraft", "core_grading") or ("pluginname", "mod_assign").
type Strings interface {
	String(id, component string) (string, error)
}

// DefaultLayout is the day-date-time layout used when a catalog has none.
const DefaultLayout = "Monday, 2 January 2006, 3:04 PM"

const (
	langConfig = "core_langconfig"
	dateLayout = "strftimedaydatetime"
)

//go:embed lang/*.yaml
var packs embed.FS

// pack is the on-disk shape of a language pack.
type pack struct {
	Lang    string                       `yaml:"lang"`
	Strings map[string]map[string]string `yaml:"strings"`
	Dates   struct {
		Months   []string `yaml:"months"`
		Weekdays []string `yaml:"weekdays"`
		Relative struct {
			Ago     string   `yaml:"ago"`
			FromNow string   `yaml:"from_now"`
			Steps   []string `yaml:"steps"`
		} `yaml:"relative"`
	} `yaml:"dates"`
}

// Catalog is a language pack. Lookups that miss fall through to the parent
// pack, if any.
type Catalog struct {
	tag      language.Tag
	strings  map[string]map[string]string
	months   []string
	weekdays []string
	ago      string
	fromNow  string
	steps    []string
	parent   *Catalog
}

// ParseCatalog reads a language pack in YAML form.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	var p pack
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode language pack: %w", err)
	}
	tag, err := language.Parse(p.Lang)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, p.Lang)
	}
	if n := len(p.Dates.Months); n != 0 && n != 12 {
		return nil, fmt.Errorf("language pack %q: want 12 month names, got %d", p.Lang, n)
	}
	if n := len(p.Dates.Weekdays); n != 0 && n != 7 {
		return nil, fmt.Errorf("language pack %q: want 7 weekday names, got %d", p.Lang, n)
	}
	rel := p.Dates.Relative
	if n := len(rel.Steps); n != 0 && n != RelativeThresholds {
		return nil, fmt.Errorf("language pack %q: want %d relative steps, got %d", p.Lang, RelativeThresholds, n)
	}
	return &Catalog{
		tag:      tag,
		strings:  p.Strings,
		months:   p.Dates.Months,
		weekdays: p.Dates.Weekdays,
		ago:      rel.Ago,
		fromNow:  rel.FromNow,
		steps:    rel.Steps,
	}, nil
}

// LoadCatalog returns the embedded pack that best matches the BCP 47 tag
// lang, falling back to English. Packs other than English use the English
// pack as their parent.
func LoadCatalog(lang string) (*Catalog, error) {
	want, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	all, err := embeddedCatalogs()
	if err != nil {
		return nil, err
	}
	tags := make([]language.Tag, len(all))
	for i, c := range all {
		tags[i] = c.tag
	}
	_, idx, _ := language.NewMatcher(tags).Match(want)
	chosen := all[idx]
	if chosen != all[0] {
		chosen.parent = all[0]
	}
	return chosen, nil
}

// Languages lists the tags of the embedded language packs.
func Languages() ([]language.Tag, error) {
	all, err := embeddedCatalogs()
	if err != nil {
		return nil, err
	}
	tags := make([]language.Tag, len(all))
	for i, c := range all {
		tags[i] = c.tag
	}
	return tags, nil
}

// embeddedCatalogs parses every embedded pack, English first.
func embeddedCatalogs() ([]*Catalog, error) {
	entries, err := packs.ReadDir("lang")
	if err != nil {
		return nil, err
	}
	var out []*Catalog
	for _, e := range entries {
		c, err := openCatalog(path.Join("lang", e.Name()))
		if err != nil {
			return nil, err
		}
		if c.tag == language.English {
			out = append([]*Catalog{c}, out...)
		} else {
			out = append(out, c)
		}
	}
	if len(out) == 0 || out[0].tag != language.English {
		return nil, fmt.Errorf("%w: no embedded English pack", ErrUnknownLanguage)
	}
	return out, nil
}

func openCatalog(name string) (*Catalog, error) {
	f, err := packs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := ParseCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

// Tag returns the language of the catalog.
func (c *Catalog) Tag() language.Tag { return c.tag }

// WithParent returns a copy of c that falls back to parent on missing strings.
func (c *Catalog) WithParent(parent *Catalog) *Catalog {
	cp := *c
	cp.parent = parent
	return &cp
}

// String implements [Strings].
func (c *Catalog) String(id, component string) (string, error) {
	for cat := c; cat != nil; cat = cat.parent {
		if s, ok := cat.strings[component][id]; ok {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: [%s,%s]", ErrMissingString, id, component)
}

// Layout returns the Go time layout for day-date-time rendering.
func (c *Catalog) Layout() string {
	if s, err := c.String(dateLayout, langConfig); err == nil && s != "" {
		return s
	}
	return DefaultLayout
}

// Month returns the localised month name.
func (c *Catalog) Month(m time.Month) string {
	for cat := c; cat != nil; cat = cat.parent {
		if len(cat.months) == 12 {
			return cat.months[m-1]
		}
	}
	return m.String()
}

// Weekday returns the localised weekday name.
func (c *Catalog) Weekday(d time.Weekday) string {
	for cat := c; cat != nil; cat = cat.parent {
		if len(cat.weekdays) == 7 {
			return cat.weekdays[d]
		}
	}
	return d.String()
}

// RelativeLabels implements [RelativeNames]. Labels and steps come from the
// same pack.
func (c *Catalog) RelativeLabels() (ago, fromNow string) {
	if cat := c.relativePack(); cat != nil {
		return cat.ago, cat.fromNow
	}
	return "", ""
}

// RelativeSteps implements [RelativeNames].
func (c *Catalog) RelativeSteps() []string {
	if cat := c.relativePack(); cat != nil {
		return cat.steps
	}
	return nil
}

// relativePack returns the first pack in the chain with a complete relative
// section.
func (c *Catalog) relativePack() *Catalog {
	for cat := c; cat != nil; cat = cat.parent {
		if cat.ago != "" && cat.fromNow != "" && len(cat.steps) == RelativeThresholds {
			return cat
		}
	}
	return nil
}
