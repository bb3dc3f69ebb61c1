package rubriclist

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// Column identifiers in display order.
const (
	ColName         = "name"
	ColTimeModified = "timemodified"
	ColModType      = "modtype"
	ColModule       = "module"
	ColStatus       = "status"
	ColCourse       = "course"
)

var columns = []string{ColName, ColTimeModified, ColModType, ColModule, ColStatus, ColCourse}

// Columns returns the column identifiers in display order.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// headerStrings maps each column to its (id, component) string.
var headerStrings = map[string][2]string{
	ColName:         {"rubric", "gradingform_rubric"},
	ColTimeModified: {"last_updated", "report_rubric_list"},
	ColModType:      {"activity_type", "report_rubric_list"},
	ColModule:       {"activity", "report_rubric_list"},
	ColStatus:       {"status", "core"},
	ColCourse:       {"course", "core"},
}

var statusStrings = map[Status]string{
	StatusDraft: "statusdraft",
	StatusReady: "statusready",
}

const (
	manageAreaPath = "/grade/grading/manage.php"
	courseViewPath = "/course/view.php"
)

// Formatter turns a [Record] into display columns. It holds no per-row
// state; one Formatter serves a whole listing.
type Formatter struct {
	strs      Strings
	links     Linker
	registry  *Registry
	dates     *Dates
	exporting bool
}

// Option configures a [Formatter].
type Option func(*Formatter)

// Exporting selects download mode: plain text, no links.
func Exporting(on bool) Option {
	return func(f *Formatter) { f.exporting = on }
}

// WithRegistry sets the module type registry. Default: [DefaultRegistry].
func WithRegistry(r *Registry) Option {
	return func(f *Formatter) {
		if r != nil {
			f.registry = r
		}
	}
}

// WithDates sets the date renderer. Default: absolute dates in UTC using
// strs when it implements [DateNames].
func WithDates(d *Dates) Option {
	return func(f *Formatter) {
		if d != nil {
			f.dates = d
		}
	}
}

// NewFormatter returns a Formatter reading labels from strs and building
// links with links.
func NewFormatter(strs Strings, links Linker, opts ...Option) *Formatter {
	f := &Formatter{strs: strs, links: links}
	for _, opt := range opts {
		opt(f)
	}
	if f.registry == nil {
		f.registry = DefaultRegistry()
	}
	if f.dates == nil {
		names, _ := strs.(DateNames)
		f.dates = NewDates(names)
	}
	return f
}

// IsExporting reports whether f renders plain text for downloads.
func (f *Formatter) IsExporting() bool { return f.exporting }

// Name returns the rubric name, linked to its grading area.
func (f *Formatter) Name(r Record) (string, error) {
	if f.exporting {
		return r.Name, nil
	}
	return f.links.Link(manageAreaPath, idParams("areaid", r.AreaID), r.Name), nil
}

// Status returns the localised status label.
func (f *Formatter) Status(r Record) (string, error) {
	id, ok := statusStrings[r.Status]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownStatus, int(r.Status))
	}
	return f.strs.String(id, "core_grading")
}

// Course returns the course name, linked to the course page.
func (f *Formatter) Course(r Record) (string, error) {
	if f.exporting {
		return r.Course, nil
	}
	return f.links.Link(courseViewPath, idParams("id", r.CourseID), r.Course), nil
}

// ModType returns the localised name of the activity module type.
func (f *Formatter) ModType(r Record) (string, error) {
	s, err := f.strs.String("pluginname", "mod_"+r.ModType)
	if errors.Is(err, ErrMissingString) {
		return "", fmt.Errorf("%w: %q", ErrUnknownModuleType, r.ModType)
	}
	return s, err
}

// Module returns the activity name, linked to the activity.
func (f *Formatter) Module(r Record) (string, error) {
	mt, ok := f.registry.Lookup(r.ModType)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedModuleType, r.ModType)
	}
	name := mt.Name(r)
	if f.exporting {
		return name, nil
	}
	return f.links.Link(mt.Path, idParams("id", mt.ID(r)), name), nil
}

// TimeModified returns the rendered last-modified date.
func (f *Formatter) TimeModified(r Record) string {
	return f.dates.Format(r.TimeModified)
}

// Header returns the localised column headers.
func (f *Formatter) Header() ([]string, error) {
	out := make([]string, len(columns))
	for i, col := range columns {
		s := headerStrings[col]
		h, err := f.strs.String(s[0], s[1])
		if err != nil {
			return nil, fmt.Errorf("header %s: %w", col, err)
		}
		out[i] = h
	}
	return out, nil
}

// Row returns every column for r in display order. Columns that fail are
// replaced by the localised error label and reported as [ColumnError]s
// joined into the returned error.
func (f *Formatter) Row(r Record) ([]string, error) {
	cells := make([]string, len(columns))
	var errs []error
	for i, col := range columns {
		cell, err := f.cell(col, r)
		if err != nil {
			errs = append(errs, &ColumnError{Column: col, Err: err})
			cell = f.errorLabel()
		}
		cells[i] = cell
	}
	return cells, errors.Join(errs...)
}

func (f *Formatter) cell(col string, r Record) (string, error) {
	switch col {
	case ColName:
		return f.Name(r)
	case ColTimeModified:
		return f.TimeModified(r), nil
	case ColModType:
		return f.ModType(r)
	case ColModule:
		return f.Module(r)
	case ColStatus:
		return f.Status(r)
	case ColCourse:
		return f.Course(r)
	default:
		return "", fmt.Errorf("unknown column %q", col)
	}
}

func (f *Formatter) errorLabel() string {
	s, err := f.strs.String("error", "core")
	if err != nil {
		return ""
	}
	return s
}

func idParams(key string, id int64) url.Values {
	return url.Values{key: {strconv.FormatInt(id, 10)}}
}
