package rubriclist

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// DateNames supplies the layout and localised names for date rendering.
// *Catalog implements it.
type DateNames interface {
	Layout() string
	Month(time.Month) string
	Weekday(time.Weekday) string
}

// RelativeNames supplies the words of "3 days ago" style dates. *Catalog
// implements it.
//
// RelativeSteps returns [RelativeThresholds] formats, one per step from
// "now" up to "a long while", in order. A format may hold %d for the count
// and %s for the ago or from now label. Any other length falls back to
// English.
type RelativeNames interface {
	RelativeLabels() (ago, fromNow string)
	RelativeSteps() []string
}

// relativeStep is the upper bound of a relative date step and the unit its
// count is measured in.
type relativeStep struct {
	below time.Duration
	unit  time.Duration
}

// RelativeThresholds is the number of steps a [RelativeNames] provides.
const RelativeThresholds = 17

var relativeSteps = [RelativeThresholds]relativeStep{
	{time.Second, time.Second},
	{2 * time.Second, 1},
	{time.Minute, time.Second},
	{2 * time.Minute, 1},
	{time.Hour, time.Minute},
	{2 * time.Hour, 1},
	{humanize.Day, time.Hour},
	{2 * humanize.Day, 1},
	{humanize.Week, humanize.Day},
	{2 * humanize.Week, 1},
	{humanize.Month, humanize.Week},
	{2 * humanize.Month, 1},
	{humanize.Year, humanize.Month},
	{18 * humanize.Month, 1},
	{2 * humanize.Year, 1},
	{humanize.LongTime, humanize.Year},
	{math.MaxInt64, 1},
}

func relativeMagnitudes(steps []string) []humanize.RelTimeMagnitude {
	if len(steps) != RelativeThresholds {
		return nil
	}
	mags := make([]humanize.RelTimeMagnitude, RelativeThresholds)
	for i, s := range relativeSteps {
		mags[i] = humanize.RelTimeMagnitude{D: s.below, Format: steps[i], DivBy: s.unit}
	}
	return mags
}

// Dates renders Unix timestamps for the last-modified column.
type Dates struct {
	names    DateNames
	loc      *time.Location
	relative bool
	now      func() time.Time
}

// DateOption configures a [Dates].
type DateOption func(*Dates)

// InLocation renders absolute dates in loc. Default: UTC.
func InLocation(loc *time.Location) DateOption {
	return func(d *Dates) {
		if loc != nil {
			d.loc = loc
		}
	}
}

// Relative switches to "3 days ago" style, measured against now. A nil now
// means time.Now.
func Relative(now func() time.Time) DateOption {
	return func(d *Dates) {
		d.relative = true
		if now != nil {
			d.now = now
		}
	}
}

// NewDates returns a date renderer using names for layout and localisation.
// A nil names renders with [DefaultLayout] and English names.
func NewDates(names DateNames, opts ...DateOption) *Dates {
	d := &Dates{names: names, loc: time.UTC, now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Format renders the timestamp.
func (d *Dates) Format(unix int64) string {
	t := time.Unix(unix, 0).In(d.loc)
	if d.relative {
		return d.relativeTo(t)
	}
	if d.names == nil {
		return t.Format(DefaultLayout)
	}
	s := t.Format(d.names.Layout())
	// Names are substituted after formatting so they can never be read as
	// layout tokens.
	s = strings.Replace(s, t.Weekday().String(), d.names.Weekday(t.Weekday()), 1)
	s = strings.Replace(s, t.Month().String(), d.names.Month(t.Month()), 1)
	return s
}

func (d *Dates) relativeTo(t time.Time) string {
	rn, ok := d.names.(RelativeNames)
	if !ok {
		return humanize.RelTime(t, d.now(), "ago", "from now")
	}
	mags := relativeMagnitudes(rn.RelativeSteps())
	ago, fromNow := rn.RelativeLabels()
	if mags == nil || ago == "" || fromNow == "" {
		return humanize.RelTime(t, d.now(), "ago", "from now")
	}
	return humanize.CustomRelTime(t, d.now(), ago, fromNow, mags)
}
