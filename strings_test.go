package rubriclist_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/bjaus/rubriclist"
)

func TestLoadCatalog(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		lang      string
		wantTag   language.Tag
		wantDraft string
	}{
		"english":          {lang: "en", wantTag: language.English, wantDraft: "Draft"},
		"english regional": {lang: "en-GB", wantTag: language.English, wantDraft: "Draft"},
		"spanish":          {lang: "es", wantTag: language.Spanish, wantDraft: "Borrador"},
		"spanish regional": {lang: "es-MX", wantTag: language.Spanish, wantDraft: "Borrador"},
		"unsupported":      {lang: "fr", wantTag: language.English, wantDraft: "Draft"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cat, err := rubriclist.LoadCatalog(tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTag, cat.Tag())
			got, err := cat.String("statusdraft", "core_grading")
			require.NoError(t, err)
			assert.Equal(t, tt.wantDraft, got)
		})
	}
}

func TestLoadCatalogInvalidTag(t *testing.T) {
	t.Parallel()
	_, err := rubriclist.LoadCatalog("not a tag!")
	require.ErrorIs(t, err, rubriclist.ErrUnknownLanguage)
}

func TestLanguages(t *testing.T) {
	t.Parallel()
	tags, err := rubriclist.Languages()
	require.NoError(t, err)
	assert.Equal(t, []language.Tag{language.English, language.Spanish}, tags)
}

func TestCatalogFallsBackToParent(t *testing.T) {
	t.Parallel()
	cat, err := rubriclist.LoadCatalog("es")
	require.NoError(t, err)
	// The Spanish pack has no workshop name; English supplies it.
	got, err := cat.String("pluginname", "mod_workshop")
	require.NoError(t, err)
	assert.Equal(t, "Workshop", got)
}

func TestCatalogMissingString(t *testing.T) {
	t.Parallel()
	cat, err := rubriclist.LoadCatalog("en")
	require.NoError(t, err)
	_, err = cat.String("nope", "core")
	require.ErrorIs(t, err, rubriclist.ErrMissingString)
	assert.Contains(t, err.Error(), "[nope,core]")
}

func TestParseCatalog(t *testing.T) {
	t.Parallel()
	src := `
lang: fr
strings:
  core_grading:
    statusdraft: Brouillon
  core_langconfig:
    strftimedaydatetime: "Monday 2 January 2006, 15:04"
dates:
  months: [janvier, février, mars, avril, mai, juin, juillet, août, septembre, octobre, novembre, décembre]
  weekdays: [dimanche, lundi, mardi, mercredi, jeudi, vendredi, samedi]
`
	cat, err := rubriclist.ParseCatalog(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, language.French, cat.Tag())
	assert.Equal(t, "Monday 2 January 2006, 15:04", cat.Layout())
	assert.Equal(t, "novembre", cat.Month(time.November))
	assert.Equal(t, "mardi", cat.Weekday(time.Tuesday))

	_, err = cat.String("statusready", "core_grading")
	require.ErrorIs(t, err, rubriclist.ErrMissingString)

	en, err := rubriclist.LoadCatalog("en")
	require.NoError(t, err)
	withParent := cat.WithParent(en)
	got, err := withParent.String("statusready", "core_grading")
	require.NoError(t, err)
	assert.Equal(t, "Ready", got)
	got, err = withParent.String("statusdraft", "core_grading")
	require.NoError(t, err)
	assert.Equal(t, "Brouillon", got)
}

func TestParseCatalogErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		src      string
		contains string
	}{
		"bad yaml":      {src: "lang: [", contains: "decode language pack"},
		"bad tag":       {src: "lang: '!!'", contains: "unknown language"},
		"short months":  {src: "lang: de\ndates:\n  months: [Januar]", contains: "12 month names"},
		"long weekdays": {src: "lang: de\ndates:\n  weekdays: [a, b, c, d, e, f, g, h]", contains: "7 weekday names"},
		"short steps":   {src: "lang: de\ndates:\n  relative:\n    steps: [jetzt]", contains: "want 17 relative steps, got 1"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := rubriclist.ParseCatalog(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestCatalogDefaults(t *testing.T) {
	t.Parallel()
	cat, err := rubriclist.ParseCatalog(strings.NewReader("lang: de\n"))
	require.NoError(t, err)
	assert.Equal(t, rubriclist.DefaultLayout, cat.Layout())
	assert.Equal(t, "March", cat.Month(time.March))
	assert.Equal(t, "Friday", cat.Weekday(time.Friday))
}

func TestCatalogRelativeNames(t *testing.T) {
	t.Parallel()
	es, err := rubriclist.LoadCatalog("es")
	require.NoError(t, err)
	ago, fromNow := es.RelativeLabels()
	assert.Equal(t, "hace", ago)
	assert.Equal(t, "dentro de", fromNow)
	require.Len(t, es.RelativeSteps(), rubriclist.RelativeThresholds)
	assert.Equal(t, "ahora", es.RelativeSteps()[0])

	// A pack without a relative section borrows its parent's labels and
	// steps together.
	de, err := rubriclist.ParseCatalog(strings.NewReader("lang: de\n"))
	require.NoError(t, err)
	ago, fromNow = de.WithParent(es).RelativeLabels()
	assert.Equal(t, "hace", ago)
	assert.Equal(t, "dentro de", fromNow)

	ago, fromNow = de.RelativeLabels()
	assert.Empty(t, ago)
	assert.Empty(t, fromNow)
	assert.Nil(t, de.RelativeSteps())
}
