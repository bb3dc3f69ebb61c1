package rubriclist_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/rubriclist"
)

const site = "https://lms.example.edu"

func essay() rubriclist.Record {
	return rubriclist.Record{
		Name:         "Essay Rubric",
		Status:       rubriclist.StatusReady,
		ModType:      "assign",
		CMID:         12,
		Assignment:   "Essay 1",
		CourseID:     5,
		Course:       "ENG101",
		AreaID:       3,
		TimeModified: 1700000000,
	}
}

func discussion() rubriclist.Record {
	return rubriclist.Record{
		Name:         "Discussion Rubric",
		Status:       rubriclist.StatusDraft,
		ModType:      "forum",
		CMID:         40,
		Forum:        "Week 1 forum",
		CourseID:     7,
		Course:       "HIST210",
		AreaID:       9,
		TimeModified: 1690000000,
	}
}

func english(t *testing.T) *rubriclist.Catalog {
	t.Helper()
	cat, err := rubriclist.LoadCatalog("en")
	require.NoError(t, err)
	return cat
}

func newFormatter(t *testing.T, opts ...rubriclist.Option) *rubriclist.Formatter {
	t.Helper()
	return rubriclist.NewFormatter(english(t), rubriclist.SiteLinker{Root: site}, opts...)
}

func TestFormatterEndToEnd(t *testing.T) {
	t.Parallel()
	f := newFormatter(t)
	r := essay()

	name, err := f.Name(r)
	require.NoError(t, err)
	assert.Equal(t, `<a href="https://lms.example.edu/grade/grading/manage.php?areaid=3">Essay Rubric</a>`, name)

	status, err := f.Status(r)
	require.NoError(t, err)
	assert.Equal(t, "Ready", status)

	modType, err := f.ModType(r)
	require.NoError(t, err)
	assert.Equal(t, "Assignment", modType)

	module, err := f.Module(r)
	require.NoError(t, err)
	assert.Equal(t, `<a href="https://lms.example.edu/mod/assign/view.php?id=12">Essay 1</a>`, module)

	course, err := f.Course(r)
	require.NoError(t, err)
	assert.Equal(t, `<a href="https://lms.example.edu/course/view.php?id=5">ENG101</a>`, course)

	assert.Equal(t, "Tuesday, 14 November 2023, 10:13 PM", f.TimeModified(r))
}

func TestFormatterStatus(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		status  rubriclist.Status
		want    string
		wantErr error
	}{
		"draft":   {status: rubriclist.StatusDraft, want: "Draft"},
		"ready":   {status: rubriclist.StatusReady, want: "Ready"},
		"null":    {status: 0, wantErr: rubriclist.ErrUnknownStatus},
		"unknown": {status: 15, wantErr: rubriclist.ErrUnknownStatus},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, exporting := range []bool{false, true} {
				f := newFormatter(t, rubriclist.Exporting(exporting))
				r := essay()
				r.Status = tt.status
				got, err := f.Status(r)
				if tt.wantErr != nil {
					require.ErrorIs(t, err, tt.wantErr)
					continue
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatterExportIsPlainText(t *testing.T) {
	t.Parallel()
	f := newFormatter(t, rubriclist.Exporting(true))
	require.True(t, f.IsExporting())

	for _, r := range []rubriclist.Record{essay(), discussion()} {
		name, err := f.Name(r)
		require.NoError(t, err)
		assert.Equal(t, r.Name, name)

		course, err := f.Course(r)
		require.NoError(t, err)
		assert.Equal(t, r.Course, course)

		module, err := f.Module(r)
		require.NoError(t, err)
		assert.Equal(t, r.Assignment+r.Forum, module)

		cells, err := f.Row(r)
		require.NoError(t, err)
		for _, c := range cells {
			assert.NotContains(t, c, "<")
			assert.NotContains(t, c, "href")
		}
	}
}

func TestFormatterExportKeepsSpecialCharacters(t *testing.T) {
	t.Parallel()
	f := newFormatter(t, rubriclist.Exporting(true))
	r := essay()
	r.Name = `Essay & "Draft" <v2>`
	name, err := f.Name(r)
	require.NoError(t, err)
	assert.Equal(t, r.Name, name)
}

func TestFormatterInteractiveLinks(t *testing.T) {
	t.Parallel()
	f := newFormatter(t)
	for _, r := range []rubriclist.Record{essay(), discussion()} {
		name, err := f.Name(r)
		require.NoError(t, err)
		assert.Contains(t, name, "/grade/grading/manage.php?areaid="+itoa(r.AreaID))

		course, err := f.Course(r)
		require.NoError(t, err)
		assert.Contains(t, course, "/course/view.php?id="+itoa(r.CourseID))
	}
}

func TestFormatterInteractiveEscapesText(t *testing.T) {
	t.Parallel()
	f := newFormatter(t)
	r := essay()
	r.Name = "<script>x</script>"
	name, err := f.Name(r)
	require.NoError(t, err)
	assert.Contains(t, name, "&lt;script&gt;x&lt;/script&gt;")
	assert.NotContains(t, name, "<script>")
}

func TestFormatterModule(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		record   rubriclist.Record
		path     string
		wantName string
	}{
		"assign": {record: essay(), path: "/mod/assign/view.php?id=12", wantName: ">Essay 1<"},
		"forum":  {record: discussion(), path: "/mod/forum/view.php?id=40", wantName: ">Week 1 forum<"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := newFormatter(t).Module(tt.record)
			require.NoError(t, err)
			assert.Contains(t, got, tt.path)
			assert.Contains(t, got, tt.wantName)
		})
	}
}

func TestFormatterModuleUnsupported(t *testing.T) {
	t.Parallel()
	r := essay()
	r.ModType = "quiz"
	for _, exporting := range []bool{false, true} {
		_, err := newFormatter(t, rubriclist.Exporting(exporting)).Module(r)
		require.ErrorIs(t, err, rubriclist.ErrUnsupportedModuleType)
		assert.Contains(t, err.Error(), `"quiz"`)
	}
}

func TestFormatterModuleRegistered(t *testing.T) {
	t.Parallel()
	reg := rubriclist.DefaultRegistry()
	reg.Register("quiz", rubriclist.ModuleType{
		Path: "/mod/quiz/view.php",
		ID:   rubriclist.CMID,
		Name: rubriclist.ExtraName("quiz"),
	})
	r := essay()
	r.ModType = "quiz"
	r.Assignment = ""
	r.CMID = 77
	r.Extra = map[string]string{"quiz": "Midterm"}

	got, err := newFormatter(t, rubriclist.WithRegistry(reg)).Module(r)
	require.NoError(t, err)
	assert.Equal(t, `<a href="https://lms.example.edu/mod/quiz/view.php?id=77">Midterm</a>`, got)

	modType, err := newFormatter(t).ModType(r)
	require.NoError(t, err)
	assert.Equal(t, "Quiz", modType)
}

func TestFormatterModType(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		modType string
		want    string
		wantErr error
	}{
		"assign":  {modType: "assign", want: "Assignment"},
		"forum":   {modType: "forum", want: "Forum"},
		"unknown": {modType: "hotpot", wantErr: rubriclist.ErrUnknownModuleType},
		"empty":   {modType: "", wantErr: rubriclist.ErrUnknownModuleType},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := essay()
			r.ModType = tt.modType
			got, err := newFormatter(t).ModType(r)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatterModTypePropagatesLookupFailure(t *testing.T) {
	t.Parallel()
	boom := errors.New("catalog offline")
	f := rubriclist.NewFormatter(failingStrings{err: boom}, rubriclist.SiteLinker{})
	_, err := f.ModType(essay())
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, rubriclist.ErrUnknownModuleType)
}

func TestFormatterRow(t *testing.T) {
	t.Parallel()
	f := newFormatter(t, rubriclist.Exporting(true))
	cells, err := f.Row(essay())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Essay Rubric",
		"Tuesday, 14 November 2023, 10:13 PM",
		"Assignment",
		"Essay 1",
		"Ready",
		"ENG101",
	}, cells)
}

func TestFormatterRowIsolatesFailures(t *testing.T) {
	t.Parallel()
	f := newFormatter(t, rubriclist.Exporting(true))
	r := essay()
	r.ModType = "hotpot"
	r.Status = 99

	cells, err := f.Row(r)
	require.Error(t, err)
	assert.Equal(t, []string{
		"Essay Rubric",
		"Tuesday, 14 November 2023, 10:13 PM",
		"Error",
		"Error",
		"Error",
		"ENG101",
	}, cells)

	assert.ErrorIs(t, err, rubriclist.ErrUnknownModuleType)
	assert.ErrorIs(t, err, rubriclist.ErrUnsupportedModuleType)
	assert.ErrorIs(t, err, rubriclist.ErrUnknownStatus)

	var colErr *rubriclist.ColumnError
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, rubriclist.ColModType, colErr.Column)
}

func TestFormatterHeader(t *testing.T) {
	t.Parallel()
	got, err := newFormatter(t).Header()
	require.NoError(t, err)
	assert.Equal(t, []string{"Rubric", "Last updated", "Activity type", "Activity", "Status", "Course"}, got)
}

func TestFormatterHeaderMissingString(t *testing.T) {
	t.Parallel()
	f := rubriclist.NewFormatter(failingStrings{err: rubriclist.ErrMissingString}, rubriclist.SiteLinker{})
	_, err := f.Header()
	require.ErrorIs(t, err, rubriclist.ErrMissingString)
	assert.Contains(t, err.Error(), "header name")
}

func TestFormatterSpanish(t *testing.T) {
	t.Parallel()
	cat, err := rubriclist.LoadCatalog("es")
	require.NoError(t, err)
	f := rubriclist.NewFormatter(cat, rubriclist.SiteLinker{}, rubriclist.Exporting(true))

	cells, err := f.Row(discussion())
	require.NoError(t, err)
	assert.Equal(t, "Foro", cells[2])
	assert.Equal(t, "Borrador", cells[4])

	header, err := f.Header()
	require.NoError(t, err)
	assert.Equal(t, "Rúbrica", header[0])
}

func TestColumns(t *testing.T) {
	t.Parallel()
	cols := rubriclist.Columns()
	assert.Equal(t, []string{"name", "timemodified", "modtype", "module", "status", "course"}, cols)
	cols[0] = "mutated"
	assert.Equal(t, "name", rubriclist.Columns()[0])
}

func TestStatusString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "draft", rubriclist.StatusDraft.String())
	assert.Equal(t, "ready", rubriclist.StatusReady.String())
	assert.Equal(t, "status(3)", rubriclist.Status(3).String())
}

// --- Helpers ---

type failingStrings struct{ err error }

func (s failingStrings) String(id, component string) (string, error) {
	return "", s.err
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
