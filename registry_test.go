package rubriclist_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/rubriclist"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()
	reg := rubriclist.DefaultRegistry()
	assert.Equal(t, []string{"assign", "forum"}, reg.Types())

	mt, ok := reg.Lookup("assign")
	require.True(t, ok)
	assert.Equal(t, "/mod/assign/view.php", mt.Path)
	assert.Equal(t, int64(12), mt.ID(essay()))
	assert.Equal(t, "Essay 1", mt.Name(essay()))

	mt, ok = reg.Lookup("forum")
	require.True(t, ok)
	assert.Equal(t, "/mod/forum/view.php", mt.Path)
	assert.Equal(t, "Week 1 forum", mt.Name(discussion()))

	_, ok = reg.Lookup("quiz")
	assert.False(t, ok)
}

func TestRegistryRegisterReplaces(t *testing.T) {
	t.Parallel()
	reg := rubriclist.NewRegistry()
	assert.Empty(t, reg.Types())

	reg.Register("forum", rubriclist.ModuleType{Path: "/old.php"})
	reg.Register("forum", rubriclist.ModuleType{Path: "/mod/forum/discuss.php"})
	mt, ok := reg.Lookup("forum")
	require.True(t, ok)
	assert.Equal(t, "/mod/forum/discuss.php", mt.Path)
	assert.Len(t, reg.Types(), 1)
}

func TestRegistryConcurrentUse(t *testing.T) {
	t.Parallel()
	reg := rubriclist.DefaultRegistry()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				reg.Register("quiz", rubriclist.ModuleType{Path: "/mod/quiz/view.php"})
				return
			}
			_, _ = reg.Lookup("assign")
			_ = reg.Types()
		}()
	}
	wg.Wait()
	_, ok := reg.Lookup("quiz")
	assert.True(t, ok)
}

func TestExtraName(t *testing.T) {
	t.Parallel()
	name := rubriclist.ExtraName("workshop")
	assert.Equal(t, "Peer review", name(rubriclist.Record{Extra: map[string]string{"workshop": "Peer review"}}))
	assert.Empty(t, name(rubriclist.Record{}))

	// Scan lowercases column names, so a mixed-case column still matches.
	name = rubriclist.ExtraName("QuizName")
	assert.Equal(t, "Midterm", name(rubriclist.Record{Extra: map[string]string{"quizname": "Midterm"}}))
}
