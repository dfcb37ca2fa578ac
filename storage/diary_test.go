package storage

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDiary(t *testing.T) (*Diary, *time.Time) {
	t.Helper()
	now := time.Date(2024, 2, 14, 9, 0, 0, 0, time.UTC)
	d := NewDiary(filepath.Join(t.TempDir(), "diary.jsonl")).WithClock(func() time.Time { return now })
	return d, &now
}

func TestDiaryCreateAndList(t *testing.T) {
	d, now := newTestDiary(t)

	first, err := d.Create("  Valentine ", "Roses")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "Valentine", first.Subject)
	assert.True(t, first.Date.Equal(*now))

	*now = now.Add(time.Hour)
	second, err := d.Create("", "Dinner")
	require.NoError(t, err)

	notes, err := d.List()
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, second.ID, notes[0].ID, "newest note first")
	assert.Equal(t, first.ID, notes[1].ID)
}

func TestDiaryCreateRejectsEmpty(t *testing.T) {
	d, _ := newTestDiary(t)

	_, err := d.Create("  ", "\n")
	assert.True(t, errors.Is(err, ErrEmptyNote))
}

func TestDiaryUpdateMovesToFront(t *testing.T) {
	d, now := newTestDiary(t)

	a, err := d.Create("a", "first")
	require.NoError(t, err)
	_, err = d.Create("b", "second")
	require.NoError(t, err)

	*now = now.Add(24 * time.Hour)
	updated, err := d.Update(a.ID, "a2", "edited")
	require.NoError(t, err)
	assert.Equal(t, a.ID, updated.ID)
	assert.True(t, updated.Date.Equal(*now))

	notes, err := d.List()
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "a2", notes[0].Subject)
	assert.Equal(t, "edited", notes[0].Content)
	assert.Equal(t, "b", notes[1].Subject)
}

func TestDiaryUpdateMissing(t *testing.T) {
	d, _ := newTestDiary(t)

	_, err := d.Update("nope", "s", "c")
	assert.True(t, errors.Is(err, ErrNoteNotFound))
}

func TestDiaryGetAndDelete(t *testing.T) {
	d, _ := newTestDiary(t)

	a, err := d.Create("a", "")
	require.NoError(t, err)
	b, err := d.Create("b", "")
	require.NoError(t, err)

	got, err := d.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Subject)

	require.NoError(t, d.Delete(a.ID))
	_, err = d.Get(a.ID)
	assert.True(t, errors.Is(err, ErrNoteNotFound))
	assert.True(t, errors.Is(d.Delete(a.ID), ErrNoteNotFound))

	notes, err := d.List()
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, b.ID, notes[0].ID)
}

func TestDiarySearch(t *testing.T) {
	d, _ := newTestDiary(t)

	_, err := d.Create("Beach day", "sand everywhere")
	require.NoError(t, err)
	_, err = d.Create("Concert", "She sang along")
	require.NoError(t, err)

	notes, err := d.Search("SAN")
	require.NoError(t, err)
	assert.Len(t, notes, 2)

	notes, err = d.Search("beach")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Beach day", notes[0].Subject)
}

func TestDiaryImport(t *testing.T) {
	d, now := newTestDiary(t)

	existing, err := d.Create("kept", "original")
	require.NoError(t, err)

	added, replaced, err := d.Import([]Note{
		{ID: existing.ID, Subject: "kept", Content: "replaced", Date: *now},
		{ID: "1700000000000", Subject: "from browser", Date: *now},
		{Subject: "no id"},
		{ID: "1700000000000", Subject: "duplicate"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, replaced)

	notes, err := d.List()
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "from browser", notes[0].Subject)
	assert.Equal(t, "no id", notes[1].Subject)
	assert.NotEmpty(t, notes[1].ID)
	assert.True(t, notes[1].Date.Equal(*now))
	assert.Equal(t, "replaced", notes[2].Content)
}

func TestDiaryConcurrentCreate(t *testing.T) {
	d := NewDiary(filepath.Join(t.TempDir(), "diary.jsonl"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.Create("note", "content")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	notes, err := d.List()
	require.NoError(t, err)
	assert.Len(t, notes, 20)
}

func TestDiaryPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diary.jsonl")
	if got := NewDiary(path).Path(); got != path {
		t.Errorf("Expected path %q, got %q", path, got)
	}

	t.Setenv(DiaryEnvVar, "/tmp/ourlove-env/diary.jsonl")
	if got := NewDiary("").Path(); got != "/tmp/ourlove-env/diary.jsonl" {
		t.Errorf("Expected env path, got %q", got)
	}
}
