package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ourlove/lovetime"
	"ourlove/storage"
)

var (
	testReference = time.Date(2022, 11, 29, 22, 6, 0, 0, time.UTC)
	testNow       = time.Date(2024, 1, 29, 22, 6, 0, 0, time.UTC)
)

func newTestModel(t *testing.T) (Model, *storage.Diary) {
	t.Helper()
	calc, err := lovetime.NewCalculatorWithClock(testReference, lovetime.ClockFunc(func() time.Time { return testNow }))
	require.NoError(t, err)
	diary := storage.NewDiary(filepath.Join(t.TempDir(), "diary.jsonl")).
		WithClock(func() time.Time { return testNow })

	m := NewModel(Options{
		Calculator:  calc,
		Diary:       diary,
		Title:       "Our Love",
		PartnerName: "Sam",
		Tagline:     "every second counts",
	})
	return m, diary
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelComputesBreakdown(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, lovetime.DefaultTickInterval, m.interval)
	assert.Equal(t, testNow, m.now)
	assert.Equal(t, 1, m.breakdown.Years)
	assert.Equal(t, 2, m.breakdown.Months)
}

func TestTickReschedules(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, tickMsg(testNow))
	assert.NotNil(t, cmd)
	assert.Equal(t, "1y 2m 0d 00:00:00", m.breakdown.String())
}

func TestNotesLoadedClampsSelection(t *testing.T) {
	m, _ := newTestModel(t)
	m.selected = 5

	m, _ = update(t, m, notesLoadedMsg{notes: []storage.Note{{ID: "a"}, {ID: "b"}}})
	assert.Equal(t, 1, m.selected)

	m, _ = update(t, m, notesLoadedMsg{notes: nil})
	assert.Equal(t, 0, m.selected)
}

func TestSelectionKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, notesLoadedMsg{notes: []storage.Note{{ID: "a"}, {ID: "b"}, {ID: "c"}}})

	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, runes("j"))
	assert.Equal(t, 2, m.selected)

	m, _ = update(t, m, runes("k"))
	assert.Equal(t, 1, m.selected)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWriteNoteThroughModal(t *testing.T) {
	m, diary := newTestModel(t)

	m, _ = update(t, m, runes("n"))
	require.True(t, m.modalOpen)
	assert.Contains(t, m.View(), "New diary note")

	m, _ = update(t, m, runes("Picnic"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusContent, m.focus)
	m, _ = update(t, m, runes("by the lake"))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.False(t, m.modalOpen)
	require.NotNil(t, cmd)

	saved, ok := cmd().(noteSavedMsg)
	require.True(t, ok)
	assert.Equal(t, "Picnic", saved.note.Subject)
	assert.Equal(t, "by the lake", saved.note.Content)

	m, cmd = update(t, m, saved)
	assert.Equal(t, "Saved 'Picnic'.", m.message)
	assert.False(t, m.messageError)

	m, _ = update(t, m, cmd())
	require.Len(t, m.notes, 1)

	notes, err := diary.List()
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, saved.note.ID, notes[0].ID)
}

func TestEmptyNoteReportsError(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, runes("n"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.True(t, m.messageError)
	assert.Contains(t, m.message, storage.ErrEmptyNote.Error())
}

func TestEscapeClosesModal(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, runes("n"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.modalOpen)
	assert.Nil(t, cmd)
}

func TestDeleteSelectedNote(t *testing.T) {
	m, diary := newTestModel(t)
	note, err := diary.Create("Gone", "soon")
	require.NoError(t, err)

	m, _ = update(t, m, m.loadNotes())
	require.Len(t, m.notes, 1)

	m, cmd := update(t, m, runes("d"))
	require.NotNil(t, cmd)
	deleted, ok := cmd().(noteDeletedMsg)
	require.True(t, ok)
	assert.Equal(t, note.ID, deleted.note.ID)

	m, cmd = update(t, m, deleted)
	assert.Equal(t, "Deleted 'Gone'.", m.message)
	m, _ = update(t, m, cmd())
	assert.Empty(t, m.notes)
}

func TestDeleteWithoutNotesIsNoop(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := update(t, m, runes("d"))
	assert.Nil(t, cmd)
}

func TestMainView(t *testing.T) {
	m, diary := newTestModel(t)
	_, err := diary.Create("Anniversary dinner", "")
	require.NoError(t, err)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = update(t, m, m.loadNotes())

	view := m.View()
	assert.Contains(t, view, "Our Love")
	assert.Contains(t, view, "Sam")
	assert.Contains(t, view, "every second counts")
	assert.Contains(t, view, "Years")
	assert.Contains(t, view, "Anniversary dinner")
	assert.Contains(t, view, "Anniversaries")
	assert.Contains(t, view, "Notes per Month")
	assert.Contains(t, view, "[q] Quit")
}

func TestLaunchTUIRequiresDependencies(t *testing.T) {
	assert.Error(t, LaunchTUI(Options{}))
}
