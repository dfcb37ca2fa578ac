package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ourlove/lovetime"
	"ourlove/storage"
)

// Options configures the dashboard.
type Options struct {
	Calculator   *lovetime.Calculator
	Diary        *storage.Diary
	Title        string
	PartnerName  string
	Tagline      string
	TickInterval time.Duration
}

type tickMsg time.Time

type notesLoadedMsg struct {
	notes []storage.Note
}

type noteSavedMsg struct {
	note storage.Note
}

type noteDeletedMsg struct {
	note storage.Note
}

type errMsg struct {
	err error
}

// modal field focus
const (
	focusSubject = iota
	focusContent
)

// Model is the bubbletea model for the dashboard.
type Model struct {
	calc     *lovetime.Calculator
	diary    *storage.Diary
	opts     Options
	interval time.Duration

	now       time.Time
	breakdown lovetime.Breakdown
	notes     []storage.Note
	selected  int

	width  int
	height int

	message      string
	messageError bool

	modalOpen bool
	focus     int
	subject   textinput.Model
	content   textarea.Model
}

// NewModel builds the dashboard model.
func NewModel(opts Options) Model {
	interval := opts.TickInterval
	if interval <= 0 {
		interval = lovetime.DefaultTickInterval
	}

	subject := textinput.New()
	subject.Placeholder = "Subject"
	subject.CharLimit = 120

	content := textarea.New()
	content.Placeholder = "Write something lovely..."
	content.ShowLineNumbers = false
	content.SetHeight(6)

	m := Model{
		calc:     opts.Calculator,
		diary:    opts.Diary,
		opts:     opts,
		interval: interval,
		subject:  subject,
		content:  content,
	}
	m.refresh()
	return m
}

func (m *Model) refresh() {
	m.now = m.calc.Current()
	m.breakdown = m.calc.At(m.now)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) loadNotes() tea.Msg {
	notes, err := m.diary.List()
	if err != nil {
		return errMsg{err: fmt.Errorf("failed to load notes: %w", err)}
	}
	return notesLoadedMsg{notes: notes}
}

func (m Model) saveNote(subject, content string) tea.Cmd {
	return func() tea.Msg {
		note, err := m.diary.Create(subject, content)
		if err != nil {
			return errMsg{err: err}
		}
		return noteSavedMsg{note: note}
	}
}

func (m Model) deleteNote(note storage.Note) tea.Cmd {
	return func() tea.Msg {
		if err := m.diary.Delete(note.ID); err != nil {
			return errMsg{err: err}
		}
		return noteDeletedMsg{note: note}
	}
}

// Init starts the clock and loads the diary.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.loadNotes)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.content.SetWidth(min(msg.Width-20, 64))
		return m, nil

	case tickMsg:
		m.refresh()
		return m, m.tick()

	case notesLoadedMsg:
		m.notes = msg.notes
		if m.selected >= len(m.notes) {
			m.selected = max(0, len(m.notes)-1)
		}
		return m, nil

	case noteSavedMsg:
		m.setMessage(fmt.Sprintf("Saved '%s'.", msg.note.Title()), false)
		m.selected = 0
		return m, m.loadNotes

	case noteDeletedMsg:
		m.setMessage(fmt.Sprintf("Deleted '%s'.", msg.note.Title()), false)
		return m, m.loadNotes

	case errMsg:
		m.setMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		if m.modalOpen {
			return m.updateModal(msg)
		}
		return m.updateMain(msg)
	}

	return m, nil
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.notes)-1 {
			m.selected++
		}
	case "r":
		m.setMessage("Reloaded.", false)
		return m, m.loadNotes
	case "n":
		return m.openModal()
	case "d":
		if len(m.notes) == 0 {
			return m, nil
		}
		return m, m.deleteNote(m.notes[m.selected])
	}
	return m, nil
}

func (m Model) openModal() (tea.Model, tea.Cmd) {
	m.modalOpen = true
	m.message = ""
	m.subject.Reset()
	m.content.Reset()
	m.focus = focusSubject
	m.content.Blur()
	cmd := m.subject.Focus()
	return m, cmd
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.modalOpen = false
		m.subject.Blur()
		m.content.Blur()
		return m, nil
	case "ctrl+s":
		subject, content := m.subject.Value(), m.content.Value()
		m.modalOpen = false
		m.subject.Blur()
		m.content.Blur()
		return m, m.saveNote(subject, content)
	case "tab", "shift+tab":
		return m.switchFocus()
	}

	var cmd tea.Cmd
	if m.focus == focusSubject {
		if msg.Type == tea.KeyEnter {
			return m.switchFocus()
		}
		m.subject, cmd = m.subject.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m Model) switchFocus() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusSubject {
		m.focus = focusContent
		m.subject.Blur()
		cmd = m.content.Focus()
	} else {
		m.focus = focusSubject
		m.content.Blur()
		cmd = m.subject.Focus()
	}
	return m, cmd
}

func (m *Model) setMessage(text string, isError bool) {
	m.message = text
	m.messageError = isError
}

// View renders the model.
func (m Model) View() string {
	if m.modalOpen {
		return renderModalView(m)
	}
	return renderMainView(m)
}
