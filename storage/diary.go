package storage

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Diary is a file-backed collection of notes, newest first.
// It is safe for concurrent use within one process.
type Diary struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewDiary returns a diary stored at path. An empty path uses DefaultDiaryPath.
func NewDiary(path string) *Diary {
	if path == "" {
		path = DefaultDiaryPath()
	}
	return &Diary{path: path, now: UTCNow}
}

// WithClock replaces the diary's time source.
func (d *Diary) WithClock(now func() time.Time) *Diary {
	d.now = now
	return d
}

// Path returns the backing file path.
func (d *Diary) Path() string {
	return d.path
}

// List returns all notes, newest first.
func (d *Diary) List() ([]Note, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return ReadNotes(d.path)
}

// Search returns notes whose subject or content contains query.
func (d *Diary) Search(query string) ([]Note, error) {
	notes, err := d.List()
	if err != nil {
		return nil, err
	}
	return FilterNotes(notes, query), nil
}

// Get returns the note with id.
func (d *Diary) Get(id string) (Note, error) {
	notes, err := d.List()
	if err != nil {
		return Note{}, err
	}
	idx := FindNote(notes, id)
	if idx == -1 {
		return Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	return notes[idx], nil
}

// Create stores a new note at the front of the diary.
func (d *Diary) Create(subject, content string) (Note, error) {
	if strings.TrimSpace(subject) == "" && strings.TrimSpace(content) == "" {
		return Note{}, ErrEmptyNote
	}

	note := Note{
		ID:      uuid.NewString(),
		Subject: strings.TrimSpace(subject),
		Content: content,
		Date:    d.now(),
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	notes, err := ReadNotes(d.path)
	if err != nil {
		return Note{}, fmt.Errorf("failed to read notes: %w", err)
	}
	if err := WriteNotes(append([]Note{note}, notes...), d.path); err != nil {
		return Note{}, fmt.Errorf("failed to write notes: %w", err)
	}
	return note, nil
}

// Update rewrites an existing note, refreshes its date and moves it to the front.
func (d *Diary) Update(id, subject, content string) (Note, error) {
	if strings.TrimSpace(subject) == "" && strings.TrimSpace(content) == "" {
		return Note{}, ErrEmptyNote
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	notes, err := ReadNotes(d.path)
	if err != nil {
		return Note{}, fmt.Errorf("failed to read notes: %w", err)
	}
	idx := FindNote(notes, id)
	if idx == -1 {
		return Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}

	updated := Note{
		ID:      id,
		Subject: strings.TrimSpace(subject),
		Content: content,
		Date:    d.now(),
	}
	rest := append(notes[:idx:idx], notes[idx+1:]...)
	if err := WriteNotes(append([]Note{updated}, rest...), d.path); err != nil {
		return Note{}, fmt.Errorf("failed to write notes: %w", err)
	}
	return updated, nil
}

// Delete removes the note with id.
func (d *Diary) Delete(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	notes, err := ReadNotes(d.path)
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}
	idx := FindNote(notes, id)
	if idx == -1 {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}

	rest := append(notes[:idx:idx], notes[idx+1:]...)
	if err := WriteNotes(rest, d.path); err != nil {
		return fmt.Errorf("failed to write notes: %w", err)
	}
	return nil
}

// Import merges notes into the diary. Notes with a known ID replace the
// stored copy in place; unknown ones are added to the front in their given
// order. Notes without an ID are assigned one. It returns how many notes
// were added and replaced.
func (d *Diary) Import(imported []Note) (added, replaced int, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	notes, err := ReadNotes(d.path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read notes: %w", err)
	}

	var fresh []Note
	for _, note := range imported {
		if note.ID == "" {
			note.ID = uuid.NewString()
		}
		if note.Date.IsZero() {
			note.Date = d.now()
		}
		if idx := FindNote(notes, note.ID); idx != -1 {
			notes[idx] = note
			replaced++
			continue
		}
		if FindNote(fresh, note.ID) != -1 {
			continue
		}
		fresh = append(fresh, note)
		added++
	}

	if err := WriteNotes(append(fresh, notes...), d.path); err != nil {
		return 0, 0, fmt.Errorf("failed to write notes: %w", err)
	}
	return added, replaced, nil
}
