package storage

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const DiaryEnvVar = "OURLOVE_DIARY_PATH"

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrEmptyNote    = errors.New("note has no subject or content")
)

// Note is a single diary entry.
type Note struct {
	ID      string    `json:"id"`
	Subject string    `json:"subject"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

// UnmarshalJSON accepts numeric IDs as well as strings, so exports from the
// browser diary (millisecond timestamps as IDs) can be imported.
func (n *Note) UnmarshalJSON(data []byte) error {
	type alias Note
	aux := struct {
		ID json.RawMessage `json:"id"`
		*alias
	}{alias: (*alias)(n)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	raw := strings.TrimSpace(string(aux.ID))
	switch {
	case raw == "" || raw == "null":
		n.ID = ""
	case strings.HasPrefix(raw, `"`):
		if err := json.Unmarshal(aux.ID, &n.ID); err != nil {
			return fmt.Errorf("invalid note id: %w", err)
		}
	default:
		var num json.Number
		if err := json.Unmarshal(aux.ID, &num); err != nil {
			return fmt.Errorf("invalid note id: %w", err)
		}
		n.ID = num.String()
	}
	return nil
}

// Title returns the subject, or a placeholder for untitled notes.
func (n Note) Title() string {
	if s := strings.TrimSpace(n.Subject); s != "" {
		return s
	}
	return "Diary Entry"
}

// Matches reports whether query occurs in the subject or content, ignoring case.
func (n Note) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(n.Content), q) ||
		strings.Contains(strings.ToLower(n.Subject), q)
}

// DefaultDiaryPath returns the diary file path from environment variable
// or defaults to ~/.ourlove/diary.jsonl.
func DefaultDiaryPath() string {
	envValue := os.Getenv(DiaryEnvVar)
	if envValue != "" {
		return filepath.Clean(envValue)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ourlove/diary.jsonl"
	}
	return filepath.Join(home, ".ourlove", "diary.jsonl")
}

// FormatNote formats a note as a line in the diary file.
func FormatNote(note Note) (string, error) {
	note.Date = note.Date.UTC()
	data, err := json.Marshal(note)
	if err != nil {
		return "", fmt.Errorf("failed to encode note: %w", err)
	}
	return string(data), nil
}

// ParseNote parses a single line from the diary file.
func ParseNote(raw string) (Note, error) {
	var note Note
	if err := json.Unmarshal([]byte(raw), &note); err != nil {
		return Note{}, fmt.Errorf("invalid note: %w", err)
	}
	if note.ID == "" {
		return Note{}, fmt.Errorf("note must have an id")
	}
	return note, nil
}

// ReadNotes reads all notes from the diary file, newest first.
// Skips empty lines, lines starting with # and malformed lines.
func ReadNotes(path string) ([]Note, error) {
	if path == "" {
		path = DefaultDiaryPath()
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Note{}, nil
		}
		return nil, fmt.Errorf("failed to read diary file: %w", err)
	}
	defer file.Close()

	notes := []Note{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		stripped := strings.TrimSpace(scanner.Text())
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}

		note, err := ParseNote(stripped)
		if err != nil {
			continue
		}
		notes = append(notes, note)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read diary file: %w", err)
	}

	return notes, nil
}

// WriteNotes replaces the diary file with notes.
// The file is written to a temporary sibling and renamed into place.
func WriteNotes(notes []Note, path string) error {
	if path == "" {
		path = DefaultDiaryPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create diary directory: %w", err)
	}

	var b strings.Builder
	for _, note := range notes {
		line, err := FormatNote(note)
		if err != nil {
			return err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(dir, ".diary-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write diary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write diary file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace diary file: %w", err)
	}
	return nil
}

// FindNote returns the index of the note with id, or -1.
func FindNote(notes []Note, id string) int {
	for i, note := range notes {
		if note.ID == id {
			return i
		}
	}
	return -1
}

// FilterNotes returns the notes matching query. An empty query matches all.
func FilterNotes(notes []Note, query string) []Note {
	query = strings.TrimSpace(query)
	if query == "" {
		return notes
	}
	filtered := []Note{}
	for _, note := range notes {
		if note.Matches(query) {
			filtered = append(filtered, note)
		}
	}
	return filtered
}
