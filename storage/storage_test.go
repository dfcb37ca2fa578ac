package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFormatAndParseRoundTrip(t *testing.T) {
	note := Note{
		ID:      "abc",
		Subject: "First date",
		Content: "Coffee, then a long walk.\nIt rained.",
		Date:    time.Date(2022, 11, 29, 22, 6, 0, 0, time.UTC),
	}

	raw, err := FormatNote(note)
	if err != nil {
		t.Fatalf("Failed to format note: %v", err)
	}
	if strings.Contains(raw, "\n") {
		t.Errorf("Formatted note must be a single line, got %q", raw)
	}

	parsed, err := ParseNote(raw)
	if err != nil {
		t.Fatalf("Failed to parse note: %v", err)
	}
	if parsed.ID != note.ID || parsed.Subject != note.Subject || parsed.Content != note.Content {
		t.Errorf("Round trip mismatch: got %+v, want %+v", parsed, note)
	}
	if !parsed.Date.Equal(note.Date) {
		t.Errorf("Date mismatch: got %v, want %v", parsed.Date, note.Date)
	}
}

func TestParseNoteRejectsMissingID(t *testing.T) {
	if _, err := ParseNote(`{"subject":"x"}`); err == nil {
		t.Error("Expected error for note without id")
	}
	if _, err := ParseNote(`not json`); err == nil {
		t.Error("Expected error for malformed line")
	}
}

func TestParseNoteNumericID(t *testing.T) {
	note, err := ParseNote(`{"id":1700000000000,"subject":"","content":"hi","date":"2023-11-14T22:13:20.000Z"}`)
	if err != nil {
		t.Fatalf("Failed to parse note: %v", err)
	}
	if note.ID != "1700000000000" {
		t.Errorf("Expected numeric id as string, got %q", note.ID)
	}
	if note.Title() != "Diary Entry" {
		t.Errorf("Expected placeholder title, got %q", note.Title())
	}
}

func TestReadNotesSkipsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diary.jsonl")
	content := strings.Join([]string{
		"# exported by hand",
		`{"id":"1","subject":"one","content":"","date":"2024-01-01T00:00:00Z"}`,
		"",
		"garbage",
		`{"id":"2","subject":"two","content":"","date":"2024-01-02T00:00:00Z"}`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	notes, err := ReadNotes(path)
	if err != nil {
		t.Fatalf("Failed to read notes: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("Expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != "1" || notes[1].ID != "2" {
		t.Errorf("Expected file order [1 2], got [%s %s]", notes[0].ID, notes[1].ID)
	}
}

func TestReadNotesMissingFile(t *testing.T) {
	notes, err := ReadNotes(filepath.Join(t.TempDir(), "missing.jsonl"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("Expected no notes, got %d", len(notes))
	}
}

func TestWriteNotesCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "diary.jsonl")
	notes := []Note{{ID: "1", Subject: "hello", Date: time.Now()}}

	if err := WriteNotes(notes, path); err != nil {
		t.Fatalf("Failed to write notes: %v", err)
	}
	read, err := ReadNotes(path)
	if err != nil {
		t.Fatalf("Failed to read notes: %v", err)
	}
	if len(read) != 1 || read[0].Subject != "hello" {
		t.Errorf("Unexpected notes after write: %+v", read)
	}
}

func TestDefaultDiaryPathFromEnv(t *testing.T) {
	t.Setenv(DiaryEnvVar, "/tmp/ourlove/../ourlove/diary.jsonl")
	if got := DefaultDiaryPath(); got != "/tmp/ourlove/diary.jsonl" {
		t.Errorf("Expected cleaned env path, got %q", got)
	}
}

func TestFindNote(t *testing.T) {
	notes := []Note{{ID: "a"}, {ID: "b"}}
	if idx := FindNote(notes, "b"); idx != 1 {
		t.Errorf("Expected index 1, got %d", idx)
	}
	if idx := FindNote(notes, "z"); idx != -1 {
		t.Errorf("Expected -1, got %d", idx)
	}
}

func TestFilterNotes(t *testing.T) {
	notes := []Note{
		{ID: "1", Subject: "Paris", Content: "Eiffel tower at night"},
		{ID: "2", Subject: "", Content: "Picnic in the PARK"},
		{ID: "3", Subject: "Movie night", Content: "popcorn"},
	}

	if got := FilterNotes(notes, "  "); len(got) != 3 {
		t.Errorf("Expected blank query to match all, got %d", len(got))
	}
	got := FilterNotes(notes, "par")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Errorf("Expected notes 1 and 2, got %+v", got)
	}
	got = FilterNotes(notes, "NIGHT")
	if len(got) != 2 {
		t.Errorf("Expected 2 matches for NIGHT, got %d", len(got))
	}
	if got := FilterNotes(notes, "zebra"); len(got) != 0 {
		t.Errorf("Expected no matches, got %d", len(got))
	}
}
