package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// ExportFileName returns the download name for an export, e.g.
// diary-export-2024-01-15.json.
func ExportFileName(ext string, now time.Time) string {
	return fmt.Sprintf("diary-export-%s.%s", now.UTC().Format("2006-01-02"), ext)
}

// ExportJSON writes notes as an indented JSON array.
func ExportJSON(w io.Writer, notes []Note) error {
	if notes == nil {
		notes = []Note{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(notes); err != nil {
		return fmt.Errorf("failed to export notes: %w", err)
	}
	return nil
}

// ExportMarkdown writes one markdown section per note, dates shown in loc.
func ExportMarkdown(w io.Writer, notes []Note, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	for _, note := range notes {
		_, err := fmt.Fprintf(w, "# %s\n\n**Date:** %s\n\n%s\n\n---\n\n",
			note.Title(), DayKey(note.Date, loc), note.Content)
		if err != nil {
			return fmt.Errorf("failed to export notes: %w", err)
		}
	}
	return nil
}

// ImportJSON reads a JSON array of notes.
func ImportJSON(r io.Reader) ([]Note, error) {
	var notes []Note
	if err := json.NewDecoder(r).Decode(&notes); err != nil {
		return nil, fmt.Errorf("invalid JSON file: %w", err)
	}
	return notes, nil
}
