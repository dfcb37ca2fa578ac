package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"ourlove/lovetime"
	"ourlove/storage"
)

const dateLayout = "2006-01-02 15:04"

// FormatPercent formats a fraction as "42.0%".
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// ShortID abbreviates a note ID for listings.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ResolveNoteID finds the note whose ID equals ref or, failing that, the one
// note whose ID starts with ref.
func ResolveNoteID(notes []storage.Note, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("note ID is required")
	}
	if storage.FindNote(notes, ref) != -1 {
		return ref, nil
	}

	var matches []string
	for _, note := range notes {
		if strings.HasPrefix(note.ID, ref) {
			matches = append(matches, note.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", storage.ErrNoteNotFound, ref)
	case 1:
		return matches[0], nil
	}
	return "", fmt.Errorf("note ID %q is ambiguous (%d matches)", ref, len(matches))
}

// CommandCounter prints the breakdown at the given time, or now.
func CommandCounter(w io.Writer, calc *lovetime.Calculator, atTime string) error {
	now := calc.Current()
	when, err := lovetime.ParseWhen(atTime, now)
	if err != nil {
		return err
	}

	ref := calc.Reference()
	b := calc.At(when)

	fmt.Fprintf(w, "Together since %s\n", ref.Format(dateLayout))
	fmt.Fprintf(w, "%s (%s)\n", b, b.Since())

	if when.Before(ref) {
		fmt.Fprintln(w, "That moment is before the reference; nothing has elapsed yet.")
		return nil
	}

	_, next := lovetime.NextAnniversary(ref, when)
	fmt.Fprintf(w, "Next monthly anniversary: %s (%s of this month done)\n",
		next.Format(dateLayout), FormatPercent(lovetime.MonthProgress(ref, when)))
	_, yearly := lovetime.NextYearly(ref, when)
	fmt.Fprintf(w, "Next anniversary: %s (%s of this year done)\n",
		yearly.Format(dateLayout), FormatPercent(lovetime.YearProgress(ref, when)))
	return nil
}

// CommandWatch redraws the counter on every tick until ctx is done or,
// when limit is positive, after limit updates.
func CommandWatch(ctx context.Context, w io.Writer, ticker *lovetime.Ticker, limit int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates := make(chan lovetime.Breakdown)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return ticker.Run(gctx, func(b lovetime.Breakdown) {
			select {
			case updates <- b:
			case <-gctx.Done():
			}
		})
	})

	g.Go(func() error {
		shown := 0
		for {
			select {
			case b := <-updates:
				fmt.Fprintf(w, "\r%s ", b)
				shown++
				if limit > 0 && shown >= limit {
					cancel()
					return nil
				}
			case <-gctx.Done():
				return nil
			}
		}
	})

	err := g.Wait()
	fmt.Fprintln(w)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// CommandDiaryList prints notes, newest first, optionally filtered.
func CommandDiaryList(w io.Writer, diary *storage.Diary, query string, loc *time.Location) error {
	notes, err := diary.Search(query)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		if query != "" {
			fmt.Fprintf(w, "No notes matching %q.\n", query)
		} else {
			fmt.Fprintln(w, "No notes yet.")
		}
		return nil
	}

	for _, note := range notes {
		fmt.Fprintf(w, "%s  %s  %s\n", ShortID(note.ID), storage.FormatNoteDate(note.Date, loc), note.Title())
	}
	fmt.Fprintf(w, "%d note(s)\n", len(notes))
	return nil
}

// CommandDiaryShow prints one note in full.
func CommandDiaryShow(w io.Writer, diary *storage.Diary, ref string, loc *time.Location) error {
	id, err := resolve(diary, ref)
	if err != nil {
		return err
	}
	note, err := diary.Get(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n%s  (%s)\n\n%s\n", note.Title(), storage.FormatNoteDate(note.Date, loc), note.ID, note.Content)
	return nil
}

// CommandDiaryAdd stores a new note.
func CommandDiaryAdd(w io.Writer, diary *storage.Diary, subject, content string) error {
	note, err := diary.Create(subject, content)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Saved '%s' (%s).\n", note.Title(), ShortID(note.ID))
	return nil
}

// CommandDiaryEdit rewrites a note. Nil fields keep their stored value.
func CommandDiaryEdit(w io.Writer, diary *storage.Diary, ref string, subject, content *string) error {
	id, err := resolve(diary, ref)
	if err != nil {
		return err
	}
	note, err := diary.Get(id)
	if err != nil {
		return err
	}
	if subject == nil && content == nil {
		return fmt.Errorf("nothing to change: pass --subject and/or --content")
	}
	if subject != nil {
		note.Subject = *subject
	}
	if content != nil {
		note.Content = *content
	}

	updated, err := diary.Update(id, note.Subject, note.Content)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Updated '%s' (%s).\n", updated.Title(), ShortID(updated.ID))
	return nil
}

// CommandDiaryRemove deletes a note.
func CommandDiaryRemove(w io.Writer, diary *storage.Diary, ref string) error {
	id, err := resolve(diary, ref)
	if err != nil {
		return err
	}
	if err := diary.Delete(id); err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted %s.\n", ShortID(id))
	return nil
}

// CommandDiaryExport writes all notes as JSON or markdown to w.
func CommandDiaryExport(w io.Writer, diary *storage.Diary, format string, loc *time.Location) error {
	notes, err := diary.List()
	if err != nil {
		return err
	}
	switch format {
	case "", "json":
		return storage.ExportJSON(w, notes)
	case "markdown", "md":
		return storage.ExportMarkdown(w, notes, loc)
	}
	return fmt.Errorf("unsupported export format %q (use json or markdown)", format)
}

// CommandDiaryImport merges notes from a JSON export file.
func CommandDiaryImport(w io.Writer, diary *storage.Diary, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	notes, err := storage.ImportJSON(f)
	if err != nil {
		return err
	}
	added, replaced, err := diary.Import(notes)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Imported %d new note(s), replaced %d.\n", added, replaced)
	return nil
}

func resolve(diary *storage.Diary, ref string) (string, error) {
	notes, err := diary.List()
	if err != nil {
		return "", err
	}
	return ResolveNoteID(notes, ref)
}
