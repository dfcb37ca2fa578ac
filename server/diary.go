package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"ourlove/storage"
)

type noteRequest struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

type notesResponse struct {
	Success bool           `json:"success"`
	Data    []storage.Note `json:"data"`
	Count   int            `json:"count"`
}

type noteResponse struct {
	Success bool         `json:"success"`
	Data    storage.Note `json:"data"`
}

type importResponse struct {
	Success  bool `json:"success"`
	Added    int  `json:"added"`
	Replaced int  `json:"replaced"`
}

func (s *Server) handleDiaryList(w http.ResponseWriter, r *http.Request) {
	notes, err := s.diary.Search(r.URL.Query().Get("q"))
	if err != nil {
		s.diaryFailure(w, err, "Failed to read diary")
		return
	}
	if notes == nil {
		notes = []storage.Note{}
	}
	writeJSON(w, http.StatusOK, notesResponse{Success: true, Data: notes, Count: len(notes)})
}

func (s *Server) handleDiaryGet(w http.ResponseWriter, r *http.Request) {
	note, err := s.diary.Get(r.PathValue("id"))
	if err != nil {
		s.diaryFailure(w, err, "Failed to read diary")
		return
	}
	writeJSON(w, http.StatusOK, noteResponse{Success: true, Data: note})
}

func (s *Server) handleDiaryCreate(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := s.diary.Create(req.Subject, req.Content)
	if err != nil {
		s.diaryFailure(w, err, "Failed to save note")
		return
	}
	s.logger.Info("note created", zap.String("id", note.ID))
	writeJSON(w, http.StatusCreated, noteResponse{Success: true, Data: note})
}

func (s *Server) handleDiaryUpdate(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := s.diary.Update(r.PathValue("id"), req.Subject, req.Content)
	if err != nil {
		s.diaryFailure(w, err, "Failed to save note")
		return
	}
	s.logger.Info("note updated", zap.String("id", note.ID))
	writeJSON(w, http.StatusOK, noteResponse{Success: true, Data: note})
}

func (s *Server) handleDiaryDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.diary.Delete(id); err != nil {
		s.diaryFailure(w, err, "Failed to delete note")
		return
	}
	s.logger.Info("note deleted", zap.String("id", id))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDiaryExport(w http.ResponseWriter, r *http.Request) {
	notes, err := s.diary.List()
	if err != nil {
		s.diaryFailure(w, err, "Failed to read diary")
		return
	}

	var (
		buf         bytes.Buffer
		ext         string
		contentType string
	)
	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		ext, contentType = "json", "application/json"
		err = storage.ExportJSON(&buf, notes)
	case "markdown", "md":
		ext, contentType = "md", "text/markdown; charset=utf-8"
		err = storage.ExportMarkdown(&buf, notes, s.calc.Reference().Location())
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unsupported export format %q", format))
		return
	}
	if err != nil {
		s.diaryFailure(w, err, "Failed to export diary")
		return
	}

	name := storage.ExportFileName(ext, s.now())
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (s *Server) handleDiaryImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	notes, err := storage.ImportJSON(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	added, replaced, err := s.diary.Import(notes)
	if err != nil {
		s.diaryFailure(w, err, "Failed to import diary")
		return
	}
	s.logger.Info("diary imported", zap.Int("added", added), zap.Int("replaced", replaced))
	writeJSON(w, http.StatusOK, importResponse{Success: true, Added: added, Replaced: replaced})
}

// diaryFailure maps storage errors onto HTTP statuses.
func (s *Server) diaryFailure(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, storage.ErrNoteNotFound):
		writeError(w, http.StatusNotFound, "Note not found")
	case errors.Is(err, storage.ErrEmptyNote):
		writeError(w, http.StatusBadRequest, "Note needs a subject or content")
	default:
		s.logger.Error(fallback, zap.Error(err))
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
