package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"ourlove/youtube"
)

type searchResponse struct {
	Success        bool            `json:"success"`
	Data           []youtube.Video `json:"data"`
	TotalResults   int             `json:"totalResults"`
	ResultsPerPage int             `json:"resultsPerPage,omitempty"`
	Source         string          `json:"source,omitempty"`
	Note           string          `json:"note,omitempty"`
}

type videoResponse struct {
	Success bool          `json:"success"`
	Data    youtube.Video `json:"data"`
}

func intParam(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return n
}

func (s *Server) handleYouTubeSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := youtube.SearchParams{
		Query:      q.Get("q"),
		MaxResults: intParam(r, "maxResults"),
		Type:       q.Get("type"),
	}
	if strings.TrimSpace(params.Query) == "" {
		writeError(w, http.StatusBadRequest, "Search query is required")
		return
	}

	result, err := s.youtube.SearchWithFallback(r.Context(), params)
	if err != nil {
		s.logger.Error("youtube search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to search YouTube videos")
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Success:        true,
		Data:           nonNilVideos(result.Items),
		TotalResults:   result.TotalResults,
		ResultsPerPage: result.ResultsPerPage,
		Source:         result.Source,
		Note:           result.Note,
	})
}

func (s *Server) handleYouTubeVideo(w http.ResponseWriter, r *http.Request) {
	video, err := s.youtube.Video(r.Context(), r.PathValue("videoId"))
	if err != nil {
		status, msg := youtubeErrorStatus(err, "Failed to get video details")
		s.logger.Warn("youtube video details failed", zap.Error(err), zap.Int("status", status))
		writeError(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, videoResponse{Success: true, Data: video})
}

func (s *Server) handleYouTubeTrending(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	region := q.Get("regionCode")
	if region == "" {
		region = s.config.RegionCode
	}

	result, err := s.youtube.Trending(r.Context(), youtube.TrendingParams{
		MaxResults: intParam(r, "maxResults"),
		CategoryID: q.Get("categoryId"),
		RegionCode: region,
	})
	if err != nil {
		status, msg := youtubeErrorStatus(err, "Failed to get trending videos")
		s.logger.Warn("youtube trending failed", zap.Error(err), zap.Int("status", status))
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Success:      true,
		Data:         nonNilVideos(result.Items),
		TotalResults: result.TotalResults,
	})
}

// youtubeErrorStatus maps client errors onto HTTP statuses and messages.
func youtubeErrorStatus(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, youtube.ErrMissingID):
		return http.StatusBadRequest, "Video ID is required"
	case errors.Is(err, youtube.ErrNoAPIKey):
		return http.StatusServiceUnavailable, "YouTube API key not configured"
	case errors.Is(err, youtube.ErrQuotaExceeded):
		return http.StatusForbidden, "YouTube API quota exceeded or invalid API key"
	case errors.Is(err, youtube.ErrNotFound):
		return http.StatusNotFound, "Video not found"
	}
	return http.StatusInternalServerError, fallback
}

func nonNilVideos(v []youtube.Video) []youtube.Video {
	if v == nil {
		return []youtube.Video{}
	}
	return v
}
