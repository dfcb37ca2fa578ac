package server

import (
	"net/http"
	"time"

	"ourlove/lovetime"
)

type loveResponse struct {
	lovetime.Breakdown
	Display         string  `json:"display"`
	Since           string  `json:"since"`
	Reference       string  `json:"reference"`
	Now             string  `json:"now"`
	NextAnniversary string  `json:"nextAnniversary"`
	MonthProgress   float64 `json:"monthProgress"`
	SiteName        string  `json:"siteName,omitempty"`
	PartnerName     string  `json:"partnerName,omitempty"`
	Tagline         string  `json:"tagline,omitempty"`
}

// handleLove reports how long it has been since the reference instant.
func (s *Server) handleLove(w http.ResponseWriter, r *http.Request) {
	ref := s.calc.Reference()
	now := s.calc.Current()

	b := s.calc.At(now)
	_, next := lovetime.NextAnniversary(ref, now)

	writeJSON(w, http.StatusOK, loveResponse{
		Breakdown:       b,
		Display:         b.String(),
		Since:           b.Since(),
		Reference:       ref.Format(time.RFC3339),
		Now:             now.Format(time.RFC3339),
		NextAnniversary: next.Format(time.RFC3339),
		MonthProgress:   lovetime.MonthProgress(ref, now),
		SiteName:        s.config.SiteName,
		PartnerName:     s.config.PartnerName,
		Tagline:         s.config.Tagline,
	})
}
