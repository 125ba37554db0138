package handlers

import (
	"net/http"

	"saral-seva-backend/internal/models"
)

type askRequest struct {
	Question  string `json:"question"`
	Language  string `json:"language,omitempty"`
	ProfileID int64  `json:"profile_id,omitempty"`
}

// askHandler answers a free-text question about government schemes.
func (s *Server) askHandler(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	var profile *models.Profile
	if req.ProfileID != 0 {
		loaded, err := s.profileRepo.GetByID(r.Context(), req.ProfileID)
		if err != nil {
			s.writeError(w, err)
			return
		}
		profile = loaded
	}

	answer, err := s.qaService.Answer(r.Context(), req.Question, profile, req.Language)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: answer})
}

// refreshSchemesHandler forces the Q&A working set to reload from the
// database ahead of its TTL.
func (s *Server) refreshSchemesHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.qaService.RefreshSchemes(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Message: "scheme working set refreshed"})
}
