package handlers

import (
	"net/http"

	"saral-seva-backend/internal/models"
	"saral-seva-backend/internal/services/eligibility"
)

type eligibilityCheckRequest struct {
	SchemeSlug string          `json:"scheme_slug"`
	ProfileID  int64           `json:"profile_id,omitempty"`
	Profile    *models.Profile `json:"profile,omitempty"`
}

type eligibilityCheckResponse struct {
	Scheme   models.SchemeSummary `json:"scheme"`
	Eligible bool                 `json:"eligible"`
	Result   models.MatchResult   `json:"result"`
}

// eligibilityCheckHandler scores a citizen against one scheme's rules. The
// citizen may be a stored profile or an ad-hoc profile in the request body.
func (s *Server) eligibilityCheckHandler(w http.ResponseWriter, r *http.Request) {
	var req eligibilityCheckRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.SchemeSlug == "" {
		badRequest(w, "scheme_slug is required")
		return
	}
	if req.ProfileID == 0 && req.Profile == nil {
		badRequest(w, "profile_id or profile is required")
		return
	}

	scheme, err := s.schemeRepo.GetBySlug(r.Context(), req.SchemeSlug)
	if err != nil {
		s.writeError(w, err)
		return
	}

	profile := req.Profile
	if req.ProfileID != 0 {
		profile, err = s.profileRepo.GetByID(r.Context(), req.ProfileID)
		if err != nil {
			s.writeError(w, err)
			return
		}
	}

	result := eligibility.Evaluate(profile, scheme.Eligibility)

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data: eligibilityCheckResponse{
			Scheme:   scheme.ToSummary(),
			Eligible: result.Eligible(),
			Result:   result,
		},
	})
}
