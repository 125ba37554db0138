package handlers

import (
	"context"
	"net/http"
	"strconv"

	"saral-seva-backend/internal/models"
	"saral-seva-backend/internal/services/recommend"
)

func (s *Server) createSchemeHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SchemeCreate
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	scheme, err := s.schemeRepo.Create(r.Context(), &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "scheme created",
		Data:    scheme,
	})
}

func (s *Server) getSchemeHandler(w http.ResponseWriter, r *http.Request) {
	scheme, err := s.schemeRepo.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: scheme})
}

func (s *Server) listSchemesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	category := q.Get("category")
	level := models.SchemeLevel(q.Get("level"))
	if level != "" && !level.IsValid() {
		badRequest(w, "invalid scheme level")
		return
	}

	schemes, err := s.schemeRepo.ListActive(r.Context(), category, level)
	if err != nil {
		s.writeError(w, err)
		return
	}

	summaries := make([]models.SchemeSummary, 0, len(schemes))
	for _, scheme := range schemes {
		summaries = append(summaries, scheme.ToSummary())
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: summaries})
}

func (s *Server) updateSchemeHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SchemeUpdate
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	scheme, err := s.schemeRepo.Update(r.Context(), r.PathValue("slug"), &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "scheme updated",
		Data:    scheme,
	})
}

func (s *Server) deactivateSchemeHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.schemeRepo.Deactivate(r.Context(), r.PathValue("slug")); err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Message: "scheme deactivated"})
}

func (s *Server) recordViewHandler(w http.ResponseWriter, r *http.Request) {
	s.recordCounter(w, r, s.schemeRepo.RecordView, "view recorded")
}

func (s *Server) recordApplicationHandler(w http.ResponseWriter, r *http.Request) {
	s.recordCounter(w, r, s.schemeRepo.RecordApplication, "application recorded")
}

func (s *Server) recordBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	s.recordCounter(w, r, s.schemeRepo.RecordBookmark, "bookmark recorded")
}

func (s *Server) recordCounter(w http.ResponseWriter, r *http.Request, record func(ctx context.Context, slug string) error, message string) {
	if err := record(r.Context(), r.PathValue("slug")); err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Message: message})
}

// recommendedSchemesHandler ranks active schemes for a citizen. The profile
// may be referenced by id or described with query parameters alone.
func (s *Server) recommendedSchemesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	level := models.SchemeLevel(q.Get("level"))
	if level != "" && !level.IsValid() {
		badRequest(w, "invalid scheme level")
		return
	}

	order := recommend.SortTrending
	switch q.Get("sort") {
	case "", string(recommend.SortTrending):
	case string(recommend.SortPopular):
		order = recommend.SortPopular
	default:
		badRequest(w, "invalid sort order")
		return
	}

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(w, "invalid limit")
			return
		}
		limit = n
	}

	profile := &models.Profile{State: q.Get("state")}
	if raw := q.Get("profile_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequest(w, "invalid profile_id")
			return
		}
		loaded, err := s.profileRepo.GetByID(r.Context(), id)
		if err != nil {
			s.writeError(w, err)
			return
		}
		profile = loaded
	}

	filters := recommend.Filters{Category: q.Get("category"), Level: level, Limit: limit}
	schemes, err := s.recommender.FindForProfile(r.Context(), profile, filters, order)
	if err != nil {
		s.writeError(w, err)
		return
	}

	summaries := make([]models.SchemeSummary, 0, len(schemes))
	for _, scheme := range schemes {
		summaries = append(summaries, scheme.ToSummary())
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: summaries})
}
