package handlers

import (
	"net/http"
	"strconv"

	"saral-seva-backend/internal/models"
)

func (s *Server) createEventHandler(w http.ResponseWriter, r *http.Request) {
	var req models.EventCreate
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	event, err := s.eventRepo.Create(r.Context(), &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "event created",
		Data:    event,
	})
}

func (s *Server) listEventsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(w, "invalid limit")
			return
		}
		limit = n
	}

	events, err := s.eventRepo.ListUpcoming(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: events})
}

func (s *Server) deactivateEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid event id")
		return
	}

	if err := s.eventRepo.Deactivate(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Message: "event deactivated"})
}
