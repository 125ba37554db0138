package handlers

import (
	"net/http"

	"saral-seva-backend/internal/models"
)

func (s *Server) createNotificationHandler(w http.ResponseWriter, r *http.Request) {
	var req models.NotificationCreate
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	notification, err := s.notificationRepo.Create(r.Context(), &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "notification created",
		Data:    notification,
	})
}

func (s *Server) listNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid profile id")
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"

	notifications, err := s.notificationRepo.ListByProfile(r.Context(), id, unreadOnly)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: notifications})
}

func (s *Server) markNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.notificationRepo.MarkRead(r.Context(), r.PathValue("ref")); err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Message: "notification marked read"})
}
