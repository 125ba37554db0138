package handlers

import (
	"net/http"

	"saral-seva-backend/internal/models"
)

func (s *Server) createProfileHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ProfileCreate
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	profile, err := s.profileRepo.Create(r.Context(), &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "profile created",
		Data:    profile,
	})
}

func (s *Server) getProfileHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid profile id")
		return
	}

	profile, err := s.profileRepo.GetByID(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: profile})
}

func (s *Server) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid profile id")
		return
	}

	var req models.ProfileUpdate
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	profile, err := s.profileRepo.Update(r.Context(), id, &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "profile updated",
		Data:    profile,
	})
}

func (s *Server) deactivateProfileHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid profile id")
		return
	}

	if err := s.profileRepo.Deactivate(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Message: "profile deactivated"})
}
