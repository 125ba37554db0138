package handlers

import (
	"net/http"

	"saral-seva-backend/internal/models"
)

func (s *Server) createDocumentHandler(w http.ResponseWriter, r *http.Request) {
	var req models.DocumentCreate
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	document, err := s.documentRepo.Create(r.Context(), &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "document recorded",
		Data:    document,
	})
}

func (s *Server) getDocumentHandler(w http.ResponseWriter, r *http.Request) {
	document, err := s.documentRepo.GetByRef(r.Context(), r.PathValue("ref"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: document})
}

func (s *Server) listDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid profile id")
		return
	}

	documents, err := s.documentRepo.ListByProfile(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: documents})
}

type documentVerificationRequest struct {
	Status models.DocumentStatus `json:"status"`
	Remark string                `json:"remark,omitempty"`
}

func (s *Server) setDocumentVerificationHandler(w http.ResponseWriter, r *http.Request) {
	var req documentVerificationRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if !req.Status.IsValid() {
		s.writeError(w, models.ErrInvalidStatus)
		return
	}

	document, err := s.documentRepo.SetVerification(r.Context(), r.PathValue("ref"), req.Status, req.Remark)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "document verification updated",
		Data:    document,
	})
}
