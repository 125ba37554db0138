package handlers

import (
	"net/http"

	"saral-seva-backend/internal/models"
)

func (s *Server) createComplaintHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ComplaintCreate
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	complaint, err := s.complaintRepo.Create(r.Context(), &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "complaint registered",
		Data:    complaint,
	})
}

func (s *Server) getComplaintHandler(w http.ResponseWriter, r *http.Request) {
	complaint, err := s.complaintRepo.GetByRef(r.Context(), r.PathValue("ref"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: complaint})
}

func (s *Server) listComplaintsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid profile id")
		return
	}

	complaints, err := s.complaintRepo.ListByProfile(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: complaints})
}

type complaintStatusRequest struct {
	Status models.ComplaintStatus `json:"status"`
	Remark string                 `json:"remark,omitempty"`
}

func (s *Server) updateComplaintStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req complaintStatusRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if !req.Status.IsValid() {
		s.writeError(w, models.ErrInvalidStatus)
		return
	}

	complaint, err := s.complaintRepo.UpdateStatus(r.Context(), r.PathValue("ref"), req.Status, req.Remark)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "complaint status updated",
		Data:    complaint,
	})
}
