// Package handlers provides the HTTP handlers for the Saral Seva backend.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"saral-seva-backend/internal/config"
	"saral-seva-backend/internal/models"
	"saral-seva-backend/internal/services/database"
	"saral-seva-backend/internal/services/qa"
	"saral-seva-backend/internal/services/recommend"
	"saral-seva-backend/internal/utils"
)

// Response represents a standard API response.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Server holds all handler dependencies.
type Server struct {
	db               *database.DB
	schemeRepo       *database.SchemeRepository
	profileRepo      *database.ProfileRepository
	complaintRepo    *database.ComplaintRepository
	documentRepo     *database.DocumentRepository
	eventRepo        *database.EventRepository
	notificationRepo *database.NotificationRepository
	recommender      *recommend.Service
	qaService        *qa.Service
	config           *config.Config
	logger           *zap.Logger
}

// NewServer wires the handler dependencies.
func NewServer(db *database.DB, cfg *config.Config, recommender *recommend.Service, qaService *qa.Service) *Server {
	return &Server{
		db:               db,
		schemeRepo:       database.NewSchemeRepository(db),
		profileRepo:      database.NewProfileRepository(db),
		complaintRepo:    database.NewComplaintRepository(db),
		documentRepo:     database.NewDocumentRepository(db),
		eventRepo:        database.NewEventRepository(db),
		notificationRepo: database.NewNotificationRepository(db),
		recommender:      recommender,
		qaService:        qaService,
		config:           cfg,
		logger:           utils.GetLogger(),
	}
}

// Routes registers every endpoint on the mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /api/health", s.healthHandler)

	// Schemes
	mux.HandleFunc("GET /api/schemes", s.listSchemesHandler)
	mux.HandleFunc("POST /api/schemes", s.createSchemeHandler)
	mux.HandleFunc("GET /api/schemes/recommended", s.recommendedSchemesHandler)
	mux.HandleFunc("GET /api/schemes/{slug}", s.getSchemeHandler)
	mux.HandleFunc("PUT /api/schemes/{slug}", s.updateSchemeHandler)
	mux.HandleFunc("DELETE /api/schemes/{slug}", s.deactivateSchemeHandler)
	mux.HandleFunc("POST /api/schemes/{slug}/view", s.recordViewHandler)
	mux.HandleFunc("POST /api/schemes/{slug}/apply", s.recordApplicationHandler)
	mux.HandleFunc("POST /api/schemes/{slug}/bookmark", s.recordBookmarkHandler)

	// Eligibility and Q&A
	mux.HandleFunc("POST /api/eligibility/check", s.eligibilityCheckHandler)
	mux.HandleFunc("POST /api/ask", s.askHandler)
	mux.HandleFunc("POST /api/ask/refresh", s.refreshSchemesHandler)

	// Profiles
	mux.HandleFunc("POST /api/profiles", s.createProfileHandler)
	mux.HandleFunc("GET /api/profiles/{id}", s.getProfileHandler)
	mux.HandleFunc("PUT /api/profiles/{id}", s.updateProfileHandler)
	mux.HandleFunc("DELETE /api/profiles/{id}", s.deactivateProfileHandler)

	// Complaints
	mux.HandleFunc("POST /api/complaints", s.createComplaintHandler)
	mux.HandleFunc("GET /api/complaints/{ref}", s.getComplaintHandler)
	mux.HandleFunc("PUT /api/complaints/{ref}/status", s.updateComplaintStatusHandler)
	mux.HandleFunc("GET /api/profiles/{id}/complaints", s.listComplaintsHandler)

	// Documents
	mux.HandleFunc("POST /api/documents", s.createDocumentHandler)
	mux.HandleFunc("GET /api/documents/{ref}", s.getDocumentHandler)
	mux.HandleFunc("PUT /api/documents/{ref}/verification", s.setDocumentVerificationHandler)
	mux.HandleFunc("GET /api/profiles/{id}/documents", s.listDocumentsHandler)

	// Events
	mux.HandleFunc("POST /api/events", s.createEventHandler)
	mux.HandleFunc("GET /api/events", s.listEventsHandler)
	mux.HandleFunc("DELETE /api/events/{id}", s.deactivateEventHandler)

	// Notifications
	mux.HandleFunc("POST /api/notifications", s.createNotificationHandler)
	mux.HandleFunc("GET /api/profiles/{id}/notifications", s.listNotificationsHandler)
	mux.HandleFunc("POST /api/notifications/{ref}/read", s.markNotificationReadHandler)
}

// writeJSON encodes a response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps domain errors to HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrSlugExists):
		status = http.StatusConflict
	case errors.Is(err, models.ErrInvalidCategory),
		errors.Is(err, models.ErrInvalidLevel),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidIncome),
		errors.Is(err, models.ErrInvalidEmail),
		errors.Is(err, models.ErrEmptyName),
		errors.Is(err, models.ErrEmptyQuestion),
		errors.Is(err, models.ErrQuestionTooShort),
		errors.Is(err, models.ErrQuestionTooLong),
		errors.Is(err, models.ErrSlugImmutable):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
		writeJSON(w, status, Response{Success: false, Error: "internal error"})
		return
	}

	writeJSON(w, status, Response{Success: false, Error: err.Error()})
}

// decodeBody parses a JSON request body into dst.
func decodeBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, Response{Success: false, Error: message})
}
