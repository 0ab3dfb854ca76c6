package handler

import (
	"encoding/json"
	"net/http"

	"green-basket/internal/model"
	"green-basket/internal/service"

	"github.com/rs/zerolog"
)

// LandmarkHandler handles landmark-related HTTP requests.
type LandmarkHandler struct {
	service service.LandmarkService
	logger  zerolog.Logger
}

// NewLandmarkHandler creates a new landmark handler.
func NewLandmarkHandler(service service.LandmarkService, logger zerolog.Logger) *LandmarkHandler {
	return &LandmarkHandler{
		service: service,
		logger:  logger.With().Str("handler", "landmark").Logger(),
	}
}

// GetAll handles GET /api/landmarks requests.
func (h *LandmarkHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	landmarks, err := h.service.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if landmarks == nil {
		landmarks = []model.Landmark{}
	}

	writeJSON(w, http.StatusOK, landmarks)
}

// Create handles POST /api/landmarks requests. Admin only.
func (h *LandmarkHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r, h.logger); !ok {
		return
	}

	var req model.LandmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	landmark, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, landmark)
}
