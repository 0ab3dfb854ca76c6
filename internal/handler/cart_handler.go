package handler

import (
	"encoding/json"
	"net/http"

	"green-basket/internal/model"
	"green-basket/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CartHandler handles cart-related HTTP requests. All cart operations are
// scoped to the authenticated user.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := requireUser(w, r, h.logger)
	if !ok {
		return
	}

	cart, err := h.service.Get(r.Context(), id.UserID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if cart.Lines == nil {
		cart.Lines = []model.CartLine{}
	}

	writeJSON(w, http.StatusOK, cart)
}

// AddLine handles POST /api/cart/items requests.
func (h *CartHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	id, ok := requireUser(w, r, h.logger)
	if !ok {
		return
	}

	var req model.CartLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.AddLine(r.Context(), id.UserID, req.ProductID, req.Quantity); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetQuantity handles PUT /api/cart/items/{productId} requests.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := requireUser(w, r, h.logger)
	if !ok {
		return
	}

	productID, err := uuid.Parse(r.PathValue("productId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid product ID format", h.logger)
		return
	}

	var req model.CartLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.SetQuantity(r.Context(), id.UserID, productID, req.Quantity); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveLine handles DELETE /api/cart/items/{productId} requests.
func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	id, ok := requireUser(w, r, h.logger)
	if !ok {
		return
	}

	productID, err := uuid.Parse(r.PathValue("productId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid product ID format", h.logger)
		return
	}

	if err := h.service.RemoveLine(r.Context(), id.UserID, productID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	id, ok := requireUser(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.service.Clear(r.Context(), id.UserID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
