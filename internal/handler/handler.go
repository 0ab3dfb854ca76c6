package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"green-basket/internal/auth"
	"green-basket/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code, error code
// and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Warn().Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeDomainError maps a service error to an HTTP response. Domain errors
// carry their own code; anything else is an internal error.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, statusForCode(domainErr.Code), domainErr.Code, domainErr.Message, logger)
		return
	}
	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
}

// statusForCode maps domain error codes to HTTP status codes.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeProductNotFound,
		model.ErrCodeLandmarkNotFound,
		model.ErrCodeOrderNotFound:
		return http.StatusNotFound
	case model.ErrCodeQuantityBelowMinimum,
		model.ErrCodeProductUnavailable,
		model.ErrCodeEmptyCart,
		model.ErrCodeMissingAddress,
		model.ErrCodeInvalidDeliveryMode,
		model.ErrCodeInvalidPrice,
		model.ErrCodeInvalidMinOrder,
		model.ErrCodeInvalidDeliveryFee,
		model.ErrCodeInvalidStatus,
		model.ErrCodeMissingName:
		return http.StatusBadRequest
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// requireUser resolves the authenticated identity or writes an Unauthorized
// response. User-scoped operations never proceed without an identity.
func requireUser(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (auth.Identity, bool) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "authentication required", logger)
		return auth.Identity{}, false
	}
	return id, true
}

// requireAdmin resolves an identity carrying the admin capability or writes
// an Unauthorized/Forbidden response.
func requireAdmin(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (auth.Identity, bool) {
	id, ok := requireUser(w, r, logger)
	if !ok {
		return auth.Identity{}, false
	}
	if !id.IsAdmin {
		writeError(w, http.StatusForbidden, model.ErrCodeForbidden, "admin privileges required", logger)
		return auth.Identity{}, false
	}
	return id, true
}
