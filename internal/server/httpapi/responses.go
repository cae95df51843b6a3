package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/invtrack/internal/logging"
)

// MessageResponse is the body of every error and of plain acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by signup and login.
type TokenResponse struct {
	Token string `json:"token"`
}

// CreatedResponse is returned by the add endpoint.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// DataResponse wraps listing and lookup results.
type DataResponse struct {
	Data any `json:"data"`
}

// HealthResponse is returned by /healthz and /readyz.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// respondJSON encodes payload before writing the status line, so an encoding
// failure can still become a 500.
func (h *Handler) respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		logging.FromContext(r.Context(), h.logger).Error(r.Context(), "failed to encode response", "error", err)
		status = http.StatusInternalServerError
		buf.Reset()
		buf.WriteString(`{"message":"` + MsgInternal + `"}` + "\n")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logging.FromContext(r.Context(), h.logger).Warn(r.Context(), "failed to write response", "error", err)
	}
}

func (h *Handler) respondMessage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.respondJSON(w, r, status, MessageResponse{Message: msg})
}

// respondInternal logs err with the request logger and sends a generic 500.
func (h *Handler) respondInternal(w http.ResponseWriter, r *http.Request, msg string, err error) {
	args := []any{"error", err}
	if userID, ok := userIDFromContext(r.Context()); ok {
		args = append(args, "user_id", userID)
	}
	logging.FromContext(r.Context(), h.logger).Error(r.Context(), "request failed", args...)
	h.respondMessage(w, r, http.StatusInternalServerError, msg)
}
