package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/hrm8/hrm8-backend/internal/logger"
	"go.uber.org/zap"
)

// envelope is the response shape every endpoint uses. Callers check
// success before trusting data; error carries the user-facing message.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: data}); err != nil {
		logger.Log.Error("failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: false, Error: message}); err != nil {
		logger.Log.Error("failed to encode error response", zap.Error(err))
	}
}
