package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"ev-catalog-api/internal/model"
)

// Requests slower than this are logged at warn level.
const slowRequestThreshold = time.Second

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.ErrorResponse{Success: false, Message: message})
}

// logRequest records operation name, latency and caller for every completed
// request; extra key-value pairs describe the outcome.
func logRequest(r *http.Request, operation string, start time.Time, kv ...any) {
	duration := time.Since(start)
	kv = append([]any{
		"operation", operation,
		"duration", duration.String(),
		"ip", r.RemoteAddr,
	}, kv...)

	if duration > slowRequestThreshold {
		slog.Warn("slow request", kv...)
		return
	}
	slog.Info("request completed", kv...)
}

// logFailure records a store or query failure with its internal detail;
// the response body only ever carries a generic message.
func logFailure(r *http.Request, operation string, start time.Time, err error) {
	slog.Error("request failed",
		"operation", operation,
		"duration", time.Since(start).String(),
		"ip", r.RemoteAddr,
		"error", err.Error(),
	)
}
