package response

import (
	"encoding/json"
	"net/http"
	"time"
)

// TimestampLayout is RFC 3339 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Envelope is the shape of every API response. Error is nil exactly when OK is true.
type Envelope struct {
	OK        bool              `json:"ok"`
	Data      any               `json:"data"`
	Error     *string           `json:"error"`
	Details   map[string]string `json:"details,omitempty"`
	Timestamp string            `json:"timestamp"`
}

// Build wraps data or an error message. A non-empty errMsg discards data.
func Build(data any, errMsg string, now time.Time) Envelope {
	env := Envelope{
		OK:        errMsg == "",
		Data:      data,
		Timestamp: now.UTC().Format(TimestampLayout),
	}
	if errMsg != "" {
		env.Data = nil
		env.Error = &errMsg
	}
	return env
}

func writeJSON(w http.ResponseWriter, statusCode int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		msg := "Failed to encode response"
		fallback := Envelope{
			OK:        false,
			Error:     &msg,
			Timestamp: payload.Timestamp,
		}
		_ = json.NewEncoder(w).Encode(fallback)
	}
}

// Success responses
func Success(w http.ResponseWriter, now time.Time, data any) {
	writeJSON(w, http.StatusOK, Build(data, "", now))
}

func Created(w http.ResponseWriter, now time.Time, data any) {
	writeJSON(w, http.StatusCreated, Build(data, "", now))
}

// Error responses
func Error(w http.ResponseWriter, now time.Time, statusCode int, message string) {
	writeJSON(w, statusCode, Build(nil, message, now))
}

func BadRequest(w http.ResponseWriter, now time.Time, message string) {
	Error(w, now, http.StatusBadRequest, message)
}

func ValidationError(w http.ResponseWriter, now time.Time, details map[string]string) {
	env := Build(nil, "Validation failed", now)
	env.Details = details
	writeJSON(w, http.StatusUnprocessableEntity, env)
}

func Unauthorized(w http.ResponseWriter, now time.Time, message string) {
	Error(w, now, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter, now time.Time, message string) {
	Error(w, now, http.StatusForbidden, message)
}

func NotFound(w http.ResponseWriter, now time.Time, message string) {
	Error(w, now, http.StatusNotFound, message)
}

func InternalServerError(w http.ResponseWriter, now time.Time, message string) {
	Error(w, now, http.StatusInternalServerError, message)
}
