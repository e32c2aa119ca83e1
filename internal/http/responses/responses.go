package responses

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pokedex/internal/domain/common"
)

// ErrorEnvelope is the single error shape every failed request returns,
// whatever went wrong underneath.
type ErrorEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error,omitempty"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	TraceID    string `json:"traceId"`
}

// MapError converts any pipeline failure into the canonical envelope.
// Internal detail never leaks into the message; callers are expected to have
// logged it server-side already.
func MapError(err error, path, traceID string) ErrorEnvelope {
	env := ErrorEnvelope{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Path:      path,
		TraceID:   traceID,
	}

	var vErr common.ValidationError
	switch {
	case common.IsNotFound(err):
		env.StatusCode = http.StatusNotFound
		env.Message = err.Error()
		env.Error = "Not Found"
	case errors.As(err, &vErr):
		env.StatusCode = http.StatusBadRequest
		env.Message = vErr.Join()
		env.Error = "Bad Request"
	case common.IsUpstreamUnavailable(err):
		env.StatusCode = http.StatusInternalServerError
		env.Message = "Failed to fetch Pokemon information"
		env.Error = "Internal Server Error"
	default:
		env.StatusCode = http.StatusInternalServerError
		env.Message = "Internal server error"
		env.Error = "Internal Server Error"
	}

	return env
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// WriteRawJSON writes pre-serialized JSON, e.g. a cached response body.
func WriteRawJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func WriteErrorEnvelope(w http.ResponseWriter, env ErrorEnvelope) {
	WriteJSON(w, env.StatusCode, env)
}
