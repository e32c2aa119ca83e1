package responses

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"pokedex/internal/domain/common"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			"not found",
			common.NewNotFound("pokemon 'missingno'"),
			http.StatusNotFound,
			"pokemon 'missingno' not found",
		},
		{
			"validation messages joined",
			common.ValidationError{Messages: []string{"name too long", "name contains invalid characters"}},
			http.StatusBadRequest,
			"name too long, name contains invalid characters",
		},
		{
			"validation without messages",
			common.ValidationError{},
			http.StatusBadRequest,
			"Unknown error",
		},
		{
			"species upstream failure",
			common.UpstreamUnavailableError{Service: "pokeapi", Status: 503, Detail: "secret internals"},
			http.StatusInternalServerError,
			"Failed to fetch Pokemon information",
		},
		{
			"unclassified failure",
			errors.New("secret internals"),
			http.StatusInternalServerError,
			"Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := MapError(tt.err, "/v1/pokemon/missingno", "trace-123")

			if env.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", env.StatusCode, tt.wantStatus)
			}
			if env.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", env.Message, tt.wantMessage)
			}
			if env.Path != "/v1/pokemon/missingno" {
				t.Errorf("Path = %q", env.Path)
			}
			if env.TraceID != "trace-123" {
				t.Errorf("TraceID = %q", env.TraceID)
			}
			if _, err := time.Parse(time.RFC3339Nano, env.Timestamp); err != nil {
				t.Errorf("Timestamp %q is not ISO-8601: %v", env.Timestamp, err)
			}
		})
	}
}

// Internal detail must stay server-side, whatever the failure carried.
func TestMapErrorNeverLeaksDetail(t *testing.T) {
	errs := []error{
		common.UpstreamUnavailableError{Service: "pokeapi", Status: 500, Detail: "stack trace here"},
		errors.New("stack trace here"),
	}
	for _, err := range errs {
		env := MapError(err, "/v1/pokemon/x", "t")
		if strings.Contains(env.Message, "stack trace here") {
			t.Errorf("envelope leaked internal detail: %q", env.Message)
		}
	}
}
