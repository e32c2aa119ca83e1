package pokemon

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	apppokemon "pokedex/internal/app/pokemon"
	"pokedex/internal/cache"
	dom "pokedex/internal/domain/pokemon"
	"pokedex/internal/http/responses"
	"pokedex/internal/logging"
)

type Handler struct {
	service apppokemon.Service
	cache   cache.ResponseCache
	logger  logging.Logger
}

func NewHandler(service apppokemon.Service, responseCache cache.ResponseCache, logger logging.Logger) *Handler {
	return &Handler{
		service: service,
		cache:   responseCache,
		logger:  logger.With("component", "pokemon_http_handler"),
	}
}

// Get GET /v1/pokemon/{name}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "/v1/pokemon/", h.service.GetPokemon)
}

// GetTranslated GET /v1/pokemon/translated/{name}
func (h *Handler) GetTranslated(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "/v1/pokemon/translated/", h.service.GetTranslatedPokemon)
}

func (h *Handler) serve(
	w http.ResponseWriter,
	r *http.Request,
	keyPrefix string,
	lookup func(ctx context.Context, name string) (*dom.Pokemon, error),
) {
	ctx := r.Context()

	name := chi.URLParam(r, "name")
	if err := validateName(name); err != nil {
		h.writeError(w, r, err)
		return
	}

	// The cache key is the normalized request path, so differently cased
	// requests for the same species share one entry.
	key := keyPrefix + strings.ToLower(name)

	data, err := h.cache.GetOrCompute(ctx, key, func(ctx context.Context) ([]byte, error) {
		p, err := lookup(ctx, name)
		if err != nil {
			return nil, err
		}
		return json.Marshal(p)
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	responses.WriteRawJSON(w, http.StatusOK, data)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	env := responses.MapError(err, r.URL.Path, traceID(r))
	if env.StatusCode == http.StatusInternalServerError {
		h.logger.Error("request failed",
			"path", r.URL.Path,
			"trace_id", env.TraceID,
			"error", err,
		)
	}
	responses.WriteErrorEnvelope(w, env)
}

// traceID prefers the middleware-assigned request id; a request that somehow
// arrived without one still gets a fresh id in its envelope.
func traceID(r *http.Request) string {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return id
	}
	return uuid.NewString()
}
