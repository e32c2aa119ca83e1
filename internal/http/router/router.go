package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pokedex/internal/domain/common"
	"pokedex/internal/http/handlers/health"
	pokemonhandler "pokedex/internal/http/handlers/pokemon"
	"pokedex/internal/http/responses"
	"pokedex/internal/logging"
)

func NewRouter(
	logger logging.Logger,
	throttleLimit int,
	healthHandler *health.Handler,
	pokemonHandler *pokemonhandler.Handler,
) chi.Router {
	r := chi.NewRouter()

	useBaseMiddlewares(r, logger, throttleLimit)

	r.Get("/health", healthHandler.Check)

	r.Route("/v1/pokemon", func(r chi.Router) {
		r.Get("/translated/{name}", pokemonHandler.GetTranslated)
		r.Get("/{name}", pokemonHandler.Get)
	})

	// Unknown routes still answer with the canonical envelope.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		env := responses.MapError(common.NewNotFound("route"), r.URL.Path, middleware.GetReqID(r.Context()))
		responses.WriteErrorEnvelope(w, env)
	})

	return r
}
