package health

import (
	"net/http"

	"pokedex/internal/http/responses"
)

type Handler struct {
	pokeAPIBaseURL         string
	funTranslationsBaseURL string
}

func NewHandler(pokeAPIBaseURL, funTranslationsBaseURL string) *Handler {
	return &Handler{
		pokeAPIBaseURL:         pokeAPIBaseURL,
		funTranslationsBaseURL: funTranslationsBaseURL,
	}
}

// Check is a simple health endpoint reporting the configured upstreams.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	responses.WriteJSON(w, http.StatusOK, map[string]string{
		"status":          "ok",
		"pokeapi":         h.pokeAPIBaseURL,
		"funtranslations": h.funTranslationsBaseURL,
	})
}
