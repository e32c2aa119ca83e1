package apidocs

// HealthResponse is the shape of /health success.
type HealthResponse struct {
	Status          string `json:"status" example:"ok"`
	PokeAPI         string `json:"pokeapi" example:"https://pokeapi.co/api/v2/pokemon-species"`
	FunTranslations string `json:"funtranslations" example:"https://api.funtranslations.com/translate"`
}

// PokemonResponse represents a species lookup result.
type PokemonResponse struct {
	Name        string `json:"name" example:"mewtwo"`
	Description string `json:"description" example:"Created by a scientist, it was."`
	Habitat     string `json:"habitat" example:"rare"`
	IsLegendary bool   `json:"isLegendary" example:"true"`
}

// ErrorEnvelope matches the error writer.
type ErrorEnvelope struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"pokemon 'missingno' not found"`
	Error      string `json:"error,omitempty" example:"Not Found"`
	Timestamp  string `json:"timestamp" example:"2026-02-01T12:00:00.000Z"`
	Path       string `json:"path" example:"/v1/pokemon/missingno"`
	TraceID    string `json:"traceId" example:"a1b2c3d4-e5f6-7890-1234-567890abcdef"`
}
