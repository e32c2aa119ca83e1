package pokemon

import (
	"context"

	"pokedex/internal/clients/pokeapi"
	"pokedex/internal/domain/common"
	dom "pokedex/internal/domain/pokemon"
	"pokedex/internal/logging"
)

type Service interface {
	GetPokemon(ctx context.Context, name string) (*dom.Pokemon, error)
	GetTranslatedPokemon(ctx context.Context, name string) (*dom.Pokemon, error)
}

// SpeciesFetcher is implemented by clients/pokeapi.
type SpeciesFetcher interface {
	GetSpecies(ctx context.Context, name string) (pokeapi.Species, error)
}

// Translator is implemented by clients/funtranslations.
type Translator interface {
	Translate(ctx context.Context, text, strategy string) (string, error)
}

type service struct {
	species    SpeciesFetcher
	translator Translator
	language   string
	events     Events
	logger     logging.Logger
}

func NewService(
	species SpeciesFetcher,
	translator Translator,
	language string,
	events Events,
	logger logging.Logger,
) Service {
	return &service{
		species:    species,
		translator: translator,
		language:   language,
		events:     events,
		logger:     logger.With("component", "pokemon_service"),
	}
}

// lookup runs fetch -> extract -> normalize and assembles the display model.
// The only failure path of the whole pipeline is the species fetch.
func (s *service) lookup(ctx context.Context, name string) (*dom.Pokemon, error) {
	sp, err := s.species.GetSpecies(ctx, name)
	if err != nil {
		if !common.IsNotFound(err) {
			s.logger.Error("failed to fetch species", "name", name, "error", err)
		}
		return nil, err
	}

	habitat := "unknown"
	if sp.Habitat != nil {
		habitat = sp.Habitat.Name
	}

	return &dom.Pokemon{
		Name:        sp.Name,
		Description: Normalize(SelectDescription(sp.FlavorTextEntries, s.language)),
		Habitat:     habitat,
		IsLegendary: sp.IsLegendary,
	}, nil
}

func (s *service) GetPokemon(ctx context.Context, name string) (*dom.Pokemon, error) {
	p, err := s.lookup(ctx, name)
	if err != nil {
		return nil, err
	}

	s.publishViewed(ctx, p, false, "")
	return p, nil
}

// GetTranslatedPokemon substitutes the rewritten description when the
// translation service cooperates. Any translation failure is absorbed here:
// the caller always gets a Pokemon as long as the species fetch succeeded.
func (s *service) GetTranslatedPokemon(ctx context.Context, name string) (*dom.Pokemon, error) {
	p, err := s.lookup(ctx, name)
	if err != nil {
		return nil, err
	}

	strategy := SelectStrategy(p.Habitat, p.IsLegendary)

	translated, err := s.translator.Translate(ctx, p.Description, string(strategy))
	if err != nil {
		if common.IsRateLimited(err) {
			s.logger.Warn("translation rate limited, falling back to original description",
				"name", name, "strategy", strategy)
		} else {
			s.logger.Error("translation failed, falling back to original description",
				"name", name, "strategy", strategy, "error", err)
		}
	} else {
		p.Description = translated
	}

	s.publishViewed(ctx, p, err == nil, string(strategy))
	return p, nil
}

func (s *service) publishViewed(ctx context.Context, p *dom.Pokemon, translated bool, strategy string) {
	if err := s.events.PokemonViewed(ctx, p, translated, strategy); err != nil {
		s.logger.Error("failed to publish PokemonViewed event", "name", p.Name, "error", err)
	}
}
