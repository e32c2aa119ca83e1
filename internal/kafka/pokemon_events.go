package kafka

import (
	"context"
	"fmt"

	apppokemon "pokedex/internal/app/pokemon"
	"pokedex/internal/config"
	dom "pokedex/internal/domain/pokemon"
	"pokedex/internal/logging"
)

const PokemonViewedType = "PokemonViewed"

type pokemonEvents struct {
	bus         Bus
	topicPrefix string
	logger      logging.Logger
}

func NewPokemonEvents(bus Bus, cfg config.KafkaConfig, logger logging.Logger) apppokemon.Events {
	return &pokemonEvents{
		bus:         bus,
		topicPrefix: cfg.TopicPrefix,
		logger:      logger.With("component", "pokemon_events"),
	}
}

func (e *pokemonEvents) topic() string {
	return e.topicPrefix + "lookups"
}

func (e *pokemonEvents) PokemonViewed(ctx context.Context, p *dom.Pokemon, translated bool, strategy string) error {
	payload := struct {
		Name        string `json:"name"`
		Habitat     string `json:"habitat"`
		IsLegendary bool   `json:"isLegendary"`
		Translated  bool   `json:"translated"`
		Strategy    string `json:"strategy,omitempty"`
	}{
		Name:        p.Name,
		Habitat:     p.Habitat,
		IsLegendary: p.IsLegendary,
		Translated:  translated,
		Strategy:    strategy,
	}

	if err := e.bus.Publish(ctx, e.topic(), PokemonViewedType, payload); err != nil {
		return fmt.Errorf("publish PokemonViewed: %w", err)
	}
	return nil
}
