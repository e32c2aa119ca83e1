package pokemon

import (
	"context"

	dom "pokedex/internal/domain/pokemon"
)

type Events interface {
	PokemonViewed(ctx context.Context, p *dom.Pokemon, translated bool, strategy string) error
}

// NoopEvents No-op implementation, useful for tests or when no broker is configured.
type NoopEvents struct{}

func (NoopEvents) PokemonViewed(ctx context.Context, p *dom.Pokemon, translated bool, strategy string) error {
	return nil
}
