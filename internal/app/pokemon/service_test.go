package pokemon

import (
	"context"
	"errors"
	"testing"

	"pokedex/internal/clients/pokeapi"
	"pokedex/internal/domain/common"
	dom "pokedex/internal/domain/pokemon"
	"pokedex/internal/logging"
)

type fakeFetcher struct {
	species pokeapi.Species
	err     error
}

func (f *fakeFetcher) GetSpecies(ctx context.Context, name string) (pokeapi.Species, error) {
	return f.species, f.err
}

type fakeTranslator struct {
	out      string
	err      error
	calls    int
	gotText  string
	gotStyle string
}

func (f *fakeTranslator) Translate(ctx context.Context, text, strategy string) (string, error) {
	f.calls++
	f.gotText = text
	f.gotStyle = strategy
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

type recordingEvents struct {
	viewed     int
	translated bool
	strategy   string
}

func (r *recordingEvents) PokemonViewed(ctx context.Context, p *dom.Pokemon, translated bool, strategy string) error {
	r.viewed++
	r.translated = translated
	r.strategy = strategy
	return nil
}

func mewtwoSpecies() pokeapi.Species {
	return pokeapi.Species{
		Name: "mewtwo",
		FlavorTextEntries: []pokeapi.FlavorTextEntry{
			{FlavorText: "It was created\nby a scientist.", Language: pokeapi.Language{Name: "en"}},
		},
		Habitat:     &pokeapi.Habitat{Name: "rare"},
		IsLegendary: true,
	}
}

func newTestService(fetcher *fakeFetcher, translator *fakeTranslator, events Events) Service {
	if events == nil {
		events = NoopEvents{}
	}
	return NewService(fetcher, translator, "en", events, logging.NewNop())
}

func TestGetPokemon(t *testing.T) {
	svc := newTestService(&fakeFetcher{species: mewtwoSpecies()}, &fakeTranslator{}, nil)

	p, err := svc.GetPokemon(context.Background(), "mewtwo")
	if err != nil {
		t.Fatalf("GetPokemon() error = %v", err)
	}
	if p.Name != "mewtwo" || p.Habitat != "rare" || !p.IsLegendary {
		t.Errorf("unexpected model: %+v", p)
	}
	if p.Description != "It was created by a scientist." {
		t.Errorf("Description = %q, want normalized flavor text", p.Description)
	}
}

func TestGetPokemonDefaults(t *testing.T) {
	svc := newTestService(&fakeFetcher{species: pokeapi.Species{
		Name: "ditto",
		FlavorTextEntries: []pokeapi.FlavorTextEntry{
			{FlavorText: "Metamorf!", Language: pokeapi.Language{Name: "fr"}},
		},
	}}, &fakeTranslator{}, nil)

	p, err := svc.GetPokemon(context.Background(), "ditto")
	if err != nil {
		t.Fatalf("GetPokemon() error = %v", err)
	}
	if p.Habitat != "unknown" {
		t.Errorf("Habitat = %q, want %q for nil upstream habitat", p.Habitat, "unknown")
	}
	if p.Description != "No description available." {
		t.Errorf("Description = %q, want placeholder when no english entry", p.Description)
	}
}

func TestGetPokemonFetchFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not found", common.NewNotFound("pokemon 'missingno'")},
		{"upstream unavailable", common.UpstreamUnavailableError{Service: "pokeapi", Status: 503, Detail: "boom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakeFetcher{err: tt.err}, &fakeTranslator{}, nil)

			if _, err := svc.GetPokemon(context.Background(), "missingno"); !errors.Is(err, tt.err) {
				t.Errorf("GetPokemon() error = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestGetTranslatedPokemon(t *testing.T) {
	translator := &fakeTranslator{out: "Created by a scientist, it was."}
	events := &recordingEvents{}
	svc := newTestService(&fakeFetcher{species: mewtwoSpecies()}, translator, events)

	p, err := svc.GetTranslatedPokemon(context.Background(), "mewtwo")
	if err != nil {
		t.Fatalf("GetTranslatedPokemon() error = %v", err)
	}
	if p.Description != "Created by a scientist, it was." {
		t.Errorf("Description = %q, want translated text", p.Description)
	}
	if translator.gotStyle != "yoda" {
		t.Errorf("strategy = %q, want yoda for legendary species", translator.gotStyle)
	}
	if translator.gotText != "It was created by a scientist." {
		t.Errorf("translator received %q, want the normalized description", translator.gotText)
	}
	if events.viewed != 1 || !events.translated || events.strategy != "yoda" {
		t.Errorf("events = %+v, want one translated yoda view", events)
	}
}

// Translation failure must never fail the request, whatever the failure class.
func TestGetTranslatedPokemonFallback(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"rate limited", common.RateLimitedError{Service: "funtranslations"}},
		{"upstream error", common.UpstreamError{Service: "funtranslations", Status: 500, Detail: "boom"}},
		{"unclassified", errors.New("connection reset by peer")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := &recordingEvents{}
			svc := newTestService(&fakeFetcher{species: mewtwoSpecies()}, &fakeTranslator{err: tt.err}, events)

			p, err := svc.GetTranslatedPokemon(context.Background(), "mewtwo")
			if err != nil {
				t.Fatalf("GetTranslatedPokemon() error = %v, want fallback success", err)
			}
			if p.Description != "It was created by a scientist." {
				t.Errorf("Description = %q, want the original normalized description", p.Description)
			}
			if events.translated {
				t.Error("event reported translated=true on fallback")
			}
		})
	}
}

func TestGetTranslatedPokemonFetchFailure(t *testing.T) {
	fetchErr := common.NewNotFound("pokemon 'missingno'")
	translator := &fakeTranslator{}
	svc := newTestService(&fakeFetcher{err: fetchErr}, translator, nil)

	if _, err := svc.GetTranslatedPokemon(context.Background(), "missingno"); !errors.Is(err, fetchErr) {
		t.Errorf("GetTranslatedPokemon() error = %v, want %v", err, fetchErr)
	}
	if translator.calls != 0 {
		t.Errorf("translator called %d times after fetch failure, want 0", translator.calls)
	}
}
