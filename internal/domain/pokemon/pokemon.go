package pokemon

// Pokemon is the projection returned to API callers. It is built once per
// lookup and never mutated afterwards.
type Pokemon struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Habitat     string `json:"habitat"`
	IsLegendary bool   `json:"isLegendary"`
}

// TranslationStrategy names the stylistic rewrite applied to a description.
type TranslationStrategy string

const (
	StrategyYoda        TranslationStrategy = "yoda"
	StrategyShakespeare TranslationStrategy = "shakespeare"
)
