package pokemon

import dom "pokedex/internal/domain/pokemon"

const caveHabitat = "cave"

// SelectStrategy picks the rewrite style for a species. Legendary and
// cave-dwelling species speak Yoda; everything else speaks Shakespeare.
// Both conditions independently force Yoda.
func SelectStrategy(habitat string, isLegendary bool) dom.TranslationStrategy {
	if isLegendary || habitat == caveHabitat {
		return dom.StrategyYoda
	}
	return dom.StrategyShakespeare
}
