package pokeapi

// Wire types for the species endpoint. Only the fields we consume are
// declared; the real response carries many more.

type Language struct {
	Name string `json:"name"`
}

type FlavorTextEntry struct {
	FlavorText string   `json:"flavor_text"`
	Language   Language `json:"language"`
}

type Habitat struct {
	Name string `json:"name"`
}

type Species struct {
	Name              string            `json:"name"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
	Habitat           *Habitat          `json:"habitat"`
	IsLegendary       bool              `json:"is_legendary"`
}
