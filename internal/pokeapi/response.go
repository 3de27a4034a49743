package pokeapi

import "pokesearch/internal/domain"

// pokemonResponse mirrors the subset of /pokemon/{name} the client reads
type pokemonResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Height  int    `json:"height"`
	Weight  int    `json:"weight"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault *string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Types []struct {
		Slot int      `json:"slot"`
		Type resource `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int      `json:"base_stat"`
		Stat     resource `json:"stat"`
	} `json:"stats"`
	Abilities []struct {
		Slot     int      `json:"slot"`
		IsHidden bool     `json:"is_hidden"`
		Ability  resource `json:"ability"`
	} `json:"abilities"`
}

// resource is the API's named-reference shape
type resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// toRecord maps the wire shape onto a domain record
func (p *pokemonResponse) toRecord(raw []byte) *domain.Record {
	rec := &domain.Record{
		ID:               p.ID,
		Name:             p.Name,
		SpriteURL:        deref(p.Sprites.FrontDefault),
		HeightDecimetres: p.Height,
		WeightHectograms: p.Weight,
		Types:            make([]domain.Category, 0, len(p.Types)),
		Stats:            make([]domain.Attribute, 0, len(p.Stats)),
		Abilities:        make([]domain.Trait, 0, len(p.Abilities)),
		Raw:              raw,
	}
	rec.ArtworkURL = selectArtwork(deref(p.Sprites.Other.OfficialArtwork.FrontDefault), rec.SpriteURL)

	for _, t := range p.Types {
		rec.Types = append(rec.Types, domain.Category{Slot: t.Slot, Name: t.Type.Name})
	}
	for _, s := range p.Stats {
		rec.Stats = append(rec.Stats, domain.Attribute{Name: s.Stat.Name, Value: s.BaseStat})
	}
	for _, a := range p.Abilities {
		rec.Abilities = append(rec.Abilities, domain.Trait{Slot: a.Slot, Name: a.Ability.Name, Hidden: a.IsHidden})
	}
	return rec
}

// selectArtwork prefers the official artwork and falls back to the sprite
func selectArtwork(official, sprite string) string {
	if official != "" {
		return official
	}
	return sprite
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
