package domain

// Record represents one creature as returned by the reference API
type Record struct {
	ID               int
	Name             string
	ArtworkURL       string // official artwork, may be empty
	SpriteURL        string // default sprite, used when ArtworkURL is empty
	HeightDecimetres int
	WeightHectograms int
	Types            []Category
	Stats            []Attribute
	Abilities        []Trait
	Raw              []byte // response body as received
}

// Category is a classification tag (a "type") in slot order
type Category struct {
	Slot int
	Name string
}

// Attribute is a named base stat
type Attribute struct {
	Name  string
	Value int
}

// Trait is a named ability in slot order
type Trait struct {
	Slot   int
	Name   string
	Hidden bool
}

// DisplayArtwork returns the preferred image URL, falling back to the sprite
func (r *Record) DisplayArtwork() string {
	if r == nil {
		return ""
	}
	if r.ArtworkURL != "" {
		return r.ArtworkURL
	}
	return r.SpriteURL
}

// HeightMetres returns the height formatted in metres
func (r *Record) HeightMetres() string {
	return FormatDeciunits(r.HeightDecimetres)
}

// WeightKilograms returns the weight formatted in kilograms
func (r *Record) WeightKilograms() string {
	return FormatDeciunits(r.WeightHectograms)
}
