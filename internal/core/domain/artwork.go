package domain

// Defaults applied when no source field yields a value.
const (
	// UntitledTitle is the title of an artwork without any title field.
	UntitledTitle = "Untitled"

	// UnknownPeriod is the time period of an artwork without a timespan label.
	UnknownPeriod = "Unknown Period"

	// UnknownArtist is the sole creator of an artwork without agent or creator fields.
	UnknownArtist = "Unknown Artist"

	// UnknownProvider is the provider of an artwork without a data provider.
	UnknownProvider = "Unknown Provider"
)

// Artwork is the canonical representation of one displayable artwork.
// Title, TimePeriod and Provider are never empty and Creators always has
// at least one element.
type Artwork struct {
	// ID is carried through unchanged from the raw record.
	ID string `json:"id" yaml:"id"`

	// Title is the resolved title.
	Title string `json:"title" yaml:"title"`

	// TimePeriod is the resolved timespan label.
	TimePeriod string `json:"timePeriod" yaml:"timePeriod"`

	// Creators lists every contributor in source order.
	Creators []string `json:"creators" yaml:"creators"`

	// ImageURL is the first image reference of the record.
	ImageURL string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`

	// Provider is the institution that supplied the record.
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`
}

// HasCreator reports whether name is one of the artwork's creators.
func (a *Artwork) HasCreator(name string) bool {
	for _, c := range a.Creators {
		if c == name {
			return true
		}
	}
	return false
}
