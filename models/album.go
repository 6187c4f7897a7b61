package models

// ImageSize is one of the fixed artwork size classes served by Last.fm.
type ImageSize string

const (
	ImageSmall      ImageSize = "small"
	ImageMedium     ImageSize = "medium"
	ImageLarge      ImageSize = "large"
	ImageExtraLarge ImageSize = "extralarge"
	ImageMega       ImageSize = "mega"
)

// Valid reports whether the size class is one of the five known values.
func (s ImageSize) Valid() bool {
	switch s {
	case ImageSmall, ImageMedium, ImageLarge, ImageExtraLarge, ImageMega:
		return true
	}
	return false
}

// AlbumImage is a single artwork entry. URL is never empty after
// normalization.
type AlbumImage struct {
	URL  string    `json:"url"`
	Size ImageSize `json:"size"`
}

// Wiki holds the long-form album metadata when the upstream has it.
type Wiki struct {
	Published string `json:"published"`
	Summary   string `json:"summary"`
	Content   string `json:"content"`
}

// Album is the normalized album record. Optional numeric fields are nil
// when the upstream did not report a usable value, so zero stays
// distinguishable from unknown.
type Album struct {
	Name      string       `json:"name"`
	Artist    string       `json:"artist"`
	MBID      string       `json:"mbid,omitempty"`
	URL       string       `json:"url"`
	Images    []AlbumImage `json:"images"`
	Listeners *int         `json:"listeners,omitempty"`
	Playcount *int         `json:"playcount,omitempty"`
	Tracks    []Track      `json:"tracks,omitempty"`
	Wiki      *Wiki        `json:"wiki,omitempty"`
}

// ID returns a stable identifier: the MusicBrainz id when present,
// otherwise one derived from artist and name.
func (a Album) ID() string {
	if a.MBID != "" {
		return a.MBID
	}
	return a.Artist + "/" + a.Name
}
