package models

// TrackArtist is the artist reference carried on a track. Only the name is
// guaranteed; search endpoints frequently deliver the artist as a bare
// string with no id or URL.
type TrackArtist struct {
	Name string `json:"name"`
	MBID string `json:"mbid,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Track is the normalized track record.
type Track struct {
	Name       string       `json:"name"`
	Artist     TrackArtist  `json:"artist"`
	Duration   *int         `json:"duration,omitempty"` // seconds
	Listeners  *int         `json:"listeners,omitempty"`
	Playcount  *int         `json:"playcount,omitempty"`
	URL        string       `json:"url"`
	Streamable bool         `json:"streamable"`
	Images     []AlbumImage `json:"images,omitempty"`
	Rank       *int         `json:"rank,omitempty"` // chart position, 1-based
}

// TrackInfo is the detail payload from track.getInfo. Album provenance is
// optional; singles come back without one.
type TrackInfo struct {
	Name        string `json:"name"`
	Artist      string `json:"artist"`
	AlbumName   string `json:"albumName,omitempty"`
	AlbumArtist string `json:"albumArtist,omitempty"`
	Playcount   *int   `json:"playcount,omitempty"`
	Listeners   *int   `json:"listeners,omitempty"`
}
