package models

// UnknownAlbum is the album-name sentinel used when a favorite is added
// from a track search rather than an album page.
const UnknownAlbum = "Unknown Album"

// TrackKey identifies a track by artist and title. It is a struct rather
// than a concatenated string so that names containing separators cannot
// collide with other pairings.
type TrackKey struct {
	Artist string
	Track  string
}

// String is the display form only; never use it for identity.
func (k TrackKey) String() string {
	return k.Artist + "-" + k.Track
}

// FavoriteTrack is a track pinned by the user, with the album provenance it
// was added from. AddedAt is epoch milliseconds set by the favorites store
// at insertion time.
type FavoriteTrack struct {
	Name        string       `json:"name"`
	Artist      TrackArtist  `json:"artist"`
	Duration    *int         `json:"duration,omitempty"`
	URL         string       `json:"url"`
	AlbumName   string       `json:"albumName"`
	AlbumArtist string       `json:"albumArtist"`
	Images      []AlbumImage `json:"images,omitempty"`
	AddedAt     int64        `json:"addedAt"`
}

// Key returns the identity of the favorite.
func (f FavoriteTrack) Key() TrackKey {
	return TrackKey{Artist: f.Artist.Name, Track: f.Name}
}

// FavoriteFromTrack builds a favorite from a search-context track, where no
// album is known. The album name falls back to the UnknownAlbum sentinel
// and the album artist to the track's own artist.
func FavoriteFromTrack(t Track) FavoriteTrack {
	return FavoriteTrack{
		Name:        t.Name,
		Artist:      t.Artist,
		Duration:    t.Duration,
		URL:         t.URL,
		AlbumName:   UnknownAlbum,
		AlbumArtist: t.Artist.Name,
		Images:      t.Images,
	}
}

// FavoriteFromAlbumTrack builds a favorite from a track listed on an album
// page, carrying the album's provenance.
func FavoriteFromAlbumTrack(t Track, albumName, albumArtist string) FavoriteTrack {
	f := FavoriteFromTrack(t)
	if albumName != "" {
		f.AlbumName = albumName
	}
	if albumArtist != "" {
		f.AlbumArtist = albumArtist
	}
	return f
}
