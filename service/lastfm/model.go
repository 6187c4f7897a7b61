package lastfm

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Structs to represent the raw Last.fm API response shapes. The API is
// inconsistent: numbers arrive as strings or numbers, artists as strings
// or objects, nested lists as a single object or an array. Every
// unmarshaler here is total over those shapes; a value that fits none of
// them decodes to absent instead of failing the entity.

// flexInt is a non-negative integer that Last.fm serves either as a JSON
// number or as a numeric string. Missing or unparsable values decode to
// absent so downstream display can tell "zero" from "unknown".
type flexInt struct {
	value int
	ok    bool
}

func (f *flexInt) UnmarshalJSON(b []byte) error {
	f.value, f.ok = 0, false

	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var quoted string
		if err := json.Unmarshal(b, &quoted); err != nil {
			return nil
		}
		s = strings.TrimSpace(quoted)
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil
	}
	f.value, f.ok = n, true
	return nil
}

// Ptr returns the value as an optional, nil when absent.
func (f flexInt) Ptr() *int {
	if !f.ok {
		return nil
	}
	v := f.value
	return &v
}

// oneOrMany decodes a field that holds either a single object or an array
// of them. Anything else decodes to nil.
func oneOrMany[T any](b []byte) []T {
	if len(b) == 0 {
		return nil
	}
	var many []T
	if err := json.Unmarshal(b, &many); err == nil {
		return many
	}
	var one T
	if err := json.Unmarshal(b, &one); err == nil {
		return []T{one}
	}
	return nil
}

// Image is an artwork entry; Text carries the URL.
type Image struct {
	Size string `json:"size"`
	Text string `json:"#text"`
}

// TrackArtist may arrive as a bare string (track.search) or a structured
// object (chart and artist endpoints). A bare string becomes a name-only
// reference.
type TrackArtist struct {
	Name string `json:"name"`
	MBID string `json:"mbid"`
	URL  string `json:"url"`
}

func (a *TrackArtist) UnmarshalJSON(b []byte) error {
	*a = TrackArtist{}

	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		a.Name = name
		return nil
	}

	type plain TrackArtist
	var obj plain
	if err := json.Unmarshal(b, &obj); err == nil {
		*a = TrackArtist(obj)
	}
	return nil
}

// Streamable arrives as "0"/"1" on some endpoints and as
// {"#text","fulltrack"} on others.
type Streamable struct {
	FullTrack bool
}

func (s *Streamable) UnmarshalJSON(b []byte) error {
	s.FullTrack = false

	var flag string
	if err := json.Unmarshal(b, &flag); err == nil {
		s.FullTrack = flag == "1"
		return nil
	}

	var obj struct {
		FullTrack string `json:"fulltrack"`
	}
	if err := json.Unmarshal(b, &obj); err == nil {
		s.FullTrack = obj.FullTrack == "1"
	}
	return nil
}

// Track is the raw per-track entity shared by search, chart and album
// payloads.
type Track struct {
	Name       string      `json:"name"`
	Artist     TrackArtist `json:"artist"`
	Duration   flexInt     `json:"duration"`
	Listeners  flexInt     `json:"listeners"`
	Playcount  flexInt     `json:"playcount"`
	URL        string      `json:"url"`
	Streamable Streamable  `json:"streamable"`
	Image      []Image     `json:"image"`
	Attr       struct {
		Rank flexInt `json:"rank"`
	} `json:"@attr"`
}

// TrackList is the nested track container on an album: absent, a single
// object, or an array.
type TrackList struct {
	Tracks []Track
}

func (l *TrackList) UnmarshalJSON(b []byte) error {
	l.Tracks = nil

	var wrapper struct {
		Track json.RawMessage `json:"track"`
	}
	if err := json.Unmarshal(b, &wrapper); err != nil {
		return nil
	}
	l.Tracks = oneOrMany[Track](wrapper.Track)
	return nil
}

// Wiki is the long-form album metadata block.
type Wiki struct {
	Published string `json:"published"`
	Summary   string `json:"summary"`
	Content   string `json:"content"`
}

// AlbumArtist may be a bare string (album.search, album.getinfo) or an
// object (artist.gettopalbums).
type AlbumArtist struct {
	Name string `json:"name"`
}

func (a *AlbumArtist) UnmarshalJSON(b []byte) error {
	a.Name = ""

	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		a.Name = name
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err == nil {
		a.Name = obj.Name
	}
	return nil
}

// Album is the raw per-album entity.
type Album struct {
	Name      string      `json:"name"`
	Artist    AlbumArtist `json:"artist"`
	MBID      string      `json:"mbid"`
	URL       string      `json:"url"`
	Image     []Image     `json:"image"`
	Listeners flexInt     `json:"listeners"`
	Playcount flexInt     `json:"playcount"`
	Tracks    *TrackList  `json:"tracks"`
	Wiki      *Wiki       `json:"wiki"`
}

// PageAttr is the "@attr" pagination block on chart and artist endpoints.
// All four numbers arrive as strings.
type PageAttr struct {
	Page       flexInt `json:"page"`
	PerPage    flexInt `json:"perPage"`
	TotalPages flexInt `json:"totalPages"`
	Total      flexInt `json:"total"`
}

// errorEnvelope is the upstream error payload, delivered with HTTP 200.
type errorEnvelope struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
}

type albumSearchResponse struct {
	Results struct {
		TotalResults flexInt `json:"opensearch:totalResults"`
		AlbumMatches struct {
			Album []Album `json:"album"`
		} `json:"albummatches"`
	} `json:"results"`
}

type trackSearchResponse struct {
	Results struct {
		TotalResults flexInt `json:"opensearch:totalResults"`
		TrackMatches struct {
			// A single-result search returns the track as a bare object.
			Track json.RawMessage `json:"track"`
		} `json:"trackmatches"`
	} `json:"results"`
}

// albumInfoResponse: album.getinfo returns the album at the root, but some
// envelopes nest it under "results". Callers must check both.
type albumInfoResponse struct {
	Album   *Album `json:"album"`
	Results struct {
		Album *Album `json:"album"`
	} `json:"results"`
}

type topAlbumsResponse struct {
	TopAlbums struct {
		Album []Album  `json:"album"`
		Attr  PageAttr `json:"@attr"`
	} `json:"topalbums"`
}

type topTracksResponse struct {
	TopTracks struct {
		Track []Track  `json:"track"`
		Attr  PageAttr `json:"@attr"`
	} `json:"toptracks"`
}

type chartTracksResponse struct {
	Tracks struct {
		Track []Track  `json:"track"`
		Attr  PageAttr `json:"@attr"`
	} `json:"tracks"`
}

type trackInfoResponse struct {
	Track struct {
		Name   string `json:"name"`
		Artist struct {
			Name string `json:"name"`
		} `json:"artist"`
		Album *struct {
			Title  string `json:"title"`
			Artist string `json:"artist"`
		} `json:"album"`
		Playcount flexInt `json:"playcount"`
		Listeners flexInt `json:"listeners"`
	} `json:"track"`
}
