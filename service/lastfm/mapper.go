package lastfm

import (
	"github.com/crate-fm/crate/models"
)

// Mapping from raw API entities to domain records. Nothing here can fail:
// malformed fields degrade to absent, a missing name stays an empty string.
// Error classification happens one layer up, at the transport.

func toImages(images []Image) []models.AlbumImage {
	out := make([]models.AlbumImage, 0, len(images))
	for _, img := range images {
		if img.Text == "" {
			continue
		}
		size := models.ImageSize(img.Size)
		if img.Size == "" {
			size = models.ImageMedium
		}
		if !size.Valid() {
			continue
		}
		out = append(out, models.AlbumImage{URL: img.Text, Size: size})
	}
	return out
}

func toTrackArtist(artist TrackArtist) models.TrackArtist {
	return models.TrackArtist{
		Name: artist.Name,
		MBID: artist.MBID,
		URL:  artist.URL,
	}
}

func toTrack(dto Track) models.Track {
	return models.Track{
		Name:       dto.Name,
		Artist:     toTrackArtist(dto.Artist),
		Duration:   dto.Duration.Ptr(),
		Listeners:  dto.Listeners.Ptr(),
		Playcount:  dto.Playcount.Ptr(),
		URL:        dto.URL,
		Streamable: dto.Streamable.FullTrack,
		Images:     toImages(dto.Image),
		Rank:       dto.Attr.Rank.Ptr(),
	}
}

func toTracks(dtos []Track) []models.Track {
	tracks := make([]models.Track, 0, len(dtos))
	for _, dto := range dtos {
		tracks = append(tracks, toTrack(dto))
	}
	return tracks
}

func toAlbum(dto Album) models.Album {
	album := models.Album{
		Name:      dto.Name,
		Artist:    dto.Artist.Name,
		MBID:      dto.MBID,
		URL:       dto.URL,
		Images:    toImages(dto.Image),
		Listeners: dto.Listeners.Ptr(),
		Playcount: dto.Playcount.Ptr(),
	}
	if dto.Tracks != nil {
		album.Tracks = toTracks(dto.Tracks.Tracks)
	}
	if dto.Wiki != nil {
		album.Wiki = &models.Wiki{
			Published: dto.Wiki.Published,
			Summary:   dto.Wiki.Summary,
			Content:   dto.Wiki.Content,
		}
	}
	return album
}

func toAlbums(dtos []Album) []models.Album {
	albums := make([]models.Album, 0, len(dtos))
	for _, dto := range dtos {
		albums = append(albums, toAlbum(dto))
	}
	return albums
}
