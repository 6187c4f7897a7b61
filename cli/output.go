package cli

import (
	"fmt"

	"github.com/crate-fm/crate/models"
	"github.com/crate-fm/crate/util/format"
)

func printAlbums(albums []models.Album) {
	for i, album := range albums {
		line := fmt.Sprintf("%3d. %s — %s", i+1, album.Artist, album.Name)
		if album.Playcount != nil {
			line += fmt.Sprintf("  [%s plays]", format.PlayCount(album.Playcount))
		}
		fmt.Println(line)
	}
}

func printTracks(tracks []models.Track) {
	for i, track := range tracks {
		n := i + 1
		if track.Rank != nil {
			n = *track.Rank
		}
		line := fmt.Sprintf("%3d. %s — %s", n, track.Artist.Name, track.Name)
		if track.Duration != nil {
			line += "  " + format.Duration(track.Duration)
		}
		if track.Playcount != nil {
			line += fmt.Sprintf("  [%s plays]", format.PlayCount(track.Playcount))
		}
		if favStore.IsFavorite(models.TrackKey{Artist: track.Artist.Name, Track: track.Name}) {
			line += "  ★"
		}
		fmt.Println(line)
	}
}
