package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/crate-fm/crate/models"
	"github.com/crate-fm/crate/util/format"
)

var favCmd = &cobra.Command{
	Use:   "fav",
	Short: "Manage the local favorites list",
}

var favAddCmd = &cobra.Command{
	Use:   "add <artist> <track>",
	Short: "Pin a track",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		artist, track := args[0], args[1]

		fav := models.FavoriteTrack{
			Name:        track,
			Artist:      models.TrackArtist{Name: artist},
			AlbumName:   models.UnknownAlbum,
			AlbumArtist: artist,
		}

		// Enrich with album provenance when the upstream knows the track.
		if info, err := client.TrackInfo(cmd.Context(), artist, track); err == nil {
			if info.AlbumName != "" {
				fav.AlbumName = info.AlbumName
			}
			if info.AlbumArtist != "" {
				fav.AlbumArtist = info.AlbumArtist
			}
		}

		if err := favStore.Add(fav); err != nil {
			return err
		}
		fmt.Printf("Pinned %s — %s\n", artist, track)
		return nil
	},
}

var favRemoveCmd = &cobra.Command{
	Use:     "rm <artist> <track>",
	Aliases: []string{"remove"},
	Short:   "Unpin a track",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := models.TrackKey{Artist: args[0], Track: args[1]}
		if err := favStore.Remove(key); err != nil {
			return err
		}
		fmt.Printf("Unpinned %s\n", key)
		return nil
	},
}

var favListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List pinned tracks",
	RunE: func(cmd *cobra.Command, args []string) error {
		favs := favStore.List()
		if len(favs) == 0 {
			fmt.Println("No favorites yet.")
			return nil
		}
		for i, f := range favs {
			added := time.UnixMilli(f.AddedAt).Format("2006-01-02")
			line := fmt.Sprintf("%3d. %s — %s (%s)", i+1, f.Artist.Name, f.Name, f.AlbumName)
			if f.Duration != nil {
				line += "  " + format.Duration(f.Duration)
			}
			line += "  added " + added
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	favCmd.AddCommand(favAddCmd)
	favCmd.AddCommand(favRemoveCmd)
	favCmd.AddCommand(favListCmd)
	rootCmd.AddCommand(favCmd)
}
