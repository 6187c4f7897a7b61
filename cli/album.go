package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crate-fm/crate/models"
	"github.com/crate-fm/crate/util/format"
)

var albumMBID string

var albumCmd = &cobra.Command{
	Use:   "album <artist> <album>",
	Short: "Show album details and track list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		album, err := client.AlbumInfo(cmd.Context(), args[0], args[1], albumMBID)
		if err != nil {
			return err
		}

		fmt.Printf("%s — %s\n", album.Artist, album.Name)
		if album.Listeners != nil || album.Playcount != nil {
			fmt.Printf("%s listeners, %s plays\n",
				format.PlayCount(album.Listeners), format.PlayCount(album.Playcount))
		}
		if url := format.AlbumImageURL(album.Images, models.ImageExtraLarge); url != "" {
			fmt.Println("Artwork:", url)
		}
		if album.Wiki != nil {
			if album.Wiki.Published != "" {
				fmt.Println("Published:", album.Wiki.Published)
			}
			if album.Wiki.Summary != "" {
				fmt.Println()
				fmt.Println(album.Wiki.Summary)
			}
		}
		if len(album.Tracks) > 0 {
			fmt.Println()
			printTracks(album.Tracks)
		}
		return nil
	},
}

func init() {
	albumCmd.Flags().StringVar(&albumMBID, "mbid", "", "MusicBrainz album id")
	rootCmd.AddCommand(albumCmd)
}
