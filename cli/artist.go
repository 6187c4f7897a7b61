package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crate-fm/crate/util/albumsort"
)

var (
	artistPages int
	artistSort  string
)

var artistCmd = &cobra.Command{
	Use:   "artist",
	Short: "Browse an artist's catalog",
}

var artistAlbumsCmd = &cobra.Command{
	Use:   "albums <name>",
	Short: "List an artist's top albums",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		coll := artistAlbums.Get(args[0])
		if err := loadPages(cmd, coll, artistPages); err != nil {
			return err
		}

		albums := coll.Items()
		if len(albums) == 0 {
			fmt.Println("No albums found.")
			return nil
		}
		printAlbums(albumsort.Sort(albums, albumsort.Mode(artistSort)))
		printMore(coll.HasNextPage(), coll.Total(), len(albums))
		return nil
	},
}

var artistTracksCmd = &cobra.Command{
	Use:   "tracks <name>",
	Short: "List an artist's top tracks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := client.ArtistTopTracks(cmd.Context(), args[0], 0, 1)
		if err != nil {
			return err
		}
		if len(page.Items) == 0 {
			fmt.Println("No tracks found.")
			return nil
		}
		printTracks(page.Items)
		printMore(page.HasNextPage, page.Total, len(page.Items))
		return nil
	},
}

func init() {
	artistAlbumsCmd.Flags().IntVar(&artistPages, "pages", 1, "number of result pages to load")
	artistAlbumsCmd.Flags().StringVar(&artistSort, "sort", "", "sort order: name_asc, name_desc, year_asc, year_desc")
	artistCmd.AddCommand(artistAlbumsCmd)
	artistCmd.AddCommand(artistTracksCmd)
	rootCmd.AddCommand(artistCmd)
}
