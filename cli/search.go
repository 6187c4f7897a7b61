package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crate-fm/crate/service/pager"
)

var searchPages int

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the catalog",
}

var searchAlbumsCmd = &cobra.Command{
	Use:   "albums <query>",
	Short: "Search for albums",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		coll := albumSearches.Get(query)
		if err := loadPages(cmd, coll, searchPages); err != nil {
			return err
		}

		albums := coll.Items()
		if len(albums) == 0 {
			fmt.Println("No albums found.")
			return nil
		}
		printAlbums(albums)
		printMore(coll.HasNextPage(), coll.Total(), len(albums))
		return nil
	},
}

var searchTracksCmd = &cobra.Command{
	Use:   "tracks <query>",
	Short: "Search for tracks",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		coll := trackSearches.Get(query)
		if err := loadPages(cmd, coll, searchPages); err != nil {
			return err
		}

		tracks := coll.Items()
		if len(tracks) == 0 {
			fmt.Println("No tracks found.")
			return nil
		}
		printTracks(tracks)
		printMore(coll.HasNextPage(), coll.Total(), len(tracks))
		return nil
	},
}

// loadPages walks a collection forward through its prefetcher: the late
// zone is the authoritative load for each batch the user asked for, and a
// final early-zone pass warms the next page for the session cache.
func loadPages(cmd *cobra.Command, coll pager.Target, pages int) error {
	pf := pager.NewPrefetcher(coll, 0, 0)
	for i := 0; i < pages && coll.HasNextPage(); i++ {
		if err := pf.Observe(cmd.Context(), 0); err != nil {
			return err
		}
	}
	return pf.Observe(cmd.Context(), pager.DefaultEarlyZone)
}

func printMore(hasNext bool, total, shown int) {
	if hasNext {
		fmt.Printf("Showing %d of %d results. Re-run with --pages to load more.\n", shown, total)
	}
}

func init() {
	searchCmd.PersistentFlags().IntVar(&searchPages, "pages", 1, "number of result pages to load")
	searchCmd.AddCommand(searchAlbumsCmd)
	searchCmd.AddCommand(searchTracksCmd)
	rootCmd.AddCommand(searchCmd)
}
