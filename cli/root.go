package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/crate-fm/crate/config"
	"github.com/crate-fm/crate/db"
	"github.com/crate-fm/crate/models"
	"github.com/crate-fm/crate/service/favorites"
	"github.com/crate-fm/crate/service/lastfm"
	"github.com/crate-fm/crate/service/pager"
)

var (
	client   *lastfm.Client
	database *db.DB
	favStore *favorites.Store

	albumSearches *pager.Store[models.Album]
	trackSearches *pager.Store[models.Track]
	artistAlbums  *pager.Store[models.Album]
)

var rootCmd = &cobra.Command{
	Use:   "crate",
	Short: "Browse the Last.fm catalog from the command line",
	Long:  `Crate searches albums and tracks, shows album details and charts, and keeps a local favorites list.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initServices()
	},
	SilenceUsage: true,
}

func initServices() error {
	config.Load()

	client = lastfm.NewWithBaseURL(
		viper.GetString("lastfm.api_key"),
		viper.GetString("lastfm.base_url"),
	)

	var err error
	database, err = db.New(viper.GetString("db.path"))
	if err != nil {
		return err
	}
	if err := database.Initialize(); err != nil {
		return err
	}

	favStore, err = favorites.New(database)
	if err != nil {
		return err
	}

	pageSize := viper.GetInt("lastfm.page_size")
	maxCollections := viper.GetInt("cache.max_collections")
	ttl := time.Duration(viper.GetInt("cache.ttl_minutes")) * time.Minute

	albumSearches = pager.NewStore(maxCollections, ttl, func(query string) pager.FetchFunc[models.Album] {
		return func(ctx context.Context, page int) (pager.Page[models.Album], error) {
			return client.SearchAlbums(ctx, query, pageSize, page)
		}
	})
	trackSearches = pager.NewStore(maxCollections, ttl, func(query string) pager.FetchFunc[models.Track] {
		return func(ctx context.Context, page int) (pager.Page[models.Track], error) {
			return client.SearchTracks(ctx, query, pageSize, page)
		}
	})
	artistAlbums = pager.NewStore(maxCollections, ttl, func(artist string) pager.FetchFunc[models.Album] {
		return func(ctx context.Context, page int) (pager.Page[models.Album], error) {
			return client.ArtistTopAlbums(ctx, artist, pageSize, page)
		}
	})

	return nil
}

// Execute runs the root command.
func Execute() {
	defer func() {
		if database != nil {
			database.Close()
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
