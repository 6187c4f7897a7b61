package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/crate-fm/crate/models"
	"github.com/crate-fm/crate/service/pager"
)

const (
	defaultBaseURL = "https://ws.audioscrobbler.com/2.0/"

	// DefaultPageSize is the page size used when a caller passes a
	// non-positive limit.
	DefaultPageSize = 30
	// DefaultChartPageSize is the default for chart.gettoptracks.
	DefaultChartPageSize = 50
)

// Client is the sole consumer of the Last.fm API boundary. It absorbs the
// upstream's structural inconsistency; nothing above it sees raw shapes.
// It is stateless between calls.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// New creates a client against the public Last.fm endpoint.
func New(apiKey string) *Client {
	return NewWithBaseURL(apiKey, defaultBaseURL)
}

// NewWithBaseURL creates a client against a specific endpoint. Tests point
// this at a local server.
func NewWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		// Last.fm unofficial rate limit is ~5 requests per second
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
		logger:  log.New(os.Stdout, "lastfm: ", log.LstdFlags|log.Lmsgprefix),
	}
}

// get performs one API call and decodes the payload into out. An error
// payload inside a 200 response surfaces as *APIError.
func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")
	apiURL := c.baseURL + "?" + params.Encode()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Printf("request %s failed: status %d, body: %s", params.Get("method"), resp.StatusCode, string(body))
		return fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrNetwork, err)
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != 0 {
		return &APIError{Code: envelope.Error, Message: envelope.Message}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decoding %s response: %v", ErrUpstream, params.Get("method"), err)
	}
	return nil
}

// searchPage builds pagination metadata for the free-text search
// endpoints, which report only a total result count.
func searchPage[T any](items []T, page, perPage int, total flexInt) pager.Page[T] {
	totalItems := 0
	if p := total.Ptr(); p != nil {
		totalItems = *p
	}
	totalPages := (totalItems + perPage - 1) / perPage
	return pager.Page[T]{
		Items:       items,
		Page:        page,
		PerPage:     perPage,
		TotalPages:  totalPages,
		Total:       totalItems,
		HasNextPage: page < totalPages,
	}
}

// attrPage builds pagination metadata from an "@attr" block, which reports
// totals directly.
func attrPage[T any](items []T, page, perPage int, attr PageAttr) pager.Page[T] {
	totalPages := 1
	if p := attr.TotalPages.Ptr(); p != nil {
		totalPages = *p
	}
	total := len(items)
	if p := attr.Total.Ptr(); p != nil {
		total = *p
	}
	return pager.Page[T]{
		Items:       items,
		Page:        page,
		PerPage:     perPage,
		TotalPages:  totalPages,
		Total:       total,
		HasNextPage: page < totalPages,
	}
}

func clampPaging(limit, page int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	return limit, page
}

// SearchAlbums fetches one page of album.search results. A blank query
// short-circuits to an empty page without a network call.
func (c *Client) SearchAlbums(ctx context.Context, query string, limit, page int) (pager.Page[models.Album], error) {
	limit, page = clampPaging(limit, page)
	if strings.TrimSpace(query) == "" {
		return pager.Empty[models.Album](limit), nil
	}

	params := url.Values{}
	params.Set("method", "album.search")
	params.Set("album", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("page", strconv.Itoa(page))

	var resp albumSearchResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return pager.Page[models.Album]{}, err
	}

	albums := toAlbums(resp.Results.AlbumMatches.Album)
	return searchPage(albums, page, limit, resp.Results.TotalResults), nil
}

// SearchTracks fetches one page of track.search results. A single-result
// search delivers the track as a bare object; it normalizes to a
// singleton list.
func (c *Client) SearchTracks(ctx context.Context, query string, limit, page int) (pager.Page[models.Track], error) {
	limit, page = clampPaging(limit, page)
	if strings.TrimSpace(query) == "" {
		return pager.Empty[models.Track](limit), nil
	}

	params := url.Values{}
	params.Set("method", "track.search")
	params.Set("track", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("page", strconv.Itoa(page))

	var resp trackSearchResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return pager.Page[models.Track]{}, err
	}

	tracks := toTracks(oneOrMany[Track](resp.Results.TrackMatches.Track))
	return searchPage(tracks, page, limit, resp.Results.TotalResults), nil
}

// AlbumInfo fetches album.getinfo. The album may sit at the payload root
// or under "results"; both locations are checked.
func (c *Client) AlbumInfo(ctx context.Context, artist, album, mbid string) (models.Album, error) {
	if strings.TrimSpace(artist) == "" || strings.TrimSpace(album) == "" {
		return models.Album{}, fmt.Errorf("%w: artist and album names are required", ErrValidation)
	}

	params := url.Values{}
	params.Set("method", "album.getinfo")
	params.Set("artist", artist)
	params.Set("album", album)
	if mbid != "" {
		params.Set("mbid", mbid)
	}

	var resp albumInfoResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return models.Album{}, err
	}

	dto := resp.Album
	if dto == nil {
		dto = resp.Results.Album
	}
	if dto == nil {
		return models.Album{}, fmt.Errorf("%w: album not found", ErrUpstream)
	}
	return toAlbum(*dto), nil
}

// ArtistTopAlbums fetches one page of artist.gettopalbums. Playcount
// arrives as a JSON number on this endpoint, unlike everywhere else.
func (c *Client) ArtistTopAlbums(ctx context.Context, artist string, limit, page int) (pager.Page[models.Album], error) {
	limit, page = clampPaging(limit, page)
	if strings.TrimSpace(artist) == "" {
		return pager.Empty[models.Album](limit), nil
	}

	params := url.Values{}
	params.Set("method", "artist.gettopalbums")
	params.Set("artist", artist)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("page", strconv.Itoa(page))

	var resp topAlbumsResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return pager.Page[models.Album]{}, err
	}

	albums := toAlbums(resp.TopAlbums.Album)
	return attrPage(albums, page, limit, resp.TopAlbums.Attr), nil
}

// ArtistTopTracks fetches one page of artist.gettoptracks.
func (c *Client) ArtistTopTracks(ctx context.Context, artist string, limit, page int) (pager.Page[models.Track], error) {
	limit, page = clampPaging(limit, page)
	if strings.TrimSpace(artist) == "" {
		return pager.Empty[models.Track](limit), nil
	}

	params := url.Values{}
	params.Set("method", "artist.gettoptracks")
	params.Set("artist", artist)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("page", strconv.Itoa(page))

	var resp topTracksResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return pager.Page[models.Track]{}, err
	}

	tracks := toTracks(resp.TopTracks.Track)
	return attrPage(tracks, page, limit, resp.TopTracks.Attr), nil
}

// ChartTopTracks fetches one page of chart.gettoptracks.
func (c *Client) ChartTopTracks(ctx context.Context, limit, page int) (pager.Page[models.Track], error) {
	if limit <= 0 {
		limit = DefaultChartPageSize
	}
	if page <= 0 {
		page = 1
	}

	params := url.Values{}
	params.Set("method", "chart.gettoptracks")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("page", strconv.Itoa(page))

	var resp chartTracksResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return pager.Page[models.Track]{}, err
	}

	tracks := toTracks(resp.Tracks.Track)
	return attrPage(tracks, page, limit, resp.Tracks.Attr), nil
}

// TrackInfo fetches track.getInfo, including album provenance when the
// track belongs to one.
func (c *Client) TrackInfo(ctx context.Context, artist, track string) (models.TrackInfo, error) {
	if strings.TrimSpace(artist) == "" || strings.TrimSpace(track) == "" {
		return models.TrackInfo{}, fmt.Errorf("%w: artist and track names are required", ErrValidation)
	}

	params := url.Values{}
	params.Set("method", "track.getInfo")
	params.Set("artist", artist)
	params.Set("track", track)

	var resp trackInfoResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return models.TrackInfo{}, err
	}

	info := models.TrackInfo{
		Name:      resp.Track.Name,
		Artist:    resp.Track.Artist.Name,
		Playcount: resp.Track.Playcount.Ptr(),
		Listeners: resp.Track.Listeners.Ptr(),
	}
	if resp.Track.Album != nil {
		info.AlbumName = resp.Track.Album.Title
		info.AlbumArtist = resp.Track.Album.Artist
	}
	return info, nil
}
