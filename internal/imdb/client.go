package imdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL    = "https://app.imdb.com"
	defaultSuggestURL = "https://v2.sg.media-imdb.com"
)

// Sentinel errors for IMDb API responses.
var (
	ErrNotFound    = errors.New("not found")
	ErrRateLimited = errors.New("rate limited: too many requests")
)

// Client is an IMDb catalog client. Search goes through the suggestion
// endpoint; details and episode listings through the app API.
type Client struct {
	baseURL    string
	suggestURL string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom details API base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithSuggestURL sets a custom suggestion API base URL (for testing).
func WithSuggestURL(url string) Option {
	return func(c *Client) {
		c.suggestURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "imdb")
	}
}

// New creates a new IMDb client. No API key is needed.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		suggestURL: defaultSuggestURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if err := c.checkResponse(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// SearchTitle searches the catalog by free text. Results may include
// non-title entries; callers filter with ValidTitleID.
func (c *Client) SearchTitle(ctx context.Context, text string) ([]SearchResult, error) {
	query := strings.ToLower(strings.TrimSpace(text))
	if query == "" {
		return nil, nil
	}

	// The suggestion endpoint shards by the query's first character.
	shard := query[:1]
	if shard < "a" || shard > "z" {
		shard = "x"
	}
	endpoint := fmt.Sprintf("%s/suggestion/%s/%s.json", c.suggestURL, shard, url.PathEscape(query))

	var resp suggestResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(resp.D))
	for _, d := range resp.D {
		results = append(results, SearchResult{
			ID:    d.ID,
			Title: d.L,
			Year:  d.Y,
			Type:  d.Q,
		})
	}

	if c.log != nil {
		c.log.Debug("title search completed", "query", text, "results", len(results))
	}

	return results, nil
}

// GetTitle fetches the full record for a title id.
func (c *Client) GetTitle(ctx context.Context, id string) (*Title, error) {
	if !ValidTitleID(id) {
		return nil, fmt.Errorf("%w: invalid title id %q", ErrNotFound, id)
	}

	endpoint := fmt.Sprintf("%s/title/maindetails?tconst=%s", c.baseURL, url.QueryEscape(id))

	var resp titleResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	title := &Title{
		ID:             resp.Data.TConst,
		Type:           resp.Data.Type,
		Title:          resp.Data.Title,
		Year:           resp.Data.Year,
		RuntimeMinutes: resp.Data.RunningTime.Time / 60,
		Season:         resp.Data.Season,
		Episode:        resp.Data.Episode,
		NextEpisodeID:  titleIDFromPath(resp.Data.NextEpisode),
	}
	if resp.Data.Series != nil {
		title.Parent = &ParentTitle{
			ID:    resp.Data.Series.TConst,
			Title: resp.Data.Series.Title,
			Year:  resp.Data.Series.Year,
		}
	}

	return title, nil
}

// GetEpisodeListing fetches the season/episode layout of a series.
func (c *Client) GetEpisodeListing(ctx context.Context, seriesID string) ([]Season, error) {
	if !ValidTitleID(seriesID) {
		return nil, fmt.Errorf("%w: invalid title id %q", ErrNotFound, seriesID)
	}

	endpoint := fmt.Sprintf("%s/title/episodes?tconst=%s", c.baseURL, url.QueryEscape(seriesID))

	var resp episodesResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	seasons := make([]Season, 0, len(resp.Data.Seasons))
	for _, s := range resp.Data.Seasons {
		season := Season{Season: s.Season}
		for _, e := range s.List {
			season.Episodes = append(season.Episodes, EpisodeRef{
				Episode: e.Episode,
				ID:      e.TConst,
			})
		}
		seasons = append(seasons, season)
	}

	return seasons, nil
}

// checkResponse checks the HTTP response for errors and returns appropriate sentinel errors.
func (c *Client) checkResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("IMDb API error: %s", resp.Status)
	}
}

// titleIDFromPath extracts the tt id from a "/title/tt…/" reference.
func titleIDFromPath(path string) string {
	id := strings.Trim(strings.TrimPrefix(path, "/title/"), "/")
	if !ValidTitleID(id) {
		return ""
	}
	return id
}
