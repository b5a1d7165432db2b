package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org"
const defaultCacheTTL = 24 * time.Hour

// ErrNotFound is returned when an entry doesn't exist in TMDB.
var ErrNotFound = errors.New("not found")

// Client is a TMDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *cache
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithCacheTTL sets the cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newCache(ttl)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: newCache(defaultCacheTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON fetches endpoint and decodes into out, going through the cache.
// The decoded value is cached by endpoint, so out must be a pointer whose
// pointee type is stable per endpoint.
func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	if cached, ok := c.cache.get(endpoint); ok {
		return json.Unmarshal(cached.([]byte), out)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	c.cache.set(endpoint, []byte(raw))
	return json.Unmarshal(raw, out)
}

// SearchTV searches TV shows by name, optionally restricted to a first-air
// year (0 means no restriction).
func (c *Client) SearchTV(ctx context.Context, query string, firstAirDateYear int) ([]TVResult, error) {
	endpoint := "/3/search/tv?api_key=" + c.apiKey + "&query=" + url.QueryEscape(query)
	if firstAirDateYear > 0 {
		endpoint += "&first_air_date_year=" + strconv.Itoa(firstAirDateYear)
	}

	var resp tvSearchResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// SearchMovie searches movies by title, optionally restricted to a release
// year (0 means no restriction).
func (c *Client) SearchMovie(ctx context.Context, query string, year int) ([]MovieResult, error) {
	endpoint := "/3/search/movie?api_key=" + c.apiKey + "&query=" + url.QueryEscape(query)
	if year > 0 {
		endpoint += "&year=" + strconv.Itoa(year)
	}

	var resp movieSearchResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// EpisodeExternalIDs fetches the cross-catalog ids of one episode.
func (c *Client) EpisodeExternalIDs(ctx context.Context, tvID, season, episode int) (*ExternalIDs, error) {
	endpoint := fmt.Sprintf("/3/tv/%d/season/%d/episode/%d/external_ids?api_key=%s",
		tvID, season, episode, c.apiKey)

	var ids ExternalIDs
	if err := c.getJSON(ctx, endpoint, &ids); err != nil {
		return nil, err
	}
	return &ids, nil
}
