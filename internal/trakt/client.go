package trakt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.trakt.tv"

// Sentinel errors for Trakt API responses.
var (
	ErrNotFound    = errors.New("not found")
	ErrRateLimited = errors.New("rate limited: too many requests")
)

// Client is a Trakt.tv API client. All requests are made with the
// application API key only; no user authentication is involved.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
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
		c.log = log.With("component", "trakt")
	}
}

// New creates a new Trakt API client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a GET request with the required Trakt headers.
func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("trakt-api-version", "2")
	req.Header.Set("trakt-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	return resp, nil
}

// SearchByTVDBEpisode looks up Trakt entries linked to a TVDB episode id.
// Trakt id lookups intermittently answer 5xx, so a failed attempt is
// retried once before giving up.
func (c *Client) SearchByTVDBEpisode(ctx context.Context, tvdbEpisodeID int) ([]SearchResult, error) {
	endpoint := fmt.Sprintf("/search/tvdb/%d?type=episode", tvdbEpisodeID)

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		results, retryable, err := c.searchOnce(ctx, endpoint)
		if err == nil {
			return results, nil
		}
		lastErr = err
		if !retryable {
			break
		}
		if c.log != nil {
			c.log.Debug("retrying id lookup", "tvdb_episode_id", tvdbEpisodeID, "error", err)
		}
	}
	return nil, lastErr
}

func (c *Client) searchOnce(ctx context.Context, endpoint string) (results []SearchResult, retryable bool, err error) {
	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	if err := c.checkResponse(resp); err != nil {
		return nil, resp.StatusCode >= 500, err
	}

	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, false, fmt.Errorf("decode search response: %w", err)
	}
	return results, false, nil
}

// GetEpisode fetches full episode metadata for a show by Trakt slug.
func (c *Client) GetEpisode(ctx context.Context, showSlug string, season, episode int) (*EpisodeInfo, error) {
	endpoint := fmt.Sprintf("/shows/%s/seasons/%d/episodes/%d?extended=full", showSlug, season, episode)
	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkResponse(resp); err != nil {
		return nil, err
	}

	var ep EpisodeInfo
	if err := json.NewDecoder(resp.Body).Decode(&ep); err != nil {
		return nil, fmt.Errorf("decode episode response: %w", err)
	}
	return &ep, nil
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
		return fmt.Errorf("trakt API error: %s", resp.Status)
	}
}
