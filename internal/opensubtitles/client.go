package opensubtitles

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/kolo/xmlrpc"
	"golang.org/x/sync/singleflight"
)

const defaultEndpoint = "https://api.opensubtitles.org/xml-rpc"

// ErrBadStatus is returned when the service answers with a non-OK status.
var ErrBadStatus = errors.New("opensubtitles: bad status")

// caller abstracts the XML-RPC transport so tests can stand in for it.
type caller interface {
	Call(method string, args interface{}, reply interface{}) error
}

// Wire-level reply shapes.
type loginReply struct {
	Token  string `xmlrpc:"token"`
	Status string `xmlrpc:"status"`
}

type checkReply struct {
	Status string `xmlrpc:"status"`
	// When nothing matches, data comes back as an empty array instead of
	// a struct keyed by hash, so it has to be decoded untyped.
	Data interface{} `xmlrpc:"data"`
}

type insertReply struct {
	Status string `xmlrpc:"status"`
	Data   struct {
		Accepted []string `xmlrpc:"accepted_moviehashes"`
	} `xmlrpc:"data"`
}

// Client talks to the OpenSubtitles XML-RPC API. The session login is lazy
// and idempotent: concurrent callers share a single LogIn call.
type Client struct {
	endpoint  string
	userAgent string
	log       *slog.Logger
	transport http.RoundTripper

	newCaller func() (caller, error)

	sf    singleflight.Group
	mu    sync.RWMutex
	rpc   caller
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint sets a custom XML-RPC endpoint (for testing).
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithTransport sets a custom HTTP transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = rt
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "opensubtitles")
	}
}

// withCaller injects a fake transport; used by tests.
func withCaller(cl caller) Option {
	return func(c *Client) {
		c.newCaller = func() (caller, error) { return cl, nil }
	}
}

// New creates a new OpenSubtitles client. The userAgent identifies this
// program to the service and is required for submissions to be accepted.
func New(userAgent string, opts ...Option) *Client {
	c := &Client{
		endpoint:  defaultEndpoint,
		userAgent: userAgent,
		transport: &http.Transport{
			ResponseHeaderTimeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.newCaller == nil {
		c.newCaller = func() (caller, error) {
			return xmlrpc.NewClient(c.endpoint, c.transport)
		}
	}
	return c
}

// connect establishes the XML-RPC session, logging in anonymously. Safe for
// concurrent use; only one login is in flight at a time and an established
// session is reused.
func (c *Client) connect() (caller, string, error) {
	c.mu.RLock()
	rpc, token := c.rpc, c.token
	c.mu.RUnlock()
	if token != "" {
		return rpc, token, nil
	}

	_, err, _ := c.sf.Do("login", func() (interface{}, error) {
		c.mu.RLock()
		connected := c.token != ""
		c.mu.RUnlock()
		if connected {
			return nil, nil
		}

		rpc, err := c.newCaller()
		if err != nil {
			return nil, fmt.Errorf("connect: %w", err)
		}

		var login loginReply
		if err := rpc.Call("LogIn", []interface{}{"", "", "en", c.userAgent}, &login); err != nil {
			return nil, fmt.Errorf("login: %w", err)
		}
		if login.Token == "" {
			return nil, fmt.Errorf("%w: login returned %q", ErrBadStatus, login.Status)
		}

		c.mu.Lock()
		c.rpc = rpc
		c.token = login.Token
		c.mu.Unlock()

		if c.log != nil {
			c.log.Debug("logged in to opensubtitles")
		}
		return nil, nil
	})
	if err != nil {
		return nil, "", err
	}

	c.mu.RLock()
	rpc, token = c.rpc, c.token
	c.mu.RUnlock()
	return rpc, token, nil
}

// CheckHash looks up the fingerprint database for the given hashes. The
// result maps each known hash to its candidate entries; unknown hashes are
// absent from the map. Cancellation is the caller's responsibility (the
// transport enforces its own timeouts).
func (c *Client) CheckHash(ctx context.Context, hashes []string) (map[string][]HashCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rpc, token, err := c.connect()
	if err != nil {
		return nil, err
	}

	var resp checkReply
	if err := rpc.Call("CheckMovieHash2", []interface{}{token, hashes}, &resp); err != nil {
		return nil, fmt.Errorf("check hash: %w", err)
	}

	byHash, ok := resp.Data.(map[string]interface{})
	if !ok {
		return map[string][]HashCandidate{}, nil
	}

	out := make(map[string][]HashCandidate, len(byHash))
	for hash, raw := range byHash {
		entries, ok := raw.([]interface{})
		if !ok {
			continue
		}
		candidates := make([]HashCandidate, 0, len(entries))
		for _, e := range entries {
			fields, ok := e.(map[string]interface{})
			if !ok {
				continue
			}
			candidates = append(candidates, HashCandidate{
				Kind:    asString(fields["MovieKind"]),
				Name:    asString(fields["MovieName"]),
				Year:    asInt(fields["MovieYear"]),
				Season:  asInt(fields["SeriesSeason"]),
				Episode: asInt(fields["SeriesEpisode"]),
				IMDbID:  asString(fields["MovieImdbID"]),
			})
		}
		if len(candidates) > 0 {
			out[hash] = candidates
		}
	}

	if c.log != nil {
		c.log.Debug("hash lookup completed", "hashes", len(hashes), "matched", len(out))
	}

	return out, nil
}

// InsertHash submits new fingerprints to the database. Duplicates are
// silently rejected by the service and reported through InsertResult.
func (c *Client) InsertHash(ctx context.Context, entries []HashEntry) (*InsertResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rpc, token, err := c.connect()
	if err != nil {
		return nil, err
	}

	payload := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		payload = append(payload, map[string]interface{}{
			"moviehash":     e.Hash,
			"moviebytesize": strconv.FormatInt(e.SizeBytes, 10),
			"imdbid":        e.IMDbID,
			"movietimems":   strconv.FormatFloat(e.DurationMS, 'f', 0, 64),
			"moviefilename": e.Filename,
		})
	}

	var resp insertReply
	if err := rpc.Call("InsertMovieHash", []interface{}{token, payload}, &resp); err != nil {
		return nil, fmt.Errorf("insert hash: %w", err)
	}

	return &InsertResult{
		Status:   resp.Status,
		Accepted: resp.Data.Accepted,
	}, nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case string:
		i, _ := strconv.Atoi(n)
		return i
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
