package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/scrobgo/pkg/tvdb"
)

const (
	// Cache TTLs
	seriesTTL  = 7 * 24 * time.Hour // 7 days
	episodeTTL = 24 * time.Hour     // 24 hours
	searchTTL  = time.Hour          // 1 hour
)

// Cache key prefixes
const (
	keyPrefixSearch  = "tvdb:search:"
	keyPrefixSeries  = "tvdb:series:"
	keyPrefixEpisode = "tvdb:episode:"
)

// TVDBService provides cached access to TVDB metadata.
type TVDBService struct {
	client *tvdb.Client
	cache  *Cache
	log    *slog.Logger
}

// NewTVDBService creates a new TVDB service.
func NewTVDBService(client *tvdb.Client, cache *Cache, log *slog.Logger) *TVDBService {
	return &TVDBService{
		client: client,
		cache:  cache,
		log:    log,
	}
}

// Search searches for series by name (cached).
func (s *TVDBService) Search(ctx context.Context, query string) ([]tvdb.SearchResult, error) {
	key := keyPrefixSearch + query

	// Check cache first
	if data, ok := s.cache.Get(ctx, key); ok {
		var results []tvdb.SearchResult
		if err := json.Unmarshal(data, &results); err == nil {
			if s.log != nil {
				s.log.Debug("cache hit for search", "query", query, "results", len(results))
			}
			return results, nil
		}
		// If unmarshal fails, treat as cache miss and fetch fresh data
		if s.log != nil {
			s.log.Warn("failed to unmarshal cached search results", "query", query)
		}
	}

	// Cache miss - call API
	if s.log != nil {
		s.log.Debug("cache miss for search, calling API", "query", query)
	}

	results, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	s.store(ctx, key, results, searchTTL)
	return results, nil
}

// GetSeries fetches series metadata by TVDB ID (cached).
func (s *TVDBService) GetSeries(ctx context.Context, tvdbID int) (*tvdb.Series, error) {
	key := fmt.Sprintf("%s%d", keyPrefixSeries, tvdbID)

	// Check cache first
	if data, ok := s.cache.Get(ctx, key); ok {
		var series tvdb.Series
		if err := json.Unmarshal(data, &series); err == nil {
			if s.log != nil {
				s.log.Debug("cache hit for series", "tvdb_id", tvdbID, "name", series.Name)
			}
			return &series, nil
		}
		if s.log != nil {
			s.log.Warn("failed to unmarshal cached series", "tvdb_id", tvdbID)
		}
	}

	// Cache miss - call API
	if s.log != nil {
		s.log.Debug("cache miss for series, calling API", "tvdb_id", tvdbID)
	}

	series, err := s.client.GetSeries(ctx, tvdbID)
	if err != nil {
		return nil, fmt.Errorf("get series: %w", err)
	}

	s.store(ctx, key, series, seriesTTL)
	return series, nil
}

// GetEpisode fetches one episode of a series by season and episode number
// (cached).
func (s *TVDBService) GetEpisode(ctx context.Context, tvdbID, season, episode int) (*tvdb.Episode, error) {
	key := fmt.Sprintf("%s%d:%dx%d", keyPrefixEpisode, tvdbID, season, episode)

	// Check cache first
	if data, ok := s.cache.Get(ctx, key); ok {
		var ep tvdb.Episode
		if err := json.Unmarshal(data, &ep); err == nil {
			if s.log != nil {
				s.log.Debug("cache hit for episode", "tvdb_id", tvdbID, "season", season, "episode", episode)
			}
			return &ep, nil
		}
		if s.log != nil {
			s.log.Warn("failed to unmarshal cached episode", "tvdb_id", tvdbID)
		}
	}

	// Cache miss - call API
	if s.log != nil {
		s.log.Debug("cache miss for episode, calling API", "tvdb_id", tvdbID, "season", season, "episode", episode)
	}

	ep, err := s.client.GetEpisode(ctx, tvdbID, season, episode)
	if err != nil {
		return nil, fmt.Errorf("get episode: %w", err)
	}

	s.store(ctx, key, ep, episodeTTL)
	return ep, nil
}

// InvalidateSeries removes cached data for a series' metadata entry. Episode
// entries age out on their own TTL.
func (s *TVDBService) InvalidateSeries(ctx context.Context, tvdbID int) error {
	key := fmt.Sprintf("%s%d", keyPrefixSeries, tvdbID)
	if err := s.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("invalidate series %d: %w", tvdbID, err)
	}

	if s.log != nil {
		s.log.Debug("invalidated series cache", "tvdb_id", tvdbID)
	}
	return nil
}

// store caches v under key, logging (not failing) on marshal or write errors.
func (s *TVDBService) store(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		if s.log != nil {
			s.log.Warn("failed to marshal value for cache", "key", key, "error", err)
		}
		return
	}
	if err := s.cache.Set(ctx, key, data, ttl); err != nil {
		if s.log != nil {
			s.log.Warn("failed to cache value", "key", key, "error", err)
		}
	}
}
