package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/vmunix/scrobgo/internal/config"
	"github.com/vmunix/scrobgo/internal/ids"
	"github.com/vmunix/scrobgo/internal/imdb"
	"github.com/vmunix/scrobgo/internal/metadata"
	"github.com/vmunix/scrobgo/internal/opensubtitles"
	"github.com/vmunix/scrobgo/internal/resolver"
	"github.com/vmunix/scrobgo/internal/tmdb"
	"github.com/vmunix/scrobgo/internal/trakt"
	"github.com/vmunix/scrobgo/pkg/tvdb"
)

// services bundles the backend clients a command may need.
type services struct {
	resolver *resolver.Resolver
	ids      *ids.Resolver
	db       *sql.DB
}

func (s *services) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// buildServices wires every backend client from the configuration. URL
// overrides in the config point clients at alternate endpoints.
func buildServices(cfg *config.Config, log *slog.Logger) (*services, error) {
	db, err := metadata.Open(cfg.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("opening metadata cache: %w", err)
	}
	cache := metadata.NewCache(db)

	osOpts := []opensubtitles.Option{opensubtitles.WithLogger(log)}
	if cfg.OpenSubtitles.Endpoint != "" {
		osOpts = append(osOpts, opensubtitles.WithEndpoint(cfg.OpenSubtitles.Endpoint))
	}
	fingerprints := opensubtitles.New(cfg.OpenSubtitles.UserAgent, osOpts...)

	titles := imdb.New(imdb.WithLogger(log))

	tvdbOpts := []tvdb.Option{tvdb.WithLogger(log)}
	if cfg.TVDB.URL != "" {
		tvdbOpts = append(tvdbOpts, tvdb.WithBaseURL(cfg.TVDB.URL))
	}
	shows := metadata.NewTVDBService(tvdb.New(cfg.TVDB.APIKey, tvdbOpts...), cache, log)

	traktOpts := []trakt.Option{trakt.WithLogger(log)}
	if cfg.Trakt.URL != "" {
		traktOpts = append(traktOpts, trakt.WithBaseURL(cfg.Trakt.URL))
	}
	link := trakt.New(cfg.Trakt.APIKey, traktOpts...)

	var tmdbOpts []tmdb.Option
	if cfg.TMDB.URL != "" {
		tmdbOpts = append(tmdbOpts, tmdb.WithBaseURL(cfg.TMDB.URL))
	}
	movies := tmdb.NewClient(cfg.TMDB.APIKey, tmdbOpts...)

	idResolver := ids.New(shows, movies, log)

	return &services{
		resolver: resolver.New(fingerprints, titles, shows, link, idResolver, log),
		ids:      idResolver,
		db:       db,
	}, nil
}
