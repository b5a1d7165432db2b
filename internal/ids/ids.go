// Package ids resolves the external-catalog ids (TVDB, TMDB) of an already
// identified movie or episode, so trackers can be fed every id we know.
package ids

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vmunix/scrobgo/internal/tmdb"
	"github.com/vmunix/scrobgo/pkg/tvdb"
)

// ShowCatalog is the show-metadata lookup surface the resolver needs.
// Satisfied by *tvdb.Client and by the cached *metadata.TVDBService.
type ShowCatalog interface {
	Search(ctx context.Context, query string) ([]tvdb.SearchResult, error)
	GetSeries(ctx context.Context, id int) (*tvdb.Series, error)
	GetEpisode(ctx context.Context, seriesID, season, episode int) (*tvdb.Episode, error)
}

// MovieCatalog is the TMDB lookup surface. Satisfied by *tmdb.Client.
type MovieCatalog interface {
	SearchTV(ctx context.Context, query string, firstAirDateYear int) ([]tmdb.TVResult, error)
	SearchMovie(ctx context.Context, query string, year int) ([]tmdb.MovieResult, error)
	EpisodeExternalIDs(ctx context.Context, tvID, season, episode int) (*tmdb.ExternalIDs, error)
}

// Resolver resolves cross-catalog ids. Every per-catalog failure is logged
// and results in that catalog's key being absent; Resolve* never fail.
type Resolver struct {
	shows  ShowCatalog
	movies MovieCatalog
	log    *slog.Logger
}

// New creates a Resolver.
func New(shows ShowCatalog, movies MovieCatalog, log *slog.Logger) *Resolver {
	return &Resolver{
		shows:  shows,
		movies: movies,
		log:    log,
	}
}

// ResolveEpisodeIDs finds the TVDB and TMDB ids of an episode. year and
// imdbID are optional hints (zero values mean unknown); imdbID is the
// show's id and overrides name/year disambiguation when it matches.
func (r *Resolver) ResolveEpisodeIDs(ctx context.Context, show string, season, episode, year int, imdbID string) map[string]string {
	ids := make(map[string]string)

	series, tvdbEpisodeID := r.resolveTVDBEpisode(ctx, show, season, episode, year, imdbID)
	if tvdbEpisodeID != 0 {
		ids["tvdb"] = strconv.Itoa(tvdbEpisodeID)
	}

	r.resolveTMDBEpisode(ctx, ids, show, season, episode, year, series, tvdbEpisodeID)

	return ids
}

// ResolveMovieIDs finds the TMDB id of a movie (year 0 means unknown). An
// exact title match wins; a year hint additionally rules out same-named
// remakes from other years.
func (r *Resolver) ResolveMovieIDs(ctx context.Context, title string, year int) map[string]string {
	ids := make(map[string]string)

	results, err := r.movies.SearchMovie(ctx, title, year)
	if err != nil {
		if r.log != nil {
			r.log.Warn("unable to search movie on TMDB", "title", title, "error", err)
		}
		return ids
	}

	for _, m := range results {
		if m.Title != title {
			continue
		}
		if year != 0 && m.Year() != 0 && m.Year() != year {
			if r.log != nil {
				r.log.Debug("discarding TMDB movie, year mismatch",
					"title", m.Title, "year", m.Year(), "want", year)
			}
			continue
		}
		ids["tmdb"] = strconv.Itoa(m.ID)
		break
	}

	return ids
}

// resolveTVDBEpisode finds the series and its episode id on TVDB. Returns
// the series (when found) even if the episode lookup failed, so the TMDB
// pass can still use its name and aliases.
func (r *Resolver) resolveTVDBEpisode(ctx context.Context, show string, season, episode, year int, imdbID string) (*tvdb.Series, int) {
	series := r.lookupSeries(ctx, show, year, imdbID)
	if series == nil {
		if r.log != nil {
			r.log.Warn("unable to find series on TVDB", "show", show, "season", season, "episode", episode)
		}
		return nil, 0
	}

	ep, err := r.shows.GetEpisode(ctx, series.ID, season, episode)
	if err != nil {
		if r.log != nil {
			r.log.Warn("unable to find episode on TVDB",
				"show", show, "season", season, "episode", episode, "error", err)
		}
		return series, 0
	}

	return series, ep.ID
}

// lookupSeries picks the TVDB series for a show name. The best search hit
// is accepted outright unless a year hint contradicts its first-aired date
// (same-named shows from different eras); then the full result list is
// re-walked requiring a name prefix and a matching year, with a matching
// imdb id overriding both checks.
func (r *Resolver) lookupSeries(ctx context.Context, show string, year int, imdbID string) *tvdb.Series {
	results, err := r.shows.Search(ctx, show)
	if err != nil || len(results) == 0 {
		return nil
	}

	series, err := r.shows.GetSeries(ctx, results[0].ID)
	if err != nil {
		return nil
	}

	wrongYear := (imdbID == "" || series.IMDbID != imdbID) &&
		year > 0 && series.FirstAired != "" && firstAiredYear(series.FirstAired) != year
	if !wrongYear {
		return series
	}

	for _, s := range results {
		if imdbID == "" || s.IMDbID != imdbID {
			if !strings.HasPrefix(s.Name, show) {
				if r.log != nil {
					r.log.Debug("discarding TVDB result, name mismatch", "name", s.Name, "show", show)
				}
				continue
			}
			if firstAiredYear(s.FirstAired) != year {
				if r.log != nil {
					r.log.Debug("discarding TVDB result, year mismatch", "name", s.Name, "year", year)
				}
				continue
			}
		}

		series, err := r.shows.GetSeries(ctx, s.ID)
		if err != nil {
			continue
		}
		return series
	}

	return nil
}

// resolveTMDBEpisode finds the TMDB episode id, cross-checked against the
// TVDB id when both sides know it.
func (r *Resolver) resolveTMDBEpisode(ctx context.Context, ids map[string]string, show string, season, episode, year int, series *tvdb.Series, tvdbEpisodeID int) {
	results, err := r.movies.SearchTV(ctx, show, year)
	if err != nil {
		if r.log != nil {
			r.log.Debug("TMDB TV search failed", "show", show, "error", err)
		}
		return
	}

	for _, s := range results {
		if s.Name != show && !matchesSeries(s.Name, series) {
			if r.log != nil {
				r.log.Debug("discarding TMDB result, name mismatch", "name", s.Name, "show", show)
			}
			continue
		}
		if year != 0 && s.Year() != 0 && s.Year() != year {
			if r.log != nil {
				r.log.Debug("discarding TMDB result, first-aired year mismatch",
					"name", s.Name, "year", s.Year(), "want", year)
			}
			continue
		}

		ext, err := r.movies.EpisodeExternalIDs(ctx, s.ID, season, episode)
		if err != nil {
			continue
		}

		// If both sides know the TVDB id, they have to agree; otherwise
		// this is probably not the episode we are looking for.
		if tvdbEpisodeID != 0 && ext.TVDBID != 0 && ext.TVDBID != tvdbEpisodeID {
			if r.log != nil {
				r.log.Debug("discarding TMDB result, TVDB id mismatch",
					"name", s.Name, "tvdb", tvdbEpisodeID, "tmdb_tvdb", ext.TVDBID)
			}
			continue
		}

		ids["tmdb"] = strconv.Itoa(ext.ID)
		break
	}
}

func matchesSeries(name string, series *tvdb.Series) bool {
	if series == nil {
		return false
	}
	if name == series.Name {
		return true
	}
	for _, alias := range series.Aliases {
		if name == alias {
			return true
		}
	}
	return false
}

func firstAiredYear(firstAired string) int {
	yearPart, _, _ := strings.Cut(firstAired, "-")
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return 0
	}
	return year
}
