package resolver

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vmunix/scrobgo/internal/imdb"
	"github.com/vmunix/scrobgo/internal/trakt"
	"github.com/vmunix/scrobgo/pkg/medianame"
)

// searchTextEpisode resolves an episode hint through the catalogs: the show
// catalog supplies the episode's TVDB id, the linking service maps that id to
// the primary catalog when it can, and the primary catalog's episode listing
// is walked otherwise. When the listing walk comes up empty but the linking
// service did match the show, records are synthesized from the linking
// service alone rather than failing outright.
//
// A show the show catalog does not know fails the whole episode path: a
// parsed name that no show catalog recognizes is treated as not being an
// episode at all, and the movie path gets its turn.
func (r *Resolver) searchTextEpisode(ctx context.Context, ep *medianame.Episode) (*match, error) {
	season := ep.Season
	if ep.AbsoluteNumbering {
		season = 1
	}
	episode := ep.Episodes[0]
	_, showYear := splitTitleYear(ep.Show)

	aliases, tvdbEpisodeID, found := r.lookupTVDBEpisode(ctx, ep.Show, season, episode)
	if !found {
		return nil, nil
	}

	// Linking-service shortcut: a TVDB episode id can map straight to the
	// primary catalog.
	var (
		traktShow    *trakt.ShowInfo
		traktEpisode *trakt.EpisodeInfo
	)
	if tvdbEpisodeID != 0 {
		traktShow, traktEpisode = r.linkEpisode(ctx, tvdbEpisodeID)
		if traktEpisode != nil && traktEpisode.IDs.IMDB != "" {
			title, err := r.titles.GetTitle(ctx, traktEpisode.IDs.IMDB)
			if err == nil {
				return &match{title: title, show: traktShow, episode: traktEpisode}, nil
			}
			r.log.Warn("linked episode fetch failed",
				"imdb", traktEpisode.IDs.IMDB, "error", err)
		}
	}

	// Find the show in the primary catalog; the linking service may already
	// have told us its id there.
	seriesID := ""
	if traktShow != nil && traktShow.IDs.IMDB != "" {
		seriesID = traktShow.IDs.IMDB
	} else {
		var err error
		seriesID, err = r.findSeries(ctx, ep.Show, showYear, aliases)
		if err != nil {
			return nil, err
		}
	}

	if seriesID != "" {
		if id := r.findListedEpisode(ctx, seriesID, season, episode); id != "" {
			title, err := r.titles.GetTitle(ctx, id)
			if err == nil {
				return &match{title: title, show: traktShow, episode: traktEpisode}, nil
			}
			r.log.Warn("listed episode fetch failed", "imdb", id, "error", err)
		}
	}

	if traktShow == nil {
		return nil, nil
	}
	return r.linkFallback(ctx, traktShow, season, episode, len(ep.Episodes))
}

// lookupTVDBEpisode finds the show on the show catalog and returns its alias
// names along with the requested episode's id. An unknown show returns
// found=false, failing the episode path. Failures past that point are soft:
// the primary catalog search can still proceed on the name alone.
func (r *Resolver) lookupTVDBEpisode(ctx context.Context, show string, season, episode int) (aliases []string, episodeID int, found bool) {
	results, err := r.shows.Search(ctx, show)
	if err != nil || len(results) == 0 {
		r.log.Debug("show not found on show catalog", "show", show, "error", err)
		return nil, 0, false
	}

	series, err := r.shows.GetSeries(ctx, results[0].ID)
	if err != nil {
		r.log.Debug("series fetch failed", "show", show, "error", err)
	} else {
		aliases = series.Aliases
	}

	episodeRec, err := r.shows.GetEpisode(ctx, results[0].ID, season, episode)
	if err != nil {
		r.log.Debug("episode not found on show catalog",
			"show", show, "season", season, "episode", episode, "error", err)
		return aliases, 0, true
	}
	return aliases, episodeRec.ID, true
}

// linkEpisode asks the linking service which show and episode a TVDB episode
// id belongs to.
func (r *Resolver) linkEpisode(ctx context.Context, tvdbEpisodeID int) (*trakt.ShowInfo, *trakt.EpisodeInfo) {
	results, err := r.link.SearchByTVDBEpisode(ctx, tvdbEpisodeID)
	if err != nil {
		r.log.Warn("id link lookup failed", "tvdb_episode_id", tvdbEpisodeID, "error", err)
		return nil, nil
	}
	for _, res := range results {
		if res.Type == "episode" && res.Episode != nil {
			return res.Show, res.Episode
		}
	}
	return nil, nil
}

// findSeries searches the primary catalog for the show under its parsed name
// and every known alias. A candidate survives on an exact title match, or on
// matching a name's year suffix with its own year (so "The Flash (2014)"
// never resolves to the 1990 series); when still ambiguous, the parsed year
// decides. A search failure aborts the episode path.
func (r *Resolver) findSeries(ctx context.Context, showName string, showYear int, aliases []string) (string, error) {
	names := append([]string{showName}, aliases...)
	seen := make(map[string]bool)

	var candidates []imdb.SearchResult
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		results, err := r.titles.SearchTitle(ctx, name)
		if err != nil {
			return "", &LookupError{Stage: "episode", Err: fmt.Errorf("search %q: %w", name, err)}
		}

		base, yr := splitTitleYear(name)
		for _, res := range results {
			if !imdb.ValidTitleID(res.ID) || res.Type != "TV series" {
				continue
			}
			if res.Title != name && !(yr != 0 && res.Title == base && res.Year == yr) {
				continue
			}
			candidates = append(candidates, res)
		}
	}

	if len(candidates) > 1 && showYear != 0 {
		filtered := candidates[:0]
		for _, c := range candidates {
			if c.Year == showYear {
				filtered = append(filtered, c)
			}
		}
		candidates = filtered
	}
	if len(candidates) == 0 {
		return "", nil
	}
	return candidates[0].ID, nil
}

// findListedEpisode walks a series' episode listing for the exact season and
// episode, returning its title id or "".
func (r *Resolver) findListedEpisode(ctx context.Context, seriesID string, season, episode int) string {
	listing, err := r.titles.GetEpisodeListing(ctx, seriesID)
	if err != nil {
		r.log.Warn("episode listing fetch failed", "series", seriesID, "error", err)
		return ""
	}
	for _, s := range listing {
		if s.Season != season {
			continue
		}
		for _, e := range s.Episodes {
			if e.Episode == episode {
				return e.ID
			}
		}
	}
	return ""
}

// linkFallback synthesizes one record per requested episode from the linking
// service, walking forward from the first episode number. It runs when the
// primary catalog does not list the episode yet; the records carry whatever
// ids the linking service knows.
func (r *Resolver) linkFallback(ctx context.Context, show *trakt.ShowInfo, season, episode, count int) (*match, error) {
	records := make([]ResolvedMedia, 0, count)
	for i := 0; i < count; i++ {
		num := episode + i
		ep, err := r.link.GetEpisode(ctx, show.IDs.Slug, season, num)
		if err != nil {
			return nil, &LookupError{
				Stage: "episode",
				Err:   fmt.Errorf("link fallback %dx%d: %w", season, num, err),
			}
		}
		records = append(records, linkedRecord(show, ep))
	}
	return &match{records: records, show: show}, nil
}

func linkedRecord(show *trakt.ShowInfo, ep *trakt.EpisodeInfo) ResolvedMedia {
	year := 0
	if len(ep.FirstAired) >= 4 {
		year, _ = strconv.Atoi(ep.FirstAired[:4])
	}
	return ResolvedMedia{
		Title:          ep.Title,
		Year:           year,
		Kind:           "episode",
		RuntimeMinutes: ep.Runtime,
		Season:         ep.Season,
		Episode:        ep.Number,
		Show: &ShowRef{
			Title: show.Title,
			Year:  show.Year,
			IDs:   linkIDs(show.IDs, true),
		},
		IDs: linkIDs(ep.IDs, false),
	}
}

// linkIDs converts a linking-service id set to the catalog-name mapping used
// in resolved records. Slugs only make sense for shows.
func linkIDs(ids trakt.IDSet, withSlug bool) map[string]string {
	out := make(map[string]string)
	if ids.Trakt != 0 {
		out["trakt"] = strconv.Itoa(ids.Trakt)
	}
	if ids.IMDB != "" {
		out["imdb"] = ids.IMDB
	}
	if ids.TMDB != 0 {
		out["tmdb"] = strconv.Itoa(ids.TMDB)
	}
	if ids.TVDB != 0 {
		out["tvdb"] = strconv.Itoa(ids.TVDB)
	}
	if withSlug && ids.Slug != "" {
		out["slug"] = ids.Slug
	}
	return out
}
