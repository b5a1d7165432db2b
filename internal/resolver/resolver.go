package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vmunix/scrobgo/internal/imdb"
	"github.com/vmunix/scrobgo/internal/opensubtitles"
	"github.com/vmunix/scrobgo/pkg/medianame"
)

// movieSubmitThreshold gates fingerprint submission for movies: a
// low-confidence match must not poison the shared fingerprint database.
const movieSubmitThreshold = 70

// Resolver is the resolution entry point. It holds no per-request state, so
// a single Resolver is safe for concurrent use.
type Resolver struct {
	fingerprints FingerprintService
	titles       TitleCatalog
	shows        ShowCatalog
	link         LinkService
	ids          IDResolver
	log          *slog.Logger
}

// New creates a Resolver over the given collaborators.
func New(fingerprints FingerprintService, titles TitleCatalog, shows ShowCatalog, link LinkService, ids IDResolver, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{
		fingerprints: fingerprints,
		titles:       titles,
		shows:        shows,
		link:         link,
		ids:          ids,
		log:          log.With("component", "resolver"),
	}
}

// Resolve identifies the media described by meta, hash, size and duration
// (seconds). It returns one record per episode for multi-episode files, or an
// empty list when nothing plausible was found. Recoverable lookup failures
// are logged and the cascade continues; only a failure on an
// already-committed candidate surfaces as an error.
func (r *Resolver) Resolve(ctx context.Context, meta Meta, hash string, size int64, duration float64) ([]ResolvedMedia, error) {
	parsed := medianame.Parse(meta.Filename)
	if parsed.Episode == nil && parsed.Movie == nil {
		r.log.Debug("filename yielded no parse", "filename", meta.Filename)
		return []ResolvedMedia{}, nil
	}

	var m *match
	if hash != "" {
		found, err := r.searchByHash(ctx, hash, parsed)
		if err != nil {
			var le *LookupError
			if !errors.As(err, &le) {
				return nil, err
			}
			r.log.Warn("hash path failed", "hash", hash, "error", err)
		}
		m = found
	}

	usedText := false
	if m == nil && parsed.Episode != nil {
		found, err := r.searchTextEpisode(ctx, parsed.Episode)
		if err != nil {
			r.log.Warn("episode path failed", "show", parsed.Episode.Show, "error", err)
		} else if found != nil {
			m, usedText = found, true
		}
	}
	if m == nil && parsed.Movie != nil {
		found, err := r.searchTextMovie(ctx, parsed.Movie, duration)
		if err != nil {
			r.log.Warn("movie path failed", "title", parsed.Movie.Title, "error", err)
		} else if found != nil {
			m, usedText = found, true
		}
	}

	if m == nil {
		return []ResolvedMedia{}, nil
	}

	// The degraded linking-service path assembles its records itself; they
	// already carry every id the linking service knows and there is no
	// primary-catalog id to submit a fingerprint under.
	if m.records != nil {
		return m.records, nil
	}

	title := m.title
	kind := "movie"
	if title.IsEpisode() {
		kind = "episode"
	}

	// Submit the fingerprint only when this file's hash was previously
	// unknown, i.e. a hash was supplied but the match came from text search.
	if hash != "" && usedText && (kind == "episode" || m.ratio >= movieSubmitThreshold) {
		r.submitFingerprint(ctx, hash, size, duration, meta.Filename, title)
	}

	titles, err := r.chainEpisodes(ctx, title, parsed.Episode, kind)
	if err != nil {
		return nil, err
	}

	records := make([]ResolvedMedia, 0, len(titles))
	for i, t := range titles {
		rec := r.assemble(t)
		if i == 0 {
			// Linking-service ids only apply to the episode it matched.
			if m.episode != nil {
				mergeIDs(rec.IDs, linkIDs(m.episode.IDs, false))
			}
			if rec.Show != nil && m.show != nil {
				mergeIDs(rec.Show.IDs, linkIDs(m.show.IDs, true))
			}
		}
		r.enrich(ctx, &rec, t)
		records = append(records, rec)
	}
	return records, nil
}

// chainEpisodes walks next-episode links to cover every episode a
// multi-episode file holds. A broken chain is fatal: the caller committed to
// this series and a partial answer would mis-report the file.
func (r *Resolver) chainEpisodes(ctx context.Context, first *imdb.Title, ep *medianame.Episode, kind string) ([]*imdb.Title, error) {
	titles := []*imdb.Title{first}
	if kind != "episode" || ep == nil {
		return titles, nil
	}

	cur := first
	for i := 1; i < len(ep.Episodes); i++ {
		if cur.NextEpisodeID == "" {
			return nil, fmt.Errorf("no episode after %s in catalog, %d more requested",
				cur.ID, len(ep.Episodes)-i)
		}
		next, err := r.titles.GetTitle(ctx, cur.NextEpisodeID)
		if err != nil {
			return nil, fmt.Errorf("fetch chained episode %s: %w", cur.NextEpisodeID, err)
		}
		titles = append(titles, next)
		cur = next
	}
	return titles, nil
}

// assemble converts a catalog title to the output record shape.
func (r *Resolver) assemble(t *imdb.Title) ResolvedMedia {
	kind := "movie"
	if t.IsEpisode() {
		kind = "episode"
	}
	rec := ResolvedMedia{
		Title:          t.Title,
		Year:           t.Year,
		Kind:           kind,
		RuntimeMinutes: t.RuntimeMinutes,
		Season:         t.Season,
		Episode:        t.Episode,
		IDs:            map[string]string{"imdb": t.ID},
	}
	if t.Parent != nil {
		rec.Show = &ShowRef{
			Title: t.Parent.Title,
			Year:  t.Parent.Year,
			IDs:   map[string]string{"imdb": t.Parent.ID},
		}
	}
	return rec
}

// enrich merges cross-catalog ids into a record. Ids already present (from
// the catalogs that produced the match) are kept.
func (r *Resolver) enrich(ctx context.Context, rec *ResolvedMedia, t *imdb.Title) {
	var extra map[string]string
	switch {
	case rec.Kind == "episode" && t.Parent != nil:
		extra = r.ids.ResolveEpisodeIDs(ctx, t.Parent.Title, t.Season, t.Episode, t.Parent.Year, t.Parent.ID)
	case rec.Kind == "movie":
		extra = r.ids.ResolveMovieIDs(ctx, t.Title, t.Year)
	}
	mergeIDs(rec.IDs, extra)
}

// submitFingerprint best-effort stores the newly resolved file's fingerprint.
// Failures are logged and dropped; submission is not part of the resolution
// contract.
func (r *Resolver) submitFingerprint(ctx context.Context, hash string, size int64, duration float64, filename string, t *imdb.Title) {
	durationMS := duration * 1000
	if duration <= 0 {
		if t.RuntimeMinutes <= 0 {
			r.log.Debug("no duration or runtime known, skipping fingerprint submission", "hash", hash)
			return
		}
		durationMS = float64(t.RuntimeMinutes) * 60 * 1000
	}

	res, err := r.fingerprints.InsertHash(ctx, []opensubtitles.HashEntry{{
		Hash:       hash,
		SizeBytes:  size,
		IMDbID:     strings.TrimPrefix(t.ID, "tt"),
		DurationMS: durationMS,
		Filename:   filename,
	}})
	if err != nil {
		r.log.Warn("fingerprint submission failed", "hash", hash, "error", err)
		return
	}
	if !res.AcceptedHash(hash) {
		r.log.Debug("fingerprint not accepted", "hash", hash, "status", res.Status)
		return
	}
	r.log.Info("fingerprint submitted", "hash", hash, "imdb", t.ID)
}

func mergeIDs(dst, src map[string]string) {
	for k, v := range src {
		if _, ok := dst[k]; !ok {
			dst[k] = v
		}
	}
}
