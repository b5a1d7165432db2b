package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/vmunix/scrobgo/internal/opensubtitles"
	"github.com/vmunix/scrobgo/pkg/medianame"
)

// fuzzAcceptThreshold is the minimum similarity for the episode fuzzy
// fallback when no candidate passes the strict quoted-show-prefix test.
const fuzzAcceptThreshold = 80

// searchByHash looks the file's hash up in the fingerprint database and
// disambiguates collisions with the parsed-name hint. A nil match with a nil
// error means the hash path found nothing and the text path should run. A
// failure fetching details for an already-accepted candidate is fatal and
// returned unwrapped.
func (r *Resolver) searchByHash(ctx context.Context, hash string, parsed medianame.Parsed) (*match, error) {
	byHash, err := r.fingerprints.CheckHash(ctx, []string{hash})
	if err != nil {
		return nil, &LookupError{Stage: "hash", Err: err}
	}

	candidates := byHash[hash]
	if len(candidates) == 0 {
		return nil, nil
	}

	var accepted *opensubtitles.HashCandidate
	if len(candidates) == 1 {
		// A single candidate of the wrong kind is not a usable signal.
		if kindMatchesParsed(candidates[0].Kind, parsed) {
			accepted = &candidates[0]
		}
	} else {
		if parsed.Episode != nil {
			accepted = pickEpisodeCandidate(candidates, parsed.Episode)
		}
		if accepted == nil && parsed.Movie != nil {
			accepted = pickMovieCandidate(candidates, parsed.Movie)
		}
	}
	if accepted == nil {
		return nil, nil
	}

	r.log.Debug("hash candidate accepted",
		"hash", hash, "name", accepted.Name, "imdb", accepted.IMDbID)

	title, err := r.titles.GetTitle(ctx, "tt"+accepted.IMDbID)
	if err != nil {
		return nil, fmt.Errorf("fetch accepted hash candidate tt%s: %w", accepted.IMDbID, err)
	}
	return &match{title: title}, nil
}

func kindMatchesParsed(kind string, parsed medianame.Parsed) bool {
	switch kind {
	case "episode":
		return parsed.Episode != nil
	case "movie":
		return parsed.Movie != nil
	default:
		return false
	}
}

// pickEpisodeCandidate selects among colliding hash candidates for an episode
// hint. Candidates of the wrong kind, season or episode number are rejected
// outright. Among the survivors the display name must start with the quoted
// show name; failing that, the best fuzzy similarity wins if it clears the
// acceptance threshold.
func pickEpisodeCandidate(candidates []opensubtitles.HashCandidate, ep *medianame.Episode) *opensubtitles.HashCandidate {
	season := ep.Season
	if ep.AbsoluteNumbering {
		season = 1
	}
	quoted := `"` + strings.ToLower(ep.Show) + `"`

	var fuzzy []*opensubtitles.HashCandidate
	for i := range candidates {
		c := &candidates[i]
		if c.Kind != "episode" || c.Season != season || c.Episode != ep.Episodes[0] {
			continue
		}
		if strings.HasPrefix(strings.ToLower(c.Name), quoted) {
			return c
		}
		fuzzy = append(fuzzy, c)
	}

	var best *opensubtitles.HashCandidate
	bestRatio := 0.0
	for _, c := range fuzzy {
		ratio := fuzzRatio(ep.Show, unquoteDisplayName(c.Name))
		if ratio > bestRatio {
			best, bestRatio = c, ratio
		}
	}
	if bestRatio >= fuzzAcceptThreshold {
		return best
	}
	return nil
}

// pickMovieCandidate selects the movie candidate whose display name is most
// similar to the parsed title, first-seen order breaking ties.
func pickMovieCandidate(candidates []opensubtitles.HashCandidate, movie *medianame.Movie) *opensubtitles.HashCandidate {
	var best *opensubtitles.HashCandidate
	bestRatio := 0.0
	for i := range candidates {
		c := &candidates[i]
		if c.Kind != "movie" {
			continue
		}
		ratio := fuzzRatio(movie.Title, c.Name)
		if best == nil || ratio > bestRatio {
			best, bestRatio = c, ratio
		}
	}
	return best
}
