package resolver

import (
	"context"
	"fmt"
	"math"

	"github.com/vmunix/scrobgo/internal/imdb"
	"github.com/vmunix/scrobgo/pkg/medianame"
)

// movieCandidate pairs a search result with its similarity to the parsed
// title.
type movieCandidate struct {
	result imdb.SearchResult
	ratio  float64
}

// searchTextMovie resolves a movie hint against the primary catalog. Fuzzy
// title similarity narrows the field; when the playback duration is known it
// arbitrates between near-duplicate titles (remakes, sequels) by runtime
// closeness, and rejects the whole match when even the closest candidate is
// implausibly far off.
func (r *Resolver) searchTextMovie(ctx context.Context, movie *medianame.Movie, duration float64) (*match, error) {
	results, err := r.titles.SearchTitle(ctx, movie.Title)
	if err != nil {
		return nil, &LookupError{Stage: "movie", Err: fmt.Errorf("search %q: %w", movie.Title, err)}
	}

	var candidates []movieCandidate
	for _, res := range results {
		if !imdb.ValidTitleID(res.ID) || res.Type == "TV series" {
			continue
		}
		candidates = append(candidates, movieCandidate{
			result: res,
			ratio:  fuzzRatio(movie.Title, res.Title),
		})
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	// Restrict to the parsed year, but only when the year actually appears
	// among the results; search data is too patchy to make it a hard filter.
	if movie.Year != 0 {
		var sameYear []movieCandidate
		for _, c := range candidates {
			if c.result.Year == movie.Year {
				sameYear = append(sameYear, c)
			}
		}
		if len(sameYear) > 0 {
			candidates = sameYear
		}
	}

	if duration <= 0 {
		return r.pickByRatio(ctx, candidates)
	}
	return r.pickByDuration(ctx, candidates, duration)
}

// pickByRatio takes the highest-similarity candidate, first-seen order
// breaking ties.
func (r *Resolver) pickByRatio(ctx context.Context, candidates []movieCandidate) (*match, error) {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.ratio > best.ratio {
			best = c
		}
	}

	title, err := r.titles.GetTitle(ctx, best.result.ID)
	if err != nil {
		return nil, &LookupError{Stage: "movie", Err: fmt.Errorf("fetch %s: %w", best.result.ID, err)}
	}
	return &match{title: title, ratio: best.ratio}, nil
}

// pickByDuration keeps the candidates whose similarity clears the
// mean-plus-stddev bar, then picks the one whose runtime is closest to the
// playback duration. A best candidate still off by more than half the
// duration is rejected entirely.
func (r *Resolver) pickByDuration(ctx context.Context, candidates []movieCandidate, duration float64) (*match, error) {
	mean, stddev := ratioStats(candidates)
	maxRatio := 0.0
	for _, c := range candidates {
		if c.ratio > maxRatio {
			maxRatio = c.ratio
		}
	}
	threshold := math.Min(mean+stddev, maxRatio)

	var (
		best          *imdb.Title
		bestRatio     float64
		bestCloseness = math.Inf(1)
	)
	for _, c := range candidates {
		if c.ratio < threshold {
			continue
		}

		title, err := r.titles.GetTitle(ctx, c.result.ID)
		if err != nil {
			r.log.Warn("movie candidate fetch failed", "imdb", c.result.ID, "error", err)
			continue
		}

		closeness := math.Inf(1)
		if title.RuntimeMinutes > 0 {
			closeness = math.Abs(float64(title.RuntimeMinutes*60) - duration)
		}
		if closeness < bestCloseness {
			best, bestRatio, bestCloseness = title, c.ratio, closeness
		}
	}

	if best == nil || bestCloseness > duration/2 {
		r.log.Debug("no movie candidate within plausible runtime",
			"duration", duration, "closest", bestCloseness)
		return nil, nil
	}
	return &match{title: best, ratio: bestRatio}, nil
}

func ratioStats(candidates []movieCandidate) (mean, stddev float64) {
	for _, c := range candidates {
		mean += c.ratio
	}
	mean /= float64(len(candidates))

	var variance float64
	for _, c := range candidates {
		variance += (c.ratio - mean) * (c.ratio - mean)
	}
	variance /= float64(len(candidates))
	return mean, math.Sqrt(variance)
}
