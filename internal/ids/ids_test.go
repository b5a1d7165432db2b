package ids

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/scrobgo/internal/tmdb"
	"github.com/vmunix/scrobgo/pkg/tvdb"
)

// fakeShows is a canned ShowCatalog.
type fakeShows struct {
	searchResults []tvdb.SearchResult
	searchErr     error
	series        map[int]*tvdb.Series
	episodes      map[int]*tvdb.Episode // keyed by series id
	episodeErr    error
}

func (f *fakeShows) Search(ctx context.Context, query string) ([]tvdb.SearchResult, error) {
	return f.searchResults, f.searchErr
}

func (f *fakeShows) GetSeries(ctx context.Context, id int) (*tvdb.Series, error) {
	s, ok := f.series[id]
	if !ok {
		return nil, tvdb.ErrNotFound
	}
	return s, nil
}

func (f *fakeShows) GetEpisode(ctx context.Context, seriesID, season, episode int) (*tvdb.Episode, error) {
	if f.episodeErr != nil {
		return nil, f.episodeErr
	}
	e, ok := f.episodes[seriesID]
	if !ok {
		return nil, tvdb.ErrNotFound
	}
	return e, nil
}

// fakeMovies is a canned MovieCatalog.
type fakeMovies struct {
	tvResults    []tmdb.TVResult
	tvErr        error
	movieResults []tmdb.MovieResult
	movieErr     error
	externalIDs  map[int]*tmdb.ExternalIDs // keyed by tv id
}

func (f *fakeMovies) SearchTV(ctx context.Context, query string, year int) ([]tmdb.TVResult, error) {
	return f.tvResults, f.tvErr
}

func (f *fakeMovies) SearchMovie(ctx context.Context, query string, year int) ([]tmdb.MovieResult, error) {
	return f.movieResults, f.movieErr
}

func (f *fakeMovies) EpisodeExternalIDs(ctx context.Context, tvID, season, episode int) (*tmdb.ExternalIDs, error) {
	ids, ok := f.externalIDs[tvID]
	if !ok {
		return nil, tmdb.ErrNotFound
	}
	return ids, nil
}

func TestResolveEpisodeIDs_BothCatalogs(t *testing.T) {
	shows := &fakeShows{
		searchResults: []tvdb.SearchResult{
			{ID: 279121, Name: "The Flash (2014)", Year: 2014, FirstAired: "2014-10-07"},
		},
		series: map[int]*tvdb.Series{
			279121: {ID: 279121, Name: "The Flash (2014)", Aliases: []string{"The Flash"}, FirstAired: "2014-10-07"},
		},
		episodes: map[int]*tvdb.Episode{
			279121: {ID: 6564296, Season: 4, Episode: 19, Name: "Fury Rogue"},
		},
	}
	movies := &fakeMovies{
		tvResults: []tmdb.TVResult{
			{ID: 60735, Name: "The Flash", FirstAirDate: "2014-10-07"},
		},
		externalIDs: map[int]*tmdb.ExternalIDs{
			60735: {ID: 1447023, TVDBID: 6564296, IMDbID: "tt6741970"},
		},
	}

	r := New(shows, movies, nil)
	ids := r.ResolveEpisodeIDs(context.Background(), "The Flash (2014)", 4, 19, 2014, "")

	assert.Equal(t, map[string]string{
		"tvdb": "6564296",
		"tmdb": "1447023",
	}, ids)
}

func TestResolveEpisodeIDs_TMDBNameMatchesAlias(t *testing.T) {
	shows := &fakeShows{
		searchResults: []tvdb.SearchResult{{ID: 1, Name: "Show (US)"}},
		series: map[int]*tvdb.Series{
			1: {ID: 1, Name: "Show (US)", Aliases: []string{"Show"}},
		},
		episodes: map[int]*tvdb.Episode{
			1: {ID: 100},
		},
	}
	movies := &fakeMovies{
		// TMDB knows the show under its alias, not the query name.
		tvResults:   []tmdb.TVResult{{ID: 7, Name: "Show"}},
		externalIDs: map[int]*tmdb.ExternalIDs{7: {ID: 700, TVDBID: 100}},
	}

	r := New(shows, movies, nil)
	ids := r.ResolveEpisodeIDs(context.Background(), "Show (US)", 1, 1, 0, "")

	assert.Equal(t, "700", ids["tmdb"])
}

func TestResolveEpisodeIDs_TVDBIDDisagreement(t *testing.T) {
	shows := &fakeShows{
		searchResults: []tvdb.SearchResult{{ID: 1, Name: "Show"}},
		series:        map[int]*tvdb.Series{1: {ID: 1, Name: "Show"}},
		episodes:      map[int]*tvdb.Episode{1: {ID: 100}},
	}
	movies := &fakeMovies{
		tvResults: []tmdb.TVResult{{ID: 7, Name: "Show"}},
		// TMDB points at a different TVDB episode: wrong show homonym.
		externalIDs: map[int]*tmdb.ExternalIDs{7: {ID: 700, TVDBID: 999}},
	}

	r := New(shows, movies, nil)
	ids := r.ResolveEpisodeIDs(context.Background(), "Show", 1, 1, 0, "")

	assert.Equal(t, "100", ids["tvdb"])
	assert.NotContains(t, ids, "tmdb", "conflicting TVDB ids must discard the TMDB hit")
}

func TestResolveEpisodeIDs_YearDisambiguation(t *testing.T) {
	shows := &fakeShows{
		searchResults: []tvdb.SearchResult{
			{ID: 78650, Name: "The Flash", FirstAired: "1990-09-20"},
			{ID: 279121, Name: "The Flash (2014)", FirstAired: "2014-10-07"},
		},
		series: map[int]*tvdb.Series{
			78650:  {ID: 78650, Name: "The Flash", FirstAired: "1990-09-20"},
			279121: {ID: 279121, Name: "The Flash (2014)", FirstAired: "2014-10-07"},
		},
		episodes: map[int]*tvdb.Episode{
			78650:  {ID: 1},
			279121: {ID: 6564296},
		},
	}
	movies := &fakeMovies{}

	r := New(shows, movies, nil)
	// The 1990 show ranks first, but the year hint picks the 2014 one.
	ids := r.ResolveEpisodeIDs(context.Background(), "The Flash", 4, 19, 2014, "")

	assert.Equal(t, "6564296", ids["tvdb"])
}

func TestResolveEpisodeIDs_IMDbIDOverridesYear(t *testing.T) {
	shows := &fakeShows{
		searchResults: []tvdb.SearchResult{
			{ID: 78650, Name: "The Flash", FirstAired: "1990-09-20", IMDbID: "tt0098798"},
		},
		series: map[int]*tvdb.Series{
			78650: {ID: 78650, Name: "The Flash", FirstAired: "1990-09-20", IMDbID: "tt0098798"},
		},
		episodes: map[int]*tvdb.Episode{78650: {ID: 42}},
	}
	movies := &fakeMovies{}

	r := New(shows, movies, nil)
	// Year says 2014, but the imdb id matches the 1990 show: trust the id.
	ids := r.ResolveEpisodeIDs(context.Background(), "The Flash", 1, 1, 2014, "tt0098798")

	assert.Equal(t, "42", ids["tvdb"])
}

func TestResolveEpisodeIDs_AllFailuresYieldEmptyMap(t *testing.T) {
	shows := &fakeShows{searchErr: errors.New("tvdb down")}
	movies := &fakeMovies{tvErr: errors.New("tmdb down")}

	r := New(shows, movies, nil)
	ids := r.ResolveEpisodeIDs(context.Background(), "Show", 1, 1, 0, "")

	assert.Empty(t, ids)
}

func TestResolveEpisodeIDs_TVDBEpisodeMissingStillTriesTMDB(t *testing.T) {
	shows := &fakeShows{
		searchResults: []tvdb.SearchResult{{ID: 1, Name: "Show"}},
		series:        map[int]*tvdb.Series{1: {ID: 1, Name: "Show"}},
		episodeErr:    tvdb.ErrNotFound,
	}
	movies := &fakeMovies{
		tvResults:   []tmdb.TVResult{{ID: 7, Name: "Show"}},
		externalIDs: map[int]*tmdb.ExternalIDs{7: {ID: 700, TVDBID: 12345}},
	}

	r := New(shows, movies, nil)
	ids := r.ResolveEpisodeIDs(context.Background(), "Show", 1, 1, 0, "")

	assert.NotContains(t, ids, "tvdb")
	assert.Equal(t, "700", ids["tmdb"], "no TVDB id to conflict with, so the TMDB hit stands")
}

func TestResolveMovieIDs_ExactTitleWins(t *testing.T) {
	movies := &fakeMovies{
		movieResults: []tmdb.MovieResult{
			{ID: 428606, Title: "300: Rise of an Empire"},
			{ID: 1271, Title: "300"},
		},
	}

	r := New(&fakeShows{}, movies, nil)
	ids := r.ResolveMovieIDs(context.Background(), "300", 2006)

	assert.Equal(t, map[string]string{"tmdb": "1271"}, ids)
}

func TestResolveMovieIDs_YearRejectsRemake(t *testing.T) {
	movies := &fakeMovies{
		movieResults: []tmdb.MovieResult{
			{ID: 24245, Title: "Notorious", ReleaseDate: "2009-01-16"},
			{ID: 303, Title: "Notorious", ReleaseDate: "1946-08-15"},
		},
	}

	r := New(&fakeShows{}, movies, nil)
	ids := r.ResolveMovieIDs(context.Background(), "Notorious", 1946)

	assert.Equal(t, map[string]string{"tmdb": "303"}, ids,
		"the year hint must skip the same-named remake")
}

func TestResolveEpisodeIDs_TMDBYearMismatchDiscarded(t *testing.T) {
	shows := &fakeShows{} // nothing on TVDB
	movies := &fakeMovies{
		// Same name, wrong era: first-aired year contradicts the hint.
		tvResults:   []tmdb.TVResult{{ID: 236, Name: "The Flash", FirstAirDate: "1990-09-20"}},
		externalIDs: map[int]*tmdb.ExternalIDs{236: {ID: 63776, TVDBID: 4}},
	}

	r := New(shows, movies, nil)
	ids := r.ResolveEpisodeIDs(context.Background(), "The Flash", 4, 19, 2014, "")

	assert.Empty(t, ids)
}

func TestResolveMovieIDs_NoExactMatch(t *testing.T) {
	movies := &fakeMovies{
		movieResults: []tmdb.MovieResult{
			{ID: 428606, Title: "300: Rise of an Empire"},
		},
	}

	r := New(&fakeShows{}, movies, nil)
	ids := r.ResolveMovieIDs(context.Background(), "300", 0)

	assert.Empty(t, ids)
}

func TestFirstAiredYear(t *testing.T) {
	assert.Equal(t, 2014, firstAiredYear("2014-10-07"))
	assert.Equal(t, 0, firstAiredYear(""))
	assert.Equal(t, 0, firstAiredYear("unknown"))
}
