package resolver_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/scrobgo/internal/imdb"
	"github.com/vmunix/scrobgo/internal/opensubtitles"
	"github.com/vmunix/scrobgo/internal/resolver"
	"github.com/vmunix/scrobgo/internal/resolver/mocks"
	"github.com/vmunix/scrobgo/internal/trakt"
)

// env bundles a resolver with mocked collaborators. Calls without an EXPECT
// fail the test, so "this service is never hit" assertions are implicit.
type env struct {
	fingerprints *mocks.MockFingerprintService
	titles       *mocks.MockTitleCatalog
	shows        *mocks.MockShowCatalog
	link         *mocks.MockLinkService
	ids          *mocks.MockIDResolver
	resolver     *resolver.Resolver
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctrl := gomock.NewController(t)

	e := &env{
		fingerprints: mocks.NewMockFingerprintService(ctrl),
		titles:       mocks.NewMockTitleCatalog(ctrl),
		shows:        mocks.NewMockShowCatalog(ctrl),
		link:         mocks.NewMockLinkService(ctrl),
		ids:          mocks.NewMockIDResolver(ctrl),
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.resolver = resolver.New(e.fingerprints, e.titles, e.shows, e.link, e.ids, log)
	return e
}

// Shared fixtures: The Flash (2014) 4x19 "Fury Rogue".

func furyRogueTitle() *imdb.Title {
	return &imdb.Title{
		ID:             "tt6741970",
		Type:           "tv_episode",
		Title:          "Fury Rogue",
		Year:           2018,
		RuntimeMinutes: 42,
		Season:         4,
		Episode:        19,
		Parent: &imdb.ParentTitle{
			ID:    "tt3107288",
			Title: "The Flash",
			Year:  2014,
		},
		NextEpisodeID: "tt6741974",
	}
}

func flashTraktResult() trakt.SearchResult {
	return trakt.SearchResult{
		Type: "episode",
		Episode: &trakt.EpisodeInfo{
			Season: 4,
			Number: 19,
			Title:  "Fury Rogue",
			IDs: trakt.IDSet{
				Trakt: 2795858,
				TVDB:  6569894,
				IMDB:  "tt6741970",
				TMDB:  1458444,
			},
		},
		Show: &trakt.ShowInfo{
			Title: "The Flash",
			Year:  2014,
			IDs: trakt.IDSet{
				Trakt: 60300,
				Slug:  "the-flash-2014",
				TVDB:  279121,
				IMDB:  "tt3107288",
				TMDB:  60735,
			},
		},
	}
}

func TestResolve_UnparsableFilename(t *testing.T) {
	e := newEnv(t)

	records, err := e.resolver.Resolve(context.Background(), resolver.Meta{Filename: ""}, "", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestResolve_SubmissionFailureIgnored(t *testing.T) {
	e := newEnv(t)

	e.fingerprints.EXPECT().
		CheckHash(gomock.Any(), []string{"6763a1dba52355e0"}).
		Return(map[string][]opensubtitles.HashCandidate{}, nil)
	e.titles.EXPECT().
		SearchTitle(gomock.Any(), "Notorious").
		Return([]imdb.SearchResult{
			{ID: "tt0038787", Title: "Notorious", Year: 1946, Type: "feature"},
		}, nil)
	e.titles.EXPECT().
		GetTitle(gomock.Any(), "tt0038787").
		Return(&imdb.Title{
			ID: "tt0038787", Type: "feature", Title: "Notorious",
			Year: 1946, RuntimeMinutes: 102,
		}, nil)
	e.fingerprints.EXPECT().
		InsertHash(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("service unavailable"))
	e.ids.EXPECT().
		ResolveMovieIDs(gomock.Any(), "Notorious", 1946).
		Return(map[string]string{"tmdb": "303"})

	records, err := e.resolver.Resolve(context.Background(),
		resolver.Meta{Filename: "Notorious (1946).avi"}, "6763a1dba52355e0", 733468672, 6132)
	require.NoError(t, err, "submission failures must not fail the resolution")
	require.Len(t, records, 1)
	assert.Equal(t, "Notorious", records[0].Title)
	assert.Equal(t, map[string]string{"imdb": "tt0038787", "tmdb": "303"}, records[0].IDs)
}

func TestResolve_FingerprintEntryFields(t *testing.T) {
	e := newEnv(t)

	e.fingerprints.EXPECT().
		CheckHash(gomock.Any(), gomock.Any()).
		Return(map[string][]opensubtitles.HashCandidate{}, nil)
	e.titles.EXPECT().
		SearchTitle(gomock.Any(), "Notorious").
		Return([]imdb.SearchResult{
			{ID: "tt0038787", Title: "Notorious", Year: 1946, Type: "feature"},
		}, nil)
	e.titles.EXPECT().
		GetTitle(gomock.Any(), "tt0038787").
		Return(&imdb.Title{
			ID: "tt0038787", Type: "feature", Title: "Notorious",
			Year: 1946, RuntimeMinutes: 102,
		}, nil)
	e.fingerprints.EXPECT().
		InsertHash(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entries []opensubtitles.HashEntry) (*opensubtitles.InsertResult, error) {
			require.Len(t, entries, 1)
			assert.Equal(t, "6763a1dba52355e0", entries[0].Hash)
			assert.Equal(t, int64(733468672), entries[0].SizeBytes)
			assert.Equal(t, "0038787", entries[0].IMDbID, "catalog id is submitted without the tt prefix")
			// No playback duration was supplied: derived from the runtime.
			assert.Equal(t, float64(102*60*1000), entries[0].DurationMS)
			assert.Equal(t, "Notorious (1946).avi", entries[0].Filename)
			return &opensubtitles.InsertResult{Status: "200 OK", Accepted: []string{entries[0].Hash}}, nil
		})
	e.ids.EXPECT().
		ResolveMovieIDs(gomock.Any(), "Notorious", 1946).
		Return(nil)

	_, err := e.resolver.Resolve(context.Background(),
		resolver.Meta{Filename: "Notorious (1946).avi"}, "6763a1dba52355e0", 733468672, 0)
	require.NoError(t, err)
}
