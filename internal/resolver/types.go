// Package resolver turns an ambiguous media file (name, hash, duration) into
// canonical movie or episode records. Resolution cascades: fingerprint hash
// lookup first, then text search against the catalogs, then give up with an
// empty result.
package resolver

import (
	"context"

	"github.com/vmunix/scrobgo/internal/imdb"
	"github.com/vmunix/scrobgo/internal/opensubtitles"
	"github.com/vmunix/scrobgo/internal/trakt"
	"github.com/vmunix/scrobgo/pkg/tvdb"
)

// Meta is the caller-supplied playback metadata. Only the filename is used
// for identification; other fields the player reports are ignored.
type Meta struct {
	Filename string `json:"filename"`
}

// ShowRef identifies the show an episode record belongs to.
type ShowRef struct {
	Title string            `json:"title"`
	Year  int               `json:"year,omitempty"`
	IDs   map[string]string `json:"ids,omitempty"`
}

// ResolvedMedia is one resolved movie or episode, with every external-catalog
// id known for it keyed by catalog name ("imdb", "tvdb", "tmdb", "trakt").
type ResolvedMedia struct {
	Title          string            `json:"title"`
	Year           int               `json:"year,omitempty"`
	Kind           string            `json:"kind"` // "movie" or "episode"
	RuntimeMinutes int               `json:"runtime_minutes,omitempty"`
	Season         int               `json:"season,omitempty"`
	Episode        int               `json:"episode,omitempty"`
	Show           *ShowRef          `json:"show,omitempty"`
	IDs            map[string]string `json:"ids,omitempty"`
}

// FingerprintService is the hash fingerprint database surface. Satisfied by
// *opensubtitles.Client.
type FingerprintService interface {
	CheckHash(ctx context.Context, hashes []string) (map[string][]opensubtitles.HashCandidate, error)
	InsertHash(ctx context.Context, entries []opensubtitles.HashEntry) (*opensubtitles.InsertResult, error)
}

// TitleCatalog is the primary catalog surface. Satisfied by *imdb.Client.
type TitleCatalog interface {
	SearchTitle(ctx context.Context, text string) ([]imdb.SearchResult, error)
	GetTitle(ctx context.Context, id string) (*imdb.Title, error)
	GetEpisodeListing(ctx context.Context, seriesID string) ([]imdb.Season, error)
}

// ShowCatalog is the secondary show-metadata surface. Satisfied by
// *tvdb.Client and by the cached *metadata.TVDBService.
type ShowCatalog interface {
	Search(ctx context.Context, query string) ([]tvdb.SearchResult, error)
	GetSeries(ctx context.Context, id int) (*tvdb.Series, error)
	GetEpisode(ctx context.Context, seriesID, season, episode int) (*tvdb.Episode, error)
}

// LinkService cross-references catalog ids. Satisfied by *trakt.Client.
type LinkService interface {
	SearchByTVDBEpisode(ctx context.Context, tvdbEpisodeID int) ([]trakt.SearchResult, error)
	GetEpisode(ctx context.Context, showSlug string, season, episode int) (*trakt.EpisodeInfo, error)
}

// IDResolver enriches resolved records with cross-catalog ids. Satisfied by
// *ids.Resolver.
type IDResolver interface {
	ResolveEpisodeIDs(ctx context.Context, show string, season, episode, year int, imdbID string) map[string]string
	ResolveMovieIDs(ctx context.Context, title string, year int) map[string]string
}

// match is the outcome of one resolution sub-path. Either title is set (a
// catalog record still to be assembled and possibly chained for multi-episode
// files) or records is (the degraded linking-service path assembles its
// records itself). show and episode carry linking-service data when it
// contributed to the match.
type match struct {
	title   *imdb.Title
	ratio   float64 // movie text path only, 0-100
	records []ResolvedMedia

	show    *trakt.ShowInfo
	episode *trakt.EpisodeInfo
}
