// Package imdb provides a client for the IMDb catalog: suggestion-based
// title search, full title details and per-series episode listings.
package imdb

import "regexp"

var titleIDPattern = regexp.MustCompile(`^tt\d+$`)

// ValidTitleID reports whether id looks like an IMDb title id ("tt" followed
// by digits). Search occasionally surfaces name and company ids; those must
// be filtered out before use.
func ValidTitleID(id string) bool {
	return titleIDPattern.MatchString(id)
}

// SearchResult is one entry of a title search.
type SearchResult struct {
	ID    string // "tt…"
	Title string
	Year  int
	Type  string // "feature", "TV series", "TV episode", "video", …
}

// ParentTitle identifies the show an episode belongs to.
type ParentTitle struct {
	ID    string
	Title string
	Year  int
}

// Title is a full catalog record for a movie or an episode.
type Title struct {
	ID             string
	Type           string // "feature", "tv_episode", "tv_series", …
	Title          string
	Year           int
	RuntimeMinutes int
	Season         int          // episodes only
	Episode        int          // episodes only
	Parent         *ParentTitle // episodes only
	NextEpisodeID  string       // episodes only, empty for the last aired
}

// IsEpisode reports whether the title is a TV episode.
func (t *Title) IsEpisode() bool {
	return t.Type == "tv_episode"
}

// EpisodeRef is an episode's position and id within a season listing.
type EpisodeRef struct {
	Episode int
	ID      string
}

// Season is one season of a series episode listing.
type Season struct {
	Season   int
	Episodes []EpisodeRef
}

// Wire shapes.

type suggestResponse struct {
	D []struct {
		ID   string `json:"id"`
		L    string `json:"l"`
		Y    int    `json:"y"`
		Q    string `json:"q"`
		QID  string `json:"qid"`
		Rank int    `json:"rank"`
	} `json:"d"`
}

type titleResponse struct {
	Data struct {
		TConst      string `json:"tconst"`
		Type        string `json:"type"`
		Title       string `json:"title"`
		Year        int    `json:"year"`
		RunningTime struct {
			Time int `json:"time"` // seconds
		} `json:"running_time"`
		Episode int `json:"episode"`
		Season  int `json:"season"`
		Series  *struct {
			TConst string `json:"tconst"`
			Title  string `json:"title"`
			Year   int    `json:"year"`
		} `json:"series"`
		NextEpisode string `json:"next_episode"` // "/title/tt…/"
	} `json:"data"`
}

type episodesResponse struct {
	Data struct {
		Seasons []struct {
			Season int `json:"season"`
			List   []struct {
				TConst  string `json:"tconst"`
				Episode int    `json:"episode"`
			} `json:"list"`
		} `json:"seasons"`
	} `json:"data"`
}
