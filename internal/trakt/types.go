// Package trakt provides a client for the Trakt.tv API, used to link
// catalog ids from other services to Trakt entries.
package trakt

// IDSet holds the cross-service ids Trakt knows for an entry. Zero values
// mean the service has no id on file.
type IDSet struct {
	Trakt int    `json:"trakt"`
	Slug  string `json:"slug"`
	IMDB  string `json:"imdb"`
	TMDB  int    `json:"tmdb"`
	TVDB  int    `json:"tvdb"`
}

// EpisodeInfo is a Trakt episode entry.
type EpisodeInfo struct {
	Season  int    `json:"season"`
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Runtime int    `json:"runtime"` // minutes; extended=full only
	// FirstAired is an RFC 3339 timestamp; extended=full only.
	FirstAired string `json:"first_aired"`
	IDs        IDSet  `json:"ids"`
}

// ShowInfo is a Trakt show entry.
type ShowInfo struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	IDs   IDSet  `json:"ids"`
}

// SearchResult is one entry of a Trakt id-lookup response.
type SearchResult struct {
	Type    string       `json:"type"`
	Episode *EpisodeInfo `json:"episode"`
	Show    *ShowInfo    `json:"show"`
}
