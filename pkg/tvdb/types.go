// Package tvdb provides a client for the TVDB API v4.
package tvdb

// SearchResult represents a series search result.
type SearchResult struct {
	ID         int    `json:"tvdb_id"`
	Name       string `json:"name"`
	Year       int    `json:"year"`
	FirstAired string `json:"first_air_time"` // YYYY-MM-DD
	IMDbID     string `json:"imdb_id"`        // from remote ids, may be empty
}

// Series represents a TV series with its alternate names.
type Series struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Aliases    []string `json:"aliases"`
	FirstAired string   `json:"firstAired"` // YYYY-MM-DD
	IMDbID     string   `json:"imdbId"`
}

// Episode represents a single episode of a series.
type Episode struct {
	ID      int    `json:"id"`
	Season  int    `json:"seasonNumber"`
	Episode int    `json:"number"`
	Name    string `json:"name"`
	Aired   string `json:"aired"` // YYYY-MM-DD
	Runtime int    `json:"runtime"`
}

// loginResponse is the TVDB login API response.
type loginResponse struct {
	Status string `json:"status"`
	Data   struct {
		Token string `json:"token"`
	} `json:"data"`
}

type remoteID struct {
	ID         string `json:"id"`
	SourceName string `json:"sourceName"`
}

// searchResponse is the TVDB search API response.
type searchResponse struct {
	Status string `json:"status"`
	Data   []struct {
		ObjectID     string     `json:"objectID"`
		Name         string     `json:"name"`
		Year         string     `json:"year"`
		FirstAirTime string     `json:"first_air_time"`
		TVDBID       string     `json:"tvdb_id"`
		RemoteIDs    []remoteID `json:"remote_ids"`
	} `json:"data"`
}

// seriesResponse is the TVDB extended series API response.
type seriesResponse struct {
	Status string `json:"status"`
	Data   struct {
		ID      int    `json:"id"`
		Name    string `json:"name"`
		Aliases []struct {
			Language string `json:"language"`
			Name     string `json:"name"`
		} `json:"aliases"`
		FirstAired string     `json:"firstAired"`
		RemoteIDs  []remoteID `json:"remoteIds"`
	} `json:"data"`
}

// episodesResponse is the TVDB series episodes API response.
type episodesResponse struct {
	Status string `json:"status"`
	Data   struct {
		Episodes []struct {
			ID           int    `json:"id"`
			SeasonNumber int    `json:"seasonNumber"`
			Number       int    `json:"number"`
			Name         string `json:"name"`
			Aired        string `json:"aired"`
			Runtime      int    `json:"runtime"`
		} `json:"episodes"`
	} `json:"data"`
}
