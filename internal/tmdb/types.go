// Package tmdb provides a client for The Movie Database API.
package tmdb

import "strconv"

// TVResult is one entry of a TV search.
type TVResult struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	FirstAirDate string `json:"first_air_date"` // "2014-10-07"
}

// Year extracts the year from FirstAirDate.
func (r *TVResult) Year() int {
	return yearOf(r.FirstAirDate)
}

// MovieResult is one entry of a movie search.
type MovieResult struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"` // "2006-03-09"
}

// Year extracts the year from ReleaseDate.
func (r *MovieResult) Year() int {
	return yearOf(r.ReleaseDate)
}

// ExternalIDs maps a TMDB episode to other catalogs' ids.
type ExternalIDs struct {
	ID     int    `json:"id"` // TMDB episode id
	TVDBID int    `json:"tvdb_id"`
	IMDbID string `json:"imdb_id"`
}

type tvSearchResponse struct {
	Results []TVResult `json:"results"`
}

type movieSearchResponse struct {
	Results []MovieResult `json:"results"`
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
