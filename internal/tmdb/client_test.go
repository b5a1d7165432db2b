package tmdb

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SearchTV(t *testing.T) {
	// Mock TMDB API
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/search/tv", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "The Flash", r.URL.Query().Get("query"))
		assert.Equal(t, "2014", r.URL.Query().Get("first_air_date_year"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"results":[
			{"id":60735,"name":"The Flash","first_air_date":"2014-10-07"}
		]}`)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	results, err := client.SearchTV(context.Background(), "The Flash", 2014)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 60735, results[0].ID)
	assert.Equal(t, "The Flash", results[0].Name)
	assert.Equal(t, 2014, results[0].Year())
}

func TestClient_SearchTV_NoYear(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("first_air_date_year"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"results":[]}`)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	results, err := client.SearchTV(context.Background(), "anything", 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestClient_SearchMovie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/search/movie", r.URL.Path)
		assert.Equal(t, "300", r.URL.Query().Get("query"))
		assert.Equal(t, "2006", r.URL.Query().Get("year"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"results":[
			{"id":1271,"title":"300","release_date":"2006-12-09"},
			{"id":428606,"title":"300: Rise of an Empire","release_date":"2014-03-05"}
		]}`)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	results, err := client.SearchMovie(context.Background(), "300", 2006)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 1271, results[0].ID)
	assert.Equal(t, "300", results[0].Title)
	assert.Equal(t, 2006, results[0].Year())
}

func TestClient_EpisodeExternalIDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/tv/60735/season/4/episode/19/external_ids", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":1447023,"tvdb_id":6564296,"imdb_id":"tt6741970"}`)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	ids, err := client.EpisodeExternalIDs(context.Background(), 60735, 4, 19)
	require.NoError(t, err)
	assert.Equal(t, 1447023, ids.ID)
	assert.Equal(t, 6564296, ids.TVDBID)
	assert.Equal(t, "tt6741970", ids.IMDbID)
}

func TestClient_EpisodeExternalIDs_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	ids, err := client.EpisodeExternalIDs(context.Background(), 1, 99, 1)
	assert.Nil(t, ids)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_SearchTV_Cached(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"results":[{"id":60735,"name":"The Flash","first_air_date":"2014-10-07"}]}`)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	// First call hits the server
	first, err := client.SearchTV(context.Background(), "The Flash", 2014)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, int32(1), calls.Load())

	// Second identical call is served from cache
	second, err := client.SearchTV(context.Background(), "The Flash", 2014)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load(), "second call should not hit the server")

	// Different year is a different cache key
	_, err = client.SearchTV(context.Background(), "The Flash", 1990)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.SearchMovie(context.Background(), "whatever", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
