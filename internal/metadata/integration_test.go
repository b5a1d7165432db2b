//go:build integration

package metadata

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmunix/scrobgo/pkg/tvdb"
)

func TestTVDB_Integration(t *testing.T) {
	apiKey := os.Getenv("TVDB_API_KEY")
	if apiKey == "" {
		t.Skip("TVDB_API_KEY not set")
	}

	client := tvdb.New(apiKey)
	ctx := context.Background()

	// Test search
	results, err := client.Search(ctx, "The Flash")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	// Find the 2014 series
	var flashID int
	for _, r := range results {
		if r.Name == "The Flash (2014)" || (r.Name == "The Flash" && r.Year == 2014) {
			flashID = r.ID
			break
		}
	}
	require.NotZero(t, flashID, "The Flash (2014) not found in search results")

	// Test get series
	series, err := client.GetSeries(ctx, flashID)
	require.NoError(t, err)
	require.Contains(t, series.Name, "Flash")

	// Test get episode
	episode, err := client.GetEpisode(ctx, flashID, 4, 19)
	require.NoError(t, err)
	require.Equal(t, "Fury Rogue", episode.Name)
}
