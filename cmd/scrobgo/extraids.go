package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var extraidsCmd = &cobra.Command{
	Use:   "extraids [flags]",
	Short: "Look up external catalog ids",
	Long: `Look up TVDB and TMDB ids for an already identified title.

Episode mode takes --show, --season and --episode, with --year and
--imdb as optional disambiguation hints. Movie mode takes --movie and
optionally --year. Output is a JSON object mapping catalog name to id;
catalogs that could not be resolved are absent.

Examples:
  scrobgo extraids --show "The Flash" --season 4 --episode 19 --year 2014
  scrobgo extraids --movie "Notorious" --year 1946`,
	RunE: runExtraIDs,
}

func init() {
	rootCmd.AddCommand(extraidsCmd)
	extraidsCmd.Flags().String("show", "", "Show title (episode mode)")
	extraidsCmd.Flags().Int("season", 0, "Season number")
	extraidsCmd.Flags().Int("episode", 0, "Episode number")
	extraidsCmd.Flags().String("movie", "", "Movie title (movie mode)")
	extraidsCmd.Flags().Int("year", 0, "First-aired or release year hint")
	extraidsCmd.Flags().String("imdb", "", "Show's IMDb id hint (episode mode)")
}

func runExtraIDs(cmd *cobra.Command, args []string) error {
	show, _ := cmd.Flags().GetString("show")
	movie, _ := cmd.Flags().GetString("movie")
	season, _ := cmd.Flags().GetInt("season")
	episode, _ := cmd.Flags().GetInt("episode")
	year, _ := cmd.Flags().GetInt("year")
	imdbID, _ := cmd.Flags().GetString("imdb")

	if (show == "") == (movie == "") {
		return fmt.Errorf("exactly one of --show or --movie is required")
	}
	if show != "" && (season <= 0 || episode <= 0) {
		return fmt.Errorf("--show requires --season and --episode")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	svcs, err := buildServices(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = svcs.Close() }()

	var result map[string]string
	if show != "" {
		result = svcs.ids.ResolveEpisodeIDs(cmd.Context(), show, season, episode, year, imdbID)
	} else {
		result = svcs.ids.ResolveMovieIDs(cmd.Context(), movie, year)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
