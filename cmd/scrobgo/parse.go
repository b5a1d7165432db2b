package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vmunix/scrobgo/pkg/medianame"
)

var parseCmd = &cobra.Command{
	Use:   "parse <filename>",
	Short: "Parse a media filename (local, no network)",
	Long: `Parse a media filename into its episode or movie interpretation
without contacting any catalog. Useful to check what the resolver will
search for.

Examples:
  scrobgo parse "The Flash (2014) - S04E19 - Fury Rogue.mkv"
  scrobgo parse "Notorious (1946).avi"`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	parsed := medianame.Parse(args[0])
	if parsed.Episode == nil && parsed.Movie == nil {
		return fmt.Errorf("no interpretation for %q", args[0])
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(parsed)
}
