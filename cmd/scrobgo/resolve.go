package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vmunix/scrobgo/internal/resolver"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags]",
	Short: "Identify a media file",
	Long: `Resolve a media file to the movie or episode(s) it contains.

The file is described by its metadata (--meta, a JSON object carrying
at least "filename"), its fingerprint hash (--hash), size in bytes
(--size) and playback duration in seconds (--duration). Output is a
JSON list with one record per movie or episode; a file that cannot be
identified yields an empty list.

Examples:
  scrobgo resolve --meta '{"filename":"The Flash (2014) - S04E19 - Fury Rogue.mkv"}' \
      --hash 79418a844a7ff565 --size 1562178891 --duration 2520
  scrobgo resolve --meta '{"filename":"Notorious (1946).avi"}' --duration 6132`,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().String("meta", "", `File metadata as JSON (requires "filename")`)
	resolveCmd.Flags().String("hash", "", "64-bit file hash, lowercase hex")
	resolveCmd.Flags().Int64("size", 0, "File size in bytes")
	resolveCmd.Flags().Float64("duration", 0, "Playback duration in seconds")
	_ = resolveCmd.MarkFlagRequired("meta")
}

func runResolve(cmd *cobra.Command, args []string) error {
	metaJSON, _ := cmd.Flags().GetString("meta")
	hash, _ := cmd.Flags().GetString("hash")
	size, _ := cmd.Flags().GetInt64("size")
	duration, _ := cmd.Flags().GetFloat64("duration")

	var meta resolver.Meta
	if err := json.Unmarshal([]byte(metaJSON), &meta); err != nil {
		return fmt.Errorf("parsing --meta: %w", err)
	}
	if meta.Filename == "" {
		return fmt.Errorf(`--meta must carry a "filename"`)
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

	records, err := svcs.resolver.Resolve(cmd.Context(), meta, hash, size, duration)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
