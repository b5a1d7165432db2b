package config

import "fmt"

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors. Returns a slice of error
// messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if c.TVDB.APIKey == "" {
		errs = append(errs, "tvdb.api_key: required")
	}
	if c.TMDB.APIKey == "" {
		errs = append(errs, "tmdb.api_key: required")
	}
	if c.Trakt.APIKey == "" {
		errs = append(errs, "trakt.api_key: required")
	}
	if c.OpenSubtitles.UserAgent == "" {
		errs = append(errs, "opensubtitles.user_agent: required")
	}

	return errs
}
