// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Log           LogConfig           `toml:"log"`
	Cache         CacheConfig         `toml:"cache"`
	TVDB          TVDBConfig          `toml:"tvdb"`
	TMDB          TMDBConfig          `toml:"tmdb"`
	Trakt         TraktConfig         `toml:"trakt"`
	OpenSubtitles OpenSubtitlesConfig `toml:"opensubtitles"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// CacheConfig locates the SQLite metadata cache.
type CacheConfig struct {
	Path string `toml:"path"`
}

type TVDBConfig struct {
	APIKey string `toml:"api_key"`
	URL    string `toml:"url"` // override, mainly for testing
}

type TMDBConfig struct {
	APIKey string `toml:"api_key"`
	URL    string `toml:"url"`
}

type TraktConfig struct {
	APIKey string `toml:"api_key"`
	URL    string `toml:"url"`
}

type OpenSubtitlesConfig struct {
	// UserAgent identifies this program to the fingerprint service; it must
	// be a registered agent string for submissions to be accepted.
	UserAgent string `toml:"user_agent"`
	Endpoint  string `toml:"endpoint"`
}

// Load reads and parses the configuration file, substituting environment
// variables. Unresolved variables are reported through a ConfigError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Cache.Path == "" {
		c.Cache.Path = "./data/scrobgo.db"
	}
	if c.OpenSubtitles.UserAgent == "" {
		c.OpenSubtitles.UserAgent = "scrobgo v1"
	}
}

// envVarPattern matches ${VAR_NAME} and ${VAR_NAME:-default}.
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// substituteEnvVars replaces ${VAR} references with environment variable
// values. ${VAR:-default} falls back to default when VAR is unset or empty;
// plain references to unset variables are left in place and reported.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	result := envVarPattern.ReplaceAllStringFunc(content, func(ref string) string {
		m := envVarPattern.FindStringSubmatch(ref)
		name, fallback := m[1], m[2]

		if value := os.Getenv(name); value != "" {
			return value
		}
		if strings.Contains(ref, ":-") {
			return fallback
		}
		missing = append(missing, name)
		return ref
	})
	return result, missing
}
