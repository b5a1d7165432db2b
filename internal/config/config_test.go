package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"

[cache]
path = "/var/lib/scrobgo/cache.db"

[tvdb]
api_key = "tvdb-key"

[tmdb]
api_key = "tmdb-key"

[trakt]
api_key = "trakt-key"

[opensubtitles]
user_agent = "scrobgo v1"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Cache.Path != "/var/lib/scrobgo/cache.db" {
		t.Errorf("Cache.Path = %q", cfg.Cache.Path)
	}
	if cfg.TVDB.APIKey != "tvdb-key" {
		t.Errorf("TVDB.APIKey = %q", cfg.TVDB.APIKey)
	}
	if cfg.Trakt.APIKey != "trakt-key" {
		t.Errorf("Trakt.APIKey = %q", cfg.Trakt.APIKey)
	}
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want none", errs)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
[tvdb]
api_key = "k"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Cache.Path != "./data/scrobgo.db" {
		t.Errorf("Cache.Path = %q, want ./data/scrobgo.db", cfg.Cache.Path)
	}
	if cfg.OpenSubtitles.UserAgent == "" {
		t.Error("OpenSubtitles.UserAgent default not applied")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}

func TestLoadMissingEnvVar(t *testing.T) {
	path := writeConfig(t, `
[tvdb]
api_key = "${SCROBGO_TEST_UNSET_VAR}"
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for unresolved variable")
	}
	cfgErr, ok := err.(*ConfigError)
	if !ok {
		t.Fatalf("error type = %T, want *ConfigError", err)
	}
	if len(cfgErr.Missing) != 1 || cfgErr.Missing[0] != "SCROBGO_TEST_UNSET_VAR" {
		t.Errorf("Missing = %v", cfgErr.Missing)
	}
}

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("SCROBGO_TEST_KEY", "secret")

	tests := []struct {
		name        string
		content     string
		want        string
		wantMissing []string
	}{
		{
			name:    "set variable",
			content: `api_key = "${SCROBGO_TEST_KEY}"`,
			want:    `api_key = "secret"`,
		},
		{
			name:    "default used when unset",
			content: `url = "${SCROBGO_TEST_NOPE:-http://localhost}"`,
			want:    `url = "http://localhost"`,
		},
		{
			name:    "default ignored when set",
			content: `api_key = "${SCROBGO_TEST_KEY:-fallback}"`,
			want:    `api_key = "secret"`,
		},
		{
			name:        "missing reported and left in place",
			content:     `api_key = "${SCROBGO_TEST_NOPE}"`,
			want:        `api_key = "${SCROBGO_TEST_NOPE}"`,
			wantMissing: []string{"SCROBGO_TEST_NOPE"},
		},
		{
			name:    "no references",
			content: `level = "info"`,
			want:    `level = "info"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, missing := substituteEnvVars(tt.content)
			if got != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
			if len(missing) != len(tt.wantMissing) {
				t.Fatalf("missing = %v, want %v", missing, tt.wantMissing)
			}
			for i := range missing {
				if missing[i] != tt.wantMissing[i] {
					t.Errorf("missing[%d] = %q, want %q", i, missing[i], tt.wantMissing[i])
				}
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "verbose"

	errs := cfg.Validate()
	if len(errs) == 0 {
		t.Fatal("Validate() = no errors, want several")
	}

	joined := strings.Join(errs, "\n")
	for _, want := range []string{"log.level", "tvdb.api_key", "tmdb.api_key", "trakt.api_key", "opensubtitles.user_agent"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Validate() missing %q in %v", want, errs)
		}
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{
		Path:    "config.toml",
		Missing: []string{"TVDB_API_KEY"},
		Errors:  []string{"trakt.api_key: required"},
	}

	msg := err.Error()
	if !strings.Contains(msg, "TVDB_API_KEY") {
		t.Errorf("Error() = %q, want missing variable named", msg)
	}
	if !strings.Contains(msg, "trakt.api_key") {
		t.Errorf("Error() = %q, want validation error included", msg)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[opensubtitles]") {
		t.Error("default config missing opensubtitles section")
	}
}
