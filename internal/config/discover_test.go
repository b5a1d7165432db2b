package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestDiscoverEnvVar(t *testing.T) {
	path := writeConfig(t, `[log]`+"\n"+`level = "info"`)
	t.Setenv("SCROBGO_CONFIG", path)

	got, err := Discover()
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if got != path {
		t.Errorf("Discover() = %q, want %q", got, path)
	}
}

func TestDiscoverEnvVarMissingFile(t *testing.T) {
	t.Setenv("SCROBGO_CONFIG", "/nonexistent/config.toml")

	if _, err := Discover(); err == nil {
		t.Fatal("Discover() expected error when SCROBGO_CONFIG points nowhere")
	}
}

func TestDiscoverCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`[log]`), 0644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)
	t.Setenv("SCROBGO_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	got, err := Discover()
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if got != "./config.toml" {
		t.Errorf("Discover() = %q, want ./config.toml", got)
	}
}

func TestDiscoverNotFound(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("SCROBGO_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	if _, err := Discover(); err == nil {
		t.Fatal("Discover() expected error when no config exists")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/xdg")

	want := filepath.Join("/custom/xdg", "scrobgo", "config.toml")
	if got := DefaultPath(); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}
