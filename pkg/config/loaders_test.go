package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shuldan/appconfig/pkg/errors"
)

func TestYamlConfigLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appconfig.yaml")
	content := "store:\n  driver: sqlite3\n  dsn: app.db\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	values, err := NewYamlConfigLoader(path).Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	cfg := NewMapConfig(values)
	if cfg.GetString("store.driver") != "sqlite3" {
		t.Errorf("expected sqlite3, got %q", cfg.GetString("store.driver"))
	}
}

func TestYamlConfigLoaderMissingFile(t *testing.T) {
	_, err := NewYamlConfigLoader(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	if !errors.Is(err, ErrNoConfigSource) {
		t.Errorf("expected ErrNoConfigSource, got %v", err)
	}
}

func TestYamlConfigLoaderMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("store: [unclosed"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	_, err := NewYamlConfigLoader(path).Load()
	if !errors.Is(err, ErrParseYAML) {
		t.Errorf("expected ErrParseYAML, got %v", err)
	}
}

func TestEnvConfigLoader(t *testing.T) {
	t.Setenv("APPCONFIG_STORE__DRIVER", "postgres")
	t.Setenv("APPCONFIG_STORE__VERBOSE", "true")
	t.Setenv("UNRELATED", "ignored")

	values, err := NewEnvConfigLoader("APPCONFIG_").Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	cfg := NewMapConfig(values)
	if cfg.GetString("store.driver") != "postgres" {
		t.Errorf("expected postgres, got %q", cfg.GetString("store.driver"))
	}
	if !cfg.GetBool("store.verbose") {
		t.Error("expected store.verbose = true")
	}
	if cfg.Has("unrelated") {
		t.Error("expected unprefixed variable ignored")
	}
}

func TestChainLoaderPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appconfig.yaml")
	content := "store:\n  driver: sqlite3\n  dsn: app.db\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	t.Setenv("APPCONFIG_STORE__DRIVER", "postgres")

	values, err := NewChainLoader(
		NewYamlConfigLoader(path),
		NewEnvConfigLoader("APPCONFIG_"),
	).Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	cfg := NewMapConfig(values)
	if cfg.GetString("store.driver") != "postgres" {
		t.Errorf("expected environment to override file, got %q", cfg.GetString("store.driver"))
	}
	if cfg.GetString("store.dsn") != "app.db" {
		t.Errorf("expected file value preserved, got %q", cfg.GetString("store.dsn"))
	}
}

func TestChainLoaderAllSourcesFail(t *testing.T) {
	_, err := NewChainLoader(
		NewYamlConfigLoader(filepath.Join(t.TempDir(), "nope.yaml")),
	).Load()
	if !errors.Is(err, ErrNoConfigSource) {
		t.Errorf("expected ErrNoConfigSource, got %v", err)
	}
}
