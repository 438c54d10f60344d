package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-gamefinder/pkg/finder"
	"github.com/goliatone/go-gamefinder/pkg/recommend"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range []string{
		"GAMEFINDER_CONFIG", "GEMINI_API_KEYS", "GAMEFINDER_LLM_API_KEYS",
		"GAMEFINDER_SERVER_ADDR", "GAMEFINDER_LLM_MODEL", "GAMEFINDER_FINDER_ENDPOINT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":5000" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Fatalf("unexpected read timeout %s", cfg.Server.ReadTimeout)
	}
	if diff := cmp.Diff([]string{"*"}, cfg.Server.AllowedOrigins); diff != "" {
		t.Fatalf("origins mismatch (-want +got):\n%s", diff)
	}
	if cfg.LLM.Model != recommend.DefaultModel {
		t.Fatalf("unexpected model %q", cfg.LLM.Model)
	}
	if keys := cfg.LLM.Keys(); len(keys) != 0 {
		t.Fatalf("expected no keys, got %v", keys)
	}
	if got := cfg.Endpoint(""); got != finder.DefaultEndpoint {
		t.Fatalf("unexpected endpoint %q", got)
	}
}

func TestLoadGeminiKeysFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("GEMINI_API_KEYS", " k1, k2 ,,k3")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"k1", "k2", "k3"}, cfg.LLM.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileAndPrefixedEnv(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "gamefinder.yaml")
	content := `server:
  addr: ":8080"
  allowed_origins: "https://a.example, https://b.example"
  write_timeout: 5s
finder:
  endpoint: "https://api.example/find_games"
llm:
  api_keys: "file-key"
catalog:
  path: "catalog.yaml"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GAMEFINDER_LLM_MODEL", "gemini-test")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":8080" || cfg.Server.WriteTimeout != 5*time.Second {
		t.Fatalf("unexpected server config %+v", cfg.Server)
	}
	if diff := cmp.Diff([]string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins); diff != "" {
		t.Fatalf("origins mismatch (-want +got):\n%s", diff)
	}
	if cfg.LLM.Model != "gemini-test" {
		t.Fatalf("expected env override, got %q", cfg.LLM.Model)
	}
	if diff := cmp.Diff([]string{"file-key"}, cfg.LLM.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if cfg.Catalog.Path != "catalog.yaml" {
		t.Fatalf("unexpected catalog path %q", cfg.Catalog.Path)
	}
	if got := cfg.Endpoint("http://local/find_games"); got != "https://api.example/find_games" {
		t.Fatalf("unexpected endpoint %q", got)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestEndpointFallback(t *testing.T) {
	var cfg Config
	if got := cfg.Endpoint("http://local/find_games"); got != "http://local/find_games" {
		t.Fatalf("unexpected endpoint %q", got)
	}
}
