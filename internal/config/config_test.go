package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "ankigreek.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// isolate runs the test from an empty directory with no config path set.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("ANKIGREEK_CONFIG", "")
	return dir
}

const validYAML = `
log:
  level: "debug"
  format: "json"

store:
  path: "/tmp/paradigms.db"

wiktionary:
  base_url: "http://localhost:8081/wiki/"
  timeout: "5s"
  interval: "250ms"
  offline: true

deck:
  separator: "<br><br>"
  output_dir: "/tmp/decks"

server:
  addr: ":9090"
  allowed_origins: "https://a.example, https://b.example"
`

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
		t.Errorf("log = %+v, want info/console", cfg.Log)
	}
	if cfg.Store.Path != "ankigreek.db" {
		t.Errorf("store.path = %q", cfg.Store.Path)
	}
	if cfg.Wiktionary.BaseURL != "https://en.wiktionary.org/wiki/" {
		t.Errorf("wiktionary.base_url = %q", cfg.Wiktionary.BaseURL)
	}
	if cfg.Wiktionary.Timeout != 20*time.Second || cfg.Wiktionary.Interval != time.Second {
		t.Errorf("wiktionary timings = %v/%v", cfg.Wiktionary.Timeout, cfg.Wiktionary.Interval)
	}
	if cfg.Wiktionary.Offline {
		t.Error("offline should default to false")
	}
	if cfg.Deck.Separator != "<br>" || cfg.Deck.OutputDir != "." {
		t.Errorf("deck = %+v", cfg.Deck)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("server.addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 10*time.Second || cfg.Server.WriteTimeout != 10*time.Minute {
		t.Errorf("server timeouts = %v/%v", cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	dir := isolate(t)
	path := writeYAML(t, dir, validYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Wiktionary.Timeout != 5*time.Second || cfg.Wiktionary.Interval != 250*time.Millisecond {
		t.Errorf("wiktionary timings = %v/%v", cfg.Wiktionary.Timeout, cfg.Wiktionary.Interval)
	}
	if !cfg.Wiktionary.Offline {
		t.Error("offline should be true")
	}
	if cfg.Deck.Separator != "<br><br>" {
		t.Errorf("deck.separator = %q", cfg.Deck.Separator)
	}
	want := []string{"https://a.example", "https://b.example"}
	if got := cfg.Server.Origins(); !slices.Equal(got, want) {
		t.Errorf("origins = %q, want %q", got, want)
	}
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	dir := isolate(t)
	writeYAML(t, dir, validYAML)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("server.addr = %q, want the file's value", cfg.Server.Addr)
	}
}

func TestLoad_EnvPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "elsewhere.yaml")
	if err := os.WriteFile(path, []byte(validYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ANKIGREEK_CONFIG", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.Path != "/tmp/paradigms.db" {
		t.Errorf("store.path = %q", cfg.Store.Path)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := isolate(t)
	path := writeYAML(t, dir, validYAML)
	t.Setenv("ANKIGREEK_LOG_LEVEL", "warn")
	t.Setenv("ANKIGREEK_DECK_OUTPUT_DIR", "/srv/decks")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Deck.OutputDir != "/srv/decks" {
		t.Errorf("deck.output_dir = %q", cfg.Deck.OutputDir)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for a missing config file")
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name, key, value, want string
	}{
		{"log level", "ANKIGREEK_LOG_LEVEL", "loud", "log.level"},
		{"log format", "ANKIGREEK_LOG_FORMAT", "xml", "log.format"},
		{"base url scheme", "ANKIGREEK_WIKTIONARY_URL", "ftp://example.org/", "base_url"},
		{"zero timeout", "ANKIGREEK_WIKTIONARY_TIMEOUT", "0s", "timeout"},
		{"negative interval", "ANKIGREEK_WIKTIONARY_INTERVAL", "-1s", "interval"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load("")
			if err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidate_EmptyPaths(t *testing.T) {
	cfg := Config{
		Log:        LogConfig{Level: "info", Format: "console"},
		Wiktionary: WiktionaryConfig{BaseURL: "https://en.wiktionary.org/wiki/", Timeout: time.Second},
		Deck:       DeckConfig{OutputDir: "."},
	}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "store.path") {
		t.Errorf("Validate() = %v, want store.path error", err)
	}
	cfg.Store.Path = "x.db"
	cfg.Deck.OutputDir = ""
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "output_dir") {
		t.Errorf("Validate() = %v, want output_dir error", err)
	}
}

func TestOrigins(t *testing.T) {
	if got := (ServerConfig{AllowedOrigins: "*"}).Origins(); !slices.Equal(got, []string{"*"}) {
		t.Errorf("Origins() = %q", got)
	}
	if got := (ServerConfig{AllowedOrigins: " , "}).Origins(); got != nil {
		t.Errorf("Origins() = %q, want nil", got)
	}
}
