package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Addr() != "0.0.0.0:8000" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if len(cfg.Server.AllowOrigins) != 1 || cfg.Server.AllowOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected origins %v", cfg.Server.AllowOrigins)
	}
	if cfg.Render.StaleAfter != time.Hour || !cfg.Render.CleanupOnStart {
		t.Fatalf("unexpected cleanup defaults %+v", cfg.Render)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
server:
  port: 9090
  allow_origins: ["https://app.example.com", "https://admin.example.com"]
render:
  scratch_dir: /tmp/pdfs
  repeat_header: true
  stale_after: 30m
log:
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 || cfg.Server.Host != "0.0.0.0" {
		t.Fatalf("unexpected server %+v", cfg.Server)
	}
	if len(cfg.Server.AllowOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.Server.AllowOrigins)
	}
	if cfg.Render.ScratchDir != "/tmp/pdfs" || !cfg.Render.RepeatHeader || cfg.Render.StaleAfter != 30*time.Minute {
		t.Fatalf("unexpected render %+v", cfg.Render)
	}
	if cfg.Render.FilenamePrefix != "ingredients_analysis" {
		t.Fatalf("default prefix lost: %q", cfg.Render.FilenamePrefix)
	}
	if cfg.Log.Format != "json" || cfg.Log.Level != "info" {
		t.Fatalf("unexpected log %+v", cfg.Log)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Fatalf("expected defaults, got %+v", cfg.Server)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	path := writeFile(t, "server: [unclosed")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("expected parse error naming %s, got %v", path, err)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Defaults()
	err := cfg.ApplyEnv(envMap(map[string]string{
		"HOST":               "127.0.0.1",
		"PORT":               "8080",
		"CORS_ALLOW_ORIGINS": " https://a.example , https://b.example ,",
		"SCRATCH_DIR":        "/var/tmp/pdf",
		"REPEAT_HEADER":      "true",
		"LOG_LEVEL":          "DEBUG",
		"LOG_FORMAT":         "json",
	}))
	if err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:8080" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if strings.Join(cfg.Server.AllowOrigins, "|") != "https://a.example|https://b.example" {
		t.Fatalf("unexpected origins %v", cfg.Server.AllowOrigins)
	}
	if cfg.Render.ScratchDir != "/var/tmp/pdf" || !cfg.Render.RepeatHeader {
		t.Fatalf("unexpected render %+v", cfg.Render)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log %+v", cfg.Log)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port", map[string]string{"PORT": "eighty"}},
		{"repeat header", map[string]string{"REPEAT_HEADER": "sometimes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			if err := cfg.ApplyEnv(envMap(tt.env)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"missing scratch dir", func(c *Config) { c.Render.ScratchDir = "" }},
		{"unknown level", func(c *Config) { c.Log.Level = "verbose" }},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
