package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Config holds everything the service reads at startup.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Host             string   `yaml:"host"`
	Port             int      `yaml:"port"`
	AllowOrigins     []string `yaml:"allow_origins"`
	AllowCredentials bool     `yaml:"allow_credentials"`
}

type RenderConfig struct {
	ScratchDir     string        `yaml:"scratch_dir"`
	FilenamePrefix string        `yaml:"filename_prefix"`
	DownloadName   string        `yaml:"download_name"`
	RepeatHeader   bool          `yaml:"repeat_header"`
	CleanupOnStart bool          `yaml:"cleanup_on_start"`
	StaleAfter     time.Duration `yaml:"stale_after"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Defaults returns the configuration used when no file or environment overrides exist.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             8000,
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowCredentials: true,
		},
		Render: RenderConfig{
			ScratchDir:     "temp",
			FilenamePrefix: "ingredients_analysis",
			DownloadName:   "ingredients_analysis.pdf",
			CleanupOnStart: true,
			StaleAfter:     time.Hour,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("HOST"); ok && v != "" {
		c.Server.Host = v
	}
	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v, ok := lookup("CORS_ALLOW_ORIGINS"); ok && v != "" {
		c.Server.AllowOrigins = splitList(v)
	}
	if v, ok := lookup("SCRATCH_DIR"); ok && v != "" {
		c.Render.ScratchDir = v
	}
	if v, ok := lookup("REPEAT_HEADER"); ok && v != "" {
		repeat, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: REPEAT_HEADER %q: %w", v, err)
		}
		c.Render.RepeatHeader = repeat
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		c.Log.Format = strings.ToLower(v)
	}
	return nil
}

// Validate checks the values the service cannot start without.
func (c Config) Validate() error {
	if err := validation.ValidateStruct(&c.Server,
		validation.Field(&c.Server.Host, validation.Required),
		validation.Field(&c.Server.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	); err != nil {
		return fmt.Errorf("config: server: %w", err)
	}
	if err := validation.ValidateStruct(&c.Render,
		validation.Field(&c.Render.ScratchDir, validation.Required),
		validation.Field(&c.Render.FilenamePrefix, validation.Required),
		validation.Field(&c.Render.DownloadName, validation.Required),
		validation.Field(&c.Render.StaleAfter, validation.Min(time.Duration(0))),
	); err != nil {
		return fmt.Errorf("config: render: %w", err)
	}
	if err := validation.ValidateStruct(&c.Log,
		validation.Field(&c.Log.Level, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Log.Format, validation.In("text", "json")),
	); err != nil {
		return fmt.Errorf("config: log: %w", err)
	}
	return nil
}

// Addr returns the host:port the server listens on.
func (c Config) Addr() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
