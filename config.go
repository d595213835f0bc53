package pagesblog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/labstack/gommon/log"

	"github.com/eringen/pagesblog/content"
)

// SiteConfig holds all configuration for a pagesblog site.
type SiteConfig struct {
	Name        string `toml:"name"`        // Site name (default "My Awesome Blog")
	Tagline     string `toml:"tagline"`     // Header subtitle
	URL         string `toml:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `toml:"description"` // Site description for RSS and meta tags
	Author      string `toml:"author"`      // Site author for JSON-LD

	Addr         string `toml:"addr"`          // Listen address (default ":3000")
	DatabasePath string `toml:"database_path"` // Optional SQLite catalog source
	ContentDir   string `toml:"content_dir"`   // Optional directory of front-matter markdown files

	LogLevel string `toml:"log_level"` // debug, info, warn, error (default "info")
	Debug    bool   `toml:"debug"`     // Mount /debug/pprof

	PageCacheTTL time.Duration `toml:"page_cache_ttl"` // Rendered page TTL (default 5m)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "My Awesome Blog"
	}
	if c.Tagline == "" {
		c.Tagline = "Powered by Go & Echo"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PageCacheTTL == 0 {
		c.PageCacheTTL = 5 * time.Minute
	}
}

// LoadConfig reads a TOML config file, then applies environment overrides.
// A missing file is not an error; the defaults and environment still apply.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return SiteConfig{}, fmt.Errorf("pagesblog: parse config %s: %w", path, err)
		}
	}
	applyEnvOverrides(&cfg)
	cfg.setDefaults()
	if _, ok := parseLevel(cfg.LogLevel); !ok {
		return SiteConfig{}, fmt.Errorf("pagesblog: invalid log_level %q", cfg.LogLevel)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *SiteConfig) {
	cfg.Name = EnvOr("SITE_NAME", cfg.Name)
	cfg.URL = EnvOr("SITE_URL", cfg.URL)
	cfg.Description = EnvOr("SITE_DESCRIPTION", cfg.Description)
	cfg.Author = EnvOr("SITE_AUTHOR", cfg.Author)
	cfg.Addr = EnvOr("ADDR", cfg.Addr)
	cfg.DatabasePath = EnvOr("DATABASE_PATH", cfg.DatabasePath)
	cfg.ContentDir = EnvOr("CONTENT_DIR", cfg.ContentDir)
	cfg.LogLevel = EnvOr("LOG_LEVEL", cfg.LogLevel)
	if v := os.Getenv("DEBUG"); v != "" {
		cfg.Debug = strings.EqualFold(v, "true") || v == "1"
	}
}

func parseLevel(s string) (log.Lvl, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG, true
	case "info":
		return log.INFO, true
	case "warn":
		return log.WARN, true
	case "error":
		return log.ERROR, true
	case "off":
		return log.OFF, true
	}
	return 0, false
}

// Option configures additional App behavior.
type Option func(*App)

// WithCatalog serves the given catalog instead of loading one at Setup.
func WithCatalog(c *content.Catalog) Option {
	return func(a *App) {
		a.Catalog = c
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
