// Package config resolves bookshelf settings from defaults, an optional
// YAML file, BOOKSHELF_* environment variables and command-line flags.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultLibraryPath = "library.json"
	DefaultBaseURL     = "https://www.googleapis.com/books/v1"
	DefaultTimeout     = 10 * time.Second
)

type Config struct {
	LibraryPath   string
	APIKey        string
	RequireAPIKey bool
	BaseURL       string
	Timeout       time.Duration
	LogLevel      string
	LogFormat     string
	LogFile       string
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("library", DefaultLibraryPath)
	v.SetDefault("google_books.base_url", DefaultBaseURL)
	v.SetDefault("google_books.timeout", DefaultTimeout)
	v.SetDefault("google_books.require_api_key", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "pretty")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix("bookshelf")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// API_KEY is what the .env files of earlier versions used.
	_ = v.BindEnv("google_books.api_key", "BOOKSHELF_GOOGLE_BOOKS_API_KEY", "BOOKSHELF_API_KEY", "API_KEY")
}

// Load reads the resolved settings out of v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		LibraryPath:   v.GetString("library"),
		APIKey:        strings.TrimSpace(v.GetString("google_books.api_key")),
		RequireAPIKey: v.GetBool("google_books.require_api_key"),
		BaseURL:       strings.TrimRight(v.GetString("google_books.base_url"), "/"),
		Timeout:       v.GetDuration("google_books.timeout"),
		LogLevel:      strings.ToLower(v.GetString("log.level")),
		LogFormat:     strings.ToLower(v.GetString("log.format")),
		LogFile:       v.GetString("log.file"),
	}

	if cfg.LibraryPath == "" {
		return nil, fmt.Errorf("library path must not be empty")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("google_books.base_url must not be empty")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("google_books.timeout must be positive, got %s", cfg.Timeout)
	}
	switch cfg.LogFormat {
	case "pretty", "json":
	default:
		return nil, fmt.Errorf("log.format: unsupported value %q", cfg.LogFormat)
	}

	return cfg, nil
}
