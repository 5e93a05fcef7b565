package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvAPIURL    = "ALBUMS_API_URL"
	EnvAPIToken  = "ALBUMS_API_TOKEN"
	EnvLogLevel  = "ALBUMS_LOG_LEVEL"
	EnvLogFormat = "ALBUMS_LOG_FORMAT"
	EnvLogFile   = "ALBUMS_LOG_FILE"
)

const appName = "albums-tui"

// Settings holds all configuration options.
type Settings struct {
	// API settings
	APIURL                string `json:"api_url"`
	APIToken              string `json:"api_token"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`

	// List view
	PlaceholderCount int `json:"placeholder_count"`

	// Cover art settings
	ShowCovers                  bool    `json:"show_covers"`
	MaxConcurrentCoverDownloads int     `json:"max_concurrent_cover_downloads"`
	DownloadMaxRetries          int     `json:"download_max_retries"`
	DownloadRetryCooldown       float64 `json:"download_retry_cooldown"`
	DownloadRetryExponent       float64 `json:"download_retry_exponent"`
	CoverThumbWidth             int     `json:"cover_thumb_width"`
	CoverThumbHeight            int     `json:"cover_thumb_height"`
	CoverCacheDir               string  `json:"cover_cache_dir"`

	// Logging
	LogLevel  string `json:"log_level"`  // debug, info, warn, error
	LogFormat string `json:"log_format"` // json, text
	LogFile   string `json:"log_file"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return &Settings{
		APIURL:                "http://localhost:8080/api",
		RequestTimeoutSeconds: 30,

		PlaceholderCount: 8,

		ShowCovers:                  true,
		MaxConcurrentCoverDownloads: 4,
		DownloadMaxRetries:          3,
		DownloadRetryCooldown:       0.2,
		DownloadRetryExponent:       4.0,
		CoverThumbWidth:             16,
		CoverThumbHeight:            6,
		CoverCacheDir:               filepath.Join(cacheDir, appName, "covers"),

		LogLevel:  "info",
		LogFormat: "json",
		LogFile:   filepath.Join(cacheDir, appName, appName+".log"),
	}
}

// DefaultPath returns the default location of the settings file.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return appName + ".json"
	}
	return filepath.Join(dir, appName, "config.json")
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored; variables that are already set win.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// ApplyEnv overlays settings with values from the environment.
func (s *Settings) ApplyEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		s.APIURL = v
	}
	if v := os.Getenv(EnvAPIToken); v != "" {
		s.APIToken = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		s.LogFormat = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		s.LogFile = v
	}
}

// Validate checks that all settings are usable and reports every problem found.
func (s *Settings) Validate() error {
	var problems []string

	u, err := url.Parse(s.APIURL)
	if s.APIURL == "" || err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		problems = append(problems, "api_url must be an absolute http(s) URL")
	}
	if s.RequestTimeoutSeconds < 1 {
		problems = append(problems, "request_timeout_seconds must be at least 1")
	}
	if s.PlaceholderCount < 0 {
		problems = append(problems, "placeholder_count must not be negative")
	}
	if s.MaxConcurrentCoverDownloads < 1 {
		problems = append(problems, "max_concurrent_cover_downloads must be at least 1")
	}
	if s.DownloadMaxRetries < 1 {
		problems = append(problems, "download_max_retries must be at least 1")
	}
	if s.CoverThumbWidth < 2 || s.CoverThumbHeight < 1 {
		problems = append(problems, "cover thumbnail must be at least 2x1 cells")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[s.LogLevel] {
		problems = append(problems, "log_level must be one of: debug, info, warn, error")
	}
	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[s.LogFormat] {
		problems = append(problems, "log_format must be one of: json, text")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid settings:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// RequestTimeout returns the per-request HTTP timeout.
func (s *Settings) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// RetryCooldown returns how long to wait before the given retry attempt.
//
// The delay grows exponentially: cooldown * exponent^tries seconds.
func (s *Settings) RetryCooldown(tries int) time.Duration {
	d := s.DownloadRetryCooldown
	for i := 0; i < tries; i++ {
		d *= s.DownloadRetryExponent
	}
	return time.Duration(d * float64(time.Second))
}
