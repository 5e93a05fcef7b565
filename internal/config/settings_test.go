package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if settings.PlaceholderCount != 8 {
		t.Errorf("PlaceholderCount = %d, want 8", settings.PlaceholderCount)
	}
	if err := settings.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestSaveLoad_KeepsValuesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	settings := DefaultSettings()
	settings.APIURL = "https://photos.example.com/api"
	settings.ShowCovers = false
	if err := settings.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.APIURL != settings.APIURL {
		t.Errorf("APIURL = %q, want %q", loaded.APIURL, settings.APIURL)
	}
	if loaded.ShowCovers {
		t.Error("ShowCovers should be false after round trip")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"api_url":"https://x.example/api"}`), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.APIURL != "https://x.example/api" {
		t.Errorf("APIURL = %q", loaded.APIURL)
	}
	if loaded.MaxConcurrentCoverDownloads != 4 {
		t.Errorf("MaxConcurrentCoverDownloads = %d, want default 4", loaded.MaxConcurrentCoverDownloads)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() should fail on malformed JSON")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvAPIURL, "https://env.example/api")
	t.Setenv(EnvAPIToken, "secret")
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvLogFormat, "")

	settings := DefaultSettings()
	settings.ApplyEnv()

	if settings.APIURL != "https://env.example/api" {
		t.Errorf("APIURL = %q", settings.APIURL)
	}
	if settings.APIToken != "secret" {
		t.Errorf("APIToken = %q", settings.APIToken)
	}
	if settings.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want lower-cased debug", settings.LogLevel)
	}
	if settings.LogFormat != "json" {
		t.Errorf("LogFormat = %q, empty env must not override", settings.LogFormat)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(EnvAPIToken+"=from-dotenv\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvAPIToken, "")
	os.Unsetenv(EnvAPIToken)

	LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env"))

	if got := os.Getenv(EnvAPIToken); got != "from-dotenv" {
		t.Errorf("%s = %q, want from-dotenv", EnvAPIToken, got)
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	settings := DefaultSettings()
	settings.APIURL = "localhost:8080"
	settings.MaxConcurrentCoverDownloads = 0
	settings.LogFormat = "xml"

	err := settings.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, want := range []string{"api_url", "max_concurrent_cover_downloads", "log_format"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestRetryCooldown(t *testing.T) {
	settings := DefaultSettings()
	settings.DownloadRetryCooldown = 0.5
	settings.DownloadRetryExponent = 2

	tests := []struct {
		tries int
		want  time.Duration
	}{
		{0, 500 * time.Millisecond},
		{1, time.Second},
		{2, 2 * time.Second},
	}
	for _, tt := range tests {
		if got := settings.RetryCooldown(tt.tries); got != tt.want {
			t.Errorf("RetryCooldown(%d) = %v, want %v", tt.tries, got, tt.want)
		}
	}
}
