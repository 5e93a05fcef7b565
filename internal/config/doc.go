// Package config provides configuration management for albums-tui.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Environment overrides, including variables from a .env file
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Talks to http://localhost:8080/api
//	// Shows 8 placeholder cards while loading
//	// Fetches up to 4 covers at a time
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Environment
//
//	config.LoadDotEnv()   // reads ./.env if present
//	settings.ApplyEnv()   // ALBUMS_API_URL, ALBUMS_API_TOKEN, ALBUMS_LOG_*
//	err := settings.Validate()
package config
