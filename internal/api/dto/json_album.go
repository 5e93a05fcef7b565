package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/handiism/albums-tui/internal/model"
)

// APITime is a custom time type that tolerates the date formats the album API emits.
type APITime struct {
	time.Time
}

// UnmarshalJSON parses RFC 3339 timestamps as well as SQL-style
// "2006-01-02 15:04:05" and plain "2006-01-02" dates.
// Null and empty strings decode to the zero time.
func (at *APITime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		at.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		at.Time = time.Time{}
		return nil
	}

	formats := []string{
		time.RFC3339Nano,      // "2024-05-01T10:00:00.123Z"
		"2006-01-02T15:04:05", // ISO without zone
		"2006-01-02 15:04:05", // SQL datetime
		"2006-01-02",          // date only
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			at.Time = t
			return nil
		}
	}

	return fmt.Errorf("unable to parse date: %s", s)
}

// MarshalJSON writes the time in RFC 3339 form, or null for the zero time.
func (at APITime) MarshalJSON() ([]byte, error) {
	if at.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(at.Format(time.RFC3339Nano))
}

// JSONAlbum represents an album as serialized by the album API.
type JSONAlbum struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	CoverImage  *string  `json:"coverImage"`
	CreatedAt   *APITime `json:"createdAt"`
	UpdatedAt   *APITime `json:"updatedAt"`
	IsShared    bool     `json:"isShared"`
}

// ToAlbum converts JSONAlbum to a model.Album.
func (ja *JSONAlbum) ToAlbum() model.Album {
	album := model.Album{
		ID:       ja.ID,
		Title:    ja.Title,
		IsShared: ja.IsShared,
	}
	if ja.Description != nil {
		album.Description = *ja.Description
	}
	if ja.CoverImage != nil {
		album.CoverImage = *ja.CoverImage
	}
	if ja.CreatedAt != nil {
		album.CreatedAt = ja.CreatedAt.Time
	}
	if ja.UpdatedAt != nil {
		album.UpdatedAt = ja.UpdatedAt.Time
	}
	return album
}

// ToAlbums converts a JSON album list, preserving order.
func ToAlbums(in []JSONAlbum) []model.Album {
	albums := make([]model.Album, len(in))
	for i := range in {
		albums[i] = in[i].ToAlbum()
	}
	return albums
}

// JSONNewAlbum is the request body for creating an album.
type JSONNewAlbum struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsShared    bool   `json:"isShared"`
}

// FromNewAlbum converts a model.NewAlbum into its wire form.
func FromNewAlbum(n model.NewAlbum) JSONNewAlbum {
	return JSONNewAlbum{
		Title:       n.Title,
		Description: n.Description,
		IsShared:    n.IsShared,
	}
}
