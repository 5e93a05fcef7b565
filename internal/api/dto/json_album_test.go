package dto

import (
	"encoding/json"
	"testing"
	"time"
)

func TestAPITime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"rfc3339", `"2024-05-01T10:00:00Z"`, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), false},
		{"rfc3339 fractional", `"2024-05-01T10:00:00.5Z"`, time.Date(2024, 5, 1, 10, 0, 0, 500_000_000, time.UTC), false},
		{"rfc3339 offset", `"2024-05-01T12:00:00+02:00"`, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), false},
		{"iso no zone", `"2024-05-01T10:00:00"`, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), false},
		{"sql datetime", `"2024-05-01 10:00:00"`, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), false},
		{"date only", `"2024-05-01"`, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), false},
		{"empty", `""`, time.Time{}, false},
		{"null", `null`, time.Time{}, false},
		{"garbage", `"yesterday"`, time.Time{}, true},
		{"number", `12`, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var at APITime
			err := at.UnmarshalJSON([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalJSON(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !at.Equal(tt.want) {
				t.Errorf("UnmarshalJSON(%s) = %v, want %v", tt.input, at.Time, tt.want)
			}
		})
	}
}

func TestJSONAlbum_ToAlbum_NullableFields(t *testing.T) {
	var ja JSONAlbum
	raw := `{"id":9,"title":"Snow","description":null,"coverImage":"https://cdn/x.jpg","createdAt":null,"isShared":true}`
	if err := json.Unmarshal([]byte(raw), &ja); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	album := ja.ToAlbum()
	if album.ID != 9 || album.Title != "Snow" || !album.IsShared {
		t.Errorf("unexpected album %+v", album)
	}
	if album.Description != "" {
		t.Errorf("Description = %q, want empty", album.Description)
	}
	if album.CoverImage != "https://cdn/x.jpg" {
		t.Errorf("CoverImage = %q", album.CoverImage)
	}
	if !album.CreatedAt.IsZero() || !album.UpdatedAt.IsZero() {
		t.Errorf("timestamps should be zero, got %v / %v", album.CreatedAt, album.UpdatedAt)
	}
}

func TestToAlbums_PreservesOrder(t *testing.T) {
	in := []JSONAlbum{{ID: 3, Title: "c"}, {ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	out := ToAlbums(in)
	for i, want := range []int64{3, 1, 2} {
		if out[i].ID != want {
			t.Errorf("out[%d].ID = %d, want %d", i, out[i].ID, want)
		}
	}
}
