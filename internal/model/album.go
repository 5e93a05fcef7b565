package model

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// AlbumsPath is the navigation path of the album list.
const AlbumsPath = "/albums"

// ErrTitleRequired is returned by NewAlbum.Validate when the title is blank.
var ErrTitleRequired = errors.New("album title is required")

// Album represents a photo album as served by the album API.
//
// Albums are owned by the remote service; the client only ever reads them.
// A list of albums is kept in the order the service returned it.
type Album struct {
	// ID uniquely identifies the album.
	ID int64

	// Title is the album name shown on cards and in the detail view.
	Title string

	// Description is free text supplied when the album was created.
	Description string

	// CoverImage references the cover image resource, usually a URL.
	// Empty string means the album has no cover.
	CoverImage string

	// CreatedAt is when the album was created.
	CreatedAt time.Time

	// UpdatedAt is when the album was last modified.
	UpdatedAt time.Time

	// IsShared reports whether the album is shared with other users.
	IsShared bool
}

// HasCover returns true if the album references a cover image.
func (a Album) HasCover() bool {
	return strings.TrimSpace(a.CoverImage) != ""
}

// LastModified returns UpdatedAt, falling back to CreatedAt for albums
// that were never updated.
func (a Album) LastModified() time.Time {
	if a.UpdatedAt.IsZero() {
		return a.CreatedAt
	}
	return a.UpdatedAt
}

// Path returns the navigation path of the album's detail view.
func (a Album) Path() string {
	return AlbumPath(a.ID)
}

// CoverFileName returns the file name used to cache the album's cover.
//
// The name starts with the album ID so that renames never collide,
// followed by the sanitized title and a short hash of the cover reference,
// so a replaced cover gets a fresh cache entry:
//
//	Album{ID: 7, Title: "Trip: Day 1/2", CoverImage: "/c/7.jpg"}.CoverFileName() // "7-Trip_ Day 1_2-987606e4.jpg"
func (a Album) CoverFileName() string {
	sum := sha1.Sum([]byte(a.CoverImage))
	name := sanitizeFileName(a.Title)
	if name == "" {
		return fmt.Sprintf("%d-%x.jpg", a.ID, sum[:4])
	}
	// Keep cache names well below common file name limits
	if len(name) > maxCoverNameBytes {
		cut := maxCoverNameBytes
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = strings.TrimRight(name[:cut], " ")
	}
	return fmt.Sprintf("%d-%s-%x.jpg", a.ID, name, sum[:4])
}

const maxCoverNameBytes = 64

// NewAlbum holds the user-supplied fields of an album that is about to be created.
type NewAlbum struct {
	Title       string
	Description string
	IsShared    bool
}

// Validate checks that the request can be sent to the service.
//
// Only the title is required; everything else is optional.
func (n NewAlbum) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return ErrTitleRequired
	}
	return nil
}

// Normalized returns a copy with surrounding whitespace removed.
func (n NewAlbum) Normalized() NewAlbum {
	return NewAlbum{
		Title:       strings.TrimSpace(n.Title),
		Description: strings.TrimSpace(n.Description),
		IsShared:    n.IsShared,
	}
}

// AlbumPath returns the detail path for the album with the given ID.
//
// Example:
//
//	AlbumPath(42) // "/albums/42"
func AlbumPath(id int64) string {
	return AlbumsPath + "/" + strconv.FormatInt(id, 10)
}

// ParseAlbumPath extracts the album ID from a detail path.
//
// Returns false if path is not of the form "/albums/{id}".
func ParseAlbumPath(path string) (int64, bool) {
	rest, ok := strings.CutPrefix(path, AlbumsPath+"/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return 0, false
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots     = regexp.MustCompile(`\.+$`)
	repeatedSpace    = regexp.MustCompile(`\s+`)
)

// sanitizeFileName removes or replaces characters that are invalid in file names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Surrounding whitespace is removed
func sanitizeFileName(name string) string {
	name = invalidFileChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpace.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
