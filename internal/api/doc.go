// Package api provides the client for the album service consumed by the UI.
//
// The package handles:
//
//  1. Listing albums (GET {api}/albums)
//  2. Fetching one album (GET {api}/albums/{id})
//  3. Creating an album (POST {api}/albums)
//  4. Downloading cover images referenced by albums
//
// # Wire Format
//
// Albums are exchanged as camelCase JSON:
//
//	{"id":1,"title":"Trip","description":"","coverImage":"/uploads/1.jpg",
//	 "createdAt":"2024-05-01T10:00:00Z","updatedAt":"2024-05-02T08:00:00Z","isShared":false}
//
// Timestamps are parsed leniently by dto.APITime; see its documentation for
// the accepted layouts.
package api
