// Package model defines the core data structures used throughout
// the albums-tui application.
//
// # Album
//
// Album is a named collection of photos as served by the album API:
//
//	album := model.Album{ID: 1, Title: "Trip", IsShared: true}
//	fmt.Println(album.Path())        // "/albums/1"
//	fmt.Println(album.LastModified()) // UpdatedAt, or CreatedAt if never updated
//
// # Creating Albums
//
// NewAlbum carries the fields a user fills in before the album exists:
//
//	req := model.NewAlbum{Title: "Party", Description: "New year"}
//	if err := req.Validate(); err != nil {
//	    // model.ErrTitleRequired
//	}
//
// # Routes
//
// AlbumPath and ParseAlbumPath convert between album identifiers and the
// navigation paths used by the router ("/albums/{id}").
package model
