package tui

import "github.com/handiism/albums-tui/internal/model"

// Message types
type (
	// NavigateMsg asks the application to show the screen for Path.
	NavigateMsg struct {
		Path string
	}

	// AlbumCreatedMsg is sent by the creation modal after the service
	// accepted a new album.
	AlbumCreatedMsg struct {
		Album model.Album
	}

	// ModalClosedMsg is sent when the creation modal asks to be closed.
	ModalClosedMsg struct{}

	// albumsLoadedMsg carries the result of one album list request.
	albumsLoadedMsg struct {
		view   uint64
		seq    uint64
		albums []model.Album
		err    error
	}

	// albumLoadedMsg carries the result of a single album request.
	albumLoadedMsg struct {
		view  uint64
		album model.Album
		err   error
	}

	// coverLoadedMsg carries a rendered cover thumbnail.
	coverLoadedMsg struct {
		view    uint64
		albumID int64
		thumb   string
		err     error
	}

	// createResultMsg carries the result of a create request.
	createResultMsg struct {
		view  uint64
		album model.Album
		err   error
	}

	// pulseMsg animates placeholder cards while loading.
	pulseMsg struct {
		view uint64
	}
)
