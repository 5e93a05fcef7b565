// Package tui provides the Bubble Tea terminal user interface for browsing
// and creating albums.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/albums-tui/internal/logging"
	"github.com/handiism/albums-tui/internal/model"
)

// Backend is the album service used by all screens.
type Backend interface {
	AlbumSource
	AlbumCreator
	AlbumFetcher
}

// Options configures the App.
type Options struct {
	Context context.Context
	Backend Backend
	Covers  CoverSource // optional
	NavBar  NavBar
	Logger  *logging.Logger

	PlaceholderCount int
	ThumbRows        int

	// StartPath is the first screen shown, defaults to the album list.
	StartPath string
}

// App is the root model. It owns the current screen and swaps it on
// NavigateMsg.
type App struct {
	opts   Options
	screen screen
	path   string
	keys   keyMap

	width  int
	height int
}

// NewApp creates the App showing opts.StartPath.
func NewApp(opts Options) App {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.StartPath == "" {
		opts.StartPath = model.AlbumsPath
	}
	app := App{opts: opts, keys: defaultKeyMap()}
	app.path = opts.StartPath
	app.screen = app.resolve(opts.StartPath)
	return app
}

// Path returns the path of the current screen.
func (a App) Path() string {
	return a.path
}

// Init mounts the first screen.
func (a App) Init() tea.Cmd {
	return a.screen.Init()
}

// Update handles messages and updates the current screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case NavigateMsg:
		return a.navigate(msg.Path)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			a.screen.Close()
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.Quit) && !a.screen.Capturing() {
			a.screen.Close()
			return a, tea.Quit
		}
	}

	next, cmd := a.screen.Update(msg)
	a.screen = next.(screen)
	return a, cmd
}

// navigate closes the current screen and mounts the one for path.
func (a App) navigate(path string) (tea.Model, tea.Cmd) {
	a.opts.Logger.Debug(fmt.Sprintf("Navigating from %s to %s", a.path, path))
	a.screen.Close()
	a.path = path
	a.screen = a.resolve(path)
	return a, a.screen.Init()
}

func (a App) resolve(path string) screen {
	if path == model.AlbumsPath {
		return NewAlbumsListView(AlbumsListOptions{
			Context:          a.opts.Context,
			Source:           a.opts.Backend,
			Creator:          a.opts.Backend,
			Covers:           a.opts.Covers,
			NavBar:           a.opts.NavBar,
			Logger:           a.opts.Logger,
			PlaceholderCount: a.opts.PlaceholderCount,
			ThumbRows:        a.opts.ThumbRows,
			Width:            a.width,
			Height:           a.height,
		})
	}
	if id, ok := model.ParseAlbumPath(path); ok {
		return NewAlbumDetailView(AlbumDetailOptions{
			Context: a.opts.Context,
			AlbumID: id,
			Source:  a.opts.Backend,
			Covers:  a.opts.Covers,
			NavBar:  a.opts.NavBar,
			Logger:  a.opts.Logger,
			Width:   a.width,
			Height:  a.height,
		})
	}
	return notFoundView{path: path, navBar: a.opts.NavBar, width: a.width, keys: defaultKeyMap()}
}

// View renders the current screen.
func (a App) View() string {
	return a.screen.View()
}

// Run starts the TUI application.
func Run(opts Options) error {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := p.Run()
	return err
}

// notFoundView is shown for paths no screen handles.
type notFoundView struct {
	path   string
	navBar NavBar
	keys   keyMap
	width  int
}

func (v notFoundView) Init() tea.Cmd   { return nil }
func (v notFoundView) Close()          {}
func (v notFoundView) Capturing() bool { return false }

func (v notFoundView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, v.keys.Back) || key.Matches(msg, v.keys.Open) {
			return v, appRouter{}.Navigate(model.AlbumsPath)
		}
	}
	return v, nil
}

func (v notFoundView) View() string {
	var b strings.Builder
	b.WriteString(v.navBar.View(v.width))
	b.WriteString("\n\n")
	b.WriteString(errorStyle.Render(fmt.Sprintf("Page %s not found", v.path)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("esc: back to albums • q: quit"))
	b.WriteString("\n")
	return b.String()
}
