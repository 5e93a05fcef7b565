package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/albums-tui/internal/api"
	"github.com/handiism/albums-tui/internal/logging"
	"github.com/handiism/albums-tui/internal/model"
)

const (
	detailThumbCols = 32
	detailThumbRows = 12
)

// AlbumFetcher retrieves a single album.
type AlbumFetcher interface {
	FetchAlbum(ctx context.Context, id int64) (model.Album, error)
}

// AlbumDetailOptions configures an AlbumDetailView.
type AlbumDetailOptions struct {
	Context context.Context
	AlbumID int64
	Source  AlbumFetcher
	Covers  CoverSource // optional
	Router  Router
	NavBar  NavBar
	Logger  *logging.Logger
	Width   int
	Height  int
}

// AlbumDetailView shows one album.
type AlbumDetailView struct {
	life *lifecycle

	id     int64
	source AlbumFetcher
	covers CoverSource
	router Router
	log    *logging.Logger

	loading  bool
	notFound bool
	errMsg   string
	album    model.Album
	thumb    string

	spinner spinner.Model
	navBar  NavBar
	keys    keyMap
	help    help.Model

	width  int
	height int
}

// NewAlbumDetailView creates the detail screen for one album id.
func NewAlbumDetailView(opts AlbumDetailOptions) AlbumDetailView {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Router == nil {
		opts.Router = appRouter{}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	return AlbumDetailView{
		life:    newLifecycle(opts.Context),
		id:      opts.AlbumID,
		source:  opts.Source,
		covers:  opts.Covers,
		router:  opts.Router,
		log:     opts.Logger.With(map[string]interface{}{"album_id": opts.AlbumID}),
		loading: true,
		spinner: sp,
		navBar:  opts.NavBar,
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   opts.Width,
		height:  opts.Height,
	}
}

// Init fetches the album once per view instance.
func (m AlbumDetailView) Init() tea.Cmd {
	return m.life.once(func() tea.Cmd {
		source, life, id := m.source, m.life, m.id
		return tea.Batch(m.spinner.Tick, func() tea.Msg {
			album, err := source.FetchAlbum(life.ctx, id)
			return albumLoadedMsg{view: life.id, album: album, err: err}
		})
	})
}

// Close cancels outstanding requests.
func (m AlbumDetailView) Close() {
	m.life.cancel()
}

// Capturing is always false; the detail screen has no text input.
func (m AlbumDetailView) Capturing() bool {
	return false
}

// Album returns the loaded album.
func (m AlbumDetailView) Album() model.Album {
	return m.album
}

// Update handles messages and updates the view.
func (m AlbumDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case albumLoadedMsg:
		if !m.life.active(msg.view) {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrNotFound) {
				m.notFound = true
				return m, nil
			}
			m.log.Error(msg.err, fmt.Sprintf("Error loading album %d", m.id))
			m.errMsg = "Failed to load album"
			return m, nil
		}
		m.album = msg.album
		return m, m.loadCover()

	case coverLoadedMsg:
		if !m.life.active(msg.view) {
			return m, nil
		}
		if msg.err != nil {
			m.log.Warn(msg.err, fmt.Sprintf("Error loading cover for album %d", msg.albumID))
			return m, nil
		}
		m.thumb = msg.thumb
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, m.router.Navigate(model.AlbumsPath)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m AlbumDetailView) loadCover() tea.Cmd {
	if m.covers == nil || !m.album.HasCover() {
		return nil
	}
	covers, life, album := m.covers, m.life, m.album
	return func() tea.Msg {
		thumb, err := covers.ThumbnailSized(life.ctx, album, detailThumbCols, detailThumbRows)
		return coverLoadedMsg{view: life.id, albumID: album.ID, thumb: thumb, err: err}
	}
}

// View renders the UI.
func (m AlbumDetailView) View() string {
	var b strings.Builder

	b.WriteString(m.navBar.View(m.width))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(infoStyle.Render("Loading album..."))
		b.WriteString("\n")
	case m.notFound:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Album %d not found", m.id)))
		b.WriteString("\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	default:
		b.WriteString(m.viewAlbum())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(detailKeys{m.keys}))
	return b.String()
}

func (m AlbumDetailView) viewAlbum() string {
	var b strings.Builder

	title := m.album.Title
	if title == "" {
		title = "Untitled album"
	}
	b.WriteString(headerStyle.Render(title))
	if m.album.IsShared {
		b.WriteString(" ")
		b.WriteString(sharedBadgeStyle.Render("Shared"))
	}
	b.WriteString("\n\n")

	var info strings.Builder
	if m.album.Description != "" {
		info.WriteString(m.album.Description)
		info.WriteString("\n\n")
	}
	if !m.album.CreatedAt.IsZero() {
		info.WriteString(dimStyle.Render("Created  " + m.album.CreatedAt.Format(dateLayout)))
		info.WriteString("\n")
	}
	if !m.album.UpdatedAt.IsZero() {
		info.WriteString(dimStyle.Render("Updated  " + m.album.UpdatedAt.Format(dateLayout)))
		info.WriteString("\n")
	}
	info.WriteString(dimStyle.Render(fmt.Sprintf("ID       %d", m.album.ID)))

	if m.thumb == "" {
		b.WriteString(info.String())
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.thumb, "  ", info.String()))
	b.WriteString("\n")
	return b.String()
}

// detailKeys narrows the help to the bindings the detail screen handles.
type detailKeys struct {
	keyMap
}

func (k detailKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

func (k detailKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Back, k.Help, k.Quit}}
}
