package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/albums-tui/internal/logging"
	"github.com/handiism/albums-tui/internal/model"
)

const (
	// loadFailedMessage is the only error text users see for list failures.
	loadFailedMessage = "Failed to load albums"

	emptyMessage = "No albums yet. Create your first album!"

	defaultPlaceholderCount = 8
	defaultThumbRows        = 6

	// initialLoadSeq is reserved for the load issued by Init.
	initialLoadSeq = 1

	pulseInterval = 600 * time.Millisecond
)

// AlbumSource provides the album collection of the current session.
type AlbumSource interface {
	FetchAlbums(ctx context.Context) ([]model.Album, error)
}

// AlbumCreator creates albums.
type AlbumCreator interface {
	CreateAlbum(ctx context.Context, req model.NewAlbum) (model.Album, error)
}

// CoverSource renders album covers as terminal thumbnails.
type CoverSource interface {
	Thumbnail(ctx context.Context, album model.Album) (string, error)
	ThumbnailSized(ctx context.Context, album model.Album, cols, rows int) (string, error)
}

// State represents which of the mutually exclusive list states is shown.
type State int

const (
	StateLoading State = iota
	StateError
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateReady:
		return "ready"
	}
	return "unknown"
}

// AlbumsListOptions configures an AlbumsListView.
type AlbumsListOptions struct {
	Context context.Context
	Source  AlbumSource
	Creator AlbumCreator
	Covers  CoverSource // optional
	Router  Router
	NavBar  NavBar
	Logger  *logging.Logger

	// PlaceholderCount is the number of skeleton cards shown while loading.
	PlaceholderCount int

	// ThumbRows is the height reserved for covers on each card.
	ThumbRows int

	Width  int
	Height int
}

// AlbumsListView lists the albums of the current session.
//
// The view is in exactly one of three states: loading, error, or ready.
// Whether the creation modal is open is tracked independently of that.
type AlbumsListView struct {
	life *lifecycle

	source AlbumSource
	covers CoverSource
	router Router
	log    *logging.Logger

	state  State
	errMsg string
	albums []model.Album

	createModalOpen bool
	modal           NewAlbumModal
	notice          string

	// seq is the sequence number of the latest issued load; applied is
	// the latest one whose result was accepted.
	seq     uint64
	applied uint64

	selected   int
	thumbs     map[int64]string
	pulse      bool
	placeholds int
	thumbRows  int

	navBar NavBar
	keys   keyMap
	help   help.Model

	width  int
	height int
}

// NewAlbumsListView creates the album list. The first render shows the
// loading state; Init issues the fetch.
func NewAlbumsListView(opts AlbumsListOptions) AlbumsListView {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.PlaceholderCount <= 0 {
		opts.PlaceholderCount = defaultPlaceholderCount
	}
	if opts.ThumbRows <= 0 {
		opts.ThumbRows = defaultThumbRows
	}
	if opts.Router == nil {
		opts.Router = appRouter{}
	}

	life := newLifecycle(opts.Context)
	return AlbumsListView{
		life:       life,
		source:     opts.Source,
		covers:     opts.Covers,
		router:     opts.Router,
		log:        opts.Logger,
		state:      StateLoading,
		modal:      newNewAlbumModal(life, opts.Creator, opts.Logger),
		seq:        initialLoadSeq,
		thumbs:     make(map[int64]string),
		placeholds: opts.PlaceholderCount,
		thumbRows:  opts.ThumbRows,
		navBar:     opts.NavBar,
		keys:       defaultKeyMap(),
		help:       help.New(),
		width:      opts.Width,
		height:     opts.Height,
	}
}

// Init triggers the initial load exactly once per view instance.
func (m AlbumsListView) Init() tea.Cmd {
	return m.life.once(func() tea.Cmd {
		return tea.Batch(m.fetch(initialLoadSeq), m.tickPulse())
	})
}

// Close cancels outstanding requests. Results that arrive later are dropped.
func (m AlbumsListView) Close() {
	m.life.cancel()
}

// Capturing reports whether the creation modal is taking keyboard input.
func (m AlbumsListView) Capturing() bool {
	return m.createModalOpen
}

// State returns the current list state.
func (m AlbumsListView) State() State {
	return m.state
}

// Albums returns the albums of the last successful load, in service order.
func (m AlbumsListView) Albums() []model.Album {
	return m.albums
}

// Err returns the user-visible error message, or "" outside the error state.
func (m AlbumsListView) Err() string {
	return m.errMsg
}

// CreateModalOpen reports whether the creation modal is shown.
func (m AlbumsListView) CreateModalOpen() bool {
	return m.createModalOpen
}

// Update handles messages and updates the view.
func (m AlbumsListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case albumsLoadedMsg:
		return m.handleAlbumsLoaded(msg)

	case coverLoadedMsg:
		if !m.life.active(msg.view) {
			return m, nil
		}
		if msg.err != nil {
			m.log.Warn(msg.err, fmt.Sprintf("Error loading cover for album %d", msg.albumID))
			return m, nil
		}
		m.thumbs[msg.albumID] = msg.thumb
		return m, nil

	case pulseMsg:
		if !m.life.active(msg.view) || m.state != StateLoading {
			return m, nil
		}
		m.pulse = !m.pulse
		return m, m.tickPulse()

	case AlbumCreatedMsg:
		if m.life.ctx.Err() != nil {
			return m, nil
		}
		if msg.Album.Title != "" {
			m.notice = fmt.Sprintf("Created %q", msg.Album.Title)
		}
		cmd := m.handleAlbumCreated()
		return m, cmd

	case ModalClosedMsg:
		m.closeCreateModal()
		return m, nil

	case createResultMsg:
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.createModalOpen {
			var cmd tea.Cmd
			m.modal, cmd = m.modal.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	if m.createModalOpen {
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AlbumsListView) handleAlbumsLoaded(msg albumsLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.life.active(msg.view) {
		return m, nil
	}
	// A newer load already landed; this response is superseded.
	if msg.seq < m.applied {
		m.log.Debug(fmt.Sprintf("Discarding superseded album load %d (applied %d)", msg.seq, m.applied))
		return m, nil
	}
	m.applied = msg.seq

	if msg.err != nil {
		m.log.Error(msg.err, "Error loading albums")
		m.state = StateError
		m.errMsg = loadFailedMessage
		return m, nil
	}

	m.albums = msg.albums
	m.errMsg = ""
	m.state = StateReady
	if m.selected >= len(m.albums) {
		m.selected = len(m.albums) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return m, m.loadCovers()
}

func (m AlbumsListView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.state != StateReady {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NewAlbum):
		cmd := m.openCreateModal()
		return m, cmd
	}

	if len(m.albums) == 0 {
		return m, nil
	}

	columns := gridColumns(m.width)
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected-columns >= 0 {
			m.selected -= columns
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected+columns < len(m.albums) {
			m.selected += columns
		}
	case key.Matches(msg, m.keys.Left):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Right):
		if m.selected < len(m.albums)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Open):
		return m, m.handleAlbumClick(m.albums[m.selected].ID)
	}
	return m, nil
}

// loadAlbums issues a new list request tagged with the next sequence number.
func (m *AlbumsListView) loadAlbums() tea.Cmd {
	m.seq++
	return m.fetch(m.seq)
}

func (m AlbumsListView) fetch(seq uint64) tea.Cmd {
	source, life := m.source, m.life
	return func() tea.Msg {
		albums, err := source.FetchAlbums(life.ctx)
		return albumsLoadedMsg{view: life.id, seq: seq, albums: albums, err: err}
	}
}

// handleAlbumCreated refreshes the list from the service.
func (m *AlbumsListView) handleAlbumCreated() tea.Cmd {
	return m.loadAlbums()
}

// handleAlbumClick navigates to the album's detail screen.
func (m AlbumsListView) handleAlbumClick(albumID int64) tea.Cmd {
	return m.router.Navigate(model.AlbumPath(albumID))
}

func (m *AlbumsListView) openCreateModal() tea.Cmd {
	m.createModalOpen = true
	return m.modal.Focus()
}

func (m *AlbumsListView) closeCreateModal() {
	m.createModalOpen = false
}

func (m AlbumsListView) loadCovers() tea.Cmd {
	if m.covers == nil {
		return nil
	}
	var cmds []tea.Cmd
	covers, life := m.covers, m.life
	for _, album := range m.albums {
		if !album.HasCover() {
			continue
		}
		if _, ok := m.thumbs[album.ID]; ok {
			continue
		}
		cmds = append(cmds, func() tea.Msg {
			thumb, err := covers.Thumbnail(life.ctx, album)
			return coverLoadedMsg{view: life.id, albumID: album.ID, thumb: thumb, err: err}
		})
	}
	return tea.Batch(cmds...)
}

func (m AlbumsListView) tickPulse() tea.Cmd {
	view := m.life.id
	return tea.Tick(pulseInterval, func(_ time.Time) tea.Msg {
		return pulseMsg{view: view}
	})
}

// View renders the UI.
func (m AlbumsListView) View() string {
	var b strings.Builder

	b.WriteString(m.navBar.View(m.width))
	b.WriteString("\n\n")

	if m.createModalOpen {
		b.WriteString(m.viewModal())
	} else {
		switch m.state {
		case StateLoading:
			b.WriteString(m.viewLoading())
		case StateError:
			b.WriteString(m.viewError())
		case StateReady:
			b.WriteString(m.viewReady())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m AlbumsListView) viewLoading() string {
	return strings.Join(layoutGrid(m.placeholders(), gridColumns(m.width)), "\n")
}

func (m AlbumsListView) viewError() string {
	width := m.width
	if width <= 0 {
		width = lipgloss.Width(m.errMsg)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, errorStyle.Render(m.errMsg)) + "\n"
}

func (m AlbumsListView) viewReady() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(successStyle.Render(m.notice))
	}
	b.WriteString("\n")

	if len(m.albums) == 0 {
		width := m.width
		if width <= 0 {
			width = lipgloss.Width(emptyMessage)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dimStyle.Render(emptyMessage)))
		b.WriteString("\n")
		return b.String()
	}

	columns := gridColumns(m.width)
	rows := layoutGrid(m.cards(), columns)
	first, last := m.visibleRows(len(rows), columns)
	b.WriteString(strings.Join(rows[first:last], "\n"))
	b.WriteString("\n")
	if first > 0 || last < len(rows) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d/%d", m.selected+1, len(m.albums))))
		b.WriteString("\n")
	}

	return b.String()
}

func (m AlbumsListView) viewHeader() string {
	heading := headerStyle.Render("Your Albums")
	button := buttonStyle.Render("＋ New Album (n)")
	if m.width <= 0 {
		return heading + "  " + button
	}
	gap := m.width - lipgloss.Width(heading) - lipgloss.Width(button)
	if gap < 2 {
		gap = 2
	}
	return heading + strings.Repeat(" ", gap) + button
}

func (m AlbumsListView) viewModal() string {
	box := m.modal.View()
	if m.width <= 0 {
		return box + "\n"
	}
	height := m.height - 4
	if height < lipgloss.Height(box) {
		height = lipgloss.Height(box)
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box) + "\n"
}

// cards renders one card per album, in the order the service returned them.
func (m AlbumsListView) cards() []string {
	width := cardWidth(m.width, gridColumns(m.width))
	cards := make([]string, len(m.albums))
	for i, album := range m.albums {
		cards[i] = AlbumCard{
			Album:    album,
			Thumb:    m.thumbs[album.ID],
			Selected: i == m.selected,
		}.View(width, m.thumbRows)
	}
	return cards
}

// placeholders renders the fixed number of skeleton cards.
func (m AlbumsListView) placeholders() []string {
	width := cardWidth(m.width, gridColumns(m.width))
	cells := make([]string, m.placeholds)
	for i := range cells {
		cells[i] = placeholderCard(width, m.thumbRows, m.pulse)
	}
	return cells
}

// visibleRows returns the window of grid rows that fits the terminal and
// contains the selected card.
func (m AlbumsListView) visibleRows(total, columns int) (int, int) {
	if m.height <= 0 {
		return 0, total
	}
	cardHeight := m.thumbRows + 5
	// navbar, spacing, header, help
	available := m.height - 6
	fit := available / cardHeight
	if fit < 1 {
		fit = 1
	}
	if fit >= total {
		return 0, total
	}
	selectedRow := m.selected / columns
	first := selectedRow - fit + 1
	if first < 0 {
		first = 0
	}
	return first, first + fit
}
