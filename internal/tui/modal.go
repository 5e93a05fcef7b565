package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/albums-tui/internal/logging"
	"github.com/handiism/albums-tui/internal/model"
)

const createFailedMessage = "Failed to create album"

// Modal focus order
const (
	focusTitle = iota
	focusDescription
	focusShared
	focusCount
)

// NewAlbumModal is the form for creating an album.
//
// It is always owned by the list view; whether it is shown is decided by the
// list. It reports back with ModalClosedMsg and AlbumCreatedMsg.
type NewAlbumModal struct {
	life    *lifecycle
	creator AlbumCreator
	log     *logging.Logger

	title       textinput.Model
	description textinput.Model
	shared      bool
	focus       int

	submitting bool
	errMsg     string
	spinner    spinner.Model
}

func newNewAlbumModal(life *lifecycle, creator AlbumCreator, log *logging.Logger) NewAlbumModal {
	if log == nil {
		log = logging.Nop()
	}

	title := textinput.New()
	title.Placeholder = "Summer trip"
	title.CharLimit = 120
	title.Width = 40

	description := textinput.New()
	description.Placeholder = "Optional"
	description.CharLimit = 500
	description.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	return NewAlbumModal{
		life:        life,
		creator:     creator,
		log:         log,
		title:       title,
		description: description,
		spinner:     sp,
	}
}

// Focus prepares the form for input and returns the cursor blink command.
func (m *NewAlbumModal) Focus() tea.Cmd {
	m.errMsg = ""
	m.focus = focusTitle
	m.description.Blur()
	return m.title.Focus()
}

// Request returns the album described by the form.
func (m NewAlbumModal) Request() model.NewAlbum {
	return model.NewAlbum{
		Title:       m.title.Value(),
		Description: m.description.Value(),
		IsShared:    m.shared,
	}.Normalized()
}

// Submitting reports whether a create request is in flight.
func (m NewAlbumModal) Submitting() bool {
	return m.submitting
}

func (m *NewAlbumModal) reset() {
	m.title.SetValue("")
	m.description.SetValue("")
	m.shared = false
	m.errMsg = ""
	m.focus = focusTitle
	m.title.Blur()
	m.description.Blur()
}

// Update handles keys while the modal is open and the create result.
func (m NewAlbumModal) Update(msg tea.Msg) (NewAlbumModal, tea.Cmd) {
	switch msg := msg.(type) {
	case createResultMsg:
		if !m.life.active(msg.view) {
			return m, nil
		}
		m.submitting = false
		if msg.err != nil {
			m.log.Error(msg.err, "Error creating album")
			m.errMsg = createFailedMessage
			return m, nil
		}
		m.reset()
		album := msg.album
		return m, tea.Batch(
			func() tea.Msg { return ModalClosedMsg{} },
			func() tea.Msg { return AlbumCreatedMsg{Album: album} },
		)

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m NewAlbumModal) handleKey(msg tea.KeyMsg) (NewAlbumModal, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return ModalClosedMsg{} }

	case "enter":
		cmd := m.submit()
		return m, cmd

	case "tab", "down":
		cmd := m.setFocus((m.focus + 1) % focusCount)
		return m, cmd

	case "shift+tab", "up":
		cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, cmd

	case " ":
		if m.focus == focusShared {
			m.shared = !m.shared
			return m, nil
		}
	}

	if m.submitting {
		return m, nil
	}
	return m.updateInputs(msg)
}

func (m NewAlbumModal) updateInputs(msg tea.Msg) (NewAlbumModal, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusDescription:
		m.description, cmd = m.description.Update(msg)
	}
	return m, cmd
}

func (m *NewAlbumModal) setFocus(focus int) tea.Cmd {
	m.focus = focus
	m.title.Blur()
	m.description.Blur()
	switch focus {
	case focusTitle:
		return m.title.Focus()
	case focusDescription:
		return m.description.Focus()
	}
	return nil
}

// submit validates the form and starts the create request.
func (m *NewAlbumModal) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	req := m.Request()
	if err := req.Validate(); err != nil {
		if errors.Is(err, model.ErrTitleRequired) {
			m.errMsg = "Title is required"
		} else {
			m.errMsg = err.Error()
		}
		return nil
	}
	if m.creator == nil {
		m.errMsg = createFailedMessage
		return nil
	}

	m.submitting = true
	m.errMsg = ""
	creator, life := m.creator, m.life
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		album, err := creator.CreateAlbum(life.ctx, req)
		return createResultMsg{view: life.id, album: album, err: err}
	})
}

// View renders the modal box.
func (m NewAlbumModal) View() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("New Album"))
	b.WriteString("\n\n")

	b.WriteString(m.label("Title", focusTitle))
	b.WriteString("\n")
	b.WriteString(m.title.View())
	b.WriteString("\n\n")

	b.WriteString(m.label("Description", focusDescription))
	b.WriteString("\n")
	b.WriteString(m.description.View())
	b.WriteString("\n\n")

	check := "[ ]"
	if m.shared {
		check = "[×]"
	}
	b.WriteString(m.label(check+" Share with others", focusShared))
	b.WriteString("\n\n")

	switch {
	case m.submitting:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(infoStyle.Render("Creating album..."))
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	default:
		b.WriteString(dimStyle.Render("enter: create • tab: next field • space: toggle • esc: cancel"))
	}

	return modalStyle.Render(b.String())
}

func (m NewAlbumModal) label(text string, field int) string {
	if m.focus == field {
		return focusedStyle.Render("› " + text)
	}
	return dimStyle.Render("  " + text)
}
