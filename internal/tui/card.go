package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/handiism/albums-tui/internal/model"
)

const (
	minCardWidth = 18
	coverGlyph   = "◫"
	dateLayout   = "Jan 2, 2006"
)

// AlbumCard renders one album in the grid.
type AlbumCard struct {
	Album    model.Album
	Thumb    string // rendered cover, empty if not loaded
	Selected bool
}

// View renders the card at the given outer width. thumbRows is the height
// reserved for the cover so that all cards in a row line up.
func (c AlbumCard) View(width, thumbRows int) string {
	style := cardStyle
	if c.Selected {
		style = selectedCardStyle
	}
	inner := contentWidth(style, width)

	lines := make([]string, 0, thumbRows+3)
	lines = append(lines, coverBlock(c.Thumb, inner, thumbRows)...)

	title := ansi.Truncate(c.Album.Title, inner, "…")
	if c.Selected {
		title = focusedStyle.Render(title)
	} else {
		title = headerStyle.Render(title)
	}
	lines = append(lines, title)

	desc := strings.Join(strings.Fields(c.Album.Description), " ")
	lines = append(lines, dimStyle.Render(ansi.Truncate(desc, inner, "…")))

	lines = append(lines, c.footer(inner))

	return style.Width(width - style.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

func (c AlbumCard) footer(width int) string {
	var parts []string
	if c.Album.IsShared {
		parts = append(parts, sharedBadgeStyle.Render("Shared"))
	}
	if t := c.Album.LastModified(); !t.IsZero() {
		label := "Updated "
		if c.Album.UpdatedAt.IsZero() {
			label = "Created "
		}
		parts = append(parts, dimStyle.Render(label+t.Format(dateLayout)))
	}
	return ansi.Truncate(strings.Join(parts, " "), width, "…")
}

// coverBlock returns exactly rows lines for the cover area.
func coverBlock(thumb string, width, rows int) []string {
	var lines []string
	if thumb != "" {
		for _, line := range strings.Split(thumb, "\n") {
			lines = append(lines, ansi.Truncate(line, width, ""))
		}
	}
	if len(lines) == 0 && rows > 0 {
		pad := make([]string, rows)
		pad[rows/2] = lipgloss.PlaceHorizontal(width, lipgloss.Center, dimStyle.Render(coverGlyph))
		return pad
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return lines[:rows]
}

// placeholderCard renders a skeleton card with the footprint of an AlbumCard.
func placeholderCard(width, thumbRows int, pulse bool) string {
	inner := contentWidth(cardStyle, width)
	style := placeholderStyle
	if pulse {
		style = placeholderPulseStyle
	}

	lines := make([]string, 0, thumbRows+3)
	for i := 0; i < thumbRows; i++ {
		lines = append(lines, style.Render(strings.Repeat("░", inner)))
	}
	lines = append(lines,
		style.Render(strings.Repeat("▒", inner*3/4)),
		style.Render(strings.Repeat("▒", inner/2)),
		"",
	)
	return cardStyle.Width(width - cardStyle.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

// contentWidth is the number of cells available inside a card of outer width.
func contentWidth(style lipgloss.Style, width int) int {
	inner := width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	return inner
}

// gridColumns picks the column count for the terminal width, mirroring the
// one/two/three/four column breakpoints of the web layout.
func gridColumns(width int) int {
	switch {
	case width < 60:
		return 1
	case width < 90:
		return 2
	case width < 120:
		return 3
	default:
		return 4
	}
}

// cardWidth returns the outer width of each card for the given columns.
func cardWidth(width, columns int) int {
	if width <= 0 {
		width = 80
	}
	w := width / columns
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// layoutGrid arranges rendered cells into rows of the given column count.
func layoutGrid(cells []string, columns int) []string {
	var rows []string
	for start := 0; start < len(cells); start += columns {
		end := start + columns
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[start:end]...))
	}
	return rows
}
