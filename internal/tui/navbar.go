package tui

import (
	"net/url"

	"github.com/charmbracelet/lipgloss"
	"github.com/golang-jwt/jwt/v5"
)

// NavBar is the chrome line shown above every screen.
type NavBar struct {
	// Host is the album API host the client talks to.
	Host string

	// User is the signed-in subject, empty if unknown.
	User string
}

// NewNavBar creates a NavBar for the given API URL and bearer token.
func NewNavBar(apiURL, token string) NavBar {
	host := apiURL
	if u, err := url.Parse(apiURL); err == nil && u.Host != "" {
		host = u.Host
	}
	return NavBar{Host: host, User: SessionSubject(token)}
}

// View renders the bar across width cells.
func (n NavBar) View(width int) string {
	left := titleStyle.Render("▣ Albums")
	if n.Host != "" {
		left += dimStyle.Render("  " + n.Host)
	}
	right := ""
	if n.User != "" {
		right = infoStyle.Render("signed in as " + n.User)
	}

	inner := width - navBarStyle.GetHorizontalFrameSize()
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + lipgloss.NewStyle().Width(gap).Render("") + right
	if width > 0 {
		return navBarStyle.Width(width).MaxWidth(width).Render(bar)
	}
	return navBarStyle.Render(bar)
}

// SessionSubject extracts a display name from a JWT bearer token.
//
// The token is decoded without verifying its signature; the result is only
// used for display and never for authorization decisions. Opaque tokens and
// tokens without a usable claim yield "".
func SessionSubject(token string) string {
	if token == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	for _, key := range []string{"name", "preferred_username", "email", "sub"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
