package tui

import tea "github.com/charmbracelet/bubbletea"

// Router performs navigation between screens.
type Router interface {
	Navigate(path string) tea.Cmd
}

// RouterFunc adapts a function to the Router interface.
type RouterFunc func(path string) tea.Cmd

// Navigate calls f(path).
func (f RouterFunc) Navigate(path string) tea.Cmd {
	return f(path)
}

// appRouter turns navigation requests into NavigateMsg for the App.
type appRouter struct{}

func (appRouter) Navigate(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}
