package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func openModal(t *testing.T, backend *fakeBackend) AlbumsListView {
	t.Helper()
	m := mountList(t, backend, nil)
	m = asList(t, press(t, m, "n"))
	if !m.CreateModalOpen() {
		t.Fatal("modal did not open")
	}
	return m
}

func TestModal_CreateAlbum(t *testing.T) {
	backend := &fakeBackend{albums: sampleAlbums()}
	m := openModal(t, backend)

	m = asList(t, typeText(t, m, "  Beach  "))
	m = asList(t, apply(t, m, tea.KeyMsg{Type: tea.KeyTab}))
	m = asList(t, typeText(t, m, "Sunny"))
	m = asList(t, apply(t, m, tea.KeyMsg{Type: tea.KeyTab}))
	m = asList(t, apply(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))
	m = asList(t, apply(t, m, tea.KeyMsg{Type: tea.KeyEnter}))

	list, create := backend.calls()
	if create != 1 {
		t.Fatalf("CreateAlbum called %d times, want 1", create)
	}
	req := backend.created[0]
	if req.Title != "Beach" || req.Description != "Sunny" || !req.IsShared {
		t.Errorf("CreateAlbum request = %+v", req)
	}
	if m.CreateModalOpen() {
		t.Error("modal should close after a successful create")
	}
	if list != 2 {
		t.Errorf("FetchAlbums called %d times, want 2", list)
	}
	if got := len(m.Albums()); got != 3 {
		t.Errorf("Albums() = %d, want 3", got)
	}
	view := m.View()
	if !strings.Contains(view, `Created "Beach"`) {
		t.Error("list should confirm the created album")
	}
	if !strings.Contains(view, "Sunny") {
		t.Error("created album should appear in the list")
	}
}

func TestModal_TitleRequired(t *testing.T) {
	backend := &fakeBackend{}
	m := openModal(t, backend)

	m = asList(t, typeText(t, m, "   "))
	m = asList(t, apply(t, m, tea.KeyMsg{Type: tea.KeyEnter}))

	if _, create := backend.calls(); create != 0 {
		t.Errorf("CreateAlbum called %d times, want 0", create)
	}
	if !m.CreateModalOpen() {
		t.Error("modal should stay open")
	}
	if !strings.Contains(m.View(), "Title is required") {
		t.Error("view should show the validation message")
	}
}

func TestModal_CreateFailure(t *testing.T) {
	backend := &fakeBackend{createErr: errUnavailable}
	m := openModal(t, backend)

	m = asList(t, typeText(t, m, "Beach"))
	m = asList(t, apply(t, m, tea.KeyMsg{Type: tea.KeyEnter}))

	if !m.CreateModalOpen() {
		t.Fatal("modal should stay open after a failed create")
	}
	if m.modal.Submitting() {
		t.Error("modal should not be submitting after the result")
	}
	if !strings.Contains(m.View(), createFailedMessage) {
		t.Errorf("view should contain %q", createFailedMessage)
	}
	if list, _ := backend.calls(); list != 1 {
		t.Errorf("FetchAlbums called %d times, want 1 (no refresh on failure)", list)
	}
	if m.State() != StateReady {
		t.Errorf("State() = %v, want ready", m.State())
	}
}

func TestModal_ReopenClearsError(t *testing.T) {
	m := openModal(t, &fakeBackend{createErr: errUnavailable})
	m = asList(t, typeText(t, m, "Beach"))
	m = asList(t, apply(t, m, tea.KeyMsg{Type: tea.KeyEnter}))
	m = asList(t, apply(t, m, tea.KeyMsg{Type: tea.KeyEsc}))
	if m.CreateModalOpen() {
		t.Fatal("esc should close the modal")
	}

	m = asList(t, press(t, m, "n"))
	if strings.Contains(m.View(), createFailedMessage) {
		t.Error("reopened modal should not show the previous failure")
	}
}

func TestModal_ResetAfterCreate(t *testing.T) {
	m := openModal(t, &fakeBackend{})
	m = asList(t, typeText(t, m, "Beach"))
	m = asList(t, apply(t, m, tea.KeyMsg{Type: tea.KeyEnter}))
	m = asList(t, press(t, m, "n"))

	if got := m.modal.Request().Title; got != "" {
		t.Errorf("reopened modal title = %q, want empty", got)
	}
}

func TestModal_FocusCycle(t *testing.T) {
	m := newNewAlbumModal(newLifecycle(nil), &fakeBackend{}, nil)
	m.Focus()

	want := []int{focusDescription, focusShared, focusTitle}
	for _, w := range want {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		if m.focus != w {
			t.Fatalf("focus = %d, want %d", m.focus, w)
		}
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != focusShared {
		t.Errorf("shift+tab focus = %d, want %d", m.focus, focusShared)
	}
}

func TestModal_SpaceTypesInTextFields(t *testing.T) {
	m := newNewAlbumModal(newLifecycle(nil), &fakeBackend{}, nil)
	m.Focus()

	for _, msg := range []tea.KeyMsg{keyRunes("a"), {Type: tea.KeySpace, Runes: []rune{' '}}, keyRunes("b")} {
		m, _ = m.Update(msg)
	}
	if got := m.title.Value(); got != "a b" {
		t.Errorf("title = %q, want %q", got, "a b")
	}
	if m.shared {
		t.Error("space in the title should not toggle sharing")
	}
}

func TestModal_StaleResultIgnored(t *testing.T) {
	life := newLifecycle(nil)
	m := newNewAlbumModal(life, &fakeBackend{}, nil)
	life.cancel()

	m, cmd := m.Update(createResultMsg{view: life.id, err: errUnavailable})
	if cmd != nil || m.errMsg != "" {
		t.Error("result for a closed view should be ignored")
	}
}
