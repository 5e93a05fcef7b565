package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/albums-tui/internal/api"
	"github.com/handiism/albums-tui/internal/model"
)

// cmdTimeout bounds how long a command may take before it is treated as a
// timer (cursor blink, spinner, pulse) and dropped.
const cmdTimeout = 50 * time.Millisecond

func keyRunes(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// collect runs cmd and flattens batches into the resulting messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-ch:
	case <-time.After(cmdTimeout):
		return nil
	}

	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func drain(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	queue := collect(cmd)
	for i := 0; len(queue) > 0; i++ {
		if i > 64 {
			t.Fatal("command chain exceeded max depth")
		}
		msg := queue[0]
		queue = queue[1:]
		next, nextCmd := m.Update(msg)
		m = next
		queue = append(queue, collect(nextCmd)...)
	}
	return m
}

func apply(t *testing.T, m tea.Model, msg tea.Msg) tea.Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return drain(t, next, cmd)
}

func press(t *testing.T, m tea.Model, k string) tea.Model {
	t.Helper()
	return apply(t, m, keyRunes(k))
}

func typeText(t *testing.T, m tea.Model, s string) tea.Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, string(r))
	}
	return m
}

func asList(t *testing.T, m tea.Model) AlbumsListView {
	t.Helper()
	list, ok := m.(AlbumsListView)
	if !ok {
		t.Fatalf("model is %T, want AlbumsListView", m)
	}
	return list
}

// fakeBackend is an in-memory album service.
type fakeBackend struct {
	mu sync.Mutex

	albums    []model.Album
	listErr   error
	createErr error
	nextID    int64

	listCalls   int
	createCalls int
	created     []model.NewAlbum
}

func (f *fakeBackend) FetchAlbums(ctx context.Context) ([]model.Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Album, len(f.albums))
	copy(out, f.albums)
	return out, nil
}

func (f *fakeBackend) FetchAlbum(ctx context.Context, id int64) (model.Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.albums {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Album{}, fmt.Errorf("fetch album %d: %w", id, api.ErrNotFound)
}

func (f *fakeBackend) CreateAlbum(ctx context.Context, req model.NewAlbum) (model.Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	f.created = append(f.created, req)
	if f.createErr != nil {
		return model.Album{}, f.createErr
	}
	f.nextID++
	album := model.Album{
		ID:          100 + f.nextID,
		Title:       req.Title,
		Description: req.Description,
		IsShared:    req.IsShared,
		CreatedAt:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	f.albums = append(f.albums, album)
	return album, nil
}

func (f *fakeBackend) setListErr(err error) {
	f.mu.Lock()
	f.listErr = err
	f.mu.Unlock()
}

func (f *fakeBackend) calls() (list, create int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.createCalls
}

// recordingRouter captures navigation requests.
type recordingRouter struct {
	paths []string
}

func (r *recordingRouter) Navigate(path string) tea.Cmd {
	r.paths = append(r.paths, path)
	return nil
}

var errUnavailable = errors.New("service unavailable")

func sampleAlbums() []model.Album {
	return []model.Album{
		{ID: 7, Title: "Trip", Description: "Mountains", CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{ID: 42, Title: "Party", IsShared: true, UpdatedAt: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
	}
}

func newTestList(backend *fakeBackend, router Router) AlbumsListView {
	return NewAlbumsListView(AlbumsListOptions{
		Source:  backend,
		Creator: backend,
		Router:  router,
	})
}

// mountList creates the list and runs its initial load to completion.
func mountList(t *testing.T, backend *fakeBackend, router Router) AlbumsListView {
	t.Helper()
	m := newTestList(backend, router)
	return asList(t, drain(t, m, m.Init()))
}
