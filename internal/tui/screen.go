package tui

import (
	"context"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// screen is a full-window view managed by the App.
type screen interface {
	tea.Model

	// Close cancels outstanding work; later results are ignored.
	Close()

	// Capturing reports whether the screen consumes text input, in which
	// case global shortcuts such as "q" must not fire.
	Capturing() bool
}

var viewIDs atomic.Uint64

// lifecycle is shared by all copies of a screen value. It identifies the
// screen instance in messages and scopes its outstanding requests.
type lifecycle struct {
	id     uint64
	ctx    context.Context
	cancel context.CancelFunc
	mount  sync.Once
}

func newLifecycle(parent context.Context) *lifecycle {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &lifecycle{
		id:     viewIDs.Add(1),
		ctx:    ctx,
		cancel: cancel,
	}
}

// active reports whether a message tagged with view should be applied.
func (l *lifecycle) active(view uint64) bool {
	return view == l.id && l.ctx.Err() == nil
}

// once runs fn the first time it is called and returns its command.
func (l *lifecycle) once(fn func() tea.Cmd) tea.Cmd {
	var cmd tea.Cmd
	l.mount.Do(func() { cmd = fn() })
	return cmd
}
