package ui

import (
	"errors"
	"sync"

	"github.com/atomicstack/dirnav/internal/view"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrScreenClosed is returned by Render once the screen has been finished.
var ErrScreenClosed = errors.New("screen closed")

// Screen hands frames from the navigation loop to the Bubble Tea program.
// Only the most recent frame is kept, so a slow terminal never stalls the
// loop.
type Screen struct {
	frames chan view.Model
	done   chan struct{}

	finishOnce sync.Once
	err        error
}

// NewScreen returns an open screen.
func NewScreen() *Screen {
	return &Screen{
		frames: make(chan view.Model, 1),
		done:   make(chan struct{}),
	}
}

// Render queues m, replacing any frame the program has not picked up yet.
func (s *Screen) Render(m view.Model) error {
	select {
	case <-s.done:
		return ErrScreenClosed
	default:
	}
	for {
		select {
		case s.frames <- m:
			return nil
		default:
		}
		select {
		case <-s.frames:
		default:
		}
	}
}

// Finish tells the program the loop is over. err is the loop's result.
func (s *Screen) Finish(err error) {
	s.finishOnce.Do(func() {
		s.err = err
		close(s.done)
	})
}

// Err returns the value passed to Finish.
func (s *Screen) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

type frameMsg struct {
	frame view.Model
}

type loopDoneMsg struct {
	err error
}

// poll returns the next message without blocking, or nil.
func (s *Screen) poll() tea.Msg {
	select {
	case frame := <-s.frames:
		return frameMsg{frame: frame}
	default:
	}
	select {
	case <-s.done:
		return loopDoneMsg{err: s.err}
	default:
		return nil
	}
}

func waitForFrame(s *Screen) tea.Cmd {
	return func() tea.Msg {
		if msg := s.poll(); msg != nil {
			return msg
		}
		select {
		case frame := <-s.frames:
			return frameMsg{frame: frame}
		case <-s.done:
			return loopDoneMsg{err: s.err}
		}
	}
}
