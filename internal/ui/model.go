package ui

import (
	"reflect"

	"github.com/atomicstack/dirnav/internal/backend"
	"github.com/atomicstack/dirnav/internal/logging/events"
	"github.com/atomicstack/dirnav/internal/theme"
	uistate "github.com/atomicstack/dirnav/internal/ui/state"
	"github.com/atomicstack/dirnav/internal/view"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Forwarder accepts key presses on behalf of the navigation loop.
type Forwarder interface {
	Forward(backend.Key) bool
}

// Options configures the terminal surface. A zero Width or Height follows
// the terminal size.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
}

// Model implements the Bubble Tea model that draws frames produced by the
// navigation loop and feeds key presses back to it.
type Model struct {
	frame    view.Model
	hasFrame bool
	viewport uistate.Viewport

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	keys keyMap
	help help.Model

	forward Forwarder
	screen  *Screen
	done    bool
	err     error

	handlers map[reflect.Type]msgHandler
}

// NewModel builds a model reading frames from screen and forwarding keys to fwd.
func NewModel(opts Options, fwd Forwarder, screen *Screen) *Model {
	m := &Model{
		showFooter: opts.ShowFooter,
		keys:       defaultKeyMap(),
		help:       help.New(),
		forward:    fwd,
		screen:     screen,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.help.Width = m.width
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.screen == nil {
		return nil
	}
	return waitForFrame(m.screen)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Err returns the loop error delivered with the final message, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
		reflect.TypeOf(loopDoneMsg{}):       m.handleLoopDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return nil
	}
	mapped := m.keys.lookup(keyMsg)
	events.UI.Key(keyMsg.String(), mapped.String())
	if m.forward != nil {
		m.forward.Forward(mapped)
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(resize.Width, resize.Height)
	m.syncViewport()
	return nil
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	fm, ok := msg.(frameMsg)
	if !ok {
		return nil
	}
	if m.hasFrame && fm.frame.Dir != m.frame.Dir {
		m.viewport = uistate.Viewport{}
	}
	m.frame = fm.frame
	m.hasFrame = true
	m.syncViewport()
	if m.screen == nil {
		return nil
	}
	return waitForFrame(m.screen)
}

func (m *Model) handleLoopDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(loopDoneMsg)
	if !ok {
		return nil
	}
	m.done = true
	m.err = done.err
	return tea.Quit
}

func (m *Model) syncViewport() {
	m.viewport.EnsureVisible(m.frame.Highlight, len(m.frame.Rows), m.maxVisibleItems())
}
