package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests.
// Commands returned by Update are not executed; Pump delivers pending
// screen messages instead, so nothing ever blocks on the loop.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, _ := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
}

// Press sends a key press as the terminal would report it.
func (h *Harness) Press(keys ...string) {
	for _, k := range keys {
		h.Send(keyMsgFor(k))
	}
}

// Pump delivers at most one pending frame or completion from the screen and
// reports whether anything was delivered.
func (h *Harness) Pump() bool {
	if h.model == nil || h.model.screen == nil {
		return false
	}
	msg := h.model.screen.poll()
	if msg == nil {
		return false
	}
	h.Send(msg)
	return true
}

// Done reports whether the model has seen the loop finish.
func (h *Harness) Done() bool {
	return h.model != nil && h.model.done
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

func keyMsgFor(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}
