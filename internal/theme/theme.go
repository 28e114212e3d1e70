package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading               *lipgloss.Style
	PlainFile             *lipgloss.Style
	Directory             *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	Selected              *lipgloss.Style
	Empty                 *lipgloss.Style
	Error                 *lipgloss.Style
	Status                *lipgloss.Style
	Header                *lipgloss.Style
	Footer                *lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	PlainFile: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Directory: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Reverse(true),
	),
	Selected: ptr(
		lipgloss.NewStyle().Bold(true).Reverse(true),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// DisableColor forces every style down to plain text. Bold and reverse
// attributes are dropped as well, so the selection marker column is the only
// remaining cue.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
