package ui

import (
	"strings"

	"github.com/atomicstack/dirnav/internal/view"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	selectedIndicator = "▌"
	itemIndicator     = " "
	emptyPlaceholder  = "(empty directory)"
	loadingText       = "Loading…"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text already carries ANSI escapes
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.done {
		return ""
	}
	if !m.hasFrame {
		return renderLines(applyWidth([]styledLine{{text: loadingText, style: styles.Loading}}, m.width))
	}
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.frame.Dir, style: styles.Header})
	if m.frame.Empty() {
		lines = append(lines, styledLine{text: emptyPlaceholder, style: styles.Empty})
	} else {
		m.syncViewport()
		rows := m.frame.Rows
		start := 0
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(rows) > maxItems {
			start = m.viewport.Offset
			rows = rows[start : start+maxItems]
		}
		for _, row := range rows {
			lines = append(lines, buildItemLine(row, m.width))
		}
	}
	lines = append(lines, styledLine{text: m.frame.Status, style: styles.Status})
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.help.ShortHelpView(m.keys.ShortHelp()), raw: true})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

// buildItemLine constructs a single styledLine for a listing row. When width
// is positive the text is padded so the highlight spans the full line.
func buildItemLine(row view.Row, width int) styledLine {
	label := ansi.Strip(row.Label)
	lineStyle := styles.PlainFile
	if row.Style == view.StyleDirectory {
		label += "/"
		lineStyle = styles.Directory
	}
	indicator := itemIndicator
	indicatorStyle := styles.ItemIndicator
	if row.Highlighted {
		indicator = selectedIndicator
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.Selected
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - runewidth.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

// maxVisibleItems reports how many listing rows fit, or -1 when the height is
// unknown.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // header + status
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return runewidth.Truncate(text, 1, "")
	}
	return runewidth.Truncate(text, width, "…")
}
