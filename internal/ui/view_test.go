package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/dirnav/internal/view"
)

func frameModel(opts Options, frame view.Model) *Model {
	m := NewModel(opts, nil, NewScreen())
	m.Update(frameMsg{frame: frame})
	return m
}

func TestViewShowsLoadingBeforeFirstFrame(t *testing.T) {
	m := NewModel(Options{}, nil, NewScreen())
	if got := m.View(); !strings.Contains(got, loadingText) {
		t.Fatalf("expected loading text, got %q", got)
	}
}

func TestViewListsEntries(t *testing.T) {
	m := frameModel(Options{}, view.Model{
		Dir: "/tmp/x",
		Rows: []view.Row{
			{Label: "a", Style: view.StyleDirectory, Highlighted: true},
			{Label: "b"},
			{Label: "c"},
		},
		Highlight: 0,
		Status:    "1/3  dir",
	})
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header, 3 rows and status, got %d lines:\n%s", len(lines), m.View())
	}
	if !strings.Contains(lines[0], "/tmp/x") {
		t.Fatalf("expected header with directory, got %q", lines[0])
	}
	if !strings.Contains(lines[1], selectedIndicator+" a/") {
		t.Fatalf("expected highlighted directory row, got %q", lines[1])
	}
	if strings.Contains(lines[2], selectedIndicator) || !strings.Contains(lines[2], "b") {
		t.Fatalf("expected plain row b, got %q", lines[2])
	}
	if strings.Contains(lines[2], "b/") {
		t.Fatalf("expected no directory suffix on a file, got %q", lines[2])
	}
	if !strings.Contains(lines[4], "1/3  dir") {
		t.Fatalf("expected status line, got %q", lines[4])
	}
}

func TestViewShowsEmptyPlaceholder(t *testing.T) {
	m := frameModel(Options{}, view.Model{Dir: "/tmp/empty", Highlight: -1})
	if got := m.View(); !strings.Contains(got, emptyPlaceholder) {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestViewStripsControlSequencesFromNames(t *testing.T) {
	m := frameModel(Options{}, view.Model{
		Dir:  "/tmp",
		Rows: []view.Row{{Label: "\x1b[31mred\x1b[0m"}},
	})
	got := m.View()
	if strings.Contains(got, "\x1b[31m") {
		t.Fatalf("expected escape sequences removed, got %q", got)
	}
	if !strings.Contains(got, "red") {
		t.Fatalf("expected name text kept, got %q", got)
	}
}

func TestViewTruncatesToWidth(t *testing.T) {
	m := frameModel(Options{Width: 10}, view.Model{
		Dir:  "/a/very/long/directory/name",
		Rows: []view.Row{{Label: "a-rather-long-file-name", Highlighted: true}},
	})
	for _, line := range strings.Split(m.View(), "\n") {
		if w := len([]rune(line)); w > 10 {
			t.Fatalf("expected lines of at most 10 columns, got %d: %q", w, line)
		}
	}
	if !strings.Contains(m.View(), "…") {
		t.Fatalf("expected truncation marker")
	}
}

func TestViewScrollsToSelection(t *testing.T) {
	rows := make([]view.Row, 10)
	for i := range rows {
		rows[i] = view.Row{Label: string(rune('a' + i))}
	}
	rows[9].Highlighted = true
	m := frameModel(Options{Height: 6}, view.Model{Dir: "/tmp", Rows: rows, Highlight: 9})

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[4], selectedIndicator+" j") {
		t.Fatalf("expected selected row j at the bottom of the listing, got %q", lines[4])
	}
	if strings.Contains(m.View(), "  a") {
		t.Fatalf("expected row a scrolled out of view")
	}
}

func TestViewFooterShowsHelp(t *testing.T) {
	m := frameModel(Options{ShowFooter: true}, view.Model{Dir: "/tmp", Rows: []view.Row{{Label: "a"}}})
	got := m.View()
	for _, want := range []string{"quit", "parent", "open"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected footer to mention %q, got %q", want, got)
		}
	}
}

func TestLimitHeightAddsEllipsis(t *testing.T) {
	lines := []styledLine{{text: "a"}, {text: "b"}, {text: "c"}}
	got := limitHeight(lines, 2, 0)
	if len(got) != 2 || got[1].text != "…" {
		t.Fatalf("expected trailing ellipsis, got %#v", got)
	}
}
