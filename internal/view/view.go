// Package view turns a directory snapshot and a selection into the rows the
// terminal draws.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/dirnav/internal/listing"
	"github.com/dustin/go-humanize"
)

// Style tags a row for the renderer.
type Style int

const (
	StylePlainFile Style = iota
	StyleDirectory
)

func (s Style) String() string {
	if s == StyleDirectory {
		return "directory"
	}
	return "plain"
}

// Row is one drawable line.
type Row struct {
	Label       string
	Style       Style
	Highlighted bool
}

// Model is everything the renderer needs for one frame.
type Model struct {
	Dir       string
	Rows      []Row
	Highlight int
	Status    string
}

// Empty reports whether the listing had no entries.
func (m Model) Empty() bool {
	return len(m.Rows) == 0
}

// Build describes snap with the entry at selected highlighted.
func Build(snap listing.Snapshot, selected int) Model {
	return BuildAt(snap, selected, time.Time{})
}

// BuildAt is Build with modification ages in the status line measured against
// now. A zero now leaves ages out.
func BuildAt(snap listing.Snapshot, selected int, now time.Time) Model {
	m := Model{
		Dir:       snap.Dir,
		Rows:      make([]Row, len(snap.Entries)),
		Highlight: -1,
	}
	for i, entry := range snap.Entries {
		m.Rows[i] = Row{Label: entry.Name, Style: styleFor(entry)}
	}
	if entry, ok := snap.At(selected); ok {
		m.Highlight = selected
		m.Rows[selected].Highlighted = true
		m.Status = statusLine(entry, selected, len(snap.Entries), now)
	}
	return m
}

func styleFor(entry listing.Entry) Style {
	if entry.IsDir() {
		return StyleDirectory
	}
	return StylePlainFile
}

func statusLine(entry listing.Entry, idx, total int, now time.Time) string {
	parts := []string{fmt.Sprintf("%d/%d", idx+1, total)}
	if entry.IsDir() {
		parts = append(parts, "dir")
	} else {
		size := entry.Size
		if size < 0 {
			size = 0
		}
		parts = append(parts, humanize.Bytes(uint64(size)))
	}
	if entry.Symlink {
		parts = append(parts, "symlink")
	}
	if !now.IsZero() && !entry.ModTime.IsZero() {
		parts = append(parts, "modified "+humanize.RelTime(entry.ModTime, now, "ago", "from now"))
	}
	return strings.Join(parts, "  ")
}
