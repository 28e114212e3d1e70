// Package listing materialises the children of a directory into an ordered,
// classified snapshot.
package listing

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"
)

// Kind classifies an entry. It is decided once when the snapshot is taken.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Entry is one child of a listed directory.
type Entry struct {
	Name    string
	Path    string
	Kind    Kind
	Size    int64
	ModTime time.Time
	Symlink bool
}

// IsDir reports whether the entry was classified as a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// Snapshot holds the entries of Dir captured at one point in time. Entries are
// ordered by name and that order is the index space used for selection.
type Snapshot struct {
	Dir     string
	Entries []Entry
}

// Len returns the number of entries.
func (s Snapshot) Len() int {
	return len(s.Entries)
}

// At returns the entry at idx, or false when idx is out of range.
func (s Snapshot) At(idx int) (Entry, bool) {
	if idx < 0 || idx >= len(s.Entries) {
		return Entry{}, false
	}
	return s.Entries[idx], true
}

// ErrInvalidName marks a child whose name cannot be displayed as UTF-8 text.
var ErrInvalidName = errors.New("name is not valid UTF-8")

// DirectoryReadError reports a directory that could not be listed.
type DirectoryReadError struct {
	Path string
	Err  error
}

func (e *DirectoryReadError) Error() string {
	return fmt.Sprintf("read directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryReadError) Unwrap() error {
	return e.Err
}

// Read lists the immediate children of dir. Any failure, including a child
// name that is not valid UTF-8, fails the whole read.
func Read(dir string) (Snapshot, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Snapshot{}, &DirectoryReadError{Path: dir, Err: err}
	}
	dirents, err := os.ReadDir(abs)
	if err != nil {
		return Snapshot{}, &DirectoryReadError{Path: abs, Err: err}
	}
	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		name := de.Name()
		if !utf8.ValidString(name) {
			return Snapshot{}, &DirectoryReadError{Path: abs, Err: fmt.Errorf("%q: %w", name, ErrInvalidName)}
		}
		entries = append(entries, newEntry(abs, de))
	}
	return Snapshot{Dir: abs, Entries: entries}, nil
}

// newEntry classifies de using the metadata of its target, so symlinks to
// directories are directories. Dangling links fall back to the link itself.
func newEntry(dir string, de fs.DirEntry) Entry {
	entry := Entry{
		Name:    de.Name(),
		Path:    filepath.Join(dir, de.Name()),
		Kind:    KindFile,
		Symlink: de.Type()&fs.ModeSymlink != 0,
	}
	info, err := os.Stat(entry.Path)
	if err != nil {
		info, err = de.Info()
		if err != nil {
			return entry
		}
	}
	if info.IsDir() {
		entry.Kind = KindDirectory
	}
	entry.Size = info.Size()
	entry.ModTime = info.ModTime()
	return entry
}
