package state

import (
	"path/filepath"

	"github.com/atomicstack/dirnav/internal/listing"
)

// Navigation owns the directory being browsed and the selected entry index.
// It is mutated only by the control loop.
type Navigation struct {
	Dir      string
	Selected int
}

// NewNavigation starts browsing at dir with the first entry selected.
func NewNavigation(dir string) *Navigation {
	return &Navigation{Dir: filepath.Clean(dir)}
}

// Enter descends into the selected entry when it is a directory. Selecting a
// file, or an empty snapshot, leaves the state untouched.
func (n *Navigation) Enter(snap listing.Snapshot) bool {
	entry, ok := snap.At(n.Selected)
	if !ok || !entry.IsDir() {
		return false
	}
	n.Dir = entry.Path
	n.Selected = 0
	return true
}

// Back moves to the parent directory. The parent of a filesystem root is the
// root itself. The selection is always reset.
func (n *Navigation) Back() bool {
	parent := filepath.Dir(n.Dir)
	changed := parent != n.Dir
	n.Dir = parent
	n.Selected = 0
	return changed
}
