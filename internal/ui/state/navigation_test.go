package state

import (
	"path/filepath"
	"testing"

	"github.com/atomicstack/dirnav/internal/listing"
)

func sampleSnapshot() listing.Snapshot {
	return listing.Snapshot{
		Dir: "/tmp/x",
		Entries: []listing.Entry{
			{Name: "a", Path: "/tmp/x/a", Kind: listing.KindDirectory},
			{Name: "b", Path: "/tmp/x/b", Kind: listing.KindFile},
			{Name: "c", Path: "/tmp/x/c", Kind: listing.KindFile},
		},
	}
}

func TestNewNavigationCleansPath(t *testing.T) {
	n := NewNavigation("/tmp/x/../x/")
	if n.Dir != filepath.Clean("/tmp/x") {
		t.Fatalf("expected cleaned path, got %q", n.Dir)
	}
	if n.Selected != 0 {
		t.Fatalf("expected initial selection 0, got %d", n.Selected)
	}
}

func TestEnterDirectory(t *testing.T) {
	n := NewNavigation("/tmp/x")
	if !n.Enter(sampleSnapshot()) {
		t.Fatalf("expected enter into directory to change state")
	}
	if n.Dir != "/tmp/x/a" {
		t.Fatalf("expected dir /tmp/x/a, got %q", n.Dir)
	}
	if n.Selected != 0 {
		t.Fatalf("expected selection reset, got %d", n.Selected)
	}
}

func TestEnterFileIsNoOp(t *testing.T) {
	n := &Navigation{Dir: "/tmp/x", Selected: 2}
	if n.Enter(sampleSnapshot()) {
		t.Fatalf("expected enter on a file to be a no-op")
	}
	if n.Dir != "/tmp/x" || n.Selected != 2 {
		t.Fatalf("expected state untouched, got %+v", *n)
	}
}

func TestEnterEmptyListingIsNoOp(t *testing.T) {
	n := NewNavigation("/tmp/empty")
	if n.Enter(listing.Snapshot{Dir: "/tmp/empty"}) {
		t.Fatalf("expected enter on empty listing to be a no-op")
	}
	if n.Dir != "/tmp/empty" || n.Selected != 0 {
		t.Fatalf("expected state untouched, got %+v", *n)
	}
}

func TestEnterThenBackResetsSelection(t *testing.T) {
	snap := sampleSnapshot()
	n := NewNavigation("/tmp/x")
	n.Enter(snap)
	n.Selected = 7
	n.Back()
	if n.Dir != "/tmp/x" {
		t.Fatalf("expected dir restored to /tmp/x, got %q", n.Dir)
	}
	if n.Selected != 0 {
		t.Fatalf("expected selection 0 after round trip, got %d", n.Selected)
	}
}

func TestBackAtRootKeepsRoot(t *testing.T) {
	root := filepath.VolumeName(t.TempDir()) + string(filepath.Separator)
	n := &Navigation{Dir: root, Selected: 3}
	if n.Back() {
		t.Fatalf("expected back at root to leave the directory unchanged")
	}
	if n.Dir != root {
		t.Fatalf("expected dir %q, got %q", root, n.Dir)
	}
	if n.Selected != 0 {
		t.Fatalf("expected selection reset at root, got %d", n.Selected)
	}
}
