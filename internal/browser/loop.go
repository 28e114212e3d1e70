// Package browser runs the navigation loop: read the current directory,
// render it, wait for one event, apply it, repeat.
package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/dirnav/internal/backend"
	"github.com/atomicstack/dirnav/internal/listing"
	"github.com/atomicstack/dirnav/internal/logging"
	"github.com/atomicstack/dirnav/internal/logging/events"
	"github.com/atomicstack/dirnav/internal/ui/state"
	"github.com/atomicstack/dirnav/internal/view"
)

// EventSource yields the merged input and timer stream.
type EventSource interface {
	Next(ctx context.Context) (backend.Event, error)
}

// Renderer draws one frame.
type Renderer interface {
	Render(view.Model) error
}

// Observer is told whenever the loop starts showing a different directory.
type Observer interface {
	Follow(dir string) error
}

// ReadFunc produces a snapshot of a directory.
type ReadFunc func(dir string) (listing.Snapshot, error)

// Loop wires navigation state to its collaborators. Nav, Source and Renderer
// are required; Read defaults to listing.Read and Now to time.Now.
type Loop struct {
	Nav      *state.Navigation
	Source   EventSource
	Renderer Renderer
	Read     ReadFunc
	Observer Observer
	Now      func() time.Time
}

var errIncomplete = errors.New("browser: loop requires navigation, source and renderer")

// Run iterates until a quit key arrives or a collaborator fails. A quit
// returns nil without reading or rendering again.
func (l *Loop) Run(ctx context.Context) error {
	if l.Nav == nil || l.Source == nil || l.Renderer == nil {
		return errIncomplete
	}
	read := l.Read
	if read == nil {
		read = listing.Read
	}
	now := l.Now
	if now == nil {
		now = time.Now
	}
	watched := ""
	for {
		snap, err := read(l.Nav.Dir)
		if err != nil {
			events.Loop.Error(err)
			return err
		}
		l.Nav.Clamp(snap.Len())
		events.Loop.Snapshot(snap.Dir, snap.Len())
		if l.Observer != nil && snap.Dir != watched {
			watched = snap.Dir
			if err := l.Observer.Follow(snap.Dir); err != nil {
				logging.Error(err)
			}
		}
		if err := l.Renderer.Render(view.BuildAt(snap, l.Nav.Selected, now())); err != nil {
			return fmt.Errorf("render %s: %w", snap.Dir, err)
		}
		evt, err := l.Source.Next(ctx)
		if err != nil {
			events.Loop.Error(err)
			return err
		}
		if l.dispatch(evt, snap) {
			events.Nav.Quit(l.Nav.Dir)
			return nil
		}
	}
}
