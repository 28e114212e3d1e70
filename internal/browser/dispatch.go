package browser

import (
	"github.com/atomicstack/dirnav/internal/backend"
	"github.com/atomicstack/dirnav/internal/listing"
	"github.com/atomicstack/dirnav/internal/logging/events"
)

// dispatch applies evt to the navigation state. snap must be the listing the
// current selection refers to. It reports whether the loop should stop.
func (l *Loop) dispatch(evt backend.Event, snap listing.Snapshot) bool {
	if !evt.IsInput() {
		return false
	}
	nav := l.Nav
	count := snap.Len()
	switch evt.Key {
	case backend.KeyQuit:
		return true
	case backend.KeyDown:
		if nav.MoveDown(count) {
			events.Nav.Move(nav.Dir, nav.Selected)
		}
	case backend.KeyUp:
		if nav.MoveUp(count) {
			events.Nav.Move(nav.Dir, nav.Selected)
		}
	case backend.KeyEnter:
		from := nav.Dir
		if nav.Enter(snap) {
			events.Nav.Enter(from, nav.Dir)
		} else if entry, ok := snap.At(nav.Selected); ok {
			events.Nav.EnterFile(from, entry.Name)
		}
	case backend.KeyBack:
		from := nav.Dir
		nav.Back()
		events.Nav.Back(from, nav.Dir)
	default:
		events.Nav.Ignored(evt.Key.String())
	}
	return false
}
