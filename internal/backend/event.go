package backend

// Key is the fixed alphabet of keys the browser reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyQuit
	KeyUp
	KeyDown
	KeyBack
	KeyEnter
)

var keyNames = map[Key]string{
	KeyOther: "other",
	KeyQuit:  "quit",
	KeyUp:    "up",
	KeyDown:  "down",
	KeyBack:  "back",
	KeyEnter: "enter",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "other"
}

// EventKind distinguishes key input from timer ticks.
type EventKind int

const (
	EventTick EventKind = iota
	EventInput
)

// Event is either Input carrying a Key, or a Tick carrying nothing.
type Event struct {
	Kind EventKind
	Key  Key
}

// TickEvent is the liveness signal pushed by timer and watcher producers.
var TickEvent = Event{Kind: EventTick}

// InputEvent wraps a key press.
func InputEvent(k Key) Event {
	return Event{Kind: EventInput, Key: k}
}

// IsInput reports whether the event carries a key.
func (e Event) IsInput() bool {
	return e.Kind == EventInput
}
