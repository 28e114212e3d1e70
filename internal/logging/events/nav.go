package events

import "github.com/atomicstack/dirnav/internal/logging"

type NavTracer struct{}

type LoopTracer struct{}

type WatchTracer struct{}

var (
	Nav   = NavTracer{}
	Loop  = LoopTracer{}
	Watch = WatchTracer{}
)

func (NavTracer) Move(dir string, selected int) {
	logging.Trace("nav.move", map[string]interface{}{"dir": dir, "selected": selected})
}

func (NavTracer) Enter(from, to string) {
	logging.Trace("nav.enter", map[string]interface{}{"from": from, "to": to})
}

func (NavTracer) EnterFile(dir, name string) {
	logging.Trace("nav.enter.file", map[string]interface{}{"dir": dir, "name": name})
}

func (NavTracer) Back(from, to string) {
	logging.Trace("nav.back", map[string]interface{}{"from": from, "to": to})
}

func (NavTracer) Ignored(key string) {
	logging.Trace("nav.ignored", map[string]interface{}{"key": key})
}

func (NavTracer) Quit(dir string) {
	logging.Trace("nav.quit", map[string]interface{}{"dir": dir})
}

func (LoopTracer) Snapshot(dir string, entries int) {
	logging.Trace("loop.snapshot", map[string]interface{}{"dir": dir, "entries": entries})
}

func (LoopTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("loop.error", map[string]interface{}{"error": err.Error()})
}

func (WatchTracer) Follow(dir string) {
	logging.Trace("watch.follow", map[string]interface{}{"dir": dir})
}

func (WatchTracer) Change(name, op string) {
	logging.Trace("watch.change", map[string]interface{}{"name": name, "op": op})
}
