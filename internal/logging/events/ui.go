package events

import "github.com/atomicstack/dirnav/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Key(raw, mapped string) {
	logging.Trace("ui.key", map[string]interface{}{"raw": raw, "key": mapped})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}
