package host

import (
	"time"

	"github.com/vovakirdan/matrix-arcade/internal/core"
)

// HoldTracker turns discrete key events into held button state for targets
// that cannot observe key releases, such as terminals. A button counts as
// held until window has passed since its last press event.
type HoldTracker struct {
	window time.Duration
	last   [core.NumButtons]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{window: window}
}

// Press records a key event for b at now.
func (h *HoldTracker) Press(b core.Button, now time.Time) {
	if int(b) < len(h.last) {
		h.last[b] = now
	}
}

// Held returns the buttons considered held at now.
func (h *HoldTracker) Held(now time.Time) core.Buttons {
	var s core.Buttons
	for i, t := range h.last {
		if !t.IsZero() && now.Sub(t) < h.window {
			s.Set(core.Button(i))
		}
	}
	return s
}

// Release forgets every press, as if all keys were let go.
func (h *HoldTracker) Release() {
	h.last = [core.NumButtons]time.Time{}
}
