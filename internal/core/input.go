package core

import "strings"

// Input is a read-only snapshot of the five buttons for one tick.
type Input interface {
	Left() bool
	Right() bool
	Up() bool
	Down() bool
	Action() bool
}

// Button identifies one physical button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonAction
	NumButtons // Count of buttons, not a button
)

// AllButtons lists every button in bit order.
var AllButtons = []Button{ButtonLeft, ButtonRight, ButtonUp, ButtonDown, ButtonAction}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonAction:
		return "Action"
	default:
		return "Unknown"
	}
}

// Buttons is a bitmask of held buttons, one bit per Button.
// The zero value has nothing held. It is the form inputs take in the
// replay journal.
type Buttons uint8

// ButtonsMask covers every valid button bit.
const ButtonsMask Buttons = 1<<NumButtons - 1

// Press returns a Buttons value with the given buttons held.
func Press(bs ...Button) Buttons {
	var out Buttons
	for _, b := range bs {
		out.Set(b)
	}
	return out
}

// Set marks b as held.
func (s *Buttons) Set(b Button) {
	if b < NumButtons {
		*s |= 1 << b
	}
}

// Clear marks b as released.
func (s *Buttons) Clear(b Button) {
	*s &^= 1 << b
}

// Has reports whether b is held.
func (s Buttons) Has(b Button) bool {
	return b < NumButtons && s&(1<<b) != 0
}

func (s Buttons) Left() bool   { return s.Has(ButtonLeft) }
func (s Buttons) Right() bool  { return s.Has(ButtonRight) }
func (s Buttons) Up() bool     { return s.Has(ButtonUp) }
func (s Buttons) Down() bool   { return s.Has(ButtonDown) }
func (s Buttons) Action() bool { return s.Has(ButtonAction) }

// String lists held buttons joined by "+", or "-" when none are held.
func (s Buttons) String() string {
	if s&ButtonsMask == 0 {
		return "-"
	}
	var names []string
	for _, b := range AllButtons {
		if s.Has(b) {
			names = append(names, b.String())
		}
	}
	return strings.Join(names, "+")
}

// ButtonsOf captures any Input as a Buttons value.
func ButtonsOf(in Input) Buttons {
	if s, ok := in.(Buttons); ok {
		return s & ButtonsMask
	}
	var s Buttons
	if in.Left() {
		s.Set(ButtonLeft)
	}
	if in.Right() {
		s.Set(ButtonRight)
	}
	if in.Up() {
		s.Set(ButtonUp)
	}
	if in.Down() {
		s.Set(ButtonDown)
	}
	if in.Action() {
		s.Set(ButtonAction)
	}
	return s
}

// Debouncer turns continuously sampled button state into rising edges:
// after Update, a button reads true only on the tick it went from released
// to held. Holding a button yields exactly one true tick.
//
// Update must be called exactly once per game tick.
type Debouncer struct {
	prev  Buttons
	edges Buttons
}

// Update samples raw and recomputes the edges for this tick.
func (d *Debouncer) Update(raw Input) {
	cur := ButtonsOf(raw)
	d.edges = cur &^ d.prev
	d.prev = cur
}

// Edges returns the buttons that were pressed this tick.
func (d *Debouncer) Edges() Buttons { return d.edges }

// Reset forgets the previous sample, as if every button had been released.
func (d *Debouncer) Reset() { *d = Debouncer{} }

func (d *Debouncer) Left() bool   { return d.edges.Left() }
func (d *Debouncer) Right() bool  { return d.edges.Right() }
func (d *Debouncer) Up() bool     { return d.edges.Up() }
func (d *Debouncer) Down() bool   { return d.edges.Down() }
func (d *Debouncer) Action() bool { return d.edges.Action() }
