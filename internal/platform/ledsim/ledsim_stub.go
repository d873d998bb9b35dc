//go:build !ebiten

package ledsim

import "github.com/vovakirdan/matrix-arcade/internal/host"

// Available reports whether the emulator window is compiled in.
const Available = false

// Run always fails in builds without the ebiten tag.
func Run(*host.Session, Options) error {
	return ErrUnavailable
}
