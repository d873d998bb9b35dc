//go:build ebiten

package ledsim

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/matrix-arcade/internal/core"
	"github.com/vovakirdan/matrix-arcade/internal/host"
)

// Available reports whether the emulator window is compiled in.
const Available = true

var (
	ledOnColor  = color.RGBA{255, 176, 0, 255}
	ledOffColor = color.RGBA{40, 28, 10, 255}
	legendColor = color.RGBA{190, 190, 190, 255}
)

// buttonKeys maps each game button to the keys that hold it.
var buttonKeys = [core.NumButtons][]ebiten.Key{
	core.ButtonLeft:   {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ButtonRight:  {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ButtonUp:     {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ButtonDown:   {ebiten.KeyS, ebiten.KeyArrowDown},
	core.ButtonAction: {ebiten.KeySpace},
}

// App adapts a host.Session to the ebiten.Game interface.
type App struct {
	sess  *host.Session
	opts  Options
	log   *log.Logger
	clk   host.Clock
	ledOn *ebiten.Image
	ledOf *ebiten.Image
	face  text.Face

	clipOnce sync.Once
	clipOK   bool
}

// New constructs an App for sess.
func New(sess *host.Session, opts Options) *App {
	opts = opts.withDefaults()
	size := opts.Scale - 1

	on := ebiten.NewImage(size, size)
	on.Fill(ledOnColor)
	off := ebiten.NewImage(size, size)
	off.Fill(ledOffColor)

	return &App{
		sess:  sess,
		opts:  opts,
		log:   opts.Logger,
		ledOn: on,
		ledOf: off,
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update reads the held keys and runs one session tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.copyFrame()
	}

	var raw core.Buttons
	for b, keys := range buttonKeys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				raw.Set(core.Button(b))
				break
			}
		}
	}

	return a.sess.Tick(a.clk.Since(time.Now()), raw)
}

// copyFrame puts the current frame on the clipboard as half-block text.
func (a *App) copyFrame() {
	a.clipOnce.Do(func() {
		a.clipOK = clipboard.Init() == nil
	})
	if !a.clipOK {
		a.log.Warn("clipboard unavailable")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(a.sess.Frame().String()))
	a.log.Info("frame copied", "tick", a.sess.Ticks())
}

// Draw renders every LED and the legend.
func (a *App) Draw(screen *ebiten.Image) {
	f := a.sess.Frame()
	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < f.Columns(); c++ {
			img := a.ledOf
			if f.Get(r, c) {
				img = a.ledOn
			}
			rect := ledRect(r, c, a.opts.Scale)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
			screen.DrawImage(img, op)
		}
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(legendOrigin(f.Rows(), a.opts.Scale))
	op.ColorScale.ScaleWithColor(legendColor)
	text.Draw(screen, Legend, a.face, op)
}

// Layout returns the logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	f := a.sess.Frame()
	return screenSize(f.Rows(), f.Columns(), a.opts.Scale)
}

// Run opens the emulator window and blocks until it is closed.
func Run(sess *host.Session, opts Options) error {
	app := New(sess, opts)
	w, h := app.Layout(0, 0)

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(app.opts.Title)
	ebiten.SetTPS(tps(app.opts.Tick))

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("ledsim: %w", err)
	}
	return nil
}
