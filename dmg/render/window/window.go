// Package window is a desktop viewer built on ebiten.
package window

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/valerio/go-dmg/dmg/debug"
	"github.com/valerio/go-dmg/dmg/memory"
	"github.com/valerio/go-dmg/dmg/render"
	"github.com/valerio/go-dmg/dmg/video"
)

var keymap = map[ebiten.Key]memory.Button{
	ebiten.KeyArrowRight: memory.ButtonRight,
	ebiten.KeyArrowLeft:  memory.ButtonLeft,
	ebiten.KeyArrowUp:    memory.ButtonUp,
	ebiten.KeyArrowDown:  memory.ButtonDown,
	ebiten.KeyZ:          memory.ButtonA,
	ebiten.KeyX:          memory.ButtonB,
	ebiten.KeyEnter:      memory.ButtonStart,
	ebiten.KeyShiftRight: memory.ButtonSelect,
	ebiten.KeyBackspace:  memory.ButtonSelect,
}

type Config struct {
	Title string
	Scale int
	// SnapshotDir receives F12 screenshots; empty means the working directory.
	SnapshotDir string
}

// Viewer implements ebiten.Game on top of a SharedFrame.
type Viewer struct {
	cfg    Config
	shared *video.SharedFrame
	input  render.InputSink

	frame video.FrameBuffer
	rgba  []byte
	tex   *ebiten.Image
}

func New(cfg Config, shared *video.SharedFrame, input render.InputSink) *Viewer {
	if cfg.Scale <= 0 {
		cfg.Scale = 3
	}
	if cfg.Title == "" {
		cfg.Title = "dmg"
	}
	return &Viewer{
		cfg:    cfg,
		shared: shared,
		input:  input,
		rgba:   make([]byte, video.Width*video.Height*4),
	}
}

// Run opens the window and blocks until it is closed, then asks the emulator
// to quit. ebiten needs the main goroutine.
func (v *Viewer) Run() error {
	defer v.shared.Quit()

	ebiten.SetWindowTitle(v.cfg.Title)
	ebiten.SetWindowSize(video.Width*v.cfg.Scale, video.Height*v.cfg.Scale)
	return ebiten.RunGame(v)
}

func (v *Viewer) Update() error {
	if v.shared.ShouldQuit() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		v.shared.Quit()
		return ebiten.Termination
	}

	for key, b := range keymap {
		if inpututil.IsKeyJustPressed(key) {
			v.input.QueueInput(b, true)
		}
		if inpututil.IsKeyJustReleased(key) {
			v.input.QueueInput(b, false)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		if _, err := debug.SaveSnapshot(&v.frame, "dmg_snapshot", v.cfg.SnapshotDir); err != nil {
			slog.Error("Failed to save snapshot", "error", err)
		}
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.tex == nil {
		v.tex = ebiten.NewImage(video.Width, video.Height)
	}
	v.shared.Snapshot(&v.frame)
	fillRGBA(v.rgba, &v.frame)
	v.tex.WritePixels(v.rgba)
	screen.DrawImage(v.tex, nil)
}

func (v *Viewer) Layout(outW, outH int) (int, int) { return video.Width, video.Height }

// fillRGBA expands the RGB framebuffer into dst, opaque.
func fillRGBA(dst []byte, fb *video.FrameBuffer) {
	src := fb.Bytes()
	for i, j := 0, 0; i < len(src); i, j = i+3, j+4 {
		dst[j] = src[i]
		dst[j+1] = src[i+1]
		dst[j+2] = src[i+2]
		dst[j+3] = 0xFF
	}
}
