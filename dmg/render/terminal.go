// Package render presents frames from a running emulator and feeds input
// back to it.
package render

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-dmg/dmg/memory"
	"github.com/valerio/go-dmg/dmg/timing"
	"github.com/valerio/go-dmg/dmg/video"
)

// InputSink receives button transitions. It must not block.
type InputSink interface {
	QueueInput(b memory.Button, pressed bool)
}

// Terminals report key presses but not releases, so a pressed button is
// released after holdTime without a repeat.
const holdTime = 120 * time.Millisecond

// halfBlock draws two vertical pixels per cell: the foreground is the upper
// pixel, the background the lower one.
const halfBlock = '▀'

var keymap = map[tcell.Key]memory.Button{
	tcell.KeyRight:      memory.ButtonRight,
	tcell.KeyLeft:       memory.ButtonLeft,
	tcell.KeyUp:         memory.ButtonUp,
	tcell.KeyDown:       memory.ButtonDown,
	tcell.KeyEnter:      memory.ButtonStart,
	tcell.KeyBackspace:  memory.ButtonSelect,
	tcell.KeyBackspace2: memory.ButtonSelect,
}

var runemap = map[rune]memory.Button{
	'z': memory.ButtonA,
	'a': memory.ButtonA,
	'x': memory.ButtonB,
	's': memory.ButtonB,
	' ': memory.ButtonSelect,
}

type TerminalRenderer struct {
	screen tcell.Screen
	shared *video.SharedFrame
	input  InputSink

	frame   video.FrameBuffer
	lastSeq uint64

	held map[memory.Button]time.Time
	keys chan memory.Button
}

func NewTerminalRenderer(shared *video.SharedFrame, input InputSink) (*TerminalRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	return newTerminalRenderer(screen, shared, input)
}

func newTerminalRenderer(screen tcell.Screen, shared *video.SharedFrame, input InputSink) (*TerminalRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	return &TerminalRenderer{
		screen: screen,
		shared: shared,
		input:  input,
		held:   make(map[memory.Button]time.Time),
		keys:   make(chan memory.Button, 16),
	}, nil
}

// Run draws frames until the user quits or the emulator stops. It asks the
// emulator to quit on the way out.
func (t *TerminalRenderer) Run() error {
	defer func() {
		slog.Info("Finishing terminal")
		t.shared.Quit()
		t.screen.Fini()
	}()

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	go t.pollEvents()

	ticker := time.NewTicker(timing.FrameDuration())
	defer ticker.Stop()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	for !t.shared.ShouldQuit() {
		select {
		case now := <-ticker.C:
			t.releaseExpired(now)
			t.draw()
			t.screen.Show()
		case b := <-t.keys:
			t.press(b, time.Now())
		case <-signals:
			slog.Info("Received signal to stop")
			return nil
		}
	}
	return nil
}

func (t *TerminalRenderer) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		t.handleEvent(ev)
	}
}

// handleEvent runs on the polling goroutine. Button presses go through the
// keys channel so held is only touched by Run.
func (t *TerminalRenderer) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.shared.Quit()
			return
		case tcell.KeyRune:
			if b, ok := runemap[ev.Rune()]; ok {
				t.sendKey(b)
			}
			return
		}
		if b, ok := keymap[ev.Key()]; ok {
			t.sendKey(b)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *TerminalRenderer) sendKey(b memory.Button) {
	select {
	case t.keys <- b:
	default:
	}
}

func (t *TerminalRenderer) press(b memory.Button, now time.Time) {
	if _, ok := t.held[b]; !ok {
		t.input.QueueInput(b, true)
	}
	t.held[b] = now
}

func (t *TerminalRenderer) releaseExpired(now time.Time) {
	for b, pressed := range t.held {
		if now.Sub(pressed) >= holdTime {
			t.input.QueueInput(b, false)
			delete(t.held, b)
		}
	}
}

func grey(c video.GBColor) tcell.Color {
	return tcell.NewRGBColor(int32(c), int32(c), int32(c))
}

// draw copies the latest published frame to the screen, skipping frames that
// were already drawn.
func (t *TerminalRenderer) draw() {
	seq := t.shared.Snapshot(&t.frame)
	if seq == t.lastSeq {
		return
	}
	t.lastSeq = seq

	for y := 0; y < video.Height/2; y++ {
		for x := 0; x < video.Width; x++ {
			style := tcell.StyleDefault.
				Foreground(grey(t.frame.GetPixel(x, 2*y))).
				Background(grey(t.frame.GetPixel(x, 2*y+1)))
			t.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
}
