// Package serial provides the device attached to the link port.
package serial

import (
	"log/slog"
	"strings"

	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/bit"
)

// cyclesPerByte is the DMG internal clock transfer time for 8 bits.
const cyclesPerByte = 4096

// LogSink is a link port with nothing plugged in that logs every byte sent by
// the game as text. Test ROMs report their results this way.
type LogSink struct {
	irq    func()
	logger *slog.Logger

	sb, sc    byte
	active    bool
	countdown int

	timed      bool
	line       []byte
	transcript strings.Builder
}

type Option func(*LogSink)

// WithFixedTiming completes each transfer after 4096 cycles instead of
// immediately.
func WithFixedTiming() Option { return func(s *LogSink) { s.timed = true } }

// WithLogger replaces the default slog logger.
func WithLogger(l *slog.Logger) Option { return func(s *LogSink) { s.logger = l } }

// NewLogSink creates the sink. irq is called when a transfer completes and
// should request the Serial interrupt.
func NewLogSink(irq func(), opts ...Option) *LogSink {
	s := &LogSink{
		irq:    irq,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LogSink) Read(address uint16) byte {
	if address == addr.SC {
		return s.sc | 0x7E
	}
	return s.sb
}

func (s *LogSink) Write(address uint16, value byte) {
	if address == addr.SB {
		s.sb = value
		return
	}
	s.sc = value
	if s.active || !bit.IsSet(7, s.sc) || !bit.IsSet(0, s.sc) {
		return
	}
	s.send(s.sb)
	if !s.timed {
		s.complete()
		return
	}
	s.active = true
	s.countdown = cyclesPerByte
}

func (s *LogSink) Tick(cycles int) {
	if !s.active {
		return
	}
	s.countdown -= cycles
	if s.countdown <= 0 {
		s.complete()
	}
}

// Transcript returns every byte sent so far.
func (s *LogSink) Transcript() string {
	return s.transcript.String()
}

func (s *LogSink) send(b byte) {
	s.transcript.WriteByte(b)
	if b == 0 || b == '\n' || b == '\r' {
		s.flush()
		return
	}
	s.line = append(s.line, b)
}

func (s *LogSink) flush() {
	if len(s.line) == 0 {
		return
	}
	s.logger.Info("serial", "line", string(s.line))
	s.line = s.line[:0]
}

func (s *LogSink) complete() {
	// no peer: the received byte is all ones
	s.sb = 0xFF
	s.sc = bit.Reset(7, s.sc)
	s.active = false
	s.countdown = 0
	if s.irq != nil {
		s.irq()
	}
}
