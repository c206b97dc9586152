package memory

import (
	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/bit"
)

const divThreshold = 256

// timaThresholds maps TAC bits 0-1 to the number of cycles per TIMA
// increment: 4096, 262144, 65536 and 16384 Hz.
var timaThresholds = [4]int{1024, 16, 64, 256}

// Timer drives DIV and TIMA from elapsed CPU cycles.
type Timer struct {
	divCycles  int
	timaCycles int
	threshold  int

	div  byte
	tima byte
	tma  byte
	tac  byte

	// TimerInterruptHandler is called every time TIMA overflows.
	TimerInterruptHandler func()
}

// NewTimer returns a stopped timer at the lowest frequency.
func NewTimer(irq func()) *Timer {
	return &Timer{
		threshold:             timaThresholds[0],
		TimerInterruptHandler: irq,
	}
}

// Tick advances the counters by cycles.
func (t *Timer) Tick(cycles int) {
	t.divCycles += cycles
	for t.divCycles >= divThreshold {
		t.divCycles -= divThreshold
		t.div++
	}

	if !t.Enabled() {
		return
	}

	t.timaCycles += cycles
	for t.timaCycles >= t.threshold {
		t.timaCycles -= t.threshold
		if t.tima == 0xFF {
			t.tima = t.tma
			if t.TimerInterruptHandler != nil {
				t.TimerInterruptHandler()
			}
			continue
		}
		t.tima++
	}
}

// Enabled reports TAC bit 2.
func (t *Timer) Enabled() bool {
	return bit.IsSet(2, t.tac)
}

// SetFrequency selects the TIMA rate from TAC bits 0-1.
func (t *Timer) SetFrequency(selector byte) {
	threshold := timaThresholds[selector&0x03]
	if threshold != t.threshold {
		t.threshold = threshold
		t.timaCycles = 0
	}
}

func (t *Timer) Read(address uint16) byte {
	switch address {
	case addr.DIV:
		return t.div
	case addr.TIMA:
		return t.tima
	case addr.TMA:
		return t.tma
	case addr.TAC:
		return t.tac | 0xF8
	}
	return 0xFF
}

func (t *Timer) Write(address uint16, value byte) {
	switch address {
	case addr.DIV:
		t.div = 0
		t.divCycles = 0
	case addr.TIMA:
		t.tima = value
	case addr.TMA:
		t.tma = value
	case addr.TAC:
		t.tac = value & 0x07
		t.SetFrequency(value)
	}
}
