package memory

import "time"

// Clock is the time source of the MBC3 real time clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// rtc register selectors, as written to 0x4000-0x5FFF.
const (
	rtcSeconds  = 0x08
	rtcMinutes  = 0x09
	rtcHours    = 0x0A
	rtcDaysLow  = 0x0B
	rtcDaysHigh = 0x0C
)

const (
	rtcHaltBit  = 0x40
	rtcCarryBit = 0x80
)

// rtc counts seconds since base. Reads see the registers captured by the last
// latch (0 then 1 written to 0x6000-0x7FFF).
type rtc struct {
	clock     Clock
	base      time.Time
	haltedAt  time.Time
	halted    bool
	carry     bool
	latched   [5]byte
	lastLatch byte
}

func newRTC(clock Clock) *rtc {
	if clock == nil {
		clock = systemClock{}
	}
	r := &rtc{clock: clock, base: clock.Now(), lastLatch: 0xFF}
	r.latch()
	return r
}

// SetClock replaces the RTC time source. It is a no-op for cartridges without
// a clock.
func (c *Cartridge) SetClock(clock Clock) {
	if c.rtc == nil {
		return
	}
	c.rtc = newRTC(clock)
}

func (r *rtc) now() time.Time {
	if r.halted {
		return r.haltedAt
	}
	return r.clock.Now()
}

func (r *rtc) elapsed() int64 {
	return int64(r.now().Sub(r.base) / time.Second)
}

func (r *rtc) latch() {
	total := r.elapsed()
	days := total / 86400
	if days > 511 {
		r.carry = true
		days %= 512
	}
	r.latched[0] = byte(total % 60)
	r.latched[1] = byte(total / 60 % 60)
	r.latched[2] = byte(total / 3600 % 24)
	r.latched[3] = byte(days)
	high := byte(days>>8) & 0x01
	if r.halted {
		high |= rtcHaltBit
	}
	if r.carry {
		high |= rtcCarryBit
	}
	r.latched[4] = high
}

func (r *rtc) latchWrite(value byte) {
	if r.lastLatch == 0x00 && value == 0x01 {
		r.latch()
	}
	r.lastLatch = value
}

func (r *rtc) read(reg int) byte {
	return r.latched[reg-rtcSeconds]
}

// write sets one register and rebases the counter so that the clock keeps
// running from the new value.
func (r *rtc) write(reg int, value byte) {
	r.latched[reg-rtcSeconds] = value
	if reg == rtcDaysHigh {
		r.carry = value&rtcCarryBit != 0
		halt := value&rtcHaltBit != 0
		if halt && !r.halted {
			r.haltedAt = r.clock.Now()
		}
		r.halted = halt
	}

	days := int64(r.latched[3]) | int64(r.latched[4]&0x01)<<8
	total := int64(r.latched[0]) + int64(r.latched[1])*60 + int64(r.latched[2])*3600 + days*86400
	r.base = r.now().Add(-time.Duration(total) * time.Second)
}
