// Package timing paces emulation at the speed of the real hardware.
package timing

import (
	"log/slog"
	"time"
)

const (
	// CyclesPerFrame is one full LCD frame, 154 lines of 456 cycles.
	CyclesPerFrame = 70224
	ClockHz        = 4194304

	// maxLag is how far behind a limiter may fall before it stops trying to
	// catch up.
	maxLag = 5 * time.Millisecond
)

// FrameRate is the DMG refresh rate, about 59.73 Hz.
func FrameRate() float64 {
	return float64(ClockHz) / float64(CyclesPerFrame)
}

// FrameDuration returns the target duration of a single frame.
func FrameDuration() time.Duration {
	return time.Duration(float64(time.Second) / FrameRate())
}

// Limiter controls frame pacing.
type Limiter interface {
	// WaitForNextFrame blocks until the next frame is due. It returns
	// immediately when emulation is behind schedule.
	WaitForNextFrame()
	// Reset restarts the schedule from now, after a pause.
	Reset()
}

// New returns a sleeping limiter, or one that never waits if limit is false.
func New(limit bool) Limiter {
	if !limit {
		return noOpLimiter{}
	}
	return NewSleepLimiter()
}

type noOpLimiter struct{}

func (noOpLimiter) WaitForNextFrame() {}
func (noOpLimiter) Reset()            {}

// SleepLimiter sleeps until a fixed frame deadline. The deadline advances by
// exactly one frame per call so rounding does not accumulate.
type SleepLimiter struct {
	frame time.Duration
	next  time.Time
	count int64

	now   func() time.Time
	sleep func(time.Duration)
}

func NewSleepLimiter() *SleepLimiter {
	return newSleepLimiter(time.Now, time.Sleep)
}

func newSleepLimiter(now func() time.Time, sleep func(time.Duration)) *SleepLimiter {
	s := &SleepLimiter{frame: FrameDuration(), now: now, sleep: sleep}
	s.Reset()
	return s
}

func (s *SleepLimiter) WaitForNextFrame() {
	s.next = s.next.Add(s.frame)
	s.count++

	wait := s.next.Sub(s.now())
	switch {
	case wait > 0:
		s.sleep(wait)
	case wait < -maxLag:
		slog.Debug("Frame pacing behind, resyncing", "lag", -wait, "frame", s.count)
		s.next = s.now()
	}
}

func (s *SleepLimiter) Reset() {
	s.next = s.now()
	s.count = 0
}
