package video

import (
	"sync"
	"sync/atomic"
)

// SharedFrame hands completed frames from the emulation goroutine to a
// viewer goroutine. Both sides hold the lock only to copy the frame; the quit
// flag is lock free.
type SharedFrame struct {
	mu    sync.Mutex
	frame FrameBuffer
	seq   uint64

	quit atomic.Bool
}

func NewSharedFrame() *SharedFrame {
	s := &SharedFrame{}
	s.frame.Fill(WhiteColor)
	return s
}

// Publish copies fb for viewers. It never waits: if a viewer is copying the
// previous frame, this one is dropped and Publish returns false.
func (s *SharedFrame) Publish(fb *FrameBuffer) bool {
	if !s.mu.TryLock() {
		return false
	}
	s.frame = *fb
	s.seq++
	s.mu.Unlock()
	return true
}

// Snapshot copies the latest frame into dst and returns its sequence number,
// which increases with every published frame.
func (s *SharedFrame) Snapshot(dst *FrameBuffer) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	*dst = s.frame
	return s.seq
}

// Quit asks the emulation loop to stop.
func (s *SharedFrame) Quit() {
	s.quit.Store(true)
}

// ShouldQuit never waits on a viewer holding the frame lock.
func (s *SharedFrame) ShouldQuit() bool {
	return s.quit.Load()
}
