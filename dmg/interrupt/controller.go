// Package interrupt implements the DMG interrupt controller: IME plus the IE
// and IF registers.
package interrupt

import (
	"github.com/valerio/go-dmg/dmg/addr"
)

// DispatchCycles is the cost of servicing an interrupt.
const DispatchCycles = 20

// Bus is the memory the controller reads IE and IF from.
type Bus interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
}

// Target is the CPU side of a dispatch.
type Target interface {
	PC() uint16
	SetPC(pc uint16)
	Push(value uint16)
	Wake()
}

// Controller owns IME and reads IE and IF through the bus.
type Controller struct {
	bus Bus
	ime bool
}

// New returns a controller with IME cleared.
func New(bus Bus) *Controller {
	return &Controller{bus: bus}
}

// IME reports the master interrupt enable flag.
func (c *Controller) IME() bool {
	return c.ime
}

// SetIME sets the master interrupt enable flag immediately.
func (c *Controller) SetIME(enabled bool) {
	c.ime = enabled
}

// Request ORs the interrupt's bit into IF.
func (c *Controller) Request(kind addr.Interrupt) {
	c.bus.Write(addr.IF, c.bus.Read(addr.IF)|byte(kind))
}

// Pending returns IE & IF, restricted to the five sources.
func (c *Controller) Pending() byte {
	return c.bus.Read(addr.IE) & c.bus.Read(addr.IF) & 0x1F
}

// Next returns the highest priority pending interrupt.
func (c *Controller) Next() (addr.Interrupt, bool) {
	pending := c.Pending()
	for _, kind := range addr.Interrupts {
		if pending&byte(kind) != 0 {
			return kind, true
		}
	}
	return 0, false
}

// CheckAndDispatch services the highest priority interrupt if IME is set and
// one is pending: it clears IME and the IF bit, pushes PC, jumps to the vector
// and wakes the CPU. It returns DispatchCycles, or 0 when nothing fired.
func (c *Controller) CheckAndDispatch(t Target) int {
	if !c.ime {
		return 0
	}
	kind, ok := c.Next()
	if !ok {
		return 0
	}

	c.ime = false
	c.bus.Write(addr.IF, c.bus.Read(addr.IF)&^byte(kind))
	t.Push(t.PC())
	t.SetPC(kind.Vector())
	t.Wake()
	return DispatchCycles
}
