// Package mos6502 implements a cycle-accurate MOS 6502 CPU core: registers,
// flags, program counter, instruction decoding, and dispatch.
package mos6502

import "sync/atomic"

// Clock is a monotonic cycle counter with a nestable suspension depth.
// tick is a no-op while any suspension token is outstanding; this lets a
// handler for a composite instruction (e.g. a read-modify-write, or an
// unofficial opcode like RLA that internally performs a ROL followed by an
// AND) invoke smaller helpers that would otherwise tick their own cycles,
// while the dispatcher charges the exact total from the base cycle table
// once at the top.
type Clock struct {
	cycles  uint64
	suspend int64
}

// NewClock returns a Clock initialized to zero, unsuspended.
func NewClock() *Clock {
	return &Clock{}
}

// Get returns the current cycle count.
func (c *Clock) Get() uint64 {
	return c.cycles
}

// Set overwrites the cycle count outright, ignoring suspension.
func (c *Clock) Set(value uint64) {
	c.cycles = value
}

// Tick advances the counter by amount, unless the clock is currently
// suspended.
func (c *Clock) Tick(amount uint64) {
	if atomic.LoadInt64(&c.suspend) == 0 {
		c.cycles += amount
	}
}

// Suspend increments the suspension depth and returns a guard; ticks are
// ignored until every outstanding guard has been released. Guards nest:
// the clock resumes only once the depth returns to zero. Release must be
// called exactly once per guard, typically via defer.
func (c *Clock) Suspend() *ClockGuard {
	atomic.AddInt64(&c.suspend, 1)
	return &ClockGuard{suspend: &c.suspend}
}

// ClockGuard is the scoped token returned by Clock.Suspend. Release
// decrements the suspension depth; it is safe to call exactly once.
type ClockGuard struct {
	suspend *int64
}

// Release decrements the suspension depth. Callers should defer this
// immediately after Suspend.
func (g *ClockGuard) Release() {
	atomic.AddInt64(g.suspend, -1)
}
