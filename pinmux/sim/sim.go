// Package sim is an in-memory APB_MISC register window. It records every
// write and can model the pinmux lock bit, under which hardware silently
// ignores writes to a locked register.
package sim

import "golang.org/x/exp/slices"

// Write is one journal entry.
type Write struct {
	Off uint32
	Old uint32
	New uint32
}

// Regs implements pinmux.Regs over a sparse map. Unwritten registers read 0
// unless preset with Poke.
type Regs struct {
	mem     map[uint32]uint32
	journal []Write

	lockLo, lockHi uint32
	lockBit        uint32
	dropped        int
}

// Option configures Regs.
type Option func(*Regs)

// WithLockBit makes writes to registers in [lo, hi) that currently have bit
// set take no effect.
func WithLockBit(lo, hi uint32, bit uint) Option {
	return func(r *Regs) {
		r.lockLo, r.lockHi, r.lockBit = lo, hi, 1<<bit
	}
}

// New returns an empty register window.
func New(opts ...Option) *Regs {
	r := &Regs{mem: make(map[uint32]uint32)}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *Regs) Read32(off uint32) uint32 { return r.mem[off] }

func (r *Regs) Write32(off, v uint32) {
	old := r.mem[off]
	r.journal = append(r.journal, Write{Off: off, Old: old, New: v})
	if r.lockBit != 0 && off >= r.lockLo && off < r.lockHi && old&r.lockBit != 0 {
		r.dropped++
		return
	}
	r.mem[off] = v
}

// Poke presets a register without journaling, e.g. to load reset values.
func (r *Regs) Poke(off, v uint32) { r.mem[off] = v }

// Journal returns the writes since creation or the last ResetJournal.
func (r *Regs) Journal() []Write { return append([]Write(nil), r.journal...) }

// ResetJournal clears the journal and the dropped-write count.
func (r *Regs) ResetJournal() {
	r.journal = nil
	r.dropped = 0
}

// Dropped returns how many writes hit a locked register.
func (r *Regs) Dropped() int { return r.dropped }

// Snapshot returns a copy of every non-zero register.
func (r *Regs) Snapshot() map[uint32]uint32 {
	m := make(map[uint32]uint32, len(r.mem))
	for k, v := range r.mem {
		if v != 0 {
			m[k] = v
		}
	}
	return m
}

// Offsets returns the offsets of every register ever written or poked, sorted.
func (r *Regs) Offsets() []uint32 {
	l := make([]uint32, 0, len(r.mem))
	for k := range r.mem {
		l = append(l, k)
	}
	slices.Sort(l)
	return l
}
