//go:build tinygo

package baremetal

import (
	"runtime/volatile"
	"unsafe"
)

// Regs is the register window at a fixed physical address. It implements
// pinmux.Regs.
type Regs struct {
	base uintptr
}

// New returns the window starting at base, normally
// pinmux.DefaultAPBMiscBase.
func New(base uintptr) Regs { return Regs{base: base} }

func (r Regs) reg(off uint32) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(r.base + uintptr(off)))
}

func (r Regs) Read32(off uint32) uint32 { return r.reg(off).Get() }

func (r Regs) Write32(off, v uint32) { r.reg(off).Set(v) }
