//go:build !linux

package mmio

import (
	"errors"

	"tegra-pinmux/errcode"
)

// Regs is unavailable on this platform.
type Regs struct{}

// Map always fails outside Linux.
func Map(base uint64, size int) (*Regs, error) {
	return nil, &errcode.E{C: errcode.Unsupported, Op: "mmio_map", Err: errors.New("/dev/mem mapping needs linux")}
}

func (r *Regs) Read32(off uint32) uint32 { return 0 }
func (r *Regs) Write32(off, v uint32)    {}
func (r *Regs) Close() error             { return nil }
