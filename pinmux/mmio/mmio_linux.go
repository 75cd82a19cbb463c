//go:build linux

package mmio

import (
	"sync/atomic"

	"periph.io/x/host/v3/pmem"

	"tegra-pinmux/errcode"
	"tegra-pinmux/x/conv"
)

// Regs is a mapped register window. It implements pinmux.Regs.
type Regs struct {
	view  *pmem.View
	words []uint32
}

// Map maps size bytes of physical memory at base. Requires root.
func Map(base uint64, size int) (*Regs, error) {
	v, err := pmem.Map(base, size)
	if err != nil {
		return nil, &errcode.E{C: errcode.Error, Op: "mmio_map", Msg: conv.Hex64(base) + "+" + conv.Itoa(size), Err: err}
	}
	return &Regs{view: v, words: v.Uint32()}, nil
}

func (r *Regs) Read32(off uint32) uint32 {
	return atomic.LoadUint32(&r.words[off/4])
}

func (r *Regs) Write32(off, v uint32) {
	atomic.StoreUint32(&r.words[off/4], v)
}

// Close unmaps the window.
func (r *Regs) Close() error {
	r.words = nil
	return r.view.Close()
}
