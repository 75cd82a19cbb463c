package pinmux

// Regs is 32-bit access to the APB_MISC register window. Offsets are byte
// offsets from the window base and always 4-byte aligned.
type Regs interface {
	Read32(off uint32) uint32
	Write32(off uint32, v uint32)
}
