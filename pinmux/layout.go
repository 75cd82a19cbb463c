package pinmux

// DefaultAPBMiscBase is the physical address of the APB_MISC block holding
// the pinmux registers on every supported chip.
const DefaultAPBMiscBase = 0x70000000

// Per-pin register bits (Tegra30 and later).
const (
	muxShift     = 0
	pullShift    = 2
	triShift     = 4
	ioShift      = 5
	odShift      = 6
	lockShift    = 7
	ioResetShift = 8
	rcvSelShift  = 9
)

// Drive-group register fields.
const (
	hsmShift   = 2
	schmtShift = 3
	lpmdShift  = 4
	drvDnShift = 12
	drvUpShift = 20
	slwrShift  = 28
	slwfShift  = 30
)

// Layout is the register geometry of a chip generation. Offsets are relative
// to the APB_MISC base.
type Layout struct {
	// Legacy selects the Tegra20 scheme: separate tristate, mux and pull
	// banks addressed by bit position, mux and pull through the descriptor's
	// CtlID/PullID.
	Legacy bool

	TriBase  uint32 // legacy only
	MuxBase  uint32 // legacy only
	PullBase uint32 // legacy only

	// PinBase is the first per-pin register (non-legacy).
	PinBase uint32

	// DriveBase is the first pad-control register.
	DriveBase uint32

	// Size is the span of the register window in bytes.
	Size uint32
}

// LegacyLayout is the Tegra20 register map.
var LegacyLayout = Layout{
	Legacy:    true,
	TriBase:   0x14,
	MuxBase:   0x80,
	PullBase:  0xa0,
	DriveBase: 0x868,
	Size:      0x1000,
}

// PerPinLayout is the Tegra30..Tegra124 register map.
var PerPinLayout = Layout{
	PinBase:   0x3000,
	DriveBase: 0x868,
	Size:      0x4000,
}

// field is a bitfield within one 32-bit register.
type field struct {
	off   uint32
	shift uint32
	mask  uint32 // unshifted
}

func (f field) bits(v uint32) (mask, val uint32) {
	return f.mask << f.shift, (v & f.mask) << f.shift
}

func (f field) get(word uint32) uint32 { return (word >> f.shift) & f.mask }

func (l *Layout) pinReg(pg PinGroup) uint32 { return l.PinBase + uint32(pg)*4 }

func (l *Layout) muxField(pg PinGroup, d *PinGroupDesc) (field, bool) {
	if l.Legacy {
		if d.CtlID == NoCtl {
			return field{}, false
		}
		return field{l.MuxBase + d.CtlID/16*4, d.CtlID % 16 * 2, 3}, true
	}
	return field{l.pinReg(pg), muxShift, 3}, true
}

func (l *Layout) pullField(pg PinGroup, d *PinGroupDesc) (field, bool) {
	if l.Legacy {
		if d.PullID == NoCtl {
			return field{}, false
		}
		return field{l.PullBase + d.PullID/16*4, d.PullID % 16 * 2, 3}, true
	}
	return field{l.pinReg(pg), pullShift, 3}, true
}

func (l *Layout) triField(pg PinGroup) field {
	if l.Legacy {
		return field{l.TriBase + uint32(pg)/32*4, uint32(pg) % 32, 1}
	}
	return field{l.pinReg(pg), triShift, 1}
}

// bitField addresses one of the per-pin single-bit controls.
func (l *Layout) bitField(pg PinGroup, shift uint32) field {
	return field{l.pinReg(pg), shift, 1}
}

func (l *Layout) driveField(dg DriveGroup, shift, mask uint32) field {
	return field{l.DriveBase + uint32(dg)*4, shift, mask}
}
