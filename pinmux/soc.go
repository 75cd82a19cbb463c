package pinmux

import (
	"strings"

	"periph.io/x/conn/v3/pin"
)

// PinGroup identifies one configurable pin or pin bundle. It is an index into
// the SoC's pin-group table; chip packages export named constants.
type PinGroup uint16

// DriveGroup identifies a set of pads sharing one pad-control register.
type DriveGroup uint16

// Function names follow the device-tree "nvidia,function" spelling.
const (
	// FuncDefault leaves the mux field untouched.
	FuncDefault pin.Func = ""

	// FuncRsvd1..4 select mux slot 0..3 regardless of the table.
	FuncRsvd1 pin.Func = "rsvd1"
	FuncRsvd2 pin.Func = "rsvd2"
	FuncRsvd3 pin.Func = "rsvd3"
	FuncRsvd4 pin.Func = "rsvd4"
)

var rsvdFuncs = [4]pin.Func{FuncRsvd1, FuncRsvd2, FuncRsvd3, FuncRsvd4}

// NoCtl marks a legacy descriptor without a mux or pull control field.
const NoCtl = ^uint32(0)

// PinGroupDesc describes one pin group of a SoC: the four functions its mux
// field selects between and, for the legacy layout, the mux/pull control ids.
type PinGroupDesc struct {
	Name   string
	Funcs  [4]pin.Func
	CtlID  uint32
	PullID uint32
}

// Slot returns the mux slot routing fn to this group.
func (d *PinGroupDesc) Slot(fn pin.Func) (int, bool) {
	switch fn {
	case FuncRsvd1:
		return 0, true
	case FuncRsvd2:
		return 1, true
	case FuncRsvd3:
		return 2, true
	case FuncRsvd4:
		return 3, true
	}
	for i, f := range d.Funcs {
		if f == fn {
			return i, true
		}
	}
	return -1, false
}

// Features is the set of optional pinmux capabilities of a SoC.
type Features uint8

const (
	// FeatureIOBits: per-pin input, open-drain, lock and io-reset bits.
	FeatureIOBits Features = 1 << iota
	// FeatureRcvSel: high/normal receiver select bit.
	FeatureRcvSel
	// FeatureDriveGroups: pad-control (drive group) registers.
	FeatureDriveGroups
)

func (f Features) Has(x Features) bool { return f&x == x }

// SoC is the read-only descriptor of one supported chip.
type SoC interface {
	// Name returns the short chip name, e.g. "tegra124".
	Name() string
	// Compatible returns the device-tree compatible string of the chip.
	Compatible() string
	Features() Features
	Layout() Layout
	// PinGroups returns the pin-group table, indexed by PinGroup.
	PinGroups() []PinGroupDesc
	// DriveGroups returns drive-group names, indexed by DriveGroup.
	DriveGroups() []string
}

// socList contains the registered SoCs.
var socList []SoC

// RegisterSoC adds a chip to the registry. Chip packages call it from init.
func RegisterSoC(s SoC) {
	socList = append(socList, s)
}

// FindSoC returns the registered SoC whose name or compatible string matches,
// or nil if none does.
func FindSoC(name string) SoC {
	for _, s := range socList {
		if strings.EqualFold(s.Name(), name) || s.Compatible() == name {
			return s
		}
	}
	return nil
}

// SoCs returns the names of the registered SoCs.
func SoCs() []string {
	var l []string
	for _, s := range socList {
		l = append(l, s.Name())
	}
	return l
}

// PinGroupByName looks up a pin group by table name (case-insensitive).
func PinGroupByName(s SoC, name string) (PinGroup, bool) {
	for i, d := range s.PinGroups() {
		if strings.EqualFold(d.Name, name) {
			return PinGroup(i), true
		}
	}
	return 0, false
}

// DriveGroupByName looks up a drive group by name (case-insensitive).
func DriveGroupByName(s SoC, name string) (DriveGroup, bool) {
	for i, n := range s.DriveGroups() {
		if strings.EqualFold(n, name) {
			return DriveGroup(i), true
		}
	}
	return 0, false
}
