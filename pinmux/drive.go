package pinmux

import "tegra-pinmux/x/mathx"

// Drive field limits.
const (
	SlewMin  = 0
	SlewMax  = 3
	DriveMin = 0
	DriveMax = 127
)

// Level is an optional bounded drive value (slew or drive strength).
// The zero value is Unset and never produces a register write.
type Level struct {
	v  int
	ok bool
}

// Unset leaves the hardware field at its current value.
var Unset Level

// Some returns a Level carrying v. Range is checked when the level is applied.
func Some(v int) Level { return Level{v: v, ok: true} }

// Get returns the value and whether it is set.
func (l Level) Get() (int, bool) { return l.v, l.ok }

// IsSet reports whether l carries a value.
func (l Level) IsSet() bool { return l.ok }

func (l Level) within(lo, hi int) bool { return !l.ok || mathx.Between(l.v, lo, hi) }

// LPMD is the low-power mode select of a drive group. The zero value leaves
// the field alone; the others map onto the hardware encoding X8=0 .. X=3.
type LPMD uint8

const (
	LPMDNone LPMD = iota
	LPMDX8
	LPMDX4
	LPMDX2
	LPMDX
)

// Schmitt enables the schmitt trigger input of a drive group.
type Schmitt uint8

const (
	SchmittNone Schmitt = iota
	SchmittDisable
	SchmittEnable
)

// HSM enables high-speed mode on a drive group.
type HSM uint8

const (
	HSMNone HSM = iota
	HSMDisable
	HSMEnable
)

func (m LPMD) String() string {
	switch m {
	case LPMDNone:
		return "none"
	case LPMDX8:
		return "x8"
	case LPMDX4:
		return "x4"
	case LPMDX2:
		return "x2"
	case LPMDX:
		return "x"
	}
	return "invalid"
}

func (s Schmitt) String() string { return onOffString(uint8(s)) }
func (h HSM) String() string     { return onOffString(uint8(h)) }

func onOffString(v uint8) string {
	switch v {
	case 0:
		return "none"
	case 1:
		return "disable"
	case 2:
		return "enable"
	}
	return "invalid"
}

// ParseLPMD accepts "", "none", "x8", "x4", "x2", "x"/"x1".
func ParseLPMD(s string) (LPMD, bool) {
	switch norm(s) {
	case "", "none":
		return LPMDNone, true
	case "x8":
		return LPMDX8, true
	case "x4":
		return LPMDX4, true
	case "x2":
		return LPMDX2, true
	case "x", "x1":
		return LPMDX, true
	}
	return LPMDNone, false
}

// ParseSchmitt accepts "", "none", "disable", "enable".
func ParseSchmitt(s string) (Schmitt, bool) {
	v, ok := parseOnOff(s)
	return Schmitt(v), ok
}

// ParseHSM accepts "", "none", "disable", "enable".
func ParseHSM(s string) (HSM, bool) {
	v, ok := parseOnOff(s)
	return HSM(v), ok
}

func parseOnOff(s string) (uint8, bool) {
	switch norm(s) {
	case "", "none":
		return 0, true
	case "disable", "off":
		return 1, true
	case "enable", "on":
		return 2, true
	}
	return 0, false
}
