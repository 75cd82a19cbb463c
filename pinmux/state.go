package pinmux

import "strings"

// Pull is the pull-up/pull-down state of a pin group. Values are the
// hardware PUPD encoding.
type Pull uint8

const (
	PullNormal Pull = iota
	PullDown
	PullUp
)

// Tristate selects whether a pin group is tristated or in normal operation.
type Tristate uint8

const (
	TriNormal Tristate = iota
	TriTristate
)

// PinIO selects input or output for a pin group. The zero value leaves the
// input-enable bit alone.
type PinIO uint8

const (
	IONone PinIO = iota
	IOOutput
	IOInput
)

// Lock, OpenDrain, IOReset and RcvSel all follow the same shape: the zero
// value leaves the bit alone, the other two clear or set it.

type Lock uint8

const (
	LockDefault Lock = iota
	LockDisable
	LockEnable
)

type OpenDrain uint8

const (
	ODDefault OpenDrain = iota
	ODDisable
	ODEnable
)

type IOReset uint8

const (
	IOResetDefault IOReset = iota
	IOResetDisable
	IOResetEnable
)

// RcvSel selects between the normal and high VIL/VIH receivers.
type RcvSel uint8

const (
	RcvSelDefault RcvSel = iota
	RcvSelNormal
	RcvSelHigh
)

func (p Pull) String() string {
	switch p {
	case PullNormal:
		return "none"
	case PullDown:
		return "down"
	case PullUp:
		return "up"
	}
	return "invalid"
}

func (t Tristate) String() string {
	switch t {
	case TriNormal:
		return "normal"
	case TriTristate:
		return "tristate"
	}
	return "invalid"
}

func (io PinIO) String() string {
	switch io {
	case IONone:
		return "default"
	case IOOutput:
		return "output"
	case IOInput:
		return "input"
	}
	return "invalid"
}

func (l Lock) String() string      { return triString(uint8(l), "disable", "enable") }
func (o OpenDrain) String() string { return triString(uint8(o), "disable", "enable") }
func (r IOReset) String() string   { return triString(uint8(r), "disable", "enable") }
func (r RcvSel) String() string    { return triString(uint8(r), "normal", "high") }

func triString(v uint8, off, on string) string {
	switch v {
	case 0:
		return "default"
	case 1:
		return off
	case 2:
		return on
	}
	return "invalid"
}

// ParsePull converts a name to a Pull.
// Accepts: "none"/"normal", "down"/"pulldown", "up"/"pullup" (case-insensitive).
func ParsePull(s string) (Pull, bool) {
	switch norm(s) {
	case "", "none", "normal":
		return PullNormal, true
	case "down", "pulldown", "pull_down":
		return PullDown, true
	case "up", "pullup", "pull_up":
		return PullUp, true
	}
	return PullNormal, false
}

// ParsePinIO accepts "", "default", "none", "output", "input".
func ParsePinIO(s string) (PinIO, bool) {
	switch norm(s) {
	case "", "default", "none":
		return IONone, true
	case "output", "out":
		return IOOutput, true
	case "input", "in":
		return IOInput, true
	}
	return IONone, false
}

// ParseLock accepts "", "default", "disable", "enable".
func ParseLock(s string) (Lock, bool) {
	v, ok := parseTri(s, "disable", "enable")
	return Lock(v), ok
}

// ParseOpenDrain accepts "", "default", "disable", "enable".
func ParseOpenDrain(s string) (OpenDrain, bool) {
	v, ok := parseTri(s, "disable", "enable")
	return OpenDrain(v), ok
}

// ParseIOReset accepts "", "default", "disable", "enable".
func ParseIOReset(s string) (IOReset, bool) {
	v, ok := parseTri(s, "disable", "enable")
	return IOReset(v), ok
}

// ParseRcvSel accepts "", "default", "normal", "high".
func ParseRcvSel(s string) (RcvSel, bool) {
	v, ok := parseTri(s, "normal", "high")
	return RcvSel(v), ok
}

func parseTri(s, off, on string) (uint8, bool) {
	switch norm(s) {
	case "", "default":
		return 0, true
	case off:
		return 1, true
	case on:
		return 2, true
	}
	return 0, false
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
