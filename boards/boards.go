// Package boards holds the pin-group and drive-group tables applied at board
// bring-up. One board is selected at build time (see Selected); every board
// is also reachable by name.
package boards

import (
	"tegra-pinmux/errcode"
	"tegra-pinmux/pinmux"
)

// Board is the pinmux configuration of one PCB.
// It must not include anything but pinmux and pad-control settings.
type Board struct {
	Name string
	// SoC names the chip the tables are written for.
	SoC         string
	PinGroups   []pinmux.PinGroupConfig
	DriveGroups []pinmux.DriveGroupConfig
}

// Apply writes the board tables through c: pin groups first, then drive
// groups. c must have been built for the board's SoC.
func (b *Board) Apply(c *pinmux.Controller) error {
	if c.SoC().Name() != b.SoC {
		return errcode.New(errcode.UnknownSoC, "board_apply", b.Name+" wants "+b.SoC+", have "+c.SoC().Name())
	}
	if err := c.ConfigPinGroupTable(b.PinGroups); err != nil {
		return err
	}
	if len(b.DriveGroups) == 0 {
		return nil
	}
	return c.ConfigDriveGroupTable(b.DriveGroups)
}

// boardList contains the known boards, in registration order.
var boardList = []*Board{&Harmony, &Beaver, &JetsonTK1}

// Find returns the board with this name, or nil.
func Find(name string) *Board {
	for _, b := range boardList {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// Names returns the names of the known boards.
func Names() []string {
	var l []string
	for _, b := range boardList {
		l = append(l, b.Name)
	}
	return l
}
