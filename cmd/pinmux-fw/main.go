//go:build tinygo

// Command pinmux-fw is the bare-metal entry point: it applies the board
// selected at build time (-tags board_...) straight to the APB_MISC block.
package main

import (
	"time"

	"tegra-pinmux/boards"
	"tegra-pinmux/errcode"
	"tegra-pinmux/pinmux"
	"tegra-pinmux/pinmux/baremetal"
	"tegra-pinmux/x/conv"
)

func main() {
	// Allow the debug UART to come up before we print.
	time.Sleep(100 * time.Millisecond)
	println("[pinmux] boot")

	b := boards.Selected
	if b == nil {
		println("[pinmux] no board selected at build time")
		return
	}
	soc := pinmux.FindSoC(b.SoC)
	if soc == nil {
		println("[pinmux] unknown soc", b.SoC)
		return
	}
	c := pinmux.New(soc, baremetal.New(pinmux.DefaultAPBMiscBase))
	if err := b.Apply(c); err != nil {
		println("[pinmux]", b.Name, "failed:", string(errcode.Of(err)), err.Error())
		return
	}
	println("[pinmux]", b.Name, "applied:", conv.Itoa(len(b.PinGroups)), "pin groups,",
		conv.Itoa(len(b.DriveGroups)), "drive groups")

	groups := soc.PinGroups()
	for _, cfg := range b.PinGroups {
		st, err := c.PinGroupState(cfg.PinGroup)
		if err != nil {
			continue
		}
		println("  ", groups[cfg.PinGroup].Name, string(st.Func), st.Pull.String(), st.Tristate.String())
	}
}
