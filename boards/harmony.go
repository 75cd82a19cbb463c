package boards

import (
	"tegra-pinmux/pinmux"
	t "tegra-pinmux/soc/tegra20"
)

// Harmony is the NVIDIA Harmony (T20) development board.
var Harmony = Board{
	Name: "harmony",
	SoC:  "tegra20",
	PinGroups: []pinmux.PinGroupConfig{
		// UARTD console on GMC.
		{PinGroup: t.GMC, Func: t.FuncUARTD, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal},

		// SDIO4 (SD slot) on ATB/GMA.
		{PinGroup: t.ATB, Func: t.FuncSDIO4, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal},
		{PinGroup: t.GMA, Func: t.FuncSDIO4, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal},

		// NAND on the keyboard pads.
		{PinGroup: t.KBCA, Func: t.FuncNAND, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal},
		{PinGroup: t.KBCB, Func: t.FuncNAND, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal},
		{PinGroup: t.KBCE, Func: t.FuncNAND, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal},

		// I2C buses and HDMI.
		{PinGroup: t.RM, Func: t.FuncI2C, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal},
		{PinGroup: t.I2CP, Func: t.FuncI2C, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal},
		{PinGroup: t.PTA, Func: t.FuncHDMI, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal},

		// PMC has no pull control; Pull must stay PullNormal.
		{PinGroup: t.PMC, Func: pinmux.FuncDefault, Tristate: pinmux.TriNormal},

		// Unused.
		{PinGroup: t.UAC, Func: t.FuncOWR, Pull: pinmux.PullDown, Tristate: pinmux.TriTristate},
		{PinGroup: t.SPDI, Func: t.FuncSPDIF, Pull: pinmux.PullUp, Tristate: pinmux.TriTristate},
	},
	DriveGroups: []pinmux.DriveGroupConfig{
		{DriveGroup: t.DrvSDIO1, SlewFalling: pinmux.Some(3), SlewRising: pinmux.Some(3), DriveUp: pinmux.Some(31), DriveDown: pinmux.Some(31), Schmitt: pinmux.SchmittEnable, HSM: pinmux.HSMDisable},
	},
}
