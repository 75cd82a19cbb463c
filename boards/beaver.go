package boards

import (
	"tegra-pinmux/pinmux"
	t "tegra-pinmux/soc/tegra30"
)

// Beaver is the NVIDIA Beaver (T30) evaluation board.
var Beaver = Board{
	Name: "beaver",
	SoC:  "tegra30",
	PinGroups: []pinmux.PinGroupConfig{
		// Debug console on UARTA.
		{PinGroup: t.ULPIData0PO1, Func: t.FuncUARTA, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOOutput},
		{PinGroup: t.ULPIData1PO2, Func: t.FuncUARTA, Pull: pinmux.PullUp, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},

		// UARTD to the expansion connector.
		{PinGroup: t.ULPIClkPY0, Func: t.FuncUARTD, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOOutput},
		{PinGroup: t.ULPIDirPY1, Func: t.FuncUARTD, Pull: pinmux.PullUp, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},

		// I2S to the codec.
		{PinGroup: t.DAP3FSPP0, Func: t.FuncI2S2, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},
		{PinGroup: t.DAP3DInPP1, Func: t.FuncI2S2, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},
		{PinGroup: t.DAP3DOutPP2, Func: t.FuncI2S2, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},
		{PinGroup: t.DAP3SClkPP3, Func: t.FuncI2S2, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},

		{PinGroup: t.GPIOPV2, Func: t.FuncOWR, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOOutput, OD: pinmux.ODEnable},
		{PinGroup: t.GPIOPV3, Func: t.FuncClk12MOut, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOOutput},
		{PinGroup: t.Clk2OutPW5, Func: t.FuncExtPeriph2, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOOutput},
		{PinGroup: t.Clk2ReqPCC5, Func: t.FuncDAP, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},

		// No panel: LCD pads tristated with pull-downs.
		{PinGroup: t.LCDPWR1PC1, Func: t.FuncDisplayA, Pull: pinmux.PullDown, Tristate: pinmux.TriTristate, IO: pinmux.IOInput},
		{PinGroup: t.LCDPWR2PC6, Func: t.FuncDisplayA, Pull: pinmux.PullDown, Tristate: pinmux.TriTristate, IO: pinmux.IOInput},
		{PinGroup: t.LCDPClkPB3, Func: t.FuncDisplayA, Pull: pinmux.PullDown, Tristate: pinmux.TriTristate, IO: pinmux.IOInput},
		{PinGroup: t.LCDDEPJ1, Func: t.FuncDisplayA, Pull: pinmux.PullDown, Tristate: pinmux.TriTristate, IO: pinmux.IOInput},
		{PinGroup: t.LCDHSyncPJ3, Func: t.FuncDisplayA, Pull: pinmux.PullDown, Tristate: pinmux.TriTristate, IO: pinmux.IOInput},
		{PinGroup: t.LCDVSyncPJ4, Func: t.FuncDisplayA, Pull: pinmux.PullDown, Tristate: pinmux.TriTristate, IO: pinmux.IOInput},
	},
	DriveGroups: []pinmux.DriveGroupConfig{
		{DriveGroup: t.DrvSDIO3, SlewFalling: pinmux.Some(1), SlewRising: pinmux.Some(1), DriveUp: pinmux.Some(46), DriveDown: pinmux.Some(42), LPMD: pinmux.LPMDX, Schmitt: pinmux.SchmittEnable, HSM: pinmux.HSMEnable},
		{DriveGroup: t.DrvUAA, LPMD: pinmux.LPMDX2},
	},
}
