package boards

import (
	"tegra-pinmux/pinmux"
	t "tegra-pinmux/soc/tegra124"
)

// JetsonTK1 is the NVIDIA Jetson TK1 (PM375) developer kit.
var JetsonTK1 = Board{
	Name: "jetson-tk1",
	SoC:  "tegra124",
	PinGroups: []pinmux.PinGroupConfig{
		// Debug console on UARTD (J3A2 header).
		{PinGroup: t.ULPIClkPY0, Func: t.FuncUARTD, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOOutput},
		{PinGroup: t.ULPIDirPY1, Func: t.FuncUARTD, Pull: pinmux.PullUp, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},
		{PinGroup: t.ULPINxtPY2, Func: t.FuncUARTD, Pull: pinmux.PullUp, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},
		{PinGroup: t.ULPIStpPY3, Func: t.FuncUARTD, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOOutput},

		// SD card slot.
		{PinGroup: t.SDMMC1ClkPZ0, Func: t.FuncSDMMC1, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},
		{PinGroup: t.SDMMC1CmdPZ1, Func: t.FuncSDMMC1, Pull: pinmux.PullUp, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},
		{PinGroup: t.SDMMC1Dat3PY4, Func: t.FuncSDMMC1, Pull: pinmux.PullUp, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},
		{PinGroup: t.SDMMC1Dat2PY5, Func: t.FuncSDMMC1, Pull: pinmux.PullUp, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},
		{PinGroup: t.SDMMC1Dat1PY6, Func: t.FuncSDMMC1, Pull: pinmux.PullUp, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},
		{PinGroup: t.SDMMC1Dat0PY7, Func: t.FuncSDMMC1, Pull: pinmux.PullUp, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},

		// HDMI DDC, open-drain with the high receiver.
		{PinGroup: t.DDCSCLPV4, Func: t.FuncI2C4, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOInput, Lock: pinmux.LockDisable, RcvSel: pinmux.RcvSelHigh},
		{PinGroup: t.DDCSDAPV5, Func: t.FuncI2C4, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOInput, Lock: pinmux.LockDisable, RcvSel: pinmux.RcvSelHigh},
		{PinGroup: t.HDMIIntPN7, Func: pinmux.FuncRsvd1, Pull: pinmux.PullDown, Tristate: pinmux.TriTristate, IO: pinmux.IOInput, RcvSel: pinmux.RcvSelNormal},

		// GEN1 I2C (expansion header).
		{PinGroup: t.Gen1I2CSDAPC5, Func: t.FuncI2C1, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOInput, Lock: pinmux.LockDisable, OD: pinmux.ODEnable},
		{PinGroup: t.Gen1I2CSCLPC4, Func: t.FuncI2C1, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOInput, Lock: pinmux.LockDisable, OD: pinmux.ODEnable},

		// Audio codec on DAP4 (I2S3).
		{PinGroup: t.DAP4FSPP4, Func: t.FuncI2S3, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},
		{PinGroup: t.DAP4DInPP5, Func: t.FuncI2S3, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},
		{PinGroup: t.DAP4DOutPP6, Func: t.FuncI2S3, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},
		{PinGroup: t.DAP4SClkPP7, Func: t.FuncI2S3, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOInput},
		{PinGroup: t.Clk3OutEE0, Func: t.FuncExtPeriph3, Pull: pinmux.PullNormal, Tristate: pinmux.TriNormal, IO: pinmux.IOOutput},

		// Unused pads parked.
		{PinGroup: t.PV0, Func: pinmux.FuncRsvd1, Pull: pinmux.PullUp, Tristate: pinmux.TriTristate, IO: pinmux.IOInput},
		{PinGroup: t.PV1, Func: pinmux.FuncRsvd1, Pull: pinmux.PullNormal, Tristate: pinmux.TriTristate, IO: pinmux.IOInput},
	},
	DriveGroups: []pinmux.DriveGroupConfig{
		{DriveGroup: t.DrvSDIO1, SlewFalling: pinmux.Some(3), SlewRising: pinmux.Some(3), DriveUp: pinmux.Some(36), DriveDown: pinmux.Some(32), LPMD: pinmux.LPMDX, Schmitt: pinmux.SchmittEnable, HSM: pinmux.HSMEnable},
		{DriveGroup: t.DrvDAP2, Schmitt: pinmux.SchmittEnable},
		{DriveGroup: t.DrvUART2, SlewFalling: pinmux.Some(0), SlewRising: pinmux.Some(0)},
	},
}
