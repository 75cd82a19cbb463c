// Package tegra20 describes the Tegra 2 (T20) pinmux.
//
// Tegra20 uses the legacy register map: tristate bits are indexed by pin
// group, mux and pull fields by the CtlID/PullID of each descriptor.
package tegra20

import (
	"periph.io/x/conn/v3/pin"

	"tegra-pinmux/pinmux"
)

// Pin groups. Values index the pin-group table and, on this chip, the tristate bank bit.
const (
	ATA pinmux.PinGroup = iota
	ATB
	ATC
	ATD
	CDEV1
	CDEV2
	CSUS
	DAP1
	DAP2
	DAP3
	DAP4
	DTA
	DTB
	DTC
	DTD
	DTE
	GPU
	GPV
	I2CP
	IRTX
	IRRX
	KBCB
	KBCA
	PMC
	PTA
	RM
	KBCE
	KBCF
	GMA
	GMC
	SDIO1
	OWC
	GME
	SDC
	SDD
	RESERVED0
	SLXA
	SLXC
	SLXD
	SLXK
	SPDI
	SPDO
	SPIA
	SPIB
	SPIC
	SPID
	SPIE
	SPIF
	SPIG
	SPIH
	UAA
	UAB
	UAC
	UAD
	UCA
	UCB
)

// Drive groups.
const (
	DrvAO1 pinmux.DriveGroup = iota
	DrvAO2
	DrvAT1
	DrvAT2
	DrvCDEV1
	DrvCDEV2
	DrvCSUS
	DrvDAP1
	DrvDAP2
	DrvDAP3
	DrvDAP4
	DrvDBG
	DrvLCD1
	DrvLCD2
	DrvSDMMC2
	DrvSDMMC3
	DrvSPI
	DrvUAA
	DrvUAB
	DrvUART2
	DrvUART3
	DrvVI1
	DrvVI2
	DrvXM2A
	DrvXM2C
	DrvXM2D
	DrvXM2CLK
	DrvMEMCOMP
	DrvSDIO1
	DrvCRT
	DrvDDC
	DrvGMA
	DrvGMB
	DrvGMC
	DrvGMD
	DrvGME
	DrvOWR
	DrvUAD
)

// Functions routed by this chip's pin groups, beyond pinmux.FuncRsvd1..4.
const (
	FuncAHBClk      pin.Func = "ahb_clk"
	FuncAPBClk      pin.Func = "apb_clk"
	FuncAudioSync   pin.Func = "audio_sync"
	FuncDAP1        pin.Func = "dap1"
	FuncDAP2        pin.Func = "dap2"
	FuncDAP3        pin.Func = "dap3"
	FuncDAP4        pin.Func = "dap4"
	FuncDAP5        pin.Func = "dap5"
	FuncEMCTest0Dll pin.Func = "emc_test0_dll"
	FuncGMI         pin.Func = "gmi"
	FuncHDMI        pin.Func = "hdmi"
	FuncI2C         pin.Func = "i2c"
	FuncI2C2        pin.Func = "i2c2"
	FuncIDE         pin.Func = "ide"
	FuncIRDA        pin.Func = "irda"
	FuncKBC         pin.Func = "kbc"
	FuncMIO         pin.Func = "mio"
	FuncMIPIHS      pin.Func = "mipi_hs"
	FuncNAND        pin.Func = "nand"
	FuncOSC         pin.Func = "osc"
	FuncOWR         pin.Func = "owr"
	FuncPCIE        pin.Func = "pcie"
	FuncPllaOut     pin.Func = "plla_out"
	FuncPllcOut1    pin.Func = "pllc_out1"
	FuncPllmOut1    pin.Func = "pllm_out1"
	FuncPllpOut2    pin.Func = "pllp_out2"
	FuncPllpOut3    pin.Func = "pllp_out3"
	FuncPllpOut4    pin.Func = "pllp_out4"
	FuncPWM         pin.Func = "pwm"
	FuncPwrIntr     pin.Func = "pwr_intr"
	FuncPwrOn       pin.Func = "pwr_on"
	FuncSDIO1       pin.Func = "sdio1"
	FuncSDIO2       pin.Func = "sdio2"
	FuncSDIO3       pin.Func = "sdio3"
	FuncSDIO4       pin.Func = "sdio4"
	FuncSFlash      pin.Func = "sflash"
	FuncSPDIF       pin.Func = "spdif"
	FuncSPI1        pin.Func = "spi1"
	FuncSPI2        pin.Func = "spi2"
	FuncSPI2Alt     pin.Func = "spi2_alt"
	FuncSPI3        pin.Func = "spi3"
	FuncSPI4        pin.Func = "spi4"
	FuncTrace       pin.Func = "trace"
	FuncTWC         pin.Func = "twc"
	FuncUARTA       pin.Func = "uarta"
	FuncUARTB       pin.Func = "uartb"
	FuncUARTC       pin.Func = "uartc"
	FuncUARTD       pin.Func = "uartd"
	FuncUARTE       pin.Func = "uarte"
	FuncULPI        pin.Func = "ulpi"
	FuncVI          pin.Func = "vi"
	FuncVISensorClk pin.Func = "vi_sensor_clk"
)

var pinGroups = [...]pinmux.PinGroupDesc{
	ATA:       {Name: "ata", Funcs: [4]pin.Func{FuncIDE, FuncNAND, FuncGMI, pinmux.FuncRsvd4}, CtlID: 0, PullID: 0},
	ATB:       {Name: "atb", Funcs: [4]pin.Func{FuncIDE, FuncNAND, FuncGMI, FuncSDIO4}, CtlID: 8, PullID: 1},
	ATC:       {Name: "atc", Funcs: [4]pin.Func{FuncIDE, FuncNAND, FuncGMI, FuncSDIO4}, CtlID: 22, PullID: 2},
	ATD:       {Name: "atd", Funcs: [4]pin.Func{FuncIDE, FuncNAND, FuncGMI, FuncSDIO4}, CtlID: 23, PullID: 3},
	CDEV1:     {Name: "cdev1", Funcs: [4]pin.Func{FuncOSC, FuncPllaOut, FuncPllmOut1, FuncAudioSync}, CtlID: 36, PullID: 22},
	CDEV2:     {Name: "cdev2", Funcs: [4]pin.Func{FuncOSC, FuncAHBClk, FuncAPBClk, FuncPllpOut4}, CtlID: 37, PullID: 23},
	CSUS:      {Name: "csus", Funcs: [4]pin.Func{FuncPllcOut1, FuncPllpOut2, FuncPllpOut3, FuncVISensorClk}, CtlID: 38, PullID: 24},
	DAP1:      {Name: "dap1", Funcs: [4]pin.Func{FuncDAP1, pinmux.FuncRsvd2, FuncGMI, FuncSDIO2}, CtlID: 39, PullID: 5},
	DAP2:      {Name: "dap2", Funcs: [4]pin.Func{FuncDAP2, FuncTWC, pinmux.FuncRsvd3, FuncGMI}, CtlID: 40, PullID: 6},
	DAP3:      {Name: "dap3", Funcs: [4]pin.Func{FuncDAP3, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}, CtlID: 41, PullID: 7},
	DAP4:      {Name: "dap4", Funcs: [4]pin.Func{FuncDAP4, pinmux.FuncRsvd2, FuncGMI, pinmux.FuncRsvd4}, CtlID: 42, PullID: 8},
	DTA:       {Name: "dta", Funcs: [4]pin.Func{pinmux.FuncRsvd1, FuncSDIO2, FuncVI, pinmux.FuncRsvd4}, CtlID: 17, PullID: 9},
	DTB:       {Name: "dtb", Funcs: [4]pin.Func{pinmux.FuncRsvd1, pinmux.FuncRsvd2, FuncVI, FuncSPI1}, CtlID: 16, PullID: 10},
	DTC:       {Name: "dtc", Funcs: [4]pin.Func{pinmux.FuncRsvd1, pinmux.FuncRsvd2, FuncVI, pinmux.FuncRsvd4}, CtlID: 18, PullID: 11},
	DTD:       {Name: "dtd", Funcs: [4]pin.Func{pinmux.FuncRsvd1, FuncSDIO2, FuncVI, pinmux.FuncRsvd4}, CtlID: 19, PullID: 12},
	DTE:       {Name: "dte", Funcs: [4]pin.Func{pinmux.FuncRsvd1, pinmux.FuncRsvd2, FuncVI, FuncSPI1}, CtlID: 15, PullID: 13},
	GPU:       {Name: "gpu", Funcs: [4]pin.Func{FuncPWM, FuncUARTA, FuncGMI, pinmux.FuncRsvd4}, CtlID: 28, PullID: 14},
	GPV:       {Name: "gpv", Funcs: [4]pin.Func{FuncPCIE, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}, CtlID: 43, PullID: 15},
	I2CP:      {Name: "i2cp", Funcs: [4]pin.Func{FuncI2C, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}, CtlID: 46, PullID: 16},
	IRTX:      {Name: "irtx", Funcs: [4]pin.Func{FuncUARTA, FuncUARTB, FuncGMI, FuncSPI4}, CtlID: 44, PullID: 17},
	IRRX:      {Name: "irrx", Funcs: [4]pin.Func{FuncUARTA, FuncUARTB, FuncGMI, FuncSPI4}, CtlID: 45, PullID: 18},
	KBCB:      {Name: "kbcb", Funcs: [4]pin.Func{FuncKBC, FuncNAND, FuncSDIO2, FuncMIO}, CtlID: 51, PullID: 19},
	KBCA:      {Name: "kbca", Funcs: [4]pin.Func{FuncKBC, FuncNAND, FuncSDIO2, FuncEMCTest0Dll}, CtlID: 50, PullID: 20},
	PMC:       {Name: "pmc", Funcs: [4]pin.Func{FuncPwrOn, FuncPwrIntr, pinmux.FuncRsvd3, pinmux.FuncRsvd4}, CtlID: pinmux.NoCtl, PullID: pinmux.NoCtl},
	PTA:       {Name: "pta", Funcs: [4]pin.Func{FuncI2C2, FuncHDMI, FuncGMI, pinmux.FuncRsvd4}, CtlID: 32, PullID: 21},
	RM:        {Name: "rm", Funcs: [4]pin.Func{FuncI2C, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}, CtlID: 7, PullID: 25},
	KBCE:      {Name: "kbce", Funcs: [4]pin.Func{FuncKBC, FuncNAND, FuncOWR, pinmux.FuncRsvd4}, CtlID: 54, PullID: 26},
	KBCF:      {Name: "kbcf", Funcs: [4]pin.Func{FuncKBC, FuncNAND, FuncTrace, FuncMIO}, CtlID: 55, PullID: 27},
	GMA:       {Name: "gma", Funcs: [4]pin.Func{FuncUARTE, FuncSPI3, FuncGMI, FuncSDIO4}, CtlID: 62, PullID: 28},
	GMC:       {Name: "gmc", Funcs: [4]pin.Func{FuncUARTD, FuncSPI4, FuncGMI, FuncSFlash}, CtlID: 12, PullID: 29},
	SDIO1:     {Name: "sdio1", Funcs: [4]pin.Func{FuncSDIO1, pinmux.FuncRsvd2, FuncUARTE, FuncUARTA}, CtlID: 34, PullID: 30},
	OWC:       {Name: "owc", Funcs: [4]pin.Func{FuncOWR, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}, CtlID: 31, PullID: pinmux.NoCtl},
	GME:       {Name: "gme", Funcs: [4]pin.Func{pinmux.FuncRsvd1, FuncDAP5, FuncGMI, FuncSDIO4}, CtlID: 63, PullID: 31},
	SDC:       {Name: "sdc", Funcs: [4]pin.Func{FuncPWM, FuncTWC, FuncSDIO3, FuncSPI3}, CtlID: 25, PullID: 32},
	SDD:       {Name: "sdd", Funcs: [4]pin.Func{FuncUARTA, FuncPWM, FuncSDIO3, FuncSPI3}, CtlID: 26, PullID: 33},
	RESERVED0: {Name: "reserved0", Funcs: [4]pin.Func{pinmux.FuncRsvd1, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}, CtlID: pinmux.NoCtl, PullID: pinmux.NoCtl},
	SLXA:      {Name: "slxa", Funcs: [4]pin.Func{FuncPCIE, FuncSPI4, FuncSDIO3, FuncSPI2}, CtlID: 56, PullID: 34},
	SLXC:      {Name: "slxc", Funcs: [4]pin.Func{FuncSPDIF, FuncSPI4, FuncSDIO3, FuncSPI2}, CtlID: 57, PullID: 35},
	SLXD:      {Name: "slxd", Funcs: [4]pin.Func{FuncSPDIF, FuncSPI4, FuncSDIO3, FuncSPI2}, CtlID: 58, PullID: 36},
	SLXK:      {Name: "slxk", Funcs: [4]pin.Func{FuncPCIE, FuncSPI4, FuncSDIO3, FuncSPI2}, CtlID: 59, PullID: 37},
	SPDI:      {Name: "spdi", Funcs: [4]pin.Func{FuncSPDIF, pinmux.FuncRsvd2, FuncI2C, FuncSDIO2}, CtlID: 52, PullID: 38},
	SPDO:      {Name: "spdo", Funcs: [4]pin.Func{FuncSPDIF, pinmux.FuncRsvd2, FuncI2C, FuncSDIO2}, CtlID: 53, PullID: 39},
	SPIA:      {Name: "spia", Funcs: [4]pin.Func{FuncSPI1, FuncSPI2, FuncSPI3, FuncGMI}, CtlID: 79, PullID: 40},
	SPIB:      {Name: "spib", Funcs: [4]pin.Func{FuncSPI1, FuncSPI2, FuncSPI3, FuncGMI}, CtlID: 78, PullID: 41},
	SPIC:      {Name: "spic", Funcs: [4]pin.Func{FuncSPI1, FuncSPI2, FuncSPI3, FuncGMI}, CtlID: 77, PullID: 42},
	SPID:      {Name: "spid", Funcs: [4]pin.Func{FuncSPI2, FuncSPI1, FuncSPI2Alt, FuncGMI}, CtlID: 76, PullID: 43},
	SPIE:      {Name: "spie", Funcs: [4]pin.Func{FuncSPI2, FuncSPI1, FuncSPI2Alt, FuncGMI}, CtlID: 75, PullID: 44},
	SPIF:      {Name: "spif", Funcs: [4]pin.Func{FuncSPI3, FuncSPI1, FuncSPI2, pinmux.FuncRsvd4}, CtlID: 74, PullID: 45},
	SPIG:      {Name: "spig", Funcs: [4]pin.Func{FuncSPI3, FuncSPI2, FuncSPI2Alt, FuncI2C}, CtlID: 73, PullID: 46},
	SPIH:      {Name: "spih", Funcs: [4]pin.Func{FuncSPI3, FuncSPI2, FuncSPI2Alt, FuncI2C}, CtlID: 72, PullID: 47},
	UAA:       {Name: "uaa", Funcs: [4]pin.Func{FuncSPI3, FuncMIPIHS, FuncUARTA, FuncULPI}, CtlID: 64, PullID: 48},
	UAB:       {Name: "uab", Funcs: [4]pin.Func{FuncSPI2, FuncMIPIHS, FuncUARTA, FuncULPI}, CtlID: 65, PullID: 49},
	UAC:       {Name: "uac", Funcs: [4]pin.Func{FuncOWR, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}, CtlID: 66, PullID: 50},
	UAD:       {Name: "uad", Funcs: [4]pin.Func{FuncIRDA, FuncSPDIF, FuncUARTA, FuncSPI4}, CtlID: 67, PullID: 51},
	UCA:       {Name: "uca", Funcs: [4]pin.Func{FuncUARTC, pinmux.FuncRsvd2, FuncGMI, pinmux.FuncRsvd4}, CtlID: 29, PullID: 52},
	UCB:       {Name: "ucb", Funcs: [4]pin.Func{FuncUARTC, FuncPWM, FuncGMI, pinmux.FuncRsvd4}, CtlID: 30, PullID: 53},
}

var driveGroups = [...]string{
	"ao1", "ao2", "at1", "at2", "cdev1", "cdev2", "csus", "dap1", "dap2",
	"dap3", "dap4", "dbg", "lcd1", "lcd2", "sdmmc2", "sdmmc3", "spi", "uaa",
	"uab", "uart2", "uart3", "vi1", "vi2", "xm2a", "xm2c", "xm2d", "xm2clk",
	"memcomp", "sdio1", "crt", "ddc", "gma", "gmb", "gmc", "gmd", "gme",
	"owr", "uad",
}

type soc struct{}

func (soc) Name() string       { return "tegra20" }
func (soc) Compatible() string { return "nvidia,tegra20" }
func (soc) Features() pinmux.Features {
	return pinmux.FeatureDriveGroups
}
func (soc) Layout() pinmux.Layout            { return pinmux.LegacyLayout }
func (soc) PinGroups() []pinmux.PinGroupDesc { return pinGroups[:] }
func (soc) DriveGroups() []string            { return driveGroups[:] }

// SoC is the tegra20 descriptor.
var SoC pinmux.SoC = soc{}

func init() {
	pinmux.RegisterSoC(SoC)
}
