// Package tegra30 describes the Tegra 3 (T30) pinmux.
//
// The pin-group table holds the groups up to LCD_VSYNC in register order.
package tegra30

import (
	"periph.io/x/conn/v3/pin"

	"tegra-pinmux/pinmux"
)

// Pin groups. Values index the pin-group table and, on this chip, the per-pin register.
const (
	ULPIData0PO1 pinmux.PinGroup = iota
	ULPIData1PO2
	ULPIData2PO3
	ULPIData3PO4
	ULPIData4PO5
	ULPIData5PO6
	ULPIData6PO7
	ULPIData7PO0
	ULPIClkPY0
	ULPIDirPY1
	ULPINxtPY2
	ULPIStpPY3
	DAP3FSPP0
	DAP3DInPP1
	DAP3DOutPP2
	DAP3SClkPP3
	GPIOPV2
	GPIOPV3
	Clk2OutPW5
	Clk2ReqPCC5
	LCDPWR1PC1
	LCDPWR2PC6
	LCDSDInPZ2
	LCDSDOutPN5
	LCDWRNPZ3
	LCDCS0NPN4
	LCDDC0PN6
	LCDSCKPZ4
	LCDPWR0PB2
	LCDPClkPB3
	LCDDEPJ1
	LCDHSyncPJ3
	LCDVSyncPJ4
)

// Drive groups.
const (
	DrvAO1 pinmux.DriveGroup = iota
	DrvAO2
	DrvAT1
	DrvAT2
	DrvAT3
	DrvAT4
	DrvAT5
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
	DrvSDIO2
	DrvSDIO3
	DrvSPI
	DrvUAA
	DrvUAB
	DrvUART2
	DrvUART3
	DrvVI1
	DrvSDIO1
	DrvCRT
	DrvDDC
	DrvGMA
	DrvGMB
	DrvGMC
	DrvGMD
	DrvGME
	DrvGMF
	DrvGMG
	DrvGMH
	DrvOWR
	DrvUDA
)

// Functions routed by this chip's pin groups, beyond pinmux.FuncRsvd1..4.
const (
	FuncClk12MOut  pin.Func = "clk_12m_out"
	FuncDAP        pin.Func = "dap"
	FuncDisplayA   pin.Func = "displaya"
	FuncDisplayB   pin.Func = "displayb"
	FuncExtPeriph2 pin.Func = "extperiph2"
	FuncHDCP       pin.Func = "hdcp"
	FuncHSI        pin.Func = "hsi"
	FuncI2S2       pin.Func = "i2s2"
	FuncOWR        pin.Func = "owr"
	FuncSPI1       pin.Func = "spi1"
	FuncSPI2       pin.Func = "spi2"
	FuncSPI3       pin.Func = "spi3"
	FuncSPI5       pin.Func = "spi5"
	FuncUARTA      pin.Func = "uarta"
	FuncUARTD      pin.Func = "uartd"
	FuncULPI       pin.Func = "ulpi"
)

var pinGroups = [...]pinmux.PinGroupDesc{
	ULPIData0PO1: {Name: "ulpi_data0_po1", Funcs: [4]pin.Func{FuncSPI3, FuncHSI, FuncUARTA, FuncULPI}},
	ULPIData1PO2: {Name: "ulpi_data1_po2", Funcs: [4]pin.Func{FuncSPI3, FuncHSI, FuncUARTA, FuncULPI}},
	ULPIData2PO3: {Name: "ulpi_data2_po3", Funcs: [4]pin.Func{FuncSPI3, FuncHSI, FuncUARTA, FuncULPI}},
	ULPIData3PO4: {Name: "ulpi_data3_po4", Funcs: [4]pin.Func{FuncSPI3, FuncHSI, FuncUARTA, FuncULPI}},
	ULPIData4PO5: {Name: "ulpi_data4_po5", Funcs: [4]pin.Func{FuncSPI2, FuncHSI, FuncUARTA, FuncULPI}},
	ULPIData5PO6: {Name: "ulpi_data5_po6", Funcs: [4]pin.Func{FuncSPI2, FuncHSI, FuncUARTA, FuncULPI}},
	ULPIData6PO7: {Name: "ulpi_data6_po7", Funcs: [4]pin.Func{FuncSPI2, FuncHSI, FuncUARTA, FuncULPI}},
	ULPIData7PO0: {Name: "ulpi_data7_po0", Funcs: [4]pin.Func{FuncSPI2, FuncHSI, FuncUARTA, FuncULPI}},
	ULPIClkPY0:   {Name: "ulpi_clk_py0", Funcs: [4]pin.Func{FuncSPI1, pinmux.FuncRsvd2, FuncUARTD, FuncULPI}},
	ULPIDirPY1:   {Name: "ulpi_dir_py1", Funcs: [4]pin.Func{FuncSPI1, pinmux.FuncRsvd2, FuncUARTD, FuncULPI}},
	ULPINxtPY2:   {Name: "ulpi_nxt_py2", Funcs: [4]pin.Func{FuncSPI1, pinmux.FuncRsvd2, FuncUARTD, FuncULPI}},
	ULPIStpPY3:   {Name: "ulpi_stp_py3", Funcs: [4]pin.Func{FuncSPI1, pinmux.FuncRsvd2, FuncUARTD, FuncULPI}},
	DAP3FSPP0:    {Name: "dap3_fs_pp0", Funcs: [4]pin.Func{FuncI2S2, pinmux.FuncRsvd2, FuncDisplayA, FuncDisplayB}},
	DAP3DInPP1:   {Name: "dap3_din_pp1", Funcs: [4]pin.Func{FuncI2S2, pinmux.FuncRsvd2, FuncDisplayA, FuncDisplayB}},
	DAP3DOutPP2:  {Name: "dap3_dout_pp2", Funcs: [4]pin.Func{FuncI2S2, pinmux.FuncRsvd2, FuncDisplayA, FuncDisplayB}},
	DAP3SClkPP3:  {Name: "dap3_sclk_pp3", Funcs: [4]pin.Func{FuncI2S2, pinmux.FuncRsvd2, FuncDisplayA, FuncDisplayB}},
	GPIOPV2:      {Name: "gpio_pv2", Funcs: [4]pin.Func{FuncOWR, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	GPIOPV3:      {Name: "gpio_pv3", Funcs: [4]pin.Func{FuncClk12MOut, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	Clk2OutPW5:   {Name: "clk2_out_pw5", Funcs: [4]pin.Func{FuncExtPeriph2, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	Clk2ReqPCC5:  {Name: "clk2_req_pcc5", Funcs: [4]pin.Func{FuncDAP, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	LCDPWR1PC1:   {Name: "lcd_pwr1_pc1", Funcs: [4]pin.Func{FuncDisplayA, FuncDisplayB, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	LCDPWR2PC6:   {Name: "lcd_pwr2_pc6", Funcs: [4]pin.Func{FuncDisplayA, FuncDisplayB, FuncSPI5, FuncHDCP}},
	LCDSDInPZ2:   {Name: "lcd_sdin_pz2", Funcs: [4]pin.Func{FuncDisplayA, FuncDisplayB, FuncSPI5, pinmux.FuncRsvd4}},
	LCDSDOutPN5:  {Name: "lcd_sdout_pn5", Funcs: [4]pin.Func{FuncDisplayA, FuncDisplayB, FuncSPI5, FuncHDCP}},
	LCDWRNPZ3:    {Name: "lcd_wr_n_pz3", Funcs: [4]pin.Func{FuncDisplayA, FuncDisplayB, FuncSPI5, FuncHDCP}},
	LCDCS0NPN4:   {Name: "lcd_cs0_n_pn4", Funcs: [4]pin.Func{FuncDisplayA, FuncDisplayB, FuncSPI5, pinmux.FuncRsvd4}},
	LCDDC0PN6:    {Name: "lcd_dc0_pn6", Funcs: [4]pin.Func{FuncDisplayA, FuncDisplayB, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	LCDSCKPZ4:    {Name: "lcd_sck_pz4", Funcs: [4]pin.Func{FuncDisplayA, FuncDisplayB, FuncSPI5, FuncHDCP}},
	LCDPWR0PB2:   {Name: "lcd_pwr0_pb2", Funcs: [4]pin.Func{FuncDisplayA, FuncDisplayB, FuncSPI5, FuncHDCP}},
	LCDPClkPB3:   {Name: "lcd_pclk_pb3", Funcs: [4]pin.Func{FuncDisplayA, FuncDisplayB, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	LCDDEPJ1:     {Name: "lcd_de_pj1", Funcs: [4]pin.Func{FuncDisplayA, FuncDisplayB, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	LCDHSyncPJ3:  {Name: "lcd_hsync_pj3", Funcs: [4]pin.Func{FuncDisplayA, FuncDisplayB, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	LCDVSyncPJ4:  {Name: "lcd_vsync_pj4", Funcs: [4]pin.Func{FuncDisplayA, FuncDisplayB, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
}

var driveGroups = [...]string{
	"ao1", "ao2", "at1", "at2", "at3", "at4", "at5", "cdev1", "cdev2", "csus",
	"dap1", "dap2", "dap3", "dap4", "dbg", "lcd1", "lcd2", "sdio2", "sdio3",
	"spi", "uaa", "uab", "uart2", "uart3", "vi1", "sdio1", "crt", "ddc",
	"gma", "gmb", "gmc", "gmd", "gme", "gmf", "gmg", "gmh", "owr", "uda",
}

type soc struct{}

func (soc) Name() string       { return "tegra30" }
func (soc) Compatible() string { return "nvidia,tegra30" }
func (soc) Features() pinmux.Features {
	return pinmux.FeatureIOBits | pinmux.FeatureDriveGroups
}
func (soc) Layout() pinmux.Layout            { return pinmux.PerPinLayout }
func (soc) PinGroups() []pinmux.PinGroupDesc { return pinGroups[:] }
func (soc) DriveGroups() []string            { return driveGroups[:] }

// SoC is the tegra30 descriptor.
var SoC pinmux.SoC = soc{}

func init() {
	pinmux.RegisterSoC(SoC)
}
