// Package tegra124 describes the Tegra K1 (T124) pinmux.
//
// The pin-group table holds the groups up to CLK3_REQ in register order;
// later groups are not described yet.
package tegra124

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
	PV0
	PV1
	SDMMC1ClkPZ0
	SDMMC1CmdPZ1
	SDMMC1Dat3PY4
	SDMMC1Dat2PY5
	SDMMC1Dat1PY6
	SDMMC1Dat0PY7
	Clk2OutPW5
	Clk2ReqPCC5
	HDMIIntPN7
	DDCSCLPV4
	DDCSDAPV5
	UART2RXDPC3
	UART2TXDPC2
	UART2RTSNPJ6
	UART2CTSNPJ5
	UART3TXDPW6
	UART3RXDPW7
	UART3CTSNPA1
	UART3RTSNPC0
	PU0
	PU1
	PU2
	PU3
	PU4
	PU5
	PU6
	Gen1I2CSDAPC5
	Gen1I2CSCLPC4
	DAP4FSPP4
	DAP4DInPP5
	DAP4DOutPP6
	DAP4SClkPP7
	Clk3OutEE0
	Clk3ReqEE1
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
	_
	DrvDAP1
	DrvDAP2
	DrvDAP3
	DrvDAP4
	DrvDBG
	_
	_
	_
	_
	DrvSDIO3
	DrvSPI
	DrvUAA
	DrvUAB
	DrvUART2
	DrvUART3
	_
	DrvSDIO1
	_
	DrvDDC
	DrvGMA
	_
	_
	_
	DrvGME
	DrvGMF
	DrvGMG
	DrvGMH
	DrvOWR
	DrvUDA
	DrvGPV
	DrvDEV3
)

// Functions routed by this chip's pin groups, beyond pinmux.FuncRsvd1..4.
const (
	FuncClk12      pin.Func = "clk12"
	FuncDAP        pin.Func = "dap"
	FuncDev3       pin.Func = "dev3"
	FuncDisplayA   pin.Func = "displaya"
	FuncDisplayB   pin.Func = "displayb"
	FuncDTV        pin.Func = "dtv"
	FuncExtPeriph2 pin.Func = "extperiph2"
	FuncExtPeriph3 pin.Func = "extperiph3"
	FuncGMI        pin.Func = "gmi"
	FuncHSI        pin.Func = "hsi"
	FuncI2C1       pin.Func = "i2c1"
	FuncI2C4       pin.Func = "i2c4"
	FuncI2S2       pin.Func = "i2s2"
	FuncI2S3       pin.Func = "i2s3"
	FuncIRDA       pin.Func = "irda"
	FuncOWR        pin.Func = "owr"
	FuncPWM0       pin.Func = "pwm0"
	FuncPWM1       pin.Func = "pwm1"
	FuncPWM2       pin.Func = "pwm2"
	FuncPWM3       pin.Func = "pwm3"
	FuncSDMMC1     pin.Func = "sdmmc1"
	FuncSPDIF      pin.Func = "spdif"
	FuncSPI1       pin.Func = "spi1"
	FuncSPI2       pin.Func = "spi2"
	FuncSPI3       pin.Func = "spi3"
	FuncSPI4       pin.Func = "spi4"
	FuncSPI5       pin.Func = "spi5"
	FuncUARTA      pin.Func = "uarta"
	FuncUARTB      pin.Func = "uartb"
	FuncUARTC      pin.Func = "uartc"
	FuncUARTD      pin.Func = "uartd"
	FuncULPI       pin.Func = "ulpi"
)

var pinGroups = [...]pinmux.PinGroupDesc{
	ULPIData0PO1:  {Name: "ulpi_data0_po1", Funcs: [4]pin.Func{FuncSPI3, FuncHSI, FuncUARTA, FuncULPI}},
	ULPIData1PO2:  {Name: "ulpi_data1_po2", Funcs: [4]pin.Func{FuncSPI3, FuncHSI, FuncUARTA, FuncULPI}},
	ULPIData2PO3:  {Name: "ulpi_data2_po3", Funcs: [4]pin.Func{FuncSPI3, FuncHSI, FuncUARTA, FuncULPI}},
	ULPIData3PO4:  {Name: "ulpi_data3_po4", Funcs: [4]pin.Func{FuncSPI3, FuncHSI, FuncUARTA, FuncULPI}},
	ULPIData4PO5:  {Name: "ulpi_data4_po5", Funcs: [4]pin.Func{FuncSPI2, FuncHSI, FuncUARTA, FuncULPI}},
	ULPIData5PO6:  {Name: "ulpi_data5_po6", Funcs: [4]pin.Func{FuncSPI2, FuncHSI, FuncUARTA, FuncULPI}},
	ULPIData6PO7:  {Name: "ulpi_data6_po7", Funcs: [4]pin.Func{FuncSPI2, FuncHSI, FuncUARTA, FuncULPI}},
	ULPIData7PO0:  {Name: "ulpi_data7_po0", Funcs: [4]pin.Func{FuncSPI2, FuncHSI, FuncUARTA, FuncULPI}},
	ULPIClkPY0:    {Name: "ulpi_clk_py0", Funcs: [4]pin.Func{FuncSPI1, FuncSPI5, FuncUARTD, FuncULPI}},
	ULPIDirPY1:    {Name: "ulpi_dir_py1", Funcs: [4]pin.Func{FuncSPI1, FuncSPI5, FuncUARTD, FuncULPI}},
	ULPINxtPY2:    {Name: "ulpi_nxt_py2", Funcs: [4]pin.Func{FuncSPI1, FuncSPI5, FuncUARTD, FuncULPI}},
	ULPIStpPY3:    {Name: "ulpi_stp_py3", Funcs: [4]pin.Func{FuncSPI1, FuncSPI5, FuncUARTD, FuncULPI}},
	DAP3FSPP0:     {Name: "dap3_fs_pp0", Funcs: [4]pin.Func{FuncI2S2, FuncSPI5, FuncDisplayA, FuncDisplayB}},
	DAP3DInPP1:    {Name: "dap3_din_pp1", Funcs: [4]pin.Func{FuncI2S2, FuncSPI5, FuncDisplayA, FuncDisplayB}},
	DAP3DOutPP2:   {Name: "dap3_dout_pp2", Funcs: [4]pin.Func{FuncI2S2, FuncSPI5, FuncDisplayA, pinmux.FuncRsvd4}},
	DAP3SClkPP3:   {Name: "dap3_sclk_pp3", Funcs: [4]pin.Func{FuncI2S2, FuncSPI5, pinmux.FuncRsvd3, FuncDisplayB}},
	PV0:           {Name: "pv0", Funcs: [4]pin.Func{pinmux.FuncRsvd1, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	PV1:           {Name: "pv1", Funcs: [4]pin.Func{pinmux.FuncRsvd1, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	SDMMC1ClkPZ0:  {Name: "sdmmc1_clk_pz0", Funcs: [4]pin.Func{FuncSDMMC1, FuncClk12, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	SDMMC1CmdPZ1:  {Name: "sdmmc1_cmd_pz1", Funcs: [4]pin.Func{FuncSDMMC1, FuncSPDIF, FuncSPI4, FuncUARTA}},
	SDMMC1Dat3PY4: {Name: "sdmmc1_dat3_py4", Funcs: [4]pin.Func{FuncSDMMC1, FuncSPDIF, FuncSPI4, FuncUARTA}},
	SDMMC1Dat2PY5: {Name: "sdmmc1_dat2_py5", Funcs: [4]pin.Func{FuncSDMMC1, FuncPWM0, FuncSPI4, FuncUARTA}},
	SDMMC1Dat1PY6: {Name: "sdmmc1_dat1_py6", Funcs: [4]pin.Func{FuncSDMMC1, FuncPWM1, FuncSPI4, FuncUARTA}},
	SDMMC1Dat0PY7: {Name: "sdmmc1_dat0_py7", Funcs: [4]pin.Func{FuncSDMMC1, pinmux.FuncRsvd2, FuncSPI4, FuncUARTA}},
	Clk2OutPW5:    {Name: "clk2_out_pw5", Funcs: [4]pin.Func{FuncExtPeriph2, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	Clk2ReqPCC5:   {Name: "clk2_req_pcc5", Funcs: [4]pin.Func{FuncDAP, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	HDMIIntPN7:    {Name: "hdmi_int_pn7", Funcs: [4]pin.Func{pinmux.FuncRsvd1, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	DDCSCLPV4:     {Name: "ddc_scl_pv4", Funcs: [4]pin.Func{FuncI2C4, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	DDCSDAPV5:     {Name: "ddc_sda_pv5", Funcs: [4]pin.Func{FuncI2C4, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	UART2RXDPC3:   {Name: "uart2_rxd_pc3", Funcs: [4]pin.Func{FuncIRDA, FuncSPDIF, FuncUARTA, FuncSPI4}},
	UART2TXDPC2:   {Name: "uart2_txd_pc2", Funcs: [4]pin.Func{FuncIRDA, FuncSPDIF, FuncUARTA, FuncSPI4}},
	UART2RTSNPJ6:  {Name: "uart2_rts_n_pj6", Funcs: [4]pin.Func{FuncUARTA, FuncUARTB, FuncGMI, FuncSPI4}},
	UART2CTSNPJ5:  {Name: "uart2_cts_n_pj5", Funcs: [4]pin.Func{FuncUARTA, FuncUARTB, FuncGMI, FuncSPI4}},
	UART3TXDPW6:   {Name: "uart3_txd_pw6", Funcs: [4]pin.Func{FuncUARTC, pinmux.FuncRsvd2, FuncGMI, FuncSPI4}},
	UART3RXDPW7:   {Name: "uart3_rxd_pw7", Funcs: [4]pin.Func{FuncUARTC, pinmux.FuncRsvd2, FuncGMI, FuncSPI4}},
	UART3CTSNPA1:  {Name: "uart3_cts_n_pa1", Funcs: [4]pin.Func{FuncUARTC, FuncSDMMC1, FuncDTV, FuncGMI}},
	UART3RTSNPC0:  {Name: "uart3_rts_n_pc0", Funcs: [4]pin.Func{FuncUARTC, FuncPWM0, FuncDTV, FuncGMI}},
	PU0:           {Name: "pu0", Funcs: [4]pin.Func{FuncOWR, FuncUARTA, FuncGMI, pinmux.FuncRsvd4}},
	PU1:           {Name: "pu1", Funcs: [4]pin.Func{pinmux.FuncRsvd1, FuncUARTA, FuncGMI, pinmux.FuncRsvd4}},
	PU2:           {Name: "pu2", Funcs: [4]pin.Func{pinmux.FuncRsvd1, FuncUARTA, FuncGMI, pinmux.FuncRsvd4}},
	PU3:           {Name: "pu3", Funcs: [4]pin.Func{FuncPWM0, FuncUARTA, FuncGMI, FuncDisplayB}},
	PU4:           {Name: "pu4", Funcs: [4]pin.Func{FuncPWM1, FuncUARTA, FuncGMI, FuncDisplayB}},
	PU5:           {Name: "pu5", Funcs: [4]pin.Func{FuncPWM2, FuncUARTA, FuncGMI, FuncDisplayB}},
	PU6:           {Name: "pu6", Funcs: [4]pin.Func{FuncPWM3, FuncUARTA, pinmux.FuncRsvd3, FuncGMI}},
	Gen1I2CSDAPC5: {Name: "gen1_i2c_sda_pc5", Funcs: [4]pin.Func{FuncI2C1, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	Gen1I2CSCLPC4: {Name: "gen1_i2c_scl_pc4", Funcs: [4]pin.Func{FuncI2C1, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	DAP4FSPP4:     {Name: "dap4_fs_pp4", Funcs: [4]pin.Func{FuncI2S3, FuncGMI, FuncDTV, pinmux.FuncRsvd4}},
	DAP4DInPP5:    {Name: "dap4_din_pp5", Funcs: [4]pin.Func{FuncI2S3, FuncGMI, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	DAP4DOutPP6:   {Name: "dap4_dout_pp6", Funcs: [4]pin.Func{FuncI2S3, FuncGMI, FuncDTV, pinmux.FuncRsvd4}},
	DAP4SClkPP7:   {Name: "dap4_sclk_pp7", Funcs: [4]pin.Func{FuncI2S3, FuncGMI, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	Clk3OutEE0:    {Name: "clk3_out_ee0", Funcs: [4]pin.Func{FuncExtPeriph3, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
	Clk3ReqEE1:    {Name: "clk3_req_ee1", Funcs: [4]pin.Func{FuncDev3, pinmux.FuncRsvd2, pinmux.FuncRsvd3, pinmux.FuncRsvd4}},
}

var driveGroups = [...]string{
	"ao1", "ao2", "at1", "at2", "at3", "at4", "at5", "cdev1", "cdev2",
	"rsvd9", "dap1", "dap2", "dap3", "dap4", "dbg", "rsvd15", "rsvd16",
	"rsvd17", "rsvd18", "sdio3", "spi", "uaa", "uab", "uart2", "uart3",
	"rsvd25", "sdio1", "rsvd27", "ddc", "gma", "rsvd30", "rsvd31", "rsvd32",
	"gme", "gmf", "gmg", "gmh", "owr", "uda", "gpv", "dev3",
}

type soc struct{}

func (soc) Name() string       { return "tegra124" }
func (soc) Compatible() string { return "nvidia,tegra124" }
func (soc) Features() pinmux.Features {
	return pinmux.FeatureIOBits | pinmux.FeatureRcvSel | pinmux.FeatureDriveGroups
}
func (soc) Layout() pinmux.Layout            { return pinmux.PerPinLayout }
func (soc) PinGroups() []pinmux.PinGroupDesc { return pinGroups[:] }
func (soc) DriveGroups() []string            { return driveGroups[:] }

// SoC is the tegra124 descriptor.
var SoC pinmux.SoC = soc{}

func init() {
	pinmux.RegisterSoC(SoC)
}
