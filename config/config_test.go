package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tegra-pinmux/errcode"
	"tegra-pinmux/pinmux"
	"tegra-pinmux/pinmux/sim"
	"tegra-pinmux/soc/tegra124"
	"tegra-pinmux/soc/tegra20"
	"tegra-pinmux/soc/tegra30"
)

const jetsonDoc = `{
  "soc": "tegra124",
  "pingroups": [
    {"group": "sdmmc1_clk_pz0", "function": "sdmmc1", "pull": "none"},
    {"group": "DDC_SCL_PV4", "function": "i2c4", "io": "input", "lock": "disable", "rcv_sel": "high"},
    {"group": "pv0", "pull": "up", "tristate": true}
  ],
  "drivegroups": [
    {"group": "sdio1", "slew_falling": 1, "drive_up": 32, "schmitt": "enable", "lpmd": "x"}
  ]
}`

func TestLoadResolvesNames(t *testing.T) {
	tab, err := Load(strings.NewReader(jetsonDoc), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tab.SoC != tegra124.SoC {
		t.Fatalf("soc=%v", tab.SoC)
	}
	wantPins := []pinmux.PinGroupConfig{
		{PinGroup: tegra124.SDMMC1ClkPZ0, Func: tegra124.FuncSDMMC1},
		{PinGroup: tegra124.DDCSCLPV4, Func: tegra124.FuncI2C4, IO: pinmux.IOInput,
			Lock: pinmux.LockDisable, RcvSel: pinmux.RcvSelHigh},
		{PinGroup: tegra124.PV0, Pull: pinmux.PullUp, Tristate: pinmux.TriTristate},
	}
	if d := cmp.Diff(wantPins, tab.PinGroups); d != "" {
		t.Fatalf("pingroups (-want +got):\n%s", d)
	}
	wantDrv := []pinmux.DriveGroupConfig{{
		DriveGroup:  tegra124.DrvSDIO1,
		SlewFalling: pinmux.Some(1),
		DriveUp:     pinmux.Some(32),
		LPMD:        pinmux.LPMDX,
		Schmitt:     pinmux.SchmittEnable,
	}}
	if d := cmp.Diff(wantDrv, tab.DriveGroups, cmp.AllowUnexported(pinmux.Level{})); d != "" {
		t.Fatalf("drivegroups (-want +got):\n%s", d)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		soc  pinmux.SoC
		want errcode.Code
	}{
		{"unknown field", `{"soc":"tegra124","pingroups":[{"group":"pv0","bogus":1}]}`, nil, errcode.InvalidParams},
		{"bad json", `{"soc":`, nil, errcode.InvalidParams},
		{"unknown soc", `{"soc":"tegra999","pingroups":[]}`, nil, errcode.UnknownSoC},
		{"soc mismatch", `{"soc":"tegra124","pingroups":[]}`, tegra20.SoC, errcode.UnknownSoC},
		{"unknown group", `{"soc":"tegra124","pingroups":[{"group":"nope"}]}`, nil, errcode.InvalidPinGroup},
		{"bad pull", `{"soc":"tegra124","pingroups":[{"group":"pv0","pull":"sideways"}]}`, nil, errcode.InvalidParams},
		{"bad rcv_sel", `{"soc":"tegra124","pingroups":[{"group":"pv0","rcv_sel":"low"}]}`, nil, errcode.InvalidParams},
		{"unknown drive group", `{"soc":"tegra124","pingroups":[],"drivegroups":[{"group":"nope"}]}`, nil, errcode.InvalidDriveGroup},
		{"bad lpmd", `{"soc":"tegra124","pingroups":[],"drivegroups":[{"group":"sdio1","lpmd":"x3"}]}`, nil, errcode.InvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc), tt.soc)
			if errcode.Of(err) != tt.want {
				t.Fatalf("err=%v want code %s", err, tt.want)
			}
		})
	}
}

func TestResolveErrorCarriesIndex(t *testing.T) {
	doc := `{"soc":"tegra124","pingroups":[{"group":"pv0"},{"group":"pv1"},{"group":"pz9"}]}`
	_, err := Load(strings.NewReader(doc), nil)
	if err == nil || !strings.Contains(err.Error(), "entry 2") {
		t.Fatalf("err=%v", err)
	}
	if !errors.Is(err, errcode.InvalidPinGroup) {
		t.Fatalf("code=%s", errcode.Of(err))
	}
}

func TestExplicitSoCOverridesEmptyField(t *testing.T) {
	tab, err := Load(strings.NewReader(`{"pingroups":[{"group":"gmc","function":"uartd"}]}`), tegra20.SoC)
	if err != nil {
		t.Fatal(err)
	}
	if tab.PinGroups[0].PinGroup != tegra20.GMC || tab.PinGroups[0].Func != tegra20.FuncUARTD {
		t.Fatalf("got %+v", tab.PinGroups[0])
	}
}

func TestEmbeddedOverlaysApply(t *testing.T) {
	for _, name := range EmbeddedNames() {
		t.Run(name, func(t *testing.T) {
			tab, err := LoadEmbedded(name, nil)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			c := pinmux.New(tab.SoC, sim.New())
			if err := tab.Apply(c); err != nil {
				t.Fatalf("apply: %v", err)
			}
		})
	}
}

func TestEmbeddedLookupOverride(t *testing.T) {
	old := EmbeddedConfigLookup
	defer func() { EmbeddedConfigLookup = old }()
	EmbeddedConfigLookup = func(name string) ([]byte, bool) {
		if name != "custom" {
			return nil, false
		}
		return []byte(`{"soc":"tegra30","pingroups":[{"group":"gpio_pv3","function":"rsvd1"}]}`), true
	}
	tab, err := LoadEmbedded("custom", nil)
	if err != nil {
		t.Fatal(err)
	}
	if tab.SoC != tegra30.SoC || tab.PinGroups[0].PinGroup != tegra30.GPIOPV3 {
		t.Fatalf("got %+v", tab.PinGroups)
	}
	if _, err := LoadEmbedded("jetson-tk1-pwm", nil); !errors.Is(err, errcode.UnknownBoard) {
		t.Fatalf("err=%v", err)
	}
}

func TestDocumentRoundTripsState(t *testing.T) {
	tab, err := Load(strings.NewReader(jetsonDoc), nil)
	if err != nil {
		t.Fatal(err)
	}
	c := pinmux.New(tab.SoC, sim.New())
	if err := tab.Apply(c); err != nil {
		t.Fatal(err)
	}
	var pins []pinmux.PinGroupConfig
	for _, p := range tab.PinGroups {
		st, err := c.PinGroupState(p.PinGroup)
		if err != nil {
			t.Fatal(err)
		}
		pins = append(pins, st)
	}
	st, err := c.DriveGroupState(tegra124.DrvSDIO1)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := Document(tab.SoC, pins, []pinmux.DriveGroupConfig{st})
	if err != nil {
		t.Fatal(err)
	}
	back, err := Resolve(doc, nil)
	if err != nil {
		t.Fatalf("resolve exported document: %v", err)
	}
	if d := cmp.Diff(pins, back.PinGroups); d != "" {
		t.Fatalf("pin state changed through document (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]pinmux.DriveGroupConfig{st}, back.DriveGroups, cmp.AllowUnexported(pinmux.Level{})); d != "" {
		t.Fatalf("drive state changed through document (-want +got):\n%s", d)
	}
	if doc.PinGroups[0].Function != "sdmmc1" || doc.DriveGroups[0].Group != "sdio1" {
		t.Fatalf("doc=%+v", doc)
	}
}

func TestDocumentRejectsUnknownIndex(t *testing.T) {
	_, err := Document(tegra124.SoC, []pinmux.PinGroupConfig{{PinGroup: 9999}}, nil)
	if !errors.Is(err, errcode.InvalidPinGroup) {
		t.Fatalf("err=%v", err)
	}
	_, err = Document(tegra124.SoC, nil, []pinmux.DriveGroupConfig{{DriveGroup: 9999}})
	if !errors.Is(err, errcode.InvalidDriveGroup) {
		t.Fatalf("err=%v", err)
	}
}

func TestDocumentRejectsReservedEncodings(t *testing.T) {
	r := sim.New()
	// Pull field 3 is reserved on Tegra124.
	r.Poke(0x3000, 3<<2)
	c := pinmux.New(tegra124.SoC, r)
	st, err := c.PinGroupState(0)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Document(tegra124.SoC, []pinmux.PinGroupConfig{st}, nil)
	if !errors.Is(err, errcode.InvalidParams) {
		t.Fatalf("err=%v", err)
	}

	tests := []struct {
		name   string
		pins   []pinmux.PinGroupConfig
		drives []pinmux.DriveGroupConfig
	}{
		{"tristate", []pinmux.PinGroupConfig{{Tristate: 2}}, nil},
		{"rcv_sel", []pinmux.PinGroupConfig{{RcvSel: 3}}, nil},
		{"lpmd", nil, []pinmux.DriveGroupConfig{{LPMD: 9}}},
		{"hsm", nil, []pinmux.DriveGroupConfig{{HSM: 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Document(tegra124.SoC, tt.pins, tt.drives); !errors.Is(err, errcode.InvalidParams) {
				t.Fatalf("err=%v", err)
			}
		})
	}
}
