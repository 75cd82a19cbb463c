package pinmux_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slog"
	"periph.io/x/conn/v3/pin"

	"tegra-pinmux/errcode"
	"tegra-pinmux/pinmux"
	"tegra-pinmux/pinmux/sim"
	"tegra-pinmux/soc/tegra124"
	"tegra-pinmux/soc/tegra20"
	"tegra-pinmux/soc/tegra30"
)

func pinReg(pg pinmux.PinGroup) uint32 { return 0x3000 + uint32(pg)*4 }

func newT124(opts ...pinmux.Option) (*pinmux.Controller, *sim.Regs) {
	r := sim.New()
	return pinmux.New(tegra124.SoC, r, opts...), r
}

func wantCode(t *testing.T, err error, c errcode.Code) {
	t.Helper()
	if !errors.Is(err, c) {
		t.Fatalf("err=%v want %s", err, c)
	}
}

func wantJournal(t *testing.T, r *sim.Regs, want []sim.Write) {
	t.Helper()
	if d := cmp.Diff(want, r.Journal()); d != "" {
		t.Fatalf("journal (-want +got):\n%s", d)
	}
}

func TestPerPinSetters(t *testing.T) {
	pg := tegra124.ULPIClkPY0
	tests := []struct {
		name string
		set  func(c *pinmux.Controller) error
		want uint32
	}{
		{"func", func(c *pinmux.Controller) error { return c.SetFunc(pg, tegra124.FuncUARTD) }, 2},
		{"rsvd4", func(c *pinmux.Controller) error { return c.SetFunc(pg, pinmux.FuncRsvd4) }, 3},
		{"pull up", func(c *pinmux.Controller) error { return c.SetPullUpDown(pg, pinmux.PullUp) }, 2 << 2},
		{"pull down", func(c *pinmux.Controller) error { return c.SetPullUpDown(pg, pinmux.PullDown) }, 1 << 2},
		{"tristate", func(c *pinmux.Controller) error { return c.TristateEnable(pg) }, 1 << 4},
		{"input", func(c *pinmux.Controller) error { return c.SetIO(pg, pinmux.IOInput) }, 1 << 5},
		{"open drain", func(c *pinmux.Controller) error { return c.SetOpenDrain(pg, pinmux.ODEnable) }, 1 << 6},
		{"lock", func(c *pinmux.Controller) error { return c.SetLock(pg, pinmux.LockEnable) }, 1 << 7},
		{"ioreset", func(c *pinmux.Controller) error { return c.SetIOReset(pg, pinmux.IOResetEnable) }, 1 << 8},
		{"rcv sel", func(c *pinmux.Controller) error { return c.SetRcvSel(pg, pinmux.RcvSelHigh) }, 1 << 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, r := newT124()
			if err := tt.set(c); err != nil {
				t.Fatal(err)
			}
			wantJournal(t, r, []sim.Write{{Off: pinReg(pg), New: tt.want}})
		})
	}
}

func TestSettersPreserveOtherBits(t *testing.T) {
	pg := tegra124.SDMMC1CmdPZ1
	c, r := newT124()
	r.Poke(pinReg(pg), 0x3ff&^(1<<7))
	if err := c.SetPullUpDown(pg, pinmux.PullNormal); err != nil {
		t.Fatal(err)
	}
	if err := c.SetIO(pg, pinmux.IOOutput); err != nil {
		t.Fatal(err)
	}
	if err := c.TristateDisable(pg); err != nil {
		t.Fatal(err)
	}
	if got, want := r.Read32(pinReg(pg)), uint32(0x3ff&^(1<<7|3<<2|1<<5|1<<4)); got != want {
		t.Fatalf("reg=%#x want %#x", got, want)
	}
}

func TestLegacyAddressing(t *testing.T) {
	r := sim.New()
	c := pinmux.New(tegra20.SoC, r)
	if err := c.SetFunc(tegra20.GMC, tegra20.FuncSPI4); err != nil {
		t.Fatal(err)
	}
	if err := c.SetPullUpDown(tegra20.GMC, pinmux.PullUp); err != nil {
		t.Fatal(err)
	}
	if err := c.TristateEnable(tegra20.GMC); err != nil {
		t.Fatal(err)
	}
	if err := c.TristateEnable(tegra20.UCB); err != nil {
		t.Fatal(err)
	}
	wantJournal(t, r, []sim.Write{
		{Off: 0x80, New: 1 << 24},
		{Off: 0xa4, New: 2 << 26},
		{Off: 0x14, New: 1 << 29},
		{Off: 0x18, New: 1 << 23},
	})
}

func TestLegacyGroupWithoutControl(t *testing.T) {
	r := sim.New()
	c := pinmux.New(tegra20.SoC, r)
	wantCode(t, c.SetFunc(tegra20.PMC, tegra20.FuncPwrOn), errcode.Unsupported)
	wantCode(t, c.SetPullUpDown(tegra20.PMC, pinmux.PullUp), errcode.Unsupported)
	wantCode(t, c.SetPullUpDown(tegra20.OWC, pinmux.PullNormal), errcode.Unsupported)
	if len(r.Journal()) != 0 {
		t.Fatalf("unexpected writes: %v", r.Journal())
	}
	// A record that only asks for defaults still programs tristate.
	if err := c.ConfigPinGroup(pinmux.PinGroupConfig{PinGroup: tegra20.PMC, Tristate: pinmux.TriTristate}); err != nil {
		t.Fatal(err)
	}
	wantJournal(t, r, []sim.Write{{Off: 0x14, New: 1 << 23}})
}

func TestDefaultsAreNoops(t *testing.T) {
	for _, s := range []pinmux.SoC{tegra20.SoC, tegra30.SoC, tegra124.SoC} {
		t.Run(s.Name(), func(t *testing.T) {
			r := sim.New()
			c := pinmux.New(s, r)
			var pg pinmux.PinGroup
			for _, err := range []error{
				c.SetFunc(pg, pinmux.FuncDefault),
				c.SetIO(pg, pinmux.IONone),
				c.SetLock(pg, pinmux.LockDefault),
				c.SetOpenDrain(pg, pinmux.ODDefault),
				c.SetIOReset(pg, pinmux.IOResetDefault),
				c.SetRcvSel(pg, pinmux.RcvSelDefault),
			} {
				if err != nil {
					t.Fatal(err)
				}
			}
			if len(r.Journal()) != 0 {
				t.Fatalf("unexpected writes: %v", r.Journal())
			}
		})
	}
}

func TestFeatureGating(t *testing.T) {
	r := sim.New()
	t20 := pinmux.New(tegra20.SoC, r)
	wantCode(t, t20.SetIO(tegra20.ATA, pinmux.IOInput), errcode.Unsupported)
	wantCode(t, t20.SetLock(tegra20.ATA, pinmux.LockEnable), errcode.Unsupported)
	wantCode(t, t20.SetOpenDrain(tegra20.ATA, pinmux.ODEnable), errcode.Unsupported)
	wantCode(t, t20.SetIOReset(tegra20.ATA, pinmux.IOResetDisable), errcode.Unsupported)
	wantCode(t, t20.SetRcvSel(tegra20.ATA, pinmux.RcvSelHigh), errcode.Unsupported)

	t30 := pinmux.New(tegra30.SoC, r)
	wantCode(t, t30.SetRcvSel(tegra30.GPIOPV3, pinmux.RcvSelNormal), errcode.Unsupported)
	wantCode(t, t30.ConfigPinGroup(pinmux.PinGroupConfig{PinGroup: tegra30.GPIOPV3, RcvSel: pinmux.RcvSelHigh}), errcode.Unsupported)
	if len(r.Journal()) != 0 {
		t.Fatalf("unexpected writes: %v", r.Journal())
	}
	if err := t30.SetIO(tegra30.GPIOPV3, pinmux.IOInput); err != nil {
		t.Fatal(err)
	}
}

func TestInvalidArguments(t *testing.T) {
	c, r := newT124()
	wantCode(t, c.SetFunc(9999, tegra124.FuncUARTD), errcode.InvalidPinGroup)
	wantCode(t, c.SetFunc(tegra124.ULPIClkPY0, tegra124.FuncSDMMC1), errcode.InvalidFunc)
	wantCode(t, c.SetFunc(tegra124.ULPIClkPY0, pin.Func("nonsense")), errcode.InvalidFunc)
	wantCode(t, c.SetTristate(tegra124.PV0, 7), errcode.InvalidParams)
	wantCode(t, c.SetPullUpDown(tegra124.PV0, 3), errcode.InvalidParams)
	wantCode(t, c.SetIO(tegra124.PV0, 3), errcode.InvalidParams)
	wantCode(t, c.SetOpenDrain(tegra124.PV0, 3), errcode.InvalidParams)
	if len(r.Journal()) != 0 {
		t.Fatalf("unexpected writes: %v", r.Journal())
	}
}

func TestLockedRegister(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c, r := newT124(pinmux.WithLogger(log))
	pg := tegra124.Gen1I2CSDAPC5
	r.Poke(pinReg(pg), 1<<7|1<<6)

	// Unchanged writes succeed without touching the register.
	if err := c.SetLock(pg, pinmux.LockEnable); err != nil {
		t.Fatal(err)
	}
	if err := c.SetOpenDrain(pg, pinmux.ODEnable); err != nil {
		t.Fatal(err)
	}
	wantCode(t, c.SetLock(pg, pinmux.LockDisable), errcode.Locked)
	wantCode(t, c.SetPullUpDown(pg, pinmux.PullUp), errcode.Locked)
	wantCode(t, c.SetFunc(pg, pinmux.FuncRsvd2), errcode.Locked)
	if len(r.Journal()) != 0 {
		t.Fatalf("unexpected writes: %v", r.Journal())
	}
	if !strings.Contains(buf.String(), "pinmux register locked") {
		t.Fatalf("no warning logged:\n%s", buf.String())
	}
}

func TestWritesAreLogged(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c, _ := newT124(pinmux.WithLogger(log))
	if err := c.SetFunc(tegra124.PU3, tegra124.FuncPWM0); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, s := range []string{"op=set_func", "reg=0x30a0", "new=0x0"} {
		if !strings.Contains(out, s) {
			t.Fatalf("log missing %q:\n%s", s, out)
		}
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"tegra124", "TEGRA124", "nvidia,tegra124"} {
		if got := pinmux.FindSoC(name); got != tegra124.SoC {
			t.Fatalf("FindSoC(%q)=%v", name, got)
		}
	}
	if got := pinmux.FindSoC("nvidia,tegra30"); got != tegra30.SoC {
		t.Fatalf("FindSoC(tegra30)=%v", got)
	}
	if pinmux.FindSoC("tegra210") != nil {
		t.Fatal("unexpected match")
	}
	names := map[string]bool{}
	for _, n := range pinmux.SoCs() {
		names[n] = true
	}
	for _, n := range []string{"tegra20", "tegra30", "tegra124"} {
		if !names[n] {
			t.Fatalf("SoCs()=%v missing %s", pinmux.SoCs(), n)
		}
	}
	if pg, ok := pinmux.PinGroupByName(tegra124.SoC, "SDMMC1_CLK_PZ0"); !ok || pg != tegra124.SDMMC1ClkPZ0 {
		t.Fatalf("PinGroupByName=%d,%v", pg, ok)
	}
	if dg, ok := pinmux.DriveGroupByName(tegra20.SoC, "sdio1"); !ok || dg != tegra20.DrvSDIO1 {
		t.Fatalf("DriveGroupByName=%d,%v", dg, ok)
	}
	if _, ok := pinmux.PinGroupByName(tegra20.SoC, "sdmmc1_clk_pz0"); ok {
		t.Fatal("tegra124 name resolved on tegra20")
	}
}

func TestDescriptorTablesAreConsistent(t *testing.T) {
	for _, s := range []pinmux.SoC{tegra20.SoC, tegra30.SoC, tegra124.SoC} {
		seen := map[string]bool{}
		for i, d := range s.PinGroups() {
			if d.Name == "" || seen[d.Name] {
				t.Fatalf("%s: pin group %d has empty or duplicate name %q", s.Name(), i, d.Name)
			}
			seen[d.Name] = true
			for slot, f := range d.Funcs {
				if f == pinmux.FuncDefault {
					t.Fatalf("%s: %s slot %d is empty", s.Name(), d.Name, slot)
				}
			}
		}
		if s.Layout().Legacy {
			continue
		}
		if n := uint32(len(s.PinGroups())); 0x3000+n*4 > s.Layout().Size {
			t.Fatalf("%s: pin groups overflow the register window", s.Name())
		}
	}
}
