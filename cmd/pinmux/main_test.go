package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tegra-pinmux/errcode"
	"tegra-pinmux/types"
)

func runArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestList(t *testing.T) {
	out, _, err := runArgs(t, "-list")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"tegra20", "nvidia,tegra124", "jetson-tk1", "harmony", "beaver-spi1"} {
		if !strings.Contains(out, s) {
			t.Fatalf("list missing %q:\n%s", s, out)
		}
	}
}

func TestDryRunBoard(t *testing.T) {
	out, log, err := runArgs(t, "-dry-run", "-board", "jetson-tk1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "0x70003020: ") {
		t.Fatalf("first write not the UARTD clock pin:\n%s", out)
	}
	first, _, _ := strings.Cut(out, "\n")
	f := strings.Fields(first)
	if len(f) != 4 || f[2] != "->" || len(f[1]) != 10 || len(f[3]) != 10 {
		t.Fatalf("journal line %q is not 0xOFFSET: 0xOLD -> 0xNEW", first)
	}
	if !strings.Contains(log, "board=jetson-tk1") {
		t.Fatalf("log:\n%s", log)
	}
}

func TestDryRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pins.json")
	doc := `{"soc":"tegra30","pingroups":[{"group":"gpio_pv3","function":"clk_12m_out","io":"output"}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, err := runArgs(t, "-dry-run", "-config", path, "-v")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "\n"); n != 4 {
		t.Fatalf("want func, pull, tristate and io writes; got %d:\n%s", n, out)
	}
}

func TestDumpAfterOverlay(t *testing.T) {
	out, _, err := runArgs(t, "-dry-run", "-board", "jetson-tk1", "-overlay", "jetson-tk1-pwm", "-dump")
	if err != nil {
		t.Fatal(err)
	}
	var doc types.PinmuxConfig
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("dump is not a table: %v\n%s", err, out)
	}
	if doc.SoC != "tegra124" {
		t.Fatalf("soc=%q", doc.SoC)
	}
	funcs := map[string]string{}
	for _, e := range doc.PinGroups {
		funcs[e.Group] = e.Function
	}
	for g, f := range map[string]string{"ulpi_clk_py0": "uartd", "pu3": "pwm0", "pu6": "pwm3", "sdmmc1_clk_pz0": "sdmmc1"} {
		if funcs[g] != f {
			t.Fatalf("%s=%q want %q", g, funcs[g], f)
		}
	}
	if len(doc.DriveGroups) == 0 {
		t.Fatal("no drive groups dumped")
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want errcode.Code
	}{
		{"unknown board", []string{"-dry-run", "-board", "ventana"}, errcode.UnknownBoard},
		{"unknown overlay", []string{"-dry-run", "-board", "beaver", "-overlay", "nope"}, errcode.UnknownBoard},
		{"unknown soc", []string{"-dry-run", "-board", "beaver", "-soc", "tegra210"}, errcode.UnknownSoC},
		{"wrong soc", []string{"-dry-run", "-board", "jetson-tk1", "-soc", "tegra20"}, errcode.UnknownSoC},
		{"overlay for other soc", []string{"-dry-run", "-board", "beaver", "-overlay", "jetson-tk1-pwm"}, errcode.UnknownSoC},
		{"nothing to do", []string{"-dry-run"}, errcode.InvalidParams},
		{"stray argument", []string{"-dry-run", "extra"}, errcode.InvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runArgs(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err=%v want %s", err, tt.want)
			}
		})
	}
}
