package config

import (
	"bytes"

	"tegra-pinmux/errcode"
	"tegra-pinmux/pinmux"
)

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Overlays applied on top of a board table, keyed by name.
// -----------------------------------------------------------------------------

// EmbeddedConfigLookup allows overriding how embedded overlays are resolved.
var EmbeddedConfigLookup = func(name string) ([]byte, bool) {
	b, ok := embeddedConfigs[name]
	return b, ok
}

// LoadEmbedded resolves the named overlay against soc (nil selects the
// overlay's own SoC).
func LoadEmbedded(name string, soc pinmux.SoC) (*Tables, error) {
	raw, ok := EmbeddedConfigLookup(name)
	if !ok || len(raw) == 0 {
		return nil, errcode.New(errcode.UnknownBoard, "config_embedded", name)
	}
	return Load(bytes.NewReader(raw), soc)
}

// EmbeddedNames lists the built-in overlays.
func EmbeddedNames() []string {
	var l []string
	for k := range embeddedConfigs {
		l = append(l, k)
	}
	return l
}

// PWM fan and backlight on the Jetson TK1 expansion header (PU3..PU6).
const cfgJetsonTK1PWM = `{
  "soc": "tegra124",
  "board": "jetson-tk1",
  "pingroups": [
    {"group": "pu3", "function": "pwm0", "pull": "none", "tristate": false, "io": "output"},
    {"group": "pu4", "function": "pwm1", "pull": "none", "tristate": false, "io": "output"},
    {"group": "pu5", "function": "pwm2", "pull": "none", "tristate": false, "io": "output"},
    {"group": "pu6", "function": "pwm3", "pull": "none", "tristate": false, "io": "output"}
  ]
}`

// Second SPI on the Beaver ULPI pads, slower edges on the UAA drive group.
const cfgBeaverSPI1 = `{
  "soc": "tegra30",
  "board": "beaver",
  "pingroups": [
    {"group": "ulpi_clk_py0", "function": "spi1", "pull": "none", "io": "output"},
    {"group": "ulpi_dir_py1", "function": "spi1", "pull": "none", "io": "input"},
    {"group": "ulpi_nxt_py2", "function": "spi1", "pull": "none", "io": "input"},
    {"group": "ulpi_stp_py3", "function": "spi1", "pull": "up", "io": "output"}
  ],
  "drivegroups": [
    {"group": "uaa", "slew_falling": 2, "slew_rising": 2}
  ]
}`

var embeddedConfigs = map[string][]byte{
	"jetson-tk1-pwm": []byte(cfgJetsonTK1PWM),
	"beaver-spi1":    []byte(cfgBeaverSPI1),
}
