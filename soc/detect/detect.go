// Package detect identifies the running Tegra SoC from the flattened device
// tree's root compatible property.
package detect

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/u-root/u-root/pkg/dt"

	"tegra-pinmux/errcode"
	"tegra-pinmux/pinmux"
)

// FDTPath is where Linux exposes the boot device tree.
const FDTPath = "/sys/firmware/fdt"

// Compatible returns the root node's compatible strings, most specific first.
func Compatible(r io.ReadSeeker) ([]string, error) {
	fdt, err := dt.ReadFDT(r)
	if err != nil {
		return nil, err
	}
	p, ok := fdt.RootNode.LookProperty("compatible")
	if !ok {
		return nil, errcode.New(errcode.UnknownSoC, "fdt_compatible", "root node has no compatible")
	}
	return splitStrings(p.Value), nil
}

// FromCompatible returns the first registered SoC matching one of compat.
func FromCompatible(compat []string) (pinmux.SoC, error) {
	for _, c := range compat {
		if s := pinmux.FindSoC(c); s != nil {
			return s, nil
		}
	}
	return nil, errcode.New(errcode.UnknownSoC, "detect", joinStrings(compat))
}

// FromFDT reads a device tree blob and returns the matching SoC.
func FromFDT(r io.ReadSeeker) (pinmux.SoC, error) {
	compat, err := Compatible(r)
	if err != nil {
		return nil, err
	}
	return FromCompatible(compat)
}

// Probe identifies the SoC of the running system.
func Probe() (pinmux.SoC, error) {
	f, err := os.Open(FDTPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromFDT(f)
}

// splitStrings splits a device-tree string list (NUL separated and terminated).
func splitStrings(b []byte) []string {
	var l []string
	for _, s := range bytes.Split(bytes.TrimRight(b, "\x00"), []byte{0}) {
		if len(s) != 0 {
			l = append(l, string(s))
		}
	}
	return l
}

func joinStrings(l []string) string {
	if len(l) == 0 {
		return "no compatible"
	}
	return strings.Join(l, ", ")
}
