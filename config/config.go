// Package config loads pinmux tables from JSON documents and resolves their
// names against a SoC descriptor.
package config

import (
	"encoding/json"
	"io"

	"periph.io/x/conn/v3/pin"

	"tegra-pinmux/errcode"
	"tegra-pinmux/pinmux"
	"tegra-pinmux/types"
	"tegra-pinmux/x/conv"
)

// Parse decodes a configuration document. Unknown fields are rejected.
func Parse(r io.Reader) (*types.PinmuxConfig, error) {
	var doc types.PinmuxConfig
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "config_parse", Err: err}
	}
	return &doc, nil
}

// Tables is a resolved configuration ready for a Controller.
type Tables struct {
	SoC         pinmux.SoC
	PinGroups   []pinmux.PinGroupConfig
	DriveGroups []pinmux.DriveGroupConfig
}

// Resolve converts doc into config records for soc. When soc is nil the
// document's "soc" field selects a registered SoC.
func Resolve(doc *types.PinmuxConfig, soc pinmux.SoC) (*Tables, error) {
	if soc == nil {
		if soc = pinmux.FindSoC(doc.SoC); soc == nil {
			return nil, errcode.New(errcode.UnknownSoC, "config_resolve", doc.SoC)
		}
	} else if doc.SoC != "" && pinmux.FindSoC(doc.SoC) != soc {
		return nil, errcode.New(errcode.UnknownSoC, "config_resolve", doc.SoC+" document for "+soc.Name())
	}
	t := &Tables{SoC: soc}
	for i, e := range doc.PinGroups {
		cfg, err := pinGroup(soc, e)
		if err != nil {
			return nil, errcode.Index("config_pingroups", i, err)
		}
		t.PinGroups = append(t.PinGroups, cfg)
	}
	for i, e := range doc.DriveGroups {
		cfg, err := driveGroup(soc, e)
		if err != nil {
			return nil, errcode.Index("config_drivegroups", i, err)
		}
		t.DriveGroups = append(t.DriveGroups, cfg)
	}
	return t, nil
}

// Load parses and resolves in one step.
func Load(r io.Reader, soc pinmux.SoC) (*Tables, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return Resolve(doc, soc)
}

// Apply writes the tables through c: pin groups first, then drive groups.
func (t *Tables) Apply(c *pinmux.Controller) error {
	if err := c.ConfigPinGroupTable(t.PinGroups); err != nil {
		return err
	}
	if len(t.DriveGroups) == 0 {
		return nil
	}
	return c.ConfigDriveGroupTable(t.DriveGroups)
}

func pinGroup(soc pinmux.SoC, e types.PinGroupEntry) (pinmux.PinGroupConfig, error) {
	const op = "config_pingroup"
	pg, ok := pinmux.PinGroupByName(soc, e.Group)
	if !ok {
		return pinmux.PinGroupConfig{}, errcode.New(errcode.InvalidPinGroup, op, e.Group)
	}
	cfg := pinmux.PinGroupConfig{PinGroup: pg, Func: pin.Func(e.Function)}
	if e.Tristate {
		cfg.Tristate = pinmux.TriTristate
	}
	var bad string
	if cfg.Pull, ok = pinmux.ParsePull(e.Pull); !ok {
		bad = "pull " + e.Pull
	} else if cfg.IO, ok = pinmux.ParsePinIO(e.IO); !ok {
		bad = "io " + e.IO
	} else if cfg.Lock, ok = pinmux.ParseLock(e.Lock); !ok {
		bad = "lock " + e.Lock
	} else if cfg.OD, ok = pinmux.ParseOpenDrain(e.OD); !ok {
		bad = "od " + e.OD
	} else if cfg.IOReset, ok = pinmux.ParseIOReset(e.IOReset); !ok {
		bad = "ioreset " + e.IOReset
	} else if cfg.RcvSel, ok = pinmux.ParseRcvSel(e.RcvSel); !ok {
		bad = "rcv_sel " + e.RcvSel
	}
	if bad != "" {
		return pinmux.PinGroupConfig{}, errcode.New(errcode.InvalidParams, op, e.Group+": "+bad)
	}
	return cfg, nil
}

func driveGroup(soc pinmux.SoC, e types.DriveGroupEntry) (pinmux.DriveGroupConfig, error) {
	const op = "config_drivegroup"
	dg, ok := pinmux.DriveGroupByName(soc, e.Group)
	if !ok {
		return pinmux.DriveGroupConfig{}, errcode.New(errcode.InvalidDriveGroup, op, e.Group)
	}
	cfg := pinmux.DriveGroupConfig{
		DriveGroup:  dg,
		SlewFalling: level(e.SlewFalling),
		SlewRising:  level(e.SlewRising),
		DriveUp:     level(e.DriveUp),
		DriveDown:   level(e.DriveDown),
	}
	var bad string
	if cfg.LPMD, ok = pinmux.ParseLPMD(e.LPMD); !ok {
		bad = "lpmd " + e.LPMD
	} else if cfg.Schmitt, ok = pinmux.ParseSchmitt(e.Schmitt); !ok {
		bad = "schmitt " + e.Schmitt
	} else if cfg.HSM, ok = pinmux.ParseHSM(e.HSM); !ok {
		bad = "hsm " + e.HSM
	}
	if bad != "" {
		return pinmux.DriveGroupConfig{}, errcode.New(errcode.InvalidParams, op, e.Group+": "+bad)
	}
	return cfg, nil
}

func level(p *int) pinmux.Level {
	if p == nil {
		return pinmux.Unset
	}
	return pinmux.Some(*p)
}

// Document renders resolved records back into the JSON form, e.g. to save a
// read-back of the hardware state.
func Document(soc pinmux.SoC, pins []pinmux.PinGroupConfig, drives []pinmux.DriveGroupConfig) (*types.PinmuxConfig, error) {
	groups, names := soc.PinGroups(), soc.DriveGroups()
	doc := &types.PinmuxConfig{SoC: soc.Name()}
	for _, c := range pins {
		if int(c.PinGroup) >= len(groups) {
			return nil, errcode.New(errcode.InvalidPinGroup, "config_document", conv.Itoa(int(c.PinGroup)))
		}
		if err := representable(groups[c.PinGroup].Name, c.Pull, c.Tristate, c.IO, c.Lock, c.OD, c.IOReset, c.RcvSel); err != nil {
			return nil, err
		}
		doc.PinGroups = append(doc.PinGroups, types.PinGroupEntry{
			Group:    groups[c.PinGroup].Name,
			Function: string(c.Func),
			Pull:     c.Pull.String(),
			Tristate: c.Tristate == pinmux.TriTristate,
			IO:       omitDefault(c.IO.String()),
			Lock:     omitDefault(c.Lock.String()),
			OD:       omitDefault(c.OD.String()),
			IOReset:  omitDefault(c.IOReset.String()),
			RcvSel:   omitDefault(c.RcvSel.String()),
		})
	}
	for _, c := range drives {
		if int(c.DriveGroup) >= len(names) {
			return nil, errcode.New(errcode.InvalidDriveGroup, "config_document", conv.Itoa(int(c.DriveGroup)))
		}
		if err := representable(names[c.DriveGroup], c.LPMD, c.Schmitt, c.HSM); err != nil {
			return nil, err
		}
		doc.DriveGroups = append(doc.DriveGroups, types.DriveGroupEntry{
			Group:       names[c.DriveGroup],
			SlewFalling: intPtr(c.SlewFalling),
			SlewRising:  intPtr(c.SlewRising),
			DriveUp:     intPtr(c.DriveUp),
			DriveDown:   intPtr(c.DriveDown),
			LPMD:        omitNone(c.LPMD.String()),
			Schmitt:     omitNone(c.Schmitt.String()),
			HSM:         omitNone(c.HSM.String()),
		})
	}
	return doc, nil
}

// representable fails for field values that would not parse back, such as
// the reserved pull encoding read from hardware.
func representable(group string, vals ...interface{ String() string }) error {
	for _, v := range vals {
		if v.String() == "invalid" {
			return errcode.New(errcode.InvalidParams, "config_document", group)
		}
	}
	return nil
}

func omitDefault(s string) string {
	if s == "default" {
		return ""
	}
	return s
}

func omitNone(s string) string {
	if s == "none" {
		return ""
	}
	return s
}

func intPtr(l pinmux.Level) *int {
	v, ok := l.Get()
	if !ok {
		return nil
	}
	return &v
}
