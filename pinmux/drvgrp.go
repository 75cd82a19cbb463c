package pinmux

import (
	"tegra-pinmux/errcode"
	"tegra-pinmux/x/conv"
)

// DriveGroupConfig is the pad-control configuration of one drive group.
// Zero-valued fields are left at their current hardware value, so one record
// can adjust any subset of attributes.
type DriveGroupConfig struct {
	DriveGroup  DriveGroup
	SlewFalling Level // 0..3
	SlewRising  Level // 0..3
	DriveUp     Level // pull-up drive strength, 0..127
	DriveDown   Level // pull-down drive strength, 0..127
	LPMD        LPMD
	Schmitt     Schmitt
	HSM         HSM
}

func (c *Controller) drive(op string, dg DriveGroup) error {
	if err := c.needs(op, FeatureDriveGroups); err != nil {
		return err
	}
	if int(dg) >= len(c.drives) {
		return errcode.New(errcode.InvalidDriveGroup, op, conv.Itoa(int(dg)))
	}
	return nil
}

func (c *Controller) setLevel(op string, dg DriveGroup, l Level, lo, hi int, shift, mask uint32) error {
	if err := c.drive(op, dg); err != nil || !l.IsSet() {
		return err
	}
	if !l.within(lo, hi) {
		return errcode.New(errcode.OutOfRange, op, conv.Itoa(l.v))
	}
	return c.update(op, c.layout.driveField(dg, shift, mask), uint32(l.v), false)
}

// SetSlewFalling sets the falling-edge slew of dg.
func (c *Controller) SetSlewFalling(dg DriveGroup, l Level) error {
	return c.setLevel("set_slwf", dg, l, SlewMin, SlewMax, slwfShift, 3)
}

// SetSlewRising sets the rising-edge slew of dg.
func (c *Controller) SetSlewRising(dg DriveGroup, l Level) error {
	return c.setLevel("set_slwr", dg, l, SlewMin, SlewMax, slwrShift, 3)
}

// SetDriveUp sets the pull-up drive strength of dg.
func (c *Controller) SetDriveUp(dg DriveGroup, l Level) error {
	return c.setLevel("set_drvup", dg, l, DriveMin, DriveMax, drvUpShift, 0x7f)
}

// SetDriveDown sets the pull-down drive strength of dg.
func (c *Controller) SetDriveDown(dg DriveGroup, l Level) error {
	return c.setLevel("set_drvdn", dg, l, DriveMin, DriveMax, drvDnShift, 0x7f)
}

// SetLPMD sets the low-power mode of dg. LPMDNone is a no-op.
func (c *Controller) SetLPMD(dg DriveGroup, m LPMD) error {
	const op = "set_lpmd"
	if err := c.drive(op, dg); err != nil || m == LPMDNone {
		return err
	}
	if m > LPMDX {
		return errcode.New(errcode.InvalidParams, op, conv.Itoa(int(m)))
	}
	return c.update(op, c.layout.driveField(dg, lpmdShift, 3), uint32(m-1), false)
}

// SetSchmitt enables or disables the schmitt trigger of dg.
func (c *Controller) SetSchmitt(dg DriveGroup, s Schmitt) error {
	return c.setOnOff("set_schmt", dg, uint8(s), schmtShift)
}

// SetHSM enables or disables high-speed mode on dg.
func (c *Controller) SetHSM(dg DriveGroup, h HSM) error {
	return c.setOnOff("set_hsm", dg, uint8(h), hsmShift)
}

func (c *Controller) setOnOff(op string, dg DriveGroup, v uint8, shift uint32) error {
	if err := c.drive(op, dg); err != nil || v == 0 {
		return err
	}
	if v > 2 {
		return errcode.New(errcode.InvalidParams, op, conv.Itoa(int(v)))
	}
	return c.update(op, c.layout.driveField(dg, shift, 1), uint32(v-1), false)
}

// ValidateDriveGroup checks cfg against the SoC without touching registers.
func (c *Controller) ValidateDriveGroup(cfg DriveGroupConfig) error {
	const op = "config_drvgrp"
	if err := c.drive(op, cfg.DriveGroup); err != nil {
		return err
	}
	for _, l := range []Level{cfg.SlewFalling, cfg.SlewRising} {
		if !l.within(SlewMin, SlewMax) {
			return errcode.New(errcode.OutOfRange, op, "slew "+conv.Itoa(l.v))
		}
	}
	for _, l := range []Level{cfg.DriveUp, cfg.DriveDown} {
		if !l.within(DriveMin, DriveMax) {
			return errcode.New(errcode.OutOfRange, op, "drive "+conv.Itoa(l.v))
		}
	}
	if cfg.LPMD > LPMDX || cfg.Schmitt > SchmittEnable || cfg.HSM > HSMEnable {
		return errcode.New(errcode.InvalidParams, op, c.drives[cfg.DriveGroup])
	}
	return nil
}

// ConfigDriveGroup applies one record in the order hsm, schmitt, lpmd,
// drive-down, drive-up, slew-rising, slew-falling.
func (c *Controller) ConfigDriveGroup(cfg DriveGroupConfig) error {
	if err := c.ValidateDriveGroup(cfg); err != nil {
		return err
	}
	return c.applyDriveGroup(cfg)
}

func (c *Controller) applyDriveGroup(cfg DriveGroupConfig) error {
	dg := cfg.DriveGroup
	if err := c.SetHSM(dg, cfg.HSM); err != nil {
		return err
	}
	if err := c.SetSchmitt(dg, cfg.Schmitt); err != nil {
		return err
	}
	if err := c.SetLPMD(dg, cfg.LPMD); err != nil {
		return err
	}
	if err := c.SetDriveDown(dg, cfg.DriveDown); err != nil {
		return err
	}
	if err := c.SetDriveUp(dg, cfg.DriveUp); err != nil {
		return err
	}
	if err := c.SetSlewRising(dg, cfg.SlewRising); err != nil {
		return err
	}
	return c.SetSlewFalling(dg, cfg.SlewFalling)
}

// ConfigDriveGroupTable applies cfgs in slice order after validating all of
// them. Requires FeatureDriveGroups.
func (c *Controller) ConfigDriveGroupTable(cfgs []DriveGroupConfig) error {
	const op = "config_drvgrp_table"
	if err := c.needs(op, FeatureDriveGroups); err != nil {
		return err
	}
	for i := range cfgs {
		if err := c.ValidateDriveGroup(cfgs[i]); err != nil {
			return errcode.Index(op, i, err)
		}
	}
	for i := range cfgs {
		if err := c.applyDriveGroup(cfgs[i]); err != nil {
			return errcode.Index(op, i, err)
		}
	}
	return nil
}

// DriveGroupState reads back the pad-control register of dg. Every field of
// the result is set.
func (c *Controller) DriveGroupState(dg DriveGroup) (DriveGroupConfig, error) {
	if err := c.drive("drvgrp_state", dg); err != nil {
		return DriveGroupConfig{}, err
	}
	w := c.regs.Read32(c.layout.driveField(dg, 0, 0).off)
	get := func(shift, mask uint32) uint32 { return w >> shift & mask }
	return DriveGroupConfig{
		DriveGroup:  dg,
		SlewFalling: Some(int(get(slwfShift, 3))),
		SlewRising:  Some(int(get(slwrShift, 3))),
		DriveUp:     Some(int(get(drvUpShift, 0x7f))),
		DriveDown:   Some(int(get(drvDnShift, 0x7f))),
		LPMD:        LPMD(get(lpmdShift, 3) + 1),
		Schmitt:     Schmitt(get(schmtShift, 1) + 1),
		HSM:         HSM(get(hsmShift, 1) + 1),
	}, nil
}
