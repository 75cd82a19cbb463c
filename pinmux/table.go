package pinmux

import (
	"periph.io/x/conn/v3/pin"

	"tegra-pinmux/errcode"
)

// PinGroupConfig is the complete configuration of one pin group: the function
// routed to it plus its electrical attributes. Fields beyond Tristate need
// FeatureIOBits (RcvSel needs FeatureRcvSel) unless left at their zero value.
type PinGroupConfig struct {
	PinGroup PinGroup
	Func     pin.Func
	Pull     Pull
	Tristate Tristate
	IO       PinIO
	Lock     Lock
	OD       OpenDrain
	IOReset  IOReset
	RcvSel   RcvSel
}

// ValidatePinGroup checks cfg against the SoC without touching registers.
func (c *Controller) ValidatePinGroup(cfg PinGroupConfig) error {
	const op = "config_pingrp"
	d, err := c.group(op, cfg.PinGroup)
	if err != nil {
		return err
	}
	if cfg.Func != FuncDefault {
		if _, ok := d.Slot(cfg.Func); !ok {
			return errcode.New(errcode.InvalidFunc, op, string(cfg.Func)+" on "+d.Name)
		}
		if _, ok := c.layout.muxField(cfg.PinGroup, d); !ok {
			return errcode.New(errcode.Unsupported, op, d.Name+" has no mux control")
		}
	}
	if _, ok := c.layout.pullField(cfg.PinGroup, d); !ok && cfg.Pull != PullNormal {
		return errcode.New(errcode.Unsupported, op, d.Name+" has no pull control")
	}
	if cfg.Pull > PullUp || cfg.Tristate > TriTristate || cfg.IO > IOInput ||
		cfg.Lock > LockEnable || cfg.OD > ODEnable || cfg.IOReset > IOResetEnable ||
		cfg.RcvSel > RcvSelHigh {
		return errcode.New(errcode.InvalidParams, op, d.Name)
	}
	if cfg.IO != IONone || cfg.Lock != LockDefault || cfg.OD != ODDefault || cfg.IOReset != IOResetDefault {
		if err := c.needs(op, FeatureIOBits); err != nil {
			return err
		}
	}
	if cfg.RcvSel != RcvSelDefault {
		if err := c.needs(op, FeatureRcvSel); err != nil {
			return err
		}
	}
	return nil
}

// ConfigPinGroup applies one record: function, pull, tristate, direction,
// open-drain, io-reset, receiver select and finally lock, so that locking
// never freezes the record's own writes.
//
// On a legacy layout group without pull control a PullNormal pull is skipped.
func (c *Controller) ConfigPinGroup(cfg PinGroupConfig) error {
	if err := c.ValidatePinGroup(cfg); err != nil {
		return err
	}
	return c.applyPinGroup(cfg)
}

func (c *Controller) applyPinGroup(cfg PinGroupConfig) error {
	pg := cfg.PinGroup
	if err := c.SetFunc(pg, cfg.Func); err != nil {
		return err
	}
	if _, ok := c.layout.pullField(pg, &c.groups[pg]); ok {
		if err := c.SetPullUpDown(pg, cfg.Pull); err != nil {
			return err
		}
	}
	if err := c.SetTristate(pg, cfg.Tristate); err != nil {
		return err
	}
	if err := c.SetIO(pg, cfg.IO); err != nil {
		return err
	}
	if err := c.SetOpenDrain(pg, cfg.OD); err != nil {
		return err
	}
	if err := c.SetIOReset(pg, cfg.IOReset); err != nil {
		return err
	}
	if err := c.SetRcvSel(pg, cfg.RcvSel); err != nil {
		return err
	}
	return c.SetLock(pg, cfg.Lock)
}

// ConfigPinGroupTable applies cfgs in slice order.
//
// Every record is validated before the first register write, so a table with
// a bad entry leaves the hardware untouched. A record refused at write time
// (a locked register) stops the table; earlier records stay applied. Errors
// carry the index of the offending record.
func (c *Controller) ConfigPinGroupTable(cfgs []PinGroupConfig) error {
	const op = "config_pingrp_table"
	for i := range cfgs {
		if err := c.ValidatePinGroup(cfgs[i]); err != nil {
			return errcode.Index(op, i, err)
		}
	}
	for i := range cfgs {
		if err := c.applyPinGroup(cfgs[i]); err != nil {
			return errcode.Index(op, i, err)
		}
	}
	c.log.Debug("pinmux table applied", "soc", c.soc.Name(), "entries", len(cfgs))
	return nil
}

// PinGroupState reads back the current configuration of pg. Fields the SoC
// cannot express are left at their zero value; Func is the descriptor
// function of the selected slot, or FuncRsvdN for an unnamed slot.
func (c *Controller) PinGroupState(pg PinGroup) (PinGroupConfig, error) {
	d, err := c.group("pingrp_state", pg)
	if err != nil {
		return PinGroupConfig{}, err
	}
	cfg := PinGroupConfig{PinGroup: pg}
	if f, ok := c.layout.muxField(pg, d); ok {
		slot := f.get(c.regs.Read32(f.off))
		cfg.Func = d.Funcs[slot]
		if cfg.Func == FuncDefault {
			cfg.Func = rsvdFuncs[slot]
		}
	}
	if f, ok := c.layout.pullField(pg, d); ok {
		cfg.Pull = Pull(f.get(c.regs.Read32(f.off)))
	}
	f := c.layout.triField(pg)
	cfg.Tristate = Tristate(f.get(c.regs.Read32(f.off)))
	if !c.feat.Has(FeatureIOBits) {
		return cfg, nil
	}
	w := c.regs.Read32(c.layout.pinReg(pg))
	bit := func(shift uint32) uint8 { return uint8(w>>shift&1) + 1 }
	cfg.IO = PinIO(bit(ioShift))
	cfg.OD = OpenDrain(bit(odShift))
	cfg.Lock = Lock(bit(lockShift))
	cfg.IOReset = IOReset(bit(ioResetShift))
	if c.feat.Has(FeatureRcvSel) {
		cfg.RcvSel = RcvSel(bit(rcvSelShift))
	}
	return cfg, nil
}
