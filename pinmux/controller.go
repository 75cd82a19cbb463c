// Package pinmux configures pin multiplexing and pad drive groups on NVIDIA
// Tegra SoCs.
//
// A Controller pairs a SoC descriptor (see the soc/... packages) with a
// register window (pinmux/mmio, pinmux/baremetal or pinmux/sim). Each setter
// performs one read-modify-write of one field; the table functions apply a
// board's configuration records in order.
//
// A Controller is not safe for concurrent use. It is meant for the single
// boot/bring-up context that owns the pinmux block.
package pinmux

import (
	"io"

	"golang.org/x/exp/slog"
	"periph.io/x/conn/v3/pin"

	"tegra-pinmux/errcode"
	"tegra-pinmux/x/conv"
)

// Controller applies pinmux and pad-control settings for one SoC.
type Controller struct {
	soc    SoC
	feat   Features
	layout Layout
	groups []PinGroupDesc
	drives []string
	regs   Regs
	log    *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for register writes (debug) and refused
// operations (warn).
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a Controller for soc backed by regs.
func New(soc SoC, regs Regs, opts ...Option) *Controller {
	c := &Controller{
		soc:    soc,
		feat:   soc.Features(),
		layout: soc.Layout(),
		groups: soc.PinGroups(),
		drives: soc.DriveGroups(),
		regs:   regs,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SoC returns the descriptor the controller was built for.
func (c *Controller) SoC() SoC { return c.soc }

func (c *Controller) group(op string, pg PinGroup) (*PinGroupDesc, error) {
	if int(pg) >= len(c.groups) {
		return nil, errcode.New(errcode.InvalidPinGroup, op, conv.Itoa(int(pg)))
	}
	return &c.groups[pg], nil
}

func (c *Controller) needs(op string, f Features) error {
	if !c.feat.Has(f) {
		return errcode.New(errcode.Unsupported, op, c.soc.Name())
	}
	return nil
}

// update writes v into f. Registers carrying a set lock bit are write
// protected by hardware; a change to one is refused rather than dropped.
func (c *Controller) update(op string, f field, v uint32, lockable bool) error {
	mask, val := f.bits(v)
	old := c.regs.Read32(f.off)
	nv := old&^mask | val
	if lockable && c.feat.Has(FeatureIOBits) && old&(1<<lockShift) != 0 {
		if nv == old {
			return nil
		}
		c.log.Warn("pinmux register locked", "op", op, "reg", conv.Hex32(f.off))
		return errcode.New(errcode.Locked, op, conv.Hex32(f.off))
	}
	c.regs.Write32(f.off, nv)
	c.log.Debug("pinmux write", "op", op, "reg", conv.Hex32(f.off), "old", conv.Hex32(old), "new", conv.Hex32(nv))
	return nil
}

// SetFunc routes fn to pin group pg. FuncDefault is a no-op.
func (c *Controller) SetFunc(pg PinGroup, fn pin.Func) error {
	const op = "set_func"
	d, err := c.group(op, pg)
	if err != nil || fn == FuncDefault {
		return err
	}
	slot, ok := d.Slot(fn)
	if !ok {
		return errcode.New(errcode.InvalidFunc, op, string(fn)+" on "+d.Name)
	}
	f, ok := c.layout.muxField(pg, d)
	if !ok {
		return errcode.New(errcode.Unsupported, op, d.Name+" has no mux control")
	}
	return c.update(op, f, uint32(slot), true)
}

// SetPullUpDown sets the pull state of pin group pg.
func (c *Controller) SetPullUpDown(pg PinGroup, p Pull) error {
	const op = "set_pullupdown"
	d, err := c.group(op, pg)
	if err != nil {
		return err
	}
	if p > PullUp {
		return errcode.New(errcode.InvalidParams, op, conv.Itoa(int(p)))
	}
	f, ok := c.layout.pullField(pg, d)
	if !ok {
		return errcode.New(errcode.Unsupported, op, d.Name+" has no pull control")
	}
	return c.update(op, f, uint32(p), true)
}

// SetTristate sets the tristate state of pin group pg.
func (c *Controller) SetTristate(pg PinGroup, t Tristate) error {
	const op = "set_tristate"
	if _, err := c.group(op, pg); err != nil {
		return err
	}
	if t > TriTristate {
		return errcode.New(errcode.InvalidParams, op, conv.Itoa(int(t)))
	}
	return c.update(op, c.layout.triField(pg), uint32(t), true)
}

// TristateEnable tristates pin group pg.
func (c *Controller) TristateEnable(pg PinGroup) error { return c.SetTristate(pg, TriTristate) }

// TristateDisable puts pin group pg in normal (driven) operation.
func (c *Controller) TristateDisable(pg PinGroup) error { return c.SetTristate(pg, TriNormal) }

// SetIO selects input or output for pg. IONone is a no-op.
// Requires FeatureIOBits.
func (c *Controller) SetIO(pg PinGroup, io PinIO) error {
	const op = "set_io"
	if _, err := c.group(op, pg); err != nil || io == IONone {
		return err
	}
	if io > IOInput {
		return errcode.New(errcode.InvalidParams, op, conv.Itoa(int(io)))
	}
	if err := c.needs(op, FeatureIOBits); err != nil {
		return err
	}
	var v uint32
	if io == IOInput {
		v = 1
	}
	return c.update(op, c.layout.bitField(pg, ioShift), v, true)
}

// SetLock sets or clears the lock bit of pg. Once set, the bit can only be
// cleared by a chip reset; LockDisable on a locked group fails with
// errcode.Locked. Requires FeatureIOBits.
func (c *Controller) SetLock(pg PinGroup, l Lock) error {
	const op = "set_lock"
	if _, err := c.group(op, pg); err != nil || l == LockDefault {
		return err
	}
	if l > LockEnable {
		return errcode.New(errcode.InvalidParams, op, conv.Itoa(int(l)))
	}
	if err := c.needs(op, FeatureIOBits); err != nil {
		return err
	}
	return c.update(op, c.layout.bitField(pg, lockShift), uint32(l-1), true)
}

// SetOpenDrain selects open-drain or push-pull for pg. Requires FeatureIOBits.
func (c *Controller) SetOpenDrain(pg PinGroup, od OpenDrain) error {
	return c.setBit("set_od", pg, uint8(od), odShift, FeatureIOBits)
}

// SetIOReset sets or clears the io-reset bit of pg. Requires FeatureIOBits.
func (c *Controller) SetIOReset(pg PinGroup, r IOReset) error {
	return c.setBit("set_ioreset", pg, uint8(r), ioResetShift, FeatureIOBits)
}

// SetRcvSel selects the high or normal VIL/VIH receiver of pg. Requires
// FeatureRcvSel.
func (c *Controller) SetRcvSel(pg PinGroup, r RcvSel) error {
	return c.setBit("set_rcv_sel", pg, uint8(r), rcvSelShift, FeatureRcvSel)
}

// setBit handles the default/disable/enable shaped controls.
func (c *Controller) setBit(op string, pg PinGroup, v uint8, shift uint32, need Features) error {
	if _, err := c.group(op, pg); err != nil || v == 0 {
		return err
	}
	if v > 2 {
		return errcode.New(errcode.InvalidParams, op, conv.Itoa(int(v)))
	}
	if err := c.needs(op, need); err != nil {
		return err
	}
	return c.update(op, c.layout.bitField(pg, shift), uint32(v-1), true)
}
