// Command pinmux applies Tegra pinmux and pad-control tables.
//
// With no arguments it applies the board selected at build time. A board can
// be named with -board, and a JSON table (-config) or a built-in overlay
// (-overlay) is applied after the board. -dry-run runs against a simulated
// register file and prints every write.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"

	"tegra-pinmux/boards"
	"tegra-pinmux/config"
	"tegra-pinmux/errcode"
	"tegra-pinmux/pinmux"
	"tegra-pinmux/pinmux/mmio"
	"tegra-pinmux/pinmux/sim"
	"tegra-pinmux/soc/detect"
	"tegra-pinmux/types"

	_ "tegra-pinmux/soc/tegra124"
	_ "tegra-pinmux/soc/tegra20"
	_ "tegra-pinmux/soc/tegra30"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "pinmux:", err)
		}
		os.Exit(1)
	}
}

type options struct {
	soc     string
	board   string
	config  string
	overlay string
	base    uint64
	dryRun  bool
	dump    bool
	list    bool
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var o options
	fs := flag.NewFlagSet("pinmux", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.soc, "soc", "", "SoC name or compatible (default: board, config, then device tree)")
	fs.StringVar(&o.board, "board", "", "board table to apply (default: build-time selection)")
	fs.StringVar(&o.config, "config", "", "JSON pinmux table to apply after the board")
	fs.StringVar(&o.overlay, "overlay", "", "built-in JSON overlay to apply after the board")
	fs.Uint64Var(&o.base, "base", pinmux.DefaultAPBMiscBase, "APB_MISC physical base address")
	fs.BoolVar(&o.dryRun, "dry-run", false, "write to a simulated register file and print the writes")
	fs.BoolVar(&o.dump, "dump", false, "print the resulting pinmux state as a JSON table")
	fs.BoolVar(&o.list, "list", false, "list known SoCs, boards and overlays")
	fs.BoolVar(&o.verbose, "v", false, "log every register write")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, errcode.New(errcode.InvalidParams, "flags", "unexpected argument "+fs.Arg(0))
	}
	return &o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if o.list {
		return list(stdout)
	}

	board := boards.Selected
	if o.board != "" {
		if board = boards.Find(o.board); board == nil {
			return errcode.New(errcode.UnknownBoard, "pinmux", o.board)
		}
	}
	var docs []*types.PinmuxConfig
	if o.config != "" {
		doc, err := readConfig(o.config)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	if o.overlay != "" {
		raw, ok := config.EmbeddedConfigLookup(o.overlay)
		if !ok {
			return errcode.New(errcode.UnknownBoard, "pinmux", "overlay "+o.overlay)
		}
		doc, err := config.Parse(bytes.NewReader(raw))
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	if board == nil && len(docs) == 0 && !o.dump {
		return errcode.New(errcode.InvalidParams, "pinmux", "nothing to apply: no board selected at build time, use -board, -config or -overlay")
	}

	soc, err := pickSoC(o.soc, board, docs)
	if err != nil {
		return err
	}
	log.Info("pinmux", "soc", soc.Name(), "base", fmt.Sprintf("%#x", o.base), "dry_run", o.dryRun)

	var regs pinmux.Regs
	var simRegs *sim.Regs
	if o.dryRun {
		simRegs = sim.New()
		regs = simRegs
	} else {
		m, err := mmio.Map(o.base, int(soc.Layout().Size))
		if err != nil {
			return err
		}
		defer m.Close()
		regs = m
	}
	c := pinmux.New(soc, regs, pinmux.WithLogger(log))

	if board != nil {
		if err := board.Apply(c); err != nil {
			return fmt.Errorf("board %s: %w", board.Name, err)
		}
		log.Info("board applied", "board", board.Name)
	}
	for _, doc := range docs {
		tab, err := config.Resolve(doc, soc)
		if err != nil {
			return err
		}
		if err := tab.Apply(c); err != nil {
			return err
		}
		log.Info("table applied", "pingroups", len(tab.PinGroups), "drivegroups", len(tab.DriveGroups))
	}

	if simRegs != nil && !o.dump {
		for _, w := range simRegs.Journal() {
			fmt.Fprintf(stdout, "0x%08x: 0x%08x -> 0x%08x\n", o.base+uint64(w.Off), w.Old, w.New)
		}
	}
	if o.dump {
		return dump(stdout, c)
	}
	return nil
}

func readConfig(path string) (*types.PinmuxConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return config.Parse(f)
}

// pickSoC resolves the chip from -soc, then the board, then the tables, and
// finally the running system's device tree.
func pickSoC(name string, board *boards.Board, docs []*types.PinmuxConfig) (pinmux.SoC, error) {
	if name == "" && board != nil {
		name = board.SoC
	}
	for _, d := range docs {
		if name == "" {
			name = d.SoC
		}
	}
	if name == "" {
		return detect.Probe()
	}
	s := pinmux.FindSoC(name)
	if s == nil {
		return nil, errcode.New(errcode.UnknownSoC, "pinmux", name)
	}
	return s, nil
}

func dump(w io.Writer, c *pinmux.Controller) error {
	soc := c.SoC()
	var pins []pinmux.PinGroupConfig
	for i := range soc.PinGroups() {
		st, err := c.PinGroupState(pinmux.PinGroup(i))
		if err != nil {
			return err
		}
		pins = append(pins, st)
	}
	var drives []pinmux.DriveGroupConfig
	if soc.Features().Has(pinmux.FeatureDriveGroups) {
		for i := range soc.DriveGroups() {
			st, err := c.DriveGroupState(pinmux.DriveGroup(i))
			if err != nil {
				return err
			}
			drives = append(drives, st)
		}
	}
	doc, err := config.Document(soc, pins, drives)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func list(w io.Writer) error {
	fmt.Fprintln(w, "socs:")
	for _, n := range pinmux.SoCs() {
		s := pinmux.FindSoC(n)
		fmt.Fprintf(w, "  %-10s %-18s %d pin groups, %d drive groups\n", n, s.Compatible(), len(s.PinGroups()), len(s.DriveGroups()))
	}
	fmt.Fprintln(w, "boards:")
	for _, n := range boards.Names() {
		b := boards.Find(n)
		mark := ""
		if b == boards.Selected {
			mark = " (selected)"
		}
		fmt.Fprintf(w, "  %-10s %s%s\n", n, b.SoC, mark)
	}
	fmt.Fprintln(w, "overlays:")
	names := config.EmbeddedNames()
	slices.Sort(names)
	for _, n := range names {
		fmt.Fprintf(w, "  %s\n", n)
	}
	return nil
}
