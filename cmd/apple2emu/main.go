// Command apple2emu runs the Apple ][/][+/][e core: it loads a system
// ROM and optional disk image and binary, then drops into the
// interactive monitor. Grounded on rcornwell-S370/main.go's
// getopt-driven flag parsing and slog setup.
package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"github.com/bdwalton/apple2emu/cpu"
	"github.com/bdwalton/apple2emu/internal/emulog"
	"github.com/bdwalton/apple2emu/internal/monitor"
	"github.com/bdwalton/apple2emu/internal/settings"
	"github.com/bdwalton/apple2emu/machine"
)

func main() {
	optROM := getopt.StringLong("rom", 'r', "", "System ROM image (12 KiB ][/][+ or 16 KiB ][e/Enhanced)")
	optDisk := getopt.StringLong("disk", 'd', "", "Disk image to mount in slot 6 drive 1")
	optBinary := getopt.StringLong("binary", 'b', "", "Raw binary to load, ADDR:PATH in hex")
	optPC := getopt.StringLong("pc", 'p', "", "Initial program counter, in hex")
	optLog := getopt.StringLong("log", 'l', "", "Log file (defaults to stderr)")
	optConfig := getopt.StringLong("config", 'c', "", "Settings file")
	optCMOS := getopt.BoolLong("cmos", '6', "Use 65C02 (][e/Enhanced) CPU behavior")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	logOut := os.Stderr
	if *optLog != "" {
		f, err := os.Create(*optLog)
		if err != nil {
			slog.Error("opening log file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := slog.New(emulog.New(logOut, slog.LevelInfo))
	slog.SetDefault(logger)

	if *optConfig != "" {
		if _, err := settings.LoadFile(*optConfig); err != nil {
			logger.Error("loading settings file", "path", *optConfig, "error", err)
			os.Exit(1)
		}
	}

	if *optROM == "" {
		logger.Error("a -r/--rom system ROM image is required")
		os.Exit(1)
	}
	romData, err := os.ReadFile(*optROM)
	if err != nil {
		logger.Error("reading ROM image", "path", *optROM, "error", err)
		os.Exit(1)
	}

	variant := cpu.NMOS
	if *optCMOS {
		variant = cpu.CMOS
	}
	m := machine.New(variant)
	if err := m.LoadROM(romData); err != nil {
		logger.Error("loading ROM image", "error", err)
		os.Exit(1)
	}
	m.Reset()

	if *optDisk != "" {
		if err := m.MountDisk(0, *optDisk); err != nil {
			logger.Error("mounting disk image", "path", *optDisk, "error", err)
			os.Exit(1)
		}
	}

	if *optBinary != "" {
		if err := loadBinary(m, *optBinary); err != nil {
			logger.Error("loading binary", "error", err)
			os.Exit(1)
		}
	}

	if *optPC != "" {
		pc, err := strconv.ParseUint(strings.TrimPrefix(*optPC, "$"), 16, 16)
		if err != nil {
			logger.Error("parsing -p/--pc", "value", *optPC, "error", err)
			os.Exit(1)
		}
		m.CPU.PC = uint16(pc)
	}

	logger.Info("apple2emu started", "rom", *optROM, "variant", variant.String())

	mon := monitor.New(m, os.Stdout)
	if err := mon.Run(); err != nil {
		logger.Error("monitor exited with an error", "error", err)
		os.Exit(1)
	}
}

// loadBinary parses "ADDR:PATH" (ADDR in hex) and deposits the file's
// bytes starting at that address.
func loadBinary(m *machine.Machine, spec string) error {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return &errBadBinarySpec{spec}
	}
	addr, err := strconv.ParseUint(strings.TrimPrefix(parts[0], "$"), 16, 16)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(parts[1])
	if err != nil {
		return err
	}
	for i, b := range data {
		m.Write(uint16(addr)+uint16(i), b)
	}
	return nil
}

type errBadBinarySpec struct{ spec string }

func (e *errBadBinarySpec) Error() string {
	return "apple2emu: -b/--binary wants ADDR:PATH, got " + e.spec
}
