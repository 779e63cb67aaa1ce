package monitor

import "fmt"

func (mon *Monitor) cmdStep(args []string) (bool, error) {
	n := 1
	if len(args) > 0 {
		var err error
		if n, err = parseCount(args[0]); err != nil {
			return false, err
		}
	}
	for i := 0; i < n; i++ {
		if _, err := mon.m.Step(); err != nil {
			return false, err
		}
		if mon.breaks[mon.m.CPU.PC] {
			fmt.Fprintf(mon.out, "breakpoint hit at $%04x\n", mon.m.CPU.PC)
			break
		}
	}
	mon.printRegisters()
	return false, nil
}

func (mon *Monitor) cmdContinue(args []string) (bool, error) {
	for {
		if _, err := mon.m.Step(); err != nil {
			return false, err
		}
		if mon.breaks[mon.m.CPU.PC] {
			fmt.Fprintf(mon.out, "breakpoint hit at $%04x\n", mon.m.CPU.PC)
			mon.printRegisters()
			return false, nil
		}
	}
}

func (mon *Monitor) cmdRegisters(args []string) (bool, error) {
	mon.printRegisters()
	return false, nil
}

func (mon *Monitor) printRegisters() {
	c := mon.m.CPU
	fmt.Fprintf(mon.out, "PC=$%04x A=$%02x X=$%02x Y=$%02x SP=$%02x P=%s\n",
		c.PC, c.A, c.X, c.Y, c.SP, c.String())
}

func (mon *Monitor) cmdExamine(args []string) (bool, error) {
	if len(args) == 0 {
		return false, fmt.Errorf("usage: examine ADDR [COUNT]")
	}
	addr, err := parseHex16(args[0])
	if err != nil {
		return false, err
	}
	count := 1
	if len(args) > 1 {
		if count, err = parseCount(args[1]); err != nil {
			return false, err
		}
	}
	for i := 0; i < count; i++ {
		v := mon.m.Read(addr + uint16(i))
		fmt.Fprintf(mon.out, "$%04x: $%02x\n", addr+uint16(i), v)
	}
	return false, nil
}

func (mon *Monitor) cmdDeposit(args []string) (bool, error) {
	if len(args) != 2 {
		return false, fmt.Errorf("usage: deposit ADDR VALUE")
	}
	addr, err := parseHex16(args[0])
	if err != nil {
		return false, err
	}
	val, err := parseHex8(args[1])
	if err != nil {
		return false, err
	}
	mon.m.Write(addr, val)
	return false, nil
}

func (mon *Monitor) cmdBreak(args []string) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("usage: break ADDR")
	}
	addr, err := parseHex16(args[0])
	if err != nil {
		return false, err
	}
	mon.breaks[addr] = true
	return false, nil
}

func (mon *Monitor) cmdUnbreak(args []string) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("usage: unbreak ADDR")
	}
	addr, err := parseHex16(args[0])
	if err != nil {
		return false, err
	}
	delete(mon.breaks, addr)
	return false, nil
}

func (mon *Monitor) cmdDisk(args []string) (bool, error) {
	for drive := 0; drive < 2; drive++ {
		track, sector := mon.m.Disk.TrackAndSector(drive)
		fmt.Fprintf(mon.out, "drive %d: motor=%v track=%d sector=%d\n",
			drive, mon.m.Disk.MotorOn(drive), track, sector)
	}
	return false, nil
}

func (mon *Monitor) cmdReset(args []string) (bool, error) {
	mon.m.Reset()
	mon.printRegisters()
	return false, nil
}

func (mon *Monitor) cmdQuit(args []string) (bool, error) {
	return true, nil
}

func parseCount(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, fmt.Errorf("bad count %q", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("count must be positive")
	}
	return n, nil
}
