package softswitch

import "github.com/bdwalton/apple2emu/memmap"

// registerMemoryModes wires $C000-$C00B: six off/on pairs that each
// write one memmap.StateBit. Reading any of them returns the keyboard
// byte rather than the switch's own state (real hardware's soft
// switches are write-only; $C000-$C00B moonlight as keyboard mirrors).
func (t *Table) registerMemoryModes() {
	pairs := []struct {
		bit         memmap.StateBit
		evenSetsOff bool // true: $Cn = off, $Cn+1 = on. false: $Cn = on, $Cn+1 = off.
	}{
		{memmap.Store80, true},
		{memmap.AuxRead, true},
		{memmap.AuxWrite, true},
		{memmap.SlotCxROM, false},
		{memmap.AltZP, true},
		{memmap.SlotC3ROM, true},
	}
	for i, p := range pairs {
		bit := p.bit
		evenVal := !p.evenSetsOff
		base := uint16(0xC000 + i*2)
		t.handlers[base] = t.memModeHandler(bit, evenVal)
		t.handlers[base+1] = t.memModeHandler(bit, !evenVal)
	}
}

func (t *Table) memModeHandler(bit memmap.StateBit, setOn bool) Handler {
	return func(addr uint16, val uint8, isWrite bool) uint8 {
		if isWrite {
			t.mem.SetState(bit, setOn)
		}
		return t.readKeyboard(false)
	}
}

// registerVideoModes wires $C00C-$C00F: 80COL and ALTCHAR toggles.
func (t *Table) registerVideoModes() {
	t.handlers[0xC00C] = func(addr uint16, val uint8, isWrite bool) uint8 {
		t.eightyCol = false
		return t.mem.ReadFloatingBus()
	}
	t.handlers[0xC00D] = func(addr uint16, val uint8, isWrite bool) uint8 {
		t.eightyCol = true
		return t.mem.ReadFloatingBus()
	}
	t.handlers[0xC00E] = func(addr uint16, val uint8, isWrite bool) uint8 {
		t.altchar = false
		return t.mem.ReadFloatingBus()
	}
	t.handlers[0xC00F] = func(addr uint16, val uint8, isWrite bool) uint8 {
		t.altchar = true
		return t.mem.ReadFloatingBus()
	}

	// $C050-$C057: TEXT/GRAPHICS, MIXED, PAGE1/PAGE2, LORES/HIRES.
	t.handlers[0xC050] = func(addr uint16, val uint8, isWrite bool) uint8 { t.text = false; return t.mem.ReadFloatingBus() }
	t.handlers[0xC051] = func(addr uint16, val uint8, isWrite bool) uint8 { t.text = true; return t.mem.ReadFloatingBus() }
	t.handlers[0xC052] = func(addr uint16, val uint8, isWrite bool) uint8 { t.mixed = false; return t.mem.ReadFloatingBus() }
	t.handlers[0xC053] = func(addr uint16, val uint8, isWrite bool) uint8 { t.mixed = true; return t.mem.ReadFloatingBus() }
	t.handlers[0xC054] = func(addr uint16, val uint8, isWrite bool) uint8 { t.mem.SetPage2(false); return t.mem.ReadFloatingBus() }
	t.handlers[0xC055] = func(addr uint16, val uint8, isWrite bool) uint8 { t.mem.SetPage2(true); return t.mem.ReadFloatingBus() }
	t.handlers[0xC056] = func(addr uint16, val uint8, isWrite bool) uint8 { t.mem.SetHires(false); return t.mem.ReadFloatingBus() }
	t.handlers[0xC057] = func(addr uint16, val uint8, isWrite bool) uint8 { t.mem.SetHires(true); return t.mem.ReadFloatingBus() }
}

// registerKeyboard wires $C010: any access clears the keyboard strobe.
func (t *Table) registerKeyboard() {
	t.handlers[0xC010] = func(addr uint16, val uint8, isWrite bool) uint8 {
		return t.readKeyboard(true)
	}
}

func (t *Table) readKeyboard(clearStrobe bool) uint8 {
	v := t.keyLatch
	if t.strobed {
		v &^= 0x80
	}
	if clearStrobe {
		t.strobed = true
	}
	return v
}

// registerStatusReads wires $C011-$C01F: bit 7 carries the named flag,
// the rest of the byte is the floating bus.
func (t *Table) registerStatusReads() {
	flags := []struct {
		addr uint16
		test func() bool
	}{
		{0xC011, func() bool { return t.mem.StateOn(memmap.LCBank2) }},
		{0xC012, func() bool { return t.mem.StateOn(memmap.LCRead) }},
		{0xC013, func() bool { return t.mem.StateOn(memmap.AuxRead) }},
		{0xC014, func() bool { return t.mem.StateOn(memmap.AuxWrite) }},
		{0xC015, func() bool { return t.mem.StateOn(memmap.SlotCxROM) }},
		{0xC016, func() bool { return t.mem.StateOn(memmap.AltZP) }},
		{0xC017, func() bool { return t.mem.StateOn(memmap.SlotC3ROM) }},
		{0xC018, func() bool { return t.mem.StateOn(memmap.Store80) }},
		{0xC019, func() bool { return t.text }},
		{0xC01A, func() bool { return t.mixed }},
		{0xC01B, func() bool { return t.mem.Page2() }},
		{0xC01C, func() bool { return t.mem.Hires() }},
		{0xC01D, func() bool { return t.altchar }},
		{0xC01E, func() bool { return t.eightyCol }},
	}
	for _, f := range flags {
		f := f
		t.handlers[f.addr] = func(addr uint16, val uint8, isWrite bool) uint8 {
			bus := t.mem.ReadFloatingBus() & 0x7F
			if f.test() {
				bus |= 0x80
			}
			return bus
		}
	}
}

// registerSpeaker wires $C030: any access toggles the speaker line.
func (t *Table) registerSpeaker() {
	t.handlers[0xC030] = func(addr uint16, val uint8, isWrite bool) uint8 {
		t.speakerLine = !t.speakerLine
		return t.mem.ReadFloatingBus()
	}
}

// registerPaddles wires $C061-$C067 (button/axis reads) and $C070 (the
// paddle strobe that arms each axis's RC-decay deadline).
func (t *Table) registerPaddles() {
	for i := 0; i < 3; i++ {
		i := i
		t.handlers[0xC061+uint16(i)] = func(addr uint16, val uint8, isWrite bool) uint8 {
			bus := t.mem.ReadFloatingBus() & 0x7F
			if t.buttons[i] {
				bus |= 0x80
			}
			return bus
		}
	}
	for i := 0; i < 4; i++ {
		i := i
		t.handlers[0xC064+uint16(i)] = func(addr uint16, val uint8, isWrite bool) uint8 {
			bus := t.mem.ReadFloatingBus() & 0x7F
			p := &t.paddle[i]
			if p.armed && t.cycles() >= p.deadline {
				p.armed = false
			}
			if p.armed {
				bus |= 0x80
			}
			return bus
		}
	}
	t.handlers[0xC070] = func(addr uint16, val uint8, isWrite bool) uint8 {
		now := t.cycles()
		for i := range t.paddle {
			t.paddle[i].armed = true
			t.paddle[i].deadline = now + t.paddle[i].decay
		}
		return t.mem.ReadFloatingBus()
	}
}

// SetPaddle sets a paddle axis's RC decay time in CPU cycles (0-2550,
// roughly linear in the 0-255 analog position), taking effect on the
// next $C070 strobe.
func (t *Table) SetPaddle(axis int, cycles uint64) {
	if axis < 0 || axis >= len(t.paddle) {
		return
	}
	t.paddle[axis].decay = cycles
}

// SetButton sets one of the three paddle button states (0-2).
func (t *Table) SetButton(n int, down bool) {
	if n < 0 || n >= len(t.buttons) {
		return
	}
	t.buttons[n] = down
}
