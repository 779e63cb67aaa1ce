package softswitch

import "github.com/bdwalton/apple2emu/memmap"

// langCardState tracks the extra bit the language-card soft switches
// need beyond memmap's state word: write-enable only latches on the
// *second* consecutive read access to a write-enabling address, per
// original_source/src/memory.cpp's lc_access bookkeeping. A single
// read leaves the card write-protected; two in a row (with no write
// or differently-addressed access between them) lift the protection.
type langCardState struct {
	lastAddr  uint16
	lastWrite bool
	primed    bool
}

// registerLanguageCard wires $C080-$C08F (slot 0): bank/read-write
// selection for the 16 KiB language card.
//
// Bit layout of the low nibble, per spec.md's §4.4 state table:
//   bit3 (0x08): 0 = bank 2, 1 = bank 1
//   bit1 (0x02): 0 = read ROM, 1 = read RAM
//   bit0 (0x01): odd addresses are write-enabling (on the 2nd
//                consecutive such access); even addresses always
//                write-protect.
func (t *Table) registerLanguageCard() {
	for i := uint16(0); i < 16; i++ {
		i := i
		t.handlers[0xC080+i] = func(addr uint16, val uint8, isWrite bool) uint8 {
			return t.lcAccess(addr, isWrite)
		}
	}
}

func (t *Table) lcAccess(addr uint16, isWrite bool) uint8 {
	bank1 := addr&0x08 != 0
	readRAM := addr&0x02 != 0

	t.mem.SetState(memmap.LCBank2, !bank1)
	t.mem.SetState(memmap.LCRead, readRAM)

	if isWrite {
		t.lc = langCardState{}
		t.mem.SetState(memmap.LCWriteProtect, true)
		return 0
	}

	writeEnabling := addr&0x01 != 0
	if !writeEnabling {
		t.lc = langCardState{}
		t.mem.SetState(memmap.LCWriteProtect, true)
		return t.mem.ReadFloatingBus()
	}

	if t.lc.primed && t.lc.lastAddr == addr && !t.lc.lastWrite {
		t.mem.SetState(memmap.LCWriteProtect, false)
	} else {
		t.mem.SetState(memmap.LCWriteProtect, true)
		t.lc.primed = true
		t.lc.lastAddr = addr
		t.lc.lastWrite = false
	}
	return t.mem.ReadFloatingBus()
}
