package memmap

import "testing"

func TestMainRAMReadWrite(t *testing.T) {
	m := New()
	m.Write(0x1000, 0x42)
	if got := m.Read(0x1000); got != 0x42 {
		t.Errorf("Read(0x1000) = 0x%02x, want 0x42", got)
	}
}

func TestAuxReadWriteIndependent(t *testing.T) {
	m := New()
	m.Write(0x1000, 0x11) // lands in main RAM
	m.SetState(AuxWrite, true)
	m.Write(0x1000, 0x22) // now lands in aux RAM
	m.SetState(AuxRead, true)
	if got := m.Read(0x1000); got != 0x22 {
		t.Errorf("aux read = 0x%02x, want 0x22", got)
	}
	m.SetState(AuxRead, false)
	if got := m.Read(0x1000); got != 0x11 {
		t.Errorf("main read = 0x%02x, want 0x11 (unchanged by aux write)", got)
	}
}

func TestWriteProtectedPageDropsWrite(t *testing.T) {
	m := New()
	rom := make([]byte, ROMSize)
	rom[0] = 0xAA
	if err := m.LoadROM(rom); err != nil {
		t.Fatal(err)
	}
	m.Write(0xC000, 0x55) // main ROM is never writable
	if got := m.Read(0xC000); got != 0xAA {
		t.Errorf("ROM byte = 0x%02x, want unchanged 0xaa", got)
	}
}

func TestLanguageCardBankSwitchRoundTrip(t *testing.T) {
	m := New()
	// LC_READ + RAM (not ROM) + write-enabled + bank 1.
	m.SetState(LCRead, true)
	m.SetState(LCWriteProtect, false)
	m.Write(0xD000, 0x77)
	if got := m.Read(0xD000); got != 0x77 {
		t.Errorf("bank1 RAM = 0x%02x, want 0x77", got)
	}

	m.SetState(LCBank2, true)
	if got := m.Read(0xD000); got == 0x77 {
		t.Errorf("bank2 should be a distinct buffer from bank1")
	}

	m.SetState(LCBank2, false)
	if got := m.Read(0xD000); got != 0x77 {
		t.Errorf("switching back to bank1 lost the RAM write: got 0x%02x", got)
	}

	m.SetState(LCWriteProtect, true)
	m.Write(0xD000, 0x66)
	if got := m.Read(0xD000); got != 0x77 {
		t.Errorf("write under write-protect should be ignored, got 0x%02x", got)
	}
}

func TestLanguageCardWritesRAMWhileReadingROM(t *testing.T) {
	m := New()
	// LC_READ off (reads see ROM) + write-enabled: this is the DOS
	// boot mode used to load the card (spec.md §4.4 rows $81/$85/
	// $89/$8D) and must still let the write land in RAM.
	m.SetState(LCRead, false)
	m.SetState(LCWriteProtect, false)
	m.Write(0xD000, 0x77)
	if got := m.Read(0xD000); got == 0x77 {
		t.Errorf("LC_READ off should still read ROM, got the RAM write 0x%02x", got)
	}

	m.SetState(LCRead, true)
	if got := m.Read(0xD000); got != 0x77 {
		t.Errorf("RAM write made while LC_READ was off should be visible once LC_READ is on, got 0x%02x", got)
	}
}

func TestSlotExpansionROMLatch(t *testing.T) {
	m := New()
	rom := make([]byte, SlotROMSize)
	rom[0] = 0x11          // entry page, always visible at $C600
	rom[1*PageSize] = 0x22 // first page of the shared window
	if err := m.LoadExpansionROM(6, rom); err != nil {
		t.Fatal(err)
	}

	if got := m.Read(0xC600); got != 0x11 {
		t.Errorf("slot entry page = 0x%02x, want 0x11", got)
	}
	// Reading anywhere in $C1xx-$C7xx latches that slot's window in.
	if got := m.Read(0xC800); got != 0x22 {
		t.Errorf("latched window byte = 0x%02x, want 0x22", got)
	}
	// $CFFF resets the latch back to internal ROM.
	m.Read(0xCFFF)
	if got := m.Read(0xC800); got == 0x22 {
		t.Errorf("latch should have reset after reading $cfff")
	}
}

func TestEightyStoreAliasesTextPage(t *testing.T) {
	m := New()
	m.Write(0x0400, 0x01)
	m.SetState(Store80, true)
	m.SetPage2(true)
	m.Write(0x0400, 0x02)
	m.SetPage2(false)
	if got := m.Read(0x0400); got != 0x01 {
		t.Errorf("main text page = 0x%02x, want 0x01", got)
	}
	m.SetPage2(true)
	if got := m.Read(0x0400); got != 0x02 {
		t.Errorf("aux text page = 0x%02x, want 0x02", got)
	}
}

func TestReadInstructionTracksKnownCode(t *testing.T) {
	m := New()
	m.Write(0x2000, 0xEA)
	m.ReadInstruction(0x2000)
	if !m.KnownCode(0x2000) {
		t.Errorf("expected 0x2000 to be known code after ReadInstruction")
	}
	m.Write(0x2000, 0x00)
	if m.KnownCode(0x2000) {
		t.Errorf("write should invalidate the known-code cache")
	}
}
