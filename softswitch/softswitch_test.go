package softswitch

import (
	"testing"

	"github.com/bdwalton/apple2emu/memmap"
)

func newTestTable() (*Table, *memmap.Memory) {
	mem := memmap.New()
	var cycle uint64
	tbl := New(mem, func() uint64 { return cycle })
	return tbl, mem
}

func TestEightyStoreToggle(t *testing.T) {
	tbl, mem := newTestTable()
	tbl.Dispatch(0xC001, 0, true)
	if !mem.StateOn(memmap.Store80) {
		t.Errorf("expected Store80 on after $c001 write")
	}
	tbl.Dispatch(0xC000, 0, true)
	if mem.StateOn(memmap.Store80) {
		t.Errorf("expected Store80 off after $c000 write")
	}
}

func TestSlotCxROMPolarity(t *testing.T) {
	tbl, mem := newTestTable()
	// $C006 is documented "on" for SLOTCXROM, $C007 "off" -- reversed
	// from the other five pairs.
	tbl.Dispatch(0xC006, 0, true)
	if !mem.StateOn(memmap.SlotCxROM) {
		t.Errorf("expected SlotCxROM on after $c006 write")
	}
	tbl.Dispatch(0xC007, 0, true)
	if mem.StateOn(memmap.SlotCxROM) {
		t.Errorf("expected SlotCxROM off after $c007 write")
	}
}

func TestKeyboardLatchAndStrobe(t *testing.T) {
	tbl, _ := newTestTable()
	tbl.KeyDown('A')
	v := tbl.Dispatch(0xC000, 0, false)
	if v&0x7F != 'A' || v&0x80 == 0 {
		t.Errorf("keyboard read = 0x%02x, want 'A' with bit 7 set", v)
	}
	v = tbl.Dispatch(0xC010, 0, false)
	if v&0x80 == 0 {
		t.Errorf("strobe-clear read should still report the pending key once")
	}
	v = tbl.Dispatch(0xC000, 0, false)
	if v&0x80 != 0 {
		t.Errorf("key bit should be clear after strobe was cleared")
	}
}

func TestStatusReadReflectsState(t *testing.T) {
	tbl, mem := newTestTable()
	mem.SetState(memmap.AltZP, true)
	v := tbl.Dispatch(0xC016, 0, false)
	if v&0x80 == 0 {
		t.Errorf("ALTZP status bit should be set")
	}
}

func TestSpeakerToggles(t *testing.T) {
	tbl, _ := newTestTable()
	if tbl.SpeakerLine() {
		t.Fatal("speaker should start low")
	}
	tbl.Dispatch(0xC030, 0, false)
	if !tbl.SpeakerLine() {
		t.Errorf("speaker line should flip on any access")
	}
}

func TestVideoModeSwitchesDrivePaging(t *testing.T) {
	tbl, mem := newTestTable()
	tbl.Dispatch(0xC055, 0, true) // PAGE2 on
	if !mem.Page2() {
		t.Errorf("expected Page2 on after $c055")
	}
	tbl.Dispatch(0xC057, 0, true) // HIRES on
	if !mem.Hires() {
		t.Errorf("expected Hires on after $c057")
	}
}

func TestLanguageCardDoubleAccessEnablesWrite(t *testing.T) {
	tbl, mem := newTestTable()
	// $C081: bank2, ROM read, odd (write-enabling) address.
	tbl.Dispatch(0xC081, 0, false)
	if mem.StateOn(memmap.LCWriteProtect) == false {
		t.Errorf("single read should not yet enable writes")
	}
	tbl.Dispatch(0xC081, 0, false)
	if mem.StateOn(memmap.LCWriteProtect) {
		t.Errorf("second consecutive read to $c081 should enable writes")
	}
}

func TestLanguageCardWriteAlwaysProtects(t *testing.T) {
	tbl, mem := newTestTable()
	tbl.Dispatch(0xC081, 0, false)
	tbl.Dispatch(0xC081, 0, false) // writes now enabled
	tbl.Dispatch(0xC081, 0, true)  // any write access re-protects
	if !mem.StateOn(memmap.LCWriteProtect) {
		t.Errorf("a write access should leave the card write-protected")
	}
}

func TestLanguageCardBankAndReadDecode(t *testing.T) {
	tbl, mem := newTestTable()
	// $C08B: bit3 set (bank1), bit1 set (read RAM).
	tbl.Dispatch(0xC08B, 0, false)
	if mem.StateOn(memmap.LCBank2) {
		t.Errorf("$c08b should select bank 1, not bank 2")
	}
	if !mem.StateOn(memmap.LCRead) {
		t.Errorf("$c08b should select RAM reads")
	}
	// $C080: bit3 clear (bank2), bit1 clear (read ROM).
	tbl.Dispatch(0xC080, 0, false)
	if !mem.StateOn(memmap.LCBank2) {
		t.Errorf("$c080 should select bank 2")
	}
	if mem.StateOn(memmap.LCRead) {
		t.Errorf("$c080 should select ROM reads")
	}
}

func TestPaddleStrobeArmsDecay(t *testing.T) {
	tbl, _ := newTestTable()
	tbl.SetPaddle(0, 10)
	tbl.Dispatch(0xC070, 0, false)
	v := tbl.Dispatch(0xC064, 0, false)
	if v&0x80 == 0 {
		t.Errorf("paddle 0 should read high immediately after strobe")
	}
}

func TestDriveAttachDispatchesToController(t *testing.T) {
	tbl, _ := newTestTable()
	fc := &fakeController{}
	tbl.AttachDrive(6, fc)
	tbl.Dispatch(0xC0E3, 0x55, true)
	if fc.lastReg != 3 || !fc.lastWrite || fc.lastVal != 0x55 {
		t.Errorf("got reg=%d write=%v val=0x%02x, want reg=3 write=true val=0x55",
			fc.lastReg, fc.lastWrite, fc.lastVal)
	}
}

type fakeController struct {
	lastReg   uint8
	lastWrite bool
	lastVal   uint8
}

func (f *fakeController) Access(reg uint8, isWrite bool, dataIn uint8) uint8 {
	f.lastReg, f.lastWrite, f.lastVal = reg, isWrite, dataIn
	return 0
}
