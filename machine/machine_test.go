package machine

import (
	"testing"

	"github.com/bdwalton/apple2emu/cpu"
	"github.com/bdwalton/apple2emu/memmap"
)

func romWithReset(pc uint16) []byte {
	rom := make([]byte, 12*1024) // $D000-$FFFF
	// Reset vector lives at $FFFC/$FFFD -> offset 0x2FFC/0x2FFD in a
	// 12 KiB image based at $D000.
	off := 0xFFFC - 0xD000
	rom[off] = uint8(pc)
	rom[off+1] = uint8(pc >> 8)
	return rom
}

func TestResetLoadsPCFromVector(t *testing.T) {
	m := New(cpu.NMOS)
	if err := m.LoadROM(romWithReset(0xD000)); err != nil {
		t.Fatal(err)
	}
	m.Reset()
	if m.CPU.PC != 0xD000 {
		t.Errorf("PC after reset = 0x%04x, want 0xd000", m.CPU.PC)
	}
}

func TestSoftSwitchInterceptBypassesMemoryMap(t *testing.T) {
	m := New(cpu.NMOS)
	m.Write(0xC001, 0) // 80STORE on
	if !m.Mem.StateOn(memmap.Store80) {
		t.Errorf("expected Store80 to be set via the soft switch path")
	}
}

func TestStepAdvancesCycleCount(t *testing.T) {
	m := New(cpu.NMOS)
	m.LoadROM(romWithReset(0xD000))
	m.Reset()
	if _, err := m.Step(); err != nil {
		t.Fatal(err)
	}
	if m.Cycles() == 0 {
		t.Errorf("expected cycle count to advance after Step")
	}
}

func TestSpeakerRingFillsSilenceWhenEmpty(t *testing.T) {
	r := NewSpeakerSampleRing(8)
	out := make([]int8, 4)
	n := r.Read(out)
	if n != 0 {
		t.Errorf("expected 0 real samples from an empty ring, got %d", n)
	}
	for _, v := range out {
		if v != -128 {
			t.Errorf("expected SCHAR_MIN silence padding, got %d", v)
		}
	}
}

func TestDiskAttachedInSlot6(t *testing.T) {
	m := New(cpu.NMOS)
	if m.Disk == nil {
		t.Fatal("expected a disk controller to be wired")
	}
	// Drive-select register for slot 6 lives at $C0E0 + 0xB.
	m.Read(0xC0EB)
}
