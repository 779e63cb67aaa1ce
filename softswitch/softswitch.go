// Package softswitch implements the $C000-$C0FF dispatch table: 256
// handler slots, each a function of {address, value, is_write} that
// returns a byte. Unregistered slots fall back to the floating bus on
// read and silently ignore writes.
package softswitch

import "github.com/bdwalton/apple2emu/memmap"

// Handler is one soft-switch slot's behavior.
type Handler func(addr uint16, val uint8, isWrite bool) uint8

// DriveController is the per-slot interface a Disk ][ controller
// implements so softswitch can dispatch $C0n0-$C0nF drive I/O to it
// without depending on the disk package directly.
type DriveController interface {
	Access(reg uint8, isWrite bool, dataIn uint8) uint8
}

// Table is the machine's soft-switch dispatch table plus the handler
// state (keyboard latch, video mode bits, paddle timers, language
// card bank state, speaker line) that doesn't belong to the paged
// memory map itself.
type Table struct {
	handlers map[uint16]Handler // keyed by $C000-$C0FF address
	mem      *memmap.Memory

	keyLatch  uint8 // last key pressed, bit 7 set, strobe bit in bit 7 of the *read*
	strobed   bool

	text, mixed, altchar, eightyCol bool
	speakerLine                     bool

	buttons [3]bool
	paddle  [4]paddleTimer
	cycles  func() uint64 // current cpu cycle counter, supplied by the machine

	lc langCardState
}

type paddleTimer struct {
	decay    uint64 // cycles until the RC decay line drops, set via SetPaddle
	deadline uint64
	armed    bool
}

// New returns a Table wired to mem. cycles reports the machine's
// current cumulative CPU cycle count and is used to arm and test the
// paddle strobe deadline ($70/$64-$67).
func New(mem *memmap.Memory, cycles func() uint64) *Table {
	t := &Table{mem: mem, cycles: cycles, handlers: make(map[uint16]Handler, 256)}
	t.registerMemoryModes()
	t.registerVideoModes()
	t.registerKeyboard()
	t.registerStatusReads()
	t.registerSpeaker()
	t.registerPaddles()
	t.registerLanguageCard()
	return t
}

// Dispatch routes one $C000-$C0FF access through the handler table,
// falling back to the floating bus for unregistered slots.
func (t *Table) Dispatch(addr uint16, val uint8, isWrite bool) uint8 {
	h := t.handlers[0xC000|addr&0xFF]
	if h == nil {
		return t.mem.ReadFloatingBus()
	}
	return h(addr, val, isWrite)
}

// AttachDrive registers a Disk ][ controller's 16-byte I/O block in
// slot (1..7): base address $C080 + slot*0x10.
func (t *Table) AttachDrive(slot uint8, d DriveController) {
	base := uint16(0xC080) + uint16(slot)*0x10
	for reg := uint16(0); reg < 16; reg++ {
		reg := reg
		t.handlers[base+reg] = func(addr uint16, val uint8, isWrite bool) uint8 {
			return d.Access(uint8(reg), isWrite, val)
		}
	}
}

// KeyDown delivers a key press to the keyboard latch; val should carry
// the high bit set, as the real keyboard ROM would.
func (t *Table) KeyDown(val uint8) {
	t.keyLatch = val | 0x80
	t.strobed = false
}

// SpeakerLine reports the current state of the speaker toggle line, so
// a host can drive its own audio ring buffer from it (spec.md section 5).
func (t *Table) SpeakerLine() bool { return t.speakerLine }
