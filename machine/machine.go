// Package machine aggregates the CPU, memory map, soft-switch table
// and disk controller into one runnable Apple ][-class system. It is
// the single component the spec's design notes call for in place of
// the original's scattered global singletons: cpu, memmap, softswitch
// and disk are all plain values owned here, not package-level state.
package machine

import (
	"github.com/bdwalton/apple2emu/cpu"
	"github.com/bdwalton/apple2emu/disk"
	"github.com/bdwalton/apple2emu/diskimage"
	"github.com/bdwalton/apple2emu/memmap"
	"github.com/bdwalton/apple2emu/softswitch"
)

// CyclesPerFrame is the host's frame budget: 262 scanlines of 65 CPU
// cycles each, the standard NTSC Apple ][ video timing.
const CyclesPerFrame = 262 * 65

// speakerSampleInterval is the CPU cycle spacing between speaker
// ring-buffer samples: 44100 Hz sampling against ~1.023 MHz CPU clock.
const speakerSampleInterval = 23

// SpeakerSampleRing is a fixed-capacity, single-producer/single-consumer
// ring buffer of signed 8-bit speaker samples. The CPU loop is the sole
// producer and never blocks; a host audio callback is the sole
// consumer and fills any shortfall with silence. Per spec.md's
// concurrency model this needs no locks: producer and consumer each
// own their own index.
type SpeakerSampleRing struct {
	buf        []int8
	writeIndex int
	readIndex  int
}

// NewSpeakerSampleRing returns a ring buffer of the given sample capacity.
func NewSpeakerSampleRing(capacity int) *SpeakerSampleRing {
	return &SpeakerSampleRing{buf: make([]int8, capacity)}
}

func (r *SpeakerSampleRing) push(v int8) {
	r.buf[r.writeIndex%len(r.buf)] = v
	r.writeIndex++
}

// Read fills out with up to len(out) pending samples, padding any
// shortfall with silence, and reports how many were real samples.
func (r *SpeakerSampleRing) Read(out []int8) int {
	n := 0
	for n < len(out) && r.readIndex < r.writeIndex {
		out[n] = r.buf[r.readIndex%len(r.buf)]
		r.readIndex++
		n++
	}
	for i := n; i < len(out); i++ {
		out[i] = -128 // SCHAR_MIN: spec.md's silence-padding value
	}
	return n
}

// Machine is a complete ][/][+/][e-class system: CPU, paged memory,
// soft switches and an optional Disk ][ controller in slot 6.
type Machine struct {
	CPU    *cpu.CPU
	Mem    *memmap.Memory
	Switch *softswitch.Table
	Disk   *disk.Controller

	cycles       uint64
	speakerAccum int
	Speaker      *SpeakerSampleRing

	stopRequested bool
}

// New returns a Machine with its memory map, soft-switch table and a
// Disk ][ controller attached in slot 6 (the conventional slot), all
// wired together. variant selects NMOS (][/][+) or CMOS (][e/Enhanced)
// CPU behavior.
func New(variant cpu.Variant) *Machine {
	m := &Machine{
		Mem:     memmap.New(),
		Disk:    disk.New(),
		Speaker: NewSpeakerSampleRing(4096),
	}
	m.Switch = softswitch.New(m.Mem, func() uint64 { return m.cycles })
	m.Switch.AttachDrive(6, m.Disk)
	m.CPU = cpu.New(m, variant)
	return m
}

// Read implements cpu.Bus: $C000-$C0FF is intercepted to the soft
// switch table, everything else goes to the paged memory map.
func (m *Machine) Read(addr uint16) uint8 {
	if addr >= 0xC000 && addr <= 0xC0FF {
		return m.Switch.Dispatch(addr, 0, false)
	}
	return m.Mem.Read(addr)
}

// ReadInstruction implements cpu.InstructionFetcher: it is Read's
// opcode-fetch counterpart, routing through Mem.ReadInstruction so
// known-code tracking sees every address the CPU actually executes
// from. Soft-switch addresses are never opcode fetches in practice,
// but they're routed the same way Read routes them for consistency.
func (m *Machine) ReadInstruction(addr uint16) uint8 {
	if addr >= 0xC000 && addr <= 0xC0FF {
		return m.Switch.Dispatch(addr, 0, false)
	}
	return m.Mem.ReadInstruction(addr)
}

// Write implements cpu.Bus, mirroring Read's interception.
func (m *Machine) Write(addr uint16, val uint8) {
	if addr >= 0xC000 && addr <= 0xC0FF {
		m.Switch.Dispatch(addr, val, true)
		return
	}
	m.Mem.Write(addr, val)
}

// LoadROM installs the system ROM (12 KiB ][/][+ or 16 KiB ][e/Enhanced).
func (m *Machine) LoadROM(data []byte) error { return m.Mem.LoadROM(data) }

// MountDisk loads img from disk and inserts it into drive (0 or 1) of
// the slot-6 controller.
func (m *Machine) MountDisk(drive int, path string) error {
	img, err := diskimage.LoadFile(path)
	if err != nil {
		return err
	}
	return m.Disk.InsertDisk(drive, img)
}

// Reset pulses the CPU's reset line, loading PC from the reset vector.
func (m *Machine) Reset() { m.CPU.Reset() }

// Stop requests that RunFrame return at the next step boundary.
func (m *Machine) Stop() { m.stopRequested = true }

// Step executes exactly one CPU instruction and returns the cycles it
// took, driving the speaker sampler forward by that many cycles.
func (m *Machine) Step() (int, error) {
	cycles, err := m.CPU.Step()
	m.cycles += uint64(cycles)
	m.advanceSpeaker(cycles)
	return cycles, err
}

// RunFrame steps the machine until it has executed at least one
// frame's worth of cycles (CyclesPerFrame), returning early if a stop
// was requested or the CPU reports an error.
func (m *Machine) RunFrame() error {
	budget := 0
	for budget < CyclesPerFrame {
		if m.stopRequested {
			return nil
		}
		cycles, err := m.Step()
		if err != nil {
			return err
		}
		budget += cycles
	}
	return nil
}

func (m *Machine) advanceSpeaker(cycles int) {
	m.speakerAccum += cycles
	for m.speakerAccum >= speakerSampleInterval {
		m.speakerAccum -= speakerSampleInterval
		var v int8
		if m.Switch.SpeakerLine() {
			v = 127
		} else {
			v = -127
		}
		m.Speaker.push(v)
	}
}

// Cycles reports the machine's cumulative CPU cycle count since reset.
func (m *Machine) Cycles() uint64 { return m.cycles }
