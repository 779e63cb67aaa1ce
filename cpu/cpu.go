// Package cpu implements the MOS Technology 6502 and WDC 65C02
// instruction interpreter: registers, addressing-mode resolution,
// fetch/decode/execute, cycle accounting and BCD arithmetic.
//
// Unlike a member-function-pointer or reflection based dispatch, each
// opcode table entry carries its own exec function directly, so Step
// never needs to look anything up by name: it indexes the table once
// by opcode byte and calls through the stored func value.
package cpu

import (
	"fmt"
	"strings"
)

// Bus is the address space the CPU fetches from and stores to. A
// machine wires its memory map in as the Bus; the CPU never knows
// about pages, soft switches or physical buffers.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// InstructionFetcher is an optional Bus extension: a bus that can
// distinguish an opcode fetch from an ordinary operand/data read, so
// it can track which addresses hold known-executed code (spec.md
// §4.3's known-opcode tracking). Step uses it for the opcode byte
// only; operand bytes are always read via the plain Bus.Read.
type InstructionFetcher interface {
	ReadInstruction(addr uint16) uint8
}

// Variant selects which opcode table and instruction-set quirks apply.
type Variant uint8

const (
	NMOS Variant = iota // 6502, as shipped in the Apple ][ and ][+
	CMOS                // 65C02, as shipped in the Apple ][e Enhanced
)

func (v Variant) String() string {
	if v == CMOS {
		return "65C02"
	}
	return "6502"
}

// Processor status flags, low-to-high per spec.md's {C,Z,I,D,B,U,V,S}.
const (
	FlagCarry     uint8 = 1 << 0
	FlagZero      uint8 = 1 << 1
	FlagIRQOff    uint8 = 1 << 2
	FlagDecimal   uint8 = 1 << 3
	FlagBreak     uint8 = 1 << 4
	FlagUnused    uint8 = 1 << 5
	FlagOverflow  uint8 = 1 << 6
	FlagNegative  uint8 = 1 << 7
)

// Interrupt and reset vectors.
const (
	VectorNMI   = 0xFFFA
	VectorReset = 0xFFFC
	VectorIRQ   = 0xFFFE
	VectorBRK   = VectorIRQ
)

const stackPage = 0x0100

// addrMode names the effective-address resolution strategy for an
// opcode. Values carry semantics only; they don't name any source
// keyword.
type addrMode uint8

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeRelative
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX // (zp,X) - pre-indexed
	modeIndirectY // (zp),Y - post-indexed
	modeZeroPageIndirect // (zp) - CMOS only
	modeAbsoluteXIndirect // (abs,X) - CMOS only, JMP only
)

// opcode is one entry of a 256-entry dispatch table. exec is nil for
// invalid/unimplemented slots.
type opcode struct {
	name   string
	mode   addrMode
	bytes  uint8
	cycles uint8
	exec   func(c *CPU, mode addrMode)
}

// InvalidOpcode reports a fetch of a table slot with no exec function.
// In permissive mode (the default) the CPU treats it as a one-byte
// NOP instead of returning this.
type InvalidOpcode struct {
	PC   uint16
	Byte uint8
}

func (e *InvalidOpcode) Error() string {
	return fmt.Sprintf("invalid opcode 0x%02x at pc 0x%04x", e.Byte, e.PC)
}

// CPU holds all 6502/65C02 register state. It has no knowledge of
// memory layout beyond the Bus interface, and keeps no global or
// package-level mutable state: every CPU instance is independent.
type CPU struct {
	A, X, Y uint8
	SP      uint8
	P       uint8
	PC      uint16

	Bus     Bus
	Variant Variant

	// fetch is Bus's InstructionFetcher view, if it implements one;
	// nil otherwise, in which case Step falls back to Bus.Read.
	fetch InstructionFetcher

	// Strict causes Step to return an *InvalidOpcode error instead of
	// treating unimplemented opcodes as a one-byte NOP.
	Strict bool

	table *[256]opcode

	// pageCrossed and branchTaken are set by addressing resolution and
	// the branch helper during the current Step call and folded into
	// its returned cycle count.
	pageCrossed bool
	branchTaken bool
}

// New returns a CPU wired to bus, using the given variant's opcode
// table. Reset is not called automatically; callers decide when
// power-on/reset semantics apply.
func New(bus Bus, variant Variant) *CPU {
	c := &CPU{
		Bus:     bus,
		Variant: variant,
		SP:      0xFD,
		P:       FlagUnused | FlagBreak | FlagIRQOff,
	}
	if variant == CMOS {
		c.table = &cmosOpcodes
	} else {
		c.table = &nmosOpcodes
	}
	c.fetch, _ = bus.(InstructionFetcher)
	return c
}

// Reset sets PC from the reset vector, SP=$FF, clears D and sets I.
func (c *CPU) Reset() {
	c.SP = 0xFF
	c.setFlag(FlagIRQOff, true)
	c.setFlag(FlagDecimal, false)
	c.setFlag(FlagUnused, true)
	c.PC = c.read16(VectorReset)
}

// Step fetches, decodes and executes one instruction, returning the
// number of cycles it consumed (base cycles plus any page-crossing or
// branch-taken penalty).
func (c *CPU) Step() (int, error) {
	var opByte uint8
	if c.fetch != nil {
		opByte = c.fetch.ReadInstruction(c.PC)
	} else {
		opByte = c.Bus.Read(c.PC)
	}
	op := c.table[opByte]

	if op.exec == nil {
		if c.Strict {
			return 0, &InvalidOpcode{PC: c.PC, Byte: opByte}
		}
		c.PC++
		return 2, nil
	}

	startPC := c.PC
	c.PC++
	c.pageCrossed = false
	c.branchTaken = false

	op.exec(c, op.mode)

	if c.PC == startPC+1 {
		c.PC += uint16(op.bytes) - 1
	}

	cycles := int(op.cycles)
	if c.pageCrossed {
		cycles++
	}
	if c.branchTaken {
		cycles++
	}
	return cycles, nil
}

// IRQ pushes PC and status (B=0) and jumps through the IRQ vector,
// unless interrupts are disabled.
func (c *CPU) IRQ() {
	if c.P&FlagIRQOff != 0 {
		return
	}
	c.pushAddr(c.PC)
	c.push(c.P &^ FlagBreak)
	c.setFlag(FlagIRQOff, true)
	c.PC = c.read16(VectorIRQ)
}

// NMI is identical to IRQ but is never masked and uses the NMI vector.
func (c *CPU) NMI() {
	c.pushAddr(c.PC)
	c.push(c.P &^ FlagBreak)
	c.setFlag(FlagIRQOff, true)
	c.PC = c.read16(VectorNMI)
}

func (c *CPU) String() string {
	return fmt.Sprintf("A=%02x X=%02x Y=%02x SP=%02x PC=%04x P=%s",
		c.A, c.X, c.Y, c.SP, c.PC, flagString(c.P))
}

var flagOrder = []struct {
	mask uint8
	ch   byte
}{
	{FlagNegative, 'N'}, {FlagOverflow, 'V'}, {FlagUnused, '-'}, {FlagBreak, 'B'},
	{FlagDecimal, 'D'}, {FlagIRQOff, 'I'}, {FlagZero, 'Z'}, {FlagCarry, 'C'},
}

func flagString(p uint8) string {
	var sb strings.Builder
	for _, f := range flagOrder {
		if p&f.mask != 0 {
			sb.WriteByte(f.ch)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
