package cpu

// cmosOpcodes is the Apple ][e Enhanced (WDC 65C02) table. It starts
// from the NMOS table -- every opcode byte whose documented NMOS and
// CMOS behavior agree is shared -- and then overrides the byte codes
// the 65C02 changed: new instructions filling former "invalid" slots
// (BRA, PHX/PHY/PLX/PLY, STZ, TRB, TSB, the (zp) addressing mode, and
// accumulator-mode INC/DEC, BIT's new modes and JMP (abs,X)). Cycle
// counts of the shared entries are not adjusted. JMP (modeIndirect)
// needs no table override: operandAddr's modeIndirect case already
// branches on c.Variant to pick the fixed behavior.
var cmosOpcodes [256]opcode

func init() {
	cmosOpcodes = nmosOpcodes
	t := &cmosOpcodes

	t[0x80] = opcode{"BRA", modeRelative, 2, 2, opBRA}

	t[0xDA] = opcode{"PHX", modeImplied, 1, 3, opPHX}
	t[0x5A] = opcode{"PHY", modeImplied, 1, 3, opPHY}
	t[0xFA] = opcode{"PLX", modeImplied, 1, 4, opPLX}
	t[0x7A] = opcode{"PLY", modeImplied, 1, 4, opPLY}

	t[0x3A] = opcode{"DEC", modeAccumulator, 1, 2, opDEC}
	t[0x1A] = opcode{"INC", modeAccumulator, 1, 2, opINC}

	t[0x64] = opcode{"STZ", modeZeroPage, 2, 3, opSTZ}
	t[0x74] = opcode{"STZ", modeZeroPageX, 2, 4, opSTZ}
	t[0x9C] = opcode{"STZ", modeAbsolute, 3, 4, opSTZ}
	t[0x9E] = opcode{"STZ", modeAbsoluteX, 3, 5, opSTZ}

	t[0x14] = opcode{"TRB", modeZeroPage, 2, 5, opTRB}
	t[0x1C] = opcode{"TRB", modeAbsolute, 3, 6, opTRB}
	t[0x04] = opcode{"TSB", modeZeroPage, 2, 5, opTSB}
	t[0x0C] = opcode{"TSB", modeAbsolute, 3, 6, opTSB}

	// (zp) - CMOS added a plain zero-page-indirect mode (no X/Y
	// pre/post indexing) for most accumulator ops.
	t[0x12] = opcode{"ORA", modeZeroPageIndirect, 2, 5, opORA}
	t[0x32] = opcode{"AND", modeZeroPageIndirect, 2, 5, opAND}
	t[0x52] = opcode{"EOR", modeZeroPageIndirect, 2, 5, opEOR}
	t[0x72] = opcode{"ADC", modeZeroPageIndirect, 2, 5, opADC}
	t[0x92] = opcode{"STA", modeZeroPageIndirect, 2, 5, opSTA}
	t[0xB2] = opcode{"LDA", modeZeroPageIndirect, 2, 5, opLDA}
	t[0xD2] = opcode{"CMP", modeZeroPageIndirect, 2, 5, opCMP}
	t[0xF2] = opcode{"SBC", modeZeroPageIndirect, 2, 5, opSBC}

	// CMOS fixed BIT to also support immediate addressing (which does
	// not touch N/V, only Z -- opBIT already special-cases that).
	t[0x89] = opcode{"BIT", modeImmediate, 2, 2, opBIT}
	t[0x34] = opcode{"BIT", modeZeroPageX, 2, 4, opBIT}
	t[0x3C] = opcode{"BIT", modeAbsoluteX, 3, 4, opBIT}

	// JMP (abs,X) is new on CMOS: PC = read16(abs+X), an indexed
	// indirect jump, not a jump to abs+X itself.
	t[0x7C] = opcode{"JMP", modeAbsoluteXIndirect, 3, 6, opJMP}

	// Every remaining undocumented NMOS slot is a one-byte, two-cycle
	// NOP on the 65C02 rather than trapping, so the CMOS table has no
	// invalid entries and Strict mode never fires for it.
	for i := range t {
		if t[i].exec == nil {
			t[i] = opcode{"NOP", modeImplied, 1, 2, opNOP}
		}
	}
}
