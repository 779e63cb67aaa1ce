package cpu

// nmosOpcodes is the canonical Apple ][ / ][+ (NMOS 6502) table, one
// entry per opcode byte. Slots left zero-valued have exec == nil and
// are the "invalid" entries spec.md requires: size 0, handled as a
// permissive one-byte NOP by Step unless Strict is set.
// It is built by a package-level initializer rather than an init
// function so that it is complete before opcodes_cmos.go's init copies it.
var nmosOpcodes = buildNMOSOpcodes()

func buildNMOSOpcodes() (tbl [256]opcode) {
	t := &tbl
	t[0x69] = opcode{"ADC", modeImmediate, 2, 2, opADC}
	t[0x65] = opcode{"ADC", modeZeroPage, 2, 3, opADC}
	t[0x75] = opcode{"ADC", modeZeroPageX, 2, 4, opADC}
	t[0x6D] = opcode{"ADC", modeAbsolute, 3, 4, opADC}
	t[0x7D] = opcode{"ADC", modeAbsoluteX, 3, 4, opADC}
	t[0x79] = opcode{"ADC", modeAbsoluteY, 3, 4, opADC}
	t[0x61] = opcode{"ADC", modeIndirectX, 2, 6, opADC}
	t[0x71] = opcode{"ADC", modeIndirectY, 2, 5, opADC}

	t[0x29] = opcode{"AND", modeImmediate, 2, 2, opAND}
	t[0x25] = opcode{"AND", modeZeroPage, 2, 3, opAND}
	t[0x35] = opcode{"AND", modeZeroPageX, 2, 4, opAND}
	t[0x2D] = opcode{"AND", modeAbsolute, 3, 4, opAND}
	t[0x3D] = opcode{"AND", modeAbsoluteX, 3, 4, opAND}
	t[0x39] = opcode{"AND", modeAbsoluteY, 3, 4, opAND}
	t[0x21] = opcode{"AND", modeIndirectX, 2, 6, opAND}
	t[0x31] = opcode{"AND", modeIndirectY, 2, 5, opAND}

	t[0x0A] = opcode{"ASL", modeAccumulator, 1, 2, opASL}
	t[0x06] = opcode{"ASL", modeZeroPage, 2, 5, opASL}
	t[0x16] = opcode{"ASL", modeZeroPageX, 2, 6, opASL}
	t[0x0E] = opcode{"ASL", modeAbsolute, 3, 6, opASL}
	t[0x1E] = opcode{"ASL", modeAbsoluteX, 3, 7, opASL}

	t[0x90] = opcode{"BCC", modeRelative, 2, 2, opBCC}
	t[0xB0] = opcode{"BCS", modeRelative, 2, 2, opBCS}
	t[0xF0] = opcode{"BEQ", modeRelative, 2, 2, opBEQ}
	t[0x30] = opcode{"BMI", modeRelative, 2, 2, opBMI}
	t[0xD0] = opcode{"BNE", modeRelative, 2, 2, opBNE}
	t[0x10] = opcode{"BPL", modeRelative, 2, 2, opBPL}
	t[0x50] = opcode{"BVC", modeRelative, 2, 2, opBVC}
	t[0x70] = opcode{"BVS", modeRelative, 2, 2, opBVS}

	t[0x24] = opcode{"BIT", modeZeroPage, 2, 3, opBIT}
	t[0x2C] = opcode{"BIT", modeAbsolute, 3, 4, opBIT}

	t[0x00] = opcode{"BRK", modeImplied, 1, 7, opBRK}

	t[0x18] = opcode{"CLC", modeImplied, 1, 2, opCLC}
	t[0xD8] = opcode{"CLD", modeImplied, 1, 2, opCLD}
	t[0x58] = opcode{"CLI", modeImplied, 1, 2, opCLI}
	t[0xB8] = opcode{"CLV", modeImplied, 1, 2, opCLV}

	t[0xC9] = opcode{"CMP", modeImmediate, 2, 2, opCMP}
	t[0xC5] = opcode{"CMP", modeZeroPage, 2, 3, opCMP}
	t[0xD5] = opcode{"CMP", modeZeroPageX, 2, 4, opCMP}
	t[0xCD] = opcode{"CMP", modeAbsolute, 3, 4, opCMP}
	t[0xDD] = opcode{"CMP", modeAbsoluteX, 3, 4, opCMP}
	t[0xD9] = opcode{"CMP", modeAbsoluteY, 3, 4, opCMP}
	t[0xC1] = opcode{"CMP", modeIndirectX, 2, 6, opCMP}
	t[0xD1] = opcode{"CMP", modeIndirectY, 2, 5, opCMP}

	t[0xE0] = opcode{"CPX", modeImmediate, 2, 2, opCPX}
	t[0xE4] = opcode{"CPX", modeZeroPage, 2, 3, opCPX}
	t[0xEC] = opcode{"CPX", modeAbsolute, 3, 4, opCPX}
	t[0xC0] = opcode{"CPY", modeImmediate, 2, 2, opCPY}
	t[0xC4] = opcode{"CPY", modeZeroPage, 2, 3, opCPY}
	t[0xCC] = opcode{"CPY", modeAbsolute, 3, 4, opCPY}

	t[0xC6] = opcode{"DEC", modeZeroPage, 2, 5, opDEC}
	t[0xD6] = opcode{"DEC", modeZeroPageX, 2, 6, opDEC}
	t[0xCE] = opcode{"DEC", modeAbsolute, 3, 6, opDEC}
	t[0xDE] = opcode{"DEC", modeAbsoluteX, 3, 7, opDEC}
	t[0xCA] = opcode{"DEX", modeImplied, 1, 2, opDEX}
	t[0x88] = opcode{"DEY", modeImplied, 1, 2, opDEY}

	t[0x49] = opcode{"EOR", modeImmediate, 2, 2, opEOR}
	t[0x45] = opcode{"EOR", modeZeroPage, 2, 3, opEOR}
	t[0x55] = opcode{"EOR", modeZeroPageX, 2, 4, opEOR}
	t[0x4D] = opcode{"EOR", modeAbsolute, 3, 4, opEOR}
	t[0x5D] = opcode{"EOR", modeAbsoluteX, 3, 4, opEOR}
	t[0x59] = opcode{"EOR", modeAbsoluteY, 3, 4, opEOR}
	t[0x41] = opcode{"EOR", modeIndirectX, 2, 6, opEOR}
	t[0x51] = opcode{"EOR", modeIndirectY, 2, 5, opEOR}

	t[0xE6] = opcode{"INC", modeZeroPage, 2, 5, opINC}
	t[0xF6] = opcode{"INC", modeZeroPageX, 2, 6, opINC}
	t[0xEE] = opcode{"INC", modeAbsolute, 3, 6, opINC}
	t[0xFE] = opcode{"INC", modeAbsoluteX, 3, 7, opINC}
	t[0xE8] = opcode{"INX", modeImplied, 1, 2, opINX}
	t[0xC8] = opcode{"INY", modeImplied, 1, 2, opINY}

	t[0x4C] = opcode{"JMP", modeAbsolute, 3, 3, opJMP}
	t[0x6C] = opcode{"JMP", modeIndirect, 3, 5, opJMP}
	t[0x20] = opcode{"JSR", modeAbsolute, 3, 6, opJSR}

	t[0xA9] = opcode{"LDA", modeImmediate, 2, 2, opLDA}
	t[0xA5] = opcode{"LDA", modeZeroPage, 2, 3, opLDA}
	t[0xB5] = opcode{"LDA", modeZeroPageX, 2, 4, opLDA}
	t[0xAD] = opcode{"LDA", modeAbsolute, 3, 4, opLDA}
	t[0xBD] = opcode{"LDA", modeAbsoluteX, 3, 4, opLDA}
	t[0xB9] = opcode{"LDA", modeAbsoluteY, 3, 4, opLDA}
	t[0xA1] = opcode{"LDA", modeIndirectX, 2, 6, opLDA}
	t[0xB1] = opcode{"LDA", modeIndirectY, 2, 5, opLDA}

	t[0xA2] = opcode{"LDX", modeImmediate, 2, 2, opLDX}
	t[0xA6] = opcode{"LDX", modeZeroPage, 2, 3, opLDX}
	t[0xB6] = opcode{"LDX", modeZeroPageY, 2, 4, opLDX}
	t[0xAE] = opcode{"LDX", modeAbsolute, 3, 4, opLDX}
	t[0xBE] = opcode{"LDX", modeAbsoluteY, 3, 4, opLDX}

	t[0xA0] = opcode{"LDY", modeImmediate, 2, 2, opLDY}
	t[0xA4] = opcode{"LDY", modeZeroPage, 2, 3, opLDY}
	t[0xB4] = opcode{"LDY", modeZeroPageX, 2, 4, opLDY}
	t[0xAC] = opcode{"LDY", modeAbsolute, 3, 4, opLDY}
	t[0xBC] = opcode{"LDY", modeAbsoluteX, 3, 4, opLDY}

	t[0x4A] = opcode{"LSR", modeAccumulator, 1, 2, opLSR}
	t[0x46] = opcode{"LSR", modeZeroPage, 2, 5, opLSR}
	t[0x56] = opcode{"LSR", modeZeroPageX, 2, 6, opLSR}
	t[0x4E] = opcode{"LSR", modeAbsolute, 3, 6, opLSR}
	t[0x5E] = opcode{"LSR", modeAbsoluteX, 3, 7, opLSR}

	t[0xEA] = opcode{"NOP", modeImplied, 1, 2, opNOP}

	t[0x09] = opcode{"ORA", modeImmediate, 2, 2, opORA}
	t[0x05] = opcode{"ORA", modeZeroPage, 2, 3, opORA}
	t[0x15] = opcode{"ORA", modeZeroPageX, 2, 4, opORA}
	t[0x0D] = opcode{"ORA", modeAbsolute, 3, 4, opORA}
	t[0x1D] = opcode{"ORA", modeAbsoluteX, 3, 4, opORA}
	t[0x19] = opcode{"ORA", modeAbsoluteY, 3, 4, opORA}
	t[0x01] = opcode{"ORA", modeIndirectX, 2, 6, opORA}
	t[0x11] = opcode{"ORA", modeIndirectY, 2, 5, opORA}

	t[0x48] = opcode{"PHA", modeImplied, 1, 3, opPHA}
	t[0x08] = opcode{"PHP", modeImplied, 1, 3, opPHP}
	t[0x68] = opcode{"PLA", modeImplied, 1, 4, opPLA}
	t[0x28] = opcode{"PLP", modeImplied, 1, 4, opPLP}

	t[0x2A] = opcode{"ROL", modeAccumulator, 1, 2, opROL}
	t[0x26] = opcode{"ROL", modeZeroPage, 2, 5, opROL}
	t[0x36] = opcode{"ROL", modeZeroPageX, 2, 6, opROL}
	t[0x2E] = opcode{"ROL", modeAbsolute, 3, 6, opROL}
	t[0x3E] = opcode{"ROL", modeAbsoluteX, 3, 7, opROL}

	t[0x6A] = opcode{"ROR", modeAccumulator, 1, 2, opROR}
	t[0x66] = opcode{"ROR", modeZeroPage, 2, 5, opROR}
	t[0x76] = opcode{"ROR", modeZeroPageX, 2, 6, opROR}
	t[0x6E] = opcode{"ROR", modeAbsolute, 3, 6, opROR}
	t[0x7E] = opcode{"ROR", modeAbsoluteX, 3, 7, opROR}

	t[0x40] = opcode{"RTI", modeImplied, 1, 6, opRTI}
	t[0x60] = opcode{"RTS", modeImplied, 1, 6, opRTS}

	t[0xE9] = opcode{"SBC", modeImmediate, 2, 2, opSBC}
	t[0xE5] = opcode{"SBC", modeZeroPage, 2, 3, opSBC}
	t[0xF5] = opcode{"SBC", modeZeroPageX, 2, 4, opSBC}
	t[0xED] = opcode{"SBC", modeAbsolute, 3, 4, opSBC}
	t[0xFD] = opcode{"SBC", modeAbsoluteX, 3, 4, opSBC}
	t[0xF9] = opcode{"SBC", modeAbsoluteY, 3, 4, opSBC}
	t[0xE1] = opcode{"SBC", modeIndirectX, 2, 6, opSBC}
	t[0xF1] = opcode{"SBC", modeIndirectY, 2, 5, opSBC}

	t[0x38] = opcode{"SEC", modeImplied, 1, 2, opSEC}
	t[0xF8] = opcode{"SED", modeImplied, 1, 2, opSED}
	t[0x78] = opcode{"SEI", modeImplied, 1, 2, opSEI}

	t[0x85] = opcode{"STA", modeZeroPage, 2, 3, opSTA}
	t[0x95] = opcode{"STA", modeZeroPageX, 2, 4, opSTA}
	t[0x8D] = opcode{"STA", modeAbsolute, 3, 4, opSTA}
	t[0x9D] = opcode{"STA", modeAbsoluteX, 3, 5, opSTA}
	t[0x99] = opcode{"STA", modeAbsoluteY, 3, 5, opSTA}
	t[0x81] = opcode{"STA", modeIndirectX, 2, 6, opSTA}
	t[0x91] = opcode{"STA", modeIndirectY, 2, 6, opSTA}

	t[0x86] = opcode{"STX", modeZeroPage, 2, 3, opSTX}
	t[0x96] = opcode{"STX", modeZeroPageY, 2, 4, opSTX}
	t[0x8E] = opcode{"STX", modeAbsolute, 3, 4, opSTX}

	t[0x84] = opcode{"STY", modeZeroPage, 2, 3, opSTY}
	t[0x94] = opcode{"STY", modeZeroPageX, 2, 4, opSTY}
	t[0x8C] = opcode{"STY", modeAbsolute, 3, 4, opSTY}

	t[0xAA] = opcode{"TAX", modeImplied, 1, 2, opTAX}
	t[0xA8] = opcode{"TAY", modeImplied, 1, 2, opTAY}
	t[0xBA] = opcode{"TSX", modeImplied, 1, 2, opTSX}
	t[0x8A] = opcode{"TXA", modeImplied, 1, 2, opTXA}
	t[0x9A] = opcode{"TXS", modeImplied, 1, 2, opTXS}
	t[0x98] = opcode{"TYA", modeImplied, 1, 2, opTYA}
	return tbl
}
