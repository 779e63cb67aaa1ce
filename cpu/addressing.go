package cpu

// read16 returns the little-endian word at addr.
func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.Bus.Read(addr))
	hi := uint16(c.Bus.Read(addr + 1))
	return hi<<8 | lo
}

func samePage(a, b uint16) bool {
	return a&0xFF00 == b&0xFF00
}

// operandAddr resolves mode to an effective address, consuming the
// operand bytes immediately following the opcode byte (PC already
// points at the first operand byte when this is called). It is never
// called for modeAccumulator or modeImplied.
func (c *CPU) operandAddr(mode addrMode) uint16 {
	switch mode {
	case modeImmediate:
		return c.PC
	case modeZeroPage:
		return uint16(c.Bus.Read(c.PC))
	case modeZeroPageX:
		return uint16(c.Bus.Read(c.PC) + c.X)
	case modeZeroPageY:
		return uint16(c.Bus.Read(c.PC) + c.Y)
	case modeAbsolute:
		return c.read16(c.PC)
	case modeAbsoluteX:
		base := c.read16(c.PC)
		addr := base + uint16(c.X)
		if !samePage(base, addr) {
			c.pageCrossed = true
		}
		return addr
	case modeAbsoluteY:
		base := c.read16(c.PC)
		addr := base + uint16(c.Y)
		if !samePage(base, addr) {
			c.pageCrossed = true
		}
		return addr
	case modeIndirect:
		ptr := c.read16(c.PC)
		if c.Variant == NMOS {
			// The famous page-wrap bug: the high byte is read
			// from (ptr & 0xFF00)|((ptr+1) & 0xFF), not ptr+1.
			lo := uint16(c.Bus.Read(ptr))
			hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
			hi := uint16(c.Bus.Read(hiAddr))
			return hi<<8 | lo
		}
		return c.read16(ptr)
	case modeIndirectX:
		zp := uint16(c.Bus.Read(c.PC) + c.X)
		lo := uint16(c.Bus.Read(zp & 0xFF))
		hi := uint16(c.Bus.Read((zp + 1) & 0xFF))
		return hi<<8 | lo
	case modeIndirectY:
		zp := uint16(c.Bus.Read(c.PC))
		lo := uint16(c.Bus.Read(zp))
		hi := uint16(c.Bus.Read((zp + 1) & 0xFF))
		base := hi<<8 | lo
		addr := base + uint16(c.Y)
		if !samePage(base, addr) {
			c.pageCrossed = true
		}
		return addr
	case modeZeroPageIndirect:
		zp := uint16(c.Bus.Read(c.PC))
		lo := uint16(c.Bus.Read(zp))
		hi := uint16(c.Bus.Read((zp + 1) & 0xFF))
		return hi<<8 | lo
	case modeAbsoluteXIndirect:
		ptr := c.read16(c.PC) + uint16(c.X)
		return c.read16(ptr)
	default:
		panic("cpu: operandAddr called with a mode that has no operand address")
	}
}

// relativeTarget resolves a branch's target address without touching
// pageCrossed (branch page-cross accounting is handled by branch()
// itself, which compares against the next instruction's address, PC+1).
func (c *CPU) relativeTarget() uint16 {
	disp := int8(c.Bus.Read(c.PC))
	return (c.PC + 1) + uint16(disp)
}

func (c *CPU) setFlag(mask uint8, on bool) {
	if on {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

func (c *CPU) setZN(v uint8) {
	c.setFlag(FlagZero, v == 0)
	c.setFlag(FlagNegative, v&0x80 != 0)
}

func (c *CPU) push(v uint8) {
	c.Bus.Write(stackPage+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.Bus.Read(stackPage + uint16(c.SP))
}

func (c *CPU) pushAddr(addr uint16) {
	c.push(uint8(addr >> 8))
	c.push(uint8(addr & 0xFF))
}

func (c *CPU) popAddr() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// branch takes the relative branch when cond holds, recording the
// branch-taken and page-crossing cycle penalties. The page-cross test
// compares against the address of the instruction following the
// branch (c.PC+1, since c.PC still points at the displacement byte),
// not the branch opcode's own address -- those differ whenever the
// branch opcode itself sits at the last byte of a page.
func (c *CPU) branch(cond bool) {
	if !cond {
		return
	}
	next := c.PC + 1
	target := c.relativeTarget()
	c.branchTaken = true
	if !samePage(next, target) {
		c.pageCrossed = true
	}
	c.PC = target
}

// StackAddr returns the current top-of-stack address, $0100+SP.
func (c *CPU) StackAddr() uint16 {
	return stackPage + uint16(c.SP)
}
