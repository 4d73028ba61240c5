// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Load the byte at the effective address of 'mode'.
func (cpu *CPU) load(mode Mode) (byte, error) {
	addr, err := cpu.EffectiveAddress(mode)
	if err != nil {
		return 0, err
	}
	return cpu.Mem.LoadByte(addr), nil
}

// Store 'v' at the effective address of 'mode'.
func (cpu *CPU) store(mode Mode, v byte) error {
	addr, err := cpu.EffectiveAddress(mode)
	if err != nil {
		return err
	}
	cpu.storeByte(cpu, addr, v)
	return nil
}

// Apply 'f' to the byte at the effective address of 'mode' and store the
// result back.
func (cpu *CPU) modify(mode Mode, f func(v byte) byte) error {
	addr, err := cpu.EffectiveAddress(mode)
	if err != nil {
		return err
	}
	v := f(cpu.Mem.LoadByte(addr))
	cpu.Reg.UpdateZeroAndNegative(v)
	cpu.storeByte(cpu, addr, v)
	return nil
}

// Take a branch if 'cond' is true. The signed offset operand is relative
// to the instruction that follows the branch.
func (cpu *CPU) branch(cond bool) {
	if !cond {
		return
	}
	offset := int8(cpu.Mem.LoadByte(cpu.Reg.PC))
	cpu.Reg.PC += 1 + uint16(offset)
}

// Add 'v' and the carry bit to the accumulator. The carry-in is added to
// the operand first and then the sum to the accumulator; Carry is set if
// either 8-bit addition overflowed.
func (cpu *CPU) addWithCarry(v byte) {
	acc := cpu.Reg.A
	rhs := v + boolToByte(cpu.Reg.IsSet(Carry))
	result := acc + rhs

	cpu.Reg.SetFlag(Carry, rhs < v || result < acc)
	cpu.Reg.SetFlag(Overflow, (result^v)&(result^acc)&0x80 != 0)

	cpu.Reg.A = result
	cpu.Reg.UpdateZeroAndNegative(cpu.Reg.A)
}

// Compare 'reg' with the operand.
func (cpu *CPU) compare(reg byte, mode Mode) error {
	v, err := cpu.load(mode)
	if err != nil {
		return err
	}
	cpu.Reg.SetFlag(Carry, reg >= v)
	cpu.Reg.UpdateZeroAndNegative(reg - v)
	return nil
}

// Add with carry
func (cpu *CPU) adc(inst *Instruction) error {
	v, err := cpu.load(inst.Mode)
	if err != nil {
		return err
	}
	cpu.addWithCarry(v)
	return nil
}

// Boolean AND
func (cpu *CPU) and(inst *Instruction) error {
	v, err := cpu.load(inst.Mode)
	if err != nil {
		return err
	}
	cpu.Reg.A &= v
	cpu.Reg.UpdateZeroAndNegative(cpu.Reg.A)
	return nil
}

// Branch if Carry Clear
func (cpu *CPU) bcc(inst *Instruction) error {
	cpu.branch(!cpu.Reg.IsSet(Carry))
	return nil
}

// Branch if Carry Set
func (cpu *CPU) bcs(inst *Instruction) error {
	cpu.branch(cpu.Reg.IsSet(Carry))
	return nil
}

// Branch if EQual (to zero)
func (cpu *CPU) beq(inst *Instruction) error {
	cpu.branch(cpu.Reg.IsSet(Zero))
	return nil
}

// Bit Test
func (cpu *CPU) bit(inst *Instruction) error {
	v, err := cpu.load(inst.Mode)
	if err != nil {
		return err
	}
	cpu.Reg.SetFlag(Zero, v&cpu.Reg.A == 0)
	cpu.Reg.SetFlag(Negative, v&0x80 != 0)
	cpu.Reg.SetFlag(Overflow, v&0x40 != 0)
	return nil
}

// Branch if MInus (negative)
func (cpu *CPU) bmi(inst *Instruction) error {
	cpu.branch(cpu.Reg.IsSet(Negative))
	return nil
}

// Branch if Not Equal (not zero)
func (cpu *CPU) bne(inst *Instruction) error {
	cpu.branch(!cpu.Reg.IsSet(Zero))
	return nil
}

// Branch if PLus (positive)
func (cpu *CPU) bpl(inst *Instruction) error {
	cpu.branch(!cpu.Reg.IsSet(Negative))
	return nil
}

// Break. Halts the CPU without touching the status flags.
func (cpu *CPU) brk(inst *Instruction) error {
	cpu.Halted = true
	if cpu.brkHandler != nil {
		cpu.brkHandler.OnBrk(cpu)
	}
	return nil
}

// Branch if oVerflow Clear
func (cpu *CPU) bvc(inst *Instruction) error {
	cpu.branch(!cpu.Reg.IsSet(Overflow))
	return nil
}

// Branch if oVerflow Set
func (cpu *CPU) bvs(inst *Instruction) error {
	cpu.branch(cpu.Reg.IsSet(Overflow))
	return nil
}

// Clear Carry flag
func (cpu *CPU) clc(inst *Instruction) error {
	cpu.Reg.SetFlag(Carry, false)
	return nil
}

// Clear Decimal flag
func (cpu *CPU) cld(inst *Instruction) error {
	cpu.Reg.SetFlag(Decimal, false)
	return nil
}

// Clear InterruptDisable flag
func (cpu *CPU) cli(inst *Instruction) error {
	cpu.Reg.SetFlag(InterruptDisable, false)
	return nil
}

// Clear oVerflow flag
func (cpu *CPU) clv(inst *Instruction) error {
	cpu.Reg.SetFlag(Overflow, false)
	return nil
}

// Compare to accumulator
func (cpu *CPU) cmp(inst *Instruction) error {
	return cpu.compare(cpu.Reg.A, inst.Mode)
}

// Compare to X register
func (cpu *CPU) cpx(inst *Instruction) error {
	return cpu.compare(cpu.Reg.X, inst.Mode)
}

// Compare to Y register
func (cpu *CPU) cpy(inst *Instruction) error {
	return cpu.compare(cpu.Reg.Y, inst.Mode)
}

// Decrement memory value
func (cpu *CPU) dec(inst *Instruction) error {
	return cpu.modify(inst.Mode, func(v byte) byte { return v - 1 })
}

// Decrement X register
func (cpu *CPU) dex(inst *Instruction) error {
	cpu.Reg.X--
	cpu.Reg.UpdateZeroAndNegative(cpu.Reg.X)
	return nil
}

// Decrement Y register
func (cpu *CPU) dey(inst *Instruction) error {
	cpu.Reg.Y--
	cpu.Reg.UpdateZeroAndNegative(cpu.Reg.Y)
	return nil
}

// Boolean XOR
func (cpu *CPU) eor(inst *Instruction) error {
	v, err := cpu.load(inst.Mode)
	if err != nil {
		return err
	}
	cpu.Reg.A ^= v
	cpu.Reg.UpdateZeroAndNegative(cpu.Reg.A)
	return nil
}

// Increment memory value
func (cpu *CPU) inc(inst *Instruction) error {
	return cpu.modify(inst.Mode, func(v byte) byte { return v + 1 })
}

// Increment X register
func (cpu *CPU) inx(inst *Instruction) error {
	cpu.Reg.X++
	cpu.Reg.UpdateZeroAndNegative(cpu.Reg.X)
	return nil
}

// Increment Y register
func (cpu *CPU) iny(inst *Instruction) error {
	cpu.Reg.Y++
	cpu.Reg.UpdateZeroAndNegative(cpu.Reg.Y)
	return nil
}

// Jump to memory address
func (cpu *CPU) jmp(inst *Instruction) error {
	addr, err := cpu.EffectiveAddress(inst.Mode)
	if err != nil {
		return err
	}
	cpu.Reg.PC = addr
	return nil
}

// load Accumulator
func (cpu *CPU) lda(inst *Instruction) error {
	v, err := cpu.load(inst.Mode)
	if err != nil {
		return err
	}
	cpu.Reg.A = v
	cpu.Reg.UpdateZeroAndNegative(cpu.Reg.A)
	return nil
}

// load the X register
func (cpu *CPU) ldx(inst *Instruction) error {
	v, err := cpu.load(inst.Mode)
	if err != nil {
		return err
	}
	cpu.Reg.X = v
	cpu.Reg.UpdateZeroAndNegative(cpu.Reg.X)
	return nil
}

// load the Y register
func (cpu *CPU) ldy(inst *Instruction) error {
	v, err := cpu.load(inst.Mode)
	if err != nil {
		return err
	}
	cpu.Reg.Y = v
	cpu.Reg.UpdateZeroAndNegative(cpu.Reg.Y)
	return nil
}

// No-operation
func (cpu *CPU) nop(inst *Instruction) error {
	return nil
}

// Boolean OR
func (cpu *CPU) ora(inst *Instruction) error {
	v, err := cpu.load(inst.Mode)
	if err != nil {
		return err
	}
	cpu.Reg.A |= v
	cpu.Reg.UpdateZeroAndNegative(cpu.Reg.A)
	return nil
}

// Subtract with Carry. Binary only; the Decimal flag is ignored.
func (cpu *CPU) sbc(inst *Instruction) error {
	v, err := cpu.load(inst.Mode)
	if err != nil {
		return err
	}
	cpu.addWithCarry(^v)
	return nil
}

// Set Carry flag
func (cpu *CPU) sec(inst *Instruction) error {
	cpu.Reg.SetFlag(Carry, true)
	return nil
}

// Set Decimal flag
func (cpu *CPU) sed(inst *Instruction) error {
	cpu.Reg.SetFlag(Decimal, true)
	return nil
}

// Set InterruptDisable flag
func (cpu *CPU) sei(inst *Instruction) error {
	cpu.Reg.SetFlag(InterruptDisable, true)
	return nil
}

// Store Accumulator
func (cpu *CPU) sta(inst *Instruction) error {
	return cpu.store(inst.Mode, cpu.Reg.A)
}

// Store X register
func (cpu *CPU) stx(inst *Instruction) error {
	return cpu.store(inst.Mode, cpu.Reg.X)
}

// Store Y register
func (cpu *CPU) sty(inst *Instruction) error {
	return cpu.store(inst.Mode, cpu.Reg.Y)
}

// Transfer Accumulator to X register
func (cpu *CPU) tax(inst *Instruction) error {
	cpu.Reg.X = cpu.Reg.A
	cpu.Reg.UpdateZeroAndNegative(cpu.Reg.X)
	return nil
}

// Transfer Accumulator to Y register
func (cpu *CPU) tay(inst *Instruction) error {
	cpu.Reg.Y = cpu.Reg.A
	cpu.Reg.UpdateZeroAndNegative(cpu.Reg.Y)
	return nil
}

// Transfer X register to Accumulator
func (cpu *CPU) txa(inst *Instruction) error {
	cpu.Reg.A = cpu.Reg.X
	cpu.Reg.UpdateZeroAndNegative(cpu.Reg.A)
	return nil
}

// Transfer Y register to the Accumulator
func (cpu *CPU) tya(inst *Instruction) error {
	cpu.Reg.A = cpu.Reg.Y
	cpu.Reg.UpdateZeroAndNegative(cpu.Reg.A)
	return nil
}
