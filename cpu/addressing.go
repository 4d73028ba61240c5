// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "fmt"

// Mode describes a memory addressing mode.
type Mode byte

// All possible memory addressing modes
const (
	IMM Mode = iota // Immediate
	IMP             // Implied (no operand)
	REL             // Relative
	ZPG             // Zero Page
	ZPX             // Zero Page,X
	ZPY             // Zero Page,Y
	ABS             // Absolute
	ABX             // Absolute,X
	ABY             // Absolute,Y
	IND             // (Indirect)
	IDX             // (Indirect,X)
	IDY             // (Indirect),Y
	ACC             // Accumulator (no operand)
)

var modeNames = [...]string{
	IMM: "IMM",
	IMP: "IMP",
	REL: "REL",
	ZPG: "ZPG",
	ZPX: "ZPX",
	ZPY: "ZPY",
	ABS: "ABS",
	ABX: "ABX",
	ABY: "ABY",
	IND: "IND",
	IDX: "IDX",
	IDY: "IDY",
	ACC: "ACC",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", byte(m))
}

// HasAddress returns true if the mode yields an effective address. Implied,
// relative and accumulator modes do not.
func (m Mode) HasAddress() bool {
	switch m {
	case IMM, ZPG, ZPX, ZPY, ABS, ABX, ABY, IND, IDX, IDY:
		return true
	default:
		return false
	}
}

// OperandLength returns the number of operand bytes following an opcode
// that uses the mode.
func (m Mode) OperandLength() byte {
	switch m {
	case IMP, ACC:
		return 0
	case ABS, ABX, ABY, IND:
		return 2
	default:
		return 1
	}
}

// EffectiveAddress returns the operand address for 'mode', computed from
// the operand bytes at the current program counter. Zero-page indexing and
// zero-page pointer fetches wrap within page zero; absolute indexing wraps
// at 16 bits.
func (cpu *CPU) EffectiveAddress(mode Mode) (uint16, error) {
	pc := cpu.Reg.PC
	switch mode {
	case IMM:
		return pc, nil
	case ZPG:
		return uint16(cpu.Mem.LoadByte(pc)), nil
	case ZPX:
		return uint16(cpu.Mem.LoadByte(pc) + cpu.Reg.X), nil
	case ZPY:
		return uint16(cpu.Mem.LoadByte(pc) + cpu.Reg.Y), nil
	case ABS:
		return cpu.Mem.LoadAddress(pc), nil
	case ABX:
		return cpu.Mem.LoadAddress(pc) + uint16(cpu.Reg.X), nil
	case ABY:
		return cpu.Mem.LoadAddress(pc) + uint16(cpu.Reg.Y), nil
	case IND:
		// The high byte of the target is read from the same page as the
		// low byte: JMP ($12FF) reads $12FF and $1200.
		ptr := cpu.Mem.LoadAddress(pc)
		lo := cpu.Mem.LoadByte(ptr)
		hi := cpu.Mem.LoadByte(ptr&0xff00 | uint16(byte(ptr)+1))
		return uint16(lo) | uint16(hi)<<8, nil
	case IDX:
		ptr := cpu.Mem.LoadByte(pc) + cpu.Reg.X
		return cpu.loadZeroPageAddress(ptr), nil
	case IDY:
		ptr := cpu.Mem.LoadByte(pc)
		return cpu.loadZeroPageAddress(ptr) + uint16(cpu.Reg.Y), nil
	default:
		return 0, fmt.Errorf("%w %v", ErrUnsupportedMode, mode)
	}
}

// Load a little-endian address from page zero. The high byte of a pointer
// at $FF comes from $00.
func (cpu *CPU) loadZeroPageAddress(ptr byte) uint16 {
	lo := cpu.Mem.LoadByte(uint16(ptr))
	hi := cpu.Mem.LoadByte(uint16(ptr + 1))
	return uint16(lo) | uint16(hi)<<8
}
