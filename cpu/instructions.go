// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"strings"
	"sync"
)

type instfunc func(c *CPU, inst *Instruction) error

// Emulator implementation for each mnemonic. Every opcode that aliases the
// mnemonic shares the implementation; the addressing mode comes from the
// opcode's table entry.
type opcodeImpl struct {
	name    string
	fn      instfunc
	address bool // implementation resolves an effective address
}

var impl = []opcodeImpl{
	{"ADC", (*CPU).adc, true},
	{"AND", (*CPU).and, true},
	{"BCC", (*CPU).bcc, false},
	{"BCS", (*CPU).bcs, false},
	{"BEQ", (*CPU).beq, false},
	{"BIT", (*CPU).bit, true},
	{"BMI", (*CPU).bmi, false},
	{"BNE", (*CPU).bne, false},
	{"BPL", (*CPU).bpl, false},
	{"BRK", (*CPU).brk, false},
	{"BVC", (*CPU).bvc, false},
	{"BVS", (*CPU).bvs, false},
	{"CLC", (*CPU).clc, false},
	{"CLD", (*CPU).cld, false},
	{"CLI", (*CPU).cli, false},
	{"CLV", (*CPU).clv, false},
	{"CMP", (*CPU).cmp, true},
	{"CPX", (*CPU).cpx, true},
	{"CPY", (*CPU).cpy, true},
	{"DEC", (*CPU).dec, true},
	{"DEX", (*CPU).dex, false},
	{"DEY", (*CPU).dey, false},
	{"EOR", (*CPU).eor, true},
	{"INC", (*CPU).inc, true},
	{"INX", (*CPU).inx, false},
	{"INY", (*CPU).iny, false},
	{"JMP", (*CPU).jmp, true},
	{"LDA", (*CPU).lda, true},
	{"LDX", (*CPU).ldx, true},
	{"LDY", (*CPU).ldy, true},
	{"NOP", (*CPU).nop, false},
	{"ORA", (*CPU).ora, true},
	{"SBC", (*CPU).sbc, true},
	{"SEC", (*CPU).sec, false},
	{"SED", (*CPU).sed, false},
	{"SEI", (*CPU).sei, false},
	{"STA", (*CPU).sta, true},
	{"STX", (*CPU).stx, true},
	{"STY", (*CPU).sty, true},
	{"TAX", (*CPU).tax, false},
	{"TAY", (*CPU).tay, false},
	{"TXA", (*CPU).txa, false},
	{"TYA", (*CPU).tya, false},
}

// OpcodeInfo is the static metadata for one opcode byte: the mnemonic it
// belongs to, its addressing mode, its length in bytes (opcode plus
// operand) and its base cycle count.
type OpcodeInfo struct {
	Name   string
	Mode   Mode
	Opcode byte
	Length byte
	Cycles byte
}

// All documented NMOS 6502 (opcode, mode) pairs
var nmosData = []OpcodeInfo{
	{"LDA", IMM, 0xa9, 2, 2},
	{"LDA", ZPG, 0xa5, 2, 3},
	{"LDA", ZPX, 0xb5, 2, 4},
	{"LDA", ABS, 0xad, 3, 4},
	{"LDA", ABX, 0xbd, 3, 4},
	{"LDA", ABY, 0xb9, 3, 4},
	{"LDA", IDX, 0xa1, 2, 6},
	{"LDA", IDY, 0xb1, 2, 5},

	{"LDX", IMM, 0xa2, 2, 2},
	{"LDX", ZPG, 0xa6, 2, 3},
	{"LDX", ZPY, 0xb6, 2, 4},
	{"LDX", ABS, 0xae, 3, 4},
	{"LDX", ABY, 0xbe, 3, 4},

	{"LDY", IMM, 0xa0, 2, 2},
	{"LDY", ZPG, 0xa4, 2, 3},
	{"LDY", ZPX, 0xb4, 2, 4},
	{"LDY", ABS, 0xac, 3, 4},
	{"LDY", ABX, 0xbc, 3, 4},

	{"STA", ZPG, 0x85, 2, 3},
	{"STA", ZPX, 0x95, 2, 4},
	{"STA", ABS, 0x8d, 3, 4},
	{"STA", ABX, 0x9d, 3, 5},
	{"STA", ABY, 0x99, 3, 5},
	{"STA", IDX, 0x81, 2, 6},
	{"STA", IDY, 0x91, 2, 6},

	{"STX", ZPG, 0x86, 2, 3},
	{"STX", ZPY, 0x96, 2, 4},
	{"STX", ABS, 0x8e, 3, 4},

	{"STY", ZPG, 0x84, 2, 3},
	{"STY", ZPX, 0x94, 2, 4},
	{"STY", ABS, 0x8c, 3, 4},

	{"ADC", IMM, 0x69, 2, 2},
	{"ADC", ZPG, 0x65, 2, 3},
	{"ADC", ZPX, 0x75, 2, 4},
	{"ADC", ABS, 0x6d, 3, 4},
	{"ADC", ABX, 0x7d, 3, 4},
	{"ADC", ABY, 0x79, 3, 4},
	{"ADC", IDX, 0x61, 2, 6},
	{"ADC", IDY, 0x71, 2, 5},

	{"SBC", IMM, 0xe9, 2, 2},
	{"SBC", ZPG, 0xe5, 2, 3},
	{"SBC", ZPX, 0xf5, 2, 4},
	{"SBC", ABS, 0xed, 3, 4},
	{"SBC", ABX, 0xfd, 3, 4},
	{"SBC", ABY, 0xf9, 3, 4},
	{"SBC", IDX, 0xe1, 2, 6},
	{"SBC", IDY, 0xf1, 2, 5},

	{"CMP", IMM, 0xc9, 2, 2},
	{"CMP", ZPG, 0xc5, 2, 3},
	{"CMP", ZPX, 0xd5, 2, 4},
	{"CMP", ABS, 0xcd, 3, 4},
	{"CMP", ABX, 0xdd, 3, 4},
	{"CMP", ABY, 0xd9, 3, 4},
	{"CMP", IDX, 0xc1, 2, 6},
	{"CMP", IDY, 0xd1, 2, 5},

	{"CPX", IMM, 0xe0, 2, 2},
	{"CPX", ZPG, 0xe4, 2, 3},
	{"CPX", ABS, 0xec, 3, 4},

	{"CPY", IMM, 0xc0, 2, 2},
	{"CPY", ZPG, 0xc4, 2, 3},
	{"CPY", ABS, 0xcc, 3, 4},

	{"BIT", ZPG, 0x24, 2, 3},
	{"BIT", ABS, 0x2c, 3, 4},

	{"CLC", IMP, 0x18, 1, 2},
	{"SEC", IMP, 0x38, 1, 2},
	{"CLI", IMP, 0x58, 1, 2},
	{"SEI", IMP, 0x78, 1, 2},
	{"CLD", IMP, 0xd8, 1, 2},
	{"SED", IMP, 0xf8, 1, 2},
	{"CLV", IMP, 0xb8, 1, 2},

	{"BCC", REL, 0x90, 2, 2},
	{"BCS", REL, 0xb0, 2, 2},
	{"BEQ", REL, 0xf0, 2, 2},
	{"BNE", REL, 0xd0, 2, 2},
	{"BMI", REL, 0x30, 2, 2},
	{"BPL", REL, 0x10, 2, 2},
	{"BVC", REL, 0x50, 2, 2},
	{"BVS", REL, 0x70, 2, 2},

	{"BRK", IMP, 0x00, 1, 7},

	{"AND", IMM, 0x29, 2, 2},
	{"AND", ZPG, 0x25, 2, 3},
	{"AND", ZPX, 0x35, 2, 4},
	{"AND", ABS, 0x2d, 3, 4},
	{"AND", ABX, 0x3d, 3, 4},
	{"AND", ABY, 0x39, 3, 4},
	{"AND", IDX, 0x21, 2, 6},
	{"AND", IDY, 0x31, 2, 5},

	{"ORA", IMM, 0x09, 2, 2},
	{"ORA", ZPG, 0x05, 2, 3},
	{"ORA", ZPX, 0x15, 2, 4},
	{"ORA", ABS, 0x0d, 3, 4},
	{"ORA", ABX, 0x1d, 3, 4},
	{"ORA", ABY, 0x19, 3, 4},
	{"ORA", IDX, 0x01, 2, 6},
	{"ORA", IDY, 0x11, 2, 5},

	{"EOR", IMM, 0x49, 2, 2},
	{"EOR", ZPG, 0x45, 2, 3},
	{"EOR", ZPX, 0x55, 2, 4},
	{"EOR", ABS, 0x4d, 3, 4},
	{"EOR", ABX, 0x5d, 3, 4},
	{"EOR", ABY, 0x59, 3, 4},
	{"EOR", IDX, 0x41, 2, 6},
	{"EOR", IDY, 0x51, 2, 5},

	{"INC", ZPG, 0xe6, 2, 5},
	{"INC", ZPX, 0xf6, 2, 6},
	{"INC", ABS, 0xee, 3, 6},
	{"INC", ABX, 0xfe, 3, 7},

	{"DEC", ZPG, 0xc6, 2, 5},
	{"DEC", ZPX, 0xd6, 2, 6},
	{"DEC", ABS, 0xce, 3, 6},
	{"DEC", ABX, 0xde, 3, 7},

	{"INX", IMP, 0xe8, 1, 2},
	{"INY", IMP, 0xc8, 1, 2},

	{"DEX", IMP, 0xca, 1, 2},
	{"DEY", IMP, 0x88, 1, 2},

	{"JMP", ABS, 0x4c, 3, 3},
	{"JMP", IND, 0x6c, 3, 5},

	{"JSR", ABS, 0x20, 3, 6},
	{"RTS", IMP, 0x60, 1, 6},

	{"RTI", IMP, 0x40, 1, 6},

	{"NOP", IMP, 0xea, 1, 2},

	{"TAX", IMP, 0xaa, 1, 2},
	{"TXA", IMP, 0x8a, 1, 2},
	{"TAY", IMP, 0xa8, 1, 2},
	{"TYA", IMP, 0x98, 1, 2},
	{"TXS", IMP, 0x9a, 1, 2},
	{"TSX", IMP, 0xba, 1, 2},

	{"PHA", IMP, 0x48, 1, 3},
	{"PLA", IMP, 0x68, 1, 4},
	{"PHP", IMP, 0x08, 1, 3},
	{"PLP", IMP, 0x28, 1, 4},

	{"ASL", ACC, 0x0a, 1, 2},
	{"ASL", ZPG, 0x06, 2, 5},
	{"ASL", ZPX, 0x16, 2, 6},
	{"ASL", ABS, 0x0e, 3, 6},
	{"ASL", ABX, 0x1e, 3, 7},

	{"LSR", ACC, 0x4a, 1, 2},
	{"LSR", ZPG, 0x46, 2, 5},
	{"LSR", ZPX, 0x56, 2, 6},
	{"LSR", ABS, 0x4e, 3, 6},
	{"LSR", ABX, 0x5e, 3, 7},

	{"ROL", ACC, 0x2a, 1, 2},
	{"ROL", ZPG, 0x26, 2, 5},
	{"ROL", ZPX, 0x36, 2, 6},
	{"ROL", ABS, 0x2e, 3, 6},
	{"ROL", ABX, 0x3e, 3, 7},

	{"ROR", ACC, 0x6a, 1, 2},
	{"ROR", ZPG, 0x66, 2, 5},
	{"ROR", ZPX, 0x76, 2, 6},
	{"ROR", ABS, 0x6e, 3, 6},
	{"ROR", ABX, 0x7e, 3, 7},
}

// DefaultOpcodes returns a copy of the documented NMOS opcode table. It is
// a convenient starting point for building alternate instruction sets.
func DefaultOpcodes() []OpcodeInfo {
	return append([]OpcodeInfo(nil), nmosData...)
}

// An Instruction describes a CPU instruction, including its name,
// its addressing mode, its opcode value, its operand size, and its CPU cycle
// cost.
type Instruction struct {
	Name   string   // all-caps name of the instruction
	Mode   Mode     // addressing mode
	Opcode byte     // hexadecimal opcode value
	Length byte     // combined size of opcode and operand, in bytes
	Cycles byte     // number of CPU cycles to execute the instruction
	fn     instfunc // emulator implementation of the function
}

// Implemented returns true if the emulator has an implementation for the
// instruction.
func (inst *Instruction) Implemented() bool {
	return inst.fn != nil
}

// An InstructionSet maps opcode bytes to instructions. It is immutable once
// created and may be shared by any number of CPUs.
type InstructionSet struct {
	instructions [256]*Instruction          // all instructions by opcode
	variants     map[string][]*Instruction // variants of each instruction
}

// Lookup retrieves a CPU instruction corresponding to the requested opcode.
// It returns nil if the opcode is not part of the set.
func (s *InstructionSet) Lookup(opcode byte) *Instruction {
	return s.instructions[opcode]
}

// GetInstructions returns all CPU instructions whose name matches the
// provided string.
func (s *InstructionSet) GetInstructions(name string) []*Instruction {
	return s.variants[strings.ToUpper(name)]
}

// NewInstructionSet creates an instruction set from an opcode table. Each
// entry is bound to the implementation of its mnemonic; mnemonics without an
// implementation are kept so the CPU can tell them apart from unknown
// opcodes. The table is rejected if an opcode appears twice, if a length
// disagrees with its addressing mode, or if an implementation that needs an
// effective address is paired with a mode that has none.
func NewInstructionSet(table []OpcodeInfo) (*InstructionSet, error) {
	set := &InstructionSet{
		variants: make(map[string][]*Instruction),
	}

	// Create a map from mnemonic to implementation for fast lookups.
	nameToImpl := make(map[string]*opcodeImpl, len(impl))
	for i := range impl {
		nameToImpl[impl[i].name] = &impl[i]
	}

	for _, d := range table {
		switch {
		case set.instructions[d.Opcode] != nil:
			return nil, &TableError{Info: d, Err: ErrOpcodeDuplicate}
		case d.Length != 1+d.Mode.OperandLength():
			return nil, &TableError{Info: d, Err: ErrOpcodeLength}
		}

		inst := &Instruction{
			Name:   strings.ToUpper(d.Name),
			Mode:   d.Mode,
			Opcode: d.Opcode,
			Length: d.Length,
			Cycles: d.Cycles,
		}

		if im, ok := nameToImpl[inst.Name]; ok {
			if im.address && !inst.Mode.HasAddress() {
				return nil, &TableError{Info: d, Err: ErrOpcodeMode}
			}
			inst.fn = im.fn
		}

		set.instructions[inst.Opcode] = inst
		set.variants[inst.Name] = append(set.variants[inst.Name], inst)
	}
	return set, nil
}

var (
	defaultSet     *InstructionSet
	defaultSetOnce sync.Once
)

// DefaultInstructionSet returns the shared instruction set for the
// documented NMOS 6502 opcodes. It is created on first use.
func DefaultInstructionSet() *InstructionSet {
	defaultSetOnce.Do(func() {
		set, err := NewInstructionSet(nmosData)
		if err != nil {
			panic(err)
		}
		defaultSet = set
	})
	return defaultSet
}
