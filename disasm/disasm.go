// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm implements a 6502 instruction set
// disassembler.
package disasm

import (
	"fmt"

	"github.com/famicore/nes6502/cpu"
)

// Disassembler formatting for addressing modes
var modeFormat = []string{
	cpu.IMM: "#$%s",
	cpu.IMP: "%s",
	cpu.REL: "$%s",
	cpu.ZPG: "$%s",
	cpu.ZPX: "$%s,X",
	cpu.ZPY: "$%s,Y",
	cpu.ABS: "$%s",
	cpu.ABX: "$%s,X",
	cpu.ABY: "$%s,Y",
	cpu.IND: "($%s)",
	cpu.IDX: "($%s,X)",
	cpu.IDY: "($%s),Y",
	cpu.ACC: "A%s",
}

var hex = "0123456789ABCDEF"

// Return a hexadecimal string representation of the byte slice, most
// significant byte first.
func hexString(b []byte) string {
	hexlen := len(b) * 2
	hexbuf := make([]byte, hexlen)
	j := hexlen - 1
	for _, n := range b {
		hexbuf[j] = hex[n&0xf]
		hexbuf[j-1] = hex[n>>4]
		j -= 2
	}
	return string(hexbuf)
}

// Disassemble the machine code in memory 'm' at address 'addr' using the
// instruction set 'set'. Return a 'line' string representing the
// disassembled instruction and a 'next' address that starts the following
// line of machine code. Bytes that are not a known opcode are shown as a
// single .DB directive.
func Disassemble(m cpu.Memory, set *cpu.InstructionSet, addr uint16) (line string, next uint16) {
	opcode := m.LoadByte(addr)
	inst := set.Lookup(opcode)
	if inst == nil {
		return fmt.Sprintf(".DB $%02X", opcode), addr + 1
	}

	operand := make([]byte, inst.Length-1)
	m.LoadBytes(addr+1, operand)
	if inst.Mode == cpu.REL {
		// Convert relative offset to absolute address.
		braddr := addr + uint16(inst.Length) + uint16(int8(operand[0]))
		operand = []byte{byte(braddr), byte(braddr >> 8)}
	}

	line = inst.Name
	if inst.Mode != cpu.IMP {
		line += " " + fmt.Sprintf(modeFormat[inst.Mode], hexString(operand))
	}
	next = addr + uint16(inst.Length)
	return line, next
}

// Bytes returns the raw bytes of the instruction at 'addr' as they would
// appear in a listing, e.g. "A9 05".
func Bytes(m cpu.Memory, set *cpu.InstructionSet, addr uint16) string {
	n := 1
	if inst := set.Lookup(m.LoadByte(addr)); inst != nil {
		n = int(inst.Length)
	}
	b := make([]byte, n)
	m.LoadBytes(addr, b)

	s := ""
	for i, v := range b {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%02X", v)
	}
	return s
}

// RegisterString returns a one-line display of the CPU registers.
func RegisterString(r *cpu.Registers) string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X PS=[%v] PC=%04X", r.A, r.X, r.Y, r.PS, r.PC)
}
