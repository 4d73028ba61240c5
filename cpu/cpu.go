// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu implements a 6502 CPU instruction
// set and emulator.
package cpu

// BrkHandler is an interface implemented by types that wish to be notified
// when a BRK instruction halts the CPU.
type BrkHandler interface {
	OnBrk(cpu *CPU)
}

// CPU represents a single 6502 CPU. It contains a pointer to the
// memory associated with the CPU.
type CPU struct {
	Reg        Registers       // CPU registers
	Mem        Memory          // assigned memory
	Cycles     uint64          // total executed CPU cycles
	LastPC     uint16          // Previous program counter
	InstSet    *InstructionSet // Instruction set used by the CPU
	Halted     bool            // set when a BRK instruction executes
	debugger   *Debugger
	brkHandler BrkHandler
	storeByte  func(cpu *CPU, addr uint16, v byte)
}

// Program image and reset vector locations
const (
	ProgramOrigin = 0x8000
	ResetVector   = 0xfffc
)

// NewCPU creates an emulated 6502 CPU bound to the specified memory. The
// CPU decodes opcodes using 'set'; if set is nil, the default instruction
// set is used.
func NewCPU(set *InstructionSet, m Memory) *CPU {
	if set == nil {
		set = DefaultInstructionSet()
	}

	cpu := &CPU{
		Mem:       m,
		InstSet:   set,
		storeByte: (*CPU).storeByteNormal,
	}

	cpu.Reg.Init()
	return cpu
}

// SetPC updates the CPU program counter to 'addr'.
func (cpu *CPU) SetPC(addr uint16) {
	cpu.Reg.PC = addr
}

// GetInstruction returns the instruction at the requested address, or nil
// if the byte there is not a known opcode.
func (cpu *CPU) GetInstruction(addr uint16) *Instruction {
	opcode := cpu.Mem.LoadByte(addr)
	return cpu.InstSet.Lookup(opcode)
}

// Load copies a program image into memory at ProgramOrigin and points the
// reset vector at it.
func (cpu *CPU) Load(program []byte) error {
	if len(program) > 0x10000-ProgramOrigin {
		return ErrProgramTooLarge
	}
	cpu.Mem.StoreBytes(ProgramOrigin, program)
	cpu.Mem.StoreAddress(ResetVector, ProgramOrigin)
	return nil
}

// Reset clears the A, X, Y and status registers and loads the program
// counter from the reset vector.
func (cpu *CPU) Reset() {
	cpu.Reg.A = 0
	cpu.Reg.X = 0
	cpu.Reg.Y = 0
	cpu.Reg.PS = 0
	cpu.Reg.PC = cpu.Mem.LoadAddress(ResetVector)
	cpu.Halted = false
}

// LoadAndRun loads a program, resets the CPU and runs it until BRK or a
// fatal error.
func (cpu *CPU) LoadAndRun(program []byte) error {
	if err := cpu.Load(program); err != nil {
		return err
	}
	cpu.Reset()
	return cpu.Run()
}

// Run steps the CPU until a BRK instruction executes or a step fails.
// Breakpoints are reported to an attached debugger but do not stop Run.
func (cpu *CPU) Run() error {
	cpu.Halted = false
	for !cpu.Halted {
		if err := cpu.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step the cpu by one instruction. A failed step returns an *ExecError and
// leaves the registers as they were before the step.
func (cpu *CPU) Step() error {
	pc := cpu.Reg.PC

	// Grab the next opcode at the current PC
	opcode := cpu.Mem.LoadByte(pc)

	// Look up the instruction data for the opcode
	inst := cpu.InstSet.Lookup(opcode)
	switch {
	case inst == nil:
		return &ExecError{Opcode: opcode, PC: pc, Err: ErrUnrecognizedOpcode}
	case inst.fn == nil:
		return &ExecError{Opcode: opcode, PC: pc, Err: ErrNotImplemented}
	}

	// Advance past the opcode. The instruction's operand, if any, now sits
	// at the PC.
	cpu.LastPC = pc
	cpu.Reg.PC++
	operandPC := cpu.Reg.PC

	// Execute the instruction
	if err := inst.fn(cpu, inst); err != nil {
		cpu.Reg.PC = pc
		return &ExecError{Opcode: opcode, PC: pc, Err: err}
	}

	// Skip the operand unless the instruction transferred control.
	if cpu.Reg.PC == operandPC {
		cpu.Reg.PC += uint16(inst.Length) - 1
	}

	cpu.Cycles += uint64(inst.Cycles)

	// Update the debugger so it handle breakpoints.
	if cpu.debugger != nil {
		cpu.debugger.onUpdatePC(cpu, cpu.Reg.PC)
	}
	return nil
}

// AttachBrkHandler attaches a handler that is called whenever the BRK
// instruction is executed.
func (cpu *CPU) AttachBrkHandler(handler BrkHandler) {
	cpu.brkHandler = handler
}

// AttachDebugger attaches a debugger to the CPU. The debugger receives
// notifications whenever the CPU executes an instruction or stores a byte
// to memory.
func (cpu *CPU) AttachDebugger(debugger *Debugger) {
	cpu.debugger = debugger
	cpu.storeByte = (*CPU).storeByteDebugger
}

// DetachDebugger detaches the currently debugger from the CPU.
func (cpu *CPU) DetachDebugger() {
	cpu.debugger = nil
	cpu.storeByte = (*CPU).storeByteNormal
}

// Store the byte value 'v' at the address 'addr'.
func (cpu *CPU) storeByteNormal(addr uint16, v byte) {
	cpu.Mem.StoreByte(addr, v)
}

// Store the byte value 'v' at the address 'addr'.
func (cpu *CPU) storeByteDebugger(addr uint16, v byte) {
	cpu.debugger.onDataStore(cpu, addr, v)
	cpu.Mem.StoreByte(addr, v)
}
