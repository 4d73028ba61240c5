// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"errors"
	"fmt"
)

// Errors
var (
	// Fatal execution conditions, reported through ExecError.
	ErrUnrecognizedOpcode = errors.New("unrecognized opcode")
	ErrNotImplemented     = errors.New("opcode not implemented")
	ErrUnsupportedMode    = errors.New("unsupported addressing mode")

	ErrProgramTooLarge = errors.New("program does not fit above the load address")

	// Instruction table errors
	ErrOpcodeDuplicate = errors.New("opcode defined more than once")
	ErrOpcodeLength    = errors.New("opcode length does not match addressing mode")
	ErrOpcodeMode      = errors.New("opcode mode has no effective address")
)

// An ExecError reports a fatal condition raised while stepping the CPU.
// It names the offending opcode and the address it was fetched from, and
// unwraps to one of ErrUnrecognizedOpcode, ErrNotImplemented or
// ErrUnsupportedMode.
type ExecError struct {
	Opcode byte
	PC     uint16
	Err    error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%v: opcode $%02X at $%04X", e.Err, e.Opcode, e.PC)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// A TableError reports an invalid entry in an opcode table.
type TableError struct {
	Info OpcodeInfo
	Err  error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("%s %v ($%02X): %v", e.Info.Name, e.Info.Mode, e.Info.Opcode, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}
