// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"cmp"
	"maps"
	"slices"
)

// A Debugger observes an attached CPU. After each instruction it checks the
// new PC against its execution breakpoints, and on each store through the
// CPU it checks the target address against its data breakpoints. A hit is
// passed to the BreakpointHandler and nothing else happens: Run and Step
// keep going, so a caller that wants to stop must step the CPU itself and
// check for the hit between instructions.
type Debugger struct {
	breakpointHandler BreakpointHandler
	breakpoints       map[uint16]*Breakpoint
	dataBreakpoints   map[uint16]*DataBreakpoint
}

// BreakpointHandler receives breakpoint hits from a Debugger. Calls happen
// on the goroutine executing the CPU, inside the instruction that caused
// them.
type BreakpointHandler interface {
	OnBreakpoint(cpu *CPU, b *Breakpoint)
	OnDataBreakpoint(cpu *CPU, b *DataBreakpoint)
}

// A Breakpoint is reported when an instruction leaves PC at Address.
type Breakpoint struct {
	Address  uint16
	Disabled bool
}

// A DataBreakpoint is reported when a byte is stored at Address. When
// Conditional is set, only stores of Value are reported.
type DataBreakpoint struct {
	Address     uint16
	Disabled    bool
	Conditional bool
	Value       byte
}

// NewDebugger returns a debugger with no breakpoints that reports hits to
// breakpointHandler, which may be nil.
func NewDebugger(breakpointHandler BreakpointHandler) *Debugger {
	return &Debugger{
		breakpointHandler: breakpointHandler,
		breakpoints:       make(map[uint16]*Breakpoint),
		dataBreakpoints:   make(map[uint16]*DataBreakpoint),
	}
}

// GetBreakpoint returns the execution breakpoint at addr, or nil.
func (d *Debugger) GetBreakpoint(addr uint16) *Breakpoint {
	return d.breakpoints[addr]
}

// GetBreakpoints lists the execution breakpoints in address order.
func (d *Debugger) GetBreakpoints() []*Breakpoint {
	return byAddress(d.breakpoints, func(b *Breakpoint) uint16 { return b.Address })
}

// AddBreakpoint sets an enabled execution breakpoint at addr. An existing
// breakpoint at addr is replaced.
func (d *Debugger) AddBreakpoint(addr uint16) *Breakpoint {
	b := &Breakpoint{Address: addr}
	d.breakpoints[addr] = b
	return b
}

// RemoveBreakpoint clears the execution breakpoint at addr, if any.
func (d *Debugger) RemoveBreakpoint(addr uint16) {
	delete(d.breakpoints, addr)
}

// GetDataBreakpoint returns the data breakpoint at addr, or nil.
func (d *Debugger) GetDataBreakpoint(addr uint16) *DataBreakpoint {
	return d.dataBreakpoints[addr]
}

// GetDataBreakpoints lists the data breakpoints in address order.
func (d *Debugger) GetDataBreakpoints() []*DataBreakpoint {
	return byAddress(d.dataBreakpoints, func(b *DataBreakpoint) uint16 { return b.Address })
}

// AddDataBreakpoint reports every store to addr.
func (d *Debugger) AddDataBreakpoint(addr uint16) *DataBreakpoint {
	return d.setDataBreakpoint(&DataBreakpoint{Address: addr})
}

// AddConditionalDataBreakpoint reports stores of value to addr.
func (d *Debugger) AddConditionalDataBreakpoint(addr uint16, value byte) *DataBreakpoint {
	return d.setDataBreakpoint(&DataBreakpoint{Address: addr, Conditional: true, Value: value})
}

func (d *Debugger) setDataBreakpoint(b *DataBreakpoint) *DataBreakpoint {
	d.dataBreakpoints[b.Address] = b
	return b
}

// RemoveDataBreakpoint clears the data breakpoint at addr, if any.
func (d *Debugger) RemoveDataBreakpoint(addr uint16) {
	delete(d.dataBreakpoints, addr)
}

func byAddress[B any](m map[uint16]B, addr func(B) uint16) []B {
	return slices.SortedFunc(maps.Values(m), func(a, b B) int {
		return cmp.Compare(addr(a), addr(b))
	})
}

func (d *Debugger) onUpdatePC(cpu *CPU, pc uint16) {
	if d.breakpointHandler == nil {
		return
	}
	if b := d.breakpoints[pc]; b != nil && !b.Disabled {
		d.breakpointHandler.OnBreakpoint(cpu, b)
	}
}

func (d *Debugger) onDataStore(cpu *CPU, addr uint16, v byte) {
	if d.breakpointHandler == nil {
		return
	}
	b := d.dataBreakpoints[addr]
	if b == nil || b.Disabled || (b.Conditional && b.Value != v) {
		return
	}
	d.breakpointHandler.OnDataBreakpoint(cpu, b)
}
