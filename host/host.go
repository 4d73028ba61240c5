// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host allows you to create a "host" that emulates a computer system
// with a 6502 CPU, 64K of memory, a built-in debugger, and other useful
// tools.
//
// Within the host it is possible to load a program image into memory, run
// and step through machine code, measure the number of CPU cycles elapsed,
// set address and data breakpoints, dump the contents of memory,
// disassemble the contents of memory, manipulate CPU registers and memory,
// and evaluate arbitrary expressions.
package host

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync/atomic"

	"github.com/beevik/cmd"
	"github.com/famicore/nes6502/cpu"
	"github.com/famicore/nes6502/disasm"
	"github.com/famicore/nes6502/internal/translate"
	"go.starlark.net/starlark"
)

var errQuit = errors.New("exiting program")

type displayFlags uint8

const (
	displayRegisters displayFlags = 1 << iota
	displayCycles
	displayAnnotations

	displayAll = displayRegisters | displayCycles | displayAnnotations
)

type state byte

const (
	stateProcessingCommands state = iota
	stateRunning
	stateBreakpoint
	stateHalted
	stateFault
	stateInterrupted
)

// A selection is a command looked up in the command tree together with the
// arguments that followed it on the line.
type selection struct {
	cmd  *cmd.Command
	args []string
}

// A Host represents a fully emulated 6502 system, 64K of memory, a built-in
// debugger, and other useful tools.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	mem         *cpu.FlatMemory
	cpu         *cpu.CPU
	debugger    *cpu.Debugger
	lastCmd     *selection
	state       state
	running     atomic.Bool
	interrupted atomic.Bool
	exprParser  *exprParser
	settings    *settings
	annotations map[uint16]string
}

// New creates a new 6502 host environment.
func New() *Host {
	h := &Host{
		state:       stateProcessingCommands,
		exprParser:  newExprParser(),
		settings:    newSettings(),
		annotations: make(map[uint16]string),
		output:      bufio.NewWriter(io.Discard),
	}

	// Create the emulated CPU and memory.
	h.mem = cpu.NewFlatMemory()
	h.cpu = cpu.NewCPU(cpu.DefaultInstructionSet(), h.mem)

	// Create a CPU debugger and attach it to the CPU.
	handler := newDebugHandler(h)
	h.debugger = cpu.NewDebugger(handler)
	h.cpu.AttachDebugger(h.debugger)
	h.cpu.AttachBrkHandler(handler)

	return h
}

// RunCommands accepts host commands from a reader and outputs the results
// to a writer. If the commands are interactive, a prompt is displayed while
// the host waits for the the next command to be entered. RunCommands
// returns true if a quit command was processed.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) bool {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive
	defer h.flush()

	if interactive {
		h.println()
		h.displayPC()
	}

	for {
		h.prompt()

		line, err := h.getLine()
		if err != nil {
			return false
		}
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}

		var c selection
		switch {
		case line != "":
			c.cmd, c.args, err = cmds.LookupCommand(line)
			switch {
			case errors.Is(err, cmd.ErrNotFound):
				h.printf("Command not found.\n")
				continue
			case errors.Is(err, cmd.ErrAmbiguous):
				h.printf("Command is ambiguous.\n")
				continue
			case err != nil:
				h.printf("ERROR: %v.\n", err)
				continue
			}
		case interactive && h.lastCmd != nil:
			c = *h.lastCmd
		}

		if c.cmd == nil {
			continue
		}
		h.lastCmd = &c

		entry := c.cmd.Data.(*command)
		if err := entry.handler(h, c.cmd, c.args); err != nil {
			return errors.Is(err, errQuit)
		}
	}
}

// LoadImage loads a binary program image from a file at the CPU's program
// origin and resets the CPU.
func (h *Host) LoadImage(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := h.cpu.Load(b); err != nil {
		return err
	}
	h.cpu.Reset()
	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	h.printf("Loaded '%s' at $%04X (%d bytes).\n", filepath.Base(filename), cpu.ProgramOrigin, len(b))
	return nil
}

// Break interrupts a running CPU. It may be called from any goroutine.
func (h *Host) Break() {
	if h.running.Load() {
		h.interrupted.Store(true)
	}
}

func (h *Host) printf(format string, args ...any) {
	translate.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.interactive {
		h.printf("* ")
	}
}

func (h *Host) displayPC() {
	if h.interactive {
		d, _ := h.disassemble(h.cpu.Reg.PC, displayAll)
		h.println(d)
	}
}

func (h *Host) cmdAnnotate(c *cmd.Command, args []string) error {
	if len(args) < 1 {
		h.displayHelpText(c)
		return nil
	}

	addr, err := h.parseExpr(args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	annotation := strings.Join(args[1:], " ")
	if annotation == "" {
		delete(h.annotations, addr)
		h.printf("Annotation removed at $%04X.\n", addr)
	} else {
		h.annotations[addr] = annotation
		h.printf("Annotation added at $%04X.\n", addr)
	}
	return nil
}

func (h *Host) cmdBreakpointList(c *cmd.Command, args []string) error {
	h.println("Addr  Enabled")
	h.println("----- -------")
	for _, b := range h.debugger.GetBreakpoints() {
		h.printf("$%04X %v\n", b.Address, !b.Disabled)
	}
	return nil
}

func (h *Host) cmdBreakpointAdd(c *cmd.Command, args []string) error {
	addr, ok := h.addressArg(c, args)
	if !ok {
		return nil
	}

	h.debugger.AddBreakpoint(addr)
	h.printf("Breakpoint added at $%04X.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointRemove(c *cmd.Command, args []string) error {
	addr, ok := h.addressArg(c, args)
	if !ok {
		return nil
	}

	if h.debugger.GetBreakpoint(addr) == nil {
		h.printf("No breakpoint was set on $%04X.\n", addr)
		return nil
	}

	h.debugger.RemoveBreakpoint(addr)
	h.printf("Breakpoint at $%04X removed.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointEnable(c *cmd.Command, args []string) error {
	return h.enableBreakpoint(c, args, true)
}

func (h *Host) cmdBreakpointDisable(c *cmd.Command, args []string) error {
	return h.enableBreakpoint(c, args, false)
}

func (h *Host) enableBreakpoint(c *cmd.Command, args []string, enable bool) error {
	addr, ok := h.addressArg(c, args)
	if !ok {
		return nil
	}

	b := h.debugger.GetBreakpoint(addr)
	if b == nil {
		h.printf("No breakpoint was set on $%04X.\n", addr)
		return nil
	}

	b.Disabled = !enable
	if enable {
		h.printf("Breakpoint at $%04X enabled.\n", addr)
	} else {
		h.printf("Breakpoint at $%04X disabled.\n", addr)
	}
	return nil
}

func (h *Host) cmdDataBreakpointList(c *cmd.Command, args []string) error {
	h.println("Addr  Enabled  Value")
	h.println("----- -------  -----")
	for _, b := range h.debugger.GetDataBreakpoints() {
		if b.Conditional {
			h.printf("$%04X %-5v    $%02X\n", b.Address, !b.Disabled, b.Value)
		} else {
			h.printf("$%04X %-5v    <none>\n", b.Address, !b.Disabled)
		}
	}
	return nil
}

func (h *Host) cmdDataBreakpointAdd(c *cmd.Command, args []string) error {
	addr, ok := h.addressArg(c, args)
	if !ok {
		return nil
	}

	if len(args) > 1 {
		value, err := h.parseByteExpr(args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.debugger.AddConditionalDataBreakpoint(addr, value)
		h.printf("Conditional data breakpoint added at $%04X for value $%02X.\n", addr, value)
	} else {
		h.debugger.AddDataBreakpoint(addr)
		h.printf("Data breakpoint added at $%04X.\n", addr)
	}

	return nil
}

func (h *Host) cmdDataBreakpointRemove(c *cmd.Command, args []string) error {
	addr, ok := h.addressArg(c, args)
	if !ok {
		return nil
	}

	if h.debugger.GetDataBreakpoint(addr) == nil {
		h.printf("No data breakpoint was set on $%04X.\n", addr)
		return nil
	}

	h.debugger.RemoveDataBreakpoint(addr)
	h.printf("Data breakpoint at $%04X removed.\n", addr)
	return nil
}

func (h *Host) cmdDataBreakpointEnable(c *cmd.Command, args []string) error {
	return h.enableDataBreakpoint(c, args, true)
}

func (h *Host) cmdDataBreakpointDisable(c *cmd.Command, args []string) error {
	return h.enableDataBreakpoint(c, args, false)
}

func (h *Host) enableDataBreakpoint(c *cmd.Command, args []string, enable bool) error {
	addr, ok := h.addressArg(c, args)
	if !ok {
		return nil
	}

	b := h.debugger.GetDataBreakpoint(addr)
	if b == nil {
		h.printf("No data breakpoint was set on $%04X.\n", addr)
		return nil
	}

	b.Disabled = !enable
	if enable {
		h.printf("Data breakpoint at $%04X enabled.\n", addr)
	} else {
		h.printf("Data breakpoint at $%04X disabled.\n", addr)
	}
	return nil
}

func (h *Host) cmdDisassemble(c *cmd.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"$"}
	}

	var addr uint16
	switch args[0] {
	case "$":
		addr = h.settings.NextDisasmAddr
		if addr == 0 {
			addr = h.cpu.Reg.PC
		}

	default:
		a, err := h.parseExpr(args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr = a
	}

	lines := h.settings.DisasmLines
	if len(args) > 1 {
		l, err := h.parseExpr(args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		lines = int(l)
	}

	for i := 0; i < lines; i++ {
		d, next := h.disassemble(addr, displayAnnotations)
		h.println(d)
		addr = next
	}

	h.settings.NextDisasmAddr = addr
	h.lastCmd = &selection{c, []string{"$", fmt.Sprintf("%d", lines)}}
	return nil
}

func (h *Host) cmdEval(c *cmd.Command, args []string) error {
	if len(args) < 1 {
		h.displayHelpText(c)
		return nil
	}

	expr := strings.Join(args, " ")
	v, err := h.parseExpr(expr)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.printf("$%04X\n", v)
	return nil
}

func (h *Host) cmdHelp(c *cmd.Command, args []string) error {
	if len(args) == 0 {
		h.displayCommands(rootGroup)
		return nil
	}

	if g, err := groupsTree.FindValue(strings.ToLower(args[0])); err == nil && len(args) == 1 {
		h.displayCommands(g)
		return nil
	}

	found, _, err := cmds.LookupCommand(strings.Join(args, " "))
	if err != nil {
		h.printf("Command not found.\n")
		return nil
	}

	entry := found.Data.(*command)
	if entry.usage != "" {
		h.printf("Syntax: %s\n\n", entry.usage)
	}
	switch {
	case entry.description != "":
		h.printf("Description:\n%s\n\n", indentWrap(3, entry.description))
	case entry.brief != "":
		h.printf("Description:\n%s.\n\n", indentWrap(3, entry.brief))
	}
	return nil
}

func (h *Host) cmdLoad(c *cmd.Command, args []string) error {
	if len(args) < 1 {
		h.displayHelpText(c)
		return nil
	}

	filename := args[0]
	if filepath.Ext(filename) == "" {
		filename += ".bin"
	}

	if err := h.LoadImage(filename); err != nil {
		h.printf("Failed to load '%s': %v\n", filepath.Base(filename), err)
		return nil
	}
	h.displayPC()
	return nil
}

func (h *Host) cmdMemoryDump(c *cmd.Command, args []string) error {
	if len(args) < 1 {
		h.displayHelpText(c)
		return nil
	}

	var addr uint16
	switch args[0] {
	case "$":
		addr = h.settings.NextMemDumpAddr
		if addr == 0 {
			addr = h.cpu.Reg.PC
		}

	default:
		a, err := h.parseExpr(args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr = a
	}

	bytes := uint16(h.settings.MemDumpBytes)
	if len(args) >= 2 {
		var err error
		bytes, err = h.parseExpr(args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
	}

	h.dumpMemory(addr, bytes)

	h.settings.NextMemDumpAddr = addr + bytes
	h.lastCmd = &selection{c, []string{"$", fmt.Sprintf("%d", bytes)}}
	return nil
}

func (h *Host) cmdMemorySet(c *cmd.Command, args []string) error {
	if len(args) < 2 {
		h.displayHelpText(c)
		return nil
	}

	addr, err := h.parseExpr(args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	values := make([]byte, 0, len(args)-1)
	for _, s := range args[1:] {
		v, err := h.parseByteExpr(s)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		values = append(values, v)
	}

	h.cpu.Mem.StoreBytes(addr, values)
	h.dumpMemory(addr, uint16(len(values)))
	return nil
}

func (h *Host) cmdQuit(c *cmd.Command, args []string) error {
	return errQuit
}

func (h *Host) cmdRegisters(c *cmd.Command, args []string) error {
	d, _ := h.disassemble(h.cpu.Reg.PC, displayAll)
	h.println(d)
	return nil
}

func (h *Host) cmdReset(c *cmd.Command, args []string) error {
	h.cpu.Reset()
	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	h.printf("CPU reset. PC=$%04X.\n", h.cpu.Reg.PC)
	return nil
}

func (h *Host) cmdRun(c *cmd.Command, args []string) error {
	if len(args) > 0 {
		pc, err := h.parseExpr(args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.cpu.SetPC(pc)
	}

	h.printf("Running from $%04X. Press ctrl-C to break.\n", h.cpu.Reg.PC)

	h.beginRun()
	for h.state == stateRunning {
		h.step()
	}
	h.endRun()

	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	return nil
}

func (h *Host) cmdSet(c *cmd.Command, args []string) error {
	switch len(args) {
	case 0:
		h.println("Variables:")
		h.settings.Display(h.output)
		h.flush()

	case 1:
		h.displayHelpText(c)

	default:
		key, value := strings.ToLower(args[0]), strings.Join(args[1:], " ")
		v, errV := h.exprParser.Parse(value, h)

		// Setting a register?
		if errV == nil {
			if bits, ok := registerBits[key]; ok {
				if v, errV = fitBits(v, bits, value); errV != nil {
					h.printf("%v\n", errV)
					return nil
				}
			}

			sz := -1
			reg := &h.cpu.Reg
			switch key {
			case "a":
				reg.A, sz = byte(v), 1
			case "x":
				reg.X, sz = byte(v), 1
			case "y":
				reg.Y, sz = byte(v), 1
			case "ps":
				reg.PS, sz = cpu.Status(v), 1
			case ".":
				key = "pc"
				fallthrough
			case "pc":
				reg.PC, sz = uint16(v), 2
			default:
				if flag, ok := flagNames[key]; ok {
					reg.SetFlag(flag, v != 0)
					sz = 0
				}
			}

			switch sz {
			case 0:
				h.printf("Flag %s set to %v.\n", strings.ToUpper(key), v != 0)
				return nil
			case 1:
				h.printf("Register %s set to $%02X.\n", strings.ToUpper(key), byte(v))
				return nil
			case 2:
				h.printf("Register %s set to $%04X.\n", strings.ToUpper(key), uint16(v))
				return nil
			}
		}

		// Setting a host setting?
		var err error
		switch h.settings.Kind(key) {
		case reflect.Invalid:
			err = fmt.Errorf("setting '%s' not found", key)
		case reflect.Bool:
			var b bool
			b, err = stringToBool(value)
			if err == nil {
				err = h.settings.Set(key, b)
			}
		default:
			err = errV
			if err == nil {
				err = h.settings.Set(key, v)
			}
		}

		if err == nil {
			h.printf("Setting updated.\n")
		} else {
			h.printf("%v\n", err)
		}

		h.onSettingsUpdate()
	}

	return nil
}

var registerBits = map[string]uint{
	"a":  8,
	"x":  8,
	"y":  8,
	"ps": 8,
	"pc": 16,
	".":  16,
}

var flagNames = map[string]cpu.Status{
	"carry":     cpu.Carry,
	"zero":      cpu.Zero,
	"interrupt": cpu.InterruptDisable,
	"decimal":   cpu.Decimal,
	"overflow":  cpu.Overflow,
	"negative":  cpu.Negative,
}

func (h *Host) cmdStep(c *cmd.Command, args []string) error {
	// Parse the number of steps.
	count := 1
	if len(args) > 0 {
		n, err := h.parseExpr(args[0])
		if err == nil {
			count = int(n)
		}
	}

	// Step the CPU count times.
	h.beginRun()
	for i := count - 1; i >= 0 && h.state == stateRunning; i-- {
		h.step()
		switch {
		case i == h.settings.MaxStepLines:
			h.println("...")
		case i < h.settings.MaxStepLines:
			h.displayPC()
		}
	}
	h.endRun()

	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	return nil
}

func (h *Host) beginRun() {
	h.state = stateRunning
	h.cpu.Halted = false
	h.interrupted.Store(false)
	h.running.Store(true)
}

func (h *Host) endRun() {
	h.running.Store(false)
	h.state = stateProcessingCommands
}

// Execute a single instruction, updating the host state if the CPU halts,
// fails or is interrupted.
func (h *Host) step() {
	if h.interrupted.Swap(false) {
		h.state = stateInterrupted
		h.printf("Interrupted at $%04X.\n", h.cpu.Reg.PC)
		return
	}

	if h.settings.Trace {
		d, _ := h.disassemble(h.cpu.Reg.PC, displayRegisters)
		h.println(d)
	}

	if err := h.cpu.Step(); err != nil {
		h.state = stateFault
		h.printf("ERROR: %v.\n", err)
	}
}

func (h *Host) onSettingsUpdate() {
	h.exprParser.hexMode = h.settings.HexMode
}

func (h *Host) parseExpr(expr string) (uint16, error) {
	v, err := h.parseExprBits(expr, 16)
	return uint16(v), err
}

func (h *Host) parseByteExpr(expr string) (byte, error) {
	v, err := h.parseExprBits(expr, 8)
	return byte(v), err
}

// Evaluate an expression that must fit in the given number of bits.
// Negative values are stored in two's complement form.
func (h *Host) parseExprBits(expr string, bits uint) (int64, error) {
	v, err := h.exprParser.Parse(expr, h)
	if err != nil {
		return 0, err
	}
	return fitBits(v, bits, expr)
}

func fitBits(v int64, bits uint, expr string) (int64, error) {
	limit := int64(1) << bits
	if v >= limit || v < -limit/2 {
		return 0, fmt.Errorf("%w: %s", errExprRange, expr)
	}
	if v < 0 {
		v += limit
	}
	return v, nil
}

// Parse the first command argument as an address, displaying help if it
// is missing.
func (h *Host) addressArg(c *cmd.Command, args []string) (uint16, bool) {
	if len(args) < 1 {
		h.displayHelpText(c)
		return 0, false
	}

	addr, err := h.parseExpr(args[0])
	if err != nil {
		h.printf("%v\n", err)
		return 0, false
	}
	return addr, true
}

// identifiers implements the resolver interface for expressions.
func (h *Host) identifiers() starlark.StringDict {
	r := &h.cpu.Reg
	return starlark.StringDict{
		"a":  starlark.MakeInt(int(r.A)),
		"x":  starlark.MakeInt(int(r.X)),
		"y":  starlark.MakeInt(int(r.Y)),
		"ps": starlark.MakeInt(int(r.PS)),
		"pc": starlark.MakeInt(int(r.PC)),
	}
}

func (h *Host) disassemble(addr uint16, flags displayFlags) (str string, next uint16) {
	var line string
	line, next = disasm.Disassemble(h.cpu.Mem, h.cpu.InstSet, addr)
	code := disasm.Bytes(h.cpu.Mem, h.cpu.InstSet, addr)

	str = fmt.Sprintf("%04X-   %-8s    %-15s", addr, code, line)

	if (flags & displayRegisters) != 0 {
		str += " " + disasm.RegisterString(&h.cpu.Reg)
	}

	if (flags & displayCycles) != 0 {
		str += fmt.Sprintf(" C=%d", h.cpu.Cycles)
	}

	if (flags & displayAnnotations) != 0 {
		if anno, ok := h.annotations[addr]; ok {
			str += " ; " + anno
		}
	}

	return str, next
}

func (h *Host) dumpMemory(addr0, bytes uint16) {
	if bytes == 0 {
		return
	}

	addr1 := addr0 + bytes - 1
	if addr1 < addr0 {
		addr1 = 0xffff
	}

	buf := []byte("    -" + strings.Repeat(" ", 35))

	// Don't align display for short dumps.
	if addr1-addr0 < 8 {
		addrToBuf(addr0, buf[0:4])
		for a, c1, c2 := uint32(addr0), 6, 32; a <= uint32(addr1); a, c1, c2 = a+1, c1+3, c2+1 {
			m := h.cpu.Mem.LoadByte(uint16(a))
			byteToBuf(m, buf[c1:c1+2])
			buf[c2] = toPrintableChar(m)
		}
		h.println(strings.TrimRight(string(buf), " "))
		return
	}

	// Align addr0 and addr1 to 8-byte boundaries.
	start := uint32(addr0) & 0xfff8
	stop := (uint32(addr1) + 8) & 0xffff8
	if stop > 0x10000 {
		stop = 0x10000
	}

	a := uint16(start)
	for r := start; r < stop; r += 8 {
		addrToBuf(a, buf[0:4])
		for c1, c2 := 6, 32; c1 < 29; c1, c2, a = c1+3, c2+1, a+1 {
			if a >= addr0 && a <= addr1 {
				m := h.cpu.Mem.LoadByte(a)
				byteToBuf(m, buf[c1:c1+2])
				buf[c2] = toPrintableChar(m)
			} else {
				buf[c1] = ' '
				buf[c1+1] = ' '
				buf[c2] = ' '
			}
		}
		h.println(strings.TrimRight(string(buf), " "))
	}
}

func (h *Host) displayHelpText(c *cmd.Command) {
	entry := c.Data.(*command)
	if entry.usage != "" {
		h.printf("Syntax: %s\n", entry.usage)
	} else {
		h.println("<no help text>")
	}
}

func (h *Host) displayCommands(g *commandGroup) {
	h.printf("%s commands:\n", g.title)
	for _, c := range g.commands {
		if c.brief != "" {
			h.printf("    %-15s  %s\n", c.name, c.brief)
		}
	}
	for _, sub := range g.groups {
		h.printf("    %-15s  %s\n", sub.title, sub.brief)
	}
}

func (h *Host) onBreakpoint(cpu *cpu.CPU, b *cpu.Breakpoint) {
	h.state = stateBreakpoint
	h.printf("Breakpoint hit at $%04X.\n", b.Address)
	h.displayPC()
}

func (h *Host) onDataBreakpoint(cpu *cpu.CPU, b *cpu.DataBreakpoint) {
	h.printf("Data breakpoint hit on address $%04X.\n", b.Address)

	h.state = stateBreakpoint

	if h.interactive {
		d, _ := h.disassemble(cpu.LastPC, displayAll)
		h.println(d)
	}
}

func (h *Host) onBrk(cpu *cpu.CPU) {
	h.state = stateHalted
	h.printf("BRK at $%04X.\n", cpu.LastPC)
}
