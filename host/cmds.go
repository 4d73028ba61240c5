// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"strings"

	"github.com/beevik/cmd"
	"github.com/beevik/prefixtree/v2"
)

// A command is stored as the data of each command tree entry. It carries
// the host callback along with the text displayed by the help command.
type command struct {
	name        string
	brief       string
	description string
	usage       string
	handler     func(*Host, *cmd.Command, []string) error
}

// A commandGroup is the help listing for the root tree or one subtree.
type commandGroup struct {
	title    string
	brief    string
	commands []*command
	groups   []*commandGroup
}

var (
	cmds       *cmd.Tree
	rootGroup  = &commandGroup{title: "nes6502"}
	groupsTree = prefixtree.New[*commandGroup]()
)

func addCommand(t *cmd.Tree, g *commandGroup, d cmd.CommandDescriptor) {
	c := &command{
		name:        d.Name,
		brief:       d.Brief,
		description: d.Description,
		usage:       d.Usage,
		handler:     d.Data.(func(*Host, *cmd.Command, []string) error),
	}
	d.Data = c
	t.AddCommand(d)
	g.commands = append(g.commands, c)
}

func addSubtree(t *cmd.Tree, d cmd.TreeDescriptor) (*cmd.Tree, *commandGroup) {
	g := &commandGroup{title: d.Name, brief: d.Brief}
	rootGroup.groups = append(rootGroup.groups, g)
	groupsTree.Add(strings.ToLower(d.Name), g)
	return t.AddSubtree(d), g
}

func init() {
	root := cmd.NewTree(cmd.TreeDescriptor{Name: "nes6502"})
	addCommand(root, rootGroup, cmd.CommandDescriptor{
		Name:        "help",
		Description: "Display help for a command.",
		Usage:       "help [<command>]",
		Data:        (*Host).cmdHelp,
	})
	addCommand(root, rootGroup, cmd.CommandDescriptor{
		Name:  "annotate",
		Brief: "Annotate an address",
		Description: "Provide a code annotation at a memory address." +
			" When disassembling code at this address, the annotation will" +
			" be displayed.",
		Usage: "annotate <address> <string>",
		Data:  (*Host).cmdAnnotate,
	})

	// Breakpoint commands
	bp, bpg := addSubtree(root, cmd.TreeDescriptor{Name: "breakpoint", Brief: "Breakpoint commands"})
	addCommand(bp, bpg, cmd.CommandDescriptor{
		Name:        "list",
		Brief:       "List breakpoints",
		Description: "List all current breakpoints.",
		Usage:       "breakpoint list",
		Data:        (*Host).cmdBreakpointList,
	})
	addCommand(bp, bpg, cmd.CommandDescriptor{
		Name:  "add",
		Brief: "Add a breakpoint",
		Description: "Add a breakpoint at the specified address." +
			" The breakpoint starts enabled.",
		Usage: "breakpoint add <address>",
		Data:  (*Host).cmdBreakpointAdd,
	})
	addCommand(bp, bpg, cmd.CommandDescriptor{
		Name:        "remove",
		Brief:       "Remove a breakpoint",
		Description: "Remove a breakpoint at the specified address.",
		Usage:       "breakpoint remove <address>",
		Data:        (*Host).cmdBreakpointRemove,
	})
	addCommand(bp, bpg, cmd.CommandDescriptor{
		Name:        "enable",
		Brief:       "Enable a breakpoint",
		Description: "Enable a previously added breakpoint.",
		Usage:       "breakpoint enable <address>",
		Data:        (*Host).cmdBreakpointEnable,
	})
	addCommand(bp, bpg, cmd.CommandDescriptor{
		Name:  "disable",
		Brief: "Disable a breakpoint",
		Description: "Disable a previously added breakpoint. This" +
			" prevents the breakpoint from being hit when running the" +
			" CPU.",
		Usage: "breakpoint disable <address>",
		Data:  (*Host).cmdBreakpointDisable,
	})

	// Data breakpoint commands
	db, dbg := addSubtree(root, cmd.TreeDescriptor{Name: "databreakpoint", Brief: "Data breakpoint commands"})
	addCommand(db, dbg, cmd.CommandDescriptor{
		Name:        "list",
		Brief:       "List data breakpoints",
		Description: "List all current data breakpoints.",
		Usage:       "databreakpoint list",
		Data:        (*Host).cmdDataBreakpointList,
	})
	addCommand(db, dbg, cmd.CommandDescriptor{
		Name:  "add",
		Brief: "Add a data breakpoint",
		Description: "Add a new data breakpoint at the specified" +
			" memory address. When the CPU stores data at this address," +
			" the breakpoint will stop the CPU. Optionally, a byte" +
			" value may be specified, and the CPU will stop only when" +
			" this value is stored. The data breakpoint starts enabled.",
		Usage: "databreakpoint add <address> [<value>]",
		Data:  (*Host).cmdDataBreakpointAdd,
	})
	addCommand(db, dbg, cmd.CommandDescriptor{
		Name:        "remove",
		Brief:       "Remove a data breakpoint",
		Description: "Remove a previously added data breakpoint.",
		Usage:       "databreakpoint remove <address>",
		Data:        (*Host).cmdDataBreakpointRemove,
	})
	addCommand(db, dbg, cmd.CommandDescriptor{
		Name:        "enable",
		Brief:       "Enable a data breakpoint",
		Description: "Enable a previously added data breakpoint.",
		Usage:       "databreakpoint enable <address>",
		Data:        (*Host).cmdDataBreakpointEnable,
	})
	addCommand(db, dbg, cmd.CommandDescriptor{
		Name:        "disable",
		Brief:       "Disable a data breakpoint",
		Description: "Disable a previously added data breakpoint.",
		Usage:       "databreakpoint disable <address>",
		Data:        (*Host).cmdDataBreakpointDisable,
	})

	addCommand(root, rootGroup, cmd.CommandDescriptor{
		Name:  "disassemble",
		Brief: "Disassemble code",
		Description: "Disassemble machine code starting at the requested" +
			" address. The number of instruction lines to disassemble may be" +
			" specified as an option. If no address is specified, the" +
			" disassembly continues from where the last disassembly left off.",
		Usage: "disassemble [<address>] [<lines>]",
		Data:  (*Host).cmdDisassemble,
	})
	addCommand(root, rootGroup, cmd.CommandDescriptor{
		Name:  "evaluate",
		Brief: "Evaluate an expression",
		Description: "Evaluate an expression and display the result." +
			" Registers a, x, y, pc and ps may be used in the expression.",
		Usage: "evaluate <expression>",
		Data:  (*Host).cmdEval,
	})
	addCommand(root, rootGroup, cmd.CommandDescriptor{
		Name:  "load",
		Brief: "Load a binary image",
		Description: "Load the contents of a binary image into memory at" +
			" $8000, point the reset vector at it and reset the CPU. If the" +
			" filename has no extension, '.bin' is assumed.",
		Usage: "load <filename>",
		Data:  (*Host).cmdLoad,
	})

	// Memory commands
	me, meg := addSubtree(root, cmd.TreeDescriptor{Name: "memory", Brief: "Memory commands"})
	addCommand(me, meg, cmd.CommandDescriptor{
		Name:  "dump",
		Brief: "Dump memory at address",
		Description: "Dump the contents of memory starting from the" +
			" specified address. The number of bytes to dump may be" +
			" specified as an option.",
		Usage: "memory dump <address> [<bytes>]",
		Data:  (*Host).cmdMemoryDump,
	})
	addCommand(me, meg, cmd.CommandDescriptor{
		Name:  "set",
		Brief: "Set memory at address",
		Description: "Set the contents of memory starting from the specified" +
			" address. The values to assign should be a series of" +
			" space-separated byte values.",
		Usage: "memory set <address> <byte> [<byte> ...]",
		Data:  (*Host).cmdMemorySet,
	})

	addCommand(root, rootGroup, cmd.CommandDescriptor{
		Name:        "quit",
		Brief:       "Quit the program",
		Description: "Quit the program.",
		Usage:       "quit",
		Data:        (*Host).cmdQuit,
	})
	addCommand(root, rootGroup, cmd.CommandDescriptor{
		Name:  "registers",
		Brief: "Display register contents",
		Description: "Display the current contents of all CPU registers, and" +
			" disassemble the instruction at the current program counter.",
		Usage: "registers",
		Data:  (*Host).cmdRegisters,
	})
	addCommand(root, rootGroup, cmd.CommandDescriptor{
		Name:        "reset",
		Brief:       "Reset the CPU",
		Description: "Clear the registers and load the program counter from the reset vector.",
		Usage:       "reset",
		Data:        (*Host).cmdReset,
	})
	addCommand(root, rootGroup, cmd.CommandDescriptor{
		Name:  "run",
		Brief: "Run the CPU",
		Description: "Run the CPU until a BRK instruction, a breakpoint or" +
			" an execution error. Press ctrl-C to break. An optional" +
			" address sets the program counter first.",
		Usage: "run [<address>]",
		Data:  (*Host).cmdRun,
	})
	addCommand(root, rootGroup, cmd.CommandDescriptor{
		Name:  "set",
		Brief: "Set a configuration variable",
		Description: "Set the value of a configuration variable or CPU" +
			" register. To see the current values of all configuration" +
			" variables, type set without any arguments.",
		Usage: "set [<var> <value>]",
		Data:  (*Host).cmdSet,
	})
	addCommand(root, rootGroup, cmd.CommandDescriptor{
		Name:  "step",
		Brief: "Step the CPU",
		Description: "Step the CPU by a single instruction. If a count is" +
			" specified, step the CPU that many times.",
		Usage: "step [<count>]",
		Data:  (*Host).cmdStep,
	})

	root.AddShortcut("ba", "breakpoint add")
	root.AddShortcut("br", "breakpoint remove")
	root.AddShortcut("bl", "breakpoint list")
	root.AddShortcut("be", "breakpoint enable")
	root.AddShortcut("bd", "breakpoint disable")
	root.AddShortcut("d", "disassemble")
	root.AddShortcut("dbl", "databreakpoint list")
	root.AddShortcut("dba", "databreakpoint add")
	root.AddShortcut("dbr", "databreakpoint remove")
	root.AddShortcut("dbe", "databreakpoint enable")
	root.AddShortcut("dbd", "databreakpoint disable")
	root.AddShortcut("e", "evaluate")
	root.AddShortcut("l", "load")
	root.AddShortcut("m", "memory dump")
	root.AddShortcut("ms", "memory set")
	root.AddShortcut("r", "registers")
	root.AddShortcut("s", "step")
	root.AddShortcut("?", "help")
	root.AddShortcut(".", "registers")

	cmds = root
}
