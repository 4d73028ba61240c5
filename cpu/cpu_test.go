package cpu_test

import (
	"errors"
	"testing"

	"github.com/famicore/nes6502/cpu"
)

func newCPU() *cpu.CPU {
	return cpu.NewCPU(cpu.DefaultInstructionSet(), cpu.NewFlatMemory())
}

// loadCPU loads the program and resets the CPU without running it, so the
// caller can seed registers and memory first.
func loadCPU(t *testing.T, program []byte) *cpu.CPU {
	t.Helper()
	c := newCPU()
	if err := c.Load(program); err != nil {
		t.Fatal(err)
	}
	c.Reset()
	return c
}

func runCPU(t *testing.T, c *cpu.CPU) {
	t.Helper()
	if err := c.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}

func stepCPU(t *testing.T, c *cpu.CPU, steps int) {
	t.Helper()
	for i := 0; i < steps; i++ {
		if err := c.Step(); err != nil {
			t.Fatalf("Step %d failed: %v", i, err)
		}
	}
}

func expectPC(t *testing.T, c *cpu.CPU, pc uint16) {
	t.Helper()
	if c.Reg.PC != pc {
		t.Errorf("PC incorrect. exp: $%04X, got: $%04X", pc, c.Reg.PC)
	}
}

func expectCycles(t *testing.T, c *cpu.CPU, cycles uint64) {
	t.Helper()
	if c.Cycles != cycles {
		t.Errorf("Cycles incorrect. exp: %d, got: %d", cycles, c.Cycles)
	}
}

func expectACC(t *testing.T, c *cpu.CPU, acc byte) {
	t.Helper()
	if c.Reg.A != acc {
		t.Errorf("Accumulator incorrect. exp: $%02X, got: $%02X", acc, c.Reg.A)
	}
}

func expectX(t *testing.T, c *cpu.CPU, x byte) {
	t.Helper()
	if c.Reg.X != x {
		t.Errorf("X register incorrect. exp: $%02X, got: $%02X", x, c.Reg.X)
	}
}

func expectY(t *testing.T, c *cpu.CPU, y byte) {
	t.Helper()
	if c.Reg.Y != y {
		t.Errorf("Y register incorrect. exp: $%02X, got: $%02X", y, c.Reg.Y)
	}
}

func expectPS(t *testing.T, c *cpu.CPU, ps cpu.Status) {
	t.Helper()
	if c.Reg.PS != ps {
		t.Errorf("Status incorrect. exp: %v, got: %v", ps, c.Reg.PS)
	}
}

func expectFlag(t *testing.T, c *cpu.CPU, flag cpu.Status, on bool) {
	t.Helper()
	if c.Reg.IsSet(flag) != on {
		t.Errorf("Flag %v incorrect. exp: %v, got: %v", flag, on, c.Reg.IsSet(flag))
	}
}

func expectMem(t *testing.T, c *cpu.CPU, addr uint16, v byte) {
	t.Helper()
	got := c.Mem.LoadByte(addr)
	if got != v {
		t.Errorf("Memory at $%04X incorrect. exp: $%02X, got: $%02X", addr, v, got)
	}
}

func TestLoadAndRunImmediate(t *testing.T) {
	c := newCPU()
	if err := c.LoadAndRun([]byte{0xa9, 0x05, 0x00}); err != nil {
		t.Fatal(err)
	}
	expectACC(t, c, 0x05)
	expectFlag(t, c, cpu.Zero, false)
	expectFlag(t, c, cpu.Negative, false)
	expectPC(t, c, 0x8003)
	if !c.Halted {
		t.Error("CPU not halted after BRK")
	}
}

func TestLDAZeroFlag(t *testing.T) {
	c := newCPU()
	if err := c.LoadAndRun([]byte{0xa9, 0x00, 0x00}); err != nil {
		t.Fatal(err)
	}
	expectFlag(t, c, cpu.Zero, true)
	expectFlag(t, c, cpu.Negative, false)
}

func TestLDANegativeFlag(t *testing.T) {
	c := newCPU()
	if err := c.LoadAndRun([]byte{0xa9, 0x80, 0x00}); err != nil {
		t.Fatal(err)
	}
	expectFlag(t, c, cpu.Negative, true)
	expectFlag(t, c, cpu.Zero, false)
}

func TestTAX(t *testing.T) {
	c := loadCPU(t, []byte{0xaa, 0x00})
	c.Reg.A = 10
	runCPU(t, c)
	expectX(t, c, 10)
	expectPS(t, c, 0)

	c = loadCPU(t, []byte{0xaa, 0x00})
	c.Reg.A = 0x80
	runCPU(t, c)
	expectX(t, c, 0x80)
	expectPS(t, c, cpu.Negative)
}

func TestOpsWorkingTogether(t *testing.T) {
	c := loadCPU(t, []byte{0xa9, 0xc0, 0xaa, 0xe8, 0x00})
	c.Reg.X = 0xff
	runCPU(t, c)
	expectX(t, c, 0xc1)
	expectCycles(t, c, 2+2+2+7)
}

func TestINXOverflow(t *testing.T) {
	c := loadCPU(t, []byte{0xe8, 0x00})
	c.Reg.X = 0xff
	runCPU(t, c)
	expectX(t, c, 0x00)
	expectFlag(t, c, cpu.Zero, true)

	c = loadCPU(t, []byte{0xe8, 0xe8, 0x00})
	c.Reg.X = 0xff
	runCPU(t, c)
	expectX(t, c, 0x01)
}

func TestLDAFromMemory(t *testing.T) {
	tests := []struct {
		name    string
		program []byte
		setup   func(c *cpu.CPU)
		acc     byte
	}{
		{"zero page", []byte{0xa5, 0x10, 0x00}, func(c *cpu.CPU) {
			c.Mem.StoreByte(0x10, 0x55)
		}, 0x55},
		{"zero page,x", []byte{0xb5, 0x10, 0x00}, func(c *cpu.CPU) {
			c.Reg.X = 0x01
			c.Mem.StoreByte(0x11, 0x56)
		}, 0x56},
		{"absolute", []byte{0xad, 0x10, 0x20, 0x00}, func(c *cpu.CPU) {
			c.Mem.StoreByte(0x2010, 0x57)
		}, 0x57},
		{"absolute,x", []byte{0xbd, 0x11, 0x21, 0x00}, func(c *cpu.CPU) {
			c.Reg.X = 0x01
			c.Mem.StoreByte(0x2112, 0x58)
		}, 0x58},
		{"absolute,y", []byte{0xb9, 0x12, 0x22, 0x00}, func(c *cpu.CPU) {
			c.Reg.Y = 0x02
			c.Mem.StoreByte(0x2214, 0x59)
		}, 0x59},
		{"(indirect,x)", []byte{0xa1, 0x11, 0x00}, func(c *cpu.CPU) {
			c.Reg.X = 0x01
			c.Mem.StoreAddress(0x12, 0x3344)
			c.Mem.StoreByte(0x3344, 0x60)
		}, 0x60},
		{"(indirect),y", []byte{0xb1, 0x12, 0x00}, func(c *cpu.CPU) {
			c.Mem.StoreAddress(0x12, 0x3345)
			c.Reg.Y = 0x02
			c.Mem.StoreByte(0x3347, 0x61)
		}, 0x61},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := loadCPU(t, tt.program)
			tt.setup(c)
			runCPU(t, c)
			expectACC(t, c, tt.acc)
		})
	}
}

func TestSTAToMemory(t *testing.T) {
	tests := []struct {
		name    string
		program []byte
		setup   func(c *cpu.CPU)
		addr    uint16
	}{
		{"zero page", []byte{0x85, 0x10, 0x00}, func(c *cpu.CPU) {}, 0x10},
		{"zero page,x", []byte{0x95, 0x10, 0x00}, func(c *cpu.CPU) {
			c.Reg.X = 0x01
		}, 0x11},
		{"absolute", []byte{0x8d, 0x20, 0x30, 0x00}, func(c *cpu.CPU) {}, 0x3020},
		{"absolute,x", []byte{0x9d, 0x21, 0x31, 0x00}, func(c *cpu.CPU) {
			c.Reg.X = 0x01
		}, 0x3122},
		{"absolute,y", []byte{0x99, 0x22, 0x32, 0x00}, func(c *cpu.CPU) {
			c.Reg.Y = 0x02
		}, 0x3224},
		{"(indirect,x)", []byte{0x81, 0x23, 0x00}, func(c *cpu.CPU) {
			c.Reg.X = 0x03
			c.Mem.StoreAddress(0x26, 0x4455)
		}, 0x4455},
		{"(indirect),y", []byte{0x91, 0x24, 0x00}, func(c *cpu.CPU) {
			c.Mem.StoreAddress(0x24, 0x5566)
			c.Reg.Y = 0x04
		}, 0x556a},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := loadCPU(t, tt.program)
			c.Reg.A = 0x5a
			c.Reg.PS = cpu.Carry | cpu.Overflow
			tt.setup(c)
			runCPU(t, c)
			expectMem(t, c, tt.addr, 0x5a)
			expectPS(t, c, cpu.Carry|cpu.Overflow)
		})
	}
}

func TestADC(t *testing.T) {
	tests := []struct {
		name    string
		acc     byte
		operand byte
		carry   bool
		result  byte
		ps      cpu.Status
	}{
		{"no carry", 0x20, 0x10, false, 0x30, 0},
		{"carry in", 0x20, 0x10, true, 0x31, 0},
		{"carry out", 0xff, 0x01, false, 0x00, cpu.Carry | cpu.Zero},
		{"overflow plus", 0x7f, 0x10, false, 0x8f, cpu.Negative | cpu.Overflow},
		{"overflow plus with carry", 0x10, 0x6f, true, 0x80, cpu.Negative | cpu.Overflow},
		{"overflow minus", 0x81, 0x81, false, 0x02, cpu.Overflow | cpu.Carry},
		{"overflow minus with carry", 0x80, 0x80, true, 0x01, cpu.Overflow | cpu.Carry},
		{"no overflow", 0x82, 0x7f, false, 0x01, cpu.Carry},
		{"operand plus carry wraps", 0x42, 0xff, true, 0x42, cpu.Carry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := loadCPU(t, []byte{0x69, tt.operand, 0x00})
			c.Reg.A = tt.acc
			c.Reg.SetFlag(cpu.Carry, tt.carry)
			runCPU(t, c)
			expectACC(t, c, tt.result)
			expectPS(t, c, tt.ps)
		})
	}
}

func TestADCZeroPageAlias(t *testing.T) {
	c := loadCPU(t, []byte{0x65, 0x40, 0x00})
	c.Reg.A = 0x01
	c.Mem.StoreByte(0x40, 0x02)
	runCPU(t, c)
	expectACC(t, c, 0x03)
}

func TestSBC(t *testing.T) {
	// SEC; LDA #$50; SBC #$F0; BRK
	c := loadCPU(t, []byte{0x38, 0xa9, 0x50, 0xe9, 0xf0, 0x00})
	runCPU(t, c)
	expectACC(t, c, 0x60)
	expectFlag(t, c, cpu.Carry, false)
	expectFlag(t, c, cpu.Overflow, false)

	// SEC; LDA #$50; SBC #$B0; BRK
	c = loadCPU(t, []byte{0x38, 0xa9, 0x50, 0xe9, 0xb0, 0x00})
	runCPU(t, c)
	expectACC(t, c, 0xa0)
	expectFlag(t, c, cpu.Overflow, true)
	expectFlag(t, c, cpu.Negative, true)
}

func TestDecimalFlagIgnored(t *testing.T) {
	// SED; LDA #$09; ADC #$01; BRK
	c := loadCPU(t, []byte{0xf8, 0xa9, 0x09, 0x69, 0x01, 0x00})
	runCPU(t, c)
	expectACC(t, c, 0x0a)
	expectFlag(t, c, cpu.Decimal, true)
}

func TestCompare(t *testing.T) {
	// LDX #$10; CPX #$10; BRK
	c := loadCPU(t, []byte{0xa2, 0x10, 0xe0, 0x10, 0x00})
	runCPU(t, c)
	expectPS(t, c, cpu.Carry|cpu.Zero)

	// LDY #$10; CPY #$20; BRK
	c = loadCPU(t, []byte{0xa0, 0x10, 0xc0, 0x20, 0x00})
	runCPU(t, c)
	expectPS(t, c, cpu.Negative)
}

func TestIncDecMemory(t *testing.T) {
	// INC $10; INC $10; DEC $11; BRK
	c := loadCPU(t, []byte{0xe6, 0x10, 0xe6, 0x10, 0xc6, 0x11, 0x00})
	c.Mem.StoreByte(0x10, 0xfe)
	runCPU(t, c)
	expectMem(t, c, 0x10, 0x00)
	expectMem(t, c, 0x11, 0xff)
	expectFlag(t, c, cpu.Negative, true)
}

func TestBranch(t *testing.T) {
	// LDX #$03; loop: DEX; BNE loop; BRK
	c := loadCPU(t, []byte{0xa2, 0x03, 0xca, 0xd0, 0xfd, 0x00})
	runCPU(t, c)
	expectX(t, c, 0x00)
	expectPC(t, c, 0x8006)

	// BEQ not taken skips its operand.
	c = loadCPU(t, []byte{0xf0, 0x10, 0x00})
	stepCPU(t, c, 1)
	expectPC(t, c, 0x8002)

	// BEQ taken jumps forward.
	c = loadCPU(t, []byte{0xf0, 0x01, 0xe8, 0x00})
	c.Reg.SetFlag(cpu.Zero, true)
	runCPU(t, c)
	expectX(t, c, 0x00)
}

func TestJMP(t *testing.T) {
	// JMP $8005; INX; INX; BRK
	c := loadCPU(t, []byte{0x4c, 0x05, 0x80, 0xe8, 0xe8, 0x00})
	runCPU(t, c)
	expectX(t, c, 0x00)
	expectPC(t, c, 0x8006)
}

func TestJMPToOperandAddress(t *testing.T) {
	// A jump onto its own operand leaves PC where the operand starts, so it
	// is treated like an instruction that did not move PC.
	// JMP $8001; INX; BRK
	c := loadCPU(t, []byte{0x4c, 0x01, 0x80, 0xe8, 0x00})
	stepCPU(t, c, 1)
	expectPC(t, c, 0x8003)

	runCPU(t, c)
	expectX(t, c, 0x01)
}

func TestJMPIndirectPageWrap(t *testing.T) {
	c := loadCPU(t, []byte{0x6c, 0xff, 0x12})
	c.Mem.StoreByte(0x12ff, 0x34)
	c.Mem.StoreByte(0x1200, 0x90)
	c.Mem.StoreByte(0x1300, 0x56)
	stepCPU(t, c, 1)
	expectPC(t, c, 0x9034)
}

func TestResetClearsRegisters(t *testing.T) {
	c := loadCPU(t, []byte{0x00})
	c.Reg.A, c.Reg.X, c.Reg.Y = 1, 2, 3
	c.Reg.PS = cpu.Carry | cpu.Negative
	c.SetPC(0x1234)
	c.Reset()
	expectACC(t, c, 0)
	expectX(t, c, 0)
	expectY(t, c, 0)
	expectPS(t, c, 0)
	expectPC(t, c, cpu.ProgramOrigin)
	expectMem(t, c, cpu.ResetVector, 0x00)
	expectMem(t, c, cpu.ResetVector+1, 0x80)
}

func TestLoadTooLarge(t *testing.T) {
	c := newCPU()
	err := c.Load(make([]byte, 0x8001))
	if !errors.Is(err, cpu.ErrProgramTooLarge) {
		t.Errorf("expected ErrProgramTooLarge, got %v", err)
	}
}

func TestUnrecognizedOpcode(t *testing.T) {
	c := loadCPU(t, []byte{0xa9, 0x42, 0x02, 0x00})
	c.Reg.X = 0x11
	err := c.Run()

	var execErr *cpu.ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected *ExecError, got %v", err)
	}
	if !errors.Is(err, cpu.ErrUnrecognizedOpcode) {
		t.Errorf("expected ErrUnrecognizedOpcode, got %v", err)
	}
	if execErr.Opcode != 0x02 || execErr.PC != 0x8002 {
		t.Errorf("wrong diagnostic: opcode $%02X at $%04X", execErr.Opcode, execErr.PC)
	}
	expectPC(t, c, 0x8002)
	expectACC(t, c, 0x42)
	expectX(t, c, 0x11)
	expectCycles(t, c, 2)
}

func TestNotImplemented(t *testing.T) {
	// PHA is a documented opcode without an emulator implementation.
	c := loadCPU(t, []byte{0x48, 0x00})
	err := c.Run()
	if !errors.Is(err, cpu.ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
	if errors.Is(err, cpu.ErrUnrecognizedOpcode) {
		t.Error("not-implemented reported as unrecognized")
	}
	expectPC(t, c, cpu.ProgramOrigin)
	expectPS(t, c, 0)
}

func TestStepAfterHalt(t *testing.T) {
	c := loadCPU(t, []byte{0x00, 0xe8, 0x00})
	runCPU(t, c)
	expectPC(t, c, 0x8001)
	runCPU(t, c)
	expectX(t, c, 0x01)
	expectPC(t, c, 0x8003)
}

type brkCounter struct {
	hits []uint16
}

func (b *brkCounter) OnBrk(c *cpu.CPU) {
	b.hits = append(b.hits, c.LastPC)
}

func TestBrkHandler(t *testing.T) {
	c := loadCPU(t, []byte{0xea, 0x00})
	h := &brkCounter{}
	c.AttachBrkHandler(h)
	runCPU(t, c)
	if len(h.hits) != 1 || h.hits[0] != 0x8001 {
		t.Errorf("unexpected BRK notifications: %v", h.hits)
	}
}
