package cpu_test

import (
	"errors"
	"testing"

	"github.com/famicore/nes6502/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultInstructionSet(t *testing.T) {
	assert := assert.New(t)

	set := cpu.DefaultInstructionSet()
	assert.Same(set, cpu.DefaultInstructionSet())

	count := 0
	for op := 0; op < 256; op++ {
		inst := set.Lookup(byte(op))
		if inst == nil {
			continue
		}
		count++
		assert.Equal(byte(op), inst.Opcode)
		assert.Equal(1+inst.Mode.OperandLength(), inst.Length, inst.Name)
	}
	assert.Equal(151, count)
	assert.Len(cpu.DefaultOpcodes(), 151)

	assert.Nil(set.Lookup(0x02))
	assert.Nil(set.Lookup(0xff))
}

func TestInstructionVariants(t *testing.T) {
	assert := assert.New(t)
	set := cpu.DefaultInstructionSet()

	lda := set.GetInstructions("lda")
	assert.Len(lda, 8)
	for _, inst := range lda {
		assert.Equal("LDA", inst.Name)
		assert.True(inst.Implemented())
	}

	jmp := set.GetInstructions("JMP")
	require.Len(t, jmp, 2)
	assert.Equal(cpu.ABS, jmp[0].Mode)
	assert.Equal(cpu.IND, jmp[1].Mode)

	for _, name := range []string{"PHA", "JSR", "RTS", "ASL", "TXS"} {
		insts := set.GetInstructions(name)
		require.NotEmpty(t, insts, name)
		assert.False(insts[0].Implemented(), name)
	}

	assert.Empty(set.GetInstructions("XYZ"))
}

func TestNewInstructionSetErrors(t *testing.T) {
	table := []struct {
		name  string
		infos []cpu.OpcodeInfo
		err   error
	}{
		{"duplicate", []cpu.OpcodeInfo{
			{Name: "LDA", Mode: cpu.IMM, Opcode: 0xa9, Length: 2, Cycles: 2},
			{Name: "LDX", Mode: cpu.IMM, Opcode: 0xa9, Length: 2, Cycles: 2},
		}, cpu.ErrOpcodeDuplicate},
		{"length", []cpu.OpcodeInfo{
			{Name: "LDA", Mode: cpu.ABS, Opcode: 0xad, Length: 2, Cycles: 4},
		}, cpu.ErrOpcodeLength},
		{"mode", []cpu.OpcodeInfo{
			{Name: "LDA", Mode: cpu.IMP, Opcode: 0xa9, Length: 1, Cycles: 2},
		}, cpu.ErrOpcodeMode},
	}

	for _, entry := range table {
		set, err := cpu.NewInstructionSet(entry.infos)
		assert.Nil(t, set, entry.name)
		require.Error(t, err, entry.name)
		assert.True(t, errors.Is(err, entry.err), entry.name)

		var te *cpu.TableError
		assert.True(t, errors.As(err, &te), entry.name)
	}
}

func TestCustomInstructionSet(t *testing.T) {
	assert := assert.New(t)

	// Only LDA #imm and BRK, plus an unimplemented mnemonic on $EA.
	set, err := cpu.NewInstructionSet([]cpu.OpcodeInfo{
		{Name: "lda", Mode: cpu.IMM, Opcode: 0xa9, Length: 2, Cycles: 2},
		{Name: "brk", Mode: cpu.IMP, Opcode: 0x00, Length: 1, Cycles: 7},
		{Name: "HLT", Mode: cpu.IMP, Opcode: 0xea, Length: 1, Cycles: 2},
	})
	require.NoError(t, err)
	assert.Equal("LDA", set.Lookup(0xa9).Name)

	c := cpu.NewCPU(set, cpu.NewFlatMemory())
	assert.NoError(c.LoadAndRun([]byte{0xa9, 0x33, 0x00}))
	assert.Equal(byte(0x33), c.Reg.A)

	// INX is not part of the set.
	err = c.LoadAndRun([]byte{0xe8, 0x00})
	assert.True(errors.Is(err, cpu.ErrUnrecognizedOpcode))

	err = c.LoadAndRun([]byte{0xea, 0x00})
	assert.True(errors.Is(err, cpu.ErrNotImplemented))

	var ee *cpu.ExecError
	require.True(t, errors.As(err, &ee))
	assert.Equal(byte(0xea), ee.Opcode)
	assert.Equal(uint16(0x8000), ee.PC)
	assert.Equal("opcode not implemented: opcode $EA at $8000", ee.Error())
}
