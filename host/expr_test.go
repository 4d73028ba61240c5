package host

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.starlark.net/starlark"
)

type fakeRegisters map[string]int

func (f fakeRegisters) identifiers() starlark.StringDict {
	d := make(starlark.StringDict, len(f))
	for k, v := range f {
		d[k] = starlark.MakeInt(v)
	}
	return d
}

func TestExprParse(t *testing.T) {
	regs := fakeRegisters{"a": 5, "x": 0x10, "pc": 0x8000}

	table := []struct {
		expr    string
		hexMode bool
		v       int64
	}{
		{"2 + 3 * 4", false, 14},
		{"$10 + 2", false, 18},
		{"$FF & %1111", false, 15},
		{"%101", false, 5},
		{"7 % 3", false, 1},
		{"(7) % 3", false, 1},
		{"a * 2", false, 10},
		{"A + X", false, 0x15},
		{"(1 << 4) | 1", false, 17},
		{"-1", false, -1},
		{". + 2", false, 0x8002},
		{"10", true, 0x10},
		{"ff + 1", true, 0x100},
		{"a", true, 5},
		{"$1f // 2", true, 0x0f},
	}

	for _, entry := range table {
		p := newExprParser()
		p.hexMode = entry.hexMode
		v, err := p.Parse(entry.expr, regs)
		assert.NoError(t, err, entry.expr)
		assert.Equal(t, entry.v, v, entry.expr)
	}
}

func TestExprParseErrors(t *testing.T) {
	regs := fakeRegisters{"a": 5}
	for _, expr := range []string{"$", "%", "1 +", "1 / 2", "q", "(1"} {
		_, err := newExprParser().Parse(expr, regs)
		assert.True(t, errors.Is(err, errExprParse), expr)
	}
}
