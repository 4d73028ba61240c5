// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"fmt"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var (
	errExprParse = errors.New("expression syntax error")
	errExprRange = errors.New("expression value out of range")
)

// A resolver supplies the identifiers visible to an expression.
type resolver interface {
	identifiers() starlark.StringDict
}

// An exprParser evaluates host expressions. Expressions use Starlark
// integer arithmetic, plus the monitor's number syntax: $FF is hexadecimal,
// %1010 is binary, and a lone '.' is the program counter.
type exprParser struct {
	hexMode bool
}

func newExprParser() *exprParser {
	return &exprParser{}
}

// Parse evaluates the expression and returns its integer value.
func (p *exprParser) Parse(expr string, r resolver) (int64, error) {
	ids := r.identifiers()
	src, err := p.rewrite(expr, ids)
	if err != nil {
		return 0, err
	}

	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", "rc="+src+"\n", ids)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errExprParse, expr)
	}

	rc, ok := dict["rc"].(starlark.Int)
	if !ok {
		return 0, fmt.Errorf("%w: %s", errExprParse, expr)
	}
	v, ok := rc.Int64()
	if !ok {
		return 0, fmt.Errorf("%w: %s", errExprParse, expr)
	}
	return v, nil
}

// Translate monitor number syntax into Starlark source. In hex mode, a word
// made only of hex digits is a number unless it names an identifier.
func (p *exprParser) rewrite(expr string, ids starlark.StringDict) (string, error) {
	var b strings.Builder

	operand := false // the previous token was a value
	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case c == '$':
			j := scan(expr, i+1, isHexDigit)
			if j == i+1 {
				return "", fmt.Errorf("%w: %s", errExprParse, expr)
			}
			b.WriteString("0x" + expr[i+1:j])
			i, operand = j, true

		case c == '%' && !operand:
			j := scan(expr, i+1, isBinaryDigit)
			if j == i+1 {
				return "", fmt.Errorf("%w: %s", errExprParse, expr)
			}
			b.WriteString("0b" + expr[i+1:j])
			i, operand = j, true

		case c == '.' && !operand:
			b.WriteString("pc")
			i, operand = i+1, true

		case isDecimalDigit(c):
			j := scan(expr, i, isIdentChar)
			tok := strings.ToLower(expr[i:j])
			if p.hexMode && !strings.HasPrefix(tok, "0x") && !strings.HasPrefix(tok, "0b") {
				tok = "0x" + tok
			}
			b.WriteString(tok)
			i, operand = j, true

		case isIdentChar(c):
			j := scan(expr, i, isIdentChar)
			tok := strings.ToLower(expr[i:j])
			if _, ok := ids[tok]; !ok && p.hexMode && scan(tok, 0, isHexDigit) == len(tok) {
				tok = "0x" + tok
			}
			b.WriteString(tok)
			i, operand = j, true

		case c == ' ' || c == '\t':
			b.WriteByte(c)
			i++

		default:
			b.WriteByte(c)
			i, operand = i+1, c == ')'
		}
	}
	return b.String(), nil
}

func scan(s string, i int, fn func(c byte) bool) int {
	for i < len(s) && fn(s[i]) {
		i++
	}
	return i
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentChar(c byte) bool {
	return isDecimalDigit(c) || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
