// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Status holds the bits of the processor status register.
//
//	7 6 5 4 3 2 1 0
//	N V _ B D I Z C
type Status byte

// Bits assigned to the processor status byte
const (
	Carry            Status = 1 << 0 // C
	Zero             Status = 1 << 1 // Z
	InterruptDisable Status = 1 << 2 // I
	Decimal          Status = 1 << 3 // D (never consulted by ADC/SBC)
	Break            Status = 1 << 4 // B
	Break2           Status = 1 << 5 // unused bit 5
	Overflow         Status = 1 << 6 // V
	Negative         Status = 1 << 7 // N
)

// String returns the status bits as "NV54DIZC", with clear bits shown as
// dashes.
func (s Status) String() string {
	const names = "NV54DIZC"
	var b [8]byte
	for i := 0; i < 8; i++ {
		if s&(0x80>>i) != 0 {
			b[i] = names[i]
		} else {
			b[i] = '-'
		}
	}
	return string(b[:])
}

// Registers contains the state of all 6502 registers.
type Registers struct {
	A  byte   // accumulator
	X  byte   // X indexing register
	Y  byte   // Y indexing register
	PC uint16 // program counter
	PS Status // processor status bits
}

// Init initializes all registers. A, X, Y = 0. PC = 0. PS = 0.
func (r *Registers) Init() {
	r.A = 0
	r.X = 0
	r.Y = 0
	r.PC = 0
	r.PS = 0
}

// IsSet returns true if all of the status bits in 's' are set.
func (r *Registers) IsSet(s Status) bool {
	return r.PS&s == s
}

// SetFlag sets the status bits in 's' if 'on' is true. Otherwise it clears
// them.
func (r *Registers) SetFlag(s Status, on bool) {
	if on {
		r.PS |= s
	} else {
		r.PS &^= s
	}
}

// UpdateZeroAndNegative sets the Zero flag if v is zero and the Negative
// flag if bit 7 of v is set. No other flag is affected.
func (r *Registers) UpdateZeroAndNegative(v byte) {
	r.SetFlag(Zero, v == 0)
	r.SetFlag(Negative, v&0x80 != 0)
}

func boolToByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
