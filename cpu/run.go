// This file is part of nand2tetris - https://github.com/endrber/nand2tetris
//
// Copyright 2024 The nand2tetris Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cpu

import "github.com/pkg/errors"

// ErrStepLimit is returned by Run when the step budget is exhausted before
// the program ends.
var ErrStepLimit = errors.New("step limit reached")

// C-instruction fields.
const (
	cBits    = 0xE000
	aBit     = 0x1000
	destA    = 0x0020
	destD    = 0x0010
	destM    = 0x0008
	jumpLT   = 0x0004
	jumpEQ   = 0x0002
	jumpGT   = 0x0001
	compMask = 0x0FC0
)

// alu computes the ALU output for the six control bits c (zx nx zy ny f no,
// most significant first).
func alu(c uint16, x, y Word) Word {
	if c&0x20 != 0 { // zx
		x = 0
	}
	if c&0x10 != 0 { // nx
		x = ^x
	}
	if c&0x08 != 0 { // zy
		y = 0
	}
	if c&0x04 != 0 { // ny
		y = ^y
	}
	var out Word
	if c&0x02 != 0 { // f
		out = x + y
	} else {
		out = x & y
	}
	if c&0x01 != 0 { // no
		out = ^out
	}
	return out
}

func (i *Instance) read(addr Word) Word {
	if addr == Keyboard && i.kbd != nil {
		return i.kbd()
	}
	return i.RAM[addr&AddrLimit]
}

// Step executes the instruction at PC.
func (i *Instance) Step() error {
	if i.PC < 0 || i.PC >= len(i.ROM) {
		return errors.Errorf("PC out of ROM: %d/%d", i.PC, len(i.ROM))
	}
	ins := uint16(i.ROM[i.PC])
	if ins&0x8000 == 0 {
		i.A = Word(ins)
		i.PC++
		return nil
	}
	if ins&cBits != cBits {
		return errors.Errorf("invalid instruction %016b @pc=%d", ins, i.PC)
	}
	a := i.A
	y := a
	if ins&aBit != 0 {
		y = i.read(a)
	}
	out := alu((ins&compMask)>>6, i.D, y)
	if ins&destM != 0 {
		i.RAM[a&AddrLimit] = out
	}
	if ins&destA != 0 {
		i.A = out
	}
	if ins&destD != 0 {
		i.D = out
	}
	v := out.Int()
	if (ins&jumpLT != 0 && v < 0) || (ins&jumpEQ != 0 && v == 0) || (ins&jumpGT != 0 && v > 0) {
		// @n at n-1, 0;JMP at n: the canonical end-of-program loop
		if ins&(jumpLT|jumpEQ|jumpGT) == jumpLT|jumpEQ|jumpGT && int(a) == i.PC-1 && i.ROM[a] == a {
			i.halted = true
		}
		i.PC = int(a)
		return nil
	}
	i.PC++
	return nil
}

// Run starts execution of the program at the current PC.
//
// Run returns when the PC moves past the end of ROM or when the program
// enters the end-of-program loop (Halted will then return true). If maxSteps
// is positive and that many instructions have been executed, Run returns
// ErrStepLimit.
//
// If an error occurs, the PC will point to the instruction that triggered
// the error.
func (i *Instance) Run(maxSteps int64) (err error) {
	i.insCount = 0
	i.halted = false
	for i.PC < len(i.ROM) && !i.halted {
		if maxSteps > 0 && i.insCount >= maxSteps {
			return ErrStepLimit
		}
		if err = i.Step(); err != nil {
			return err
		}
		i.insCount++
	}
	return nil
}
