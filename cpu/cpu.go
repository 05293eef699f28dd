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

import (
	"strconv"

	"github.com/pkg/errors"
)

// Word is the raw type stored in a memory location or ROM slot.
type Word uint16

// Memory map.
const (
	RAMSize   = 32768
	ROMSize   = 32768
	SP        = 0
	LCL       = 1
	ARG       = 2
	THIS      = 3
	THAT      = 4
	Temp      = 5
	Screen    = 16384
	Keyboard  = 24576
	AddrLimit = 32767 // largest value an A-instruction can load
)

// Instance represents a Hack computer.
type Instance struct {
	PC       int    // Program Counter
	A        Word   // Address register
	D        Word   // Data register
	ROM      []Word // Instruction memory
	RAM      []Word // Data memory, RAMSize words
	insCount int64
	halted   bool
	kbd      func() Word
}

// Option interface
type Option func(*Instance) error

// BindKeyboard binds the provided handler to the keyboard. It is called each
// time the program reads RAM[Keyboard] and must return the key code of the
// key currently pressed, or 0.
func BindKeyboard(handler func() Word) Option {
	return func(i *Instance) error {
		i.kbd = handler
		return nil
	}
}

// Preset stores the given values in RAM before execution starts. It is
// typically used to initialize the stack pointer and segment bases.
func Preset(values map[int]Word) Option {
	return func(i *Instance) error {
		for addr, v := range values {
			if addr < 0 || addr >= len(i.RAM) {
				return errors.Errorf("preset address %d out of range", addr)
			}
			i.RAM[addr] = v
		}
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Hack computer with the given program loaded in ROM.
//
// Options will be set by calling SetOptions.
func New(rom []Word, opts ...Option) (*Instance, error) {
	if len(rom) > ROMSize {
		return nil, errors.Errorf("program too large: %d words, ROM holds %d", len(rom), ROMSize)
	}
	i := &Instance{
		ROM: rom,
		RAM: make([]Word, RAMSize),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Reset clears the registers and sets PC to 0. RAM is left untouched.
func (i *Instance) Reset() {
	i.PC = 0
	i.A = 0
	i.D = 0
	i.halted = false
	i.insCount = 0
}

// Halted returns true if execution stopped in the end-of-program loop.
func (i *Instance) Halted() bool {
	return i.halted
}

// InstructionCount returns the number of instructions executed by the last
// call to Run.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Stack returns a copy of the VM stack, i.e. RAM[base:RAM[SP]].
func (i *Instance) Stack(base int) []Word {
	sp := int(i.RAM[SP])
	if sp < base || sp > len(i.RAM) {
		return nil
	}
	s := make([]Word, sp-base)
	copy(s, i.RAM[base:sp])
	return s
}

// Int returns w as a signed two's complement value.
func (w Word) Int() int {
	return int(int16(w))
}

func (w Word) String() string {
	return strconv.Itoa(w.Int())
}
