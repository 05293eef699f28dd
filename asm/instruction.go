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

package asm

import (
	"strconv"

	"github.com/endrber/nand2tetris/cpu"
)

var compCodes = map[string]cpu.Word{
	"0":   0x2A, // 0101010
	"1":   0x3F, // 0111111
	"-1":  0x3A, // 0111010
	"D":   0x0C, // 0001100
	"A":   0x30, // 0110000
	"!D":  0x0D, // 0001101
	"!A":  0x31, // 0110001
	"-D":  0x0F, // 0001111
	"-A":  0x33, // 0110011
	"D+1": 0x1F, // 0011111
	"A+1": 0x37, // 0110111
	"D-1": 0x0E, // 0001110
	"A-1": 0x32, // 0110010
	"D+A": 0x02, // 0000010
	"D-A": 0x13, // 0010011
	"A-D": 0x07, // 0000111
	"D&A": 0x00, // 0000000
	"D|A": 0x15, // 0010101
	"M":   0x70, // 1110000
	"!M":  0x71, // 1110001
	"-M":  0x73, // 1110011
	"M+1": 0x77, // 1110111
	"M-1": 0x72, // 1110010
	"D+M": 0x42, // 1000010
	"D-M": 0x53, // 1010011
	"M-D": 0x47, // 1000111
	"D&M": 0x40, // 1000000
	"D|M": 0x55, // 1010101
}

var destCodes = map[string]cpu.Word{
	"":    0,
	"M":   1,
	"D":   2,
	"MD":  3,
	"A":   4,
	"AM":  5,
	"AD":  6,
	"AMD": 7,
}

var jumpCodes = map[string]cpu.Word{
	"":    0,
	"JGT": 1,
	"JEQ": 2,
	"JGE": 3,
	"JLT": 4,
	"JNE": 5,
	"JLE": 6,
	"JMP": 7,
}

// Instruction is a parsed assembly instruction: one of AddressInstruction,
// ComputeInstruction or LabelInstruction.
type Instruction interface {
	// SourceLine returns the 1-indexed source line of the instruction.
	SourceLine() int
	String() string
	instruction()
}

// AddressInstruction loads a literal or the address bound to a symbol into A.
type AddressInstruction struct {
	Operand string
	Line    int
}

// ComputeInstruction is a dest=comp;jump instruction. Dest and Jump may be
// empty.
type ComputeInstruction struct {
	Dest string
	Comp string
	Jump string
	Line int
}

// LabelInstruction binds Name to the address of the next instruction. It
// does not generate any code.
type LabelInstruction struct {
	Name string
	Line int
}

func (AddressInstruction) instruction() {}
func (ComputeInstruction) instruction() {}
func (LabelInstruction) instruction()   {}

func (i AddressInstruction) SourceLine() int { return i.Line }
func (i ComputeInstruction) SourceLine() int { return i.Line }
func (i LabelInstruction) SourceLine() int   { return i.Line }

func (i AddressInstruction) String() string { return "@" + i.Operand }
func (i LabelInstruction) String() string   { return "(" + i.Name + ")" }

func (i ComputeInstruction) String() string {
	s := i.Comp
	if i.Dest != "" {
		s = i.Dest + "=" + s
	}
	if i.Jump != "" {
		s += ";" + i.Jump
	}
	return s
}

// IsLiteral returns true if the operand is a decimal literal.
func (i AddressInstruction) IsLiteral() bool {
	return isDigits(i.Operand)
}

// Encode returns the machine word for the instruction. Symbols are resolved
// against t: unknown symbols are allocated a new variable address. The name
// parameter is used only in error messages.
func (i AddressInstruction) Encode(name string, t *SymbolTable) (cpu.Word, error) {
	var addr int
	if i.IsLiteral() {
		v, err := strconv.Atoi(i.Operand)
		if err != nil || v > cpu.AddrLimit {
			return 0, newError(name, i.Line, ErrAddressRange, "%s: valid range is 0..%d", i.Operand, cpu.AddrLimit)
		}
		addr = v
	} else {
		if !IsValidSymbol(i.Operand) {
			return 0, newError(name, i.Line, ErrSymbol, "%q", i.Operand)
		}
		addr = t.AddVariable(i.Operand)
		if addr < 0 || addr > cpu.AddrLimit {
			return 0, newError(name, i.Line, ErrAddressRange, "%s bound to %d", i.Operand, addr)
		}
	}
	return cpu.Word(addr), nil
}

// Encode returns the machine word for the instruction.
func (i ComputeInstruction) Encode(name string) (cpu.Word, error) {
	comp, ok := compCodes[i.Comp]
	if !ok {
		return 0, newError(name, i.Line, ErrMnemonic, "comp %q", i.Comp)
	}
	dest, ok := destCodes[i.Dest]
	if !ok {
		return 0, newError(name, i.Line, ErrMnemonic, "dest %q", i.Dest)
	}
	jump, ok := jumpCodes[i.Jump]
	if !ok {
		return 0, newError(name, i.Line, ErrMnemonic, "jump %q", i.Jump)
	}
	return 0xE000 | comp<<6 | dest<<3 | jump, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
