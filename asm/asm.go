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
	"fmt"
	"io"
	"strings"

	"github.com/endrber/nand2tetris/cpu"
	"github.com/endrber/nand2tetris/internal/hio"
	"github.com/pkg/errors"
)

var (
	compNames = make(map[cpu.Word]string, len(compCodes))
	destNames = make(map[cpu.Word]string, len(destCodes))
	jumpNames = make(map[cpu.Word]string, len(jumpCodes))
)

func init() {
	for n, c := range compCodes {
		compNames[c] = n
	}
	for n, c := range destCodes {
		destNames[c] = n
	}
	for n, c := range jumpCodes {
		jumpNames[c] = n
	}
}

// Assembler translates parsed instructions into machine code. An Assembler
// must not be reused.
type Assembler struct {
	name    string
	symbols *SymbolTable
}

// New returns a new Assembler. The name parameter is used only in error
// messages.
func New(name string) *Assembler {
	return &Assembler{name, NewSymbolTable()}
}

// Symbols returns the assembler's symbol table.
func (a *Assembler) Symbols() *SymbolTable {
	return a.symbols
}

// Assemble binds labels then generates machine code for prog.
func (a *Assembler) Assemble(prog []Instruction) ([]cpu.Word, error) {
	if err := a.bindLabels(prog); err != nil {
		return nil, err
	}
	return a.generate(prog)
}

// first pass
func (a *Assembler) bindLabels(prog []Instruction) error {
	pc := 0
	for _, ins := range prog {
		l, ok := ins.(LabelInstruction)
		if !ok {
			pc++
			continue
		}
		if a.symbols.Contains(l.Name) {
			addr, _ := a.symbols.Get(l.Name)
			return newError(a.name, l.Line, ErrDuplicateLabel, "%s already bound to %d", l.Name, addr)
		}
		a.symbols.Add(l.Name, pc)
	}
	if pc > cpu.ROMSize {
		return newError(a.name, 0, ErrAddressRange, "program too large: %d instructions", pc)
	}
	return nil
}

// second pass
func (a *Assembler) generate(prog []Instruction) ([]cpu.Word, error) {
	out := make([]cpu.Word, 0, len(prog))
	for _, ins := range prog {
		var (
			w   cpu.Word
			err error
		)
		switch ins := ins.(type) {
		case LabelInstruction:
			continue
		case AddressInstruction:
			w, err = ins.Encode(a.name, a.symbols)
		case ComputeInstruction:
			w, err = ins.Encode(a.name)
		default:
			err = errors.Errorf("%s:%d: unexpected instruction type %T", a.name, ins.SourceLine(), ins)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting machine code.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The cause of the returned error (see github.com/pkg/errors.Cause) is an
// *Error for any problem in the source code.
func Assemble(name string, r io.Reader) ([]cpu.Word, error) {
	prog, err := Parse(name, r)
	if err != nil {
		return nil, err
	}
	return New(name).Assemble(prog)
}

// AssembleLines is like Assemble with the source already split into lines.
func AssembleLines(name string, lines []string) ([]cpu.Word, error) {
	prog, err := ParseLines(name, lines)
	if err != nil {
		return nil, err
	}
	return New(name).Assemble(prog)
}

// WriteText writes the machine code as text, one 16 characters binary string
// per line.
func WriteText(w io.Writer, code []cpu.Word) error {
	return cpu.Write(w, code)
}

// Disassemble returns the assembly text of the given machine word. Words that
// do not decode to a valid instruction are rendered as a comment.
func Disassemble(w cpu.Word) string {
	if w&0x8000 == 0 {
		return "@" + fmt.Sprint(uint16(w))
	}
	comp, ok := compNames[(w>>6)&0x7F]
	if w&0xE000 != 0xE000 || !ok {
		return "// .word " + cpu.FormatWord(w)
	}
	var b strings.Builder
	if d := destNames[(w>>3)&7]; d != "" {
		b.WriteString(d)
		b.WriteByte('=')
	}
	b.WriteString(comp)
	if j := jumpNames[w&7]; j != "" {
		b.WriteByte(';')
		b.WriteString(j)
	}
	return b.String()
}

// DisassembleAll writes a disassembly of all words in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first word (code[0]). It will return any write error.
func DisassembleAll(w io.Writer, code []cpu.Word, base int) error {
	ew := hio.NewErrWriter(w)
	for pc, v := range code {
		fmt.Fprintf(ew, "% 6d\t%s\n", base+pc, Disassemble(v))
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
