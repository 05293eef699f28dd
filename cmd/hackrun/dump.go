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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/endrber/nand2tetris/cpu"
	"github.com/endrber/nand2tetris/internal/hio"
	"golang.org/x/term"
)

const (
	cellWidth   = 7
	labelWidth  = 7
	defaultCols = 8
)

// columns returns how many RAM words fit on one line of f.
func columns(f *os.File) int {
	if !term.IsTerminal(int(f.Fd())) {
		return defaultCols
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return defaultCols
	}
	n := (w - labelWidth) / cellWidth
	switch {
	case n < 1:
		return 1
	case n > 16:
		return 16
	}
	return n
}

func dumpSlice(w *hio.ErrWriter, base int, a []cpu.Word, cols int) {
	for n := 0; n < len(a); n += cols {
		fmt.Fprintf(w, "%5d:", base+n)
		end := n + cols
		if end > len(a) {
			end = len(a)
		}
		for _, v := range a[n:end] {
			fmt.Fprintf(w, " %6d", v.Int())
		}
		w.Write([]byte{'\n'})
	}
}

// dumpCPU writes the CPU registers, the stack at stackBase if requested and
// the given RAM ranges.
func dumpCPU(i *cpu.Instance, ranges []memRange, stackBase int, cols int, w io.Writer) error {
	ew := hio.NewErrWriter(w)
	fmt.Fprintf(ew, "PC: %d, A: %d, D: %d, steps: %d, halted: %v\n", i.PC, i.A.Int(), i.D.Int(), i.InstructionCount(), i.Halted())
	if stackBase >= 0 {
		fmt.Fprintf(ew, "Stack: %v\n", i.Stack(stackBase))
	}
	for _, r := range ranges {
		dumpSlice(ew, r.addr, i.RAM[r.addr:r.addr+r.count], cols)
	}
	return ew.Err
}
