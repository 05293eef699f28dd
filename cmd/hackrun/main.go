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
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/endrber/nand2tetris/asm"
	"github.com/endrber/nand2tetris/cpu"
	"github.com/endrber/nand2tetris/vm"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const vmStackBase = 256

var (
	debug    bool
	useKbd   bool
	noRawIO  bool
	stack    bool
	maxSteps int64
	sets     = make(presets)
	dumps    dumpList
)

func atExit(i *cpu.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		if i.PC >= 0 && i.PC < len(i.ROM) {
			fmt.Fprintf(os.Stderr, "PC: %v (%s), A: %v, D: %v\n", i.PC, asm.Disassemble(i.ROM[i.PC]), i.A, i.D)
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v, A: %v, D: %v\n", i.PC, i.A, i.D)
		}
	}
	os.Exit(1)
}

// load returns the machine code for fileName, translating and assembling it
// first depending on its extension.
func load(fileName string) ([]cpu.Word, error) {
	ext := filepath.Ext(fileName)
	if ext == ".hack" {
		return cpu.Load(fileName)
	}
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	switch ext {
	case ".asm":
		return asm.Assemble(fileName, f)
	case ".vm":
		t, err := vm.New()
		if err != nil {
			return nil, err
		}
		lines, err := t.Translate(fileName, f)
		if err != nil {
			return nil, err
		}
		return asm.AssembleLines(fileName, append(lines, vm.EndLoop()...))
	}
	return nil, errors.Errorf("%s: unsupported file type", fileName)
}

// setupKeyboard binds stdin to the keyboard register, switching the terminal
// to raw mode unless stdin has been redirected.
func setupKeyboard() (opt cpu.Option, tearDown func()) {
	fd := os.Stdin.Fd()
	if !noRawIO && term.IsTerminal(int(fd)) {
		var err error
		tearDown, err = setRawIO(fd)
		if err != nil && debug {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		}
	}
	k := new(keyboard)
	go k.read(os.Stdin)
	return cpu.BindKeyboard(k.poll), tearDown
}

func main() {
	var err error
	var i *cpu.Instance

	defer func() {
		if i != nil && (err == nil || err == cpu.ErrStepLimit) {
			base := -1
			if stack {
				base = vmStackBase
			}
			if derr := dumpCPU(i, dumps, base, columns(os.Stdout), os.Stdout); err == nil {
				err = derr
			}
		}
		atExit(i, err)
	}()

	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&useKbd, "kbd", false, "feed keys typed on stdin to the keyboard register")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO with -kbd")
	flag.BoolVar(&stack, "stack", false, "print the VM stack (RAM[256:SP]) upon exit")
	flag.Int64Var(&maxSteps, "steps", 1000000, "stop after `n` instructions (0 for no limit)")
	flag.Var(sets, "set", "preset RAM, `addr=value` (can be specified multiple times)")
	flag.Var(&dumps, "dump", "print RAM[addr] or count words from addr upon exit, `addr[:count]` (can be specified multiple times)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] file.hack|file.asm|file.vm\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		err = errors.New("expected exactly one program file")
		return
	}
	src := flag.Arg(0)
	rom, err := load(src)
	if err != nil {
		return
	}
	if _, ok := sets[cpu.SP]; !ok && filepath.Ext(src) == ".vm" {
		sets[cpu.SP] = vmStackBase
	}

	opts := []cpu.Option{cpu.Preset(sets)}
	if useKbd {
		opt, tearDown := setupKeyboard()
		if tearDown != nil {
			defer tearDown()
		}
		opts = append(opts, opt)
	}
	i, err = cpu.New(rom, opts...)
	if err != nil {
		return
	}
	err = i.Run(maxSteps)
}
