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

	"github.com/endrber/nand2tetris/asm"
	"github.com/endrber/nand2tetris/cpu"
	"github.com/endrber/nand2tetris/internal/hio"
	"github.com/k0kubun/pp/v3"
	"github.com/pkg/errors"
)

var (
	debug       bool
	verbose     bool
	symbols     bool
	outFileName string
)

func atExit(err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}

func assemble(fileName string) (*asm.Assembler, []cpu.Word, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	prog, err := asm.Parse(fileName, f)
	if err != nil {
		return nil, nil, err
	}
	a := asm.New(fileName)
	code, err := a.Assemble(prog)
	return a, code, err
}

func main() {
	var err error
	defer func() { atExit(err) }()

	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&verbose, "v", false, "print a summary to stderr")
	flag.BoolVar(&symbols, "symbols", false, "dump the symbol table to stderr")
	flag.StringVar(&outFileName, "o", "", "write machine code to `filename` (default: source name with a .hack extension)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] file.asm\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		err = errors.New("expected exactly one source file")
		return
	}
	src := flag.Arg(0)
	if outFileName == "" {
		outFileName = hio.ReplaceExt(src, ".hack")
	}

	a, code, err := assemble(src)
	if err != nil {
		return
	}
	if symbols {
		pp.Fprintln(os.Stderr, a.Symbols().Symbols())
	}
	if err = cpu.Save(outFileName, code); err != nil {
		return
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "%s: %d instructions written to %s\n", src, len(code), outFileName)
	}
}
