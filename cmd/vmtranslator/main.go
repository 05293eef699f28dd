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
	"io"
	"os"

	"github.com/endrber/nand2tetris/asm"
	"github.com/endrber/nand2tetris/cpu"
	"github.com/endrber/nand2tetris/internal/hio"
	"github.com/endrber/nand2tetris/vm"
	"github.com/pkg/errors"
)

type prefixList []string

func (p *prefixList) String() string     { return "" }
func (p *prefixList) Set(s string) error { *p = append(*p, s); return nil }
func (p *prefixList) Get() interface{}   { return *p }

var (
	debug       bool
	verbose     bool
	annotate    bool
	halt        bool
	hack        bool
	outFileName string
	comments    prefixList
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

func translate(fileName string, opts ...vm.Option) ([]string, error) {
	t, err := vm.New(opts...)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	return t.Translate(fileName, f)
}

func main() {
	var err error
	defer func() { atExit(err) }()

	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&verbose, "v", false, "print a summary to stderr")
	flag.BoolVar(&annotate, "annotate", false, "precede each translated command with a comment")
	flag.BoolVar(&halt, "halt", false, "append an infinite loop to the generated code")
	flag.BoolVar(&hack, "hack", false, "also assemble the output into a .hack file")
	flag.Var(&comments, "comment", "treat lines starting with `prefix` as comments (can be specified multiple times)")
	flag.StringVar(&outFileName, "o", "", "write assembly to `filename` (default: source name with a .asm extension)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] file.vm\n", os.Args[0])
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
		outFileName = hio.ReplaceExt(src, ".asm")
	}

	opts := []vm.Option{vm.Annotate(annotate)}
	if len(comments) > 0 {
		opts = append(opts, vm.CommentPrefixes(comments...))
	}
	lines, err := translate(src, opts...)
	if err != nil {
		return
	}
	if halt {
		lines = append(lines, vm.EndLoop()...)
	}

	// assemble before writing anything so that a failure leaves no output
	var code []cpu.Word
	if hack {
		code, err = asm.AssembleLines(outFileName, lines)
		if err != nil {
			return
		}
	}

	err = hio.WriteFile(outFileName, func(w io.Writer) error {
		return hio.WriteLines(w, lines)
	})
	if err != nil {
		return
	}
	if hack {
		hackName := hio.ReplaceExt(outFileName, ".hack")
		if err = cpu.Save(hackName, code); err != nil {
			return
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "%s: %d instructions written to %s\n", src, len(code), hackName)
		}
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "%s: %d lines written to %s\n", src, len(lines), outFileName)
	}
}
