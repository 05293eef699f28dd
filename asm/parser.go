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
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

type parser struct {
	name string
	line int
	prog []Instruction
}

// Parse reads Hack assembly from r and returns the parsed instructions in
// source order. Symbols are not resolved.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
func Parse(name string, r io.Reader) ([]Instruction, error) {
	p := &parser{name: name}
	s := bufio.NewScanner(r)
	for s.Scan() {
		p.line++
		if err := p.parseLine(s.Text()); err != nil {
			return nil, err
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "%s: read failed", name)
	}
	return p.prog, nil
}

// ParseLines is like Parse, with the source already split into lines.
func ParseLines(name string, lines []string) ([]Instruction, error) {
	p := &parser{name: name}
	for _, l := range lines {
		p.line++
		if err := p.parseLine(l); err != nil {
			return nil, err
		}
	}
	return p.prog, nil
}

func (p *parser) errorf(kind ErrorKind, format string, args ...interface{}) error {
	return newError(p.name, p.line, kind, format, args...)
}

func (p *parser) parseLine(l string) error {
	l, _, _ = strings.Cut(l, "//")
	l = strings.TrimSpace(l)
	if l == "" {
		return nil
	}
	var (
		ins Instruction
		err error
	)
	switch l[0] {
	case '@':
		ins, err = p.address(l[1:])
	case '(':
		ins, err = p.label(l)
	default:
		ins, err = p.compute(l)
	}
	if err != nil {
		return err
	}
	p.prog = append(p.prog, ins)
	return nil
}

func (p *parser) address(op string) (Instruction, error) {
	op = strings.TrimSpace(op)
	switch {
	case op == "":
		return nil, p.errorf(ErrMissingField, "@ must be followed by a constant or symbol")
	case strings.IndexAny(op, " \t") >= 0:
		return nil, p.errorf(ErrShape, "@%s", op)
	case !isDigits(op) && !IsValidSymbol(op):
		return nil, p.errorf(ErrSymbol, "%q", op)
	}
	return AddressInstruction{op, p.line}, nil
}

func (p *parser) label(l string) (Instruction, error) {
	end := strings.IndexByte(l, ')')
	if end < 0 {
		return nil, p.errorf(ErrShape, "unterminated label %s", l)
	}
	if end != len(l)-1 {
		return nil, p.errorf(ErrShape, "unexpected %q after label", l[end+1:])
	}
	n := strings.TrimSpace(l[1:end])
	if n == "" {
		return nil, p.errorf(ErrMissingField, "empty label name")
	}
	if !IsValidSymbol(n) {
		return nil, p.errorf(ErrSymbol, "label %q", n)
	}
	return LabelInstruction{n, p.line}, nil
}

func (p *parser) compute(l string) (Instruction, error) {
	var dest, jump string
	rest := l
	if d, r, ok := strings.Cut(rest, "="); ok {
		dest, rest = strings.TrimSpace(d), r
	}
	comp, j, ok := strings.Cut(rest, ";")
	if ok {
		jump = strings.TrimSpace(j)
	}
	comp = strings.TrimSpace(comp)
	if comp == "" {
		return nil, p.errorf(ErrMissingField, "missing comp in %q", l)
	}
	for _, f := range [...]string{dest, comp, jump} {
		if strings.IndexAny(f, " \t") >= 0 {
			return nil, p.errorf(ErrShape, "%q", l)
		}
	}
	return ComputeInstruction{dest, comp, jump, p.line}, nil
}
