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
	"strconv"
	"strings"

	"github.com/endrber/nand2tetris/asm"
	"github.com/endrber/nand2tetris/cpu"
	"github.com/pkg/errors"
)

// parseAddr accepts a decimal RAM address or one of the predefined symbols
// (SP, LCL, R13, SCREEN...).
func parseAddr(s string) (int, error) {
	if a, ok := asm.NewSymbolTable().Get(s); ok {
		return a, nil
	}
	a, err := strconv.Atoi(s)
	if err != nil || a < 0 || a >= cpu.RAMSize {
		return 0, errors.Errorf("invalid RAM address %q", s)
	}
	return a, nil
}

// presets collects -set addr=value flags.
type presets map[int]cpu.Word

func (p presets) String() string { return "" }
func (p presets) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok {
		return errors.Errorf("%q: expected addr=value", s)
	}
	addr, err := parseAddr(k)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < -32768 || n > 65535 {
		return errors.Errorf("%q: value out of range", v)
	}
	p[addr] = cpu.Word(uint16(n))
	return nil
}
func (p presets) Get() interface{} { return map[int]cpu.Word(p) }

type memRange struct {
	addr, count int
}

// dumpList collects -dump addr[:count] flags.
type dumpList []memRange

func (d *dumpList) String() string { return "" }
func (d *dumpList) Set(s string) error {
	k, c, hasCount := strings.Cut(s, ":")
	addr, err := parseAddr(k)
	if err != nil {
		return err
	}
	count := 1
	if hasCount {
		count, err = strconv.Atoi(c)
		if err != nil || count <= 0 {
			return errors.Errorf("%q: invalid word count", c)
		}
	}
	if addr+count > cpu.RAMSize {
		return errors.Errorf("%q: range past end of RAM", s)
	}
	*d = append(*d, memRange{addr, count})
	return nil
}
func (d *dumpList) Get() interface{} { return *d }
