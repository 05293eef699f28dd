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
	"bytes"
	"strings"
	"testing"

	"github.com/endrber/nand2tetris/cpu"
)

func TestPresets(t *testing.T) {
	p := make(presets)
	for _, s := range []string{"SP=256", "LCL=300", "1000=-1", "R13=65535"} {
		if err := p.Set(s); err != nil {
			t.Fatalf("Set(%q): %v", s, err)
		}
	}
	want := map[int]cpu.Word{0: 256, 1: 300, 1000: 0xFFFF, 13: 0xFFFF}
	for k, v := range want {
		if p[k] != v {
			t.Errorf("RAM[%d] = %d, expected %d", k, p[k], v)
		}
	}
	for _, s := range []string{"SP", "foo=1", "32768=0", "-1=0", "SP=65536", "SP=x"} {
		if err := p.Set(s); err == nil {
			t.Errorf("Set(%q): expected error", s)
		}
	}
}

func TestDumpList(t *testing.T) {
	var d dumpList
	for _, s := range []string{"256:4", "SCREEN", "KBD:1"} {
		if err := d.Set(s); err != nil {
			t.Fatalf("Set(%q): %v", s, err)
		}
	}
	want := []memRange{{256, 4}, {cpu.Screen, 1}, {cpu.Keyboard, 1}}
	if len(d) != len(want) {
		t.Fatalf("got %v, expected %v", d, want)
	}
	for n := range want {
		if d[n] != want[n] {
			t.Errorf("range %d: got %v, expected %v", n, d[n], want[n])
		}
	}
	for _, s := range []string{"256:0", "256:x", "32767:2", "x:1"} {
		if err := d.Set(s); err == nil {
			t.Errorf("Set(%q): expected error", s)
		}
	}
}

func TestDumpCPU(t *testing.T) {
	i, err := cpu.New(nil, cpu.Preset(map[int]cpu.Word{cpu.SP: 258, 256: 7, 257: 0xFFFF}))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err = dumpCPU(i, []memRange{{256, 3}}, vmStackBase, 2, &b); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	want := []string{
		"PC: 0, A: 0, D: 0, steps: 0, halted: false",
		"Stack: [7 -1]",
		"  256:      7     -1",
		"  258:      0",
	}
	if len(lines) != len(want) {
		t.Fatalf("got:\n%s", b.String())
	}
	for n := range want {
		if lines[n] != want[n] {
			t.Errorf("line %d: got %q, expected %q", n, lines[n], want[n])
		}
	}
}

func TestKeyboard(t *testing.T) {
	var k keyboard
	k.read(strings.NewReader("a\r"))
	if got := k.poll(); got != 128 {
		t.Errorf("got key %d, expected 128", got)
	}
	if got := k.poll(); got != 0 {
		t.Errorf("key should read as released, got %d", got)
	}
}
