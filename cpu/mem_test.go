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

package cpu_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/endrber/nand2tetris/cpu"
)

func TestLoadSave(t *testing.T) {
	name := filepath.Join(t.TempDir(), "prog.hack")
	rom := W{7, 0xEC10, 0, 0xE308}
	if err := cpu.Save(name, rom); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	want := "0000000000000111\n1110110000010000\n0000000000000000\n1110001100001000\n"
	if string(b) != want {
		t.Errorf("saved:\n%s\nwant:\n%s", b, want)
	}
	got, err := cpu.Load(name)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(rom) {
		t.Fatalf("loaded %d words, want %d", len(got), len(rom))
	}
	for k := range rom {
		if got[k] != rom[k] {
			t.Errorf("word %d: %s != %s", k, cpu.FormatWord(got[k]), cpu.FormatWord(rom[k]))
		}
	}
}

func TestRead_errors(t *testing.T) {
	for _, src := range []string{
		"0000000000000111\n111011000001000\n",
		"0000000000000111\n\n11101100000100002\n",
		"000000000000011x\n",
	} {
		_, err := cpu.Read("bad.hack", strings.NewReader(src))
		if err == nil {
			t.Errorf("%q: expected error", src)
			continue
		}
		if !strings.HasPrefix(err.Error(), "bad.hack:") {
			t.Errorf("%q: error %q does not name the source", src, err)
		}
	}
	if _, err := cpu.Load(filepath.Join(t.TempDir(), "missing.hack")); err == nil {
		t.Error("expected error loading missing file")
	}
}
