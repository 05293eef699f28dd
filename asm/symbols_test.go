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

package asm_test

import (
	"testing"

	"github.com/endrber/nand2tetris/asm"
)

func TestSymbolTable(t *testing.T) {
	st := asm.NewSymbolTable()
	for n, a := range map[string]int{"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4, "R0": 0, "R7": 7, "R15": 15, "SCREEN": 16384, "KBD": 24576} {
		if got, ok := st.Get(n); !ok || got != a {
			t.Errorf("%s: got %d (%v), want %d", n, got, ok, a)
		}
	}
	if st.Contains("R16") {
		t.Error("R16 should not be predefined")
	}

	// predefined symbols are never reassigned
	st.Add("SCREEN", 42)
	if a, _ := st.Get("SCREEN"); a != 16384 {
		t.Errorf("SCREEN reassigned to %d", a)
	}
	if a := st.AddVariable("KBD"); a != 24576 {
		t.Errorf("KBD reassigned to %d", a)
	}

	st.Add("LOOP", 10)
	st.Add("LOOP", 20)
	if a, _ := st.Get("LOOP"); a != 10 {
		t.Errorf("Add is not idempotent: LOOP = %d", a)
	}
	if a := st.AddVariable("i"); a != 16 {
		t.Errorf("first variable @%d", a)
	}
	if a := st.AddVariable("j"); a != 17 {
		t.Errorf("second variable @%d", a)
	}
	if a := st.AddVariable("i"); a != 16 {
		t.Errorf("existing variable reallocated @%d", a)
	}
	if a := st.AddVariable("LOOP"); a != 10 {
		t.Errorf("label reallocated as variable @%d", a)
	}

	syms := st.Symbols()
	for i := 1; i < len(syms); i++ {
		p, s := syms[i-1], syms[i]
		if p.Address > s.Address || p.Address == s.Address && p.Name > s.Name {
			t.Fatalf("Symbols not sorted: %v before %v", p, s)
		}
	}
	if last := syms[len(syms)-1]; last.Name != "KBD" || !last.Predefined {
		t.Errorf("unexpected last symbol %v", last)
	}
}

func TestIsValidSymbol(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"abc", true},
		{"_abc", true},
		{"Main.vm$ret:1", true},
		{"$x", true},
		{"a1", true},
		{"1abc", false},
		{"", false},
		{"ab-c", false},
		{"a b", false},
		{"é", false},
	}
	for _, tc := range tests {
		if got := asm.IsValidSymbol(tc.input); got != tc.want {
			t.Errorf("IsValidSymbol(%q) = %v; want %v", tc.input, got, tc.want)
		}
	}
}
