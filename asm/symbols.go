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
	"sort"
	"strconv"

	"github.com/endrber/nand2tetris/cpu"
)

// VariableBase is the address of the first variable.
const VariableBase = 16

var predefined = map[string]int{
	"SP":     cpu.SP,
	"LCL":    cpu.LCL,
	"ARG":    cpu.ARG,
	"THIS":   cpu.THIS,
	"THAT":   cpu.THAT,
	"SCREEN": cpu.Screen,
	"KBD":    cpu.Keyboard,
}

func init() {
	for r := 0; r < 16; r++ {
		predefined["R"+strconv.Itoa(r)] = r
	}
}

// Symbol is a symbol table entry.
type Symbol struct {
	Name       string
	Address    int
	Predefined bool
}

// SymbolTable maps symbol names to addresses. The zero value is not usable,
// use NewSymbolTable.
type SymbolTable struct {
	table map[string]int
	next  int
}

// NewSymbolTable returns a symbol table seeded with the predefined symbols.
func NewSymbolTable() *SymbolTable {
	t := &SymbolTable{
		table: make(map[string]int, len(predefined)+32),
		next:  VariableBase,
	}
	for n, a := range predefined {
		t.table[n] = a
	}
	return t
}

// Add binds name to address unless name is already defined.
func (t *SymbolTable) Add(name string, address int) {
	if _, ok := t.table[name]; !ok {
		t.table[name] = address
	}
}

// AddVariable binds name to the next free variable address unless name is
// already defined, and returns the address name is bound to.
func (t *SymbolTable) AddVariable(name string) int {
	if a, ok := t.table[name]; ok {
		return a
	}
	a := t.next
	t.table[name] = a
	t.next++
	return a
}

// Get returns the address bound to name.
func (t *SymbolTable) Get(name string) (address int, ok bool) {
	address, ok = t.table[name]
	return
}

// Contains returns true if name is defined.
func (t *SymbolTable) Contains(name string) bool {
	_, ok := t.table[name]
	return ok
}

// Symbols returns all the entries sorted by address, then name.
func (t *SymbolTable) Symbols() []Symbol {
	s := make([]Symbol, 0, len(t.table))
	for n, a := range t.table {
		_, pre := predefined[n]
		s = append(s, Symbol{n, a, pre})
	}
	sort.Slice(s, func(i, j int) bool {
		if s[i].Address != s[j].Address {
			return s[i].Address < s[j].Address
		}
		return s[i].Name < s[j].Name
	})
	return s
}

func isSymbolRune(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '_' || c == '.' || c == '$' || c == ':'
}

// IsValidSymbol returns true if s can be used as a label or variable name: a
// non-empty sequence of letters, digits, '_', '.', '$' or ':' that does not
// start with a digit.
func IsValidSymbol(s string) bool {
	if s == "" || s[0] >= '0' && s[0] <= '9' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isSymbolRune(s[i]) {
			return false
		}
	}
	return true
}
