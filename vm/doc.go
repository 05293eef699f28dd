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

// Package vm translates the stack based VM language into Hack assembly (see
// package github.com/endrber/nand2tetris/asm).
//
// Source format:
//
// One command per line. Keywords are case insensitive. Blank lines and lines
// starting with one of the comment prefixes ("//", "#" and ";" by default)
// are ignored, as is anything after "//" on a command line.
//
//	push <segment> <index>	push the value of segment[index]
//	pop <segment> <index>	pop the top of the stack into segment[index]
//	add, sub, and, or	x y -- x op y
//	neg, not		x -- op x
//	eq, gt, lt		x y -- (x op y ? -1 : 0)
//
// The branching and function commands (label, goto, if-goto, function, call
// and return) are recognized and rejected with an ErrUnsupportedCommand error.
//
// Memory model:
//
// The stack pointer SP (RAM[0]) holds the address of the first free stack
// slot. Segments map to memory as follows:
//
//	constant	the index itself, push only (0..32767)
//	local		RAM[LCL+index]
//	argument	RAM[ARG+index]
//	this		RAM[THIS+index]
//	that		RAM[THAT+index]
//	pointer		RAM[3+index], index 0..1 (THIS and THAT)
//	temp		RAM[5+index], index 0..7
//	static		the assembler variable <unit>.<index>
//
// The static segment also accepts a symbolic index: "push static count" in
// unit Main reads variable Main.count.
//
// Comparisons are implemented with a conditional jump to a pair of labels
// named <OP>$TRUE.<n> and <OP>$END.<n>, where n is drawn from a counter shared
// by all the comparisons translated by the same Translator. R13 is used as a
// scratch register by pop.
package vm
