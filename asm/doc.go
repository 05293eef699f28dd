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

// Package asm implements an assembler and a disassembler for the Hack
// computer (see package github.com/endrber/nand2tetris/cpu).
//
// Source format:
//
// The source is line oriented, with one instruction per line. Everything
// from "//" to the end of the line is a comment. Blank lines are ignored.
// There are three kinds of lines:
//
//	@value		A-instruction: value is a decimal literal (0..32767) or a symbol
//	(LABEL)		label definition, binds LABEL to the address of the next instruction
//	dest=comp;jump	C-instruction: "dest=" and ";jump" are optional
//
// Mnemonics are case sensitive:
//
//	dest	A, D, M, AD, AM, MD, AMD (or none)
//	jump	JGT, JEQ, JGE, JLT, JNE, JLE, JMP (or none)
//
//	comp	a=0	a=1
//	----	---	---
//	0	101010
//	1	111111
//	-1	111010
//	D	001100
//	A	110000	M
//	!D	001101
//	!A	110001	!M
//	-D	001111
//	-A	110011	-M
//	D+1	011111
//	A+1	110111	M+1
//	D-1	001110
//	A-1	110010	M-1
//	D+A	000010	D+M
//	D-A	010011	D-M
//	A-D	000111	M-D
//	D&A	000000	D&M
//	D|A	010101	D|M
//
// Symbols:
//
// A symbol is any sequence of letters, digits, underscore (_), dot (.), dollar
// sign ($) and colon (:) that does not begin with a digit. The following
// symbols are predefined:
//
//	SP	0
//	LCL	1
//	ARG	2
//	THIS	3
//	THAT	4
//	R0-R15	0-15
//	SCREEN	16384
//	KBD	24576
//
// Assembly is done in two passes. The first pass binds each label to the
// address of the next instruction; labels do not take up an address and
// cannot be defined twice or shadow a predefined symbol. The second pass
// generates code. A symbol used in an A-instruction that is neither
// predefined nor a label is a variable: variables are allocated consecutive
// addresses from 16, in order of first use.
//
// Output:
//
// Every non-label instruction assembles into exactly one 16 bits word.
// WriteText writes them as text, one 16 characters binary string per line.
package asm
