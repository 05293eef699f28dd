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

// Package cpu implements the Hack computer: a 16-bit CPU with an A and a D
// register, a read-only instruction memory (ROM) and a 32K words data memory
// (RAM).
//
// Instructions are executed straight from their binary encoding:
//
//	0vvv vvvv vvvv vvvv	A-instruction: load the 15 bits value v into A.
//	111a cccc ccdd djjj	C-instruction: compute, store and optionally jump.
//
// For C-instructions, the a bit selects M (RAM[A]) instead of A as the second
// ALU operand, c1..c6 are the ALU control bits zx, nx, zy, ny, f and no, the
// d bits select the destinations A, D and M and the j bits the jump
// condition on the ALU output (out < 0, out == 0, out > 0).
//
// The screen and keyboard are memory mapped: the screen occupies RAM[16384]
// through RAM[24575] and is only stored, not rendered. Reading RAM[24576]
// (KBD) calls the Keyboard handler if one is bound.
//
// Programs conventionally end with an infinite loop:
//
//	(END)
//	@END
//	0;JMP
//
// Run detects this loop and stops, see Instance.Halted.
package cpu
