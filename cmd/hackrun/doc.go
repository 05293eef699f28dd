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

// The hackrun command runs a program on an emulated Hack computer and prints
// the CPU state upon exit.
//
// The program can be given as machine code (.hack), assembly (.asm) or VM code
// (.vm). VM code is translated and terminated with an infinite loop, and SP is
// set to 256 unless -set says otherwise. Execution stops when the program
// runs past the end of ROM, enters an infinite loop or after -steps
// instructions.
//
// Usage:
//
//	hackrun [options] file
//
//	-debug
//		  enable debug diagnostics
//	-dump addr[:count]
//		  print RAM[addr] or count words from addr upon exit (can be
//		  specified multiple times)
//	-kbd
//		  feed keys typed on stdin to the keyboard register
//	-noraw
//		  disable raw terminal IO with -kbd
//	-set addr=value
//		  preset RAM (can be specified multiple times)
//	-stack
//		  print the VM stack (RAM[256:SP]) upon exit
//	-steps n
//		  stop after n instructions, 0 for no limit (default 1000000)
//
// Addresses are decimal or one of the predefined symbols SP, LCL, ARG, THIS,
// THAT, R0-R15, SCREEN and KBD. For example:
//
//	hackrun -set LCL=300 -dump 300:4 -stack BasicTest.vm
package main
