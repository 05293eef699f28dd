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

// The hackasm command translates a Hack assembly program into Hack machine
// code, one 16 character binary word per line.
//
// Usage:
//
//	hackasm [options] file.asm
//
//	-debug
//		  enable debug diagnostics
//	-o filename
//		  write machine code to filename (default: source name with a .hack extension)
//	-symbols
//		  dump the symbol table to stderr
//	-v
//		  print a summary to stderr
//
// Errors are reported as "file:line: kind: message". Nothing is written unless
// the whole program assembles.
package main
