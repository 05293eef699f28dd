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

// The vmtranslator command translates a VM program into Hack assembly.
//
// Usage:
//
//	vmtranslator [options] file.vm
//
//	-annotate
//		  precede each translated command with a comment
//	-comment prefix
//		  treat lines starting with prefix as comments (can be specified
//		  multiple times, replaces the default "//", "#" and ";")
//	-debug
//		  enable debug diagnostics
//	-hack
//		  also assemble the output into a .hack file
//	-halt
//		  append an infinite loop to the generated code
//	-o filename
//		  write assembly to filename (default: source name with a .asm extension)
//	-v
//		  print a summary to stderr
//
// The static variables of file.vm are named after the base name of the file:
// "pop static 3" in dir/Main.vm stores into the assembler variable Main.3.
package main
