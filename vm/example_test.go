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

package vm_test

import (
	"fmt"
	"strings"

	"github.com/endrber/nand2tetris/asm"
	"github.com/endrber/nand2tetris/cpu"
	"github.com/endrber/nand2tetris/vm"
)

func ExampleTranslator_Translate() {
	tr, err := vm.New(vm.Annotate(true))
	if err != nil {
		panic(err)
	}
	lines, err := tr.Translate("Main.vm", strings.NewReader("push constant 7\npop static 0\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, l := range lines {
		fmt.Println(l)
	}

	// Output:
	// // push constant 7
	// @7
	// D=A
	// @SP
	// A=M
	// M=D
	// @SP
	// M=M+1
	// // pop static 0
	// @SP
	// M=M-1
	// A=M
	// D=M
	// @Main.0
	// M=D
}

// Shows the full pipeline: VM code to assembly to machine code, executed on
// the Hack CPU.
func ExampleTranslator_pipeline() {
	tr, _ := vm.New()
	lines, err := tr.Translate("Cmp.vm", strings.NewReader(`
		push constant 2
		push constant 3
		lt
		push constant 2
		push constant 3
		gt
	`))
	if err != nil {
		panic(err)
	}
	rom, err := asm.AssembleLines("Cmp.asm", append(lines, vm.EndLoop()...))
	if err != nil {
		panic(err)
	}
	i, _ := cpu.New(rom, cpu.Preset(map[int]cpu.Word{cpu.SP: 256}))
	if err = i.Run(0); err != nil {
		panic(err)
	}
	fmt.Println(i.Stack(256))

	// Output:
	// [-1 0]
}

func ExampleParse() {
	_, err := vm.Parse("Loop.vm", strings.NewReader("push constant 0\nlabel LOOP\n"))
	fmt.Println(err)

	// Output:
	// Loop.vm:2: unsupported command: "label" is not implemented
}
