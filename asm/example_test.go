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
	"fmt"
	"os"
	"strings"

	"github.com/endrber/nand2tetris/asm"
)

// Sums 1..100 into variable sum.
func ExampleAssemble() {
	code := `
	@i		// i = 1
	M=1
	@sum	// sum = 0
	M=0
(LOOP)
	@i		// if i > 100 goto END
	D=M
	@100
	D=D-A
	@END
	D;JGT
	@i		// sum += i
	D=M
	@sum
	M=D+M
	@i		// i++
	M=M+1
	@LOOP
	0;JMP
(END)
	@END
	0;JMP
`
	img, err := asm.Assemble("sum.asm", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}

	asm.WriteText(os.Stdout, img[:6])
	fmt.Println("...")
	asm.DisassembleAll(os.Stdout, img[16:], 16)

	// Output:
	// 0000000000010000
	// 1110111111001000
	// 0000000000010001
	// 1110101010001000
	// 0000000000010000
	// 1111110000010000
	// ...
	//     16	@4
	//     17	0;JMP
	//     18	@18
	//     19	0;JMP
}

func ExampleAssemble_error() {
	_, err := asm.Assemble("bad.asm", strings.NewReader("@x\nD=D*A\n"))
	fmt.Println(err)

	// Output:
	// bad.asm:2: invalid mnemonic: comp "D*A"
}
