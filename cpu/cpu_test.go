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

package cpu_test

import (
	"strings"
	"testing"

	"github.com/endrber/nand2tetris/asm"
	"github.com/endrber/nand2tetris/cpu"
)

type W []cpu.Word

func setup(t *testing.T, name, code string, opts ...cpu.Option) *cpu.Instance {
	t.Helper()
	rom, err := asm.Assemble(name, strings.NewReader(code))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	i, err := cpu.New(rom, opts...)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return i
}

var tests = [...]struct {
	name string
	code string
	d    int
	ram  map[int]int
}{
	{"const", "D=1", 1, nil},
	{"minus one", "D=-1", -1, nil},
	{"load A", "@1234\nD=A", 1234, nil},
	{"not", "@5\nD=!A", -6, nil},
	{"neg", "@5\nD=-A", -5, nil},
	{"inc", "@5\nD=A+1", 6, nil},
	{"dec", "@5\nD=A-1\nD=D-1", 3, nil},
	{"D+A", "@3\nD=A\n@4\nD=D+A", 7, nil},
	{"D-A", "@3\nD=A\n@4\nD=D-A", -1, nil},
	{"A-D", "@3\nD=A\n@4\nD=A-D", 1, nil},
	{"and", "@12\nD=A\n@10\nD=D&A", 8, nil},
	{"or", "@12\nD=A\n@10\nD=D|A", 14, nil},
	{"store", "@42\nD=A\n@100\nM=D", 42, map[int]int{100: 42}},
	{"M ops", "@7\nD=A\n@100\nM=D\nM=M+1\nD=D+M\nMD=M-D", -7, map[int]int{100: -7}},
	{"AM", "@3\nD=A\n@200\nM=D\nAM=M+1\nM=-1", 3, map[int]int{200: 4, 4: -1}},
	{"overflow", "@32767\nD=A\nD=D+1", -32768, nil},
	{"jump taken", "@7\nD=A\n@SKIP\nD;JGT\nD=0\n(SKIP)\nD=D+1", 8, nil},
	{"jump not taken", "D=0\n@SKIP\nD;JNE\nD=-1\n(SKIP)", -1, nil},
	{"JLT", "D=-1\n@NEG\nD;JLT\nD=0\n(NEG)\nD=D-1", -2, nil},
	{"loop", `
	@10
	D=A
	@n
	M=D
	@sum
	M=0
(LOOP)
	@n
	D=M
	@END
	D;JEQ
	@sum
	M=D+M
	@n
	M=M-1
	@LOOP
	0;JMP
(END)
	@sum
	D=M
`, 55, map[int]int{16: 0, 17: 55}},
}

func TestCore(t *testing.T) {
	for _, test := range tests {
		i := setup(t, test.name, test.code)
		if err := i.Run(10000); err != nil {
			t.Errorf("%s: %+v", test.name, err)
			continue
		}
		if i.PC != len(i.ROM) {
			t.Errorf("%s: Bad PC %d != %d", test.name, i.PC, len(i.ROM))
		}
		if i.D.Int() != test.d {
			t.Errorf("%s: D = %d, expected %d", test.name, i.D.Int(), test.d)
		}
		for addr, v := range test.ram {
			if i.RAM[addr].Int() != v {
				t.Errorf("%s: RAM[%d] = %d, expected %d", test.name, addr, i.RAM[addr].Int(), v)
			}
		}
	}
}

func TestRun_halt(t *testing.T) {
	i := setup(t, "halt", "@5\nD=A\n(END)\n@END\n0;JMP\nD=0")
	if err := i.Run(0); err != nil {
		t.Fatal(err)
	}
	if !i.Halted() {
		t.Fatal("end loop not detected")
	}
	if i.PC != 2 || i.D != 5 {
		t.Errorf("PC = %d, D = %d", i.PC, i.D)
	}
	if n := i.InstructionCount(); n != 4 {
		t.Errorf("executed %d instructions, expected 4", n)
	}
}

func TestRun_stepLimit(t *testing.T) {
	// not the canonical end loop: the jump target is not the A-instruction
	i := setup(t, "spin", "(A)\nD=D+1\n@A\n0;JMP")
	if err := i.Run(100); err != cpu.ErrStepLimit {
		t.Fatalf("expected ErrStepLimit, got %v", err)
	}
	if i.Halted() {
		t.Error("should not be halted")
	}
	if n := i.InstructionCount(); n != 100 {
		t.Errorf("executed %d instructions", n)
	}
}

func TestKeyboard(t *testing.T) {
	var reads int
	kbd := func() cpu.Word {
		reads++
		return 'K'
	}
	i := setup(t, "kbd", "@KBD\nD=M\n@R0\nM=D", cpu.BindKeyboard(kbd))
	if err := i.Run(0); err != nil {
		t.Fatal(err)
	}
	if i.RAM[0] != 'K' || reads != 1 {
		t.Errorf("RAM[0] = %d, %d keyboard reads", i.RAM[0], reads)
	}
}

func TestPreset(t *testing.T) {
	i := setup(t, "preset", "@SP\nD=M", cpu.Preset(map[int]cpu.Word{cpu.SP: 256, cpu.LCL: 300}))
	if err := i.Run(0); err != nil {
		t.Fatal(err)
	}
	if i.D != 256 || i.RAM[cpu.LCL] != 300 {
		t.Errorf("D = %d, LCL = %d", i.D, i.RAM[cpu.LCL])
	}
	if _, err := cpu.New(nil, cpu.Preset(map[int]cpu.Word{cpu.RAMSize: 1})); err == nil {
		t.Error("expected error for out of range preset")
	}
}

func TestStack(t *testing.T) {
	i, err := cpu.New(nil, cpu.Preset(map[int]cpu.Word{cpu.SP: 259, 256: 1, 257: 2, 258: 0xFFFF}))
	if err != nil {
		t.Fatal(err)
	}
	s := i.Stack(256)
	want := W{1, 2, 0xFFFF}
	if len(s) != len(want) {
		t.Fatalf("stack %v, want %v", s, want)
	}
	for k := range want {
		if s[k] != want[k] {
			t.Errorf("stack %v, want %v", s, want)
			break
		}
	}
	if s[2].String() != "-1" {
		t.Errorf("Word.String() = %s", s[2])
	}
}

func TestStep_invalid(t *testing.T) {
	i, err := cpu.New(W{0x8000})
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(0); err == nil {
		t.Fatal("expected invalid instruction error")
	}
	if i.PC != 0 {
		t.Errorf("PC = %d, expected 0", i.PC)
	}
}
