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

package vm

import (
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/endrber/nand2tetris/asm"
	"github.com/endrber/nand2tetris/cpu"
)

// scratch register used by pop to hold the target address
const scratch = "@R13"

var (
	pushD = []string{"@SP", "A=M", "M=D", "@SP", "M=M+1"}
	popD  = []string{"@SP", "M=M-1", "A=M", "D=M"}
	// pop the top of the stack to D and point A at the new top
	popDTop = []string{"@SP", "M=M-1", "A=M", "D=M", "@SP", "M=M-1", "A=M"}
	incSP   = []string{"@SP", "M=M+1"}
)

var binaryComp = map[Operator]string{
	OpAdd: "M=D+M",
	OpSub: "M=M-D",
	OpAnd: "M=D&M",
	OpOr:  "M=D|M",
}

var unaryComp = map[Operator]string{
	OpNeg: "M=-M",
	OpNot: "M=!M",
}

var compareJump = map[Operator]string{
	OpEq: "D;JEQ",
	OpGt: "D;JGT",
	OpLt: "D;JLT",
}

// segments addressed through a base pointer register
var basePointers = map[string]string{
	SegLocal:    "@LCL",
	SegArgument: "@ARG",
	SegThis:     "@THIS",
	SegThat:     "@THAT",
}

// segments mapped at a fixed address
var fixedSegments = map[string]struct{ base, size int }{
	SegTemp:    {cpu.Temp, 8},
	SegPointer: {cpu.THIS, 2},
}

// Option interface
type Option func(*Translator) error

// CommentPrefixes sets the line comment markers recognized by the parser.
func CommentPrefixes(prefixes ...string) Option {
	return func(t *Translator) error {
		t.parser.CommentPrefixes = append([]string(nil), prefixes...)
		return nil
	}
}

// Annotate enables or disables the output of a "// command" line before the
// code generated for each command. The default is false.
func Annotate(annotate bool) Option {
	return func(t *Translator) error { t.annotate = annotate; return nil }
}

// Translator translates VM commands to Hack assembly.
//
// The labels generated for comparison commands are numbered with a counter
// shared by all the translation units processed by the same Translator, so
// that the output of several units can be assembled together.
type Translator struct {
	parser   Parser
	annotate bool
	labels   int
}

// New returns a new Translator.
func New(opts ...Option) (*Translator, error) {
	t := new(Translator)
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// UnitName returns the translation unit name for the given file name: its
// base name without extension. It prefixes the symbols of the static segment.
func UnitName(fileName string) string {
	b := filepath.Base(fileName)
	return strings.TrimSuffix(b, filepath.Ext(b))
}

// Translate parses all the commands read from r and translates them. The name
// parameter names the source in error messages; the translation unit name is
// derived from it with UnitName.
//
// No assembly is returned unless the whole source translates successfully.
func (t *Translator) Translate(name string, r io.Reader) ([]string, error) {
	cmds, err := t.parser.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return t.Generate(name, cmds)
}

// Generate translates the given commands.
func (t *Translator) Generate(name string, cmds []Command) ([]string, error) {
	g := gen{name: name, unit: UnitName(name), t: t}
	for _, c := range cmds {
		if t.annotate {
			g.emit("// " + c.String())
		}
		var err error
		switch c := c.(type) {
		case ArithmeticCommand:
			err = g.arithmetic(c)
		case PushPopCommand:
			err = g.pushPop(c)
		default:
			err = newError(name, c.SourceLine(), ErrUnsupportedCommand, "no translation for %T", c)
		}
		if err != nil {
			return nil, err
		}
	}
	return g.out, nil
}

// EndLoop returns the code of an infinite loop to append to a translated
// program so that it does not run past its end.
func EndLoop() []string {
	return []string{"(VM$END)", "@VM$END", "0;JMP"}
}

type gen struct {
	name string
	unit string
	t    *Translator
	out  []string
}

func (g *gen) emit(lines ...string) {
	g.out = append(g.out, lines...)
}

func (g *gen) arithmetic(c ArithmeticCommand) error {
	if comp, ok := binaryComp[c.Op]; ok {
		g.emit(popDTop...)
		g.emit(comp)
		g.emit(incSP...)
		return nil
	}
	if comp, ok := unaryComp[c.Op]; ok {
		g.emit("@SP", "M=M-1", "A=M", comp)
		g.emit(incSP...)
		return nil
	}
	if jmp, ok := compareJump[c.Op]; ok {
		n := strconv.Itoa(g.t.labels)
		g.t.labels++
		op := strings.ToUpper(string(c.Op))
		isTrue, end := op+"$TRUE."+n, op+"$END."+n
		g.emit(popDTop...)
		g.emit("D=M-D", "@"+isTrue, jmp)
		g.emit("@SP", "A=M", "M=0", "@"+end, "0;JMP")
		g.emit("("+isTrue+")", "@SP", "A=M", "M=-1")
		g.emit("(" + end + ")")
		g.emit(incSP...)
		return nil
	}
	return newError(g.name, c.Line, ErrUnsupportedOperation, "operator %q", c.Op)
}

func (g *gen) pushPop(c PushPopCommand) error {
	if c.Segment == SegStatic {
		return g.static(c)
	}
	if c.Index < 0 {
		if _, ok := basePointers[c.Segment]; ok || c.Segment == SegConstant || fixedSegments[c.Segment].size > 0 {
			return newError(g.name, c.Line, ErrShape, "%s: index must be a non-negative integer", c)
		}
		return newError(g.name, c.Line, ErrUnsupportedOperation, "segment %q", c.Segment)
	}
	idx := strconv.Itoa(c.Index)
	if c.Segment == SegConstant {
		if c.Dir == Pop {
			return newError(g.name, c.Line, ErrUnsupportedOperation, "cannot pop to constant")
		}
		if c.Index > cpu.AddrLimit {
			return newError(g.name, c.Line, ErrShape, "constant %d out of range 0..%d", c.Index, cpu.AddrLimit)
		}
		g.emit("@"+idx, "D=A")
		g.emit(pushD...)
		return nil
	}
	if base, ok := basePointers[c.Segment]; ok {
		if c.Dir == Push {
			g.emit("@"+idx, "D=A", base, "A=D+M", "D=M")
			g.emit(pushD...)
			return nil
		}
		g.emit("@"+idx, "D=A", base, "D=D+M", scratch, "M=D")
		g.emit(popD...)
		g.emit(scratch, "A=M", "M=D")
		return nil
	}
	if seg, ok := fixedSegments[c.Segment]; ok {
		if c.Index >= seg.size {
			return newError(g.name, c.Line, ErrShape, "%s: index out of range 0..%d", c, seg.size-1)
		}
		g.direct(c.Dir, "@"+strconv.Itoa(seg.base+c.Index))
		return nil
	}
	return newError(g.name, c.Line, ErrUnsupportedOperation, "segment %q", c.Segment)
}

func (g *gen) static(c PushPopCommand) error {
	idx := c.Name
	if c.Index >= 0 {
		idx = strconv.Itoa(c.Index)
	}
	sym := g.unit + "." + idx
	if !asm.IsValidSymbol(sym) {
		return newError(g.name, c.Line, ErrShape, "%s: invalid static symbol %q", c, sym)
	}
	g.direct(c.Dir, "@"+sym)
	return nil
}

// direct generates a push or pop for a fixed address.
func (g *gen) direct(dir Direction, addr string) {
	if dir == Push {
		g.emit(addr, "D=M")
		g.emit(pushD...)
		return
	}
	g.emit(popD...)
	g.emit(addr, "M=D")
}
