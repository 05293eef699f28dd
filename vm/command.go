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

import "strconv"

// Operator is an arithmetic or logical VM command.
type Operator string

// Arithmetic and logical operators.
const (
	OpAdd Operator = "add"
	OpSub Operator = "sub"
	OpNeg Operator = "neg"
	OpEq  Operator = "eq"
	OpGt  Operator = "gt"
	OpLt  Operator = "lt"
	OpAnd Operator = "and"
	OpOr  Operator = "or"
	OpNot Operator = "not"
)

var operators = map[string]Operator{
	"add": OpAdd,
	"sub": OpSub,
	"neg": OpNeg,
	"eq":  OpEq,
	"gt":  OpGt,
	"lt":  OpLt,
	"and": OpAnd,
	"or":  OpOr,
	"not": OpNot,
}

// Direction is push or pop.
type Direction int

// Push/pop directions.
const (
	Push Direction = iota
	Pop
)

func (d Direction) String() string {
	if d == Pop {
		return "pop"
	}
	return "push"
}

// Segment names.
const (
	SegConstant = "constant"
	SegLocal    = "local"
	SegArgument = "argument"
	SegThis     = "this"
	SegThat     = "that"
	SegTemp     = "temp"
	SegPointer  = "pointer"
	SegStatic   = "static"
)

// Command is a parsed VM command: either an ArithmeticCommand or a
// PushPopCommand.
type Command interface {
	// SourceLine returns the 1-indexed source line of the command.
	SourceLine() int
	String() string
	command()
}

// ArithmeticCommand pops its operands off the stack and pushes the result.
type ArithmeticCommand struct {
	Op   Operator
	Line int
}

// PushPopCommand moves a value between the stack and a memory segment.
//
// Index holds the numeric index. If the index token is not a number, Index
// is -1 and Name holds the token.
type PushPopCommand struct {
	Dir     Direction
	Segment string
	Index   int
	Name    string
	Line    int
}

func (ArithmeticCommand) command() {}
func (PushPopCommand) command()    {}

func (c ArithmeticCommand) SourceLine() int { return c.Line }
func (c PushPopCommand) SourceLine() int    { return c.Line }

func (c ArithmeticCommand) String() string { return string(c.Op) }

func (c PushPopCommand) String() string {
	idx := c.Name
	if c.Index >= 0 {
		idx = strconv.Itoa(c.Index)
	}
	return c.Dir.String() + " " + c.Segment + " " + idx
}
