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

package asm

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies assembly errors.
type ErrorKind int

// Assembly error kinds.
const (
	ErrShape          ErrorKind = iota + 1 // malformed instruction
	ErrSymbol                              // invalid symbol name
	ErrMnemonic                            // unknown dest, comp or jump mnemonic
	ErrMissingField                        // missing A-instruction operand or comp field
	ErrAddressRange                        // address literal outside 0..32767
	ErrDuplicateLabel                      // label bound twice
)

var kindNames = [...]string{
	ErrShape:          "malformed instruction",
	ErrSymbol:         "invalid symbol",
	ErrMnemonic:       "invalid mnemonic",
	ErrMissingField:   "missing field",
	ErrAddressRange:   "address out of range",
	ErrDuplicateLabel: "duplicate label",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the error type returned by the parser and the assembler. Line is
// 1-indexed and 0 if unknown.
type Error struct {
	Name string
	Line int
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %s", e.Name, e.Line, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Name, e.Kind, e.Msg)
}

func newError(name string, line int, kind ErrorKind, format string, args ...interface{}) error {
	return errors.WithStack(&Error{name, line, kind, fmt.Sprintf(format, args...)})
}

// IsKind reports whether the cause of err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := errors.Cause(err).(*Error)
	return ok && e.Kind == kind
}
