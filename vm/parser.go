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
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultCommentPrefixes lists the line comment markers recognized when a
// Parser has no CommentPrefixes.
var DefaultCommentPrefixes = []string{"//", "#", ";"}

// Commands that are recognized but not implemented by the translator.
var unimplemented = map[string]bool{
	"label":    true,
	"goto":     true,
	"if-goto":  true,
	"function": true,
	"call":     true,
	"return":   true,
}

// Parser parses VM source code.
type Parser struct {
	// Lines starting with any of these prefixes (after leading white space)
	// are ignored. If empty, DefaultCommentPrefixes is used.
	CommentPrefixes []string
}

// Parse reads VM commands from r using the default comment prefixes.
func Parse(name string, r io.Reader) ([]Command, error) {
	return new(Parser).Parse(name, r)
}

// Parse reads all the VM commands from r. The name parameter is used only in
// error messages.
func (p *Parser) Parse(name string, r io.Reader) ([]Command, error) {
	var cmds []Command
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		c, err := p.parseLine(name, line, s.Text())
		if err != nil {
			return nil, err
		}
		if c != nil {
			cmds = append(cmds, c)
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "%s: read failed", name)
	}
	return cmds, nil
}

func (p *Parser) isComment(l string) bool {
	prefixes := p.CommentPrefixes
	if len(prefixes) == 0 {
		prefixes = DefaultCommentPrefixes
	}
	for _, pfx := range prefixes {
		if pfx != "" && strings.HasPrefix(l, pfx) {
			return true
		}
	}
	return false
}

// parseLine returns a nil Command for blank and comment lines.
func (p *Parser) parseLine(name string, line int, l string) (Command, error) {
	l = strings.TrimSpace(l)
	if l == "" || p.isComment(l) {
		return nil, nil
	}
	l, _, _ = strings.Cut(l, "//")
	f := strings.Fields(l)
	if len(f) == 0 {
		return nil, nil
	}
	kw := strings.ToLower(f[0])
	switch kw {
	case "push", "pop":
		return p.pushPop(name, line, kw, f)
	}
	if op, ok := operators[kw]; ok {
		if len(f) != 1 {
			return nil, newError(name, line, ErrShape, "%s takes no argument", kw)
		}
		return ArithmeticCommand{op, line}, nil
	}
	if unimplemented[kw] {
		return nil, newError(name, line, ErrUnsupportedCommand, "%q is not implemented", kw)
	}
	return nil, newError(name, line, ErrUnsupportedCommand, "unknown command %q", f[0])
}

func (p *Parser) pushPop(name string, line int, kw string, f []string) (Command, error) {
	switch {
	case len(f) < 3:
		return nil, newError(name, line, ErrMissingField, "%s needs a segment and an index", kw)
	case len(f) > 3:
		return nil, newError(name, line, ErrShape, "unexpected %q after %s command", f[3], kw)
	}
	c := PushPopCommand{
		Segment: strings.ToLower(f[1]),
		Index:   -1,
		Line:    line,
	}
	if kw == "pop" {
		c.Dir = Pop
	}
	if isDigits(f[2]) {
		n, err := strconv.Atoi(f[2])
		if err != nil {
			return nil, newError(name, line, ErrShape, "index %s out of range", f[2])
		}
		c.Index = n
	} else {
		c.Name = f[2]
	}
	return c, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
