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

package cpu

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/endrber/nand2tetris/internal/hio"
	"github.com/pkg/errors"
)

// FormatWord returns the 16 characters binary representation of w.
func FormatWord(w Word) string {
	s := strconv.FormatUint(uint64(w), 2)
	return strings.Repeat("0", 16-len(s)) + s
}

// ParseWord parses a 16 characters binary string.
func ParseWord(s string) (Word, error) {
	if len(s) != 16 {
		return 0, errors.Errorf("expected 16 binary digits, got %q", s)
	}
	v, err := strconv.ParseUint(s, 2, 16)
	if err != nil {
		return 0, errors.Errorf("expected 16 binary digits, got %q", s)
	}
	return Word(v), nil
}

// Read reads a program in text format: one 16 characters binary word per
// line. Blank lines are ignored. The name parameter is used only in error
// messages.
func Read(name string, r io.Reader) ([]Word, error) {
	var rom []Word
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		t := strings.TrimSpace(s.Text())
		if t == "" {
			continue
		}
		w, err := ParseWord(t)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", name, line)
		}
		rom = append(rom, w)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	if len(rom) > ROMSize {
		return nil, errors.Errorf("%s: program too large: %d words", name, len(rom))
	}
	return rom, nil
}

// Write writes the given words in text format.
func Write(w io.Writer, rom []Word) error {
	ew := hio.NewErrWriter(w)
	for _, v := range rom {
		ew.WriteString(FormatWord(v))
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}

// Load loads a program from the text file fileName.
func Load(fileName string) ([]Word, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	rom, err := Read(fileName, f)
	if err != nil {
		return nil, errors.Wrap(err, "load failed")
	}
	return rom, nil
}

// Save saves a program to a text file. On error, the file is deleted.
func Save(fileName string, rom []Word) error {
	err := hio.WriteFile(fileName, func(w io.Writer) error {
		return Write(w, rom)
	})
	return errors.Wrap(err, "save failed")
}
