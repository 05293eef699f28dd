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

package main

import (
	"io"
	"sync/atomic"

	"github.com/endrber/nand2tetris/cpu"
)

// Hack key codes for the control keys a terminal can send as a single byte.
var keyCodes = map[byte]cpu.Word{
	'\r': 128,
	'\n': 128,
	8:    129,
	127:  129,
	27:   140,
}

func keyCode(b byte) cpu.Word {
	if k, ok := keyCodes[b]; ok {
		return k
	}
	return cpu.Word(b)
}

// keyboard feeds bytes read from a terminal to the Hack keyboard register.
// Terminals only report key presses, so each key reads as pressed until the
// program has polled it, then as released.
type keyboard struct {
	key atomic.Uint32
}

func (k *keyboard) read(r io.Reader) {
	var b [1]byte
	for {
		if _, err := r.Read(b[:]); err != nil {
			return
		}
		k.key.Store(uint32(keyCode(b[0])))
	}
}

func (k *keyboard) poll() cpu.Word {
	return cpu.Word(k.key.Swap(0))
}
