// Copyright 2026 Blink Labs Software
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

package flat

import (
	"fmt"
)

// Error describes a malformed flat encoding. Offset is in bits from the start
// of the program.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf(
		"flat decode error at byte %d (bit %d): %s",
		e.Offset/8,
		e.Offset%8,
		e.Msg,
	)
}

// Reader reads a flat bitstream, most significant bit first.
type Reader struct {
	buf []byte
	pos int
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current bit offset.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return len(r.buf)*8 - r.pos
}

func (r *Reader) errorf(format string, args ...any) error {
	return &Error{Offset: r.pos, Msg: fmt.Sprintf(format, args...)}
}

func (r *Reader) Bit() (bool, error) {
	if r.Remaining() < 1 {
		return false, r.errorf("unexpected end of input")
	}
	ret := (r.buf[r.pos/8]>>(7-uint(r.pos%8)))&1 == 1
	r.pos++
	return ret, nil
}

// Bits reads n bits (at most 64) as an unsigned value.
func (r *Reader) Bits(n int) (uint64, error) {
	if n > 64 {
		return 0, r.errorf("cannot read %d bits at once", n)
	}
	if r.Remaining() < n {
		return 0, r.errorf("unexpected end of input reading %d bits", n)
	}
	var ret uint64
	for range n {
		bit := (r.buf[r.pos/8] >> (7 - uint(r.pos%8))) & 1
		ret = ret<<1 | uint64(bit)
		r.pos++
	}
	return ret, nil
}

// Natural reads a variable-length unsigned integer made of 7-bit groups, least
// significant group first, with a leading continuation bit per group.
func (r *Reader) Natural() (uint64, error) {
	start := r.pos
	var ret uint64
	var shift uint
	for {
		group, err := r.Bits(8)
		if err != nil {
			return 0, err
		}
		value := group & 0x7f
		if shift >= 64 || (shift > 57 && value>>(64-shift) != 0) {
			return 0, &Error{Offset: start, Msg: "natural number overflows 64 bits"}
		}
		ret |= value << shift
		shift += 7
		if group&0x80 == 0 {
			return ret, nil
		}
	}
}

// Filler consumes padding: zero or more 0 bits followed by a 1 bit, which must end
// on a byte boundary.
func (r *Reader) Filler() error {
	for {
		bit, err := r.Bit()
		if err != nil {
			return err
		}
		if bit {
			break
		}
	}
	if r.pos%8 != 0 {
		return r.errorf("filler does not end on a byte boundary")
	}
	return nil
}

// ByteString reads a byte-aligned, chunked byte string.
func (r *Reader) ByteString() ([]byte, error) {
	if err := r.Filler(); err != nil {
		return nil, err
	}
	ret := []byte{}
	for {
		chunkLen, err := r.Bits(8)
		if err != nil {
			return nil, err
		}
		if chunkLen == 0 {
			return ret, nil
		}
		if r.Remaining() < int(chunkLen)*8 {
			return nil, r.errorf(
				"byte string chunk of %d bytes exceeds input",
				chunkLen,
			)
		}
		start := r.pos / 8
		ret = append(ret, r.buf[start:start+int(chunkLen)]...)
		r.pos += int(chunkLen) * 8
	}
}
