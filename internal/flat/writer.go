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

// Writer builds a flat bitstream, most significant bit first.
type Writer struct {
	buf  []byte
	nbit int
}

func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// Len returns the number of bits written.
func (w *Writer) Len() int {
	return w.nbit
}

func (w *Writer) Bit(bit bool) {
	if w.nbit%8 == 0 {
		w.buf = append(w.buf, 0)
	}
	if bit {
		w.buf[len(w.buf)-1] |= 1 << (7 - uint(w.nbit%8))
	}
	w.nbit++
}

// Bits writes the low n bits of value, most significant first.
func (w *Writer) Bits(value uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		w.Bit((value>>uint(i))&1 == 1)
	}
}

// CopyBits appends the bit range [start, end) of src.
func (w *Writer) CopyBits(src []byte, start int, end int) {
	// Fast path when both sides are byte aligned
	if start%8 == 0 && w.nbit%8 == 0 {
		for end-start >= 8 {
			w.buf = append(w.buf, src[start/8])
			w.nbit += 8
			start += 8
		}
	}
	for i := start; i < end; i++ {
		w.Bit((src[i/8]>>(7-uint(i%8)))&1 == 1)
	}
}

// Filler pads with 0 bits followed by a single 1 bit up to the next byte boundary.
// A full byte is written when already aligned.
func (w *Writer) Filler() {
	for w.nbit%8 != 7 {
		w.Bit(false)
	}
	w.Bit(true)
}

// ByteString writes a filler followed by the data in chunks of at most 255 bytes and
// a zero-length terminator chunk.
func (w *Writer) ByteString(data []byte) {
	w.Filler()
	for len(data) > 0 {
		chunk := min(len(data), maxChunkedBytes)
		w.buf = append(w.buf, byte(chunk))
		w.buf = append(w.buf, data[:chunk]...)
		w.nbit += (chunk + 1) * 8
		data = data[chunk:]
	}
	w.buf = append(w.buf, 0)
	w.nbit += 8
}

// Bytes returns the written data. Any partial final byte is zero padded.
func (w *Writer) Bytes() []byte {
	return w.buf
}
