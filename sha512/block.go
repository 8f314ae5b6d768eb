// Copyright (c) 2024 Symbol Not Found LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:SymbolNotFound/gosha2/sha512/block.go

package sha512

import (
	"encoding/binary"
	"math/bits"
)

// Size of one message block in bytes (1024 bits).
const BLOCK_BYTES = 128

// Number of 64-bit words making up one message block.
const BLOCK_WORDS = 16

// Size of the rolling message schedule.  Only 16 words are kept live at a
// time; W[i] is stored at schedule[i%16], following the "small footprint"
// shape of the reference implementation rather than a fully-expanded
// 80-word schedule (both produce identical results, see spec 4.1).
const scheduleWords = 16

// block folds every complete 128-byte chunk of data into the chaining
// state h.  It is a pure function of its arguments: it does not read or
// write anything about buffering or bit-length accounting, and it leaves
// any trailing partial block in data untouched (the caller is responsible
// for only ever passing a length that is a multiple of BLOCK_BYTES).
func block(h *[8]uint64, data []byte) {
	var schedule [scheduleWords]uint64

	for len(data) >= BLOCK_BYTES {
		for i := 0; i < BLOCK_WORDS; i++ {
			schedule[i] = binary.BigEndian.Uint64(data[8*i : 8*i+8])
		}

		a, b, c, d := h[0], h[1], h[2], h[3]
		e, f, g, hh := h[4], h[5], h[6], h[7]

		for i := 0; i < 80; i++ {
			w := schedule[i&0x0f]
			if i >= 16 {
				s0 := sigma0(schedule[(i+1)&0x0f])
				s1 := sigma1(schedule[(i+14)&0x0f])
				w = schedule[i&0x0f] + s0 + s1 + schedule[(i+9)&0x0f]
				schedule[i&0x0f] = w
			}

			t1 := hh + bigSigma1(e) + ch(e, f, g) + k[i] + w
			t2 := bigSigma0(a) + maj(a, b, c)

			hh, g, f, e = g, f, e, d+t1
			d, c, b, a = c, b, a, t1+t2
		}

		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e
		h[5] += f
		h[6] += g
		h[7] += hh

		data = data[BLOCK_BYTES:]
	}
}

func ch(x, y, z uint64) uint64  { return (x & y) ^ (^x & z) }
func maj(x, y, z uint64) uint64 { return (x & y) ^ (x & z) ^ (y & z) }

func bigSigma0(x uint64) uint64 {
	return bits.RotateLeft64(x, -28) ^ bits.RotateLeft64(x, -34) ^ bits.RotateLeft64(x, -39)
}

func bigSigma1(x uint64) uint64 {
	return bits.RotateLeft64(x, -14) ^ bits.RotateLeft64(x, -18) ^ bits.RotateLeft64(x, -41)
}

func sigma0(x uint64) uint64 {
	return bits.RotateLeft64(x, -1) ^ bits.RotateLeft64(x, -8) ^ (x >> 7)
}

func sigma1(x uint64) uint64 {
	return bits.RotateLeft64(x, -19) ^ bits.RotateLeft64(x, -61) ^ (x >> 6)
}
