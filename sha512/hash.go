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
// github.com:SymbolNotFound/gosha2/sha512/hash.go

package sha512

import (
	"encoding/binary"
	"io"
)

// Variant selects which member of the SHA-512 family a context computes.
// The two variants share identical mechanics; they differ only in their
// starting chaining value and in how many bytes of it become the digest.
type Variant int

const (
	SHA512 Variant = iota
	SHA384
)

// Hasher is the streaming interface to this package's block transform. It
// satisfies io.Writer so it composes with anything that copies into a
// writer (io.Copy, io.MultiWriter, and so on).
//
// A Hasher is owned exclusively by the goroutine using it; Write and Sum
// are not safe for concurrent use on the same Hasher.  Distinct Hashers
// share no mutable state and may be used concurrently without
// synchronization -- see the batch package for a pool built on exactly
// that guarantee.
type Hasher interface {
	io.Writer
	// Sum finalizes the hash and returns the digest.  After Sum returns,
	// the Hasher is consumed; Reset must be called before it is written
	// to or summed again.
	Sum() (Digest, error)
	// Reset re-arms the Hasher for a new message, using the same variant
	// it was constructed with.
	Reset()
}

type state struct {
	h        [8]uint64
	lenHi    uint64
	lenLo    uint64
	buf      [BLOCK_BYTES]byte
	bufUsed  int
	variant  Variant
	consumed bool
}

// New returns a Hasher for the given variant.
func New(variant Variant) Hasher {
	s := &state{}
	s.variant = variant
	s.resetChain()
	return s
}

// New512 returns a Hasher computing SHA-512.
func New512() Hasher { return New(SHA512) }

// New384 returns a Hasher computing SHA-384.
func New384() Hasher { return New(SHA384) }

func (s *state) resetChain() {
	switch s.variant {
	case SHA384:
		s.h = iv384
	default:
		s.h = iv512
	}
	s.lenHi, s.lenLo = 0, 0
	s.bufUsed = 0
	clear(s.buf[:])
	s.consumed = false
}

func (s *state) Reset() {
	s.resetChain()
}

// Write appends data to the message under construction.  The resulting
// digest is the same no matter how the overall message was split across
// calls to Write (chunking invariance, spec section 8).
func (s *state) Write(data []byte) (int, error) {
	if s.consumed {
		return 0, ErrConsumed
	}
	n := len(data)
	if n == 0 {
		return 0, nil
	}

	s.addBitLength(n)

	if s.bufUsed > 0 {
		room := BLOCK_BYTES - s.bufUsed
		if n < room {
			copy(s.buf[s.bufUsed:], data)
			s.bufUsed += n
			return n, nil
		}
		copy(s.buf[s.bufUsed:], data[:room])
		block(&s.h, s.buf[:])
		s.bufUsed = 0
		data = data[room:]
	}

	if whole := len(data) / BLOCK_BYTES * BLOCK_BYTES; whole > 0 {
		block(&s.h, data[:whole])
		data = data[whole:]
	}

	if len(data) > 0 {
		copy(s.buf[:], data)
		s.bufUsed = len(data)
	}

	return n, nil
}

// addBitLength folds n bytes (as bits) into the 128-bit length counter,
// carrying from the low word into the high word on overflow.  n is always
// a non-negative byte count from a single Write call, never the running
// total, so the carry logic only ever needs to account for one call's
// worth of bits at a time.
func (s *state) addBitLength(n int) {
	bits := uint64(n) << 3
	newLo := s.lenLo + bits
	if newLo < s.lenLo {
		s.lenHi++
	}
	s.lenHi += uint64(n) >> 61
	s.lenLo = newLo
}

// Sum finalizes the message: appends the 0x80 padding byte, zero-fills to
// a length boundary (adding one more block first if there isn't room for
// the 16-byte length field), writes the 128-bit bit length, and runs the
// last block transform.  See spec section 4.2.3 for the branch on
// bufUsed > 112 that decides whether an extra block is needed.
func (s *state) Sum() (Digest, error) {
	if s.consumed {
		return nil, ErrConsumed
	}

	var size int
	switch s.variant {
	case SHA512:
		size = DIGEST_BYTES
	case SHA384:
		size = DIGEST_BYTES_384
	default:
		return nil, ErrInvalidVariant
	}

	lenHi, lenLo := s.lenHi, s.lenLo

	s.buf[s.bufUsed] = 0x80
	s.bufUsed++

	if s.bufUsed > BLOCK_BYTES-16 {
		clear(s.buf[s.bufUsed:])
		block(&s.h, s.buf[:])
		s.bufUsed = 0
	}

	clear(s.buf[s.bufUsed : BLOCK_BYTES-16])
	binary.BigEndian.PutUint64(s.buf[BLOCK_BYTES-16:BLOCK_BYTES-8], lenHi)
	binary.BigEndian.PutUint64(s.buf[BLOCK_BYTES-8:BLOCK_BYTES], lenLo)
	block(&s.h, s.buf[:])

	d := newDigest(s.h, size)
	s.zero()
	return d, nil
}

func (s *state) zero() {
	clear(s.h[:])
	clear(s.buf[:])
	s.lenHi, s.lenLo = 0, 0
	s.bufUsed = 0
	s.consumed = true
}
