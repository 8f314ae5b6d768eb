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
// github.com:SymbolNotFound/gosha2/drbg/drbg.go

// Package drbg implements a deterministic byte-stream generator built on
// top of sha512.Sum512, for callers that want a reproducible sequence of
// values from a seed (simulation replays, test fixtures) rather than a
// cryptographically secure RNG.  It is not a CSPRNG and must not be used
// to generate keys, nonces, or anything else where unpredictability
// matters.
package drbg

import (
	"encoding/binary"

	"github.com/SymbolNotFound/gosha2/sha512"
)

// wordsPerDigest is the number of uint64 words a SHA-512 digest yields
// before the generator must re-hash to produce more.
const wordsPerDigest = sha512.DIGEST_BYTES / 8

// Source is the minimal interface a Generator implements: a stream of
// uint64 words, the same Uint64 method that math/rand.Source64 declares.
// A Generator has no Int63 or Seed method, so it does not satisfy
// math/rand.Source itself.
type Source interface {
	Uint64() uint64
}

// Generator walks the bytes of successive SHA-512 digests of
// seed‖counter, handing out one uint64 at a time and incrementing the
// counter and re-hashing once a digest is exhausted.  Two Generators
// constructed with the same seed produce identical sequences.
type Generator struct {
	seed    [8]byte
	counter uint64
	digest  [sha512.DIGEST_BYTES]byte
	offset  int
}

// New returns a Generator seeded from seed.
func New(seed uint64) *Generator {
	g := &Generator{}
	binary.BigEndian.PutUint64(g.seed[:], seed)
	g.offset = wordsPerDigest // forces the first Uint64 call to hash
	return g
}

// NewFromBytes seeds a Generator from an arbitrary-length seed, by
// hashing it down to 8 bytes first.  Useful when the seed material is
// itself the digest of some other value, chaining generators together.
func NewFromBytes(seed []byte) (*Generator, error) {
	digest, err := sha512.Sum512(seed)
	if err != nil {
		return nil, err
	}
	return New(binary.BigEndian.Uint64(digest.Bytes())), nil
}

// Uint64 returns the next word of the deterministic stream.
func (g *Generator) Uint64() uint64 {
	if g.offset >= wordsPerDigest {
		g.rehash()
	}
	word := binary.BigEndian.Uint64(g.digest[8*g.offset : 8*g.offset+8])
	g.offset++
	return word
}

// Bytes returns n bytes of the deterministic stream, packed from
// successive Uint64 words.
func (g *Generator) Bytes(n int) []byte {
	out := make([]byte, 0, n)
	var buf [8]byte
	for len(out) < n {
		binary.BigEndian.PutUint64(buf[:], g.Uint64())
		remaining := n - len(out)
		if remaining > 8 {
			remaining = 8
		}
		out = append(out, buf[:remaining]...)
	}
	return out
}

func (g *Generator) rehash() {
	var block [16]byte
	copy(block[:8], g.seed[:])
	binary.BigEndian.PutUint64(block[8:], g.counter)

	digest, err := sha512.Sum512(block[:])
	if err != nil {
		// Sum512 is infallible for any well-formed Variant, which New
		// always produces; this would only trip if that invariant were
		// ever broken.
		panic(err)
	}
	copy(g.digest[:], digest.Bytes())
	g.counter++
	g.offset = 0
}
