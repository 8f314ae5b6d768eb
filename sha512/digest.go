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
// github.com:SymbolNotFound/gosha2/sha512/digest.go

package sha512

import "encoding/binary"

// Full digest size in bytes, for SHA-512 (and the backing array shared by
// both variants -- SHA-384 simply truncates it).
const DIGEST_BYTES = 64

// Truncated digest size in bytes, for SHA-384.
const DIGEST_BYTES_384 = 48

// Digest is the result of a completed hash.  A successful Sum always
// returns a non-nil Digest, so callers never have to special-case a missing
// output the way a null output pointer would require in the C original; Sum
// returns a nil Digest only together with a non-nil error.
type Digest interface {
	Bytes() []byte
}

type digest struct {
	bytes [DIGEST_BYTES]byte
	size  int
}

func (d digest) Bytes() []byte {
	return d.bytes[:d.size]
}

// newDigest serializes the chaining value h as big-endian bytes, keeping
// only the first size bytes (48 for SHA-384, 64 for SHA-512).
func newDigest(h [8]uint64, size int) Digest {
	d := digest{size: size}
	for i := 0; i < size/8; i++ {
		binary.BigEndian.PutUint64(d.bytes[8*i:8*i+8], h[i])
	}
	return d
}
