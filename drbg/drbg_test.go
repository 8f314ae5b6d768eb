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
// github.com:SymbolNotFound/gosha2/drbg/drbg_test.go

package drbg_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/gosha2/drbg"
)

func Test_SameSeed_SameSequence(t *testing.T) {
	a := drbg.New(42)
	b := drbg.New(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func Test_DifferentSeed_DifferentSequence(t *testing.T) {
	a := drbg.New(1)
	b := drbg.New(2)

	assert.NotEqual(t, a.Uint64(), b.Uint64())
}

func Test_Uint64_SpansDigestBoundary(t *testing.T) {
	g := drbg.New(7)
	seen := make(map[uint64]bool)
	for i := 0; i < 20; i++ {
		v := g.Uint64()
		assert.False(t, seen[v], "word repeated within one generator's stream")
		seen[v] = true
	}
}

func Test_Bytes_MatchesUint64Stream(t *testing.T) {
	g := drbg.New(99)
	b := g.Bytes(17)
	assert.Len(t, b, 17)

	ref := drbg.New(99)
	var want []byte
	for i := 0; i < 3; i++ {
		want = binary.BigEndian.AppendUint64(want, ref.Uint64())
	}
	assert.Equal(t, want[:17], b)
}

func Test_NewFromBytes(t *testing.T) {
	g, err := drbg.NewFromBytes([]byte("seed material"))
	require.NoError(t, err)
	require.NotPanics(t, func() { g.Uint64() })
}
