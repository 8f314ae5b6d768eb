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
// github.com:SymbolNotFound/gosha2/sha512/hash_test.go

package sha512_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/gosha2/sha512"
)

func Test_Sum512_Vectors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "",
			"cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"},
		{"abc", "abc",
			"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{"two-block", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
			"8e959b75dae313da8cf4f72814fc143f8f7779c6eb9f7fa17299aeadb6889018501d289e4900f7e4331b99dec4b5433ac7d329eeb6dd26545e96e55b874be909"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := sha512.Sum512([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hex.EncodeToString(digest.Bytes()))
		})
	}
}

func Test_Sum384_Vectors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "",
			"38b060a751ac96384cd9327eb1b1e36a21fdb71114be07434c0cc7bf63f6e1da274edebfe76f65fbd51ad2f14898b95b"},
		{"abc", "abc",
			"cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := sha512.Sum384([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hex.EncodeToString(digest.Bytes()))
		})
	}
}

func Test_Sum512_MillionA(t *testing.T) {
	const want = "e718483d0ce769644e2e42c7bc15b4638e1f98b13b2044285632a803afa973ebde0ff244877ea60a4cb0432ce577c31beb009c5c2c49aa2e4eadb217ad8cc09b"

	input := strings.Repeat("a", 1_000_000)
	digest, err := sha512.Sum512([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, want, hex.EncodeToString(digest.Bytes()))
}

// Streamed byte-at-a-time writes must match the one-shot digest, for every
// length that exercises a different branch of the padding logic.
func Test_ChunkingInvariance_ByteAtATime(t *testing.T) {
	lengths := []int{0, 1, 55, 56, 111, 112, 119, 120, 127, 128, 129, 256, 383}
	for _, n := range lengths {
		n := n
		t.Run(lengthName(n), func(t *testing.T) {
			input := make([]byte, n)
			for i := range input {
				input[i] = byte(i)
			}

			want, err := sha512.Sum512(input)
			require.NoError(t, err)

			h := sha512.New512()
			for _, b := range input {
				_, err := h.Write([]byte{b})
				require.NoError(t, err)
			}
			got, err := h.Sum()
			require.NoError(t, err)

			assert.Equal(t, want.Bytes(), got.Bytes())
		})
	}
}

// Boundary lengths for SHA-384 padding: whether an extra block is needed
// depends only on whether bufUsed > 112 after the 0x80 byte is appended.
func Test_Sum384_PaddingBoundaries(t *testing.T) {
	for _, n := range []int{111, 112, 119, 120, 128, 128 + 111, 128 + 112} {
		n := n
		t.Run(lengthName(n), func(t *testing.T) {
			input := make([]byte, n)
			digest, err := sha512.Sum384(input)
			require.NoError(t, err)
			assert.Len(t, digest.Bytes(), sha512.DIGEST_BYTES_384)
		})
	}
}

func Test_Write_AfterSum_IsConsumed(t *testing.T) {
	h := sha512.New512()
	_, err := h.Write([]byte("abc"))
	require.NoError(t, err)
	_, err = h.Sum()
	require.NoError(t, err)

	_, err = h.Write([]byte("more"))
	assert.ErrorIs(t, err, sha512.ErrConsumed)

	_, err = h.Sum()
	assert.ErrorIs(t, err, sha512.ErrConsumed)
}

func Test_Reset_Rearms(t *testing.T) {
	h := sha512.New512()
	_, err := h.Write([]byte("abc"))
	require.NoError(t, err)
	_, err = h.Sum()
	require.NoError(t, err)

	h.Reset()
	_, err = h.Write([]byte("abc"))
	require.NoError(t, err)
	got, err := h.Sum()
	require.NoError(t, err)

	want, err := sha512.Sum512([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, want.Bytes(), got.Bytes())
}

func Test_DistinctInputs_DistinctDigests(t *testing.T) {
	a, err := sha512.Sum512([]byte("abc"))
	require.NoError(t, err)
	b, err := sha512.Sum512([]byte("abd"))
	require.NoError(t, err)
	assert.NotEqual(t, a.Bytes(), b.Bytes())
}

func lengthName(n int) string {
	return "len_" + hex.EncodeToString([]byte{byte(n >> 8), byte(n)})
}
