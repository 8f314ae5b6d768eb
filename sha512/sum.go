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
// github.com:SymbolNotFound/gosha2/sha512/sum.go

package sha512

// Sum512 hashes data in one call and returns its SHA-512 digest.
//
// If intending to call this frequently, consider New512 instead and reuse
// the Hasher across messages via Reset -- this avoids reallocating the
// context for every call.
func Sum512(data []byte) (Digest, error) {
	return sumWith(SHA512, data)
}

// Sum384 hashes data in one call and returns its SHA-384 digest.
func Sum384(data []byte) (Digest, error) {
	return sumWith(SHA384, data)
}

func sumWith(variant Variant, data []byte) (Digest, error) {
	h := New(variant)
	if _, err := h.Write(data); err != nil {
		return nil, err
	}
	return h.Sum()
}
