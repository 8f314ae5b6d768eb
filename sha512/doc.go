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
// github.com:SymbolNotFound/gosha2/sha512/doc.go

// Package sha512 implements the SHA-512 and SHA-384 hash algorithms, as
// specified in FIPS 180-4.  Both variants share the same 80-round, 128-byte
// block transform over 64-bit words; they differ only in their initial
// chaining value and in how much of the 64-byte chaining state is emitted
// as the final digest.
//
// Callers wanting a single call should use Sum512 or Sum384.  Callers with
// a message arriving in pieces should use New512/New384 and write to the
// returned Hasher as the pieces arrive; the result is identical to whatever
// the one-shot functions would have produced for the concatenation of those
// pieces, no matter how the message was split across Write calls.
package sha512
