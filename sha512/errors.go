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
// github.com:SymbolNotFound/gosha2/sha512/errors.go

package sha512

import "errors"

// ErrInvalidVariant is returned by Sum when the context's variant tag is
// neither SHA512 nor SHA384.  New does not check the Variant it is given,
// so this happens when New is passed any other value; New512 and New384
// always set a valid tag.
var ErrInvalidVariant = errors.New("sha512: invalid variant")

// ErrConsumed is returned by Write or Sum when called on a context whose
// Sum has already been called.  Re-use of a finalized context is not a
// correctness requirement of the algorithm (the zeroed state would simply
// hash nonsense), but it is almost always a caller bug, so it is
// diagnosed rather than silently accepted.
var ErrConsumed = errors.New("sha512: context already finalized")
