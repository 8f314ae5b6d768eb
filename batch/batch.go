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
// github.com:SymbolNotFound/gosha2/batch/batch.go

// Package batch computes SHA-512/384 digests for many independent inputs
// concurrently.  The hash core itself forbids concurrent use of a single
// context, but says nothing against using distinct contexts on distinct
// goroutines at once (spec section 5, Ownership) -- this package is
// exactly that: one Hasher per worker, fed through a channel, with no
// state shared between workers beyond the read-only round-constant and
// IV tables the sha512 package already keeps process-wide.
package batch

import (
	"context"
	"sync"

	"github.com/SymbolNotFound/gosha2/sha512"
)

// Job names one input to be digested.  Name is carried through to the
// matching Result unchanged, so callers can match results back to
// requests without relying on channel ordering.
type Job struct {
	Name string
	Data []byte
}

// Result is what a worker produces for a Job.
type Result struct {
	Name   string
	Digest sha512.Digest
	Err    error
}

// Pool runs a fixed number of worker goroutines, each holding its own
// sha512.Hasher, pulling Jobs off an internal channel and publishing a
// Result per Job.  Construct with New, feed it with Submit, and drain
// Results() until it is closed.
type Pool struct {
	variant sha512.Variant
	jobs    chan Job
	results chan Result
	wg      sync.WaitGroup
}

// New starts a Pool of the given size, each worker computing digests of
// the given variant.  Workers stop, and Results() closes, when ctx is
// canceled or Close is called -- whichever happens first.
func New(ctx context.Context, variant sha512.Variant, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{
		variant: variant,
		jobs:    make(chan Job),
		results: make(chan Result),
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.work(ctx)
	}
	go func() {
		p.wg.Wait()
		close(p.results)
	}()

	return p
}

func (p *Pool) work(ctx context.Context) {
	defer p.wg.Done()

	h := sha512.New(p.variant)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			var digest sha512.Digest
			h.Reset()
			_, err := h.Write(job.Data)
			if err == nil {
				digest, err = h.Sum()
			}

			result := Result{Name: job.Name, Digest: digest, Err: err}
			select {
			case p.results <- result:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Submit enqueues a Job for the pool to digest.  It blocks until a
// worker is free to accept it or ctx is canceled.
func (p *Pool) Submit(ctx context.Context, job Job) {
	select {
	case p.jobs <- job:
	case <-ctx.Done():
	}
}

// Results returns the channel of completed digests.  It closes once every
// worker has exited, which happens after Close (and all in-flight jobs
// have drained) or after the pool's context is canceled.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Close stops accepting new jobs.  Workers finish any job already taken
// from the channel, then exit once the channel is drained.
func (p *Pool) Close() {
	close(p.jobs)
}
