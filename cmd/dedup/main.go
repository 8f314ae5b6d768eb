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
// github.com:SymbolNotFound/gosha2/cmd/dedup/main.go

package main

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/SymbolNotFound/gosha2/batch"
	"github.com/SymbolNotFound/gosha2/sha512"
)

// Signature is the path and its content's signature (based on SHA-512).
type Signature struct {
	Content  hash64 `json:"signature"`
	Filepath string `json:"file_path"`
}

// ContentIndex keeps track of all signatures seen so far and their paths.
// It also tracks whether duplicates should be deleted or not, and holds the
// channel that the duplicates metadata is written to.
type ContentIndex struct {
	index  map[hash64]Signature
	output chan<- Signature
	delete bool
}

// Inspect each file under the input path (indicated by --in-path -- by default,
// the current directory) and record the paths which contain the same content.
// Each duplicate is logged as one JSON line holding its path and its signature,
// where signature is the base64 representation of the SHA-512 hash of the bytes
// (so, very unlikely to have collisions as long as the files are less than
// 2^64 bytes).  This "duplicates" metadata is written to the file indicated by
// --out-file.  With --delete, the first copy of duplicated content is moved
// into a "saved" directory under the current working directory and the later
// copies are removed.
//
// Example usage:
//   dedup --delete --in-path . --out-file ../duplicates.jsonl
//
// It is recommended not to use the --delete flag the first time running this
// binary, so that you can more readily see the effect that it would have after
// running, before impacting the source directory.
// This is why the default is --delete=false instead of --delete=true.

func main() {
	inpath := flag.String("in-path", ".", "directory to scan for duplicate content")
	outpath := flag.String("out-file", "duplicates.jsonl",
		"path of the JSON-lines file that stores duplication info")
	workers := flag.Int("workers", 4, "number of concurrent hashing workers")
	delete := flag.Bool("delete", false,
		"also delete the contents from inpath, saving a unique copy under ./saved")

	flag.Parse()
	fmt.Println("inspecting files under " + *inpath)

	// Some examples of ignored file names, add to this if desired.
	// Sometimes files should not be deleted from source even if they're copies.
	ignored := []string{
		".gitignore",
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := batch.New(ctx, sha512.SHA512, *workers)
	cas := newContentIndex(*outpath, *delete)

	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for result := range pool.Results() {
			if result.Err != nil {
				fmt.Printf("%s error:\n   %s\n", result.Name, result.Err)
				continue
			}
			cas.record(result.Name, result.Digest)
		}
	}()

	err := filepath.WalkDir(*inpath,
		func(path string, entry fs.DirEntry, err error) error {
			if entry.IsDir() {
				return nil
			}
			if err != nil {
				log.Fatal(err)
			}
			for _, ignoreName := range ignored {
				if entry.Name() == ignoreName {
					return nil
				}
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			pool.Submit(ctx, batch.Job{Name: path, Data: data})
			return nil
		})
	pool.Close()
	<-drained
	if err != nil {
		fmt.Println(err)
	}
}

type hash64 string

func BytesToBase64(bytes []byte) hash64 {
	return hash64(base64.StdEncoding.EncodeToString(bytes))
}

func newContentIndex(outpath string, deleteDuplicates bool) *ContentIndex {
	return &ContentIndex{
		index:  make(map[hash64]Signature),
		output: newWriter(outpath),
		delete: deleteDuplicates,
	}
}

// record notes that path hashed to digest, appending to the duplicates
// log (and optionally deleting the file) when that signature was seen
// before.
func (index *ContentIndex) record(path string, digest sha512.Digest) {
	sig64 := BytesToBase64(digest.Bytes())
	signature, exists := index.index[sig64]
	if !exists {
		// First time this signature was found; record it and move on.
		index.index[sig64] = Signature{sig64, path}
		return
	}

	// Otherwise, this signature was found already -- record the duplicate.
	basepath := filepath.Base(signature.Filepath)

	if signature.Filepath != basepath {
		if index.delete {
			savedpath := filepath.Join(".", "saved", basepath)
			os.Rename(signature.Filepath, savedpath)
			index.output <- Signature{sig64, basepath}
		}
		index.output <- signature
		signature.Filepath = basepath
		index.index[sig64] = signature
	}
	if index.delete {
		os.Remove(path)
	}

	index.output <- Signature{sig64, path}
}

// newWriter creates a signature writer in json-lines format (goroutine-safe).
func newWriter(outpath string) chan<- Signature {
	file, err := os.Create(outpath)
	if err != nil {
		log.Fatal(err)
	}
	channel := make(chan Signature)
	go func() {
		defer file.Close()
		writer := bufio.NewWriter(file)

		for sig := range channel {
			bytes, err := json.Marshal(sig)
			if err != nil {
				fmt.Printf("%s error:\n   %s\n", sig.Filepath, err)
				continue
			}
			writer.Write(bytes)
			writer.WriteByte('\n')
			writer.Flush()
		}
		writer.Flush()
	}()

	return channel
}
