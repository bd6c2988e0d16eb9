// Copyright 2025 The MBitcoinCash Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hash256 implements the double-SHA-256 digest, sha256(sha256(x)),
// used for transaction and block identifiers.
//
// The SHA-256 stages are supplied by crypto/sha256; this package contains
// only the sequencing of the two passes.
package hash256

import (
	"crypto/sha256"
	"hash"
)

const (
	// Size is the length of a double-SHA-256 digest in bytes.
	Size = sha256.Size

	// BlockSize is the underlying SHA-256 block length in bytes.
	BlockSize = sha256.BlockSize
)

// digest streams input into the first SHA-256 pass and applies the second
// pass only at Sum time, so writes of any partitioning are supported.
type digest struct {
	first, second hash.Hash
}

// New returns a hash.Hash computing sha256(sha256(x)) over its input.
func New() hash.Hash {
	return &digest{first: sha256.New(), second: sha256.New()}
}

func (d *digest) Reset()         { d.first.Reset() }
func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	return d.first.Write(p)
}

// Sum appends the double digest of everything written so far to in. The
// first pass is finalized on a copy, so the stream remains writable.
func (d *digest) Sum(in []byte) []byte {
	inner := d.first.Sum(nil)
	d.second.Reset()
	d.second.Write(inner)
	return d.second.Sum(in)
}

// Sum returns the double-SHA-256 digest of data in one call.
func Sum(data []byte) [Size]byte {
	inner := sha256.Sum256(data)
	return sha256.Sum256(inner[:])
}
