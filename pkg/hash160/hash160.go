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

// Package hash160 implements the address digest ripemd160(sha256(x)).
//
// The inner SHA-256 pass is supplied by crypto/sha256; the outer pass runs a
// full cycle of this module's RIPEMD-160 engine over the 32-byte inner
// digest.
package hash160

import (
	"crypto/sha256"
	"hash"

	"github.com/MBitcoinCash/Hash/pkg/ripemd160"
)

const (
	// Size is the length of a Hash160 digest in bytes.
	Size = ripemd160.Size

	// BlockSize is the inner SHA-256 block length in bytes.
	BlockSize = sha256.BlockSize
)

// digest streams input into the SHA-256 pass and folds the result through
// RIPEMD-160 only at Sum time.
type digest struct {
	inner hash.Hash // sha256
	outer hash.Hash // ripemd160
}

// New returns a hash.Hash computing ripemd160(sha256(x)) over its input.
func New() hash.Hash {
	return &digest{inner: sha256.New(), outer: ripemd160.New()}
}

func (d *digest) Reset()         { d.inner.Reset() }
func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	return d.inner.Write(p)
}

// Sum appends the Hash160 digest of everything written so far to in. The
// inner pass is finalized on a copy, so the stream remains writable.
func (d *digest) Sum(in []byte) []byte {
	first := d.inner.Sum(nil)
	d.outer.Reset()
	d.outer.Write(first)
	return d.outer.Sum(in)
}

// Sum returns the Hash160 digest of data in one call.
func Sum(data []byte) [Size]byte {
	inner := sha256.Sum256(data)
	return ripemd160.Sum160(inner[:])
}
