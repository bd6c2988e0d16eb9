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

// Package ripemd160 implements the RIPEMD-160 hash algorithm from scratch.
//
// RIPEMD-160 is the 160-bit member of the RIPEMD family, used here to derive
// address hashes in Bitcoin-Cash-style identifiers. The implementation is a
// streaming one: data may be fed through Write in chunks of any size,
// including empty chunks, and the resulting digest is independent of how the
// input was partitioned.
//
// The package exposes the standard hash.Hash protocol (New/Write/Sum/Reset)
// and a one-shot Sum160 convenience. Instances returned by New hold private
// mutable state and must not be shared across goroutines without external
// synchronization.
package ripemd160

import (
	"encoding/binary"
	"hash"
)

const (
	// Size is the length of a RIPEMD-160 digest in bytes.
	Size = 20

	// BlockSize is the length of the message block consumed by the
	// compression function, in bytes.
	BlockSize = 64
)

// Chaining-value initialization constants, as fixed by the RIPEMD-160
// specification.
const (
	iv0 = 0x67452301
	iv1 = 0xefcdab89
	iv2 = 0x98badcfe
	iv3 = 0x10325476
	iv4 = 0xc3d2e1f0
)

// digest carries the running state of one RIPEMD-160 computation: the
// five-word chaining value, the buffer of bytes not yet folded into a full
// block, and the total byte count used to build the trailing length field.
//
// The byte counter is deliberately 64 bits wide. The reference behavior
// tracked only 32 bits and silently produced wrong digests for inputs of
// 4 GiB and beyond; widening the counter makes the engine correct for any
// input length the counter can represent.
type digest struct {
	s  [5]uint32       // chaining value
	x  [BlockSize]byte // pending input, nx bytes valid
	nx int             // number of buffered bytes, always in [0, BlockSize)
	tc uint64          // total bytes written since Reset
}

var _ hash.Hash = (*digest)(nil)

// New returns a hash.Hash computing the RIPEMD-160 checksum.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

// Reset restores the initial chaining value and discards any buffered input.
// It is safe to call at any point, including mid-stream; prior progress is
// abandoned and the instance behaves like a freshly constructed one.
func (d *digest) Reset() {
	d.s[0], d.s[1], d.s[2], d.s[3], d.s[4] = iv0, iv1, iv2, iv3, iv4
	d.nx = 0
	d.tc = 0
}

// Size returns the digest length, Size.
func (d *digest) Size() int { return Size }

// BlockSize returns the compression block length, BlockSize.
func (d *digest) BlockSize() int { return BlockSize }

// Write feeds p into the hash. It never returns an error, accepts chunks of
// any size including zero, and compresses a block as soon as 64 bytes are
// available, leaving at most 63 bytes buffered.
func (d *digest) Write(p []byte) (n int, err error) {
	n = len(p)
	d.tc += uint64(n)

	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		if d.nx == BlockSize {
			compress(d, d.x[:])
			d.nx = 0
		}
		p = p[c:]
	}

	if len(p) >= BlockSize {
		full := len(p) &^ (BlockSize - 1)
		compress(d, p[:full])
		p = p[full:]
	}

	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return n, nil
}

// Sum appends the current digest to in and returns the result. The running
// state is not altered, so the stream may continue to be written after Sum.
func (d *digest) Sum(in []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

// checkSum applies the MD-style padding and the final compression(s),
// consuming the receiver. The tail is terminated with a 0x80 byte, zero
// filled up to 56 mod 64 (spilling into a second block when the tail holds
// more than 55 data bytes), and closed with the total bit length as a 64-bit
// little-endian value.
func (d *digest) checkSum() [Size]byte {
	bitLen := d.tc << 3

	var pad [BlockSize + 8]byte
	pad[0] = 0x80
	padLen := 56 - int(d.tc%BlockSize)
	if padLen <= 0 {
		padLen += BlockSize
	}
	binary.LittleEndian.PutUint64(pad[padLen:], bitLen)
	d.Write(pad[:padLen+8])

	if d.nx != 0 {
		panic("ripemd160: buffer not drained after final block")
	}

	var out [Size]byte
	for i, w := range d.s {
		binary.LittleEndian.PutUint32(out[4*i:], w)
	}
	return out
}

// Sum160 returns the RIPEMD-160 digest of data in one call, equivalent to
// writing all of data into a fresh hash and summing it.
func Sum160(data []byte) [Size]byte {
	var d digest
	d.Reset()
	d.Write(data)
	return d.checkSum()
}
