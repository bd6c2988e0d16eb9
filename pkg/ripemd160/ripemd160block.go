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

package ripemd160

import (
	"encoding/binary"
	"math/bits"
)

// The five nonlinear Boolean functions of RIPEMD-160. Each is total over
// three 32-bit words; all other arithmetic in the compression function wraps
// modulo 2^32.
func funcF(x, y, z uint32) uint32 { return x ^ y ^ z }
func funcG(x, y, z uint32) uint32 { return (x & y) | (^x & z) }
func funcH(x, y, z uint32) uint32 { return (x | ^y) ^ z }
func funcI(x, y, z uint32) uint32 { return (x & z) | (y & ^z) }
func funcJ(x, y, z uint32) uint32 { return x ^ (y | ^z) }

// Message-word selection order for the left line, 16 steps per round.
var idxLeft = [80]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

// Per-step left-rotation amounts for the left line.
var rotLeft = [80]uint8{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

// Message-word selection order for the right line.
var idxRight = [80]uint8{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

// Per-step left-rotation amounts for the right line.
var rotRight = [80]uint8{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

// roundSpec fixes, for one 16-step round, the Boolean function and additive
// constant of each line. The left line walks F,G,H,I,J with its constants
// while the right line walks J,I,H,G,F with a distinct constant set; the
// first round of the left line and the last round of the right line use no
// additive constant.
type roundSpec struct {
	fLeft, fRight func(x, y, z uint32) uint32
	kLeft, kRight uint32
}

var rounds = [5]roundSpec{
	{funcF, funcJ, 0x00000000, 0x50a28be6},
	{funcG, funcI, 0x5a827999, 0x5c4dd124},
	{funcH, funcH, 0x6ed9eba1, 0x6d703ef3},
	{funcI, funcG, 0x8f1bbcdc, 0x7a6d76e9},
	{funcJ, funcF, 0xa953fd4e, 0x00000000},
}

// compress folds every 64-byte block of p into the chaining value. The
// length of p must be a multiple of BlockSize; callers guarantee this.
//
// Each block runs two independent 80-step lines over private working
// registers seeded from the chaining value. A step rewrites one register as
// rotl(a + f(b,c,d) + m[idx] + k, rot) + e, rotates the c register by 10,
// and relabels the five registers cyclically. The finished lines are folded
// back into the chaining value with the standard cross combination.
func compress(d *digest, p []byte) {
	s0, s1, s2, s3, s4 := d.s[0], d.s[1], d.s[2], d.s[3], d.s[4]

	var m [16]uint32
	for len(p) > 0 {
		for i := range m {
			m[i] = binary.LittleEndian.Uint32(p[4*i:])
		}

		al, bl, cl, dl, el := s0, s1, s2, s3, s4
		ar, br, cr, dr, er := s0, s1, s2, s3, s4

		for j := 0; j < 80; j++ {
			r := &rounds[j>>4]

			t := bits.RotateLeft32(al+r.fLeft(bl, cl, dl)+m[idxLeft[j]]+r.kLeft, int(rotLeft[j])) + el
			al, bl, cl, dl, el = el, t, bl, bits.RotateLeft32(cl, 10), dl

			t = bits.RotateLeft32(ar+r.fRight(br, cr, dr)+m[idxRight[j]]+r.kRight, int(rotRight[j])) + er
			ar, br, cr, dr, er = er, t, br, bits.RotateLeft32(cr, 10), dr
		}

		s0, s1, s2, s3, s4 = s1+cl+dr, s2+dl+er, s3+el+ar, s4+al+br, s0+bl+cr
		p = p[BlockSize:]
	}

	d.s[0], d.s[1], d.s[2], d.s[3], d.s[4] = s0, s1, s2, s3, s4
}
