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

// Package digests provides the value type for computed hash digests.
//
// A Digest pairs the algorithm name with the raw digest bytes. It is
// effectively immutable: fields are unexported and the byte value is
// defensively copied on the way in and out.
package digests

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Digest is a computed hash digest together with the name of the algorithm
// that produced it.
type Digest struct {
	algorithm string
	value     []byte
}

// NewDigest creates a Digest for the given algorithm name and raw value.
// The value slice is copied, so later mutation by the caller does not leak
// into the Digest.
func NewDigest(algorithm string, value []byte) Digest {
	v := make([]byte, len(value))
	copy(v, value)
	return Digest{algorithm: algorithm, value: v}
}

// Algorithm returns the name of the algorithm that produced this digest,
// e.g. "ripemd160" or "hash256". Verifiers use the name to reconstruct a
// compatible engine.
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
func (d Digest) Value() []byte {
	v := make([]byte, len(d.value))
	copy(v, d.value)
	return v
}

// Hex returns the lowercase hex encoding of the digest bytes.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.value)
}

// Size returns the digest length in bytes.
func (d Digest) Size() int {
	return len(d.value)
}

// String renders the digest as "algorithm:hexvalue".
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal reports whether two digests have the same algorithm name and the
// same value.
func (d Digest) Equal(other Digest) bool {
	return d.algorithm == other.algorithm && bytes.Equal(d.value, other.value)
}
