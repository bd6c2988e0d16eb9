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

// Package memory provides in-memory streaming engines for the hash
// algorithms of this module. Every engine self-registers with the engines
// registry at package init, so importing this package makes the full
// algorithm set available by name.
package memory

import (
	"hash"

	"github.com/MBitcoinCash/Hash/pkg/hashing/digests"
	hashengines "github.com/MBitcoinCash/Hash/pkg/hashing/engines"
	"github.com/MBitcoinCash/Hash/pkg/ripemd160"
)

var _ hashengines.StreamingHashEngine = (*RIPEMD160Engine)(nil)

func init() {
	hashengines.MustRegister("ripemd160", func() (hashengines.StreamingHashEngine, error) {
		return NewRIPEMD160Engine(nil), nil
	})
}

// RIPEMD160Engine is a StreamingHashEngine over this module's from-scratch
// RIPEMD-160 implementation.
type RIPEMD160Engine struct {
	h hash.Hash
}

// NewRIPEMD160Engine constructs a RIPEMD-160 engine. If initialData is
// non-empty it is written into the hash immediately.
func NewRIPEMD160Engine(initialData []byte) *RIPEMD160Engine {
	e := &RIPEMD160Engine{h: ripemd160.New()}
	if len(initialData) > 0 {
		_, _ = e.h.Write(initialData)
	}
	return e
}

// Update appends more bytes into the hash state.
func (e *RIPEMD160Engine) Update(data []byte) {
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Reset clears the hash state and optionally seeds it with new data.
func (e *RIPEMD160Engine) Reset(data []byte) {
	e.h.Reset()
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Compute finalizes the hash and returns a Digest value.
func (e *RIPEMD160Engine) Compute() (digests.Digest, error) {
	return digests.NewDigest(e.DigestName(), e.h.Sum(nil)), nil
}

// DigestName returns the algorithm identifier.
func (e *RIPEMD160Engine) DigestName() string {
	return "ripemd160"
}

// DigestSize returns the byte length of the produced digest.
func (e *RIPEMD160Engine) DigestSize() int {
	return ripemd160.Size
}
