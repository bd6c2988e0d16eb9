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

package memory

import (
	"hash"

	"github.com/MBitcoinCash/Hash/pkg/hash160"
	"github.com/MBitcoinCash/Hash/pkg/hash256"
	"github.com/MBitcoinCash/Hash/pkg/hashing/digests"
	hashengines "github.com/MBitcoinCash/Hash/pkg/hashing/engines"
)

var _ hashengines.StreamingHashEngine = (*CompositeEngine)(nil)

func init() {
	hashengines.MustRegister("hash256", func() (hashengines.StreamingHashEngine, error) {
		return NewCompositeEngine("hash256", hash256.Size, hash256.New, nil), nil
	})
	hashengines.MustRegister("hash160", func() (hashengines.StreamingHashEngine, error) {
		return NewCompositeEngine("hash160", hash160.Size, hash160.New, nil), nil
	})
}

// CompositeEngine adapts any hash.Hash constructor into a
// StreamingHashEngine. It backs the two composite providers, hash256
// (double SHA-256) and hash160 (SHA-256 then RIPEMD-160), whose hash.Hash
// implementations live in their own packages.
type CompositeEngine struct {
	name    string
	size    int
	newHash func() hash.Hash
	h       hash.Hash
}

// NewCompositeEngine wraps the hash produced by newHash under the given
// algorithm name and digest size. If initialData is non-empty it is written
// into the hash immediately.
func NewCompositeEngine(name string, size int, newHash func() hash.Hash, initialData []byte) *CompositeEngine {
	e := &CompositeEngine{name: name, size: size, newHash: newHash, h: newHash()}
	if len(initialData) > 0 {
		_, _ = e.h.Write(initialData)
	}
	return e
}

// Update appends more bytes into the hash state.
func (e *CompositeEngine) Update(data []byte) {
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Reset clears the hash state and optionally seeds it with new data.
func (e *CompositeEngine) Reset(data []byte) {
	e.h = e.newHash()
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Compute finalizes the hash and returns a Digest value.
func (e *CompositeEngine) Compute() (digests.Digest, error) {
	return digests.NewDigest(e.name, e.h.Sum(nil)), nil
}

// DigestName returns the algorithm identifier.
func (e *CompositeEngine) DigestName() string {
	return e.name
}

// DigestSize returns the byte length of the produced digest.
func (e *CompositeEngine) DigestSize() int {
	return e.size
}
