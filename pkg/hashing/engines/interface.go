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

// Package hashengines defines the capability interfaces shared by the hash
// algorithms of this module, plus a registry mapping algorithm names to
// engine factories.
//
// Each algorithm (ripemd160, sha256 and the two Bitcoin-Cash compositions
// hash256 and hash160) implements the same init/update/finalize protocol
// independently; there is no inheritance-style hierarchy and no open plugin
// surface beyond the fixed set registered by the memory package.
package hashengines

import (
	"github.com/MBitcoinCash/Hash/pkg/hashing/digests"
)

// HashEngine is the finalization side of a hash computation.
type HashEngine interface {
	// Compute finalizes the computation and returns the digest. The digest's
	// algorithm field carries DigestName.
	Compute() (digests.Digest, error)

	// DigestName returns the canonical name of the algorithm. The name must
	// determine the output completely, so a verifier holding only the name
	// can re-create a compatible engine.
	DigestName() string

	// DigestSize returns the digest length in bytes, matching the Size of
	// the Digest returned by Compute.
	DigestSize() int
}

// Streaming is the incremental-input side of a hash computation. It is kept
// separate from HashEngine so that one-shot engines can exist without fake
// streaming methods.
type Streaming interface {
	// Update appends data after all previously supplied bytes. Chunks of any
	// size are accepted, including empty ones, and the final digest does not
	// depend on the partitioning.
	Update(data []byte)

	// Reset discards all state and optionally seeds the fresh computation
	// with data.
	Reset(data []byte)
}

// StreamingHashEngine is an engine that supports incremental input.
type StreamingHashEngine interface {
	HashEngine
	Streaming
}
