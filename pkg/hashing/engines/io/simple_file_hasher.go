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

package io

import (
	"fmt"
	"io"
	"os"

	"github.com/MBitcoinCash/Hash/pkg/hashing/digests"
	hashengines "github.com/MBitcoinCash/Hash/pkg/hashing/engines"
)

var _ FileHasher = (*SimpleFileHasher)(nil)

// SimpleFileHasher digests an entire file by streaming it through an inner
// StreamingHashEngine. The file is read exactly once and never loaded into
// memory as a whole, unless chunkSize is 0 which means read-all-at-once.
type SimpleFileHasher struct {
	filePath      string
	contentHasher hashengines.StreamingHashEngine
	chunkSize     int
}

// NewSimpleFileHasher constructs a SimpleFileHasher over contentHasher.
// chunkSize is the number of bytes read per chunk; 0 reads the whole file
// in one go.
func NewSimpleFileHasher(filePath string, contentHasher hashengines.StreamingHashEngine, chunkSize int) (*SimpleFileHasher, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path must be non-empty")
	}
	if contentHasher == nil {
		return nil, fmt.Errorf("content hasher must not be nil")
	}
	if chunkSize < 0 {
		return nil, fmt.Errorf("chunk size must be non-negative, got %d", chunkSize)
	}

	return &SimpleFileHasher{
		filePath:      filePath,
		contentHasher: contentHasher,
		chunkSize:     chunkSize,
	}, nil
}

// SetFile changes the file that will be hashed on the next Compute call.
func (h *SimpleFileHasher) SetFile(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("file path must be non-empty")
	}
	h.filePath = filePath
	return nil
}

// DigestName is delegated to the inner content hasher.
func (h *SimpleFileHasher) DigestName() string {
	return h.contentHasher.DigestName()
}

// DigestSize is delegated to the inner content hasher.
func (h *SimpleFileHasher) DigestSize() int {
	return h.contentHasher.DigestSize()
}

// Compute streams the file into the inner engine and returns its digest.
// I/O errors are propagated; the inner engine itself cannot fail on any
// byte sequence.
func (h *SimpleFileHasher) Compute() (digests.Digest, error) {
	h.contentHasher.Reset(nil)

	f, err := os.Open(h.filePath)
	if err != nil {
		return digests.Digest{}, fmt.Errorf("open file %q: %w", h.filePath, err)
	}
	defer f.Close()

	if h.chunkSize == 0 {
		data, err := io.ReadAll(f)
		if err != nil {
			return digests.Digest{}, fmt.Errorf("read file %q: %w", h.filePath, err)
		}
		h.contentHasher.Update(data)
	} else {
		buf := make([]byte, h.chunkSize)
		for {
			n, err := f.Read(buf)
			if n > 0 {
				h.contentHasher.Update(buf[:n])
			}
			if err != nil {
				if err == io.EOF {
					break
				}
				return digests.Digest{}, fmt.Errorf("read file %q: %w", h.filePath, err)
			}
		}
	}

	return h.contentHasher.Compute()
}
