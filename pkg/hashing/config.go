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

// Package hashing configures digest computation: which algorithm to use and
// how input is chunked when streaming from files.
package hashing

import (
	"fmt"

	hashengines "github.com/MBitcoinCash/Hash/pkg/hashing/engines"
	hashio "github.com/MBitcoinCash/Hash/pkg/hashing/engines/io"
	// Register the default engines.
	_ "github.com/MBitcoinCash/Hash/pkg/hashing/engines/memory"
)

// DefaultChunkSize is the read size used when streaming files, in bytes.
const DefaultChunkSize = 8192

// Config holds digest-computation settings. The zero value is not useful;
// construct with NewConfig and adjust with the setter methods, which chain.
type Config struct {
	hashAlgorithm string
	chunkSize     int
}

// NewConfig returns a configuration with the defaults: the hash256
// transaction digest and DefaultChunkSize file chunking.
func NewConfig() *Config {
	return &Config{
		hashAlgorithm: "hash256",
		chunkSize:     DefaultChunkSize,
	}
}

// SetHashAlgorithm selects the digest algorithm by registry name.
func (c *Config) SetHashAlgorithm(algorithm string) *Config {
	c.hashAlgorithm = algorithm
	return c
}

// SetChunkSize sets the file read size in bytes; 0 reads whole files at
// once.
func (c *Config) SetChunkSize(n int) *Config {
	c.chunkSize = n
	return c
}

// HashAlgorithm returns the configured algorithm name.
func (c *Config) HashAlgorithm() string {
	return c.hashAlgorithm
}

// ChunkSize returns the configured file read size.
func (c *Config) ChunkSize() int {
	return c.chunkSize
}

// Validate checks the configuration against the engine registry.
func (c *Config) Validate() error {
	if !hashengines.IsSupported(c.hashAlgorithm) {
		return fmt.Errorf("unsupported hash algorithm: %s (supported: %v)",
			c.hashAlgorithm, hashengines.SupportedAlgorithms())
	}
	if c.chunkSize < 0 {
		return fmt.Errorf("chunk size must be non-negative, got %d", c.chunkSize)
	}
	return nil
}

// NewEngine creates a fresh streaming engine for the configured algorithm.
func (c *Config) NewEngine() (hashengines.StreamingHashEngine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return hashengines.Create(c.hashAlgorithm)
}

// NewFileHasher creates a file hasher that streams path through a fresh
// engine for the configured algorithm, using the configured chunk size.
func (c *Config) NewFileHasher(path string) (*hashio.SimpleFileHasher, error) {
	engine, err := c.NewEngine()
	if err != nil {
		return nil, err
	}
	return hashio.NewSimpleFileHasher(path, engine, c.chunkSize)
}
