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

package hashing

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()

	if c.HashAlgorithm() != "hash256" {
		t.Errorf("default algorithm = %q, want %q", c.HashAlgorithm(), "hash256")
	}
	if c.ChunkSize() != DefaultChunkSize {
		t.Errorf("default chunk size = %d, want %d", c.ChunkSize(), DefaultChunkSize)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		chunkSize int
		wantErr   bool
	}{
		{"ripemd160", "ripemd160", 0, false},
		{"hash160", "hash160", 1024, false},
		{"unknown algorithm", "md5", 1024, true},
		{"negative chunk size", "sha256", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfig().SetHashAlgorithm(tt.algorithm).SetChunkSize(tt.chunkSize)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigNewEngine(t *testing.T) {
	eng, err := NewConfig().SetHashAlgorithm("ripemd160").NewEngine()
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	eng.Update([]byte("abc"))
	d, err := eng.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if want := "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"; d.Hex() != want {
		t.Errorf("Compute() = %q, want %q", d.Hex(), want)
	}

	if _, err := NewConfig().SetHashAlgorithm("md5").NewEngine(); err == nil {
		t.Error("NewEngine() should fail for an unknown algorithm")
	}
}

func TestConfigNewFileHasher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, []byte("hello"), 0o600); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}

	h, err := NewConfig().SetHashAlgorithm("hash160").SetChunkSize(2).NewFileHasher(path)
	if err != nil {
		t.Fatalf("NewFileHasher() error = %v", err)
	}

	d, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if want := "b6a9c8c230722b7c748331a8b450f05566dc7d0f"; d.Hex() != want {
		t.Errorf("Compute() = %q, want %q", d.Hex(), want)
	}
}
