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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/MBitcoinCash/Hash/pkg/hashing/engines/memory"
)

// writeTempFile creates a file with the given contents and returns its path.
func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestSimpleFileHasher_KnownAnswer(t *testing.T) {
	const want = "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc" // ripemd160("abc")

	path := writeTempFile(t, []byte("abc"))

	h, err := NewSimpleFileHasher(path, memory.NewRIPEMD160Engine(nil), 2)
	if err != nil {
		t.Fatalf("NewSimpleFileHasher() error = %v", err)
	}

	d, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := d.Hex(); got != want {
		t.Errorf("Compute() = %q, want %q", got, want)
	}
	if d.Algorithm() != "ripemd160" {
		t.Errorf("digest algorithm = %q, want %q", d.Algorithm(), "ripemd160")
	}
}

func TestSimpleFileHasher_ChunkedMatchesOneShot(t *testing.T) {
	data := bytes.Repeat([]byte("bitcoin cash "), 777)
	path := writeTempFile(t, data)

	oneShot, err := NewSimpleFileHasher(path, memory.NewRIPEMD160Engine(nil), 0)
	if err != nil {
		t.Fatalf("NewSimpleFileHasher() error = %v", err)
	}
	whole, err := oneShot.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	for _, chunkSize := range []int{1, 7, 64, 4096} {
		chunked, err := NewSimpleFileHasher(path, memory.NewRIPEMD160Engine(nil), chunkSize)
		if err != nil {
			t.Fatalf("NewSimpleFileHasher(chunk %d) error = %v", chunkSize, err)
		}
		d, err := chunked.Compute()
		if err != nil {
			t.Fatalf("Compute(chunk %d) error = %v", chunkSize, err)
		}
		if !d.Equal(whole) {
			t.Errorf("chunk size %d: digest %s differs from one-shot %s", chunkSize, d, whole)
		}
	}
}

func TestSimpleFileHasher_Validation(t *testing.T) {
	eng := memory.NewSHA256Engine(nil)

	if _, err := NewSimpleFileHasher("", eng, 0); err == nil {
		t.Error("expected error for empty path")
	}
	if _, err := NewSimpleFileHasher("x", nil, 0); err == nil {
		t.Error("expected error for nil engine")
	}
	if _, err := NewSimpleFileHasher("x", eng, -1); err == nil {
		t.Error("expected error for negative chunk size")
	}
}

func TestSimpleFileHasher_MissingFile(t *testing.T) {
	h, err := NewSimpleFileHasher(filepath.Join(t.TempDir(), "missing"), memory.NewSHA256Engine(nil), 0)
	if err != nil {
		t.Fatalf("NewSimpleFileHasher() error = %v", err)
	}
	if _, err := h.Compute(); err == nil {
		t.Error("expected error for missing file")
	}
}
