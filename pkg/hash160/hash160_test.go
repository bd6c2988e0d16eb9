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

package hash160

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestKnownVectors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb"},
		{"abc", "abc", "bb1be98c142444d7a56aa3981c3942a978e4dc33"},
		{"hello", "hello", "b6a9c8c230722b7c748331a8b450f05566dc7d0f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := Sum([]byte(tt.in))
			if got := hex.EncodeToString(sum[:]); got != tt.want {
				t.Errorf("Sum(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestStreamingMatchesOneShot(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	want := Sum(data)

	h := New()
	for i := range data {
		h.Write(data[i : i+1])
	}

	if !bytes.Equal(h.Sum(nil), want[:]) {
		t.Error("per-byte streaming disagrees with one-shot Sum")
	}
}

func TestDigestLength(t *testing.T) {
	for _, n := range []int{0, 1, 20, 1000} {
		sum := Sum(make([]byte, n))
		if len(sum) != Size {
			t.Fatalf("digest of %d bytes has length %d, want %d", n, len(sum), Size)
		}
	}

	if h := New(); h.Size() != Size {
		t.Errorf("Size() = %d, want %d", h.Size(), Size)
	}
}
