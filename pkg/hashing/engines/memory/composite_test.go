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
	"testing"

	"github.com/MBitcoinCash/Hash/pkg/hash160"
	"github.com/MBitcoinCash/Hash/pkg/hash256"
)

func TestCompositeEngines_KnownAnswers(t *testing.T) {
	tests := []struct {
		name string
		eng  *CompositeEngine
		in   string
		want string
	}{
		{
			name: "hash256 hello",
			eng:  NewCompositeEngine("hash256", hash256.Size, hash256.New, nil),
			in:   "hello",
			want: "9595c9df90075148eb06860365df33584b75bff782a510c6cd4883a419833d50",
		},
		{
			name: "hash160 hello",
			eng:  NewCompositeEngine("hash160", hash160.Size, hash160.New, nil),
			in:   "hello",
			want: "b6a9c8c230722b7c748331a8b450f05566dc7d0f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.eng.Update([]byte(tt.in))
			d, err := tt.eng.Compute()
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			if got := d.Hex(); got != tt.want {
				t.Errorf("Compute() = %q, want %q", got, tt.want)
			}
			if d.Size() != tt.eng.DigestSize() {
				t.Errorf("digest size %d does not match DigestSize %d", d.Size(), tt.eng.DigestSize())
			}
		})
	}
}

func TestCompositeEngine_ResetDiscardsState(t *testing.T) {
	const want = "b6a9c8c230722b7c748331a8b450f05566dc7d0f"

	e := NewCompositeEngine("hash160", hash160.Size, hash160.New, []byte("junk"))
	e.Reset([]byte("hel"))
	e.Update([]byte("lo"))

	d, err := e.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := d.Hex(); got != want {
		t.Errorf("Compute() after Reset = %q, want %q", got, want)
	}
}

func TestSHA256_KnownAnswer(t *testing.T) {
	const want = "88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589"

	h := NewSHA256Engine(nil)
	h.Update([]byte("abcd"))

	d, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := d.Hex(); got != want {
		t.Errorf("Compute() = %q, want %q", got, want)
	}
}
