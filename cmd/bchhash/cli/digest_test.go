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

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestDigestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, []byte("hello"), 0o600); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}

	out, err := runCommand(t, "", "digest", "--algorithm", "hash160", path)
	if err != nil {
		t.Fatalf("digest failed: %v", err)
	}

	want := "hash160:b6a9c8c230722b7c748331a8b450f05566dc7d0f  " + path + "\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestDigestStdin(t *testing.T) {
	out, err := runCommand(t, "hello", "digest", "--algorithm", "hash256")
	if err != nil {
		t.Fatalf("digest failed: %v", err)
	}

	want := "hash256:9595c9df90075148eb06860365df33584b75bff782a510c6cd4883a419833d50  -\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestDigestUnknownAlgorithm(t *testing.T) {
	if _, err := runCommand(t, "", "digest", "--algorithm", "md5"); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestAlgorithmsListsDefaults(t *testing.T) {
	out, err := runCommand(t, "", "algorithms")
	if err != nil {
		t.Fatalf("algorithms failed: %v", err)
	}

	for _, algo := range []string{"hash160", "hash256", "ripemd160", "sha256"} {
		if !strings.Contains(out, algo) {
			t.Errorf("output missing %q: %q", algo, out)
		}
	}
}
