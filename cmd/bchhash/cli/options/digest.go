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

package options

import (
	"github.com/spf13/cobra"
)

// DigestOptions holds flags for the digest subcommand.
type DigestOptions struct {
	// Algorithm selects the digest algorithm by registry name.
	Algorithm string
	// ChunkSize sets the file read size in bytes; 0 reads whole files at
	// once.
	ChunkSize int
}

// AddFlags registers the digest flags on cmd.
func (o *DigestOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Algorithm, "algorithm", "a", "hash256",
		"digest algorithm (see 'bchhash algorithms')")
	cmd.Flags().IntVar(&o.ChunkSize, "chunk-size", 8192,
		"bytes read per chunk when streaming files; 0 reads whole files at once")
}
