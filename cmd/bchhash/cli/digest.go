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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MBitcoinCash/Hash/cmd/bchhash/cli/options"
	"github.com/MBitcoinCash/Hash/pkg/hashing"
	"github.com/MBitcoinCash/Hash/pkg/logging"
)

// Digest builds the digest subcommand.
func Digest() *cobra.Command {
	o := &options.DigestOptions{}

	cmd := &cobra.Command{
		Use:   "digest [flags] [file ...]",
		Short: "Compute digests of files or standard input.",
		Long: `Compute digests of the given files, or of standard input when no
files are named. Each result is printed as "algorithm:hex" followed by the
file name, or "-" for standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigest(cmd, o, args)
		},
	}
	o.AddFlags(cmd)
	return cmd
}

func runDigest(cmd *cobra.Command, o *options.DigestOptions, args []string) error {
	logger := ro.NewLogger()

	cfg := hashing.NewConfig().
		SetHashAlgorithm(o.Algorithm).
		SetChunkSize(o.ChunkSize)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if len(args) == 0 {
		return digestStdin(cmd, cfg, logger)
	}

	for _, path := range args {
		hasher, err := cfg.NewFileHasher(path)
		if err != nil {
			return err
		}

		d, err := hasher.Compute()
		if err != nil {
			return err
		}

		logger.Debug("hashed %s with %s", path, o.Algorithm)
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", d, path)
	}
	return nil
}

func digestStdin(cmd *cobra.Command, cfg *hashing.Config, logger logging.Logger) error {
	engine, err := cfg.NewEngine()
	if err != nil {
		return err
	}

	chunkSize := cfg.ChunkSize()
	if chunkSize == 0 {
		chunkSize = hashing.DefaultChunkSize
	}

	in := cmd.InOrStdin()
	buf := make([]byte, chunkSize)
	var total int64
	for {
		n, err := in.Read(buf)
		if n > 0 {
			engine.Update(buf[:n])
			total += int64(n)
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	d, err := engine.Compute()
	if err != nil {
		return err
	}

	logger.Debug("hashed %d bytes from stdin with %s", total, engine.DigestName())
	fmt.Fprintf(cmd.OutOrStdout(), "%s  -\n", d)
	return nil
}
