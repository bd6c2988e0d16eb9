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

// Package cli wires the bchhash subcommands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/MBitcoinCash/Hash/cmd/bchhash/cli/options"
)

var ro = &options.RootOptions{}

// New builds the root bchhash command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "bchhash",
		Short:             "Bitcoin-Cash-style content digests.",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}
	ro.AddFlags(cmd)

	cmd.AddCommand(Digest())
	cmd.AddCommand(Algorithms())
	return cmd
}
