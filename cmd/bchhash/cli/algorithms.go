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

	"github.com/spf13/cobra"

	hashengines "github.com/MBitcoinCash/Hash/pkg/hashing/engines"
	// Register the default engines.
	_ "github.com/MBitcoinCash/Hash/pkg/hashing/engines/memory"
)

// Algorithms builds the algorithms subcommand.
func Algorithms() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported digest algorithms.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, algo := range hashengines.SupportedAlgorithms() {
				fmt.Fprintln(cmd.OutOrStdout(), algo)
			}
			return nil
		},
	}
}
