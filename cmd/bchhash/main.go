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

// Command bchhash computes Bitcoin-Cash-style content digests (ripemd160,
// sha256, hash256, hash160) of files or standard input.
package main

import (
	"log"
	"os"

	"github.com/MBitcoinCash/Hash/cmd/bchhash/cli"
)

func main() {
	log.SetFlags(0)

	if err := cli.New().Execute(); err != nil {
		log.Printf("error during command execution: %v", err)
		os.Exit(1)
	}
}
