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

// Package options defines the command-line options and flags for the
// bchhash CLI.
package options

import (
	"github.com/MBitcoinCash/Hash/pkg/logging"
	"github.com/spf13/cobra"
)

// ValidLogLevels lists the accepted --log-level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error", "silent"}

// ValidLogFormats lists the accepted --log-format values.
var ValidLogFormats = []string{"text", "json"}

// RootOptions holds flags available on every subcommand.
type RootOptions struct {
	// LogLevel sets the minimum log level.
	LogLevel string
	// LogFormat sets the log output format.
	LogFormat string
}

// AddFlags registers the root flags on cmd as persistent flags.
func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "info",
		"minimum log level (debug, info, warn, error, silent)")
	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", "text",
		"log output format (text, json)")
}

// NewLogger builds a logger from the parsed root flags.
func (o *RootOptions) NewLogger() logging.Logger {
	opts := logging.DefaultLoggerOptions()
	opts.Level = logging.ParseLogLevel(o.LogLevel)
	opts.Format = logging.ParseLogFormat(o.LogFormat)
	opts.ShowLevel = true
	return logging.NewLogger(opts)
}
