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

// Package io provides engines that digest file contents by streaming them
// through the in-memory hash engines.
package io

import (
	hashengines "github.com/MBitcoinCash/Hash/pkg/hashing/engines"
)

// FileHasher marks hash engines that digest files rather than arbitrary
// in-memory content. It is an alias of HashEngine; the distinction is
// semantic, for APIs that specifically expect file-based hashing.
type FileHasher interface {
	hashengines.HashEngine
}

// FileHasherFactory creates a FileHasher for the given path.
type FileHasherFactory func(path string) (FileHasher, error)
