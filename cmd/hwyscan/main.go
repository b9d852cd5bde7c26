// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command hwyscan counts bytes and hashes files with the go-highperf kernels.
//
// Usage:
//
//	hwyscan info
//	hwyscan count [--byte N] [--parallel] FILE...
//	hwyscan hash [--seq] FILE...
//
// Global flags --scalar and --width pin the vector width; by default the
// width detected at startup (or set through HWY_NO_SIMD / HWY_TARGET) is used.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "hwyscan: %v\n", err)
		os.Exit(1)
	}
}
