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

// Package contrib groups the slice-level kernels built on package hwy.
//
// # Subpackages
//
//   - algo: counting the occurrences of a value in a slice
//   - hash: djb2 sequence hashes and the lane-parallel djb2-like byte hash
//   - workerpool: a persistent pool for splitting scans across cores
//
// Every kernel has a Tag-taking variant (CountWith, Djb2LikeBytesWith) that
// pins the vector width, and a plain variant that uses hwy.Native().
//
//	import (
//	    "github.com/ajroetker/go-highperf/hwy/contrib/algo"
//	    "github.com/ajroetker/go-highperf/hwy/contrib/hash"
//	)
//
//	n := algo.Count(data, 0)
//	h := hash.Djb2LikeBytes(buf)
package contrib
