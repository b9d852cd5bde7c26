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

package algo

import (
	"sync/atomic"

	"github.com/ajroetker/go-highperf/hwy"
	"github.com/ajroetker/go-highperf/hwy/contrib/workerpool"
)

// ParallelThreshold is the slice length below which ParallelCount runs
// Count on the calling goroutine.
const ParallelThreshold = 1 << 16

// ParallelCount is Count split across pool. Chunk lengths are a power of
// two, so chunk boundaries line up with vector boundaries at every supported
// width. A nil or closed pool runs sequentially.
func ParallelCount[T comparable](pool *workerpool.Pool, span []T, value T) int {
	return ParallelCountWith(pool, hwy.Native(), span, value)
}

// ParallelCountWith is ParallelCount with an explicit vector descriptor.
func ParallelCountWith[T comparable](pool *workerpool.Pool, d hwy.Tag, span []T, value T) int {
	n := len(span)
	if pool == nil || pool.Closed() || pool.NumWorkers() < 2 || n < ParallelThreshold {
		return CountWith(d, span, value)
	}

	workers := pool.NumWorkers()
	chunk := hwy.NextPowerOfTwo((n + workers - 1) / workers)
	if chunk == 0 {
		chunk = n
	}

	var total atomic.Int64
	pool.ParallelForChunks(n, chunk, func(start, end int) {
		total.Add(int64(CountWith(d, span[start:end], value)))
	})
	return int(total.Load())
}
