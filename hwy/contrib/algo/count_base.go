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
	"math"
	"unsafe"

	"github.com/ajroetker/go-highperf/hwy"
)

// foldInterval returns how many 8-vector iterations may be accumulated into
// a partial-sum vector of L before it must be folded. Each iteration adds at
// most 8 to a lane, and a lane may absorb up to 7 more single-vector drains
// after the last fold, so lanes stay within 8*foldInterval-1 <= MaxValue(L).
func foldInterval[L hwy.SignedInts]() int {
	var x L
	maxLane := (uint64(1) << (8*unsafe.Sizeof(x) - 1)) - 1
	return int(min(maxLane/8, uint64(math.MaxInt)))
}

// BaseCountLanes counts elements of span equal to value using vectors
// described by d.
//
// Equal lanes read as -1, so subtracting the compare result from a partial
// sum adds one per match. Partial sums are folded into the scalar count
// before any lane can overflow; the folded total is bounded by len(span) and
// cannot overflow an int.
func BaseCountLanes[L hwy.SignedInts](d hwy.Tag, span []L, value L) int {
	var buf hwy.Buffer[L]
	partial := buf.Vec(d)
	lanes := partial.NumLanes()
	n := len(span)
	if lanes == 0 || n < lanes {
		return BaseCountScalar(span, value)
	}

	maxIters := foldInterval[L]()
	step := lanes * 8
	count, iters, i := 0, 0, 0

	for ; i+step <= n; i += step {
		block := span[i : i+step : i+step]
		partial.SubEqual(block, value)
		partial.SubEqual(block[lanes:], value)
		partial.SubEqual(block[lanes*2:], value)
		partial.SubEqual(block[lanes*3:], value)
		partial.SubEqual(block[lanes*4:], value)
		partial.SubEqual(block[lanes*5:], value)
		partial.SubEqual(block[lanes*6:], value)
		partial.SubEqual(block[lanes*7:], value)

		iters++
		if iters == maxIters {
			count += int(hwy.SumOfLanes(partial))
			partial.Zero()
			iters = 0
		}
	}

	// At most 7 full vectors remain here.
	for ; i+lanes <= n; i += lanes {
		partial.SubEqual(span[i:], value)
	}
	count += int(hwy.SumOfLanes(partial))

	return count + BaseCountScalar(span[i:], value)
}

// BaseCountScalar counts elements equal to value, 8 then 4 then 1 at a time.
func BaseCountScalar[T comparable](span []T, value T) int {
	n := len(span)
	count, i := 0, 0

	for ; i+8 <= n; i += 8 {
		s := span[i : i+8 : i+8]
		count += b2i(s[0] == value) + b2i(s[1] == value) +
			b2i(s[2] == value) + b2i(s[3] == value) +
			b2i(s[4] == value) + b2i(s[5] == value) +
			b2i(s[6] == value) + b2i(s[7] == value)
	}

	if i+4 <= n {
		s := span[i : i+4 : i+4]
		count += b2i(s[0] == value) + b2i(s[1] == value) +
			b2i(s[2] == value) + b2i(s[3] == value)
		i += 4
	}

	for ; i < n; i++ {
		count += b2i(span[i] == value)
	}

	return count
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
