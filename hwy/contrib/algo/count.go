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

import "github.com/ajroetker/go-highperf/hwy"

// Count returns the number of elements in span equal to value, using the
// dispatch level selected at init.
func Count[T comparable](span []T, value T) int {
	return CountWith(hwy.Native(), span, value)
}

// CountWith is Count with an explicit vector descriptor. hwy.Scalar{} forces
// the scalar kernel; other tags run the lane kernel at hwy.WidthOf(d). A
// 256-bit width uses the AVX2 kernels when hwy.NativeVectors reports them.
// The result never depends on d.
func CountWith[T comparable](d hwy.Tag, span []T, value T) int {
	if len(span) == 0 {
		return 0
	}
	width := hwy.WidthOf(d)
	if width == 0 {
		return BaseCountScalar(span, value)
	}

	kind := LaneKindOf[T]()
	if width == 32 && hwy.NativeVectors() {
		if n, ok := countVectors(kind, span, value); ok {
			return n
		}
	}

	switch kind {
	case ByteLane:
		return BaseCountLanes(d, asLanes[int8](span), asLane[int8](value))
	case ShortLane:
		return BaseCountLanes(d, asLanes[int16](span), asLane[int16](value))
	case IntLane:
		return BaseCountLanes(d, asLanes[int32](span), asLane[int32](value))
	case LongLane:
		return BaseCountLanes(d, asLanes[int64](span), asLane[int64](value))
	default:
		return BaseCountScalar(span, value)
	}
}
