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

//go:build amd64 && goexperiment.simd

package algo

import "simd/archsimd"

// This file provides AVX2 implementations of the lane count kernel. Each
// matches BaseCountLanes at a width of 32 bytes: the same unrolling, the
// same fold interval, and the same scalar tail.

// countVectors runs the AVX2 kernel for kind. It reports false when there
// is none.
func countVectors[T comparable](kind LaneKind, span []T, value T) (int, bool) {
	switch kind {
	case ByteLane:
		return Count_AVX2_I8x32(asLanes[int8](span), asLane[int8](value)), true
	case ShortLane:
		return Count_AVX2_I16x16(asLanes[int16](span), asLane[int16](value)), true
	case IntLane:
		return Count_AVX2_I32x8(asLanes[int32](span), asLane[int32](value)), true
	case LongLane:
		return Count_AVX2_I64x4(asLanes[int64](span), asLane[int64](value)), true
	}
	return 0, false
}

// Count_AVX2_I8x32 counts elements of span equal to value.
func Count_AVX2_I8x32(span []int8, value int8) int {
	const lanes = 32
	n := len(span)
	if n < lanes {
		return BaseCountScalar(span, value)
	}

	target := archsimd.BroadcastInt8x32(value)
	minusOne := archsimd.BroadcastInt8x32(-1)
	zero := archsimd.BroadcastInt8x32(0)
	partial := zero
	maxIters := foldInterval[int8]()
	count, iters, i := 0, 0, 0

	for ; i+lanes*8 <= n; i += lanes * 8 {
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt8x32Slice(span[i:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt8x32Slice(span[i+lanes:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt8x32Slice(span[i+lanes*2:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt8x32Slice(span[i+lanes*3:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt8x32Slice(span[i+lanes*4:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt8x32Slice(span[i+lanes*5:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt8x32Slice(span[i+lanes*6:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt8x32Slice(span[i+lanes*7:]).Equal(target)))

		iters++
		if iters == maxIters {
			count += sum_AVX2_I8x32(partial)
			partial = zero
			iters = 0
		}
	}

	for ; i+lanes <= n; i += lanes {
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt8x32Slice(span[i:]).Equal(target)))
	}
	count += sum_AVX2_I8x32(partial)

	return count + BaseCountScalar(span[i:], value)
}

func sum_AVX2_I8x32(v archsimd.Int8x32) int {
	var data [32]int8
	v.StoreSlice(data[:])
	var sum int64
	for _, x := range data {
		sum += int64(x)
	}
	return int(sum)
}

// Count_AVX2_I16x16 counts elements of span equal to value.
func Count_AVX2_I16x16(span []int16, value int16) int {
	const lanes = 16
	n := len(span)
	if n < lanes {
		return BaseCountScalar(span, value)
	}

	target := archsimd.BroadcastInt16x16(value)
	minusOne := archsimd.BroadcastInt16x16(-1)
	zero := archsimd.BroadcastInt16x16(0)
	partial := zero
	maxIters := foldInterval[int16]()
	count, iters, i := 0, 0, 0

	for ; i+lanes*8 <= n; i += lanes * 8 {
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt16x16Slice(span[i:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt16x16Slice(span[i+lanes:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt16x16Slice(span[i+lanes*2:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt16x16Slice(span[i+lanes*3:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt16x16Slice(span[i+lanes*4:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt16x16Slice(span[i+lanes*5:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt16x16Slice(span[i+lanes*6:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt16x16Slice(span[i+lanes*7:]).Equal(target)))

		iters++
		if iters == maxIters {
			count += sum_AVX2_I16x16(partial)
			partial = zero
			iters = 0
		}
	}

	for ; i+lanes <= n; i += lanes {
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt16x16Slice(span[i:]).Equal(target)))
	}
	count += sum_AVX2_I16x16(partial)

	return count + BaseCountScalar(span[i:], value)
}

func sum_AVX2_I16x16(v archsimd.Int16x16) int {
	var data [16]int16
	v.StoreSlice(data[:])
	var sum int64
	for _, x := range data {
		sum += int64(x)
	}
	return int(sum)
}

// Count_AVX2_I32x8 counts elements of span equal to value.
func Count_AVX2_I32x8(span []int32, value int32) int {
	const lanes = 8
	n := len(span)
	if n < lanes {
		return BaseCountScalar(span, value)
	}

	target := archsimd.BroadcastInt32x8(value)
	minusOne := archsimd.BroadcastInt32x8(-1)
	zero := archsimd.BroadcastInt32x8(0)
	partial := zero
	maxIters := foldInterval[int32]()
	count, iters, i := 0, 0, 0

	for ; i+lanes*8 <= n; i += lanes * 8 {
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt32x8Slice(span[i:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt32x8Slice(span[i+lanes:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt32x8Slice(span[i+lanes*2:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt32x8Slice(span[i+lanes*3:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt32x8Slice(span[i+lanes*4:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt32x8Slice(span[i+lanes*5:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt32x8Slice(span[i+lanes*6:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt32x8Slice(span[i+lanes*7:]).Equal(target)))

		iters++
		if iters == maxIters {
			count += sum_AVX2_I32x8(partial)
			partial = zero
			iters = 0
		}
	}

	for ; i+lanes <= n; i += lanes {
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt32x8Slice(span[i:]).Equal(target)))
	}
	count += sum_AVX2_I32x8(partial)

	return count + BaseCountScalar(span[i:], value)
}

func sum_AVX2_I32x8(v archsimd.Int32x8) int {
	var data [8]int32
	v.StoreSlice(data[:])
	var sum int64
	for _, x := range data {
		sum += int64(x)
	}
	return int(sum)
}

// Count_AVX2_I64x4 counts elements of span equal to value.
func Count_AVX2_I64x4(span []int64, value int64) int {
	const lanes = 4
	n := len(span)
	if n < lanes {
		return BaseCountScalar(span, value)
	}

	target := archsimd.BroadcastInt64x4(value)
	minusOne := archsimd.BroadcastInt64x4(-1)
	zero := archsimd.BroadcastInt64x4(0)
	partial := zero
	maxIters := foldInterval[int64]()
	count, iters, i := 0, 0, 0

	for ; i+lanes*8 <= n; i += lanes * 8 {
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt64x4Slice(span[i:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt64x4Slice(span[i+lanes:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt64x4Slice(span[i+lanes*2:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt64x4Slice(span[i+lanes*3:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt64x4Slice(span[i+lanes*4:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt64x4Slice(span[i+lanes*5:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt64x4Slice(span[i+lanes*6:]).Equal(target)))
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt64x4Slice(span[i+lanes*7:]).Equal(target)))

		iters++
		if iters == maxIters {
			count += sum_AVX2_I64x4(partial)
			partial = zero
			iters = 0
		}
	}

	for ; i+lanes <= n; i += lanes {
		partial = partial.Sub(minusOne.Merge(zero, archsimd.LoadInt64x4Slice(span[i:]).Equal(target)))
	}
	count += sum_AVX2_I64x4(partial)

	return count + BaseCountScalar(span[i:], value)
}

func sum_AVX2_I64x4(v archsimd.Int64x4) int {
	var data [4]int64
	v.StoreSlice(data[:])
	var sum int64
	for _, x := range data {
		sum += int64(x)
	}
	return int(sum)
}
