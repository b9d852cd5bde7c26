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

package hash

import (
	"simd/archsimd"
	"unsafe"
)

// djb2LikeVectors is BaseDjb2LikeLanes at a width of 32 bytes on AVX2
// registers. amd64 is little-endian, so loading the bytes as int32 lanes
// reads the same words LoadUint32sLE does.
func djb2LikeVectors(b []byte) (uint32, []byte) {
	const vecBytes = 32
	words := unsafe.Slice((*int32)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/4)
	partial := archsimd.BroadcastInt32x8(Seed)
	i := 0

	// partial*33 is computed as (partial<<5)+partial.
	for ; (i+64)*4 <= len(b); i += 64 {
		partial = partial.ShiftAllLeft(5).Add(partial).Xor(archsimd.LoadInt32x8Slice(words[i:]))
		partial = partial.ShiftAllLeft(5).Add(partial).Xor(archsimd.LoadInt32x8Slice(words[i+8:]))
		partial = partial.ShiftAllLeft(5).Add(partial).Xor(archsimd.LoadInt32x8Slice(words[i+16:]))
		partial = partial.ShiftAllLeft(5).Add(partial).Xor(archsimd.LoadInt32x8Slice(words[i+24:]))
		partial = partial.ShiftAllLeft(5).Add(partial).Xor(archsimd.LoadInt32x8Slice(words[i+32:]))
		partial = partial.ShiftAllLeft(5).Add(partial).Xor(archsimd.LoadInt32x8Slice(words[i+40:]))
		partial = partial.ShiftAllLeft(5).Add(partial).Xor(archsimd.LoadInt32x8Slice(words[i+48:]))
		partial = partial.ShiftAllLeft(5).Add(partial).Xor(archsimd.LoadInt32x8Slice(words[i+56:]))
	}

	for ; (i+8)*4 <= len(b); i += 8 {
		partial = partial.ShiftAllLeft(5).Add(partial).Xor(archsimd.LoadInt32x8Slice(words[i:]))
	}

	var lanes [vecBytes / 4]int32
	partial.StoreSlice(lanes[:])
	h := uint32(Seed)
	for _, x := range lanes {
		h = mix(h, uint32(x))
	}
	return h, b[i*4:]
}
