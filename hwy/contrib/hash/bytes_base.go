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

package hash

import (
	"encoding/binary"
	"math/bits"

	"github.com/ajroetker/go-highperf/hwy"
)

// Djb2LikeBytes hashes b at the dispatch level selected at init.
// See the package documentation for its portability caveats.
func Djb2LikeBytes(b []byte) int32 {
	return Djb2LikeBytesWith(hwy.Native(), b)
}

// Djb2LikeBytesWith hashes b using vectors described by d. The result
// depends on the bytes of b and on hwy.WidthOf(d), nothing else. A 256-bit
// width uses the AVX2 kernel when hwy.NativeVectors reports it.
func Djb2LikeBytesWith(d hwy.Tag, b []byte) int32 {
	var h uint32
	if width := hwy.WidthOf(d); width > 0 && len(b) >= 8*width {
		if width == 32 && hwy.NativeVectors() {
			h, b = djb2LikeVectors(b)
		} else {
			h, b = BaseDjb2LikeLanes(d, b)
		}
	} else if bits.UintSize == 64 {
		h, b = djb2LikeWords64(Seed, b)
	} else {
		h, b = djb2LikeWords32(Seed, b)
	}

	h, b = djb2LikeHalfWords(h, b)
	for _, c := range b {
		h = mix(h, uint32(c))
	}
	return int32(h)
}

func mix(h, w uint32) uint32 {
	return ((h << 5) + h) ^ w
}

// BaseDjb2LikeLanes runs one djb2 chain per 32-bit lane over all full
// vectors of b, then folds the lanes in order into a single state. It
// returns the state and the bytes left over.
func BaseDjb2LikeLanes(d hwy.Tag, b []byte) (uint32, []byte) {
	var pbuf, wbuf hwy.Buffer[uint32]
	partial, words := pbuf.Vec(d), wbuf.Vec(d)
	partial.Set(Seed)
	vecBytes := 4 * partial.NumLanes()
	if vecBytes == 0 {
		return Seed, b
	}
	step := vecBytes * 8
	i := 0

	for ; i+step <= len(b); i += step {
		block := b[i : i+step : i+step]
		for k := 0; k < step; k += vecBytes {
			hwy.LoadUint32sLE(words, block[k:])
			partial.MulScalar(33)
			partial.Xor(words)
		}
	}

	for ; i+vecBytes <= len(b); i += vecBytes {
		hwy.LoadUint32sLE(words, b[i:])
		partial.MulScalar(33)
		partial.Xor(words)
	}

	return foldLanes(partial), b[i:]
}

// foldLanes mixes the lanes of v, in order, into a fresh state.
func foldLanes(v hwy.Vec[uint32]) uint32 {
	h := uint32(Seed)
	for j := range v.NumLanes() {
		h = mix(h, v.Lane(j))
	}
	return h
}

// djb2LikeWords64 consumes 64 bytes at a time as eight 64-bit words, mixing
// the low then the high half of each word.
func djb2LikeWords64(h uint32, b []byte) (uint32, []byte) {
	for len(b) >= 64 {
		s := b[:64:64]
		h = mix64(h, binary.LittleEndian.Uint64(s[0:]))
		h = mix64(h, binary.LittleEndian.Uint64(s[8:]))
		h = mix64(h, binary.LittleEndian.Uint64(s[16:]))
		h = mix64(h, binary.LittleEndian.Uint64(s[24:]))
		h = mix64(h, binary.LittleEndian.Uint64(s[32:]))
		h = mix64(h, binary.LittleEndian.Uint64(s[40:]))
		h = mix64(h, binary.LittleEndian.Uint64(s[48:]))
		h = mix64(h, binary.LittleEndian.Uint64(s[56:]))
		b = b[64:]
	}
	return h, b
}

func mix64(h uint32, w uint64) uint32 {
	return mix(mix(h, uint32(w)), uint32(w>>32))
}

// djb2LikeWords32 consumes 32 bytes at a time as eight 32-bit words.
func djb2LikeWords32(h uint32, b []byte) (uint32, []byte) {
	for len(b) >= 32 {
		s := b[:32:32]
		h = mix(h, binary.LittleEndian.Uint32(s[0:]))
		h = mix(h, binary.LittleEndian.Uint32(s[4:]))
		h = mix(h, binary.LittleEndian.Uint32(s[8:]))
		h = mix(h, binary.LittleEndian.Uint32(s[12:]))
		h = mix(h, binary.LittleEndian.Uint32(s[16:]))
		h = mix(h, binary.LittleEndian.Uint32(s[20:]))
		h = mix(h, binary.LittleEndian.Uint32(s[24:]))
		h = mix(h, binary.LittleEndian.Uint32(s[28:]))
		b = b[32:]
	}
	return h, b
}

// djb2LikeHalfWords consumes 16 bytes at a time as eight 16-bit words.
func djb2LikeHalfWords(h uint32, b []byte) (uint32, []byte) {
	for len(b) >= 16 {
		s := b[:16:16]
		h = mix(h, uint32(binary.LittleEndian.Uint16(s[0:])))
		h = mix(h, uint32(binary.LittleEndian.Uint16(s[2:])))
		h = mix(h, uint32(binary.LittleEndian.Uint16(s[4:])))
		h = mix(h, uint32(binary.LittleEndian.Uint16(s[6:])))
		h = mix(h, uint32(binary.LittleEndian.Uint16(s[8:])))
		h = mix(h, uint32(binary.LittleEndian.Uint16(s[10:])))
		h = mix(h, uint32(binary.LittleEndian.Uint16(s[12:])))
		h = mix(h, uint32(binary.LittleEndian.Uint16(s[14:])))
		b = b[16:]
	}
	return h, b
}
