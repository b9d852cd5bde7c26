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
	"math"
	"reflect"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// Seed is the initial djb2 state and the hash of an empty sequence.
const Seed = 5381

// Hashable is implemented by element types that supply their own hash code.
type Hashable interface {
	HashCode() int32
}

// Primitive is the set of built-in element types ElementHash understands.
type Primitive interface {
	~bool |
		~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64 |
		~string
}

// Djb2HashCode hashes span using each element's HashCode.
func Djb2HashCode[T Hashable](span []T) int32 {
	return Djb2HashCodeFunc(span, func(v T) int32 { return v.HashCode() })
}

// Djb2HashCodeOf hashes span using ElementHash for each element.
func Djb2HashCodeOf[T Primitive](span []T) int32 {
	return Djb2HashCodeFunc(span, elementHasher[T]())
}

// Djb2HashCodeFunc hashes span left to right with elem supplying each
// element's hash code. Arithmetic wraps.
func Djb2HashCodeFunc[T any](span []T, elem func(T) int32) int32 {
	h := int32(Seed)
	n := len(span)
	i := 0

	for ; i+8 <= n; i += 8 {
		s := span[i : i+8 : i+8]
		h = ((h << 5) + h) ^ elem(s[0])
		h = ((h << 5) + h) ^ elem(s[1])
		h = ((h << 5) + h) ^ elem(s[2])
		h = ((h << 5) + h) ^ elem(s[3])
		h = ((h << 5) + h) ^ elem(s[4])
		h = ((h << 5) + h) ^ elem(s[5])
		h = ((h << 5) + h) ^ elem(s[6])
		h = ((h << 5) + h) ^ elem(s[7])
	}

	if i+4 <= n {
		s := span[i : i+4 : i+4]
		h = ((h << 5) + h) ^ elem(s[0])
		h = ((h << 5) + h) ^ elem(s[1])
		h = ((h << 5) + h) ^ elem(s[2])
		h = ((h << 5) + h) ^ elem(s[3])
		i += 4
	}

	for ; i < n; i++ {
		h = ((h << 5) + h) ^ elem(span[i])
	}

	return h
}

// ElementHash returns the hash code Djb2HashCodeOf uses for v:
//   - integers of 32 bits or less: the value sign or zero extended to int32
//   - 64-bit integers, and int, uint, uintptr on every platform: low ^ high
//     32 bits of the value widened to 64 bits
//   - bool: 1 or 0
//   - floats: their IEEE bits, with -0 hashed as +0 and every NaN alike
//   - strings: xxhash64 folded to 32 bits
func ElementHash[T Primitive](v T) int32 {
	return elementHasher[T]()(v)
}

// BytesHash returns the element hash code of a byte slice, matching
// ElementHash of the same bytes as a string.
func BytesHash(b []byte) int32 {
	return fold64(xxhash.Sum64(b))
}

func fold64(x uint64) int32 {
	return int32(uint32(x) ^ uint32(x>>32))
}

const (
	canonicalNaN32 = 0x7FC00000
	canonicalNaN64 = 0x7FF8000000000000
)

// elementHasher picks the element hash for T once, outside any loop.
func elementHasher[T Primitive]() func(T) int32 {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Bool:
		return func(v T) int32 {
			if *(*bool)(unsafe.Pointer(&v)) {
				return 1
			}
			return 0
		}
	case reflect.Int8:
		return func(v T) int32 { return int32(*(*int8)(unsafe.Pointer(&v))) }
	case reflect.Uint8:
		return func(v T) int32 { return int32(*(*uint8)(unsafe.Pointer(&v))) }
	case reflect.Int16:
		return func(v T) int32 { return int32(*(*int16)(unsafe.Pointer(&v))) }
	case reflect.Uint16:
		return func(v T) int32 { return int32(*(*uint16)(unsafe.Pointer(&v))) }
	case reflect.Int32, reflect.Uint32:
		return func(v T) int32 { return *(*int32)(unsafe.Pointer(&v)) }
	case reflect.Int64, reflect.Uint64:
		return func(v T) int32 { return fold64(*(*uint64)(unsafe.Pointer(&v))) }
	case reflect.Int:
		return func(v T) int32 { return fold64(uint64(*(*int)(unsafe.Pointer(&v)))) }
	case reflect.Uint:
		return func(v T) int32 { return fold64(uint64(*(*uint)(unsafe.Pointer(&v)))) }
	case reflect.Uintptr:
		return func(v T) int32 { return fold64(uint64(*(*uintptr)(unsafe.Pointer(&v)))) }
	case reflect.Float32:
		return func(v T) int32 {
			f := *(*float32)(unsafe.Pointer(&v))
			switch {
			case math.IsNaN(float64(f)):
				return canonicalNaN32
			case f == 0:
				return 0
			}
			return int32(math.Float32bits(f))
		}
	case reflect.Float64:
		return func(v T) int32 {
			f := *(*float64)(unsafe.Pointer(&v))
			switch {
			case math.IsNaN(f):
				return fold64(canonicalNaN64)
			case f == 0:
				return 0
			}
			return fold64(math.Float64bits(f))
		}
	case reflect.String:
		return func(v T) int32 { return fold64(xxhash.Sum64String(*(*string)(unsafe.Pointer(&v)))) }
	}
	panic("hash: unsupported element kind " + reflect.TypeFor[T]().String())
}
