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
	"reflect"
	"unsafe"

	"github.com/ajroetker/go-highperf/hwy"
)

// LaneKind names the signed integer lane a type is reinterpreted as by the
// vector kernels.
type LaneKind uint8

const (
	// NoLane types are counted with the scalar kernel.
	NoLane LaneKind = iota
	// ByteLane covers 1-byte types: int8, uint8, bool.
	ByteLane
	// ShortLane covers 2-byte types: int16, uint16.
	ShortLane
	// IntLane covers 4-byte types: int32, uint32 (and int, uint on 32-bit).
	IntLane
	// LongLane covers 8-byte types: int64, uint64 (and int, uint, uintptr on 64-bit).
	LongLane
)

func (k LaneKind) String() string {
	switch k {
	case ByteLane:
		return "int8"
	case ShortLane:
		return "int16"
	case IntLane:
		return "int32"
	case LongLane:
		return "int64"
	default:
		return "none"
	}
}

// LaneKindOf returns the lane kind for T. Floats are excluded because == on
// them does not match bit equality (NaN, signed zeros).
func LaneKindOf[T comparable]() LaneKind {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return ByteLane
	case reflect.Int16, reflect.Uint16:
		return ShortLane
	case reflect.Int32, reflect.Uint32:
		return IntLane
	case reflect.Int64, reflect.Uint64:
		return LongLane
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		switch t.Size() {
		case 4:
			return IntLane
		case 8:
			return LongLane
		}
	}
	return NoLane
}

// asLanes reinterprets s as a slice of L without copying.
// The caller guarantees T and L have the same size.
func asLanes[L hwy.SignedInts, T any](s []T) []L {
	return unsafe.Slice((*L)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

// asLane reinterprets the bits of v as L.
func asLane[L hwy.SignedInts, T any](v T) L {
	return *(*L)(unsafe.Pointer(&v))
}
