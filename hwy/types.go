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

// Package hwy provides a portable fixed-width vector abstraction with runtime
// CPU dispatch.
//
// A Vec is a view of one vector register held in caller-owned storage. Its
// lane count follows a Tag, so the same kernel runs with the lane counts of
// SSE2/NEON (16 bytes), AVX2 (32 bytes) or AVX-512 (64 bytes). Operations
// write their result into the receiver's storage: nothing is copied or
// allocated per operation.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-highperf/hwy"
//
//	d := hwy.FixedTag256{}
//	var buf hwy.Buffer[int32]
//	acc := buf.Vec(d)
//	for i := 0; i+acc.NumLanes() <= len(data); i += acc.NumLanes() {
//	    acc.SubEqual(data[i:], 7)
//	}
//	matches := hwy.SumOfLanes(acc)
package hwy

// MaxBytes is the widest vector, in bytes, that a Tag can describe.
const MaxBytes = 64

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	SignedInts | UnsignedInts
}

// Buffer is storage for one vector of any width up to MaxBytes. Declare it
// as a local variable so the vector lives on the stack.
type Buffer[T Lanes] [MaxBytes]T

// Vec returns a zeroed vector over b sized for d.
func (b *Buffer[T]) Vec(d Tag) Vec[T] {
	v := Vec[T]{lanes: b[:LanesFor[T](d)]}
	v.Zero()
	return v
}

// Vec is a vector register. Copies of a Vec share storage; operations
// modify the lanes in place.
//
// Obtain a Vec from Buffer.Vec.
type Vec[T Lanes] struct {
	lanes []T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.lanes)
}

// Lane returns the value of lane i.
func (v Vec[T]) Lane(i int) T {
	return v.lanes[i]
}

// Store writes the lanes to dst and returns the number written.
func (v Vec[T]) Store(dst []T) int {
	return copy(dst, v.lanes)
}
