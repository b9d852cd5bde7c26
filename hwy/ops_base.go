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

package hwy

// This file provides the portable implementations of all vector operations.
// Each operation is a loop over the receiver's lanes that writes in place.
// Sources are resliced to the lane count first so the loops carry no bounds
// checks.

// Load copies the first NumLanes elements of src into v.
// src must hold at least that many elements.
func (v Vec[T]) Load(src []T) {
	copy(v.lanes, src[:len(v.lanes)])
}

// Set broadcasts value to every lane.
func (v Vec[T]) Set(value T) {
	for i := range v.lanes {
		v.lanes[i] = value
	}
}

// Zero clears every lane.
func (v Vec[T]) Zero() {
	clear(v.lanes)
}

// Add performs lane-wise wrapping addition: v += a.
func (v Vec[T]) Add(a Vec[T]) {
	src := a.lanes[:len(v.lanes)]
	for i := range v.lanes {
		v.lanes[i] += src[i]
	}
}

// Sub performs lane-wise wrapping subtraction: v -= a.
func (v Vec[T]) Sub(a Vec[T]) {
	src := a.lanes[:len(v.lanes)]
	for i := range v.lanes {
		v.lanes[i] -= src[i]
	}
}

// Mul performs lane-wise wrapping multiplication, keeping the low half of
// each product: v *= a.
func (v Vec[T]) Mul(a Vec[T]) {
	src := a.lanes[:len(v.lanes)]
	for i := range v.lanes {
		v.lanes[i] *= src[i]
	}
}

// MulScalar multiplies every lane by k with wrapping.
func (v Vec[T]) MulScalar(k T) {
	for i := range v.lanes {
		v.lanes[i] *= k
	}
}

// And performs lane-wise bitwise AND.
func (v Vec[T]) And(a Vec[T]) {
	src := a.lanes[:len(v.lanes)]
	for i := range v.lanes {
		v.lanes[i] &= src[i]
	}
}

// Or performs lane-wise bitwise OR.
func (v Vec[T]) Or(a Vec[T]) {
	src := a.lanes[:len(v.lanes)]
	for i := range v.lanes {
		v.lanes[i] |= src[i]
	}
}

// Xor performs lane-wise bitwise XOR.
func (v Vec[T]) Xor(a Vec[T]) {
	src := a.lanes[:len(v.lanes)]
	for i := range v.lanes {
		v.lanes[i] ^= src[i]
	}
}

// SubEqual compares the first NumLanes elements of src with value and
// subtracts the comparison result from v. A matching lane compares as
// all-ones, which reads as -1 for signed lanes, so each match adds one.
func (v Vec[T]) SubEqual(src []T, value T) {
	src = src[:len(v.lanes)]
	var ones T
	ones = ^ones
	for i, x := range src {
		var m T
		if x == value {
			m = ones
		}
		v.lanes[i] -= m
	}
}

// EqualBits returns a bitmap with bit i set when lane i equals value.
func (v Vec[T]) EqualBits(value T) uint64 {
	var bits uint64
	for i, x := range v.lanes {
		if x == value {
			bits |= 1 << uint(i)
		}
	}
	return bits
}

// ReduceSum returns the wrapping sum of all lanes in T.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.lanes {
		sum += x
	}
	return sum
}

// SumOfLanes returns the sum of all lanes widened to int64, i.e. the dot
// product of v with a vector of ones. Signed lanes are sign extended.
func SumOfLanes[T SignedInts](v Vec[T]) int64 {
	var sum int64
	for _, x := range v.lanes {
		sum += int64(x)
	}
	return sum
}
