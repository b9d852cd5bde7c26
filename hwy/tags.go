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

import "unsafe"

// Tag describes the vector width a kernel should run with.
// A width of 0 means no vector unit: kernels take their scalar path.
//
// Kernels never use Width directly; they use WidthOf, which brings any
// reported width into the range they support.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("avx2", "128bit", etc.)
	Name() string
}

// ScalableTag uses the register width of the detected dispatch level with
// the portable kernels.
type ScalableTag struct{}

// Width returns the current runtime vector width in bytes, 0 at the scalar
// level.
func (ScalableTag) Width() int {
	return currentWidth
}

// Name returns the current runtime target name.
func (ScalableTag) Name() string {
	return currentName
}

// Scalar disables vector kernels.
type Scalar struct{}

func (Scalar) Width() int { return 0 }
func (Scalar) Name() string { return "scalar" }

// FixedTag128 forces 128-bit vectors (SSE2, NEON lane counts).
type FixedTag128 struct{}

func (FixedTag128) Width() int { return 16 }
func (FixedTag128) Name() string { return "128bit" }

// FixedTag256 forces 256-bit vectors (AVX2 lane counts).
type FixedTag256 struct{}

func (FixedTag256) Width() int { return 32 }
func (FixedTag256) Name() string { return "256bit" }

// FixedTag512 forces 512-bit vectors (AVX-512 lane counts).
type FixedTag512 struct{}

func (FixedTag512) Width() int { return 64 }
func (FixedTag512) Name() string { return "512bit" }

// WidthTag is a Tag with an arbitrary width in bytes. Widths are clamped to
// [0, MaxBytes] and rounded down to a multiple of 8, so every lane type divides
// them evenly.
type WidthTag int

// Width returns the clamped width.
func (w WidthTag) Width() int {
	return normalizeWidth(int(w))
}

func normalizeWidth(n int) int {
	if n <= 0 {
		return 0
	}
	return min(n, MaxBytes) &^ 7
}

// WidthOf returns the width kernels use for d: d.Width() clamped to
// [0, MaxBytes] and rounded down to a multiple of 8, so every lane type
// divides it evenly. A Tag reporting 18 bytes runs as 16, one reporting 128
// runs as 64.
func WidthOf(d Tag) int {
	return normalizeWidth(d.Width())
}

// Name returns "<bits>bit" or "scalar".
func (w WidthTag) Name() string {
	switch w.Width() {
	case 0:
		return "scalar"
	case 16:
		return "128bit"
	case 32:
		return "256bit"
	case 64:
		return "512bit"
	}
	return "custom"
}

// Native returns the fastest Tag for this process. It is FixedTag256 when
// hardware vector kernels are available (see NativeVectors) and Scalar
// otherwise: the portable lane kernels only emulate a width and are slower
// than the scalar ones.
func Native() Tag {
	if nativeVectors {
		return FixedTag256{}
	}
	return Scalar{}
}

// LanesFor returns how many lanes of T fit in a vector described by d.
func LanesFor[T Lanes](d Tag) int {
	var dummy T
	return WidthOf(d) / int(unsafe.Sizeof(dummy))
}
