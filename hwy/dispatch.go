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

import (
	"os"
	"strconv"
	"strings"
)

// DispatchLevel represents the instruction set whose lane counts are used.
type DispatchLevel int

const (
	// DispatchScalar indicates no vector unit, pure scalar kernels.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 (128-bit, x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes for the level, 0 for scalar.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchScalar:
		return 0
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	default:
		return 16
	}
}

// ParseLevel parses a level name as printed by String.
func ParseLevel(s string) (DispatchLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar", "generic", "fallback":
		return DispatchScalar, true
	case "sse2":
		return DispatchSSE2, true
	case "avx2":
		return DispatchAVX2, true
	case "avx512":
		return DispatchAVX512, true
	case "neon":
		return DispatchNEON, true
	default:
		return DispatchScalar, false
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the register width in bytes for the current level.
var currentWidth int

// currentName is the human-readable name of the current level.
var currentName string

// nativeVectors is set when hardware vector kernels are compiled in and the
// current level can run them.
var nativeVectors bool

// CurrentLevel returns the dispatch level being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the register width in bytes.
// For example: 0 for scalar, 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current target.
func CurrentName() string {
	return currentName
}

// NativeVectors reports whether kernels run on hardware vector instructions.
// That needs an amd64 build with GOEXPERIMENT=simd and a level of AVX2 or
// above; everywhere else Native is Scalar.
func NativeVectors() bool {
	return nativeVectors
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, kernels use the scalar path regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// TargetEnv returns the level requested through HWY_TARGET, if any.
func TargetEnv() (DispatchLevel, bool) {
	val := os.Getenv("HWY_TARGET")
	if val == "" {
		return DispatchScalar, false
	}
	return ParseLevel(val)
}

// setLevel applies the environment overrides on top of the detected level.
// available reports whether the CPU can run a requested level.
func setLevel(detected DispatchLevel, available func(DispatchLevel) bool) {
	level := detected
	if NoSimdEnv() {
		level = DispatchScalar
	} else if want, ok := TargetEnv(); ok && available(want) {
		level = want
	}

	currentLevel = level
	currentWidth = level.Width()
	currentName = level.String()
	nativeVectors = (level == DispatchAVX2 || level == DispatchAVX512) && simdKernels()
}
