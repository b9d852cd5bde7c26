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

import "math/bits"

// NextPowerOfTwo rounds x up to the next power of two.
// Values <= 1 return 1. Returns 0 when the result would not fit in an int.
func NextPowerOfTwo(x int) int {
	if x <= 1 {
		return 1
	}
	n := bits.Len(uint(x - 1))
	if n >= bits.UintSize-1 {
		return 0
	}
	return 1 << n
}

// IsPowerOfTwo reports whether x is a positive power of two.
func IsPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}
