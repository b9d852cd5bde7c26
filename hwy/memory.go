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

import "encoding/binary"

// LoadUint32sLE fills v with consecutive little-endian 32-bit words read
// from src. src must hold at least 4*v.NumLanes() bytes.
//
// Reads use no alignment assumptions, so the result only depends on the
// bytes themselves and not on where they live in memory.
func LoadUint32sLE(v Vec[uint32], src []byte) {
	src = src[:len(v.lanes)*4]
	for i := range v.lanes {
		v.lanes[i] = binary.LittleEndian.Uint32(src[i*4:])
	}
}
