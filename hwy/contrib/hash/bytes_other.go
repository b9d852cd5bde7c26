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

//go:build !(amd64 && goexperiment.simd)

package hash

import "github.com/ajroetker/go-highperf/hwy"

// djb2LikeVectors falls back to the portable 256-bit lane kernel; it is
// only reached when hwy.NativeVectors is true, which this build never is.
func djb2LikeVectors(b []byte) (uint32, []byte) {
	return BaseDjb2LikeLanes(hwy.FixedTag256{}, b)
}
