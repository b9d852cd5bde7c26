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

// Package algo provides slice algorithms built on the hwy vector
// abstraction.
//
// # Count
//
// Count reports how many elements of a slice equal a value. Element types
// whose values compare by their bits (integers, bool, uintptr and named types
// over them) run a lane-parallel kernel when hwy.Native reports hardware
// vectors; every other type, and every build without them, runs an unrolled
// scalar loop using ==. Both paths return the same result.
//
//	n := algo.Count(lines, byte('\n'))
//
// CountWith pins the vector descriptor, which is how tests and benchmarks
// compare the scalar and lane-parallel kernels on one machine. Widths without
// hardware kernels run portable Go loops that emulate the lane layout:
//
//	scalar := algo.CountWith(hwy.Scalar{}, data, v)
//	avx512 := algo.CountWith(hwy.FixedTag512{}, data, v)
//
// ParallelCount splits large slices across a workerpool.Pool.
package algo
