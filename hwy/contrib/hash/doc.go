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

// Package hash provides djb2 hashing over slices.
//
// Djb2HashCode and friends hash a sequence of element hash codes with the
// classic recurrence h = h*33 ^ e, seeded with 5381. The result depends only
// on the element hash codes and their order, and is the same on every
// platform and dispatch level.
//
// Djb2LikeBytes hashes raw bytes faster by running one djb2 chain per 32-bit
// lane of a vector and folding the lanes at the end. Its result is NOT equal
// to Djb2HashCodeOf over the same bytes, and it may differ between machines
// with different vector widths, between builds with and without
// GOEXPERIMENT=simd, or with HWY_NO_SIMD set. Use it for
// in-process tables and caches, never for values that are persisted or
// compared across hosts. It never depends on the alignment of the input.
package hash
