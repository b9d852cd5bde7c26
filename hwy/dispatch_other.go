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

//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures run the scalar kernels. HWY_TARGET may still pick
	// a 128-bit lane layout, which is pure Go and runs anywhere.
	setLevel(DispatchScalar, func(level DispatchLevel) bool {
		return level == DispatchScalar || level == DispatchSSE2 || level == DispatchNEON
	})
}
