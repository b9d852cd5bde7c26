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

package hash

import (
	"encoding/binary"
	stdhash "hash"
)

// Djb2 is an incremental djb2 state. Feeding it the element hash codes of a
// sequence in order yields Djb2HashCodeFunc of that sequence. The zero value
// is ready to use.
type Djb2 struct {
	h       int32
	started bool
}

// Add mixes one element hash code into the state.
func (d *Djb2) Add(elem int32) {
	if !d.started {
		d.h, d.started = Seed, true
	}
	d.h = ((d.h << 5) + d.h) ^ elem
}

// AddBytes mixes each byte of p as one element.
func (d *Djb2) AddBytes(p []byte) {
	for _, c := range p {
		d.Add(int32(c))
	}
}

// HashCode returns the current hash; Seed if nothing was added.
func (d *Djb2) HashCode() int32 {
	if !d.started {
		return Seed
	}
	return d.h
}

// Reset returns the state to empty.
func (d *Djb2) Reset() {
	*d = Djb2{}
}

// digest adapts Djb2 to the standard hash.Hash32 interface, one element per
// written byte.
type digest struct {
	Djb2
}

// New32 returns a hash.Hash32 computing the djb2 sequence hash of the bytes
// written to it. Sum32 equals uint32(Djb2HashCodeOf(allBytes)).
func New32() stdhash.Hash32 {
	return &digest{}
}

func (d *digest) Write(p []byte) (int, error) {
	d.AddBytes(p)
	return len(p), nil
}

func (d *digest) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, d.Sum32())
}

func (d *digest) Sum32() uint32 { return uint32(d.HashCode()) }
func (d *digest) Size() int { return 4 }
func (d *digest) BlockSize() int { return 1 }
