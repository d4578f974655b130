// Copyright (c) 2013 Kyle Isom <kyle@tyrfingr.is>
// Copyright (c) 2012 The Go Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//    * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//    * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//    * Neither the name of Google Inc. nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package ecies163

import (
	"io"

	"github.com/core-coin/go-ecies163/bitvec"
	"github.com/core-coin/go-ecies163/curve163"
)

// RandReader is the entropy source for scalar generation. Callers
// supply the source explicitly rather than this package holding (and
// reseeding) a process-wide one: pass crypto/rand.Reader for production
// use. A deterministic io.Reader (e.g. a seeded *math/rand.Rand, which
// already satisfies io.Reader) is useful in tests that need reproducible
// key material.
type RandReader = io.Reader

// randomScalar draws a uniform scalar in [1, n) where n is
// curve163.BaseOrder. It fills bitvec.NumWords*4 bytes of randomness,
// clears every bit at or above the order's bit length to bound the
// draw below 2^ceil(log2 n), and rejects (resamples) both zero draws and
// draws numerically >= n.
//
// Clearing alone would leave a small bias for draws landing in
// [n, 2^ceil(log2 n)); the full >= n rejection removes it.
func randomScalar(rng RandReader) (bitvec.Vec, error) {
	var buf [bitvec.NumWords * 4]byte
	bound := curve163.BaseOrder.SizeInBits()

	for {
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return bitvec.Vec{}, err
		}
		var k bitvec.Vec
		k.Import(buf[:])
		for r := bound; r < bitvec.NumWords*32; r++ {
			k.ClrBit(r)
		}
		if k.IsClear() {
			continue
		}
		if bitvec.Cmp(&k, &curve163.BaseOrder) >= 0 {
			continue
		}
		return k, nil
	}
}
