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
	"github.com/core-coin/go-ecies163/bitvec"
	"github.com/core-coin/go-ecies163/xtea"
)

// kdfBufSize is ((3*(4*NumWords) + 1 + 15) / 16) * 16: three raw-exported
// coordinates, one domain-separator byte, rounded up to a whole number
// of 16-byte Compress blocks.
const kdfBufSize = ((3*(4*bitvec.NumWords) + 1 + 15) / 16) * 16

// kdf derives the two 16-byte stream keys from the shared secret's
// x-coordinate and the ephemeral point. It is a
// non-standard construction by design (see the xtea package doc on the
// Matyas-Meyer-Oseas-shaped Compress function) and is not meant to
// interoperate with any other ECIES-over-XTEA implementation.
func kdf(zx, rx, ry *bitvec.Vec) (k1, k2 [16]byte) {
	var buf [kdfBufSize]byte
	zx.Export(buf[0*4*bitvec.NumWords : 1*4*bitvec.NumWords])
	rx.Export(buf[1*4*bitvec.NumWords : 2*4*bitvec.NumWords])
	ry.Export(buf[2*4*bitvec.NumWords : 3*4*bitvec.NumWords])
	sep := 3 * 4 * bitvec.NumWords

	buf[sep] = 0
	o0 := xtea.Compress(buf[:])
	buf[sep] = 1
	o1 := xtea.Compress(buf[:])
	buf[sep] = 2
	o2 := xtea.Compress(buf[:])
	buf[sep] = 3
	o3 := xtea.Compress(buf[:])

	copy(k1[0:8], o0[:])
	copy(k1[8:16], o1[:])
	copy(k2[0:8], o2[:])
	copy(k2[8:16], o3[:])
	return k1, k2
}
