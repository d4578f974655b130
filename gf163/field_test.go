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

package gf163

import (
	"testing"

	"github.com/core-coin/go-ecies163/bitvec"
	"github.com/stretchr/testify/assert"
)

func elemFromUint(lo uint32) Elem {
	var e Elem
	e[0] = lo
	return e
}

func TestAddIsXorAndSelfInverse(t *testing.T) {
	a := elemFromUint(0xdeadbeef)
	b := elemFromUint(0x12345678)

	var sum, back Elem
	Add(&sum, &a, &b)
	Add(&back, &sum, &b)
	assert.True(t, bitvec.Equal(&back, &a))
}

func TestMultByOneIsIdentity(t *testing.T) {
	a := elemFromUint(0x123456)
	one := Elem{}
	SetOne(&one)

	var z Elem
	Mult(&z, &a, &one)
	assert.True(t, bitvec.Equal(&z, &a))
}

func TestMultByZero(t *testing.T) {
	a := elemFromUint(0x123456)
	var zero, z Elem
	Mult(&z, &a, &zero)
	assert.True(t, z.IsClear())
}

func TestMultCommutes(t *testing.T) {
	a := elemFromUint(0xabcdef)
	b := elemFromUint(0x987654)

	var ab, ba Elem
	Mult(&ab, &a, &b)
	Mult(&ba, &b, &a)
	assert.True(t, bitvec.Equal(&ab, &ba))
}

func TestInvertRoundTrip(t *testing.T) {
	a := elemFromUint(0x2468ace)

	var inv, prod Elem
	Invert(&inv, &a)
	Mult(&prod, &a, &inv)

	assert.True(t, One(&prod), "a * a^-1 should equal the multiplicative identity")
}

func TestInvertOfOneIsOne(t *testing.T) {
	var one, inv Elem
	SetOne(&one)
	Invert(&inv, &one)
	assert.True(t, One(&inv))
}
