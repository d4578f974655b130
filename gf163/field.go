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

// Package gf163 implements arithmetic in the binary field GF(2^163) used
// by the B-163 curve, reduced modulo the fixed polynomial
//
//	P = x^163 + x^7 + x^6 + x^3 + 1
//
// Field elements are bitvec.Vec values with all bits at or above
// bitvec.Degree held at zero. This package is not a general binary-field
// library: the reduction polynomial is a compile-time constant, and
// Invert is undefined on the zero element (callers never invoke it
// there).
package gf163

import "github.com/core-coin/go-ecies163/bitvec"

// Elem is a field element: a reduced bitvec.Vec.
type Elem = bitvec.Vec

// poly is the fixed reduction polynomial, word-encoded:
// x^163 + x^7 + x^6 + x^3 + 1.
var poly = Elem{0x000000c9, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x8}

// One reports whether x equals the multiplicative identity.
func One(x *Elem) bool {
	if x[0] != 1 {
		return false
	}
	for i := 1; i < bitvec.NumWords; i++ {
		if x[i] != 0 {
			return false
		}
	}
	return true
}

// SetOne sets x to the multiplicative identity.
func SetOne(x *Elem) {
	x.Clear()
	x[0] = 1
}

// Add sets z = x XOR y (field addition has no carries).
func Add(z, x, y *Elem) {
	for i := 0; i < bitvec.NumWords; i++ {
		z[i] = x[i] ^ y[i]
	}
}

// AddOne sets x ^= 1, i.e. x += the field's multiplicative identity.
func AddOne(x *Elem) {
	x[0] ^= 1
}

// Mult sets z = x*y mod P via shift-and-add. z must not alias y; z may
// alias x.
func Mult(z, x, y *Elem) {
	var b Elem
	b.Copy(x)
	if y.GetBit(0) == 1 {
		z.Copy(x)
	} else {
		z.Clear()
	}
	for i := 1; i < bitvec.Degree; i++ {
		for j := bitvec.NumWords - 1; j > 0; j-- {
			b[j] = (b[j] << 1) | (b[j-1] >> 31)
		}
		b[0] <<= 1
		if b.GetBit(bitvec.Degree) == 1 {
			Add(&b, &b, &poly)
		}
		if y.GetBit(i) == 1 {
			Add(z, z, &b)
		}
	}
}

// Invert sets z = x^-1 mod P using extended Euclid over GF(2)[x].
// Invert is undefined when x is the zero element.
func Invert(z, x *Elem) {
	var u, v, g, h Elem
	u.Copy(x)
	v.Copy(&poly)
	g.Clear()
	SetOne(z)
	for !One(&u) {
		i := u.SizeInBits() - v.SizeInBits()
		if i < 0 {
			bitvec.Swap(&u, &v)
			bitvec.Swap(&g, z)
			i = -i
		}
		bitvec.Lshift(&h, &v, i)
		Add(&u, &u, &h)
		bitvec.Lshift(&h, &g, i)
		Add(z, z, &h)
	}
}
