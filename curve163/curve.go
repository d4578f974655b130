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

// Package curve163 implements point arithmetic on the NIST B-163 binary
// curve
//
//	y^2 + x*y = x^3 + x^2 + b
//
// over the field implemented by gf163. Curve coefficient 'a' is fixed at
// 1, as it is for every NIST binary curve; 'b' is the compile-time
// constant CoeffB.
//
// The point at infinity is encoded as the pair (0, 0) — the curve itself
// never passes through that point, so the encoding is unambiguous, but
// it is an implementation sentinel worth calling out explicitly: any
// future change that could produce an intermediate (0,0) non-identity
// point would silently corrupt every operation below.
//
// None of this is constant-time: Double, Add and Mult branch on the
// values they operate on. This package is not a suitable building block
// for a context where point operations must not leak through timing or
// memory-access side channels.
package curve163

import (
	"github.com/core-coin/go-ecies163/bitvec"
	"github.com/core-coin/go-ecies163/gf163"
)

// CoeffB is the curve's b coefficient.
var CoeffB = gf163.Elem{0x4a3205fd, 0x512f7874, 0x1481eb10, 0xb8c953ca, 0x0a601907, 0x2}

// BaseX, BaseY are the coordinates of the base point G.
var (
	BaseX = gf163.Elem{0xe8343e36, 0xd4994637, 0xa0991168, 0x86a2d57e, 0xf0eba162, 0x3}
	BaseY = gf163.Elem{0x797324f1, 0xb11c5c0c, 0xa2cdd545, 0x71a0094f, 0xd51fbc6c, 0x0}
)

// BaseOrder is the order n of the base point's cyclic subgroup.
var BaseOrder = bitvec.Vec{0xa4234c33, 0x77e70c12, 0x000292fe, 0x00000000, 0x00000000, 0x4}

// Point is a curve point in affine coordinates. The zero value (X and Y
// both all-zero) is the point at infinity.
type Point struct {
	X, Y gf163.Elem
}

// IsZero reports whether p is the point at infinity.
func (p *Point) IsZero() bool {
	return p.X.IsClear() && p.Y.IsClear()
}

// SetZero sets p to the point at infinity.
func (p *Point) SetZero() {
	p.X.Clear()
	p.Y.Clear()
}

// Copy sets p = src.
func (p *Point) Copy(src *Point) {
	p.X.Copy(&src.X)
	p.Y.Copy(&src.Y)
}

// IsOnCurve reports whether p satisfies y^2 + x*y = x^3 + x^2 + b. The
// point at infinity is always considered on-curve.
func IsOnCurve(p *Point) bool {
	if p.IsZero() {
		return true
	}
	var a, b gf163.Elem
	gf163.Mult(&a, &p.X, &p.X) // a = x^2
	gf163.Mult(&b, &a, &p.X)   // b = x^3
	gf163.Add(&a, &a, &b)      // a = x^2 + x^3
	gf163.Add(&a, &a, &CoeffB) // a = x^2 + x^3 + b
	gf163.Mult(&b, &p.Y, &p.Y) // b = y^2
	gf163.Add(&a, &a, &b)      // a = x^2 + x^3 + b + y^2
	gf163.Mult(&b, &p.X, &p.Y) // b = x*y
	return bitvec.Equal(&a, &b)
}

// Double sets p = 2p in place.
func Double(p *Point) {
	if p.X.IsClear() {
		p.Y.Clear()
		return
	}
	var a gf163.Elem
	gf163.Invert(&a, &p.X)
	gf163.Mult(&a, &a, &p.Y)
	gf163.Add(&a, &a, &p.X) // a = y/x + x = lambda
	gf163.Mult(&p.Y, &p.X, &p.X)
	gf163.Mult(&p.X, &a, &a) // x' = lambda^2
	gf163.AddOne(&a)         // a = lambda + 1
	gf163.Add(&p.X, &p.X, &a) // x' = lambda^2 + lambda + 1
	gf163.Mult(&a, &a, &p.X)
	gf163.Add(&p.Y, &p.Y, &a) // y' = x^2 + lambda*x' + x'
}

// Add sets p = p + q in place. The operation ordering below keeps the
// temporaries valid while p.X and p.Y are overwritten in place; x3 is
// held in d until y3 no longer needs the old p.X.
func Add(p, q *Point) {
	if q.IsZero() {
		return
	}
	if p.IsZero() {
		p.Copy(q)
		return
	}
	if bitvec.Equal(&p.X, &q.X) {
		if bitvec.Equal(&p.Y, &q.Y) {
			Double(p)
		} else {
			p.SetZero()
		}
		return
	}
	var a, b, c, d gf163.Elem
	gf163.Add(&a, &p.Y, &q.Y)
	gf163.Add(&b, &p.X, &q.X)
	gf163.Invert(&c, &b)
	gf163.Mult(&c, &c, &a) // c = lambda
	gf163.Mult(&d, &c, &c)
	gf163.Add(&d, &d, &c)
	gf163.Add(&d, &d, &b)
	gf163.AddOne(&d) // d = x3 = lambda^2 + lambda + x1 + x2 + 1
	gf163.Add(&p.X, &p.X, &d)
	gf163.Mult(&a, &p.X, &c)
	gf163.Add(&a, &a, &d)
	gf163.Add(&p.Y, &p.Y, &a) // y3 = lambda*(x1+x3) + x3 + y1
	p.X.Copy(&d)
}

// Mult sets p = k*p in place via MSB-first double-and-add.
func Mult(p *Point, k *bitvec.Vec) {
	var r Point
	r.SetZero()
	for i := k.SizeInBits() - 1; i >= 0; i-- {
		Double(&r)
		if k.GetBit(i) == 1 {
			Add(&r, p)
		}
	}
	p.Copy(&r)
}
