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

// Package ecies163 implements the ECIES envelope over the B-163 curve
// and the XTEA-based symmetric primitives in the xtea package: key
// generation, public-key validation, a non-standard KDF, and one-shot
// and streaming encrypt/decrypt.
//
// This is not a general-purpose ECIES library — the curve and the
// symmetric primitives are hard-coded — and it makes no attempt at
// interoperability with any standards-track ECIES implementation.
package ecies163

import (
	"github.com/core-coin/go-ecies163/bitvec"
	"github.com/core-coin/go-ecies163/curve163"
)

// PublicKey is the external, wire-format public key: big-endian,
// MSB-first coordinates, each bitvec.KeySize bytes, with the top 5 bits
// of the most-significant byte of each implicitly zero (bitvec.Degree is
// 163, 5 bits short of the 168-bit KeySize width).
type PublicKey struct {
	X [bitvec.KeySize]byte
	Y [bitvec.KeySize]byte
}

// PrivateKey is the external, wire-format private scalar, packed
// identically to one coordinate of PublicKey.
type PrivateKey struct {
	K [bitvec.KeySize]byte
}

func (pub *PublicKey) point() curve163.Point {
	var p curve163.Point
	p.X.Load(pub.X[:])
	p.Y.Load(pub.Y[:])
	return p
}

func pointToPublicKey(p *curve163.Point) *PublicKey {
	pub := new(PublicKey)
	p.X.Dump(pub.X[:])
	p.Y.Dump(pub.Y[:])
	return pub
}

func (priv *PrivateKey) scalar() bitvec.Vec {
	var k bitvec.Vec
	k.Load(priv.K[:])
	return k
}

// GenerateKeys draws a fresh scalar k in [1, n) from rng, computes
// Q = k*G, and returns the resulting private/public key pair.
func GenerateKeys(rng RandReader) (*PrivateKey, *PublicKey, error) {
	k, err := randomScalar(rng)
	if err != nil {
		return nil, nil, err
	}

	q := curve163.Point{X: curve163.BaseX, Y: curve163.BaseY}
	curve163.Mult(&q, &k)

	priv := new(PrivateKey)
	k.Dump(priv.K[:])
	return priv, pointToPublicKey(&q), nil
}

// validateIntern checks conditions (a)-(c) of public-key validation: both
// coordinates fit in at most bitvec.Degree bits, the point is not the
// identity, and the point lies on the curve. It deliberately stops short
// of the order check (d), which ValidatePublicKey adds on top — the
// stream prefix's ephemeral point is only ever checked against (a)-(c).
func validateIntern(p *curve163.Point) error {
	if p.X.SizeInBits() > bitvec.Degree || p.Y.SizeInBits() > bitvec.Degree {
		return ErrInvalidPoint
	}
	if p.IsZero() {
		return ErrInvalidPoint
	}
	if !curve163.IsOnCurve(p) {
		return ErrInvalidPoint
	}
	return nil
}

// ValidatePublicKey accepts pub iff both coordinates fit in at most
// bitvec.Degree bits, the point is not the identity, it lies on the
// curve, and it generates a subgroup of the full base order (n*Q is the
// identity). Validation results are memoized; see cache.go.
func ValidatePublicKey(pub *PublicKey) error {
	if err, ok := validateCacheGet(pub); ok {
		return err
	}
	err := validatePublicKeyUncached(pub)
	validateCachePut(pub, err)
	return err
}

func validatePublicKeyUncached(pub *PublicKey) error {
	p := pub.point()
	if err := validateIntern(&p); err != nil {
		return err
	}
	q := p
	curve163.Mult(&q, &curve163.BaseOrder)
	if !q.IsZero() {
		return ErrInvalidPoint
	}
	return nil
}
