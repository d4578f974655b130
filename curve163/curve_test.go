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

package curve163

import (
	"testing"

	"github.com/core-coin/go-ecies163/bitvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basePoint() Point {
	return Point{X: BaseX, Y: BaseY}
}

func TestBasePointIsOnCurve(t *testing.T) {
	g := basePoint()
	require.True(t, IsOnCurve(&g))
}

func TestIdentityIsOnCurveAndZero(t *testing.T) {
	var p Point
	p.SetZero()
	assert.True(t, p.IsZero())
	assert.True(t, IsOnCurve(&p))
}

func TestDoubleOfIdentityIsIdentity(t *testing.T) {
	var p Point
	p.SetZero()
	Double(&p)
	assert.True(t, p.IsZero())
}

func TestAddIdentityIsNoOp(t *testing.T) {
	g := basePoint()
	var zero Point
	zero.SetZero()

	got := basePoint()
	Add(&got, &zero)
	assert.True(t, bitvec.Equal(&got.X, &g.X))
	assert.True(t, bitvec.Equal(&got.Y, &g.Y))
}

func TestDoubleMatchesAddToSelf(t *testing.T) {
	doubled := basePoint()
	Double(&doubled)
	require.True(t, IsOnCurve(&doubled))

	added := basePoint()
	other := basePoint()
	Add(&added, &other)

	assert.True(t, bitvec.Equal(&doubled.X, &added.X))
	assert.True(t, bitvec.Equal(&doubled.Y, &added.Y))
}

func TestAddOfOppositePointsIsIdentity(t *testing.T) {
	// On a binary curve with a=1, -P = (x, x+y).
	p := basePoint()
	neg := basePoint()
	gf163Add(&neg.Y, &neg.X, &neg.Y)

	Add(&p, &neg)
	assert.True(t, p.IsZero())
}

func gf163Add(z, x, y *bitvec.Vec) {
	for i := range z {
		z[i] = x[i] ^ y[i]
	}
}

func TestMultByOrderIsIdentity(t *testing.T) {
	g := basePoint()
	Mult(&g, &BaseOrder)
	assert.True(t, g.IsZero())
}

func TestMultByTwoMatchesDouble(t *testing.T) {
	doubled := basePoint()
	Double(&doubled)

	var two bitvec.Vec
	two[0] = 2
	multiplied := basePoint()
	Mult(&multiplied, &two)

	assert.True(t, bitvec.Equal(&doubled.X, &multiplied.X))
	assert.True(t, bitvec.Equal(&doubled.Y, &multiplied.Y))
}

func TestMultByThreeMatchesDoubleThenAdd(t *testing.T) {
	var expected Point
	expected = basePoint()
	Double(&expected)
	g := basePoint()
	Add(&expected, &g)

	var three bitvec.Vec
	three[0] = 3
	got := basePoint()
	Mult(&got, &three)

	assert.True(t, bitvec.Equal(&expected.X, &got.X))
	assert.True(t, bitvec.Equal(&expected.Y, &got.Y))
}
