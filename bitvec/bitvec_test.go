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

package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportExportRoundTrip(t *testing.T) {
	raw := make([]byte, NumWords*4)
	for i := range raw {
		raw[i] = byte(i * 7)
	}

	var v Vec
	v.Import(raw)

	out := make([]byte, NumWords*4)
	v.Export(out)
	assert.Equal(t, raw, out)
}

func TestLoadDumpRoundTrip(t *testing.T) {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i*13 + 1)
	}
	key[0] &= 0x07 // top byte must fit within Degree bits

	var v Vec
	v.Load(key)

	out := make([]byte, KeySize)
	v.Dump(out)
	assert.Equal(t, key, out)
}

func TestLoadKeepsWellFormedValueWithinDegree(t *testing.T) {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = 0xff
	}
	key[0] = 0x07 // top 5 bits zero per the external packing convention

	var v Vec
	v.Load(key)
	require.LessOrEqual(t, v.SizeInBits(), Degree)
}

func TestLoadDoesNotMaskOversizeTopBits(t *testing.T) {
	key := make([]byte, KeySize)
	key[0] = 0xff // violates the convention; must survive the load

	var v Vec
	v.Load(key)
	require.Equal(t, 8*KeySize, v.SizeInBits())
}

func TestSetClrGetBit(t *testing.T) {
	var v Vec
	v.SetBit(100)
	assert.Equal(t, uint32(1), v.GetBit(100))
	v.ClrBit(100)
	assert.Equal(t, uint32(0), v.GetBit(100))
}

func TestSizeInBits(t *testing.T) {
	var v Vec
	assert.Equal(t, 0, v.SizeInBits())

	v.SetBit(0)
	assert.Equal(t, 1, v.SizeInBits())

	v.SetBit(162)
	assert.Equal(t, 163, v.SizeInBits())
}

func TestLshiftNoAlias(t *testing.T) {
	var src, dst Vec
	src.SetBit(0)
	Lshift(&dst, &src, 5)
	assert.Equal(t, uint32(1), dst.GetBit(5))
	assert.Equal(t, uint32(0), dst.GetBit(0))
}

func TestLshiftAliased(t *testing.T) {
	var v Vec
	v.SetBit(3)
	Lshift(&v, &v, 32+1)
	assert.Equal(t, uint32(1), v.GetBit(36))
}

func TestSwapAndEqual(t *testing.T) {
	var a, b Vec
	a.SetBit(1)
	b.SetBit(2)

	assert.False(t, Equal(&a, &b))
	Swap(&a, &b)
	assert.Equal(t, uint32(1), a.GetBit(2))
	assert.Equal(t, uint32(1), b.GetBit(1))
}

func TestCmp(t *testing.T) {
	var a, b Vec
	a.SetBit(5)
	b.SetBit(10)
	assert.Equal(t, -1, Cmp(&a, &b))
	assert.Equal(t, 1, Cmp(&b, &a))
	assert.Equal(t, 0, Cmp(&a, &a))
}

func TestIsClearAndClear(t *testing.T) {
	var v Vec
	assert.True(t, v.IsClear())
	v.SetBit(50)
	assert.False(t, v.IsClear())
	v.Clear()
	assert.True(t, v.IsClear())
}
