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

// Package bitvec implements the fixed-width bit-vector register that
// underlies both field elements and scalars in the B-163 ECIES core: a
// sequence of NumWords 32-bit words, word 0 least significant, holding up
// to Degree+Margin bits.
//
// Degree is the binary field's degree; Margin gives headroom for the
// one extra bit the reduction step in field multiplication produces
// before it folds back modulo the polynomial. Neither constant is a
// general parameter — this package backs exactly one curve (B-163) and
// is not meant to be reused for another field width.
package bitvec

// Degree is the degree of the GF(2^Degree) field this bit-vector backs.
const Degree = 163

// Margin is the headroom, in bits, kept above Degree for intermediate
// field-multiplication results.
const Margin = 3

// NumWords is the number of 32-bit words in a Vec.
const NumWords = (Degree + Margin + 31) / 32

// KeySize is the external, byte-packed width of a Degree-bit value:
// ceil(Degree/8) bytes.
const KeySize = (Degree + 7) / 8

// Vec is a fixed-width bit-vector of exactly NumWords 32-bit words.
// Word 0 holds the least-significant 32 bits. It is used, without further
// wrapping, as both field element and scalar/exponent register; callers
// distinguish the two by context, not by type.
type Vec [NumWords]uint32

// IsClear reports whether every bit of v is zero.
func (v *Vec) IsClear() bool {
	for _, w := range v {
		if w != 0 {
			return false
		}
	}
	return true
}

// Clear zeroes v in place.
func (v *Vec) Clear() {
	*v = Vec{}
}

// Copy sets v = src.
func (v *Vec) Copy(src *Vec) {
	*v = *src
}

// Swap exchanges the contents of a and b.
func Swap(a, b *Vec) {
	*a, *b = *b, *a
}

// Equal reports whether a and b hold the same bits.
func Equal(a, b *Vec) bool {
	return *a == *b
}

// Cmp compares a and b as unsigned NumWords*32-bit integers, returning
// -1, 0 or 1. Used to reject a scalar that is numerically >= a given
// bound, e.g. the base-point order; everything else only ever needs
// Equal.
func Cmp(a, b *Vec) int {
	for i := NumWords - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// GetBit returns bit idx of v (0 or 1). idx must be < NumWords*32.
func (v *Vec) GetBit(idx int) uint32 {
	return (v[idx/32] >> uint(idx%32)) & 1
}

// SetBit sets bit idx of v to 1.
func (v *Vec) SetBit(idx int) {
	v[idx/32] |= 1 << uint(idx%32)
}

// ClrBit clears bit idx of v.
func (v *Vec) ClrBit(idx int) {
	v[idx/32] &^= 1 << uint(idx%32)
}

// SizeInBits returns the index of the highest set bit plus one, or 0 if
// v is all-zero.
func (v *Vec) SizeInBits() int {
	i := NumWords
	for i > 0 && v[i-1] == 0 {
		i--
	}
	if i == 0 {
		return 0
	}
	bits := 32
	w := v[i-1]
	for mask := uint32(1) << 31; w&mask == 0; mask >>= 1 {
		bits--
	}
	return 32*(i-1) + bits
}

// Lshift sets dst = src << count (logical left shift by count bits,
// zero-filling the low end). dst and src may alias.
func Lshift(dst, src *Vec, count int) {
	wordShift := count / 32
	bitShift := uint(count % 32)

	var tmp Vec
	for i := NumWords - 1; i >= 0; i-- {
		if i-wordShift < 0 {
			tmp[i] = 0
			continue
		}
		tmp[i] = src[i-wordShift]
	}
	if bitShift != 0 {
		for i := NumWords - 1; i > 0; i-- {
			tmp[i] = (tmp[i] << bitShift) | (tmp[i-1] >> (32 - bitShift))
		}
		tmp[0] <<= bitShift
	}
	*dst = tmp
}

// Import performs a "raw" import: it reads exactly NumWords*4 bytes,
// big-endian per word, with word 0 occupying the highest-addressed 4
// bytes of s. This is the wire layout used for the ephemeral-point
// stream prefix.
func (v *Vec) Import(s []byte) {
	_ = s[NumWords*4-1]
	for i := 0; i < NumWords; i++ {
		off := (NumWords - 1 - i) * 4
		v[i] = uint32(s[off])<<24 | uint32(s[off+1])<<16 | uint32(s[off+2])<<8 | uint32(s[off+3])
	}
}

// Export performs the matching "raw" export: it writes exactly
// NumWords*4 bytes, word 0 last (highest address).
func (v *Vec) Export(s []byte) {
	_ = s[NumWords*4-1]
	for i := 0; i < NumWords; i++ {
		off := (NumWords - 1 - i) * 4
		s[off] = byte(v[i] >> 24)
		s[off+1] = byte(v[i] >> 16)
		s[off+2] = byte(v[i] >> 8)
		s[off+3] = byte(v[i])
	}
}

// Load performs a "keyed" import: it reads exactly KeySize bytes,
// big-endian, MSB-first, into the low 8*KeySize bits of v. No masking is
// applied. The external convention is that the top 5 bits of data[0]
// are zero; a value that violates it loads oversize so that point
// validation can see and reject it.
func (v *Vec) Load(data []byte) {
	_ = data[KeySize-1]
	v.Clear()
	bptr := KeySize - 1
	word := 0
	shift := uint(0)
	for bptr >= 0 {
		v[word] |= uint32(data[bptr]) << shift
		shift += 8
		if shift == 32 {
			shift = 0
			word++
		}
		bptr--
	}
}

// Dump performs the matching "keyed" export: it writes exactly KeySize
// bytes, big-endian, MSB-first, from the low 8*KeySize bits of v.
func (v *Vec) Dump(data []byte) {
	_ = data[KeySize-1]
	bptr := KeySize - 1
	word := 0
	shift := uint(0)
	for bptr >= 0 {
		data[bptr] = byte(v[word] >> shift)
		shift += 8
		if shift == 32 {
			shift = 0
			word++
		}
		bptr--
	}
}
