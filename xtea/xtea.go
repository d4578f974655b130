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

// Package xtea implements the symmetric primitives the ECIES envelope
// builds on: the 32-round XTEA block cipher (encipher only — every mode
// below is XOR-based, so a decipher routine is never needed), a CTR
// stream built on it, a length-prefixed CBC-MAC, and a block-to-hash
// compression function.
//
// That last construction is often labelled Davies-Meyer, but it is
// actually shaped like Matyas-Meyer-Oseas: the input block keys the
// cipher and a fixed (rotating) accumulator is what gets enciphered,
// not the other way around. Don't assume interoperability with anything
// claiming real Davies-Meyer or MMO semantics elsewhere — this is its
// own, self-contained construction.
package xtea

import "encoding/binary"

// BlockSize is the XTEA block size in bytes.
const BlockSize = 8

// KeySize is the XTEA key size in bytes (four 32-bit words).
const KeySize = 16

// rounds is the fixed number of Feistel rounds.
const rounds = 32

// delta is XTEA's fixed round constant.
const delta = 0x9e3779b9

// initKey unpacks a 16-byte key into four big-endian 32-bit words.
func initKey(key []byte) (k [4]uint32) {
	k[0] = binary.BigEndian.Uint32(key[0:4])
	k[1] = binary.BigEndian.Uint32(key[4:8])
	k[2] = binary.BigEndian.Uint32(key[8:12])
	k[3] = binary.BigEndian.Uint32(key[12:16])
	return k
}

// encipherBlock enciphers the 8-byte block in place under key k, running
// the full 32 XTEA rounds.
func encipherBlock(data []byte, k [4]uint32) {
	var sum uint32
	y := binary.BigEndian.Uint32(data[0:4])
	z := binary.BigEndian.Uint32(data[4:8])
	for i := 0; i < rounds; i++ {
		y += ((z<<4 ^ z>>5) + z) ^ (sum + k[sum&3])
		sum += delta
		z += ((y<<4 ^ y>>5) + y) ^ (sum + k[sum>>11&3])
	}
	binary.BigEndian.PutUint32(data[0:4], y)
	binary.BigEndian.PutUint32(data[4:8], z)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// CTRCrypt XORs data in place with the keystream produced by enciphering
// a 64-bit big-endian counter starting at 0 and incrementing once per
// block. The same routine both encrypts and decrypts.
func CTRCrypt(data []byte, key []byte) {
	CTRCryptFrom(data, key, 0)
}

// CTRCryptFrom is CTRCrypt with an explicit starting counter value; it
// returns the counter value after processing data. Callers that must keep
// the counter running across several calls against the same key — a
// plaintext split into chunks and encrypted one chunk at a time — thread
// this return value back in as the next call's ctr. A partial final
// block still consumes a whole counter value, so the combined output
// equals one CTRCrypt call over the concatenation only when every call
// but the last covers a multiple of BlockSize bytes.
func CTRCryptFrom(data []byte, key []byte, ctr uint64) uint64 {
	k := initKey(key)
	var buf [BlockSize]byte
	for len(data) > 0 {
		binary.BigEndian.PutUint64(buf[:], ctr)
		ctr++
		encipherBlock(buf[:], k)
		n := min(BlockSize, len(data))
		for i := 0; i < n; i++ {
			data[i] ^= buf[i]
		}
		data = data[n:]
	}
	return ctr
}

// CBCMAC computes the 8-byte length-prefixed CBC-MAC of data under key.
// The accumulator is seeded with (0x00000000 || big-endian length) and
// enciphered once before any data is folded in, which defeats trivial
// length-extension.
func CBCMAC(data []byte, key []byte) [BlockSize]byte {
	k := initKey(key)
	var mac [BlockSize]byte
	binary.BigEndian.PutUint32(mac[0:4], 0)
	binary.BigEndian.PutUint32(mac[4:8], uint32(len(data)))
	encipherBlock(mac[:], k)
	rest := data
	for len(rest) > 0 {
		n := min(BlockSize, len(rest))
		for i := 0; i < n; i++ {
			mac[i] ^= rest[i]
		}
		encipherBlock(mac[:], k)
		rest = rest[n:]
	}
	return mac
}

// Compress runs the block-to-hash compression function over in, which
// must hold an integer number of 16-byte blocks, and returns the 8-byte
// output. Each 16-byte block of in rekeys XTEA; the running accumulator
// is enciphered under that key and the result XORed back into it
// (Matyas-Meyer-Oseas-shaped — see the package doc).
func Compress(in []byte) [BlockSize]byte {
	var out [BlockSize]byte
	var buf [BlockSize]byte
	for len(in) >= KeySize {
		k := initKey(in[:KeySize])
		copy(buf[:], out[:])
		encipherBlock(buf[:], k)
		for i := 0; i < BlockSize; i++ {
			out[i] ^= buf[i]
		}
		in = in[KeySize:]
	}
	return out
}
