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
	"crypto/subtle"

	"github.com/core-coin/go-ecies163/curve163"
	"github.com/core-coin/go-ecies163/xtea"
	"github.com/pborman/uuid"
)

// StartOverhead is the byte length of a stream's starting prefix:
// the ephemeral point's two raw-exported coordinates.
const StartOverhead = 8 * 6 // 8 * bitvec.NumWords

// ChunkOverhead is the per-chunk MAC length.
const ChunkOverhead = 8

// Overhead is the one-shot API's total overhead: StartOverhead plus one
// ChunkOverhead-sized MAC.
const Overhead = StartOverhead + ChunkOverhead

// StreamState holds the two symmetric session keys derived for one
// logical stream: K1 keys CTR, K2 keys CBC-MAC. Besides the running CTR
// block counter it carries no chunk sequence number, and nothing about
// chunk order reaches the wire — each chunk's MAC is self-contained,
// covering only that chunk's bytes — so callers that split and
// reassemble a stream must preserve chunk order out-of-band.
//
// A StreamState is scoped to one logical stream and must not be shared
// between concurrently-running chunk calls; nothing here is safe for
// concurrent use from multiple goroutines against the same state.
type StreamState struct {
	k1, k2 [16]byte

	// ctr is the next CTR block counter. It advances across chunk
	// calls and is never reset per chunk. A chunk whose length is not
	// a multiple of the XTEA block size leaves the rest of its last
	// keystream block unused; the next chunk starts at the next
	// counter value.
	ctr uint64

	// StreamID is a local log-correlation handle only; it is never
	// part of the wire format and has no cryptographic role.
	StreamID uuid.UUID
}

// EncryptStart derives a fresh StreamState for encrypting to pub and
// returns it along with the StartOverhead-byte stream prefix that must
// precede the encrypted chunks on the wire.
func EncryptStart(rng RandReader, pub *PublicKey) (*StreamState, [StartOverhead]byte, error) {
	var prefix [StartOverhead]byte

	recipient := pub.point()
	var z curve163.Point
	var r curve163.Point
	for {
		k, err := randomScalar(rng)
		if err != nil {
			return nil, prefix, err
		}
		z = recipient
		curve163.Mult(&z, &k)
		curve163.Double(&z) // cofactor h=2 on B-163
		if !z.IsZero() {
			r = curve163.Point{X: curve163.BaseX, Y: curve163.BaseY}
			curve163.Mult(&r, &k)
			break
		}
	}

	k1, k2 := kdf(&z.X, &r.X, &r.Y)
	r.X.Export(prefix[0 : 4*6])
	r.Y.Export(prefix[4*6 : 8*6])

	return &StreamState{k1: k1, k2: k2, StreamID: uuid.NewRandom()}, prefix, nil
}

// EncryptChunk CTR-encrypts plaintext under s.k1 — continuing from the
// counter value where the previous chunk left off — and appends an
// 8-byte CBC-MAC (keyed by s.k2) computed over the resulting ciphertext.
// It does not mutate plaintext.
func (s *StreamState) EncryptChunk(plaintext []byte) []byte {
	out := make([]byte, len(plaintext)+ChunkOverhead)
	copy(out, plaintext)
	body := out[:len(plaintext)]
	s.ctr = xtea.CTRCryptFrom(body, s.k1[:], s.ctr)
	mac := xtea.CBCMAC(body, s.k2[:])
	copy(out[len(plaintext):], mac[:])
	return out
}

// DecryptStart reads the StartOverhead-byte stream prefix as the
// ephemeral point R, validates it (off-curve / identity / over-size
// rejections only — the full subgroup-order check is skipped for
// ephemeral points), derives the shared secret under
// priv, and returns the resulting StreamState.
func DecryptStart(prefix [StartOverhead]byte, priv *PrivateKey) (*StreamState, error) {
	var r curve163.Point
	r.X.Import(prefix[0 : 4*6])
	r.Y.Import(prefix[4*6 : 8*6])

	if err := validateIntern(&r); err != nil {
		return nil, ErrInvalidPoint
	}

	d := priv.scalar()
	z := r
	curve163.Mult(&z, &d)
	curve163.Double(&z)
	if z.IsZero() {
		return nil, ErrInvalidPoint
	}

	k1, k2 := kdf(&z.X, &r.X, &r.Y)
	return &StreamState{k1: k1, k2: k2, StreamID: uuid.NewRandom()}, nil
}

// DecryptChunk verifies ciphertext's trailing 8-byte MAC under s.k2
// using a constant-time comparison, then CTR-decrypts the leading bytes
// under s.k1. On a MAC mismatch it returns ErrMACMismatch and a nil
// plaintext; callers must discard any earlier chunk output from this
// stream and typically abort it entirely.
func (s *StreamState) DecryptChunk(ciphertext []byte) ([]byte, error) {
	precondition(len(ciphertext) >= ChunkOverhead, "DecryptChunk: ciphertext shorter than ChunkOverhead")

	n := len(ciphertext) - ChunkOverhead
	body := ciphertext[:n]
	tag := ciphertext[n:]

	mac := xtea.CBCMAC(body, s.k2[:])
	if subtle.ConstantTimeCompare(mac[:], tag) != 1 {
		return nil, ErrMACMismatch
	}

	out := make([]byte, n)
	copy(out, body)
	s.ctr = xtea.CTRCryptFrom(out, s.k1[:], s.ctr)
	return out, nil
}
