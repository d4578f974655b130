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

// Encrypt produces a single self-contained envelope: the StartOverhead-byte
// ephemeral point prefix followed by one EncryptChunk'd ciphertext
// covering all of plaintext.
func Encrypt(rng RandReader, pub *PublicKey, plaintext []byte) ([]byte, error) {
	state, prefix, err := EncryptStart(rng, pub)
	if err != nil {
		return nil, err
	}
	chunk := state.EncryptChunk(plaintext)

	out := make([]byte, 0, len(prefix)+len(chunk))
	out = append(out, prefix[:]...)
	out = append(out, chunk...)
	return out, nil
}

// Decrypt opens an envelope produced by Encrypt. The MAC is verified
// before any plaintext is copied out, so a caller that discards the
// error never observes partial or tampered plaintext.
func Decrypt(priv *PrivateKey, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < Overhead {
		return nil, ErrShortMessage
	}

	var prefix [StartOverhead]byte
	copy(prefix[:], ciphertext[:StartOverhead])

	state, err := DecryptStart(prefix, priv)
	if err != nil {
		return nil, err
	}
	return state.DecryptChunk(ciphertext[StartOverhead:])
}
