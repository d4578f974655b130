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

package ecies163_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/core-coin/go-ecies163/ecies163"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestEcies163(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ecies163 streaming suite")
}

var _ = Describe("streaming envelope", func() {
	var priv *ecies163.PrivateKey
	var pub *ecies163.PublicKey

	BeforeEach(func() {
		var err error
		priv, pub, err = ecies163.GenerateKeys(rand.Reader)
		Expect(err).NotTo(HaveOccurred())
	})

	It("reassembles a message split across several unevenly sized chunks", func() {
		message := bytes.Repeat([]byte("streaming is just one-shot in pieces. "), 50)

		chunks := [][]byte{
			message[:10],
			message[10:100],
			message[100:],
		}

		encState, prefix, err := ecies163.EncryptStart(rand.Reader, pub)
		Expect(err).NotTo(HaveOccurred())

		var ciphertext []byte
		ciphertext = append(ciphertext, prefix[:]...)
		for _, c := range chunks {
			ciphertext = append(ciphertext, encState.EncryptChunk(c)...)
		}

		decState, err := ecies163.DecryptStart(prefix, priv)
		Expect(err).NotTo(HaveOccurred())

		var reassembled []byte
		offset := len(prefix)
		for _, c := range chunks {
			n := len(c) + ecies163.ChunkOverhead
			plain, err := decState.DecryptChunk(ciphertext[offset : offset+n])
			Expect(err).NotTo(HaveOccurred())
			reassembled = append(reassembled, plain...)
			offset += n
		}

		Expect(reassembled).To(Equal(message))
	})

	It("rejects a chunk whose MAC was computed under a different stream's keys", func() {
		message := []byte("chunk from the wrong stream")

		_, prefix1, err := ecies163.EncryptStart(rand.Reader, pub)
		Expect(err).NotTo(HaveOccurred())
		_, pub2, err := ecies163.GenerateKeys(rand.Reader)
		Expect(err).NotTo(HaveOccurred())
		encState2, _, err := ecies163.EncryptStart(rand.Reader, pub2)
		Expect(err).NotTo(HaveOccurred())

		foreignChunk := encState2.EncryptChunk(message)

		decState, err := ecies163.DecryptStart(prefix1, priv)
		Expect(err).NotTo(HaveOccurred())

		_, err = decState.DecryptChunk(foreignChunk)
		Expect(err).To(Equal(ecies163.ErrMACMismatch))
	})

	It("rejects a stream prefix carrying the identity point", func() {
		var zeroPrefix [ecies163.StartOverhead]byte
		_, err := ecies163.DecryptStart(zeroPrefix, priv)
		Expect(err).To(Equal(ecies163.ErrInvalidPoint))
	})
})
