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

package main

import (
	"bytes"
	"crypto/rand"
	"fmt"

	"github.com/core-coin/go-ecies163/ecies163"
	"gopkg.in/urfave/cli.v1"
)

// demoPublicKey, demoPrivateKey and demoPlaintext are a fixed,
// known-good key pair and message, so this command doubles as an
// end-to-end smoke test of the whole envelope.
var (
	demoPublicKey = ecies163.PublicKey{
		X: [21]byte{0x01, 0xc5, 0x6d, 0x30, 0x2c, 0xf6, 0x42, 0xa8, 0xe1, 0xba, 0x4b, 0x48, 0xcc, 0x4f, 0xbe, 0x28, 0x45, 0xee, 0x32, 0xdc, 0xe7},
		Y: [21]byte{0x04, 0x5f, 0x46, 0xeb, 0x30, 0x3e, 0xdf, 0x2e, 0x62, 0xf7, 0x4b, 0xd6, 0x83, 0x68, 0xd9, 0x79, 0xe2, 0x65, 0xee, 0x3c, 0x03},
	}
	demoPrivateKey = ecies163.PrivateKey{
		K: [21]byte{0x00, 0xe1, 0x0e, 0x78, 0x70, 0x36, 0x94, 0x1e, 0x6c, 0x78, 0xda, 0xf8, 0xa0, 0xe8, 0xe1, 0xdb, 0xfa, 0xc6, 0x8e, 0x26, 0xd2},
	}
	demoPlaintext = []byte("This secret demo message will be ECIES encrypted\x00")
)

var demoCommand = cli.Command{
	Name:  "demo",
	Usage: "encrypt and decrypt a fixed demo message with a built-in key pair",
	Action: func(c *cli.Context) error {
		if err := ecies163.ValidatePublicKey(&demoPublicKey); err != nil {
			return cli.NewExitError(fmt.Sprintf("demo public key failed validation: %v", err), 1)
		}

		ciphertext, err := ecies163.Encrypt(rand.Reader, &demoPublicKey, demoPlaintext)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		fmt.Printf("ciphertext (%d bytes)\n", len(ciphertext))

		plaintext, err := ecies163.Decrypt(&demoPrivateKey, ciphertext)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		if !bytes.Equal(plaintext, demoPlaintext) {
			return cli.NewExitError("round-trip mismatch", 1)
		}
		fmt.Printf("recovered: %q\n", plaintext)
		return nil
	},
}
