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

// hexio.go holds the hex encode/decode helpers for key material on the
// command line, built on encoding/hex. A public key argument is the two
// coordinates as hex, joined by a single colon.
package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/core-coin/go-ecies163/bitvec"
	"github.com/core-coin/go-ecies163/ecies163"
)

func decodeKeyHex(s string) ([bitvec.KeySize]byte, error) {
	var out [bitvec.KeySize]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, err
	}
	if len(b) != bitvec.KeySize {
		return out, fmt.Errorf("expected %d bytes, got %d", bitvec.KeySize, len(b))
	}
	copy(out[:], b)
	return out, nil
}

func parsePublicKeyArg(arg string) (*ecies163.PublicKey, error) {
	parts := strings.SplitN(arg, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected <x-hex>:<y-hex>")
	}
	x, err := decodeKeyHex(parts[0])
	if err != nil {
		return nil, fmt.Errorf("public key x: %w", err)
	}
	y, err := decodeKeyHex(parts[1])
	if err != nil {
		return nil, fmt.Errorf("public key y: %w", err)
	}
	return &ecies163.PublicKey{X: x, Y: y}, nil
}

func parsePrivateKeyArg(arg string) (*ecies163.PrivateKey, error) {
	k, err := decodeKeyHex(arg)
	if err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}
	return &ecies163.PrivateKey{K: k}, nil
}
