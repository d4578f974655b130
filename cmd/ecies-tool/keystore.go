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
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/cespare/cp"
	"github.com/core-coin/go-ecies163/ecies163"
	"github.com/core-coin/go-ecies163/xtea"
	"golang.org/x/crypto/ssh/terminal"
)

// promptPassphrase reads a passphrase from the controlling terminal
// without echoing it, confirming it once for a new keystore entry.
func promptPassphrase(confirm bool) ([]byte, error) {
	fmt.Fprint(os.Stderr, "Passphrase: ")
	pass, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	if !confirm {
		return pass, nil
	}

	fmt.Fprint(os.Stderr, "Confirm passphrase: ")
	pass2, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	if string(pass) != string(pass2) {
		return nil, fmt.Errorf("passphrases do not match")
	}
	return pass, nil
}

// passphraseKey derives a 16-byte XTEA key from a passphrase using the
// same Compress primitive the envelope KDF builds on, so the keystore
// shares its cryptographic base with the rest of the package instead of
// introducing a second key-derivation scheme.
//
// Compress only accepts whole 16-byte blocks, so the passphrase is
// length-prefixed and zero-padded out to a block boundary first — both
// to satisfy that precondition and so two passphrases that differ only
// in trailing padding bytes (e.g. "abc" vs "abc\x00") don't derive the
// same key.
func passphraseKey(pass []byte) [16]byte {
	blockLen := ((4 + len(pass) + 15) / 16) * 16
	padded := make([]byte, blockLen)
	binary.BigEndian.PutUint32(padded, uint32(len(pass)))
	copy(padded[4:], pass)
	c1 := xtea.Compress(padded)

	// c1 is 8 bytes; pad it out to a full 16-byte block of its own
	// before feeding it back through Compress for the second half.
	second := make([]byte, blockLen+16)
	copy(second, padded)
	copy(second[blockLen:], c1[:])
	c2 := xtea.Compress(second)

	var buf [16]byte
	copy(buf[0:8], c1[:])
	copy(buf[8:16], c2[:])
	return buf
}

// writeKeystore encrypts priv's wire bytes under a passphrase-derived
// XTEA-CTR key and writes the result, with its CBC-MAC and the public
// key, as a small JSON file of hex strings named after the public key, via a staged write-then-rename (github.com/cespare/cp)
// so a crash never leaves a half-written keystore entry.
func writeKeystore(dir string, priv *ecies163.PrivateKey, pub *ecies163.PublicKey, pass []byte) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}

	key := passphraseKey(pass)
	ciphertext := append([]byte{}, priv.K[:]...)
	xtea.CTRCrypt(ciphertext, key[:])
	mac := xtea.CBCMAC(ciphertext, key[:])

	name := fmt.Sprintf("%s.json", hex.EncodeToString(pub.X[:8]))
	path := filepath.Join(dir, name)

	tmp, err := ioutil.TempFile(dir, "keystore-*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	contents := fmt.Sprintf("{\n  \"publicKey\": %q,\n  \"ciphertext\": %q,\n  \"mac\": %q\n}\n",
		hex.EncodeToString(pub.X[:])+":"+hex.EncodeToString(pub.Y[:]),
		hex.EncodeToString(ciphertext),
		hex.EncodeToString(mac[:]))

	if _, err := tmp.WriteString(contents); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	if err := cp.CopyFile(path, tmp.Name()); err != nil {
		return "", err
	}
	return path, nil
}
