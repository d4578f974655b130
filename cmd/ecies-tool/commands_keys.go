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
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/core-coin/go-ecies163/ecies163"
	"github.com/core-coin/go-ecies163/log"
	"gopkg.in/urfave/cli.v1"
)

var keygenCommand = cli.Command{
	Name:  "keygen",
	Usage: "generate a public/private key pair",
	Flags: []cli.Flag{
		cli.BoolFlag{Name: "keystore", Usage: "save the private key passphrase-protected under --keystore-dir"},
	},
	Action: func(c *cli.Context) error {
		priv, pub, err := ecies163.GenerateKeys(rand.Reader)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}

		fmt.Printf("%s:%s\n", hex.EncodeToString(pub.X[:]), hex.EncodeToString(pub.Y[:]))

		if !c.Bool("keystore") {
			fmt.Println(hex.EncodeToString(priv.K[:]))
			return nil
		}

		pass, err := promptPassphrase(true)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		path, err := writeKeystore(cfg.KeystoreDir, priv, pub, pass)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		log.Info("wrote keystore entry", "path", path)
		return nil
	},
}

var validateCommand = cli.Command{
	Name:      "validate",
	Usage:     "check that a public key is well-formed and on-curve",
	ArgsUsage: "<x-hex>:<y-hex>",
	Action: func(c *cli.Context) error {
		pub, err := parsePublicKeyArg(c.Args().First())
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		if err := ecies163.ValidatePublicKey(pub); err != nil {
			fmt.Println("invalid:", err)
			return cli.NewExitError("", 1)
		}
		fmt.Println("valid")
		return nil
	},
}
