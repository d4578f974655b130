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
	"io"
	"strings"

	"github.com/core-coin/go-ecies163/ecies163"
	"github.com/peterh/liner"
	"gopkg.in/urfave/cli.v1"
)

const consoleHistoryFile = ".ecies-tool-history"

var consoleCommand = cli.Command{
	Name:  "console",
	Usage: "interactive REPL: keygen / encrypt / decrypt / validate / quit",
	Action: func(c *cli.Context) error {
		return runConsole()
	},
}

func runConsole() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Println("ecies-tool console. Commands: keygen, encrypt <x:y> <hex>, decrypt <priv> <hex>, validate <x:y>, quit")

	for {
		input, err := line.Prompt("ecies> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.Fields(input)[0] == "quit" || strings.Fields(input)[0] == "exit" {
			return nil
		}
		if err := dispatchConsoleLine(input); err != nil {
			fmt.Println("error:", err)
		}
	}
}

func dispatchConsoleLine(input string) error {
	fields := strings.Fields(input)
	switch fields[0] {
	case "keygen":
		priv, pub, err := ecies163.GenerateKeys(rand.Reader)
		if err != nil {
			return err
		}
		fmt.Printf("public:  %s:%s\n", hex.EncodeToString(pub.X[:]), hex.EncodeToString(pub.Y[:]))
		fmt.Printf("private: %s\n", hex.EncodeToString(priv.K[:]))
		return nil
	case "validate":
		if len(fields) != 2 {
			return fmt.Errorf("usage: validate <x:y>")
		}
		pub, err := parsePublicKeyArg(fields[1])
		if err != nil {
			return err
		}
		if err := ecies163.ValidatePublicKey(pub); err != nil {
			return err
		}
		fmt.Println("valid")
		return nil
	case "encrypt":
		if len(fields) != 3 {
			return fmt.Errorf("usage: encrypt <x:y> <plaintext-hex>")
		}
		pub, err := parsePublicKeyArg(fields[1])
		if err != nil {
			return err
		}
		plaintext, err := hex.DecodeString(fields[2])
		if err != nil {
			return fmt.Errorf("plaintext: %w", err)
		}
		ciphertext, err := ecies163.Encrypt(rand.Reader, pub, plaintext)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(ciphertext))
		return nil
	case "decrypt":
		if len(fields) != 3 {
			return fmt.Errorf("usage: decrypt <priv> <ciphertext-hex>")
		}
		priv, err := parsePrivateKeyArg(fields[1])
		if err != nil {
			return err
		}
		ciphertext, err := hex.DecodeString(fields[2])
		if err != nil {
			return fmt.Errorf("ciphertext: %w", err)
		}
		plaintext, err := ecies163.Decrypt(priv, ciphertext)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(plaintext))
		return nil
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}
