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

// Command ecies-tool is a CLI around the ecies163 package: key
// generation and keystore management, one-shot and streaming
// encrypt/decrypt over stdin/stdout, public-key validation, a built-in
// demo round-trip, an interactive console, and a small benchmark
// harness.
package main

import (
	"fmt"
	"os"

	"github.com/core-coin/go-ecies163/log"
	"gopkg.in/urfave/cli.v1"
)

var cfg toolConfig

func main() {
	app := cli.NewApp()
	app.Name = "ecies-tool"
	app.Usage = "generate keys, and encrypt/decrypt with ECIES over the B-163 curve"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Usage: "load defaults from a TOML config file"},
		cli.StringFlag{Name: "keystore-dir", Usage: "directory for keygen --keystore output"},
		cli.BoolFlag{Name: "verbose, v", Usage: "enable debug logging"},
	}

	app.Before = func(c *cli.Context) error {
		loaded, err := loadConfig(c.GlobalString("config"))
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("loading config: %v", err), 1)
		}
		cfg = loaded
		if c.GlobalString("keystore-dir") != "" {
			cfg.KeystoreDir = c.GlobalString("keystore-dir")
		}
		switch cfg.Verbosity {
		case "error":
			log.Root.SetLevel(log.LvlError)
		case "warn":
			log.Root.SetLevel(log.LvlWarn)
		case "debug":
			log.Root.SetLevel(log.LvlDebug)
		}
		if c.GlobalBool("verbose") {
			log.Root.SetLevel(log.LvlDebug)
		}
		return nil
	}

	app.Commands = []cli.Command{
		keygenCommand,
		encryptCommand,
		decryptCommand,
		encryptStreamCommand,
		decryptStreamCommand,
		validateCommand,
		demoCommand,
		consoleCommand,
		benchCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Error("ecies-tool failed", "err", err)
		os.Exit(1)
	}
}
