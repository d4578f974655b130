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
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/core-coin/go-ecies163/ecies163"
	"github.com/fjl/memsize"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/sync/errgroup"
	"gopkg.in/urfave/cli.v1"
)

var benchCommand = cli.Command{
	Name:  "bench",
	Usage: "time keygen/encrypt/decrypt and report a memory footprint",
	Flags: []cli.Flag{
		cli.IntFlag{Name: "n", Value: 50, Usage: "iterations per operation"},
		cli.IntFlag{Name: "parallel", Value: 1, Usage: "number of goroutines to fan the iterations across"},
	},
	Action: func(c *cli.Context) error {
		n := c.Int("n")
		par := c.Int("parallel")
		if par < 1 {
			par = 1
		}

		rows := [][]string{
			{"keygen", fmtDuration(benchParallel(par, n, benchKeygen))},
		}

		priv, pub, err := ecies163.GenerateKeys(rand.Reader)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		plaintext := make([]byte, 1024)

		// Validation is memoized per key, so each iteration must see a
		// distinct key or the bench would mostly time a cache hit.
		pubs := make([]*ecies163.PublicKey, n)
		for i := range pubs {
			if _, pubs[i], err = ecies163.GenerateKeys(rand.Reader); err != nil {
				return cli.NewExitError(err.Error(), 1)
			}
		}
		var idx int64
		rows = append(rows, []string{"validate", fmtDuration(benchParallel(par, n, func() error {
			i := atomic.AddInt64(&idx, 1) - 1
			return ecies163.ValidatePublicKey(pubs[int(i)%len(pubs)])
		}))})

		rows = append(rows, []string{"encrypt", fmtDuration(benchParallel(par, n, func() error {
			_, err := ecies163.Encrypt(rand.Reader, pub, plaintext)
			return err
		}))})

		ciphertext, err := ecies163.Encrypt(rand.Reader, pub, plaintext)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		rows = append(rows, []string{"decrypt", fmtDuration(benchParallel(par, n, func() error {
			_, err := ecies163.Decrypt(priv, ciphertext)
			return err
		}))})

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"operation", "avg time / op (n=" + strconv.Itoa(n) + ", parallel=" + strconv.Itoa(par) + ")"})
		table.AppendBulk(rows)
		table.Render()

		report := memsize.Scan(pub)
		fmt.Printf("public key footprint: %s\n", report.Report())

		state, _, err := ecies163.EncryptStart(rand.Reader, pub)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		fmt.Printf("stream state footprint: %s\n", memsize.Scan(state).Report())
		return nil
	},
}

func benchKeygen() error {
	_, _, err := ecies163.GenerateKeys(rand.Reader)
	return err
}

// benchParallel runs op n/par times (at least once) on each of par
// goroutines (via golang.org/x/sync/errgroup) and returns the average
// wall-clock time per call.
func benchParallel(par, n int, op func() error) time.Duration {
	start := time.Now()

	g, _ := errgroup.WithContext(context.Background())
	per := n / par
	if per == 0 {
		per = 1
	}
	for i := 0; i < par; i++ {
		g.Go(func() error {
			for j := 0; j < per; j++ {
				if err := op(); err != nil {
					return err
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	elapsed := time.Since(start)
	total := per * par
	if total == 0 {
		total = 1
	}
	return elapsed / time.Duration(total)
}

func fmtDuration(d time.Duration) string {
	return d.String()
}
