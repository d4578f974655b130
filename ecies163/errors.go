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

import "fmt"

var (
	// ErrInvalidPoint covers every point-validity rejection: a public
	// key that fails validation, an ephemeral point from a stream
	// prefix that is off-curve, the identity, or over-size, or a
	// shared secret that collapses to the identity after the cofactor
	// multiplication.
	ErrInvalidPoint = fmt.Errorf("ecies163: invalid point")

	// ErrMACMismatch is returned when a chunk's trailing MAC does not
	// match the MAC recomputed over its ciphertext.
	ErrMACMismatch = fmt.Errorf("ecies163: MAC mismatch")

	// ErrShortMessage is returned by the one-shot Decrypt when the
	// input is too short to contain a stream prefix and a chunk MAC.
	ErrShortMessage = fmt.Errorf("ecies163: message too short")
)

// precondition panics to signal a programmer error: a caller-supplied
// buffer violated a documented size precondition. This class of error
// is not recoverable and propagates as a crash rather than a value;
// callers fix the call site, they don't catch this.
func precondition(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("ecies163: "+format, args...))
	}
}
