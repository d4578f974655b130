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

import (
	lru "github.com/hashicorp/golang-lru"
)

// validateCacheSize bounds memory use for peers that validate the same
// handful of keys repeatedly (a long-lived server talking to a stable
// set of clients, say); it is not meant to hold a node's entire peer set.
const validateCacheSize = 256

var validateCache, _ = lru.New(validateCacheSize)

type pubKeyCacheKey [2 * 21]byte

func cacheKey(pub *PublicKey) pubKeyCacheKey {
	var k pubKeyCacheKey
	copy(k[:21], pub.X[:])
	copy(k[21:], pub.Y[:])
	return k
}

// validateCacheGet reports whether pub's validation result has already
// been computed, returning that result if so.
func validateCacheGet(pub *PublicKey) (error, bool) {
	v, ok := validateCache.Get(cacheKey(pub))
	if !ok {
		return nil, false
	}
	if v == nil {
		return nil, true
	}
	return v.(error), true
}

// validateCachePut records pub's validation result, evicting the least
// recently used entry if the cache is full.
func validateCachePut(pub *PublicKey, err error) {
	validateCache.Add(cacheKey(pub), err)
}
