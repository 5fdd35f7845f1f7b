// Copyright (c) 2026 The cellbench developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cellcipher provides the symmetric stream cipher context
// exercised by the encryption benchmarks.
package cellcipher

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/decred/dcrd/crypto/rand"
)

// KeySize is the symmetric key length in bytes (AES-128).
const KeySize = 16

// Cipher is a symmetric cipher context operating in counter mode.
// The keystream position advances across calls, so a single context
// behaves as one continuous stream regardless of how the plaintext is
// split into individual encrypt calls.
//
// Cipher is not safe for concurrent access.
type Cipher struct {
	stream cipher.Stream
}

// newCipher returns a cipher context for the provided key and initial
// counter block.  Both must be exactly KeySize bytes.
func newCipher(key, iv []byte) (*Cipher, error) {
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("invalid counter block length %d", len(iv))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{stream: cipher.NewCTR(block, iv)}, nil
}

// New returns a cipher context keyed with a freshly generated random
// key and counter block.  Key generation happens here, outside any
// timed region, so callers measure only the encryption itself.
func New() *Cipher {
	var key, iv [KeySize]byte
	rand.Read(key[:])
	rand.Read(iv[:])
	c, err := newCipher(key[:], iv[:])
	if err != nil {
		// Only reachable with a malformed key length, which the fixed
		// size arrays above rule out.
		panic(fmt.Sprintf("cellcipher: %v", err))
	}
	return c
}

// Encrypt encrypts len(src) bytes from src into dst, which must be at
// least as long as src.
func (c *Cipher) Encrypt(dst, src []byte) {
	c.stream.XORKeyStream(dst, src)
}

// EncryptInPlace encrypts the provided buffer in place.
func (c *Cipher) EncryptInPlace(b []byte) {
	c.stream.XORKeyStream(b, b)
}
