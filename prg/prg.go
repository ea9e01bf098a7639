//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package prg implements a deterministic pseudo-random generator for
// decimal operands. The generator expands a seed into a ChaCha20 key
// stream so that the same seed always produces the same operands.
package prg

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// Reader implements a seeded pseudo-random byte stream.
type Reader struct {
	cipher *chacha20.Cipher
	buf    [64]byte
	ofs    int
}

// NewReader creates a new reader for the seed.
func NewReader(seed uint64) (*Reader, error) {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte

	binary.BigEndian.PutUint64(key[:], seed)
	copy(key[8:], "bigint operand prg")

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, err
	}
	r := &Reader{
		cipher: c,
	}
	r.ofs = len(r.buf)
	return r, nil
}

// Read implements io.Reader.Read. The function fills p with key
// stream bytes and never fails.
func (r *Reader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Byte returns the next key stream byte.
func (r *Reader) Byte() byte {
	if r.ofs >= len(r.buf) {
		r.Read(r.buf[:])
		r.ofs = 0
	}
	b := r.buf[r.ofs]
	r.ofs++
	return b
}

// Intn returns a uniform random value in [0, n). The argument n must
// be in the range [1, 256].
func (r *Reader) Intn(n int) int {
	if n <= 0 || n > 256 {
		panic(fmt.Sprintf("prg.Intn: invalid argument %d", n))
	}
	limit := 256 - 256%n
	for {
		b := int(r.Byte())
		if b < limit {
			return b % n
		}
	}
}

// Digits returns a random decimal number with n digits. The result
// has no leading zeros; n less than 1 returns "0".
func (r *Reader) Digits(n int) string {
	if n < 1 {
		return "0"
	}
	result := make([]byte, n)
	result[0] = byte('1' + r.Intn(9))
	for i := 1; i < n; i++ {
		result[i] = byte('0' + r.Intn(10))
	}
	return string(result)
}

// Signed returns a random decimal number with n digits and a random
// sign.
func (r *Reader) Signed(n int) string {
	d := r.Digits(n)
	if d != "0" && r.Intn(2) == 1 {
		return "-" + d
	}
	return d
}
