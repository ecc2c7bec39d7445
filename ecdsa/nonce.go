// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecdsa

import (
	"crypto/hmac"
	"hash"
	"io"
	"math/big"

	"github.com/cockroachdb/errors"
	sha256simd "github.com/minio/sha256-simd"
)

// ErrNoncesExhausted is returned by FixedNonces once every nonce was used.
var ErrNoncesExhausted = errors.New("ecdsa: no nonces left")

// A NonceSource supplies the per-signature secret k.
//
// Sign calls Nonce with attempt 0 and, whenever the resulting signature is
// degenerate, again with increasing attempt numbers. A source must return a
// different nonce for every attempt, and must never return the same nonce
// for two different digests signed with the same private key: doing so
// reveals the private key (see RecoverReusedNonceKey).
type NonceSource interface {
	Nonce(priv, digest, n *big.Int, attempt int) (*big.Int, error)
}

type randomNonces struct {
	rand io.Reader
}

// RandomNonces returns a NonceSource drawing uniformly random nonces in
// [1, n) from rand, which should be a CSPRNG such as crypto/rand.Reader.
func RandomNonces(rand io.Reader) NonceSource {
	return randomNonces{rand: rand}
}

func (r randomNonces) Nonce(_, _, n *big.Int, _ int) (*big.Int, error) {
	return randFieldElement(n, r.rand)
}

// randFieldElement returns a random element of [1, n) using the procedure
// given in FIPS 186-4, Appendix B.5.2.
func randFieldElement(n *big.Int, rand io.Reader) (k *big.Int, err error) {
	b := make([]byte, (n.BitLen()+7)/8)
	for {
		if _, err = io.ReadFull(rand, b); err != nil {
			return nil, errors.Wrap(err, "reading nonce entropy")
		}
		if excess := len(b)*8 - n.BitLen(); excess > 0 {
			b[0] >>= excess
		}
		k = new(big.Int).SetBytes(b)
		if k.Sign() != 0 && k.Cmp(n) < 0 {
			return k, nil
		}
	}
}

type rfc6979 struct {
	newHash func() hash.Hash
}

// RFC6979 returns a NonceSource deriving nonces deterministically from the
// private key and the digest with the HMAC_DRBG of RFC 6979, Section 3.2,
// instantiated with newHash. Retry attempt i yields the i-th acceptable
// candidate of the generator.
//
// The digest is used as the already reduced bits2octets(h1) input, which
// matches the RFC exactly when it was produced by SHA256 or SHA3_256.
func RFC6979(newHash func() hash.Hash) NonceSource {
	return rfc6979{newHash: newHash}
}

// RFC6979SHA256 is RFC6979 instantiated with SHA-256.
var RFC6979SHA256 = RFC6979(sha256simd.New)

func (d rfc6979) Nonce(priv, digest, n *big.Int, attempt int) (*big.Int, error) {
	qlen := n.BitLen()
	rlen := (qlen + 7) / 8

	x := int2octets(priv, n, rlen)
	h := int2octets(digest, n, rlen)

	size := d.newHash().Size()
	v := make([]byte, size)
	for i := range v {
		v[i] = 0x01
	}
	k := make([]byte, size)

	k = d.mac(k, v, []byte{0x00}, x, h)
	v = d.mac(k, v)
	k = d.mac(k, v, []byte{0x01}, x, h)
	v = d.mac(k, v)

	for {
		var t []byte
		for len(t) < rlen {
			v = d.mac(k, v)
			t = append(t, v...)
		}
		if c := bits2int(t[:rlen], qlen); c.Sign() > 0 && c.Cmp(n) < 0 {
			if attempt == 0 {
				return c, nil
			}
			attempt--
		}
		k = d.mac(k, v, []byte{0x00})
		v = d.mac(k, v)
	}
}

func (d rfc6979) mac(key []byte, data ...[]byte) []byte {
	m := hmac.New(d.newHash, key)
	for _, b := range data {
		m.Write(b)
	}
	return m.Sum(nil)
}

// int2octets encodes v mod n as a big-endian string of rlen bytes.
func int2octets(v, n *big.Int, rlen int) []byte {
	return new(big.Int).Mod(v, n).FillBytes(make([]byte, rlen))
}

// bits2int takes the leftmost qlen bits of b as an integer.
func bits2int(b []byte, qlen int) *big.Int {
	v := new(big.Int).SetBytes(b)
	if excess := len(b)*8 - qlen; excess > 0 {
		v.Rsh(v, uint(excess))
	}
	return v
}

type fixedNonces []*big.Int

// FixedNonces returns a NonceSource that hands out ks in order, one per
// attempt, and fails with ErrNoncesExhausted afterwards. It is meant for
// reproducing known signatures; the nonces are not checked for reuse.
func FixedNonces(ks ...*big.Int) NonceSource {
	return fixedNonces(ks)
}

func (f fixedNonces) Nonce(_, _, _ *big.Int, attempt int) (*big.Int, error) {
	if attempt < 0 || attempt >= len(f) {
		return nil, errors.Wrapf(ErrNoncesExhausted, "attempt %d of %d", attempt+1, len(f))
	}
	return new(big.Int).Set(f[attempt]), nil
}
