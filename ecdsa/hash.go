// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecdsa

import (
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/sha3"
)

// A Hasher maps arbitrary messages to digests in [0, n), where n is the
// order of the signing group. Implementations must be deterministic.
type Hasher interface {
	Digest(msg []byte, n *big.Int) *big.Int
}

// HasherFunc adapts a function to the Hasher interface.
type HasherFunc func(msg []byte, n *big.Int) *big.Int

// Digest calls f(msg, n).
func (f HasherFunc) Digest(msg []byte, n *big.Int) *big.Int {
	return f(msg, n)
}

var (
	// Identity interprets the message as a big-endian integer and reduces
	// it modulo n. It is a placeholder for worked examples and provides
	// neither preimage nor collision resistance.
	Identity Hasher = HasherFunc(identityDigest)

	// SHA256 hashes with SHA-256 and converts the result as described in
	// hashToInt.
	SHA256 Hasher = HasherFunc(sha256Digest)

	// SHA3_256 hashes with SHA3-256 and converts the result as described in
	// hashToInt.
	SHA3_256 Hasher = HasherFunc(sha3Digest)
)

func identityDigest(msg []byte, n *big.Int) *big.Int {
	z := new(big.Int).SetBytes(msg)
	return z.Mod(z, n)
}

func sha256Digest(msg []byte, n *big.Int) *big.Int {
	h := sha256simd.Sum256(msg)
	return hashToInt(h[:], n)
}

func sha3Digest(msg []byte, n *big.Int) *big.Int {
	h := sha3.Sum256(msg)
	return hashToInt(h[:], n)
}

// hashToInt converts a hash value to an integer. Per FIPS 186-4, Section 6.4,
// we use the left-most bits of the hash to match the bit-length of the order of
// the curve. This also performs Step 5 of SEC 1, Version 2.0, Section 4.1.3.
// The result is then reduced modulo n so that digests always lie in [0, n).
func hashToInt(hash []byte, n *big.Int) *big.Int {
	orderBits := n.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(hash) > orderBytes {
		hash = hash[:orderBytes]
	}

	ret := new(big.Int).SetBytes(hash)
	excess := len(hash)*8 - orderBits
	if excess > 0 {
		ret.Rsh(ret, uint(excess))
	}
	return ret.Mod(ret, n)
}

var hashersByName = map[string]Hasher{
	"identity": Identity,
	"sha256":   SHA256,
	"sha3-256": SHA3_256,
}

// HasherByName returns the Hasher registered under name: "identity",
// "sha256" or "sha3-256".
func HasherByName(name string) (Hasher, error) {
	if h, ok := hashersByName[strings.ToLower(name)]; ok {
		return h, nil
	}
	return nil, errors.Newf("ecdsa: unknown hash %q", name)
}
