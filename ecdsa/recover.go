// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecdsa

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/herczegzsolt/groupsig/arith"
)

// ErrUnrecoverable is returned when two signatures do not determine the
// private key for the assumed nonce relation.
var ErrUnrecoverable = errors.New("ecdsa: private key cannot be recovered")

// SignedDigest is a signature together with the digest it signs.
type SignedDigest struct {
	Z   *big.Int
	Sig *Signature
}

// RecoverAffineNonceKey recovers the private key behind two signatures whose
// nonces satisfy k2 = a*k1 + b in a group of order n:
//
//	priv = (a*s2*z1 - s1*z2 + b*s1*s2) / (r2*s1 - a*r1*s2) mod n
//
// It fails with ErrUnrecoverable when the denominator vanishes, which is
// the case for instance when both signatures are identical.
func RecoverAffineNonceKey(n *big.Int, m1, m2 SignedDigest, a, b *big.Int) (*big.Int, error) {
	if m1.Z == nil || m2.Z == nil || !complete(m1.Sig) || !complete(m2.Sig) {
		return nil, errors.Wrap(ErrUnrecoverable, "missing digest or signature")
	}
	r1, s1, z1 := m1.Sig.R, m1.Sig.S, m1.Z
	r2, s2, z2 := m2.Sig.R, m2.Sig.S, m2.Z

	num := arith.ModMul(arith.ModMul(a, s2, n), z1, n)
	num = arith.ModSub(num, arith.ModMul(s1, z2, n), n)
	num = arith.ModAdd(num, arith.ModMul(arith.ModMul(b, s1, n), s2, n), n)

	den := arith.ModSub(arith.ModMul(r2, s1, n), arith.ModMul(arith.ModMul(a, r1, n), s2, n), n)

	priv, err := arith.ModDiv(num, den, n)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "solving for the private key"), ErrUnrecoverable)
	}
	return priv, nil
}

// RecoverReusedNonceKey recovers the private key from two signatures of
// different messages made with the same nonce. Such signatures share r.
func (e *ECDSA) RecoverReusedNonceKey(msg1 []byte, sig1 *Signature, msg2 []byte, sig2 *Signature) (*big.Int, error) {
	if !complete(sig1) || !complete(sig2) {
		return nil, errors.Wrap(ErrUnrecoverable, "missing signature")
	}
	if sig1.R.Cmp(sig2.R) != 0 {
		return nil, errors.Wrap(ErrUnrecoverable, "signatures do not share r")
	}
	return RecoverAffineNonceKey(e.n,
		SignedDigest{Z: e.Hash(msg1), Sig: sig1},
		SignedDigest{Z: e.Hash(msg2), Sig: sig2},
		big.NewInt(1), new(big.Int))
}

func complete(sig *Signature) bool {
	return sig != nil && sig.R != nil && sig.S != nil
}
