// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/herczegzsolt/groupsig/ecdsa"
)

// Btcec is secp256k1 on top of the crypto/elliptic style curve exposed by
// github.com/btcsuite/btcd/btcec.
type Btcec struct {
	curve *btcec.KoblitzCurve
}

var _ ecdsa.Group = (*Btcec)(nil)

// NewBtcec returns the btcec backed group.
func NewBtcec() *Btcec {
	return &Btcec{curve: btcec.S256()}
}

// Order returns the order of the generator.
func (b *Btcec) Order() *big.Int {
	return new(big.Int).Set(b.curve.Params().N)
}

// Name returns "secp256k1-btcec".
func (b *Btcec) Name() string {
	return "secp256k1-btcec"
}

func (b *Btcec) ScalarBaseMult(k *big.Int) ecdsa.Point {
	m := b.reduce(k)
	if m.Sign() == 0 {
		return ecdsa.Infinity()
	}
	return point(b.curve.ScalarBaseMult(m.Bytes()))
}

func (b *Btcec) ScalarMult(p ecdsa.Point, k *big.Int) ecdsa.Point {
	m := b.reduce(k)
	if m.Sign() == 0 || p.IsInfinity() {
		return ecdsa.Infinity()
	}
	return point(b.curve.ScalarMult(p.X, p.Y, m.Bytes()))
}

func (b *Btcec) Add(p1, p2 ecdsa.Point) ecdsa.Point {
	switch {
	case p1.IsInfinity():
		return copyPoint(p2)
	case p2.IsInfinity():
		return copyPoint(p1)
	case p1.X.Cmp(p2.X) == 0 && p1.Y.Cmp(p2.Y) != 0:
		// p2 = -p1
		return ecdsa.Infinity()
	}
	return point(b.curve.Add(p1.X, p1.Y, p2.X, p2.Y))
}

// IsOnCurve reports whether p is a finite point of the curve.
func (b *Btcec) IsOnCurve(p ecdsa.Point) bool {
	if p.X == nil || p.Y == nil || p.IsInfinity() || p.X.Sign() < 0 || p.Y.Sign() < 0 {
		return false
	}
	P := b.curve.Params().P
	if p.X.Cmp(P) >= 0 || p.Y.Cmp(P) >= 0 {
		return false
	}
	return b.curve.IsOnCurve(p.X, p.Y)
}

func (b *Btcec) reduce(k *big.Int) *big.Int {
	return new(big.Int).Mod(k, b.curve.Params().N)
}

func point(x, y *big.Int) ecdsa.Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return ecdsa.Infinity()
	}
	return ecdsa.Point{X: x, Y: y}
}
