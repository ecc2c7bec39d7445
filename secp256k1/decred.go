// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package secp256k1 provides ecdsa.Group implementations of the secp256k1
// curve backed by optimized third party field arithmetic. They are drop-in
// replacements for ecdsa.P256k1.
package secp256k1

import (
	"math/big"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/herczegzsolt/groupsig/ecdsa"
)

var curveOrder = new(big.Int).Set(dcrsecp.S256().Params().N)

// Decred is secp256k1 on top of the Jacobian point arithmetic of
// github.com/decred/dcrd/dcrec/secp256k1.
type Decred struct{}

var _ ecdsa.Group = Decred{}

// Order returns the order of the generator.
func (Decred) Order() *big.Int {
	return new(big.Int).Set(curveOrder)
}

// Name returns "secp256k1-decred".
func (Decred) Name() string {
	return "secp256k1-decred"
}

func (Decred) ScalarBaseMult(k *big.Int) ecdsa.Point {
	var s dcrsecp.ModNScalar
	scalarFromInt(k, &s)
	var r dcrsecp.JacobianPoint
	dcrsecp.ScalarBaseMultNonConst(&s, &r)
	return pointFromJacobian(&r)
}

func (Decred) ScalarMult(p ecdsa.Point, k *big.Int) ecdsa.Point {
	var j dcrsecp.JacobianPoint
	if !jacobianFromPoint(p, &j) {
		return ecdsa.Infinity()
	}
	var s dcrsecp.ModNScalar
	scalarFromInt(k, &s)
	var r dcrsecp.JacobianPoint
	dcrsecp.ScalarMultNonConst(&s, &j, &r)
	return pointFromJacobian(&r)
}

func (Decred) Add(p1, p2 ecdsa.Point) ecdsa.Point {
	var a, b dcrsecp.JacobianPoint
	if !jacobianFromPoint(p1, &a) {
		return copyPoint(p2)
	}
	if !jacobianFromPoint(p2, &b) {
		return copyPoint(p1)
	}
	var r dcrsecp.JacobianPoint
	dcrsecp.AddNonConst(&a, &b, &r)
	return pointFromJacobian(&r)
}

// IsOnCurve reports whether p satisfies y² = x³ + 7 with both coordinates
// reduced modulo the field prime.
func (Decred) IsOnCurve(p ecdsa.Point) bool {
	if p.IsInfinity() {
		return false
	}
	var x, y dcrsecp.FieldVal
	if !fieldFromInt(p.X, &x) || !fieldFromInt(p.Y, &y) {
		return false
	}
	var lhs, rhs dcrsecp.FieldVal
	lhs.SquareVal(&y).Normalize()
	rhs.SquareVal(&x).Mul(&x).AddInt(7).Normalize()
	return lhs.Equals(&rhs)
}

// scalarFromInt sets s to k mod n.
func scalarFromInt(k *big.Int, s *dcrsecp.ModNScalar) {
	m := new(big.Int).Mod(k, curveOrder)
	s.SetByteSlice(m.Bytes())
}

// fieldFromInt sets f to v and reports whether v is a canonical field
// element.
func fieldFromInt(v *big.Int, f *dcrsecp.FieldVal) bool {
	if v == nil || v.Sign() < 0 || v.BitLen() > 256 {
		return false
	}
	overflow := f.SetByteSlice(v.Bytes())
	f.Normalize()
	return !overflow
}

// jacobianFromPoint converts an affine point. It returns false for the point
// at infinity and for coordinates that are not field elements.
func jacobianFromPoint(p ecdsa.Point, j *dcrsecp.JacobianPoint) bool {
	if p.IsInfinity() {
		return false
	}
	if !fieldFromInt(p.X, &j.X) || !fieldFromInt(p.Y, &j.Y) {
		return false
	}
	j.Z.SetInt(1)
	return true
}

func pointFromJacobian(j *dcrsecp.JacobianPoint) ecdsa.Point {
	if (j.X.IsZero() && j.Y.IsZero()) || j.Z.IsZero() {
		return ecdsa.Infinity()
	}
	j.ToAffine()
	return ecdsa.Point{
		X: new(big.Int).SetBytes(j.X.Bytes()[:]),
		Y: new(big.Int).SetBytes(j.Y.Bytes()[:]),
	}
}

func copyPoint(p ecdsa.Point) ecdsa.Point {
	if p.IsInfinity() {
		return ecdsa.Infinity()
	}
	return ecdsa.Point{X: new(big.Int).Set(p.X), Y: new(big.Int).Set(p.Y)}
}
