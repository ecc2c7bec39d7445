// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"
	"math/big"
)

// Point is an affine point of a Group. The point at infinity is represented
// by (0, 0), which does not lie on any curve handled here. The zero Point
// value is therefore the point at infinity as well.
type Point struct {
	X, Y *big.Int
}

// Infinity returns the identity element of every Group.
func Infinity() Point {
	return Point{X: new(big.Int), Y: new(big.Int)}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return (p.X == nil || p.X.Sign() == 0) && (p.Y == nil || p.Y.Sign() == 0)
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	px, py := p.coords()
	qx, qy := q.coords()
	return px.Cmp(qx) == 0 && py.Cmp(qy) == 0
}

func (p Point) String() string {
	if p.IsInfinity() {
		return "(∞)"
	}
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// coords returns the coordinates of p with nil replaced by zero.
func (p Point) coords() (x, y *big.Int) {
	x, y = p.X, p.Y
	if x == nil {
		x = new(big.Int)
	}
	if y == nil {
		y = new(big.Int)
	}
	return x, y
}

// Group is a cyclic group of points with a distinguished generator G of
// prime order. It is the only capability the signature scheme needs from an
// elliptic curve.
//
// Implementations must be safe for concurrent use and must not retain or
// modify their arguments. Scalars may be any integer; they are interpreted
// modulo Order.
type Group interface {
	// Order returns n, the order of the generator.
	Order() *big.Int

	// ScalarBaseMult returns k*G.
	ScalarBaseMult(k *big.Int) Point

	// ScalarMult returns k*p. The point p must belong to the group.
	ScalarMult(p Point, k *big.Int) Point

	// Add returns p1 + p2.
	Add(p1, p2 Point) Point
}
