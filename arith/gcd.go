// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arith implements the integer arithmetic behind the signature
// scheme: greatest common divisors, Bézout coefficients and operations on
// residues modulo a caller-supplied modulus.
//
// All functions accept and return *big.Int. Arguments are never modified and
// results are always freshly allocated, so values may be shared freely
// between goroutines.
package arith

import "math/big"

// GCD returns the greatest common divisor of a and b using the iterative
// Euclidean algorithm.
//
//	gcd(37, 14)
//	37 = 14(2) + 9
//	14 = 9(1)  + 5
//	9  = 5(1)  + 4
//	5  = 4(1)  + 1
//
// Remainders are truncated (see [big.Int.Rem]), so the sign of the result
// follows the last nonzero remainder. GCD(a, 0) is a and GCD(0, b) is b.
// Callers needing a non-negative divisor must take the absolute value.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)
	for y.Sign() != 0 {
		x.Rem(x, y)
		x, y = y, x
	}
	return x
}

// XGCD returns g = GCD(a, b) along with integers x and y such that
//
//	a*x + b*y == g
//
// The computation keeps the previous and current terms of the remainder
// and coefficient sequences and updates them in place, so no recursion is
// involved regardless of the size of the inputs. Quotients are truncated
// (see [big.Int.Quo]), matching the remainder convention of [GCD].
func XGCD(a, b *big.Int) (g, x, y *big.Int) {
	r, rPrev := new(big.Int).Set(b), new(big.Int).Set(a)
	s, sPrev := big.NewInt(0), big.NewInt(1)
	t, tPrev := big.NewInt(1), big.NewInt(0)

	q, tmp := new(big.Int), new(big.Int)
	for r.Sign() != 0 {
		q.Quo(rPrev, r)
		rPrev.Sub(rPrev, tmp.Mul(q, r))
		sPrev.Sub(sPrev, tmp.Mul(q, s))
		tPrev.Sub(tPrev, tmp.Mul(q, t))
		r, rPrev = rPrev, r
		s, sPrev = sPrev, s
		t, tPrev = tPrev, t
	}
	return rPrev, sPrev, tPrev
}
