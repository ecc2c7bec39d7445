// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arith

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNotInvertible is returned when a divisor shares a factor with the
	// modulus. Zero is never invertible.
	ErrNotInvertible = errors.New("arith: value is not invertible")

	// ErrInvalidModulus is returned when division is requested modulo a
	// value smaller than 2.
	ErrInvalidModulus = errors.New("arith: modulus must be at least 2")
)

var one = big.NewInt(1)

// Mod returns a reduced into [0, m). m must be positive.
func Mod(a, m *big.Int) *big.Int {
	return new(big.Int).Mod(a, m)
}

// ModAdd returns (a + b) mod m in [0, m). m must be positive.
func ModAdd(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, m)
}

// ModSub returns (a - b) mod m in [0, m). m must be positive.
func ModSub(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, m)
}

// ModMul returns (a * b) mod m in [0, m). m must be positive.
func ModMul(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, m)
}

// ModInverse returns the x in [0, m) such that b*x ≡ 1 (mod m). It is the
// Bézout coefficient of b in XGCD(b mod m, m).
func ModInverse(b, m *big.Int) (*big.Int, error) {
	if m.Cmp(big.NewInt(2)) < 0 {
		return nil, errors.Wrapf(ErrInvalidModulus, "modulus %s", m)
	}
	g, x, _ := XGCD(Mod(b, m), m)
	if g.Cmp(one) != 0 {
		return nil, errors.Wrapf(ErrNotInvertible, "%s mod %s (gcd %s)", b, m, g)
	}
	return x.Mod(x, m), nil
}

// ModDiv returns a * b⁻¹ mod m in [0, m). It fails with ErrNotInvertible
// unless b is coprime to m.
func ModDiv(a, b, m *big.Int) (*big.Int, error) {
	inv, err := ModInverse(b, m)
	if err != nil {
		return nil, err
	}
	return ModMul(a, inv, m), nil
}
