// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arith

import (
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModOperationsNormalize(t *testing.T) {
	m := big.NewInt(79)
	tests := []struct {
		name string
		got  *big.Int
		want int64
	}{
		{"mod negative", Mod(big.NewInt(-1), m), 78},
		{"add", ModAdd(big.NewInt(70), big.NewInt(20), m), 11},
		{"add negative", ModAdd(big.NewInt(-70), big.NewInt(-20), m), 68},
		{"sub", ModSub(big.NewInt(3), big.NewInt(5), m), 77},
		{"mul", ModMul(big.NewInt(12), big.NewInt(5), m), 60},
		{"mul negative", ModMul(big.NewInt(-12), big.NewInt(5), m), 19},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got.Int64())
		})
	}
}

func TestModInverse(t *testing.T) {
	inv, err := ModInverse(big.NewInt(7), big.NewInt(79))
	require.NoError(t, err)
	assert.Equal(t, int64(34), inv.Int64())

	// Negative values are reduced before inversion.
	inv, err = ModInverse(big.NewInt(-72), big.NewInt(79))
	require.NoError(t, err)
	assert.Equal(t, int64(34), inv.Int64())
}

func TestModDiv(t *testing.T) {
	q, err := ModDiv(big.NewInt(60), big.NewInt(12), big.NewInt(79))
	require.NoError(t, err)
	assert.Equal(t, int64(5), q.Int64())

	q, err = ModDiv(big.NewInt(1), big.NewInt(7), big.NewInt(79))
	require.NoError(t, err)
	assert.Equal(t, int64(34), q.Int64())
}

func TestModDivNotInvertible(t *testing.T) {
	tests := []struct {
		name string
		b, m int64
		want error
	}{
		{"zero divisor", 0, 79, ErrNotInvertible},
		{"multiple of modulus", 158, 79, ErrNotInvertible},
		{"shared factor", 6, 15, ErrNotInvertible},
		{"modulus one", 3, 1, ErrInvalidModulus},
		{"zero modulus", 3, 0, ErrInvalidModulus},
		{"negative modulus", 3, -7, ErrInvalidModulus},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q, err := ModDiv(big.NewInt(1), big.NewInt(tc.b), big.NewInt(tc.m))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Nil(t, q)
		})
	}
}

func TestModProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("results lie in [0, m)", prop.ForAll(
		func(a, b, m int64) bool {
			x, y, n := big.NewInt(a), big.NewInt(b), big.NewInt(m)
			for _, r := range []*big.Int{ModAdd(x, y, n), ModSub(x, y, n), ModMul(x, y, n)} {
				if r.Sign() < 0 || r.Cmp(n) >= 0 {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.Int64(), gen.Int64Range(1, 1<<40),
	))

	properties.Property("inverse round trip for coprime values", prop.ForAll(
		func(b, m int64) bool {
			x, n := big.NewInt(b), big.NewInt(m)
			inv, err := ModDiv(big.NewInt(1), x, n)
			if new(big.Int).Abs(GCD(x, n)).Cmp(one) != 0 {
				return errors.Is(err, ErrNotInvertible)
			}
			return err == nil && ModMul(x, inv, n).Cmp(one) == 0
		},
		gen.Int64(), gen.Int64Range(2, 1<<40),
	))

	properties.Property("division undoes multiplication modulo a prime", prop.ForAll(
		func(a, b int64) bool {
			p := big.NewInt(2305843009213693951) // 2^61 - 1
			x, y := big.NewInt(a), big.NewInt(b)
			q, err := ModDiv(ModMul(x, y, p), y, p)
			if Mod(y, p).Sign() == 0 {
				return errors.Is(err, ErrNotInvertible)
			}
			return err == nil && q.Cmp(Mod(x, p)) == 0
		},
		gen.Int64(), gen.Int64(),
	))

	properties.TestingRun(t)
}
